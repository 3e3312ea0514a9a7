package quiz

// Spec defines the question bank schema loaded from JSON or YAML.
type Spec struct {
	Version   int        `json:"version" yaml:"version"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is a single prompt with its ordered candidate answers.
type Question struct {
	Prompt  string   `json:"question" yaml:"question"`
	Answers []Answer `json:"answers" yaml:"answers"`
}

// Answer is one candidate answer and its correctness flag.
type Answer struct {
	Text    string `json:"text" yaml:"text"`
	Correct bool   `json:"correct" yaml:"correct"`
}
