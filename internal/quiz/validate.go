package quiz

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeSpec trims whitespace and validates a question bank.
//
// Answer matching during a session is by exact text, so duplicate answer
// texts within a question are rejected here, and each question must mark
// exactly one answer correct.
func NormalizeSpec(spec Spec) (Spec, error) {
	collector := &issueCollector{}
	if spec.Version == 0 {
		collector.add("version", "is required")
	} else if spec.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", spec.Version))
	}

	for i, question := range spec.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)

		question.Prompt = strings.TrimSpace(question.Prompt)
		if question.Prompt == "" {
			collector.add(prefix+".question", "is required")
		}

		if len(question.Answers) < 2 {
			collector.add(prefix+".answers", "must include at least two entries")
		}
		correctCount := 0
		seenTexts := map[string]struct{}{}
		for answerIndex := range question.Answers {
			field := fmt.Sprintf("%s.answers[%d]", prefix, answerIndex)
			answer := question.Answers[answerIndex]
			answer.Text = strings.TrimSpace(answer.Text)
			if answer.Text == "" {
				collector.add(field+".text", "is required")
			} else if _, exists := seenTexts[answer.Text]; exists {
				collector.add(field+".text", fmt.Sprintf("duplicate answer %q", answer.Text))
			} else {
				seenTexts[answer.Text] = struct{}{}
			}
			if answer.Correct {
				correctCount++
			}
			question.Answers[answerIndex] = answer
		}
		if len(question.Answers) > 0 && correctCount != 1 {
			collector.add(prefix+".answers", fmt.Sprintf("must mark exactly one answer correct, found %d", correctCount))
		}
		spec.Questions[i] = question
	}

	if err := collector.result(); err != nil {
		return Spec{}, err
	}
	return spec, nil
}
