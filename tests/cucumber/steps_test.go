package cucumber

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"quietspot/internal/quiz"
)

// quizSurface is the rendering stand-in the scenarios observe.
type quizSurface struct {
	questionText string
	labels       []string
	selected     int
	summaryShown bool
	summaryText  string
}

const surfaceSlots = 4

func newQuizSurface() *quizSurface {
	return &quizSurface{labels: make([]string, surfaceSlots), selected: -1}
}

func (s *quizSurface) SetQuestionText(text string) { s.questionText = text }

func (s *quizSurface) SetOptionLabel(index int, text string) { s.labels[index] = text }

func (s *quizSurface) OptionCount() int { return len(s.labels) }

func (s *quizSurface) ClearSelection() { s.selected = -1 }

func (s *quizSurface) SelectedOption() (string, bool) {
	if s.selected < 0 || s.selected >= len(s.labels) {
		return "", false
	}
	return s.labels[s.selected], true
}

func (s *quizSurface) ShowSummary(score, total int) {
	s.summaryShown = true
	s.summaryText = quiz.SummaryText(score, total)
}

// featureState holds scenario state for the quiz feature.
type featureState struct {
	surface    *quizSurface
	controller *quiz.Controller
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.surface = nil
		state.controller = nil
		return ctx, nil
	})

	ctx.Step(`^a quiz with the question "([^"]+)" and answers:$`, state.aQuizWithQuestionAndAnswers)
	ctx.Step(`^a quiz with no questions$`, state.aQuizWithNoQuestions)
	ctx.Step(`^I select "([^"]+)"$`, state.iSelect)
	ctx.Step(`^I submit my answer$`, state.iSubmitMyAnswer)
	ctx.Step(`^I restart the quiz$`, state.iRestartTheQuiz)
	ctx.Step(`^the quiz is finished$`, state.theQuizIsFinished)
	ctx.Step(`^the quiz is not finished$`, state.theQuizIsNotFinished)
	ctx.Step(`^the summary reads "([^"]+)"$`, state.theSummaryReads)
	ctx.Step(`^the question "([^"]+)" is shown$`, state.theQuestionIsShown)
}

func (s *featureState) start(questions []quiz.Question) error {
	s.surface = newQuizSurface()
	session := quiz.NewSession(questions)
	controller, err := quiz.NewController(session, s.surface)
	if err != nil {
		return err
	}
	s.controller = controller
	s.controller.LoadQuestion()
	return nil
}

func (s *featureState) aQuizWithQuestionAndAnswers(prompt string, table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("expected a header row plus answers")
	}
	question := quiz.Question{Prompt: prompt}
	for _, row := range table.Rows[1:] {
		if len(row.Cells) != 2 {
			return fmt.Errorf("expected text and correct columns, got %d cells", len(row.Cells))
		}
		question.Answers = append(question.Answers, quiz.Answer{
			Text:    row.Cells[0].Value,
			Correct: row.Cells[1].Value == "yes",
		})
	}
	return s.start([]quiz.Question{question})
}

func (s *featureState) aQuizWithNoQuestions() error {
	return s.start(nil)
}

func (s *featureState) iSelect(label string) error {
	for i, candidate := range s.surface.labels {
		if candidate == label {
			s.surface.selected = i
			return nil
		}
	}
	return fmt.Errorf("option %q is not on screen", label)
}

func (s *featureState) iSubmitMyAnswer() error {
	return s.controller.SubmitSelected()
}

func (s *featureState) iRestartTheQuiz() error {
	s.controller.Restart()
	return nil
}

func (s *featureState) theQuizIsFinished() error {
	if !s.surface.summaryShown {
		return fmt.Errorf("expected the summary, still on question %q", s.surface.questionText)
	}
	return nil
}

func (s *featureState) theQuizIsNotFinished() error {
	if s.surface.summaryShown {
		return fmt.Errorf("expected a question, got summary %q", s.surface.summaryText)
	}
	return nil
}

func (s *featureState) theSummaryReads(expected string) error {
	if !s.surface.summaryShown {
		return fmt.Errorf("summary is not shown")
	}
	if s.surface.summaryText != expected {
		return fmt.Errorf("summary = %q, want %q", s.surface.summaryText, expected)
	}
	return nil
}

func (s *featureState) theQuestionIsShown(expected string) error {
	if s.surface.questionText != expected {
		return fmt.Errorf("question = %q, want %q", s.surface.questionText, expected)
	}
	return nil
}
