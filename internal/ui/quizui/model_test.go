package quizui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"quietspot/internal/quiz"
)

func testQuestions() []quiz.Question {
	return []quiz.Question{
		{
			Prompt: "What level of noise are you willing to tolerate?",
			Answers: []quiz.Answer{
				{Text: "A. Low"},
				{Text: "B. Medium", Correct: true},
				{Text: "C. High"},
			},
		},
	}
}

func keyPress(key string) tea.KeyMsg {
	if key == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if key == "up" {
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	if key == "down" {
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func update(t *testing.T, model Model, keys ...string) Model {
	t.Helper()
	for _, key := range keys {
		next, _ := model.Update(keyPress(key))
		typed, ok := next.(Model)
		if !ok {
			t.Fatalf("unexpected model type %T", next)
		}
		model = typed
	}
	return model
}

// TestViewShowsQuestionAndOptions verifies the initial render.
func TestViewShowsQuestionAndOptions(t *testing.T) {
	model, err := NewModel(quiz.NewSession(testQuestions()), Options{NoColor: true})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	view := model.View()
	if !strings.Contains(view, "What level of noise are you willing to tolerate?") {
		t.Fatalf("expected prompt in view, got %q", view)
	}
	for _, label := range []string{"A. Low", "B. Medium", "C. High"} {
		if !strings.Contains(view, label) {
			t.Fatalf("expected option %q in view", label)
		}
	}
	if !strings.Contains(view, "> A. Low") {
		t.Fatalf("expected cursor on the first option, got %q", view)
	}
}

// TestCursorMovesAndClamps verifies option navigation stays in bounds.
func TestCursorMovesAndClamps(t *testing.T) {
	model, err := NewModel(quiz.NewSession(testQuestions()), Options{NoColor: true})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	model = update(t, model, "up")
	if !strings.Contains(model.View(), "> A. Low") {
		t.Fatalf("expected cursor clamped at the top")
	}
	model = update(t, model, "down", "down", "down")
	if !strings.Contains(model.View(), "> C. High") {
		t.Fatalf("expected cursor clamped at the bottom")
	}
}

// TestSubmitCorrectAnswerShowsSummary verifies the enter-to-submit flow.
func TestSubmitCorrectAnswerShowsSummary(t *testing.T) {
	model, err := NewModel(quiz.NewSession(testQuestions()), Options{NoColor: true})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	model = update(t, model, "down", "enter")
	view := model.View()
	if !strings.Contains(view, "You answered 1/1 questions correctly") {
		t.Fatalf("expected summary, got %q", view)
	}
}

// TestRestartFromSummary verifies r reinitializes the whole session.
func TestRestartFromSummary(t *testing.T) {
	model, err := NewModel(quiz.NewSession(testQuestions()), Options{NoColor: true})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	model = update(t, model, "enter", "r")
	view := model.View()
	if !strings.Contains(view, "What level of noise are you willing to tolerate?") {
		t.Fatalf("expected the first question after restart, got %q", view)
	}
	if !strings.Contains(view, "Question 1 of 1") {
		t.Fatalf("expected progress reset, got %q", view)
	}
}

// TestEmptySessionShowsZeroSummary verifies the 0/0 terminal view.
func TestEmptySessionShowsZeroSummary(t *testing.T) {
	model, err := NewModel(quiz.NewSession(nil), Options{NoColor: true})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	if !strings.Contains(model.View(), "You answered 0/0 questions correctly") {
		t.Fatalf("expected 0/0 summary, got %q", model.View())
	}
}

// TestPlainRunner verifies the non-TTY fallback end to end.
func TestPlainRunner(t *testing.T) {
	session := quiz.NewSession(testQuestions())
	var out strings.Builder
	input := strings.NewReader("\n9\n2\n")
	if err := RunPlain(&out, input, session); err != nil {
		t.Fatalf("run plain: %v", err)
	}
	output := out.String()
	if !strings.Contains(output, "You answered 1/1 questions correctly") {
		t.Fatalf("expected summary in output, got %q", output)
	}
	if !strings.Contains(output, "Enter a number between 1 and 3.") {
		t.Fatalf("expected re-prompt for an invalid choice, got %q", output)
	}
}
