package quiz

import "testing"

// fakeSurface records controller writes against a fixed number of option slots.
type fakeSurface struct {
	questionText string
	labels       []string
	selected     int
	summaryScore int
	summaryTotal int
	summaryShown bool
}

func newFakeSurface(slots int) *fakeSurface {
	return &fakeSurface{labels: make([]string, slots), selected: -1}
}

func (s *fakeSurface) SetQuestionText(text string) { s.questionText = text }

func (s *fakeSurface) SetOptionLabel(index int, text string) { s.labels[index] = text }

func (s *fakeSurface) OptionCount() int { return len(s.labels) }

func (s *fakeSurface) ClearSelection() { s.selected = -1 }

func (s *fakeSurface) SelectedOption() (string, bool) {
	if s.selected < 0 || s.selected >= len(s.labels) {
		return "", false
	}
	return s.labels[s.selected], true
}

func (s *fakeSurface) ShowSummary(score, total int) {
	s.summaryShown = true
	s.summaryScore = score
	s.summaryTotal = total
}

// TestLoadQuestionFillsSlots verifies the prompt and labels are written.
func TestLoadQuestionFillsSlots(t *testing.T) {
	surface := newFakeSurface(3)
	controller, err := NewController(NewSession([]Question{noiseQuestion()}), surface)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	controller.LoadQuestion()
	if surface.questionText != "What level of noise are you willing to tolerate?" {
		t.Fatalf("unexpected question text %q", surface.questionText)
	}
	want := []string{"A. Low", "B. Medium", "C. High"}
	for i, label := range want {
		if surface.labels[i] != label {
			t.Fatalf("expected label %q at slot %d, got %q", label, i, surface.labels[i])
		}
	}
	if _, ok := surface.SelectedOption(); ok {
		t.Fatalf("expected cleared selection after load")
	}
}

// TestLoadQuestionLeavesExtraSlotsUntouched documents the stale-label quirk:
// slots beyond the answer count keep labels from the previous question.
func TestLoadQuestionLeavesExtraSlotsUntouched(t *testing.T) {
	questions := []Question{
		noiseQuestion(),
		{
			Prompt: "Do you prefer fenced venues?",
			Answers: []Answer{
				{Text: "Yes", Correct: true},
				{Text: "No"},
			},
		},
	}
	surface := newFakeSurface(3)
	controller, err := NewController(NewSession(questions), surface)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	controller.LoadQuestion()
	surface.selected = 1
	if err := controller.SubmitSelected(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if surface.labels[0] != "Yes" || surface.labels[1] != "No" {
		t.Fatalf("expected second question labels, got %v", surface.labels)
	}
	if surface.labels[2] != "C. High" {
		t.Fatalf("expected slot 2 to keep its previous label, got %q", surface.labels[2])
	}
}

// TestSubmitWithoutSelectionIsNoop verifies an unselected submit does nothing.
func TestSubmitWithoutSelectionIsNoop(t *testing.T) {
	surface := newFakeSurface(3)
	session := NewSession([]Question{noiseQuestion()})
	controller, err := NewController(session, surface)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	controller.LoadQuestion()
	if err := controller.SubmitSelected(); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	index, _, _ := session.Current()
	if index != 0 {
		t.Fatalf("expected index 0, got %d", index)
	}
}

// TestSubmitLastQuestionShowsSummary verifies the terminal summary rendering.
func TestSubmitLastQuestionShowsSummary(t *testing.T) {
	surface := newFakeSurface(3)
	controller, err := NewController(NewSession([]Question{noiseQuestion()}), surface)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	controller.LoadQuestion()
	surface.selected = 1
	if err := controller.SubmitSelected(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !surface.summaryShown {
		t.Fatalf("expected summary after the last question")
	}
	if surface.summaryScore != 1 || surface.summaryTotal != 1 {
		t.Fatalf("expected summary 1/1, got %d/%d", surface.summaryScore, surface.summaryTotal)
	}
}

// TestRestartReloadsFirstQuestion verifies restart fully reinitializes state.
func TestRestartReloadsFirstQuestion(t *testing.T) {
	surface := newFakeSurface(3)
	session := NewSession([]Question{noiseQuestion()})
	controller, err := NewController(session, surface)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	controller.LoadQuestion()
	surface.selected = 1
	if err := controller.SubmitSelected(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	controller.Restart()
	index, _, ok := session.Current()
	if !ok || index != 0 {
		t.Fatalf("expected restart at question 0, got index %d ok=%v", index, ok)
	}
	score, _ := session.Score()
	if score != 0 {
		t.Fatalf("expected score 0 after restart, got %d", score)
	}
	if surface.questionText != "What level of noise are you willing to tolerate?" {
		t.Fatalf("expected first question rendered, got %q", surface.questionText)
	}
}

// TestEmptyBankLoadsSummary verifies an empty bank renders a 0/0 summary.
func TestEmptyBankLoadsSummary(t *testing.T) {
	surface := newFakeSurface(3)
	controller, err := NewController(NewSession(nil), surface)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	controller.LoadQuestion()
	if !surface.summaryShown {
		t.Fatalf("expected immediate summary for an empty bank")
	}
	if surface.summaryScore != 0 || surface.summaryTotal != 0 {
		t.Fatalf("expected summary 0/0, got %d/%d", surface.summaryScore, surface.summaryTotal)
	}
}
