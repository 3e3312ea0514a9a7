package signupui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeRunes(t *testing.T, model Model, text string) Model {
	t.Helper()
	for _, r := range text {
		next, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		typed, ok := next.(Model)
		if !ok {
			t.Fatalf("unexpected model type %T", next)
		}
		model = typed
	}
	return model
}

func press(t *testing.T, model Model, key tea.KeyType) Model {
	t.Helper()
	next, _ := model.Update(tea.KeyMsg{Type: key})
	typed, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return typed
}

// TestChecklistStartsAllUnsatisfied verifies the initial render shows every
// rule unmet.
func TestChecklistStartsAllUnsatisfied(t *testing.T) {
	model := NewModel(Options{NoColor: true})
	view := model.View()
	if got := strings.Count(view, "✗"); got != 5 {
		t.Fatalf("expected 5 unmet indicators, got %d in %q", got, view)
	}
	if strings.Contains(view, "✓") {
		t.Fatalf("expected no met indicators initially, got %q", view)
	}
}

// TestChecklistTracksKeystrokes verifies indicators update per keystroke and
// reflect only the current value.
func TestChecklistTracksKeystrokes(t *testing.T) {
	model := NewModel(Options{NoColor: true})
	model = press(t, model, tea.KeyTab)
	model = typeRunes(t, model, "abc")
	view := model.View()
	if got := strings.Count(view, "✓"); got != 1 {
		t.Fatalf("expected only the lowercase rule met, got %d in %q", got, view)
	}
	if !strings.Contains(view, "✓ Contains a lowercase letter") {
		t.Fatalf("expected the lowercase indicator met, got %q", view)
	}

	model = typeRunes(t, model, "12345A")
	view = model.View()
	if got := strings.Count(view, "✓"); got != 4 {
		t.Fatalf("expected four rules met for Abc-style value, got %d in %q", got, view)
	}
	if !strings.Contains(view, "✗ Contains a symbol") {
		t.Fatalf("expected the symbol rule still unmet, got %q", view)
	}
}

// TestBackspaceReevaluates verifies deleting characters can turn indicators
// back off.
func TestBackspaceReevaluates(t *testing.T) {
	model := NewModel(Options{NoColor: true})
	model = press(t, model, tea.KeyTab)
	model = typeRunes(t, model, "abc12345")
	if !strings.Contains(model.View(), "✓ At least 8 characters") {
		t.Fatalf("expected length rule met at 8 characters")
	}
	model = press(t, model, tea.KeyBackspace)
	if !strings.Contains(model.View(), "✗ At least 8 characters") {
		t.Fatalf("expected length rule unmet after backspace")
	}
}

// TestSubmitRequiresAllRules verifies enter only completes the form once
// every rule is satisfied and a nickname is present.
func TestSubmitRequiresAllRules(t *testing.T) {
	model := NewModel(Options{NoColor: true})
	model = typeRunes(t, model, "sam")
	model = press(t, model, tea.KeyEnter)
	model = typeRunes(t, model, "abc")
	model = press(t, model, tea.KeyEnter)
	if model.Submitted() {
		t.Fatalf("expected submit rejected with unmet rules")
	}
	model = typeRunes(t, model, "123A!")
	model = press(t, model, tea.KeyEnter)
	if !model.Submitted() {
		t.Fatalf("expected submit accepted with all rules met")
	}
	if model.Nickname() != "sam" {
		t.Fatalf("nickname = %q, want %q", model.Nickname(), "sam")
	}
	if model.Password() != "abc123A!" {
		t.Fatalf("password = %q, want %q", model.Password(), "abc123A!")
	}
}
