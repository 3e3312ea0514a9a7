package quizui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quietspot/internal/quiz"
)

// viewState implements quiz.Surface for the terminal view. It holds a fixed
// number of option slots plus the cursor that doubles as the single
// selection.
type viewState struct {
	questionText string
	labels       []string
	labelCount   int
	cursor       int
	selected     int
	summaryShown bool
	summaryText  string
}

func newViewState(slots int) *viewState {
	return &viewState{labels: make([]string, slots), selected: -1}
}

func (v *viewState) SetQuestionText(text string) {
	v.questionText = text
	v.summaryShown = false
}

func (v *viewState) SetOptionLabel(index int, text string) {
	v.labels[index] = text
	if index+1 > v.labelCount {
		v.labelCount = index + 1
	}
}

func (v *viewState) OptionCount() int { return len(v.labels) }

func (v *viewState) ClearSelection() {
	v.selected = -1
	v.cursor = 0
	v.labelCount = 0
}

func (v *viewState) SelectedOption() (string, bool) {
	if v.selected < 0 || v.selected >= v.labelCount {
		return "", false
	}
	return v.labels[v.selected], true
}

func (v *viewState) ShowSummary(score, total int) {
	v.summaryShown = true
	v.summaryText = quiz.SummaryText(score, total)
}

// moveCursor shifts the highlighted option, clamped to the rendered labels.
func (v *viewState) moveCursor(delta int) {
	if v.summaryShown || v.labelCount == 0 {
		return
	}
	next := v.cursor + delta
	if next < 0 || next >= v.labelCount {
		return
	}
	v.cursor = next
}

// selectCursor marks the highlighted option as the selection.
func (v *viewState) selectCursor() {
	if v.labelCount == 0 {
		return
	}
	v.selected = v.cursor
}

var (
	promptStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	summaryStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("35"))
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// renderView draws the question view or the terminal summary.
func renderView(v *viewState, session *quiz.Session, noColor bool) string {
	if v.summaryShown {
		lines := []string{
			stylize(v.summaryText, noColor, summaryStyle),
			"",
			stylize("r restart | q quit", noColor, helpStyle),
		}
		return strings.Join(lines, "\n") + "\n"
	}

	index, _, _ := session.Current()
	_, total := session.Score()
	lines := []string{
		stylize(fmt.Sprintf("Question %d of %d", index+1, total), noColor, progressStyle),
		stylize(v.questionText, noColor, promptStyle),
		"",
	}
	for i := 0; i < v.labelCount; i++ {
		marker := "  "
		line := marker + v.labels[i]
		if i == v.cursor {
			line = stylize("> "+v.labels[i], noColor, cursorStyle)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", stylize("up/down move | enter submit | q quit", noColor, helpStyle))
	return strings.Join(lines, "\n") + "\n"
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, style lipgloss.Style) string {
	if noColor {
		return text
	}
	return style.Render(text)
}
