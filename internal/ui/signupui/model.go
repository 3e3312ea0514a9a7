// Package signupui renders the interactive signup form with Bubble Tea. The
// password checklist is re-evaluated from scratch on every keystroke, so each
// indicator reflects only the current field value.
package signupui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quietspot/internal/password"
)

const (
	fieldNickname = iota
	fieldPassword
	fieldCount
)

// Model is the signup form: a nickname field, a password field, and the
// per-rule checklist under the password field.
type Model struct {
	inputs    []textinput.Model
	focus     int
	checklist password.Checklist
	noColor   bool
	submitted bool
	quitting  bool
}

// Options configures the signup model.
type Options struct {
	NoColor bool
}

// NewModel constructs a signup form with an empty checklist state.
func NewModel(opts Options) Model {
	nickname := textinput.New()
	nickname.Placeholder = "nickname"
	nickname.CharLimit = 64
	nickname.Focus()

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.CharLimit = 128
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '*'

	return Model{
		inputs:    []textinput.Model{nickname, pass},
		checklist: password.Evaluate(""),
		noColor:   opts.NoColor,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update routes keys to the focused field and re-evaluates the checklist
// whenever the password value may have changed.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab", "shift+tab", "up", "down":
			delta := 1
			if keyMsg.String() == "shift+tab" || keyMsg.String() == "up" {
				delta = -1
			}
			m.focus = (m.focus + delta + fieldCount) % fieldCount
			for i := range m.inputs {
				if i == m.focus {
					m.inputs[i].Focus()
				} else {
					m.inputs[i].Blur()
				}
			}
			return m, nil
		case "enter":
			if m.focus == fieldNickname {
				m.focus = fieldPassword
				m.inputs[fieldNickname].Blur()
				m.inputs[fieldPassword].Focus()
				return m, nil
			}
			if m.checklist.AllMet() && m.Nickname() != "" {
				m.submitted = true
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.checklist = password.Evaluate(m.inputs[fieldPassword].Value())
	return m, cmd
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// View renders the form fields followed by one checklist line per rule.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.title("Sign up") + "\n\n")
	b.WriteString("Nickname: " + m.inputs[fieldNickname].View() + "\n")
	b.WriteString("Password: " + m.inputs[fieldPassword].View() + "\n\n")
	for _, indicator := range m.checklist {
		glyph, style := "✗", invalidStyle
		if indicator.Satisfied {
			glyph, style = "✓", validStyle
		}
		line := glyph + " " + indicator.Rule.Label
		if m.noColor {
			b.WriteString(line + "\n")
		} else {
			b.WriteString(style.Render(line) + "\n")
		}
	}
	b.WriteString("\n" + m.hint("tab switch field | enter submit | esc quit") + "\n")
	return b.String()
}

func (m Model) title(text string) string {
	if m.noColor {
		return text
	}
	return titleStyle.Render(text)
}

func (m Model) hint(text string) string {
	if m.noColor {
		return text
	}
	return hintStyle.Render(text)
}

// Nickname returns the trimmed nickname field value.
func (m Model) Nickname() string {
	return strings.TrimSpace(m.inputs[fieldNickname].Value())
}

// Password returns the password field value.
func (m Model) Password() string {
	return m.inputs[fieldPassword].Value()
}

// Submitted reports whether the form was completed with every rule met.
func (m Model) Submitted() bool {
	return m.submitted
}
