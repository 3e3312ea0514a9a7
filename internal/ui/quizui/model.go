// Package quizui renders the interactive terminal quiz with Bubble Tea.
package quizui

import (
	tea "github.com/charmbracelet/bubbletea"

	"quietspot/internal/quiz"
)

// Model walks a quiz session question by question. The highlighted option is
// the single selection: moving the cursor cannot produce two selected
// options, and enter submits whichever option the cursor rests on.
type Model struct {
	controller *quiz.Controller
	session    *quiz.Session
	view       *viewState
	noColor    bool
	quitting   bool
	err        error
}

// Options configures the quiz model.
type Options struct {
	NoColor bool
}

// NewModel constructs a quiz model over a session.
func NewModel(session *quiz.Session, opts Options) (Model, error) {
	view := newViewState(maxAnswerSlots(session))
	controller, err := quiz.NewController(session, view)
	if err != nil {
		return Model{}, err
	}
	controller.LoadQuestion()
	return Model{
		controller: controller,
		session:    session,
		view:       view,
		noColor:    opts.NoColor,
	}, nil
}

// Init performs no startup work; the first question is already loaded.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key input: cursor movement, submit, restart, and quit.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		m.view.moveCursor(-1)
		return m, nil
	case "down", "j":
		m.view.moveCursor(1)
		return m, nil
	case "enter", " ":
		if m.view.summaryShown {
			return m, nil
		}
		m.view.selectCursor()
		if err := m.controller.SubmitSelected(); err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case "r":
		if m.view.summaryShown {
			m.controller.Restart()
		}
		return m, nil
	}
	return m, nil
}

// View renders the current question or the summary.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderView(m.view, m.session, m.noColor)
}

// Err returns the submit error that terminated the program, if any.
func (m Model) Err() error {
	return m.err
}

// maxAnswerSlots returns the widest answer count across the session's
// questions, the fixed number of option slots the view renders.
func maxAnswerSlots(session *quiz.Session) int {
	slots := 0
	for _, question := range session.Questions() {
		if len(question.Answers) > slots {
			slots = len(question.Answers)
		}
	}
	return slots
}
