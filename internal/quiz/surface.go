package quiz

import (
	"errors"
	"fmt"
)

// Surface is the rendering contract for a question view. Implementations own
// the concrete widgets; the controller only writes text into slots and reads
// the single selection back. SelectedOption returns false when no option is
// selected, which makes empty submits a silent no-op.
type Surface interface {
	SetQuestionText(text string)
	SetOptionLabel(index int, text string)
	OptionCount() int
	ClearSelection()
	SelectedOption() (string, bool)
	ShowSummary(score, total int)
}

// Controller binds a Session to a Surface and drives the question flow.
type Controller struct {
	session *Session
	surface Surface
}

// NewController creates a controller for a session and a rendering surface.
func NewController(session *Session, surface Surface) (*Controller, error) {
	if session == nil {
		return nil, errors.New("quiz: session is nil")
	}
	if surface == nil {
		return nil, errors.New("quiz: surface is nil")
	}
	return &Controller{session: session, surface: surface}, nil
}

// LoadQuestion renders the active question: it clears the selection, writes
// the prompt, and fills option slots with answer texts up to the surface's
// slot count. Slots beyond the answer count keep whatever label they had
// before; validated banks use a uniform answer count so this never shows.
// A finished session renders the summary instead.
func (c *Controller) LoadQuestion() {
	if c.session.Finished() {
		score, total := c.session.Score()
		c.surface.ShowSummary(score, total)
		return
	}
	_, question, _ := c.session.Current()
	c.surface.ClearSelection()
	c.surface.SetQuestionText(question.Prompt)
	slots := c.surface.OptionCount()
	for i, answer := range question.Answers {
		if i >= slots {
			break
		}
		c.surface.SetOptionLabel(i, answer.Text)
	}
}

// SubmitSelected submits the currently selected option. With no selection it
// does nothing. After a valid submit it either renders the next question or,
// past the last one, the summary.
func (c *Controller) SubmitSelected() error {
	selected, ok := c.surface.SelectedOption()
	if !ok {
		return nil
	}
	result, err := c.session.Submit(selected)
	if err != nil {
		return err
	}
	if result.Finished {
		score, total := c.session.Score()
		c.surface.ShowSummary(score, total)
		return nil
	}
	c.LoadQuestion()
	return nil
}

// Restart reinitializes the session and renders the first question again.
func (c *Controller) Restart() {
	c.session.Reset()
	c.LoadQuestion()
}

// SummaryText formats the terminal summary line shown when a session ends.
func SummaryText(score, total int) string {
	return fmt.Sprintf("You answered %d/%d questions correctly", score, total)
}
