package quiz

import (
	"errors"
	"sync"
)

// ErrNoSelection indicates Submit was called with an empty answer.
var ErrNoSelection = errors.New("no answer selected")

// ErrUnknownAnswer indicates the submitted text matches no answer record.
// This can only happen when a rendering surface and the question bank fall
// out of sync, so callers should treat it as a logic error rather than
// counting the submission either way.
var ErrUnknownAnswer = errors.New("unknown answer")

// ErrFinished indicates the session has already reached the terminal state.
var ErrFinished = errors.New("quiz already finished")

// Result reports the outcome of one submitted answer.
type Result struct {
	Correct  bool
	Finished bool
}

// Session tracks progress through an ordered question list. It owns the
// current question index and the accumulated score; both reset together
// via Reset. A session with no questions starts in the finished state.
// Sessions are safe for concurrent use; after N valid submits the index
// is exactly N regardless of caller interleaving.
type Session struct {
	mu        sync.Mutex
	questions []Question
	current   int
	score     int
}

// NewSession starts a session at the first question with a zero score.
func NewSession(questions []Question) *Session {
	return &Session{questions: questions}
}

// Current returns the index and record of the active question. The bool is
// false once the session has finished.
func (s *Session) Current() (int, Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished() {
		return -1, Question{}, false
	}
	return s.current, s.questions[s.current], true
}

// Submit checks the answer text against the active question, scores it, and
// advances to the next question. Empty text returns ErrNoSelection and text
// matching no answer record returns ErrUnknownAnswer; in both cases the
// session state is unchanged.
func (s *Session) Submit(answerText string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished() {
		return Result{Finished: true}, ErrFinished
	}
	if answerText == "" {
		return Result{}, ErrNoSelection
	}
	question := s.questions[s.current]
	matched := false
	correct := false
	for _, answer := range question.Answers {
		if answer.Text == answerText {
			matched = true
			correct = answer.Correct
			break
		}
	}
	if !matched {
		return Result{}, ErrUnknownAnswer
	}
	if correct {
		s.score++
	}
	s.current++
	return Result{Correct: correct, Finished: s.finished()}, nil
}

// Questions returns a copy of the session's question list.
func (s *Session) Questions() []Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Finished reports whether the session has passed the last question.
func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished()
}

// finished is Finished without the lock, for use under mu.
func (s *Session) finished() bool {
	return s.current >= len(s.questions)
}

// Score returns the accumulated score and the total question count.
func (s *Session) Score() (score, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score, len(s.questions)
}

// Reset reinitializes the session to the first question with a zero score,
// equivalent to starting over from scratch.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = 0
	s.score = 0
}
