package webserver

import (
	"net/http"
	"sync"

	"github.com/google/uuid"

	"quietspot/internal/quiz"
)

const sessionCookie = "quiz_session"

// defaultSessionLimit caps how many quiz sessions the registry keeps alive
// at once, so cookieless clients cannot grow the map without bound.
const defaultSessionLimit = 1024

// sessionRegistry tracks one quiz session per browser, keyed by cookie.
type sessionRegistry struct {
	mu        sync.Mutex
	questions []quiz.Question
	limit     int
	sessions  map[string]*quiz.Session
}

func newSessionRegistry(questions []quiz.Question) *sessionRegistry {
	return &sessionRegistry{
		questions: questions,
		limit:     defaultSessionLimit,
		sessions:  map[string]*quiz.Session{},
	}
}

// session returns the caller's quiz session, creating one (and its cookie)
// on first contact. At the limit an arbitrary stored session is evicted
// first; its owner starts over on their next request.
func (r *sessionRegistry) session(w http.ResponseWriter, req *http.Request) *quiz.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cookie, err := req.Cookie(sessionCookie); err == nil {
		if session, ok := r.sessions[cookie.Value]; ok {
			return session
		}
	}
	if r.limit > 0 {
		for len(r.sessions) >= r.limit {
			for stale := range r.sessions {
				delete(r.sessions, stale)
				break
			}
		}
	}
	id := uuid.NewString()
	session := quiz.NewSession(r.questions)
	r.sessions[id] = session
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return session
}

// reset drops the caller's session so the next request starts a fresh one,
// fully reinitializing index and score.
func (r *sessionRegistry) reset(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cookie, err := req.Cookie(sessionCookie)
	if err != nil {
		return
	}
	delete(r.sessions, cookie.Value)
}
