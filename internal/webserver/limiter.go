package webserver

import (
	"sync"
	"time"
)

// WindowLimiter counts requests per key over fixed windows. It bounds the
// credential endpoints in-process; a zero limit admits everything.
type WindowLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	now    func() time.Time
	counts map[string]windowCount
}

type windowCount struct {
	start time.Time
	n     int
}

// NewWindowLimiter creates a limiter admitting limit requests per window.
func NewWindowLimiter(limit int, window time.Duration) *WindowLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &WindowLimiter{
		limit:  limit,
		window: window,
		now:    time.Now,
		counts: map[string]windowCount{},
	}
}

// Allow reports whether a request for key fits in the current window.
func (l *WindowLimiter) Allow(key string) bool {
	if l == nil || l.limit <= 0 {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	count, ok := l.counts[key]
	if !ok || now.Sub(count.start) >= l.window {
		l.counts[key] = windowCount{start: now, n: 1}
		return true
	}
	if count.n >= l.limit {
		return false
	}
	count.n++
	l.counts[key] = count
	return true
}
