package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds unit tests that wait on the database or the server.
const DefaultTimeout = 5 * time.Second

// Context returns a context with a timeout tied to the test lifecycle. The
// timeout never extends past the test binary's own deadline.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if td, ok := t.(interface{ Deadline() (time.Time, bool) }); ok {
		if deadline, ok := td.Deadline(); ok {
			remaining := time.Until(deadline) - time.Second
			if remaining > 0 && remaining < timeout {
				timeout = remaining
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
