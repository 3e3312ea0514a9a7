package webserver

import (
	"testing"
	"time"
)

// TestWindowLimiterAdmitsUpToLimit verifies counting within one window.
func TestWindowLimiterAdmitsUpToLimit(t *testing.T) {
	limiter := NewWindowLimiter(2, time.Minute)
	if !limiter.Allow("client") || !limiter.Allow("client") {
		t.Fatalf("expected the first two requests to pass")
	}
	if limiter.Allow("client") {
		t.Fatalf("expected the third request to be rejected")
	}
}

// TestWindowLimiterResetsAfterWindow verifies a new window starts clean.
func TestWindowLimiterResetsAfterWindow(t *testing.T) {
	limiter := NewWindowLimiter(1, time.Minute)
	current := time.Now()
	limiter.now = func() time.Time { return current }

	if !limiter.Allow("client") {
		t.Fatalf("expected the first request to pass")
	}
	if limiter.Allow("client") {
		t.Fatalf("expected the second request to be rejected")
	}
	current = current.Add(2 * time.Minute)
	if !limiter.Allow("client") {
		t.Fatalf("expected a fresh window to admit again")
	}
}

// TestWindowLimiterKeysAreIndependent verifies per-client accounting.
func TestWindowLimiterKeysAreIndependent(t *testing.T) {
	limiter := NewWindowLimiter(1, time.Minute)
	if !limiter.Allow("a") {
		t.Fatalf("expected client a to pass")
	}
	if !limiter.Allow("b") {
		t.Fatalf("expected client b to pass independently")
	}
}

// TestWindowLimiterZeroLimitDisables verifies the limiter can be turned off.
func TestWindowLimiterZeroLimitDisables(t *testing.T) {
	limiter := NewWindowLimiter(0, time.Minute)
	for i := 0; i < 10; i++ {
		if !limiter.Allow("client") {
			t.Fatalf("expected a disabled limiter to admit everything")
		}
	}
}
