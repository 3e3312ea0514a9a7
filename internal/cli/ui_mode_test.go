package cli

import (
	"bytes"
	"io"
	"testing"
)

func stubTerminal(t *testing.T, tty bool) {
	t.Helper()
	prev := isTerminal
	isTerminal = func(io.Writer) bool { return tty }
	t.Cleanup(func() { isTerminal = prev })
}

// TestResolveUIModeAuto verifies auto follows TTY detection.
func TestResolveUIModeAuto(t *testing.T) {
	var out bytes.Buffer
	stubTerminal(t, true)
	decision, err := resolveUIMode("auto", &out)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !decision.useLive {
		t.Fatalf("expected live UI for a TTY")
	}

	stubTerminal(t, false)
	decision, err = resolveUIMode("", &out)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if decision.useLive {
		t.Fatalf("expected plain output for a non-TTY")
	}
}

// TestResolveUIModeLiveFallsBack verifies live without a TTY warns and
// downgrades.
func TestResolveUIModeLiveFallsBack(t *testing.T) {
	var out bytes.Buffer
	stubTerminal(t, false)
	decision, err := resolveUIMode("live", &out)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if decision.useLive {
		t.Fatalf("expected fallback to plain output")
	}
	if decision.warning == "" {
		t.Fatalf("expected a fallback warning")
	}
}

// TestResolveUIModePlain verifies plain never uses the live UI.
func TestResolveUIModePlain(t *testing.T) {
	var out bytes.Buffer
	stubTerminal(t, true)
	decision, err := resolveUIMode("plain", &out)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if decision.useLive {
		t.Fatalf("expected plain output")
	}
}

// TestResolveUIModeInvalid verifies unknown modes error.
func TestResolveUIModeInvalid(t *testing.T) {
	var out bytes.Buffer
	if _, err := resolveUIMode("ansi", &out); err == nil {
		t.Fatalf("expected an error for an invalid mode")
	}
}
