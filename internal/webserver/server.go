// Package webserver hosts the quietspot pages: the venue directory with its
// search and filter forms, signup and login with the password checklist, the
// reviews dashboard, and the quiz flow.
package webserver

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"quietspot/internal/quiz"
)

// Config captures the settings for serving the quietspot site.
type Config struct {
	Addr      string
	DB        *sql.DB
	Questions []quiz.Question

	// LimiterRequests/LimiterWindow bound login and registration attempts
	// per client. Zero requests disables the limiter.
	LimiterRequests int
	LimiterWindow   time.Duration
}

// Serve starts an HTTP server and blocks until it fails or ctx is done.
func Serve(ctx context.Context, cfg Config) error {
	if ctx == nil {
		return errors.New("webserver: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("webserver: addr is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}
