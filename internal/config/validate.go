package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a config for correctness and referenced files. Relative
// paths are resolved against baseDir.
func Validate(cfg *Config, baseDir string) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		add("server.addr", "is required")
	}
	if strings.TrimSpace(cfg.Database.Path) == "" {
		add("database.path", "is required")
	}

	if baseDir == "" {
		baseDir = "."
	}

	questionsPath := strings.TrimSpace(cfg.Quiz.QuestionsPath)
	if questionsPath == "" {
		add("quiz.questions_path", "is required")
	} else if err := checkFile(resolve(baseDir, questionsPath)); err != nil {
		add("quiz.questions_path", err.Error())
	}

	if fixturePath := strings.TrimSpace(cfg.Venues.FixturePath); fixturePath != "" {
		if err := checkFile(resolve(baseDir, fixturePath)); err != nil {
			add("venues.fixture_path", err.Error())
		}
	}

	switch cfg.UI.Mode {
	case "auto", "live", "plain":
	default:
		add("ui.mode", fmt.Sprintf("unsupported mode %q", cfg.UI.Mode))
	}

	if cfg.Limiter.Requests < 0 {
		add("limiter.requests", "must be >= 0")
	}
	if cfg.Limiter.WindowSeconds < 0 {
		add("limiter.window_seconds", "must be >= 0")
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

func resolve(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file %q does not exist", path)
		}
		return fmt.Errorf("stat %q: %v", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%q is a directory", path)
	}
	return nil
}
