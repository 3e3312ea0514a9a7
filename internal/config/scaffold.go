package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
server:
  addr: ":8080"
database:
  path: "quietspot.db"
quiz:
  questions_path: "questions.yml"
venues:
  fixture_path: "venues.yml"
ui:
  mode: auto
limiter:
  requests: 10
  window_seconds: 60
`

const defaultQuestions = `version: 1
questions:
  - question: "What level of noise are you willing to tolerate?"
    answers:
      - text: "A. Low"
      - text: "B. Medium"
        correct: true
      - text: "C. High"
  - question: "How bright can the lighting be?"
    answers:
      - text: "A. Dim"
        correct: true
      - text: "B. Average"
      - text: "C. Bright"
`

const defaultVenues = `version: 1
venues:
  - name: "Reading Room Cafe"
    address: "12 Elm Street"
    playground: "no"
    fenced: "yes"
    quiet_zones: "back room"
    colors: "muted"
    smells: "coffee"
    food_own: "allowed"
    defined_duration: "no"
    quiet: "very quiet"
    crowdedness: "rarely crowded"
    food_variety: "pastries"
`

// Scaffold writes a starter config plus the question bank and venues
// fixture files it references. Existing files are never overwritten.
func Scaffold(configPath string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	baseDir := filepath.Dir(configPath)
	files := []struct {
		path    string
		content string
	}{
		{configPath, defaultConfig},
		{filepath.Join(baseDir, "questions.yml"), defaultQuestions},
		{filepath.Join(baseDir, "venues.yml"), defaultVenues},
	}
	for _, file := range files[1:] {
		if info, err := os.Stat(file.path); err == nil {
			if info.IsDir() {
				return fmt.Errorf("path %q is a directory", file.path)
			}
			return fmt.Errorf("file already exists at %q", file.path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat %q: %w", file.path, err)
		}
	}

	for _, file := range files {
		if err := os.WriteFile(file.path, []byte(file.content), 0o644); err != nil {
			return fmt.Errorf("write %q: %w", file.path, err)
		}
	}
	return nil
}
