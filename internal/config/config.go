// Package config loads and validates the quietspot configuration file.
package config

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the parsed .quietspot.yml file.
type Config struct {
	Version  int            `yaml:"version"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Quiz     QuizConfig     `yaml:"quiz"`
	Venues   VenuesConfig   `yaml:"venues"`
	UI       UIConfig       `yaml:"ui"`
	Limiter  LimiterConfig  `yaml:"limiter"`
}

// ServerConfig holds the web server settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig holds the DuckDB file location.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// QuizConfig points at the question bank file.
type QuizConfig struct {
	QuestionsPath string `yaml:"questions_path"`
}

// VenuesConfig points at the venues fixture file.
type VenuesConfig struct {
	FixturePath string `yaml:"fixture_path"`
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// LimiterConfig holds the signup/login rate limiter settings. A zero
// Requests value disables limiting.
type LimiterConfig struct {
	Requests      int `yaml:"requests"`
	WindowSeconds int `yaml:"window_seconds"`
}

// ParseConfig parses config YAML strictly: unknown fields and trailing
// documents are errors.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Config{}, fmt.Errorf("parse config: multiple documents are not supported")
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
