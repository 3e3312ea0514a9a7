package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"quietspot/internal/venue"
)

// Fixture defines the venue fixture file schema.
type Fixture struct {
	Version int           `yaml:"version"`
	Venues  []venue.Venue `yaml:"venues"`
}

// LoadFixture reads and parses a venue fixture file.
func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read venue fixture: %w", err)
	}
	var fixture Fixture
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&fixture); err != nil {
		return Fixture{}, fmt.Errorf("parse venue fixture: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Fixture{}, fmt.Errorf("parse venue fixture: multiple documents are not supported")
		}
		return Fixture{}, fmt.Errorf("parse venue fixture: %w", err)
	}
	if fixture.Version != 1 {
		return Fixture{}, fmt.Errorf("unsupported venue fixture version %d", fixture.Version)
	}
	for i, v := range fixture.Venues {
		if v.Name == "" {
			return Fixture{}, fmt.Errorf("venues[%d].name is required", i)
		}
	}
	return fixture, nil
}

// IngestVenues inserts every fixture venue, returning the inserted count.
func IngestVenues(ctx context.Context, db *sql.DB, venues []venue.Venue) (int, error) {
	if db == nil {
		return 0, errors.New("store: db is nil")
	}
	count := 0
	for _, v := range venues {
		if _, err := InsertVenue(ctx, db, v); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
