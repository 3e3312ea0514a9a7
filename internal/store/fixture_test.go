package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"quietspot/internal/store"
)

// TestLoadFixture verifies the venue fixture file round trip.
func TestLoadFixture(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "venues.yml")
	payload := `version: 1
venues:
  - id: venue-a
    name: "Venue A"
    address: "123 Main St"
    playground: "yes"
    quiet: "3"
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	fixture, err := store.LoadFixture(path)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	if len(fixture.Venues) != 1 || fixture.Venues[0].Name != "Venue A" {
		t.Fatalf("unexpected fixture %+v", fixture)
	}
}

// TestLoadFixtureRejectsUnknownFields verifies strict decoding.
func TestLoadFixtureRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "venues.yml")
	payload := `version: 1
venues:
  - name: "Venue A"
    address: "123 Main St"
    rating: 5
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := store.LoadFixture(path); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

// TestLoadFixtureRequiresName verifies nameless venues are rejected.
func TestLoadFixtureRequiresName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "venues.yml")
	payload := `version: 1
venues:
  - address: "123 Main St"
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := store.LoadFixture(path); err == nil {
		t.Fatalf("expected error for missing name")
	}
}
