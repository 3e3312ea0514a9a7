package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"quietspot/internal/store"
)

const dbTimeout = 2 * time.Second

// OpenDB opens a temporary DuckDB database with the schema applied and
// verifies it responds within a short timeout.
func OpenDB(t testing.TB) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quietspot.duckdb")
	db, err := store.Open(path)
	if err != nil {
		t.Fatalf("open duckdb: %v", err)
	}
	ctx := Context(t, dbTimeout)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		t.Fatalf("ping duckdb: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	if err := store.EnsureSchema(db); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}
