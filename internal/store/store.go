// Package store persists the venue directory, user accounts, and reviews in
// a DuckDB database.
package store

import (
	"database/sql"
	_ "embed"
	"errors"

	_ "github.com/duckdb/duckdb-go/v2"
)

// schemaDDL holds the DuckDB schema definition.
//
//go:embed schema.sql
var schemaDDL string

// ErrNotFound indicates a record lookup matched nothing.
var ErrNotFound = errors.New("store: not found")

// SchemaDDL returns the schema DDL used for initializing databases.
func SchemaDDL() string {
	return schemaDDL
}

// Open opens (or creates) the DuckDB database at path.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, errors.New("store: database path is required")
	}
	return sql.Open("duckdb", path)
}

// EnsureSchema applies the schema DDL to the provided database connection.
func EnsureSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("store: db is nil")
	}
	_, err := db.Exec(schemaDDL)
	return err
}
