package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"quietspot/internal/venue"
)

// venueColumns lists the venues columns in scan order.
const venueColumns = `venue_id, name, address, playground, fenced, quiet_zones, colors, smells,
	food_own, defined_duration, quiet, crowdedness, food_variety, photo_url`

// InsertVenue inserts a venue row, generating an id when the record has none.
// Rows with a known id are inserted once; re-ingesting them is a no-op.
func InsertVenue(ctx context.Context, db *sql.DB, v venue.Venue) (string, error) {
	if db == nil {
		return "", errors.New("store: db is nil")
	}
	id := v.ID
	if id == "" {
		id = uuid.NewString()
	}
	if _, err := db.ExecContext(
		ctx,
		`INSERT INTO venues (`+venueColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (venue_id) DO NOTHING`,
		id, v.Name, v.Address, v.Playground, v.Fenced, v.QuietZones, v.Colors, v.Smells,
		v.FoodOwn, v.DefinedDuration, v.Quiet, v.Crowdedness, v.FoodVariety, v.PhotoURL,
	); err != nil {
		return "", fmt.Errorf("insert venue: %w", err)
	}
	return id, nil
}

// ListVenues returns every venue ordered by name. Free-text search narrows
// the listed rows in memory with venue.FilterRows.
func ListVenues(ctx context.Context, db *sql.DB) ([]venue.Venue, error) {
	if db == nil {
		return nil, errors.New("store: db is nil")
	}
	return queryVenues(ctx, db, `SELECT `+venueColumns+` FROM venues ORDER BY name`)
}

// FilterVenues applies the detailed filter form: ILIKE matches for scalar
// fields, IN lists for the multi-select fields. An empty form returns every
// venue.
func FilterVenues(ctx context.Context, db *sql.DB, filters venue.Filters) ([]venue.Venue, error) {
	if db == nil {
		return nil, errors.New("store: db is nil")
	}
	if filters.Empty() {
		return queryVenues(ctx, db, `SELECT `+venueColumns+` FROM venues ORDER BY name`)
	}

	stmt := `SELECT ` + venueColumns + ` FROM venues WHERE 1=1`
	var args []interface{}
	appendLike := func(column, value string) {
		if value == "" {
			return
		}
		stmt += " AND " + column + " ILIKE ?"
		args = append(args, "%"+value+"%")
	}
	appendIn := func(column string, values []string) {
		if len(values) == 0 {
			return
		}
		stmt += " AND " + column + " IN (" + placeholders(len(values)) + ")"
		for _, value := range values {
			args = append(args, value)
		}
	}

	appendLike("playground", filters.Playground)
	appendLike("fenced", filters.Fenced)
	appendLike("quiet_zones", filters.QuietZones)
	appendIn("colors", filters.Colors)
	appendIn("smells", filters.Smells)
	appendLike("food_own", filters.FoodOwn)
	appendLike("defined_duration", filters.DefinedDuration)
	appendIn("quiet", filters.Quiet)
	appendIn("crowdedness", filters.Crowdedness)
	appendIn("food_variety", filters.FoodVariety)
	appendLike("photo_url", filters.PhotoURL)

	stmt += " ORDER BY name"
	return queryVenues(ctx, db, stmt, args...)
}

// VenueByID fetches one venue, returning ErrNotFound when absent.
func VenueByID(ctx context.Context, db *sql.DB, id string) (venue.Venue, error) {
	if db == nil {
		return venue.Venue{}, errors.New("store: db is nil")
	}
	row := db.QueryRowContext(ctx, `SELECT `+venueColumns+` FROM venues WHERE venue_id = ?`, id)
	v, err := scanVenue(row)
	if errors.Is(err, sql.ErrNoRows) {
		return venue.Venue{}, ErrNotFound
	}
	if err != nil {
		return venue.Venue{}, fmt.Errorf("venue by id: %w", err)
	}
	return v, nil
}

func placeholders(count int) string {
	slots := make([]string, count)
	for i := range slots {
		slots[i] = "?"
	}
	return strings.Join(slots, ",")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVenue(row rowScanner) (venue.Venue, error) {
	var v venue.Venue
	err := row.Scan(
		&v.ID, &v.Name, &v.Address, &v.Playground, &v.Fenced, &v.QuietZones, &v.Colors, &v.Smells,
		&v.FoodOwn, &v.DefinedDuration, &v.Quiet, &v.Crowdedness, &v.FoodVariety, &v.PhotoURL,
	)
	return v, err
}

func queryVenues(ctx context.Context, db *sql.DB, stmt string, args ...interface{}) ([]venue.Venue, error) {
	rows, err := db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query venues: %w", err)
	}
	defer rows.Close()
	var out []venue.Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venues: %w", err)
	}
	return out, nil
}
