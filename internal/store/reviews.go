package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Review is one submitted review joined with its author and venue names.
type Review struct {
	ID        string
	Text      string
	Nickname  string
	VenueName string
	CreatedAt time.Time
}

// AddReview records a review by a user for a venue.
func AddReview(ctx context.Context, db *sql.DB, userID, venueID, text string) (string, error) {
	if db == nil {
		return "", errors.New("store: db is nil")
	}
	if text == "" {
		return "", errors.New("store: review text is required")
	}
	id := uuid.NewString()
	if _, err := db.ExecContext(
		ctx,
		`INSERT INTO reviews (review_id, user_id, venue_id, review_text) VALUES (?, ?, ?, ?)`,
		id, userID, venueID, text,
	); err != nil {
		return "", fmt.Errorf("insert review: %w", err)
	}
	return id, nil
}

// ListReviews returns every review joined with users and venues, newest first.
func ListReviews(ctx context.Context, db *sql.DB) ([]Review, error) {
	if db == nil {
		return nil, errors.New("store: db is nil")
	}
	rows, err := db.QueryContext(ctx, `
		SELECT reviews.review_id, reviews.review_text, reviews.created_at,
		       users.nickname, venues.name
		FROM reviews
		JOIN users ON reviews.user_id = users.user_id
		JOIN venues ON reviews.venue_id = venues.venue_id
		ORDER BY reviews.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()
	var out []Review
	for rows.Next() {
		var review Review
		if err := rows.Scan(&review.ID, &review.Text, &review.CreatedAt, &review.Nickname, &review.VenueName); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		out = append(out, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}
	return out, nil
}
