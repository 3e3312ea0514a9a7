package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrNicknameTaken indicates a registration reused an existing nickname.
var ErrNicknameTaken = errors.New("nickname already taken")

// ErrInvalidCredentials indicates an unknown nickname or a wrong password.
// The two cases are deliberately indistinguishable to callers.
var ErrInvalidCredentials = errors.New("invalid nickname or password")

// User is a registered account.
type User struct {
	ID       string
	Nickname string
}

// RegisterUser creates an account with a bcrypt password hash.
func RegisterUser(ctx context.Context, db *sql.DB, nickname, password string) (User, error) {
	if db == nil {
		return User{}, errors.New("store: db is nil")
	}
	var existing string
	err := db.QueryRowContext(ctx, `SELECT user_id FROM users WHERE nickname = ?`, nickname).Scan(&existing)
	if err == nil {
		return User{}, ErrNicknameTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return User{}, fmt.Errorf("check nickname: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}
	id := uuid.NewString()
	if _, err := db.ExecContext(
		ctx,
		`INSERT INTO users (user_id, nickname, password_hash) VALUES (?, ?, ?)`,
		id, nickname, string(hash),
	); err != nil {
		// A concurrent registration can pass the pre-check and lose the
		// insert. The UNIQUE constraint is the real arbiter.
		if isDuplicateKey(err) {
			return User{}, ErrNicknameTaken
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}
	return User{ID: id, Nickname: nickname}, nil
}

// isDuplicateKey reports whether an insert failed on a UNIQUE constraint.
// DuckDB surfaces these as plain errors, so we match the message text.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

// Authenticate verifies a nickname/password pair against the stored hash.
func Authenticate(ctx context.Context, db *sql.DB, nickname, password string) (User, error) {
	if db == nil {
		return User{}, errors.New("store: db is nil")
	}
	var user User
	var hash string
	err := db.QueryRowContext(
		ctx,
		`SELECT user_id, nickname, password_hash FROM users WHERE nickname = ?`,
		nickname,
	).Scan(&user.ID, &user.Nickname, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, fmt.Errorf("lookup user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

// UserByNickname fetches an account, returning ErrNotFound when absent.
func UserByNickname(ctx context.Context, db *sql.DB, nickname string) (User, error) {
	if db == nil {
		return User{}, errors.New("store: db is nil")
	}
	var user User
	err := db.QueryRowContext(
		ctx,
		`SELECT user_id, nickname FROM users WHERE nickname = ?`,
		nickname,
	).Scan(&user.ID, &user.Nickname)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("lookup user: %w", err)
	}
	return user, nil
}
