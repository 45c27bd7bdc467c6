package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"moodify/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL        = `INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)`
	selectUserByEmailSQL = `SELECT id, username, email, password_hash FROM users WHERE email = ?`
)

// Create inserts a new user and returns the stored record. Uniqueness of
// username and email is enforced by the store; violations come back as
// ErrUsernameTaken / ErrEmailTaken so concurrent signups race safely.
func (r *UserRepository) Create(ctx context.Context, username, email, passwordHash string) (models.User, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, username, email, passwordHash)
	if err != nil {
		if dup := mapUniqueViolation(err); dup != nil {
			return models.User{}, dup
		}
		return models.User{}, fmt.Errorf("insert user %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}
	return models.User{
		ID:           int(lastID),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}, nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByEmailSQL, email).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", email, err)
	}
	return &u, nil
}

// mapUniqueViolation translates SQLite unique-constraint failures into typed
// errors. The driver reports the offending column in the message, e.g.
// "UNIQUE constraint failed: users.email".
func mapUniqueViolation(err error) error {
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return nil
	}
	switch {
	case strings.Contains(msg, "users.username"):
		return ErrUsernameTaken
	case strings.Contains(msg, "users.email"):
		return ErrEmailTaken
	}
	return nil
}
