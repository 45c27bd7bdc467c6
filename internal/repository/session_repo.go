package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"moodify/internal/models"
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

var _ Sessions = (*SessionRepository)(nil)

const (
	insertSessionSQL = `INSERT INTO sessions (id, user_id, mood, created_at, expires_at) VALUES (?, ?, ?, ?, ?)`
	selectSessionSQL = `SELECT id, user_id, mood, created_at, expires_at FROM sessions WHERE id = ?`
	updateMoodSQL    = `UPDATE sessions SET mood = ? WHERE id = ?`
	deleteSessionSQL = `DELETE FROM sessions WHERE id = ?`
)

// Create persists a new session row.
func (r *SessionRepository) Create(ctx context.Context, s models.Session) error {
	_, err := r.db.ExecContext(ctx, insertSessionSQL,
		s.ID,
		s.UserID,
		s.Mood,
		s.CreatedAt.UTC(),
		s.ExpiresAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert session %q: %w", s.ID, err)
	}
	return nil
}

// Get fetches a session by id. Returns (nil, nil) if not found, which callers
// treat as a revoked or never-issued session.
func (r *SessionRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	var (
		s    models.Session
		mood sql.NullString
	)
	err := r.db.QueryRowContext(ctx, selectSessionSQL, id).
		Scan(&s.ID, &s.UserID, &mood, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select session %q: %w", id, err)
	}
	if mood.Valid {
		s.Mood = mood.String
	}
	s.CreatedAt = s.CreatedAt.UTC()
	s.ExpiresAt = s.ExpiresAt.UTC()
	return &s, nil
}

// SetMood records the latest detected mood on the session row.
func (r *SessionRepository) SetMood(ctx context.Context, id, mood string) error {
	if _, err := r.db.ExecContext(ctx, updateMoodSQL, mood, id); err != nil {
		return fmt.Errorf("update mood for session %q: %w", id, err)
	}
	return nil
}

// Delete removes a session row; deleting an absent row is not an error.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteSessionSQL, id); err != nil {
		return fmt.Errorf("delete session %q: %w", id, err)
	}
	return nil
}
