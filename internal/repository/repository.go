package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"moodify/internal/models"
)

// Typed uniqueness violations surfaced by Users.Create. The store enforces
// uniqueness; these let callers tell the two collisions apart.
var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already in use")
)

type Users interface {
	Create(ctx context.Context, username, email, passwordHash string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type Sessions interface {
	Create(ctx context.Context, s models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	SetMood(ctx context.Context, id, mood string) error
	Delete(ctx context.Context, id string) error
}

type MoodEvents interface {
	Append(ctx context.Context, e models.MoodEvent) error
	List(ctx context.Context, userID int, from, to time.Time, mood string) ([]models.MoodEvent, error)
}

type Repository struct {
	Users      Users
	Sessions   Sessions
	MoodEvents MoodEvents
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:      NewUserRepository(db),
		Sessions:   NewSessionRepository(db),
		MoodEvents: NewMoodEventRepository(db),
	}
}
