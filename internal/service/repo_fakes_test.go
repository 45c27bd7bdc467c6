package service

import (
	"context"
	"strings"
	"time"

	"moodify/internal/models"
	"moodify/internal/repository"

	"github.com/google/uuid"
)

// ---- In-memory repository fakes ----

type fakeUsers struct {
	byEmail    map[string]models.User
	byUsername map[string]models.User
	nextID     int
	createErr  error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		byEmail:    map[string]models.User{},
		byUsername: map[string]models.User{},
		nextID:     1,
	}
}

func (f *fakeUsers) Count() int { return len(f.byEmail) }

func (f *fakeUsers) Create(_ context.Context, username, email, passwordHash string) (models.User, error) {
	if f.createErr != nil {
		return models.User{}, f.createErr
	}
	if _, ok := f.byUsername[username]; ok {
		return models.User{}, repository.ErrUsernameTaken
	}
	if _, ok := f.byEmail[email]; ok {
		return models.User{}, repository.ErrEmailTaken
	}
	u := models.User{ID: f.nextID, Username: username, Email: email, PasswordHash: passwordHash}
	f.nextID++
	f.byEmail[email] = u
	f.byUsername[username] = u
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.byEmail[strings.ToLower(email)]; ok {
		return &u, nil
	}
	return nil, nil
}

type fakeSessions struct {
	rows      map[string]models.Session
	createErr error
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{rows: map[string]models.Session{}}
}

func (f *fakeSessions) Create(_ context.Context, s models.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.rows[s.ID] = s
	return nil
}

func (f *fakeSessions) Get(_ context.Context, id string) (*models.Session, error) {
	if s, ok := f.rows[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (f *fakeSessions) SetMood(_ context.Context, id, mood string) error {
	if s, ok := f.rows[id]; ok {
		s.Mood = mood
		f.rows[id] = s
	}
	return nil
}

func (f *fakeSessions) Delete(_ context.Context, id string) error {
	delete(f.rows, id)
	return nil
}

type fakeMoodEvents struct {
	events    []models.MoodEvent
	appendErr error
	listErr   error

	lastFrom time.Time
	lastTo   time.Time
	lastMood string
}

func (f *fakeMoodEvents) Append(_ context.Context, e models.MoodEvent) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}
	f.events = append(f.events, e)
	return nil
}

func (f *fakeMoodEvents) List(_ context.Context, userID int, from, to time.Time, mood string) ([]models.MoodEvent, error) {
	f.lastFrom, f.lastTo, f.lastMood = from, to, mood
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.MoodEvent
	for _, e := range f.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}
