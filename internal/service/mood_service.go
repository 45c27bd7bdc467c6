package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"moodify/internal/models"
	"moodify/internal/repository"
)

// MoodPlaylists maps mood labels to public playlist ids on the streaming
// service. The map must contain a "neutral" entry; it is the fallback for
// every label not present.
type MoodPlaylists map[string]string

// DefaultMoodPlaylists returns the compiled-in mood catalog.
func DefaultMoodPlaylists() MoodPlaylists {
	return MoodPlaylists{
		models.MoodHappy:   "37i9dQZF1DXdPec7aLTmlC", // Happy Hits!
		models.MoodSad:     "37i9dQZF1DX7qK8ma5wgG1", // Life Sucks
		models.MoodAngry:   "37i9dQZF1DX1X7WV84927n", // Rock Hard
		models.MoodNeutral: "37i9dQZF1DWU13kKnk03AP", // Chill Vibes
	}
}

var (
	ErrMoodMissing      = errors.New("no mood detected")
	errInvalidTimeRange = errors.New("invalid time range: From must be <= To")
)

// MoodService resolves labels and keeps per-session mood state plus the
// append-only detection history.
type MoodService struct {
	playlists MoodPlaylists
	sessions  repository.Sessions
	events    repository.MoodEvents
}

func NewMoodService(playlists MoodPlaylists, sessions repository.Sessions, events repository.MoodEvents) *MoodService {
	return &MoodService{playlists: playlists, sessions: sessions, events: events}
}

// normalizeLabel trims spaces and lowercases a mood label.
func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// Resolve maps any string to a playlist ref. Unknown labels fall back to the
// neutral entry; the user-facing flow never fails over an unrecognized mood.
func (s *MoodService) Resolve(label string) models.PlaylistRef {
	mood := normalizeLabel(label)
	if id, ok := s.playlists[mood]; ok {
		return models.PlaylistRef{Mood: mood, PlaylistID: id}
	}
	return models.PlaylistRef{Mood: models.MoodNeutral, PlaylistID: s.playlists[models.MoodNeutral]}
}

// RecordDetection stores the detected label on the session and appends a
// history event with the resolved playlist.
func (s *MoodService) RecordDetection(ctx context.Context, sess models.Session, label string) (models.PlaylistRef, error) {
	mood := normalizeLabel(label)
	if mood == "" {
		return models.PlaylistRef{}, ErrMoodMissing
	}

	ref := s.Resolve(mood)
	if err := s.sessions.SetMood(ctx, sess.ID, mood); err != nil {
		return models.PlaylistRef{}, err
	}
	if err := s.events.Append(ctx, models.MoodEvent{
		UserID:     sess.UserID,
		Mood:       mood,
		PlaylistID: ref.PlaylistID,
	}); err != nil {
		return models.PlaylistRef{}, err
	}
	return ref, nil
}

// History lists a user's detection events after validating the filter.
func (s *MoodService) History(ctx context.Context, userID int, f HistoryFilter) ([]models.MoodEvent, error) {
	from, to := normalizeToUTC(f.From), normalizeToUTC(f.To)
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return nil, errInvalidTimeRange
	}
	return s.events.List(ctx, userID, from, to, normalizeLabel(f.Mood))
}

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
