package service

import (
	"context"
	"time"

	"moodify/internal/logger"
	"moodify/internal/models"
	"moodify/internal/repository"
	"moodify/internal/spotify"
)

// Authorization covers the whole account/session lifecycle. Tokens returned
// by SignUp/SignIn are opaque to callers; handlers put them in a cookie.
type Authorization interface {
	SignUp(ctx context.Context, username, email, password string) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, token string) (models.Session, error)
	SignOut(ctx context.Context, token string) error
}

// Moods resolves labels to playlist refs and keeps the per-session mood state.
type Moods interface {
	Resolve(label string) models.PlaylistRef
	RecordDetection(ctx context.Context, sess models.Session, label string) (models.PlaylistRef, error)
	History(ctx context.Context, userID int, f HistoryFilter) ([]models.MoodEvent, error)
}

// Playlists fetches display metadata from the streaming service.
type Playlists interface {
	// MetadataForMood resolves a label and fetches metadata; metadata is nil
	// when the upstream call fails, never an error, so page flows degrade.
	MetadataForMood(ctx context.Context, label string) (models.PlaylistRef, *spotify.Playlist)
	// Metadata fetches by raw playlist id and propagates failures for the
	// JSON lookup endpoints to turn into server errors.
	Metadata(ctx context.Context, playlistID string) (*spotify.Playlist, error)
	URLForMood(label string) string
}

// HistoryFilter supports mood-history filtering by time range and label.
type HistoryFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Mood string    // "", or one of the known labels
}

// Config carries the tunables the service layer needs from main.
type Config struct {
	SessionSigningKey string
	SessionTTL        time.Duration
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Moods
	Playlists
}

// NewService wires the repository layer and the Spotify client into concrete services.
func NewService(repos *repository.Repository, client *spotify.Client, cfg Config, log *logger.Logger) *Service {
	moods := NewMoodService(DefaultMoodPlaylists(), repos.Sessions, repos.MoodEvents)
	return &Service{
		Authorization: NewAuthService(repos.Users, repos.Sessions, cfg),
		Moods:         moods,
		Playlists:     NewPlaylistService(client, moods.Resolve, log),
	}
}
