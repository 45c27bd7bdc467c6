package service

import (
	"context"
	"errors"

	"moodify/internal/logger"
	"moodify/internal/models"
	"moodify/internal/spotify"
)

// metadataFetcher is the slice of the Spotify client this service needs.
type metadataFetcher interface {
	Playlist(ctx context.Context, playlistID string) (*spotify.Playlist, error)
}

// PlaylistService fetches display metadata for resolved playlists.
type PlaylistService struct {
	client  metadataFetcher
	resolve func(label string) models.PlaylistRef
	log     *logger.Logger
}

func NewPlaylistService(client metadataFetcher, resolve func(string) models.PlaylistRef, log *logger.Logger) *PlaylistService {
	return &PlaylistService{client: client, resolve: resolve, log: log}
}

// MetadataForMood resolves the label and fetches metadata. Upstream failure
// yields nil metadata, never an error; the player renders without extended
// info rather than aborting.
func (s *PlaylistService) MetadataForMood(ctx context.Context, label string) (models.PlaylistRef, *spotify.Playlist) {
	ref := s.resolve(label)

	pl, err := s.client.Playlist(ctx, ref.PlaylistID)
	if err != nil {
		if errors.Is(err, spotify.ErrPlaylistNotFound) {
			if s.log != nil {
				s.log.Errorw("playlist_not_found", "mood", ref.Mood, "playlist_id", ref.PlaylistID)
			}
		} else if s.log != nil {
			s.log.Errorw("playlist_fetch_failed", "mood", ref.Mood, "playlist_id", ref.PlaylistID, "err", err)
		}
		return ref, nil
	}
	return ref, pl
}

// Metadata fetches by raw playlist id and lets the caller decide; the direct
// JSON lookup endpoints turn failures into server errors.
func (s *PlaylistService) Metadata(ctx context.Context, playlistID string) (*spotify.Playlist, error) {
	return s.client.Playlist(ctx, playlistID)
}

// URLForMood returns the public playlist address for a mood label.
func (s *PlaylistService) URLForMood(label string) string {
	ref := s.resolve(label)
	return "https://open.spotify.com/playlist/" + ref.PlaylistID
}
