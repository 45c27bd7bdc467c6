package service

import (
	"context"
	"errors"
	"testing"

	"moodify/internal/models"
	"moodify/internal/spotify"
)

type fakeFetcher struct {
	playlist *spotify.Playlist
	err      error
	lastID   string
}

func (f *fakeFetcher) Playlist(_ context.Context, playlistID string) (*spotify.Playlist, error) {
	f.lastID = playlistID
	return f.playlist, f.err
}

func newTestPlaylists(f *fakeFetcher) *PlaylistService {
	moods := NewMoodService(DefaultMoodPlaylists(), newFakeSessions(), &fakeMoodEvents{})
	return NewPlaylistService(f, moods.Resolve, nil)
}

func TestPlaylistService_MetadataForMood(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := &fakeFetcher{playlist: &spotify.Playlist{ID: "37i9dQZF1DXdPec7aLTmlC", Name: "Happy Hits!"}}
		svc := newTestPlaylists(f)

		ref, pl := svc.MetadataForMood(ctx, "happy")
		if ref.Mood != models.MoodHappy {
			t.Fatalf("unexpected ref: %+v", ref)
		}
		if pl == nil || pl.Name != "Happy Hits!" {
			t.Fatalf("unexpected metadata: %+v", pl)
		}
		if f.lastID != ref.PlaylistID {
			t.Fatalf("fetched id %q, want %q", f.lastID, ref.PlaylistID)
		}
	})

	t.Run("not found degrades to absent metadata", func(t *testing.T) {
		svc := newTestPlaylists(&fakeFetcher{err: spotify.ErrPlaylistNotFound})

		ref, pl := svc.MetadataForMood(ctx, "sad")
		if pl != nil {
			t.Fatalf("expected nil metadata, got %+v", pl)
		}
		if ref.Mood != models.MoodSad {
			t.Fatalf("ref must still resolve, got %+v", ref)
		}
	})

	t.Run("other failures also degrade", func(t *testing.T) {
		svc := newTestPlaylists(&fakeFetcher{err: errors.New("network down")})

		if _, pl := svc.MetadataForMood(ctx, "angry"); pl != nil {
			t.Fatalf("expected nil metadata, got %+v", pl)
		}
	})
}

func TestPlaylistService_Metadata(t *testing.T) {
	ctx := context.Background()

	t.Run("propagates failures", func(t *testing.T) {
		svc := newTestPlaylists(&fakeFetcher{err: spotify.ErrPlaylistNotFound})
		if _, err := svc.Metadata(ctx, "deadbeef"); !errors.Is(err, spotify.ErrPlaylistNotFound) {
			t.Fatalf("expected ErrPlaylistNotFound, got %v", err)
		}
	})

	t.Run("passes the raw id through", func(t *testing.T) {
		f := &fakeFetcher{playlist: &spotify.Playlist{ID: "custom-id"}}
		svc := newTestPlaylists(f)
		pl, err := svc.Metadata(ctx, "custom-id")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pl.ID != "custom-id" || f.lastID != "custom-id" {
			t.Fatalf("id not passed through: %+v, fetched %q", pl, f.lastID)
		}
	})
}

func TestPlaylistService_URLForMood(t *testing.T) {
	svc := newTestPlaylists(&fakeFetcher{})
	catalog := DefaultMoodPlaylists()

	if got, want := svc.URLForMood("happy"), "https://open.spotify.com/playlist/"+catalog["happy"]; got != want {
		t.Fatalf("URLForMood(happy) = %q, want %q", got, want)
	}
	if got, want := svc.URLForMood("unheard-of"), "https://open.spotify.com/playlist/"+catalog["neutral"]; got != want {
		t.Fatalf("URLForMood(unknown) = %q, want %q", got, want)
	}
}
