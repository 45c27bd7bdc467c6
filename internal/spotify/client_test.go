package spotify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newFakeAPI(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client, srv
}

func TestNewClient(t *testing.T) {
	t.Run("Missing Client ID", func(t *testing.T) {
		_, err := NewClient(Config{ClientSecret: "secret"})
		if err == nil {
			t.Error("expected error for missing client id")
		}
	})

	t.Run("Missing Client Secret", func(t *testing.T) {
		_, err := NewClient(Config{ClientID: "id"})
		if err == nil {
			t.Error("expected error for missing client secret")
		}
	})

	t.Run("With Credentials", func(t *testing.T) {
		client, err := NewClient(Config{ClientID: "id", ClientSecret: "secret"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if client.baseURL != defaultBaseURL {
			t.Errorf("expected default base URL, got %s", client.baseURL)
		}
	})
}

func TestClient_Playlist(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/playlists/37i9dQZF1DXdPec7aLTmlC" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("market"); got != "US" {
				t.Errorf("expected market=US, got %q", got)
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": "37i9dQZF1DXdPec7aLTmlC",
				"name": "Happy Hits!",
				"description": "Hits to boost your mood.",
				"owner": {"id": "spotify", "display_name": "Spotify"},
				"public": true,
				"images": [{"url": "https://i.scdn.co/image/abc", "height": 640, "width": 640}],
				"external_urls": {"spotify": "https://open.spotify.com/playlist/37i9dQZF1DXdPec7aLTmlC"},
				"tracks": {
					"total": 2,
					"items": [
						{"added_at": "2024-01-01T00:00:00Z", "track": {"id": "t1", "name": "Song One", "duration_ms": 180000, "artists": [{"id": "a1", "name": "Artist One"}]}},
						{"added_at": "2024-01-02T00:00:00Z", "track": {"id": "t2", "name": "Song Two", "duration_ms": 210000, "artists": [{"id": "a2", "name": "Artist Two"}]}}
					]
				}
			}`))
		})

		pl, err := client.Playlist(context.Background(), "37i9dQZF1DXdPec7aLTmlC")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pl.Name != "Happy Hits!" {
			t.Errorf("name: got %q", pl.Name)
		}
		if pl.TrackCount() != 2 {
			t.Errorf("track count: got %d, want 2", pl.TrackCount())
		}
		if got := pl.TrackItems()[0].Track.Artists[0].Name; got != "Artist One" {
			t.Errorf("first artist: got %q", got)
		}
		if pl.URL() != "https://open.spotify.com/playlist/37i9dQZF1DXdPec7aLTmlC" {
			t.Errorf("url: got %q", pl.URL())
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"status":404,"message":"Not found."}}`, http.StatusNotFound)
		})

		_, err := client.Playlist(context.Background(), "missing")
		if !errors.Is(err, ErrPlaylistNotFound) {
			t.Fatalf("expected ErrPlaylistNotFound, got %v", err)
		}
	})

	t.Run("Server Error", func(t *testing.T) {
		client, _ := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		})

		_, err := client.Playlist(context.Background(), "any")
		if !errors.Is(err, ErrAPIRequest) {
			t.Fatalf("expected ErrAPIRequest, got %v", err)
		}
		if errors.Is(err, ErrPlaylistNotFound) {
			t.Fatal("non-404 failures must not map to not-found")
		}
	})

	t.Run("URL Fallback Without External URL", func(t *testing.T) {
		pl := &Playlist{ID: "abc123"}
		if got := pl.URL(); got != "https://open.spotify.com/playlist/abc123" {
			t.Errorf("fallback url: got %q", got)
		}
	})
}
