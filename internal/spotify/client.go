// Minimal Spotify Web API client for public playlist metadata.
//
// Response types based on https://developer.spotify.com/documentation/web-api/reference/
package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2/clientcredentials"
)

const (
	tokenURL       = "https://accounts.spotify.com/api/token"
	defaultBaseURL = "https://api.spotify.com/v1"

	requestTimeout = 10 * time.Second
)

// Typed failures for callers that need to tell "gone" from "broken".
var (
	ErrPlaylistNotFound = errors.New("playlist not found")
	ErrAPIRequest       = errors.New("spotify API request failed")
)

// Image represents an image resource.
type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// Owner identifies the playlist owner.
type Owner struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// Artist represents a Spotify artist (trimmed to display fields).
type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Track represents a track within a playlist.
type Track struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Artists    []Artist `json:"artists"`
	DurationMS int      `json:"duration_ms"`
}

// PlaylistTrack represents a track entry in a playlist context.
type PlaylistTrack struct {
	AddedAt string `json:"added_at"`
	Track   Track  `json:"track"`
}

type playlistTracks struct {
	Total int             `json:"total"`
	Items []PlaylistTrack `json:"items"`
}

type externalURLs struct {
	Spotify string `json:"spotify"`
}

// Playlist represents a Spotify playlist.
type Playlist struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Owner        Owner          `json:"owner"`
	Public       bool           `json:"public"`
	Tracks       playlistTracks `json:"tracks"`
	Images       []Image        `json:"images"`
	ExternalURLs externalURLs   `json:"external_urls"`
	URI          string         `json:"uri"`
}

// URL returns the public web address of the playlist.
func (p *Playlist) URL() string {
	if p.ExternalURLs.Spotify != "" {
		return p.ExternalURLs.Spotify
	}
	return "https://open.spotify.com/playlist/" + p.ID
}

// TrackCount returns the number of tracks reported by the API.
func (p *Playlist) TrackCount() int { return p.Tracks.Total }

// TrackItems returns the track entries included in the response.
func (p *Playlist) TrackItems() []PlaylistTrack { return p.Tracks.Items }

// Config carries credentials and optional overrides for a Client.
type Config struct {
	ClientID     string
	ClientSecret string

	// BaseURL and HTTPClient exist so tests can point the client at a fake
	// server; both default to the real Spotify endpoints when empty.
	BaseURL    string
	HTTPClient *http.Client
}

// Client talks to the Spotify Web API using the client-credentials flow.
// Only public resources are reachable; no user consent is involved.
type Client struct {
	httpClient *http.Client
	baseURL    string
	market     string
}

// NewClient builds a Client from credentials. The underlying HTTP client
// handles token acquisition and refresh transparently and has a bounded
// timeout so a slow upstream cannot stall a request indefinitely.
func NewClient(cfg Config) (*Client, error) {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		if cfg.ClientID == "" {
			return nil, fmt.Errorf("missing spotify client id")
		}
		if cfg.ClientSecret == "" {
			return nil, fmt.Errorf("missing spotify client secret")
		}
		cc := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     tokenURL,
		}
		httpClient = cc.Client(context.Background())
	}
	httpClient.Timeout = requestTimeout

	return &Client{
		httpClient: httpClient,
		baseURL:    base,
		market:     "US",
	}, nil
}

// doRequest performs a GET against the API and decodes the response into result.
func (c *Client) doRequest(ctx context.Context, endpoint string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrPlaylistNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("%w: status %d", ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// Playlist retrieves a public playlist by ID.
func (c *Client) Playlist(ctx context.Context, playlistID string) (*Playlist, error) {
	endpoint := fmt.Sprintf("/playlists/%s?market=%s", url.PathEscape(playlistID), c.market)

	var playlist Playlist
	if err := c.doRequest(ctx, endpoint, &playlist); err != nil {
		return nil, err
	}
	return &playlist, nil
}
