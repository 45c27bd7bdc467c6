package models

import "time"

// Known mood labels produced by the client-side face analysis.
const (
	MoodHappy   = "happy"
	MoodSad     = "sad"
	MoodAngry   = "angry"
	MoodNeutral = "neutral"
)

// PlaylistRef binds a mood label to a public playlist on the streaming
// service. The set is compiled in; nothing here is persisted.
type PlaylistRef struct {
	Mood       string `json:"mood"`
	PlaylistID string `json:"playlist_id"`
}

// MoodEvent is a single detection record in the per-user mood history.
type MoodEvent struct {
	EventID    string    `json:"event_id"`
	UserID     int       `json:"user_id"`
	Mood       string    `json:"mood"`
	PlaylistID string    `json:"playlist_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
