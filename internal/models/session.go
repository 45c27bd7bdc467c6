package models

import "time"

// Session is the server-side record behind a login cookie. The cookie
// itself carries a signed token whose claims reference this row by ID,
// so deleting the row revokes the session even if the cookie is replayed.
type Session struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	Mood      string    `json:"mood,omitempty"` // last detected mood, set by /detect_mood
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given instant.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
