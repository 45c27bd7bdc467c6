package handlers

import (
	"context"
	"time"

	"moodify/internal/models"
	"moodify/internal/service"
	"moodify/internal/spotify"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpToken string
	signUpErr   error
	signInToken string
	signInErr   error
	authSession models.Session
	authErr     error
	signOutErr  error

	// revokeOnSignOut makes Authenticate fail after SignOut, mimicking
	// server-side revocation for cookie-replay tests.
	revokeOnSignOut bool

	lastSignUpUsername string
	lastSignUpEmail    string
	lastSignUpPassword string
	lastSignInEmail    string
	lastAuthToken      string
	signOutCalls       int
	lastSignOutToken   string
}

func (m *mockAuth) SignUp(_ context.Context, username, email, password string) (string, error) {
	m.lastSignUpUsername = username
	m.lastSignUpEmail = email
	m.lastSignUpPassword = password
	return m.signUpToken, m.signUpErr
}

func (m *mockAuth) SignIn(_ context.Context, email, _ string) (string, error) {
	m.lastSignInEmail = email
	return m.signInToken, m.signInErr
}

func (m *mockAuth) Authenticate(_ context.Context, token string) (models.Session, error) {
	m.lastAuthToken = token
	return m.authSession, m.authErr
}

func (m *mockAuth) SignOut(_ context.Context, token string) error {
	m.signOutCalls++
	m.lastSignOutToken = token
	if m.revokeOnSignOut {
		m.authErr = service.ErrNoSession
	}
	return m.signOutErr
}

type mockMoods struct {
	recordRef models.PlaylistRef
	recordErr error
	history   []models.MoodEvent
	histErr   error

	lastRecordedMood string
	lastRecordedSess models.Session
	lastHistUserID   int
	lastHistFilter   service.HistoryFilter
}

func (m *mockMoods) Resolve(label string) models.PlaylistRef {
	catalog := service.DefaultMoodPlaylists()
	if id, ok := catalog[label]; ok {
		return models.PlaylistRef{Mood: label, PlaylistID: id}
	}
	return models.PlaylistRef{Mood: models.MoodNeutral, PlaylistID: catalog[models.MoodNeutral]}
}

func (m *mockMoods) RecordDetection(_ context.Context, sess models.Session, label string) (models.PlaylistRef, error) {
	m.lastRecordedSess = sess
	m.lastRecordedMood = label
	if m.recordErr != nil {
		return models.PlaylistRef{}, m.recordErr
	}
	if m.recordRef.PlaylistID != "" {
		return m.recordRef, nil
	}
	return m.Resolve(label), nil
}

func (m *mockMoods) History(_ context.Context, userID int, f service.HistoryFilter) ([]models.MoodEvent, error) {
	m.lastHistUserID = userID
	m.lastHistFilter = f
	return m.history, m.histErr
}

type mockPlaylists struct {
	metadata    *spotify.Playlist
	metadataErr error

	lastMetadataID string
	lastMoodLabel  string
}

func (m *mockPlaylists) MetadataForMood(_ context.Context, label string) (models.PlaylistRef, *spotify.Playlist) {
	m.lastMoodLabel = label
	ref := (&mockMoods{}).Resolve(label)
	if m.metadataErr != nil {
		return ref, nil
	}
	return ref, m.metadata
}

func (m *mockPlaylists) Metadata(_ context.Context, playlistID string) (*spotify.Playlist, error) {
	m.lastMetadataID = playlistID
	return m.metadata, m.metadataErr
}

func (m *mockPlaylists) URLForMood(label string) string {
	return "https://open.spotify.com/playlist/" + (&mockMoods{}).Resolve(label).PlaylistID
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// liveSession is a convenient authenticated session for protected-route tests.
func liveSession(userID int) models.Session {
	now := time.Now().UTC()
	return models.Session{
		ID:        "sess-test",
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}
