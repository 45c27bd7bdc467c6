package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"moodify/internal/models"
	"moodify/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const defaultSessionTTL = 24 * time.Hour

// dummyPasswordHash is compared on the unknown-email path so that failing
// with a wrong email costs a bcrypt verify just like a wrong password does;
// response timing must not reveal whether an account exists.
var dummyPasswordHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

// Domain errors for auth flows.
var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrUsernameTaken      = repository.ErrUsernameTaken
	ErrEmailTaken         = repository.ErrEmailTaken
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNoSession          = errors.New("no active session")
)

// AuthService handles accounts and cookie-backed sessions.
type AuthService struct {
	users      repository.Users
	sessions   repository.Sessions
	signingKey []byte
	ttl        time.Duration
}

func NewAuthService(users repository.Users, sessions repository.Sessions, cfg Config) *AuthService {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		signingKey: []byte(cfg.SessionSigningKey),
		ttl:        ttl,
	}
}

// Claims defines JWT claims. The registered ID (jti) references the
// server-side session row, so revocation works even for a valid signature.
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// SignUp validates input, stores a bcrypt hash of the password (never the raw
// value) and immediately starts a session for the new user.
func (s *AuthService) SignUp(ctx context.Context, username, email, password string) (string, error) {
	username = strings.TrimSpace(username)
	email = normalizeEmail(email)
	if username == "" || email == "" || strings.TrimSpace(password) == "" {
		return "", ErrMissingFields
	}

	hash, err := hashPassword(password)
	if err != nil {
		return "", err
	}

	u, err := s.users.Create(ctx, username, email, hash)
	if err != nil {
		// ErrUsernameTaken / ErrEmailTaken pass through untouched.
		return "", err
	}

	return s.startSession(ctx, u.ID)
}

// SignIn validates credentials and starts a session. Absent user and wrong
// password collapse into one error so the response never reveals which.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", ErrMissingFields
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		_ = verifyPassword(string(dummyPasswordHash), password)
		return "", ErrInvalidCredentials
	}

	// bcrypt comparison is constant-time.
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.startSession(ctx, u.ID)
}

// Authenticate parses the token and checks the referenced session row is
// still live. A revoked or expired session fails even for a replayed cookie.
func (s *AuthService) Authenticate(ctx context.Context, token string) (models.Session, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return models.Session{}, err
	}

	sess, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		return models.Session{}, err
	}
	if sess == nil {
		return models.Session{}, ErrNoSession
	}
	if sess.Expired(time.Now()) {
		_ = s.sessions.Delete(ctx, sess.ID)
		return models.Session{}, ErrNoSession
	}
	return *sess, nil
}

// SignOut revokes the session server-side. The cookie becomes useless
// regardless of what the client keeps.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return err
	}
	return s.sessions.Delete(ctx, claims.ID)
}

// startSession persists a session row and issues the signed token for it.
func (s *AuthService) startSession(ctx context.Context, userID int) (string, error) {
	now := time.Now().UTC()
	sess := models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.ID,
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString(s.signingKey)
}

func (s *AuthService) parseToken(accessToken string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
