package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"moodify/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName = "moodify_session"

	ctxSessionKey = "session"
	ctxTokenKey   = "sessionToken"
)

var errNoToken = errors.New("no session token")

// tokenFromRequest extracts the session token from the cookie, falling back
// to an Authorization bearer header for non-browser clients.
func tokenFromRequest(c *gin.Context) (string, error) {
	if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie != "" {
		return cookie, nil
	}

	header := c.GetHeader("Authorization")
	if header == "" {
		return "", errNoToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errNoToken
	}
	return parts[1], nil
}

// authenticate resolves the request to a live session, or fails.
func (h *Handler) authenticate(c *gin.Context) (models.Session, string, error) {
	token, err := tokenFromRequest(c)
	if err != nil {
		return models.Session{}, "", err
	}
	sess, err := h.services.Authenticate(c.Request.Context(), token)
	if err != nil {
		return models.Session{}, "", err
	}
	return sess, token, nil
}

// requirePageSession guards browser pages: anonymous requests are redirected
// to the login flow before any side effect runs.
func (h *Handler) requirePageSession(c *gin.Context) {
	sess, token, err := h.authenticate(c)
	if err != nil {
		c.Redirect(http.StatusFound, "/login?error="+url.QueryEscape("Please log in to continue."))
		c.Abort()
		return
	}
	c.Set(ctxSessionKey, sess)
	c.Set(ctxTokenKey, token)
	c.Next()
}

// requireAPISession guards JSON endpoints with a 401 instead of a redirect.
func (h *Handler) requireAPISession(c *gin.Context) {
	sess, token, err := h.authenticate(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "authentication required",
		})
		return
	}
	c.Set(ctxSessionKey, sess)
	c.Set(ctxTokenKey, token)
	c.Next()
}

// sessionFromContext returns the session stored by the middleware.
func sessionFromContext(c *gin.Context) models.Session {
	if v, ok := c.Get(ctxSessionKey); ok {
		if sess, ok := v.(models.Session); ok {
			return sess
		}
	}
	return models.Session{}
}

func tokenFromContext(c *gin.Context) string {
	return c.GetString(ctxTokenKey)
}
