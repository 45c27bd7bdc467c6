package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.tmpl", gin.H{
		"Message": c.Query("message"),
	})
}

func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{
		"Error":   c.Query("error"),
		"Message": c.Query("message"),
	})
}

func (h *Handler) signupPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.tmpl", gin.H{
		"Error": c.Query("error"),
	})
}

// @Summary      Dashboard
// @Tags         pages
// @Produce      html
// @Success      200
// @Failure      302  "redirect to login"
// @Router       /dashboard [get]
// @Security     CookieAuth
func (h *Handler) dashboard(c *gin.Context) {
	sess := sessionFromContext(c)
	c.HTML(http.StatusOK, "dashboard.tmpl", gin.H{
		"Mood": sess.Mood,
	})
}

func (h *Handler) account(c *gin.Context) {
	sess := sessionFromContext(c)
	c.HTML(http.StatusOK, "account.tmpl", gin.H{
		"Mood":      sess.Mood,
		"ExpiresAt": sess.ExpiresAt.Format("2006-01-02 15:04 MST"),
	})
}

// @Summary      Player
// @Description  Resolves the mood to a playlist and renders the player. The
// @Description  page degrades gracefully when playlist metadata is unavailable.
// @Tags         pages
// @Produce      html
// @Param        mood  query  string  false  "Mood label; unknown labels play the neutral playlist"
// @Success      200
// @Failure      302  "redirect to login"
// @Router       /player [get]
// @Security     CookieAuth
func (h *Handler) player(c *gin.Context) {
	sess := sessionFromContext(c)

	mood := c.Query("mood")
	if mood == "" {
		mood = sess.Mood
	}

	ref, playlist := h.services.MetadataForMood(c.Request.Context(), mood)
	display := mood
	if display == "" {
		display = ref.Mood
	}

	c.HTML(http.StatusOK, "player.tmpl", gin.H{
		"Mood":       display,
		"PlaylistID": ref.PlaylistID,
		"Playlist":   playlist,
	})
}
