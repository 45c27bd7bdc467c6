package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const errFetchPlaylistInfo = "Error fetching playlist information"

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Playlist URL for a mood
// @Description  Resolution is total: unknown moods return the neutral playlist.
// @Tags         playlists
// @Produce      json
// @Param        mood  path  string  true  "Mood label"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /get_playlist_url/{mood} [get]
// @Security     CookieAuth
func (h *Handler) getPlaylistURL(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"playlist_url": h.services.URLForMood(c.Param("mood")),
	})
}

// @Summary      Playlist metadata by id
// @Tags         playlists
// @Produce      json
// @Param        id  path  string  true  "Playlist id"
// @Success      200  {object}  spotify.Playlist
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /get_playlist_info/{id} [get]
// @Security     CookieAuth
func (h *Handler) getPlaylistInfo(c *gin.Context) {
	id := c.Param("id")
	playlist, err := h.services.Metadata(c.Request.Context(), id)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errFetchPlaylistInfo,
			"playlist_info_failed", err, "playlist_id", id)
		return
	}
	c.JSON(http.StatusOK, playlist)
}
