package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const errNoMood = "No mood detected. Please try again."

// Request DTO for mood submission from the client-side face analysis.
type detectMoodRequest struct {
	Mood string `json:"mood"`
}

// DetectMoodResponse is an exported model for Swagger docs of the detection payload.
type DetectMoodResponse struct {
	Mood        string `json:"mood" example:"happy"`
	Message     string `json:"message" example:"You look happy!"`
	RedirectURL string `json:"redirect_url" example:"/player?mood=happy"`
}

// @Summary      Submit detected mood
// @Description  Stores the mood on the session, records a history event and
// @Description  returns where the player lives for that mood.
// @Tags         mood
// @Accept       json
// @Produce      json
// @Param        body  body   detectMoodRequest  true  "Mood payload"
// @Success      200   {object}  DetectMoodResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /detect_mood [post]
// @Security     CookieAuth
func (h *Handler) detectMood(c *gin.Context) {
	var req detectMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errNoMood})
		return
	}

	mood := strings.ToLower(strings.TrimSpace(req.Mood))
	if mood == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errNoMood})
		return
	}

	sess := sessionFromContext(c)
	if _, err := h.services.RecordDetection(c.Request.Context(), sess, mood); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError,
			"An error occurred while detecting mood. Please try again later.",
			"mood_record_failed", err, "mood", mood)
		return
	}

	if h.log != nil {
		h.log.Infow("mood_detected", "mood", mood, "user_id", sess.UserID)
	}

	c.JSON(http.StatusOK, DetectMoodResponse{
		Mood:        mood,
		Message:     fmt.Sprintf("You look %s!", mood),
		RedirectURL: "/player?mood=" + url.QueryEscape(mood),
	})
}
