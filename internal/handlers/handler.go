package handlers

import (
	"net/http"

	"moodify/internal/logger"
	"moodify/internal/service"
	"moodify/internal/web"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.SetHTMLTemplate(web.Templates())
	router.StaticFS("/static", http.FS(web.Static()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerPageRoutes(router)
	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// Live mood feed (HTTP upgrade) — same port
	router.GET("/ws", h.requireAPISession, h.wsConnect)

	return router
}

func (h *Handler) registerPageRoutes(r *gin.Engine) {
	r.GET("/", h.home)
	r.GET("/login", h.loginPage)
	r.GET("/signup", h.signupPage)

	pages := r.Group("/", h.requirePageSession)
	{
		pages.GET("/dashboard", h.dashboard)
		pages.GET("/account", h.account)
		pages.GET("/player", h.player)
		pages.GET("/logout", h.logout)
	}
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.POST("/signup", h.signUp)
	r.POST("/login", h.signIn)
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/", h.requireAPISession)
	{
		api.POST("/detect_mood", h.detectMood)
		api.GET("/get_playlist_url/:mood", h.getPlaylistURL)
		api.GET("/get_playlist_info/:id", h.getPlaylistInfo)
		api.GET("/history", h.getHistory)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
