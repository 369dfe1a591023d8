package api

import (
	"net/http"
	"slices"
	"time"

	authDelivery "planner-backend/internal/auth/delivery"
	"planner-backend/pkg/httputil"
	"planner-backend/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Router builds the gin engine with middleware and every route.
func (h *Handler) Router() *gin.Engine {
	httputil.InitValidator()

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(metrics.Middleware())
	r.Use(cors.New(h.corsConfig()))

	if h.config.MaxUploadBytes > 0 {
		// Multipart parts beyond this stay on disk instead of in memory.
		r.MaxMultipartMemory = h.config.MaxUploadBytes
	}

	SetupRoutes(r, h)
	return r
}

func (h *Handler) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization", "X-Requested-With"}
	cfg.MaxAge = 12 * time.Hour

	origins := h.config.CORSAllowedOrigins
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func SetupRoutes(r *gin.Engine, h *Handler) {
	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	requireAuth := authDelivery.AuthMiddleware(h.authUsecase)

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.authHandler.Register)
		auth.POST("/login", h.authHandler.Login)
		auth.POST("/refresh", h.authHandler.RefreshToken)
		auth.POST("/logout", requireAuth, h.authHandler.Logout)
	}

	users := r.Group("/users")
	users.Use(requireAuth)
	{
		users.GET("/:id", h.authHandler.GetUser)
		users.PATCH("/:id/update", h.authHandler.UpdateUser)
	}

	reminders := r.Group("/reminders")
	reminders.Use(requireAuth)
	{
		reminders.GET("", h.reminderHandler.GetReminders)
		reminders.POST("", h.reminderHandler.CreateReminder)
		reminders.GET("/:id", h.reminderHandler.GetReminder)
		reminders.PATCH("/:id", h.reminderHandler.UpdateReminder)
		reminders.DELETE("/:id", h.reminderHandler.DeleteReminder)
	}

	tasks := r.Group("/tasks")
	tasks.Use(requireAuth)
	{
		tasks.GET("", h.taskHandler.GetTasks)
		tasks.POST("", h.taskHandler.CreateTask)
		tasks.GET("/:id", h.taskHandler.GetTaskByID)
		tasks.PATCH("/:id", h.taskHandler.UpdateTask)
		tasks.DELETE("/:id", h.taskHandler.DeleteTask)
	}

	notes := r.Group("/notes")
	notes.Use(requireAuth)
	{
		notes.GET("", h.noteHandler.GetNotes)
		notes.POST("", h.noteHandler.CreateNote)
		notes.GET("/search", h.noteHandler.SearchNotes)
		notes.GET("/tags", h.noteHandler.GetTags)
		notes.GET("/tags/suggest", h.noteHandler.SuggestTags)
		notes.GET("/:id", h.noteHandler.GetNote)
		notes.PATCH("/:id", h.noteHandler.UpdateNote)
		notes.DELETE("/:id", h.noteHandler.DeleteNote)
	}

	attachments := r.Group("/attachments")
	attachments.Use(requireAuth)
	{
		attachments.POST("/upload", h.attachmentHandler.Upload)
		attachments.GET("", h.attachmentHandler.GetAttachments)
		attachments.DELETE("/:id", h.attachmentHandler.DeleteAttachment)
	}

	notifications := r.Group("/notifications")
	notifications.Use(requireAuth)
	{
		notifications.GET("", h.notificationHandler.GetNotifications)
		notifications.POST("", h.notificationHandler.CreateNotification)
		notifications.DELETE("/:id", h.notificationHandler.DeleteNotification)
	}
}
