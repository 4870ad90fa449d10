package main

import (
	"net/http"
	"time"

	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// unknown method on a known path -> 405
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(ctx *gin.Context) {
		response.Fail(ctx, http.StatusMethodNotAllowed, response.CodeMethodNotAllowed)
	})

	adminGate := middleware.AdminAuth(c.JWTManager, c.AdminGateEnabled())

	router.GET("/health", healthCheckHandler(c))

	// Site config
	router.GET("/config", c.ConfigHandler.Get)
	router.PUT("/config", adminGate, c.ConfigHandler.Put)
	router.GET("/config/versions", adminGate, c.ConfigHandler.Versions)
	router.POST("/config/versions/:ts/restore", adminGate, c.ConfigHandler.Restore)

	// Contact messages
	router.POST("/messages", c.MessageHandler.Create)
	router.GET("/messages", adminGate, c.MessageHandler.List)
	router.PATCH("/messages", adminGate, c.MessageHandler.Update)
	router.DELETE("/messages", adminGate, c.MessageHandler.Delete)
	router.GET("/messages/export", adminGate, c.MessageHandler.ExportCSV)

	// Files
	router.POST("/upload", adminGate, c.UploadHandler.Upload)
	router.GET("/resume/download", c.ResumeHandler.Download)

	// Admin gate
	router.POST("/admin/login", c.AdminHandler.Login)

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		blob := "ok"
		if err := c.Store.Ping(ctx.Request.Context()); err != nil {
			// degraded, not down: every read path has a fallback
			blob = "unavailable"
		}

		response.OK(ctx, http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
			"blob":    blob,
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	}
}
