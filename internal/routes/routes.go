package routes

import (
	"net/http"

	"brandlink_backend/internal/config"
	"brandlink_backend/internal/handlers"
	"brandlink_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter собирает gin-движок: сквозные middleware, health-check и все
// маршруты API под /api/v1.
func NewRouter(cfg *config.Config, db *gorm.DB, appHandlers *handlers.AppHandlers) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	appHandlers.RegisterAll(api)

	return router
}
