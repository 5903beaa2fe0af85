package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jroosing/hydrazone/internal/api/handlers"
	"github.com/jroosing/hydrazone/internal/api/middleware"
	"github.com/jroosing/hydrazone/internal/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jroosing/hydrazone/internal/api/docs" // swagger docs
)

// healthPath is reachable without an API key so probes need no secret.
const healthPath = "/api/v1/health"

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// Optional API key protection.
	if cfg != nil && cfg.API.APIKey != "" {
		api.Use(middleware.RequireAPIKey(cfg.API.APIKey, healthPath))
	}

	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)
	api.GET("/config", h.GetConfig)

	api.POST("/rows/parse", h.ParseRow)
	api.POST("/rows/parse-batch", h.ParseBatch)

	api.GET("/checks", h.ListChecks)
	api.GET("/checks/:id", h.GetCheck)
	api.DELETE("/checks", h.PurgeChecks)
}
