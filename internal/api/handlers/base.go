// Package handlers implements the REST API endpoint handlers for HydraZone.
//
// REST API Endpoints:
//
// System:
//   - GET /api/v1/health - Health check status
//   - GET /api/v1/stats - Runtime statistics (uptime, memory, process, journal counts)
//   - GET /api/v1/config - Current configuration (API key redacted)
//
// Rows:
//   - POST /api/v1/rows/parse - Parse one resource-record line
//   - POST /api/v1/rows/parse-batch - Parse many lines independently
//
// Check journal:
//   - GET /api/v1/checks - Recent parse attempts, newest first
//   - GET /api/v1/checks/:id - One parse attempt
//   - DELETE /api/v1/checks - Purge the journal
//
// Authentication:
//
// When an API key is configured every endpoint except /health requires the
// X-API-Key header.
//
// @title HydraZone API
// @version 1.0
// @description Parses RFC 1035 master-file resource-record lines and reports precise diagnostics.
//
// @contact.name HydraZone Support
// @contact.url https://github.com/jroosing/hydrazone
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8080
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"log/slog"
	"time"

	"github.com/jroosing/hydrazone/internal/config"
	"github.com/jroosing/hydrazone/internal/database"
	"github.com/jroosing/hydrazone/internal/zone"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	cfg       *config.Config
	db        *database.DB // nil when the journal is disabled
	parser    *zone.Parser
	logger    *slog.Logger
	startTime time.Time
}

// New creates a new Handler. db may be nil.
func New(cfg *config.Config, db *database.DB, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		cfg:       cfg,
		db:        db,
		parser:    zone.NewParser(logger),
		logger:    logger,
		startTime: time.Now(),
	}
}

// DB returns the journal, or nil.
func (h *Handler) DB() *database.DB {
	return h.db
}
