// Package api provides the REST API for HydraZone.
// It exposes endpoints for health checks, statistics, configuration,
// row parsing and the check journal via a Gin-based HTTP server.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/hydrazone/internal/api/handlers"
	"github.com/jroosing/hydrazone/internal/api/middleware"
	"github.com/jroosing/hydrazone/internal/config"
	"github.com/jroosing/hydrazone/internal/database"
)

// Server is the REST API server.
//
// Security note: do not expose the API to untrusted networks without an API key.
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	engine     *gin.Engine
	httpServer *http.Server
}

// New builds the server. db may be nil, which disables the check journal.
func New(cfg *config.Config, db *database.DB, logger *slog.Logger) *Server {
	if cfg == nil {
		panic("api.New: cfg is nil")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.SlogRequestLogger(logger))

	h := handlers.New(cfg, db, logger)
	RegisterRoutes(engine, h, cfg)
	MountPlayground(engine, logger)

	addr := net.JoinHostPort(cfg.API.Host, strconv.Itoa(cfg.API.Port))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{cfg: cfg, logger: logger, engine: engine, httpServer: httpServer}
}

func (s *Server) Addr() string {
	if s.httpServer == nil {
		return ""
	}
	return s.httpServer.Addr
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// ListenAndServe blocks until the server stops. It returns nil after Shutdown.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var (
		ln  net.Listener
		err error
	)
	if s.cfg.API.ReusePort {
		ln, err = listenTCPReusePort(ctx, s.httpServer.Addr)
	} else {
		var lc net.ListenConfig
		ln, err = lc.Listen(ctx, "tcp", s.httpServer.Addr)
	}
	if err != nil {
		return err
	}

	s.logger.Info("api listening", "addr", ln.Addr().String(), "reuse_port", s.cfg.API.ReusePort)
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	err := s.httpServer.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
