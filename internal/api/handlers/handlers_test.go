// Package handlers_test provides behavior tests for the API handlers package.
package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/hydrazone/internal/api/handlers"
	"github.com/jroosing/hydrazone/internal/config"
	"github.com/jroosing/hydrazone/internal/database"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestRouter(h *handlers.Handler) *gin.Engine {
	r := gin.New()

	api := r.Group("/api/v1")
	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)
	api.GET("/config", h.GetConfig)
	api.POST("/rows/parse", h.ParseRow)
	api.POST("/rows/parse-batch", h.ParseBatch)
	api.GET("/checks", h.ListChecks)
	api.GET("/checks/:id", h.GetCheck)
	api.DELETE("/checks", h.PurgeChecks)

	return r
}

func createTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Parser.Origin = "example.com."
	cfg.Parser.MaxLineLength = 64
	cfg.Parser.MaxBatchSize = 3
	require.NoError(t, cfg.Validate())
	return cfg
}

func openTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "checks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// createTestHandler returns a handler with a journal.
func createTestHandler(t *testing.T) (*handlers.Handler, *database.DB) {
	t.Helper()
	db := openTestDB(t)
	return handlers.New(createTestConfig(t), db, nil), db
}

func performRequest(r http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
