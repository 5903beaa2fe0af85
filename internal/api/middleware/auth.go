// Package middleware provides HTTP middleware for the HydraZone REST API,
// including API key authentication and request logging.
package middleware

import (
	"crypto/subtle"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/jroosing/hydrazone/internal/api/models"
)

// RequireAPIKey enforces a simple shared-secret API key.
// Clients must send `X-API-Key: <key>`. Requests whose full route path is
// listed in exempt pass without a key.
func RequireAPIKey(expected string, exempt ...string) gin.HandlerFunc {
	want := []byte(expected)
	return func(c *gin.Context) {
		if expected == "" || slices.Contains(exempt, c.FullPath()) {
			c.Next()
			return
		}
		got := []byte(c.GetHeader("X-API-Key"))
		if subtle.ConstantTimeCompare(got, want) == 1 {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
	}
}
