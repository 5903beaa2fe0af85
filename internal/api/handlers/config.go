package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jroosing/hydrazone/internal/api/models"
	"github.com/jroosing/hydrazone/internal/helpers"
)

// GetConfig godoc
// @Summary Get current configuration
// @Description Returns the effective configuration (API key redacted)
// @Tags config
// @Produce json
// @Success 200 {object} models.ConfigResponse
// @Failure 500 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /config [get]
func (h *Handler) GetConfig(c *gin.Context) {
	if h.cfg == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "config unavailable"})
		return
	}

	p := h.cfg.Parser
	resp := models.ConfigResponse{
		Logging: h.cfg.Logging,
		API: models.APIConfigResponse{
			Enabled:      h.cfg.API.Enabled,
			Host:         h.cfg.API.Host,
			Port:         h.cfg.API.Port,
			ReusePort:    h.cfg.API.ReusePort,
			AuthRequired: h.cfg.API.APIKey != "",
		},
		Database: h.cfg.Database,
		Parser: models.ParserConfigResponse{
			Origin:        p.Origin,
			DefaultTTL:    helpers.DurationSeconds(p.DefaultTTL),
			DefaultClass:  p.DefaultClass.String(),
			MaxLineLength: p.MaxLineLength,
			MaxBatchSize:  p.MaxBatchSize,
		},
	}

	c.JSON(http.StatusOK, resp)
}
