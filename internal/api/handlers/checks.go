package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jroosing/hydrazone/internal/api/models"
	"github.com/jroosing/hydrazone/internal/database"
)

// ListChecks godoc
// @Summary List journaled checks
// @Description Returns the most recent parse attempts, newest first
// @Tags checks
// @Produce json
// @Param limit query int false "Maximum number of checks" default(100)
// @Success 200 {object} models.CheckListResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /checks [get]
func (h *Handler) ListChecks(c *gin.Context) {
	if !h.requireJournal(c) {
		return
	}

	limit := database.DefaultListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = n
	}

	checks, err := h.db.ListChecks(limit)
	if err != nil {
		h.logger.Error("failed to list checks", "err", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list checks"})
		return
	}

	out := make([]models.Check, 0, len(checks))
	for _, ch := range checks {
		out = append(out, checkModel(ch))
	}
	c.JSON(http.StatusOK, models.CheckListResponse{Checks: out, Count: len(out)})
}

// GetCheck godoc
// @Summary Get a journaled check
// @Tags checks
// @Produce json
// @Param id path string true "Check ID"
// @Success 200 {object} models.Check
// @Failure 404 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /checks/{id} [get]
func (h *Handler) GetCheck(c *gin.Context) {
	if !h.requireJournal(c) {
		return
	}

	ch, err := h.db.GetCheck(c.Param("id"))
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "check not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to get check", "err", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get check"})
		return
	}
	c.JSON(http.StatusOK, checkModel(ch))
}

// PurgeChecks godoc
// @Summary Purge the check journal
// @Tags checks
// @Produce json
// @Success 200 {object} models.PurgeResponse
// @Failure 503 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /checks [delete]
func (h *Handler) PurgeChecks(c *gin.Context) {
	if !h.requireJournal(c) {
		return
	}

	n, err := h.db.PurgeChecks()
	if err != nil {
		h.logger.Error("failed to purge checks", "err", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to purge checks"})
		return
	}
	h.logger.Info("check journal purged", "deleted", n)
	c.JSON(http.StatusOK, models.PurgeResponse{Deleted: n})
}

func (h *Handler) requireJournal(c *gin.Context) bool {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "check journal disabled"})
		return false
	}
	return true
}

func checkModel(c database.Check) models.Check {
	return models.Check{
		ID:         c.ID,
		Line:       c.Line,
		Source:     c.Source,
		Accepted:   c.Accepted,
		RecordType: c.RecordType,
		ErrKind:    c.ErrKind,
		Diagnostic: c.Diagnostic,
		CreatedAt:  c.CreatedAt,
	}
}
