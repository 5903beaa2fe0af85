package handlers

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/jroosing/hydrazone/internal/api/models"
)

// Health godoc
// @Summary Health check
// @Description Returns server health status. Reports 503 when the check journal is unreachable.
// @Tags system
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Health(); err != nil {
			h.logger.Warn("journal health check failed", "err", err)
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "journal unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Stats godoc
// @Summary Server statistics
// @Description Returns runtime statistics including memory, goroutines, process usage and check journal counts
// @Tags system
// @Produce json
// @Success 200 {object} models.ServerStatsResponse
// @Security ApiKeyAuth
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)

	resp := models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
		NumCPU:        runtime.NumCPU(),
		Process:       processStats(),
	}

	if h.db != nil {
		stats, err := h.db.CheckStats()
		if err != nil {
			h.logger.Warn("failed to read journal stats", "err", err)
		} else {
			resp.Journal = &models.JournalStats{
				Total:    stats.Total,
				Accepted: stats.Accepted,
				Rejected: stats.Rejected,
				ByType:   stats.ByType,
				ByKind:   stats.ByKind,
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

// processStats returns nil when the platform does not expose the numbers.
func processStats() *models.ProcessStats {
	p, err := process.NewProcess(int32(os.Getpid())) //nolint:gosec // pids fit in int32
	if err != nil {
		return nil
	}
	mem, err := p.MemoryInfo()
	if err != nil {
		return nil
	}
	cpu, err := p.CPUPercent()
	if err != nil {
		cpu = 0
	}
	return &models.ProcessStats{
		RSSMB:      float64(mem.RSS) / 1024 / 1024,
		CPUPercent: cpu,
	}
}
