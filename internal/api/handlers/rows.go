package handlers

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jroosing/hydrazone/internal/api/models"
	"github.com/jroosing/hydrazone/internal/config"
	"github.com/jroosing/hydrazone/internal/database"
	"github.com/jroosing/hydrazone/internal/helpers"
	"github.com/jroosing/hydrazone/internal/zone"
)

// ParseRow godoc
// @Summary Parse a resource-record line
// @Description Parses one master-file line into its optional owner, TTL and class and its typed RDATA.
// @Description Successful rows are also converted to a fully qualified record using the configured origin and defaults.
// @Tags rows
// @Accept json
// @Produce json
// @Param request body models.ParseRowRequest true "Line to parse"
// @Success 200 {object} models.ParseRowResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ParseErrorResponse
// @Security ApiKeyAuth
// @Router /rows/parse [post]
func (h *Handler) ParseRow(c *gin.Context) {
	var req models.ParseRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	pc := h.parserConfig()
	if len(req.Line) > pc.MaxLineLength {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: fmt.Sprintf("line exceeds %d bytes", pc.MaxLineLength),
		})
		return
	}

	ok, resp, perr := h.parseOne(req.Line, fallback(pc, req.Owner, req.Origin))
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, perr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ParseBatch godoc
// @Summary Parse many resource-record lines
// @Description Parses each line independently. The response is 200 even when some lines are rejected.
// @Tags rows
// @Accept json
// @Produce json
// @Param request body models.ParseBatchRequest true "Lines to parse"
// @Success 200 {object} models.ParseBatchResponse
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /rows/parse-batch [post]
func (h *Handler) ParseBatch(c *gin.Context) {
	var req models.ParseBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	pc := h.parserConfig()
	if len(req.Lines) > pc.MaxBatchSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: fmt.Sprintf("batch exceeds %d lines", pc.MaxBatchSize),
		})
		return
	}

	fb := fallback(pc, req.Owner, req.Origin)
	resp := models.ParseBatchResponse{Results: make([]models.BatchResult, 0, len(req.Lines))}
	for i, line := range req.Lines {
		if len(line) > pc.MaxLineLength {
			resp.Rejected++
			resp.Results = append(resp.Results, models.BatchResult{
				Index: i,
				Error: &models.ParseErrorResponse{
					Error: fmt.Sprintf("line exceeds %d bytes", pc.MaxLineLength),
					Kind:  "too_long",
					Trace: []models.TraceEntry{},
				},
			})
			continue
		}

		ok, res, perr := h.parseOne(line, fb)
		if ok {
			resp.Accepted++
			resp.Results = append(resp.Results, models.BatchResult{Index: i, OK: true, Result: res})
		} else {
			resp.Rejected++
			resp.Results = append(resp.Results, models.BatchResult{Index: i, Error: perr})
		}
	}

	c.JSON(http.StatusOK, resp)
}

// parseOne parses line, journals the outcome and builds the response body.
func (h *Handler) parseOne(line string, fb zone.Fallback) (bool, *models.ParseRowResponse, *models.ParseErrorResponse) {
	row, err := h.parser.ParseRow(line)
	checkID := h.record(database.NewCheck(line, "api", row, err))

	if err != nil {
		perr := parseErrorResponse(err)
		perr.CheckID = checkID
		return false, nil, perr
	}

	resp := &models.ParseRowResponse{Row: rowModel(row), CheckID: checkID}
	rr, err := row.ToRR(fb)
	if err != nil {
		resp.RRError = err.Error()
		return true, resp, nil
	}
	resp.RR = rr.String()
	if wire, err := zone.PackRR(rr); err == nil {
		resp.Wire = hex.EncodeToString(wire)
	}
	return true, resp, nil
}

// record stores c in the journal, if there is one, and returns its id.
func (h *Handler) record(c database.Check) string {
	if h.db == nil {
		return ""
	}
	saved, err := h.db.RecordCheck(c)
	if err != nil {
		h.logger.Warn("failed to journal check", "err", err)
		return ""
	}
	return saved.ID
}

func (h *Handler) parserConfig() config.ParserConfig {
	if h.cfg != nil {
		return h.cfg.Parser
	}
	def := config.Default()
	_ = def.Validate()
	return def.Parser
}

func fallback(pc config.ParserConfig, owner, origin string) zone.Fallback {
	fb := pc.Fallback(owner)
	if origin != "" {
		fb.Origin = origin
	}
	return fb
}

func rowModel(row zone.Row) models.Row {
	m := models.Row{Name: row.Name, Text: row.String()}
	if row.TTL != nil {
		ttl := helpers.DurationSeconds(*row.TTL)
		m.TTL = &ttl
	}
	if row.Class != nil {
		class := row.Class.String()
		m.Class = &class
	}
	if row.Resource != nil {
		m.Type = row.Resource.Type().String()
		m.RData = row.Resource.String()
	}
	return m
}

func parseErrorResponse(err error) *models.ParseErrorResponse {
	resp := &models.ParseErrorResponse{
		Error: err.Error(),
		Kind:  zone.KindOf(err),
		Trace: []models.TraceEntry{},
	}

	var pe *zone.ParseError
	var te *zone.TokenizeError
	switch {
	case errors.As(err, &pe):
		resp.Error = pe.Err.Error()
		resp.Diagnostic = pe.Diagnostic()
		for _, e := range pe.Trace {
			entry := models.TraceEntry{
				Line:     e.Pos.Line,
				Column:   e.Pos.Column,
				Found:    e.Found,
				AtEnd:    e.AtEnd,
				Expected: e.Expected,
				Context:  e.Context,
			}
			if e.Err != nil {
				entry.Cause = e.Err.Error()
			}
			resp.Trace = append(resp.Trace, entry)
		}
	case errors.As(err, &te):
		resp.Diagnostic = err.Error()
		resp.Trace = append(resp.Trace, models.TraceEntry{
			Line:   te.Pos.Line,
			Column: te.Pos.Column,
			Cause:  zone.ErrTokenize.Error(),
		})
	}
	return resp
}
