package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"sleeper-luck/internal/api/models"
	"sleeper-luck/internal/data"
	"sleeper-luck/internal/logger"
	"sleeper-luck/internal/report"

	"github.com/gin-gonic/gin"
)

// Error codes returned in models.ErrorDetail.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeLeagueNotFound = "LEAGUE_NOT_FOUND"
	CodeUpstreamError  = "UPSTREAM_ERROR"
)

// MsgLeagueIDRequired is returned when the leagueId query parameter is missing.
const MsgLeagueIDRequired = "League ID is required"

// LeagueRunner produces a classified report for a league id. report.Engine is the
// production implementation.
type LeagueRunner interface {
	Run(ctx context.Context, leagueID string) (*report.Report, error)
}

// LeagueHandler handles league analysis requests
type LeagueHandler struct {
	runner LeagueRunner
}

// NewLeagueHandler creates a new league handler
func NewLeagueHandler(runner LeagueRunner) *LeagueHandler {
	return &LeagueHandler{runner: runner}
}

// GetLeague handles GET /api/sleeper and GET /api/v1/league
func (h *LeagueHandler) GetLeague(c *gin.Context) {
	r, ok := h.run(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.FromReport(r))
}

// GetRankings handles GET /api/v1/rankings
func (h *LeagueHandler) GetRankings(c *gin.Context) {
	r, ok := h.run(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.RankingsFromReport(r))
}

// run validates the request and executes the pipeline. It writes the error response
// itself and reports false when the caller should stop.
func (h *LeagueHandler) run(c *gin.Context) (*report.Report, bool) {
	var req models.LeagueRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError(CodeInvalidRequest, err.Error()))
		return nil, false
	}
	leagueID := strings.TrimSpace(req.LeagueID)
	if leagueID == "" {
		c.JSON(http.StatusBadRequest, models.NewError(CodeInvalidRequest, MsgLeagueIDRequired))
		return nil, false
	}

	r, err := h.runner.Run(c.Request.Context(), leagueID)
	if err != nil {
		status, body := leagueError(err)
		logger.WithLeague(leagueID).WithError(err).WithField("code", body.Error.Code).Warn("League analysis failed")
		c.JSON(status, body)
		return nil, false
	}
	return r, true
}

// leagueError maps a pipeline failure onto the HTTP response.
func leagueError(err error) (int, models.ErrorResponse) {
	resp := models.NewError(CodeUpstreamError, err.Error())

	var sErr *data.SleeperError
	if errors.As(err, &sErr) {
		if data.IsLeagueNotFound(err) {
			resp = models.NewError(CodeLeagueNotFound, sErr.Message)
		}
		resp.Error.Details = map[string]interface{}{
			"status_code": sErr.StatusCode,
		}
	}
	return http.StatusInternalServerError, resp
}
