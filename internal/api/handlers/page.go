package handlers

import (
	"net/http"
	"strings"

	"sleeper-luck/internal/logger"
	"sleeper-luck/internal/report"
	"sleeper-luck/internal/web"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
)

// MsgEnterLeagueID is shown when the form is submitted without an id.
const MsgEnterLeagueID = "Please enter a league ID"

// PageHandler serves the server-rendered analyzer page
type PageHandler struct {
	runner LeagueRunner
}

// NewPageHandler creates a new page handler
func NewPageHandler(runner LeagueRunner) *PageHandler {
	return &PageHandler{runner: runner}
}

// Index handles GET /
//
//	/                 empty form
//	/?demo=1          static demo report
//	/?leagueId=ID     live report for ID
func (h *PageHandler) Index(c *gin.Context) {
	data := web.PageData{}
	status := http.StatusOK

	leagueID, submitted := c.GetQuery("leagueId")
	leagueID = strings.TrimSpace(leagueID)
	data.LeagueID = leagueID

	switch {
	case c.Query("demo") != "":
		data.Report = report.Demo()
	case submitted && leagueID == "":
		data.Error = MsgEnterLeagueID
		status = http.StatusBadRequest
	case submitted:
		r, err := h.runner.Run(c.Request.Context(), leagueID)
		if err != nil {
			code, body := leagueError(err)
			logger.WithLeague(leagueID).WithError(err).WithField("code", body.Error.Code).Warn("Page analysis failed")
			data.Error = body.Error.Message
			status = code
			break
		}
		data.Report = r
	}

	templ.Handler(web.Page(data), templ.WithStatus(status)).ServeHTTP(c.Writer, c.Request)
}
