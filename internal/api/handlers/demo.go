package handlers

import (
	"net/http"

	"sleeper-luck/internal/api/models"
	"sleeper-luck/internal/report"

	"github.com/gin-gonic/gin"
)

// GetDemo handles GET /api/demo and GET /api/v1/demo
func GetDemo(c *gin.Context) {
	c.JSON(http.StatusOK, models.FromReport(report.Demo()))
}

// GetDemoRankings handles GET /api/v1/demo/rankings
func GetDemoRankings(c *gin.Context) {
	c.JSON(http.StatusOK, models.RankingsFromReport(report.Demo()))
}
