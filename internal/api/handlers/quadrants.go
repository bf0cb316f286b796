package handlers

import (
	"net/http"

	"sleeper-luck/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ListQuadrants handles GET /api/v1/quadrants
func ListQuadrants(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quadrants": models.QuadrantInfos()})
}
