package api

import (
	"net/http"
	"strings"

	"sleeper-luck/internal/api/handlers"
	"sleeper-luck/internal/api/middleware"
	"sleeper-luck/internal/api/models"

	"github.com/gin-gonic/gin"
)

// Options configures NewRouter.
type Options struct {
	Runner      handlers.LeagueRunner
	CORSOrigins []string
}

// NewRouter wires middleware and every route onto a fresh gin engine.
func NewRouter(opts Options) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(opts.CORSOrigins))

	leagueHandler := handlers.NewLeagueHandler(opts.Runner)
	pageHandler := handlers.NewPageHandler(opts.Runner)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/", pageHandler.Index)

	// Unversioned aliases of the v1 league and demo endpoints. Errors use the same
	// nested {"error":{"code","message"}} body as v1.
	legacy := router.Group("/api")
	{
		legacy.GET("/sleeper", leagueHandler.GetLeague)
		legacy.GET("/demo", handlers.GetDemo)
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/league", leagueHandler.GetLeague)
		v1.GET("/rankings", leagueHandler.GetRankings)
		v1.GET("/demo", handlers.GetDemo)
		v1.GET("/demo/rankings", handlers.GetDemoRankings)
		v1.GET("/quadrants", handlers.ListQuadrants)
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, models.NewError("NOT_FOUND", "Not found"))
			return
		}
		c.Redirect(http.StatusFound, "/")
	})

	return router
}
