package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sleeper-luck/internal/api"
	"sleeper-luck/internal/config"
	"sleeper-luck/internal/data"
	"sleeper-luck/internal/logger"
	"sleeper-luck/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		logger.GetLogger().WithError(err).Fatal("Invalid configuration")
	}

	log := logger.InitLogger(cfg.Log.Level, !cfg.IsProduction())
	if cfg.Log.Format == "json" {
		logger.UseJSONFormatter()
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	client := data.NewSleeperClient(cfg.Sleeper.BaseURL, cfg.Sleeper.Timeout)
	if cfg.CacheEnabled() {
		// Development only; never built when API_ENV=production.
		client.Cache = data.NewResponseCache(cfg.Sleeper.Cache.TTL)
		log.WithField("ttl", cfg.Sleeper.Cache.TTL).Warn("Sleeper response cache enabled (development only)")
	}

	router := api.NewRouter(api.Options{
		Runner:      report.New(client),
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{
			"addr":     srv.Addr,
			"env":      cfg.Server.Env,
			"upstream": cfg.Sleeper.BaseURL,
		}).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Sleeper.Timeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
}
