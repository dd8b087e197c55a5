package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"db-console-api/internal/config"
	"db-console-api/internal/handlers"
	"db-console-api/internal/middleware"
	"db-console-api/pkg/server"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	// Initialize dependencies
	container, err := server.NewContainer(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize container")
	}
	defer container.Close()

	logger := container.Logger

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.StructuredLogger(logger))
	router.Use(middleware.PerformanceMonitor(logger, time.Second))

	handlers.SetupRoutes(router, &handlers.RouterConfig{
		Records: container.Records,
		Catalog: container.Catalog,
		Health:  container,
		Version: version,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	logger.WithFields(logrus.Fields{
		"port":    cfg.Port,
		"dialect": container.DB.Dialect().Name(),
	}).Info("Server started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server exited")
}
