package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/roy-bentley/todo/internal/config"
	"github.com/roy-bentley/todo/internal/database"
	"github.com/roy-bentley/todo/internal/repository"
	"github.com/roy-bentley/todo/internal/server"
	"github.com/roy-bentley/todo/internal/services"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := log.New()
	logger.SetOutput(os.Stdout)
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("invalid LOG_LEVEL %q, using info", cfg.LogLevel)
	}
	if cfg.IsRelease() {
		logger.SetFormatter(&log.JSONFormatter{})
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db, logger); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	// Repair any ordering left inconsistent by earlier concurrent writers
	taskService := services.NewTaskService(repository.NewTaskRepository(db), logger)
	if err := taskService.NormalizeOrder(context.Background()); err != nil {
		logger.Fatalf("Failed to normalize task order: %v", err)
	}

	r := server.NewRouter(cfg, db, logger)

	// Start server
	addr := ":" + cfg.Port
	logger.Infof("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
