// Package server assembles the HTTP router for the task API.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roy-bentley/todo/internal/config"
	"github.com/roy-bentley/todo/internal/handlers"
	"github.com/roy-bentley/todo/internal/middleware"
	"github.com/roy-bentley/todo/internal/repository"
	"github.com/roy-bentley/todo/internal/services"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers onto a gin engine
func NewRouter(cfg *config.Config, db *gorm.DB, log logrus.FieldLogger) *gin.Engine {
	taskRepo := repository.NewTaskRepository(db)
	taskService := services.NewTaskService(taskRepo, log)
	taskHandler := handlers.NewTaskHandler(taskService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api")
	{
		api.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message": "ToDo API is running",
			})
		})
		taskHandler.RegisterRoutes(api)
	}

	return r
}
