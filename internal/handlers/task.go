package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roy-bentley/todo/internal/dto"
	apierrors "github.com/roy-bentley/todo/internal/errors"
	"github.com/roy-bentley/todo/internal/middleware"
	"github.com/roy-bentley/todo/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// RegisterRoutes mounts the task endpoints on the given group
func (h *TaskHandler) RegisterRoutes(r gin.IRouter) {
	tasks := r.Group("/tasks")
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("", h.CreateTask)
		tasks.GET("/:id", middleware.RequireTaskID(), h.GetTask)
		tasks.PUT("/:id", middleware.RequireTaskID(), h.UpdateTask)
		tasks.DELETE("/:id", middleware.RequireTaskID(), h.DeleteTask)
	}
}

// ListTasks returns all tasks ordered by order_index
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks(c.Request.Context())
	if err != nil {
		h.respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := middleware.GetTaskID(c)
	if !ok {
		apierrors.InternalError(c, "Task ID not found in context")
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		h.respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a new task at the end of the list
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), services.CreateTaskInput{
		Title:  req.Title,
		Status: req.Status,
	})
	if err != nil {
		h.respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask applies any subset of title, status and order_index
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := middleware.GetTaskID(c)
	if !ok {
		apierrors.InternalError(c, "Task ID not found in context")
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, services.UpdateTaskInput{
		Title:      req.Title,
		Status:     req.Status,
		OrderIndex: req.OrderIndex,
	})
	if err != nil {
		h.respondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask deletes a task and renumbers the rest
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := middleware.GetTaskID(c)
	if !ok {
		apierrors.InternalError(c, "Task ID not found in context")
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		h.respondWithServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) respondWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case services.IsValidationError(err):
		apierrors.BadRequest(c, err.Error())
	default:
		_ = c.Error(err)
		apierrors.InternalError(c, "")
	}
}
