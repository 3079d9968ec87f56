package dto

import (
	"time"

	"github.com/roy-bentley/todo/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID         uint64            `json:"id"`
	Title      string            `json:"title"`
	Status     models.TaskStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	OrderIndex int               `json:"order_index"`
}

// CreateTaskRequest is the body of POST /tasks
type CreateTaskRequest struct {
	Title  string            `json:"title"`
	Status models.TaskStatus `json:"status,omitempty"`
}

// UpdateTaskRequest is the body of PUT /tasks/:id; absent fields are left unchanged
type UpdateTaskRequest struct {
	Title      *string            `json:"title,omitempty"`
	Status     *models.TaskStatus `json:"status,omitempty"`
	OrderIndex *int               `json:"order_index,omitempty"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:         task.ID,
		Title:      task.Title,
		Status:     task.Status,
		CreatedAt:  task.CreatedAt,
		OrderIndex: task.OrderIndex,
	}
}

// ToTaskDTOs converts a slice of tasks, never returning nil
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}
