package repository

import (
	"context"

	"github.com/roy-bentley/todo/internal/models"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// List returns every task ordered by order_index
	List(ctx context.Context) ([]models.Task, error)

	// FindByID finds a task by ID
	FindByID(ctx context.Context, id uint64) (*models.Task, error)

	// Create appends a task at the end of the ordering
	Create(ctx context.Context, task *models.Task) error

	// Update applies the given changes and returns the stored record
	Update(ctx context.Context, id uint64, changes TaskChanges) (*models.Task, error)

	// Delete removes a task and closes the gap it leaves in the ordering
	Delete(ctx context.Context, id uint64) error

	// Normalize renumbers all tasks to 0..n-1 keeping their relative order
	Normalize(ctx context.Context) error
}

// TaskChanges holds the fields of a partial update; nil fields are left untouched
type TaskChanges struct {
	Title      *string
	Status     *models.TaskStatus
	OrderIndex *int
}

// Empty reports whether no field is set
func (c TaskChanges) Empty() bool {
	return c.Title == nil && c.Status == nil && c.OrderIndex == nil
}
