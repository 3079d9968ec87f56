// Package board holds the client-side task list and coordinates reorders against the API.
package board

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/roy-bentley/todo/internal/client"
	"github.com/roy-bentley/todo/internal/dto"
	"github.com/roy-bentley/todo/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrNoSuchPosition is returned when a reorder names a source outside the filtered view
var ErrNoSuchPosition = errors.New("no task at that position in the current view")

// TaskAPI is the part of the REST client the board depends on
type TaskAPI interface {
	ListTasks(ctx context.Context) ([]dto.TaskDTO, error)
	CreateTask(ctx context.Context, req dto.CreateTaskRequest) (dto.TaskDTO, error)
	UpdateTask(ctx context.Context, id uint64, req dto.UpdateTaskRequest) (dto.TaskDTO, error)
	DeleteTask(ctx context.Context, id uint64) error
}

// Board is the client state container: the full task list plus the active filter.
// State changes only through its methods; the lock is never held across API calls,
// so concurrent mutations resolve as last-response-wins.
type Board struct {
	api TaskAPI
	log logrus.FieldLogger

	mu     sync.Mutex
	tasks  []dto.TaskDTO
	filter Filter
}

// New creates an empty board showing all tasks
func New(api TaskAPI, log logrus.FieldLogger) *Board {
	return &Board{
		api:    api,
		log:    log,
		tasks:  []dto.TaskDTO{},
		filter: FilterAll,
	}
}

// Tasks returns a copy of the full list in order_index order
func (b *Board) Tasks() []dto.TaskDTO {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.tasks)
}

// Visible returns the tasks matching the active filter
func (b *Board) Visible() []dto.TaskDTO {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filter.Apply(b.tasks)
}

func (b *Board) Filter() Filter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filter
}

// SetFilter changes the active filter
func (b *Board) SetFilter(f Filter) error {
	if _, err := ParseFilter(string(f)); err != nil {
		return err
	}
	b.mu.Lock()
	b.filter = f
	b.mu.Unlock()
	return nil
}

// Refresh replaces the local list with the server's. On failure the previous list is kept.
func (b *Board) Refresh(ctx context.Context) error {
	tasks, err := b.api.ListTasks(ctx)
	if err != nil {
		b.log.WithError(err).Warn("failed to fetch tasks, keeping previous list")
		return err
	}

	sortByOrder(tasks)
	b.mu.Lock()
	b.tasks = tasks
	b.mu.Unlock()
	return nil
}

// Create adds a task and merges the returned record
func (b *Board) Create(ctx context.Context, title string, status models.TaskStatus) (dto.TaskDTO, error) {
	task, err := b.api.CreateTask(ctx, dto.CreateTaskRequest{Title: title, Status: status})
	if err != nil {
		b.mutationFailed(ctx, "create", err)
		return dto.TaskDTO{}, err
	}

	b.merge(task)
	return task, nil
}

// Update sends a partial update. A plain field change merges the returned record;
// an order change shifts other tasks on the server, so the list is refetched.
func (b *Board) Update(ctx context.Context, id uint64, req dto.UpdateTaskRequest) (dto.TaskDTO, error) {
	task, err := b.api.UpdateTask(ctx, id, req)
	if err != nil {
		b.mutationFailed(ctx, "update", err)
		return dto.TaskDTO{}, err
	}

	if req.OrderIndex != nil {
		_ = b.Refresh(ctx)
		return task, nil
	}
	b.merge(task)
	return task, nil
}

// SetStatus moves a task to any status; every transition is allowed
func (b *Board) SetStatus(ctx context.Context, id uint64, status models.TaskStatus) (dto.TaskDTO, error) {
	return b.Update(ctx, id, dto.UpdateTaskRequest{Status: &status})
}

// Delete removes a task and refetches, since the server renumbers the rest
func (b *Board) Delete(ctx context.Context, id uint64) error {
	if err := b.api.DeleteTask(ctx, id); err != nil {
		b.mutationFailed(ctx, "delete", err)
		return err
	}
	return b.Refresh(ctx)
}

// Reorder moves the task at position source of the filtered view to position destination.
//
// The full list is updated optimistically, then only the dragged task's new index (its
// destination in the view) is sent; a refetch reconciles the result. If the update or the
// refetch fails the list is refetched again, and if that fails too the pre-move list is restored.
// It reports whether a request was issued.
func (b *Board) Reorder(ctx context.Context, source, destination int) (bool, error) {
	b.mu.Lock()
	visible := b.filter.Apply(b.tasks)
	if source < 0 || source >= len(visible) {
		b.mu.Unlock()
		return false, fmt.Errorf("%w: %d", ErrNoSuchPosition, source)
	}
	if destination < 0 || destination >= len(visible) || source == destination {
		b.mu.Unlock()
		return false, nil
	}

	snapshot := slices.Clone(b.tasks)
	dragged := visible[source]
	b.tasks = Project(b.tasks, visible, source, destination)
	b.mu.Unlock()

	logger := b.log.WithFields(logrus.Fields{
		"task_id":     dragged.ID,
		"source":      source,
		"destination": destination,
	})

	_, updateErr := b.api.UpdateTask(ctx, dragged.ID, dto.UpdateTaskRequest{OrderIndex: &destination})
	if updateErr != nil {
		logger.WithError(updateErr).Warn("reorder failed, discarding local order")
	} else if b.Refresh(ctx) == nil {
		return true, nil
	}

	if err := b.Refresh(ctx); err != nil {
		logger.WithError(err).Warn("resync failed, restoring previous order")
		b.mu.Lock()
		b.tasks = snapshot
		b.mu.Unlock()
		if updateErr == nil {
			return true, err
		}
	}
	return true, updateErr
}

// merge upserts task by id and keeps the list sorted
func (b *Board) merge(task dto.TaskDTO) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := slices.IndexFunc(b.tasks, func(t dto.TaskDTO) bool { return t.ID == task.ID })
	if idx >= 0 {
		b.tasks[idx] = task
	} else {
		b.tasks = append(b.tasks, task)
	}
	sortByOrder(b.tasks)
}

// mutationFailed logs a failed call and resynchronizes unless the server merely rejected the input
func (b *Board) mutationFailed(ctx context.Context, op string, err error) {
	b.log.WithError(err).WithField("op", op).Warn("task mutation failed")
	if client.IsValidation(err) {
		return
	}
	_ = b.Refresh(ctx)
}
