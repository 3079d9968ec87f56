package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/roy-bentley/todo/internal/models"
	"github.com/roy-bentley/todo/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTitleRequired = errors.New("title is required")
	ErrTitleEmpty    = errors.New("title cannot be empty")
	ErrInvalidStatus = errors.New("status must be one of todo, in_progress, done")
)

// IsValidationError reports whether err was caused by invalid input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTitleRequired) || errors.Is(err, ErrTitleEmpty) || errors.Is(err, ErrInvalidStatus)
}

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
	log      logrus.FieldLogger
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, log logrus.FieldLogger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		log:      log,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title  string
	Status models.TaskStatus
}

// UpdateTaskInput represents input for updating a task
type UpdateTaskInput struct {
	Title      *string
	Status     *models.TaskStatus
	OrderIndex *int
}

// ListTasks returns every task in display order
func (s *TaskService) ListTasks(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a single task
func (s *TaskService) GetTask(ctx context.Context, taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// CreateTask validates the input and appends a new task
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	if input.Status == "" {
		input.Status = models.TaskStatusTodo
	}
	if !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	task := &models.Task{
		Title:  title,
		Status: input.Status,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"task_id":     task.ID,
		"order_index": task.OrderIndex,
	}).Info("task created")
	return task, nil
}

// UpdateTask applies a partial update to an existing task
func (s *TaskService) UpdateTask(ctx context.Context, taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	changes := repository.TaskChanges{
		Status:     input.Status,
		OrderIndex: input.OrderIndex,
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrTitleEmpty
		}
		changes.Title = &title
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	task, err := s.taskRepo.Update(ctx, taskID, changes)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	if input.OrderIndex != nil {
		s.log.WithFields(logrus.Fields{
			"task_id":     task.ID,
			"requested":   *input.OrderIndex,
			"order_index": task.OrderIndex,
		}).Info("task moved")
	}
	return task, nil
}

// DeleteTask removes a task; remaining tasks are renumbered by the repository
func (s *TaskService) DeleteTask(ctx context.Context, taskID uint64) error {
	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.log.WithField("task_id", taskID).Info("task deleted")
	return nil
}

// NormalizeOrder repairs the ordering so that indexes are 0..n-1
func (s *TaskService) NormalizeOrder(ctx context.Context) error {
	if err := s.taskRepo.Normalize(ctx); err != nil {
		return fmt.Errorf("failed to normalize task order: %w", err)
	}
	return nil
}
