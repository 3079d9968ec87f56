package board

import (
	"fmt"

	"github.com/roy-bentley/todo/internal/dto"
	"github.com/roy-bentley/todo/internal/models"
)

// Filter selects which tasks are visible
type Filter string

const (
	FilterAll        Filter = "all"
	FilterTodo       Filter = Filter(models.TaskStatusTodo)
	FilterInProgress Filter = Filter(models.TaskStatusInProgress)
	FilterDone       Filter = Filter(models.TaskStatusDone)
)

// ParseFilter accepts "all" or any task status; "" means all
func ParseFilter(s string) (Filter, error) {
	if s == "" || Filter(s) == FilterAll {
		return FilterAll, nil
	}
	if models.TaskStatus(s).Valid() {
		return Filter(s), nil
	}
	return "", fmt.Errorf("invalid filter %q: must be all, todo, in_progress or done", s)
}

// Match reports whether task is visible under f
func (f Filter) Match(task dto.TaskDTO) bool {
	return f == FilterAll || models.TaskStatus(f) == task.Status
}

// Apply returns the tasks visible under f, keeping their order
func (f Filter) Apply(tasks []dto.TaskDTO) []dto.TaskDTO {
	out := make([]dto.TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
