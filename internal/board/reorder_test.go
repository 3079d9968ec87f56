package board

import (
	"testing"

	"github.com/roy-bentley/todo/internal/dto"
	"github.com/roy-bentley/todo/internal/models"
	"github.com/stretchr/testify/assert"
)

func task(id uint64, title string, status models.TaskStatus, order int) dto.TaskDTO {
	return dto.TaskDTO{ID: id, Title: title, Status: status, OrderIndex: order}
}

func titles(tasks []dto.TaskDTO) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func orders(tasks []dto.TaskDTO) []int {
	out := make([]int, len(tasks))
	for i, t := range tasks {
		out[i] = t.OrderIndex
	}
	return out
}

func TestProject_AllFilter(t *testing.T) {
	all := []dto.TaskDTO{
		task(1, "A", models.TaskStatusTodo, 0),
		task(2, "B", models.TaskStatusTodo, 1),
		task(3, "C", models.TaskStatusTodo, 2),
	}

	got := Project(all, FilterAll.Apply(all), 0, 2)
	assert.Equal(t, []string{"B", "C", "A"}, titles(got))
	assert.Equal(t, []int{0, 1, 2}, orders(got))

	got = Project(all, FilterAll.Apply(all), 2, 0)
	assert.Equal(t, []string{"C", "A", "B"}, titles(got))
	assert.Equal(t, []int{0, 1, 2}, orders(got))

	// inputs are not modified
	assert.Equal(t, []string{"A", "B", "C"}, titles(all))
	assert.Equal(t, []int{0, 1, 2}, orders(all))
}

func TestProject_FilteredViewUsesViewPositions(t *testing.T) {
	all := []dto.TaskDTO{
		task(1, "A", models.TaskStatusTodo, 0),
		task(2, "B", models.TaskStatusDone, 1),
		task(3, "C", models.TaskStatusTodo, 2),
		task(4, "D", models.TaskStatusTodo, 3),
	}

	got := Project(all, FilterTodo.Apply(all), 0, 2)

	// C=0 D=1 A=2 from the view, B keeps 1; the stable sort leaves B ahead of D
	assert.Equal(t, []string{"C", "B", "D", "A"}, titles(got))
	assert.Equal(t, []int{0, 1, 1, 2}, orders(got))
	assert.Equal(t, []string{"C", "D", "A"}, titles(FilterTodo.Apply(got)))
}

func TestParseFilter(t *testing.T) {
	for _, s := range []string{"", "all", "todo", "in_progress", "done"} {
		_, err := ParseFilter(s)
		assert.NoError(t, err, s)
	}

	f, err := ParseFilter("")
	assert.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	_, err = ParseFilter("blocked")
	assert.Error(t, err)
}

func TestFilter_Apply(t *testing.T) {
	tasks := []dto.TaskDTO{
		task(1, "A", models.TaskStatusTodo, 0),
		task(2, "B", models.TaskStatusInProgress, 1),
		task(3, "C", models.TaskStatusDone, 2),
		task(4, "D", models.TaskStatusInProgress, 3),
	}

	assert.Equal(t, []string{"A", "B", "C", "D"}, titles(FilterAll.Apply(tasks)))
	assert.Equal(t, []string{"B", "D"}, titles(FilterInProgress.Apply(tasks)))
	assert.Equal(t, []string{"C"}, titles(FilterDone.Apply(tasks)))
	assert.Empty(t, FilterTodo.Apply(nil))
}
