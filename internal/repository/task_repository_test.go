package repository

import (
	"context"
	"testing"

	"github.com/roy-bentley/todo/internal/models"
	"github.com/roy-bentley/todo/internal/testutil"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TaskRepositoryTestSuite runs the repository against in-memory sqlite
type TaskRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo TaskRepository
	ctx  context.Context
}

func (suite *TaskRepositoryTestSuite) SetupTest() {
	suite.db = testutil.NewDB(suite.T())
	suite.repo = NewTaskRepository(suite.db)
	suite.ctx = context.Background()
}

func (suite *TaskRepositoryTestSuite) create(title string) *models.Task {
	task := &models.Task{Title: title, Status: models.TaskStatusTodo}
	suite.Require().NoError(suite.repo.Create(suite.ctx, task))
	return task
}

func (suite *TaskRepositoryTestSuite) titlesAndIndexes() ([]string, []int) {
	tasks, err := suite.repo.List(suite.ctx)
	suite.Require().NoError(err)

	titles := make([]string, len(tasks))
	indexes := make([]int, len(tasks))
	for i, task := range tasks {
		titles[i] = task.Title
		indexes[i] = task.OrderIndex
	}
	return titles, indexes
}

func (suite *TaskRepositoryTestSuite) TestCreate_AppendsAtCount() {
	for i, title := range []string{"A", "B", "C"} {
		task := suite.create(title)
		suite.Equal(i, task.OrderIndex)
		suite.NotZero(task.ID)
		suite.False(task.CreatedAt.IsZero())
	}
}

func (suite *TaskRepositoryTestSuite) TestList_EmptyStore() {
	tasks, err := suite.repo.List(suite.ctx)
	suite.Require().NoError(err)
	suite.NotNil(tasks)
	suite.Empty(tasks)
}

func (suite *TaskRepositoryTestSuite) TestFindByID_NotFound() {
	_, err := suite.repo.FindByID(suite.ctx, 42)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TaskRepositoryTestSuite) TestDelete_RenumbersRemaining() {
	suite.create("A")
	b := suite.create("B")
	suite.create("C")

	suite.Require().NoError(suite.repo.Delete(suite.ctx, b.ID))

	titles, indexes := suite.titlesAndIndexes()
	suite.Equal([]string{"A", "C"}, titles)
	suite.Equal([]int{0, 1}, indexes)

	d := suite.create("D")
	suite.Equal(2, d.OrderIndex)
}

func (suite *TaskRepositoryTestSuite) TestDelete_ContiguousAfterEverySequenceStep() {
	var ids []uint64
	for _, title := range []string{"t0", "t1", "t2", "t3", "t4", "t5"} {
		ids = append(ids, suite.create(title).ID)
	}

	// delete head, tail and middle, interleaved with creates
	for _, id := range []uint64{ids[0], ids[5], ids[2]} {
		suite.Require().NoError(suite.repo.Delete(suite.ctx, id))

		_, indexes := suite.titlesAndIndexes()
		for i, idx := range indexes {
			suite.Equal(i, idx)
		}
		suite.create("extra")
	}

	titles, indexes := suite.titlesAndIndexes()
	suite.Equal([]string{"t1", "t3", "t4", "extra", "extra", "extra"}, titles)
	suite.Equal([]int{0, 1, 2, 3, 4, 5}, indexes)
}

func (suite *TaskRepositoryTestSuite) TestDelete_NotFound() {
	suite.create("A")

	err := suite.repo.Delete(suite.ctx, 999)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, indexes := suite.titlesAndIndexes()
	suite.Equal([]int{0}, indexes)
}

func (suite *TaskRepositoryTestSuite) TestDelete_IDsAreNotReused() {
	suite.create("A")
	b := suite.create("B")

	suite.Require().NoError(suite.repo.Delete(suite.ctx, b.ID))
	c := suite.create("C")

	suite.Greater(c.ID, b.ID)
}

func (suite *TaskRepositoryTestSuite) TestUpdate_StatusOnlyLeavesOtherFields() {
	suite.create("A")
	task := suite.create("B")

	status := models.TaskStatusInProgress
	updated, err := suite.repo.Update(suite.ctx, task.ID, TaskChanges{Status: &status})
	suite.Require().NoError(err)

	suite.Equal(models.TaskStatusInProgress, updated.Status)
	suite.Equal("B", updated.Title)
	suite.Equal(1, updated.OrderIndex)
	suite.True(task.CreatedAt.Equal(updated.CreatedAt))
}

func (suite *TaskRepositoryTestSuite) TestUpdate_Title() {
	task := suite.create("old")

	title := "new"
	updated, err := suite.repo.Update(suite.ctx, task.ID, TaskChanges{Title: &title})
	suite.Require().NoError(err)
	suite.Equal("new", updated.Title)
	suite.Equal(models.TaskStatusTodo, updated.Status)
}

func (suite *TaskRepositoryTestSuite) TestUpdate_MoveDown() {
	a := suite.create("A")
	suite.create("B")
	suite.create("C")

	target := 2
	updated, err := suite.repo.Update(suite.ctx, a.ID, TaskChanges{OrderIndex: &target})
	suite.Require().NoError(err)
	suite.Equal(2, updated.OrderIndex)

	titles, indexes := suite.titlesAndIndexes()
	suite.Equal([]string{"B", "C", "A"}, titles)
	suite.Equal([]int{0, 1, 2}, indexes)
}

func (suite *TaskRepositoryTestSuite) TestUpdate_MoveUp() {
	suite.create("A")
	suite.create("B")
	c := suite.create("C")

	target := 0
	_, err := suite.repo.Update(suite.ctx, c.ID, TaskChanges{OrderIndex: &target})
	suite.Require().NoError(err)

	titles, indexes := suite.titlesAndIndexes()
	suite.Equal([]string{"C", "A", "B"}, titles)
	suite.Equal([]int{0, 1, 2}, indexes)
}

func (suite *TaskRepositoryTestSuite) TestUpdate_MoveClampsOutOfRange() {
	a := suite.create("A")
	suite.create("B")
	c := suite.create("C")

	far := 50
	updated, err := suite.repo.Update(suite.ctx, a.ID, TaskChanges{OrderIndex: &far})
	suite.Require().NoError(err)
	suite.Equal(2, updated.OrderIndex)

	negative := -3
	updated, err = suite.repo.Update(suite.ctx, c.ID, TaskChanges{OrderIndex: &negative})
	suite.Require().NoError(err)
	suite.Equal(0, updated.OrderIndex)

	titles, indexes := suite.titlesAndIndexes()
	suite.Equal([]string{"C", "B", "A"}, titles)
	suite.Equal([]int{0, 1, 2}, indexes)
}

func (suite *TaskRepositoryTestSuite) TestUpdate_MoveAndRetitleTogether() {
	a := suite.create("A")
	suite.create("B")

	target := 1
	title := "A2"
	status := models.TaskStatusDone
	updated, err := suite.repo.Update(suite.ctx, a.ID, TaskChanges{Title: &title, Status: &status, OrderIndex: &target})
	suite.Require().NoError(err)

	suite.Equal("A2", updated.Title)
	suite.Equal(models.TaskStatusDone, updated.Status)
	suite.Equal(1, updated.OrderIndex)
}

func (suite *TaskRepositoryTestSuite) TestUpdate_NotFound() {
	title := "x"
	_, err := suite.repo.Update(suite.ctx, 7, TaskChanges{Title: &title})
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TaskRepositoryTestSuite) TestNormalize_ClosesGapsAndDuplicates() {
	testutil.SeedTasks(suite.T(), suite.db, "A", "B", "C", "D")
	// simulate a store left inconsistent by racing writers
	suite.Require().NoError(suite.db.Model(&models.Task{}).Where("title = ?", "B").Update("order_index", 7).Error)
	suite.Require().NoError(suite.db.Model(&models.Task{}).Where("title = ?", "D").Update("order_index", 0).Error)

	suite.Require().NoError(suite.repo.Normalize(suite.ctx))

	titles, indexes := suite.titlesAndIndexes()
	suite.Equal([]string{"A", "D", "C", "B"}, titles)
	suite.Equal([]int{0, 1, 2, 3}, indexes)
}

func TestTaskRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TaskRepositoryTestSuite))
}
