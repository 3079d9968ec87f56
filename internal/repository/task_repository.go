package repository

import (
	"context"

	"github.com/roy-bentley/todo/internal/database"
	"github.com/roy-bentley/todo/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// List returns every task ordered by order_index
func (r *GormTaskRepository) List(ctx context.Context) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := r.db.WithContext(ctx).Scopes(database.Ordered).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(ctx context.Context, id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Create appends a task at the end of the ordering
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Task{}).Count(&count).Error; err != nil {
			return err
		}

		task.OrderIndex = int(count)
		return tx.Create(task).Error
	})
}

// Update applies the given changes and returns the stored record.
// A changed order_index moves the task: the tasks in between shift by one.
func (r *GormTaskRepository) Update(ctx context.Context, id uint64, changes TaskChanges) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, id).Error; err != nil {
			return err
		}

		if changes.OrderIndex != nil {
			if err := moveTask(tx, &task, *changes.OrderIndex); err != nil {
				return err
			}
		}

		fields := map[string]interface{}{}
		if changes.Title != nil {
			fields["title"] = *changes.Title
		}
		if changes.Status != nil {
			fields["status"] = *changes.Status
		}
		if len(fields) > 0 {
			if err := tx.Model(&task).Updates(fields).Error; err != nil {
				return err
			}
		}

		return tx.First(&task, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Delete removes a task and closes the gap it leaves in the ordering
func (r *GormTaskRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Task{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return renumber(tx)
	})
}

// Normalize renumbers all tasks to 0..n-1 keeping their relative order
func (r *GormTaskRepository) Normalize(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(renumber)
}

// moveTask places task at target, clamped to the current range, shifting the tasks in between
func moveTask(tx *gorm.DB, task *models.Task, target int) error {
	var count int64
	if err := tx.Model(&models.Task{}).Count(&count).Error; err != nil {
		return err
	}

	if target < 0 {
		target = 0
	}
	if last := int(count) - 1; target > last {
		target = last
	}

	current := task.OrderIndex
	if target == current {
		return nil
	}

	shift := tx.Model(&models.Task{}).Where("id <> ?", task.ID)
	if target > current {
		shift = shift.Where("order_index > ? AND order_index <= ?", current, target).
			Update("order_index", gorm.Expr("order_index - 1"))
	} else {
		shift = shift.Where("order_index >= ? AND order_index < ?", target, current).
			Update("order_index", gorm.Expr("order_index + 1"))
	}
	if shift.Error != nil {
		return shift.Error
	}

	if err := tx.Model(task).Update("order_index", target).Error; err != nil {
		return err
	}
	task.OrderIndex = target
	return nil
}

// renumber rewrites order_index as contiguous positions, touching only rows that change
func renumber(tx *gorm.DB) error {
	var tasks []models.Task
	if err := tx.Select("id", "order_index").Scopes(database.Ordered).Find(&tasks).Error; err != nil {
		return err
	}

	for i, task := range tasks {
		if task.OrderIndex == i {
			continue
		}
		if err := tx.Model(&models.Task{}).Where("id = ?", task.ID).Update("order_index", i).Error; err != nil {
			return err
		}
	}
	return nil
}
