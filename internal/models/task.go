package models

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// TaskStatuses lists every valid status in display order
var TaskStatuses = []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone}

// Valid reports whether s is one of the known statuses
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	ID         uint64     `gorm:"primarykey" json:"id"`
	Title      string     `gorm:"type:varchar(255);not null" json:"title"`
	Status     TaskStatus `gorm:"type:varchar(20);not null;default:'todo'" json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	OrderIndex int        `gorm:"not null" json:"order_index"`
}
