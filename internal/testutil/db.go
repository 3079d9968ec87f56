// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"io"
	"testing"

	"github.com/roy-bentley/todo/internal/database"
	"github.com/roy-bentley/todo/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Logger returns a logrus logger that discards output
func Logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// NewDB opens a migrated in-memory sqlite database closed on test cleanup.
// The pool is pinned to one connection because every new :memory: connection is a fresh database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db, Logger()))
	return db
}

// SeedTasks inserts tasks with the given titles at positions 0..n-1
func SeedTasks(t *testing.T, db *gorm.DB, titles ...string) []models.Task {
	t.Helper()

	tasks := make([]models.Task, len(titles))
	for i, title := range titles {
		tasks[i] = models.Task{
			Title:      title,
			Status:     models.TaskStatusTodo,
			OrderIndex: i,
		}
		require.NoError(t, db.Create(&tasks[i]).Error)
	}
	return tasks
}
