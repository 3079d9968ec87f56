package database

import (
	"fmt"
	"strings"

	"github.com/roy-bentley/todo/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AddIndexes adds the indexes List and the renumbering queries rely on
func AddIndexes(db *gorm.DB, log logrus.FieldLogger) error {
	indexes := []struct {
		name    string
		columns []string
	}{
		{"idx_tasks_order_index", []string{"order_index"}},
		{"idx_tasks_status", []string{"status"}},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(&models.Task{}, idx.name) {
			log.WithField("index", idx.name).Debug("Index already exists, skipping")
			continue
		}

		// the migrator only creates indexes declared in struct tags, so issue the DDL directly
		stmt := fmt.Sprintf("CREATE INDEX %s ON tasks (%s)", idx.name, strings.Join(idx.columns, ", "))
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.WithField("index", idx.name).Info("Created index")
	}

	return nil
}
