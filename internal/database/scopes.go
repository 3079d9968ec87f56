package database

import (
	"gorm.io/gorm"
)

// Ordered sorts tasks by their position, falling back to id for ties
func Ordered(db *gorm.DB) *gorm.DB {
	return db.Order("order_index ASC").Order("id ASC")
}
