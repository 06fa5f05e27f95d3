package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no row. Callers translate it
// into their own module error.
var ErrNotFound = errors.New("record not found")

// AutoMigrate creates the schema for every model this package owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&userModel{}, &fileModel{})
}
