package database

import (
	"fmt"

	"github.com/thefr3spirit/homs-backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate ensures the schema exists, creating tables and indexes
// that are absent. Run once at startup.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.DailySummary{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
