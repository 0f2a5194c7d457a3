package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/foodiesapp/backend/internal/models"
)

// RunMigrations brings the schema up to date via GORM auto-migration
func RunMigrations(db *gorm.DB) error {
	log.Printf("Running auto-migration for %s", db.Dialector.Name())
	return db.AutoMigrate(
		&models.Meal{},
	)
}
