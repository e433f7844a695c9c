package database

import (
	"errors"

	"taskpay_backend/internal/logger"
	"taskpay_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate migrates every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Plan{},
		&models.Task{},
		&models.Transaction{},
	)
}

// SeedPlans inserts the static plan rows when they are missing. Safe to run
// on every startup.
func SeedPlans(db *gorm.DB) error {
	plans := []models.Plan{
		{Name: "Free", Status: models.PlanStatusActive, Description: "This Plan is meant for free users"},
		{Name: "Pro", Status: models.PlanStatusActive, Description: "This Plan is meant for Pro Users."},
	}

	for _, plan := range plans {
		var existing models.Plan
		err := db.Where("LOWER(name) = LOWER(?)", plan.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&plan).Error; err != nil {
			return err
		}
		logger.Info("Seeded plan", "name", plan.Name)
	}

	return nil
}
