package repositories

import (
	"errors"

	"taskpay_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPlanNotFound = errors.New("plan not found")

type PlanRepository interface {
	// FindByName matches the plan name case-insensitively.
	FindByName(db *gorm.DB, name string) (*models.Plan, error)
}

type PlanRepositoryImpl struct{}

func NewPlanRepository() PlanRepository {
	return &PlanRepositoryImpl{}
}

func (r *PlanRepositoryImpl) FindByName(db *gorm.DB, name string) (*models.Plan, error) {
	var plan models.Plan
	err := db.Where("LOWER(name) = LOWER(?)", name).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}
