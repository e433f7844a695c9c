package services

import (
	"errors"
	"strings"
	"time"

	"taskpay_backend/internal/models"
	"taskpay_backend/internal/repositories"
	"taskpay_backend/pkg/apperrors"

	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// PlanService is the reference-data accessor for subscription plans. The
// Pro plan is static seeded data, so reads go through a short-lived
// in-process cache instead of hitting the store on every request.
type PlanService interface {
	ProPlan(db *gorm.DB) (*models.Plan, error)
}

type PlanServiceImpl struct {
	planRepo    repositories.PlanRepository
	proPlanName string
	cache       *cache.Cache
}

func NewPlanService(planRepo repositories.PlanRepository, proPlanName string, ttl time.Duration) PlanService {
	return &PlanServiceImpl{
		planRepo:    planRepo,
		proPlanName: proPlanName,
		cache:       cache.New(ttl, 2*ttl),
	}
}

func (s *PlanServiceImpl) ProPlan(db *gorm.DB) (*models.Plan, error) {
	key := strings.ToLower(s.proPlanName)

	if cached, found := s.cache.Get(key); found {
		return cached.(*models.Plan), nil
	}

	plan, err := s.planRepo.FindByName(db, s.proPlanName)
	if err != nil {
		if errors.Is(err, repositories.ErrPlanNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	s.cache.Set(key, plan, cache.DefaultExpiration)
	return plan, nil
}
