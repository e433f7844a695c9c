package services

import (
	"errors"

	"taskpay_backend/internal/dto"
	"taskpay_backend/internal/models"
	"taskpay_backend/internal/repositories"
	"taskpay_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	CreateUser(db *gorm.DB, req dto.CreateUserRequest) (*models.User, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) CreateUser(db *gorm.DB, req dto.CreateUserRequest) (*models.User, error) {
	user := &models.User{
		Email:    req.Email,
		FullName: req.FullName,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			// Uniqueness failures go through the same validation channel
			// as input-shape failures.
			return nil, apperrors.EmailAlreadyExists(req.Email)
		}
		return nil, apperrors.DatabaseError(err)
	}

	return user, nil
}
