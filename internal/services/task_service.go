package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"taskpay_backend/internal/dto"
	"taskpay_backend/internal/models"
	"taskpay_backend/internal/repositories"
	"taskpay_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type TaskService interface {
	List(db *gorm.DB, query dto.ListTasksQuery) ([]models.Task, error)
	Create(db *gorm.DB, req dto.CreateTaskRequest) (*models.Task, error)
	Get(db *gorm.DB, id uint) (*models.Task, error)
	Update(db *gorm.DB, id uint, req dto.UpdateTaskRequest) (*models.Task, error)
	Delete(db *gorm.DB, id uint) error
}

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	userRepo repositories.UserRepository
}

func NewTaskService(taskRepo repositories.TaskRepository, userRepo repositories.UserRepository) TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

func (s *TaskServiceImpl) List(db *gorm.DB, query dto.ListTasksQuery) ([]models.Task, error) {
	filter := repositories.TaskFilter{
		Search: query.Search,
		Status: query.Status,
		Date:   query.Date,
	}

	// A user_id or date no row can carry matches nothing; short-circuit
	// instead of sending the unparseable value to the database.
	if query.UserID != "" {
		id, err := strconv.ParseUint(query.UserID, 10, 32)
		if err != nil {
			return []models.Task{}, nil
		}
		userID := uint(id)
		filter.UserID = &userID
	}
	if query.Date != "" {
		if _, err := time.Parse("2006-01-02", query.Date); err != nil {
			return []models.Task{}, nil
		}
	}

	tasks, err := s.taskRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return tasks, nil
}

func (s *TaskServiceImpl) Create(db *gorm.DB, req dto.CreateTaskRequest) (*models.Task, error) {
	// The user reference is validated before the write so a dangling
	// user_id surfaces as a field error, not a constraint violation.
	if _, err := s.userRepo.FindByID(db, req.UserID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ValidationError(map[string]string{
				"user_id": fmt.Sprintf("User %d does not exist", req.UserID),
			})
		}
		return nil, apperrors.DatabaseError(err)
	}

	status := models.TaskStatus(req.Status)
	if status == "" {
		status = models.TaskStatusPending
	}

	task := &models.Task{
		UserID:      req.UserID,
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return s.taskRepo.Create(tx, task)
	})
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return task, nil
}

func (s *TaskServiceImpl) Get(db *gorm.DB, id uint) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			return nil, apperrors.TaskNotFound(id)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return task, nil
}

// Update applies a partial update: only keys present in the request change,
// an explicit null description clears the column. Unknown keys are ignored.
func (s *TaskServiceImpl) Update(db *gorm.DB, id uint, req dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			return nil, apperrors.TaskNotFound(id)
		}
		return nil, apperrors.DatabaseError(err)
	}

	fields, vErr := validateTaskUpdate(req)
	if vErr != nil {
		return nil, vErr
	}
	if len(fields) == 0 {
		return task, nil
	}

	if err := s.taskRepo.UpdateFields(db, task, fields); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	// Reload so the caller gets the persisted state, timestamps included.
	task, err = s.taskRepo.FindByID(db, id)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return task, nil
}

func (s *TaskServiceImpl) Delete(db *gorm.DB, id uint) error {
	if _, err := s.taskRepo.FindByID(db, id); err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			return apperrors.TaskNotFound(id)
		}
		return apperrors.DatabaseError(err)
	}

	if err := s.taskRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			return apperrors.TaskNotFound(id)
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

// validateTaskUpdate checks the supplied fields of a partial update and
// builds the column map for the write. The status enum is enforced here
// with the same rule as create.
func validateTaskUpdate(req dto.UpdateTaskRequest) (map[string]interface{}, *apperrors.AppError) {
	fields := make(map[string]interface{})
	errs := make(map[string]string)

	if raw, ok := req["name"]; ok {
		name, isString := raw.(string)
		switch {
		case !isString:
			errs["name"] = "Must be a string"
		case len(name) == 0:
			errs["name"] = "Must not be empty"
		case utf8.RuneCountInString(name) > 255:
			errs["name"] = "Must be at most 255 characters"
		default:
			fields["name"] = name
		}
	}

	if raw, ok := req["description"]; ok {
		if raw == nil {
			// Explicit null clears the column.
			fields["description"] = nil
		} else if description, isString := raw.(string); isString {
			fields["description"] = description
		} else {
			errs["description"] = "Must be a string or null"
		}
	}

	if raw, ok := req["status"]; ok {
		status, isString := raw.(string)
		switch {
		case !isString:
			errs["status"] = "Must be a string"
		case !models.ValidTaskStatus(status):
			errs["status"] = "Must be one of: pending, completed, in_progress"
		default:
			fields["status"] = status
		}
	}

	if len(errs) > 0 {
		return nil, apperrors.ValidationError(errs)
	}
	return fields, nil
}
