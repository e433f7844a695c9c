package repositories

import (
	"errors"
	"strings"

	"taskpay_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskFilter mirrors the GET /tasks query parameters. Nil/empty fields are
// not applied; present fields combine with AND, the search term matches
// name OR description case-insensitively.
type TaskFilter struct {
	UserID *uint
	Search string
	Status string
	Date   string // YYYY-MM-DD, compared against the created_at date part
}

type TaskRepository interface {
	FindWithFilter(db *gorm.DB, filter TaskFilter) ([]models.Task, error)
	FindByID(db *gorm.DB, id uint) (*models.Task, error)
	Create(db *gorm.DB, task *models.Task) error
	UpdateFields(db *gorm.DB, task *models.Task, fields map[string]interface{}) error
	Delete(db *gorm.DB, id uint) error
}

type TaskRepositoryImpl struct{}

func NewTaskRepository() TaskRepository {
	return &TaskRepositoryImpl{}
}

func (r *TaskRepositoryImpl) FindWithFilter(db *gorm.DB, filter TaskFilter) ([]models.Task, error) {
	query := db.Model(&models.Task{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if filter.Date != "" {
		query = query.Where("DATE(created_at) = ?", filter.Date)
	}

	var tasks []models.Task
	if err := query.Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Task, error) {
	var task models.Task
	err := db.First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) Create(db *gorm.DB, task *models.Task) error {
	return db.Create(task).Error
}

// UpdateFields applies a partial update: only the given columns change.
func (r *TaskRepositoryImpl) UpdateFields(db *gorm.DB, task *models.Task, fields map[string]interface{}) error {
	result := db.Model(task).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *TaskRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
