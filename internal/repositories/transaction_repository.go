package repositories

import (
	"errors"

	"taskpay_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type TransactionRepository interface {
	Create(db *gorm.DB, transaction *models.Transaction) error
	FindByID(db *gorm.DB, id uint) (*models.Transaction, error)
	// Resolve moves the transaction to its final status and stores the
	// verbatim callback payload.
	Resolve(db *gorm.DB, transaction *models.Transaction, status models.TransactionStatus, raw datatypes.JSON) error
}

type TransactionRepositoryImpl struct{}

func NewTransactionRepository() TransactionRepository {
	return &TransactionRepositoryImpl{}
}

func (r *TransactionRepositoryImpl) Create(db *gorm.DB, transaction *models.Transaction) error {
	return db.Create(transaction).Error
}

func (r *TransactionRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	err := db.First(&transaction, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &transaction, nil
}

func (r *TransactionRepositoryImpl) Resolve(db *gorm.DB, transaction *models.Transaction, status models.TransactionStatus, raw datatypes.JSON) error {
	result := db.Model(transaction).Updates(map[string]interface{}{
		"status":       status,
		"raw_response": raw,
	})
	if result.Error != nil {
		return result.Error
	}
	transaction.Status = status
	transaction.RawResponse = raw
	return nil
}
