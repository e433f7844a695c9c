package services

import (
	"errors"
	"fmt"
	"strings"

	"taskpay_backend/internal/dto"
	"taskpay_backend/internal/models"
	"taskpay_backend/internal/repositories"
	"taskpay_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PaymentService interface {
	Initialize(db *gorm.DB, req dto.InitializePaymentRequest) (*models.Transaction, error)
	Verify(db *gorm.DB, req dto.VerifyPaymentRequest, rawPayload []byte) (*models.Transaction, error)
}

type PaymentServiceImpl struct {
	userRepo        repositories.UserRepository
	transactionRepo repositories.TransactionRepository
	planService     PlanService
}

func NewPaymentService(
	userRepo repositories.UserRepository,
	transactionRepo repositories.TransactionRepository,
	planService PlanService,
) PaymentService {
	return &PaymentServiceImpl{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		planService:     planService,
	}
}

// Initialize resolves the subscriber and the configured Pro plan, then
// creates a pending transaction. The user upsert and the transaction write
// happen in one storage transaction so a failure leaves no partial row.
func (s *PaymentServiceImpl) Initialize(db *gorm.DB, req dto.InitializePaymentRequest) (*models.Transaction, error) {
	plan, err := s.planService.ProPlan(db)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrPlanNotFound) {
			return nil, apperrors.ErrPlanNotConfigured
		}
		return nil, err
	}

	var transaction *models.Transaction
	err = db.Transaction(func(tx *gorm.DB) error {
		var user *models.User
		var err error

		if req.UserID != nil {
			user, err = s.userRepo.FindByID(tx, *req.UserID)
			if err != nil {
				if errors.Is(err, repositories.ErrUserNotFound) {
					return apperrors.ValidationError(map[string]string{
						"user_id": fmt.Sprintf("User %d does not exist", *req.UserID),
					})
				}
				return apperrors.DatabaseError(err)
			}
		} else {
			user, err = s.userRepo.UpsertByEmail(tx, req.Email, req.FullName)
			if err != nil {
				return apperrors.DatabaseError(err)
			}
		}

		transaction = &models.Transaction{
			SubscriberID: user.ID,
			Amount:       *req.Amount,
			Status:       models.TransactionStatusPending,
			PlanID:       plan.ID,
		}
		if err := s.transactionRepo.Create(tx, transaction); err != nil {
			return apperrors.DatabaseError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

// Verify applies a gateway callback. Only pending transactions transition;
// a repeated callback for an already-resolved transaction is rejected
// without a write. Both outcomes store rawPayload, the callback body as the
// gateway sent it, for audit.
func (s *PaymentServiceImpl) Verify(db *gorm.DB, req dto.VerifyPaymentRequest, rawPayload []byte) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.FindByID(db, req.TranID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, apperrors.TransactionNotFound(req.TranID)
		}
		return nil, apperrors.DatabaseError(err)
	}

	if transaction.Status != models.TransactionStatusPending {
		return nil, apperrors.TransactionAlreadyResolved(transaction.ID, string(transaction.Status))
	}

	status := models.TransactionStatusDeclined
	if strings.EqualFold(req.Reference.Status, "success") &&
		strings.EqualFold(req.Reference.Message, "approved") {
		status = models.TransactionStatusApproved
	}

	if err := s.transactionRepo.Resolve(db, transaction, status, datatypes.JSON(rawPayload)); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return transaction, nil
}
