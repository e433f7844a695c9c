package handlers

import (
	"encoding/json"
	"net/http"

	"taskpay_backend/internal/dto"
	"taskpay_backend/internal/logger"
	"taskpay_backend/internal/services"
	"taskpay_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	payment := r.Group("/payment")
	{
		payment.POST("/initialize", h.InitializePayment)
		// Callback hook for the payment gateway, no auth.
		payment.POST("/verify", h.VerifyPayment)
	}
}

// InitializePayment godoc
// @Summary Initialize a payment
// @Description Creates a pending transaction, creating or reusing the user by email when no user_id is given.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.InitializePaymentRequest true "Payment to initialize"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apperrors.ErrorResponse "Plan not configured"
// @Failure 422 {object} apperrors.ErrorResponse "Validation error"
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /payment/initialize [post]
func (h *PaymentHandler) InitializePayment(c *gin.Context) {
	var req dto.InitializePaymentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	transaction, err := h.paymentService.Initialize(h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "payment initialized",
		"transaction_id", transaction.ID,
		"subscriber_id", transaction.SubscriberID,
		"amount", transaction.Amount,
	)

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment initialized successfully.",
		"status":  true,
		"data":    transaction,
	})
}

// VerifyPayment godoc
// @Summary Payment gateway callback
// @Description Webhook invoked by the payment gateway with the asynchronous result of an initialized payment.
// @Tags payments
// @Accept json
// @Produce json
// @Param callback body dto.VerifyPaymentRequest true "Gateway callback payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} apperrors.ErrorResponse "Invalid payload structure"
// @Failure 404 {object} apperrors.ErrorResponse "Unknown transaction"
// @Failure 409 {object} apperrors.ErrorResponse "Transaction already resolved"
// @Router /payment/verify [post]
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	// The audit copy is the exact bytes the gateway sent, so the body is
	// read before binding instead of going through BindJSON.
	raw, err := c.GetRawData()
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to read callback body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}

	var req dto.VerifyPaymentRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}

	// Shape problems in an external callback are a 400, not a 422.
	if !req.Complete() {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid payment response structure."))
		return
	}

	transaction, err := h.paymentService.Verify(h.GetDB(c), req, raw)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	logger.CtxInfo(c.Request.Context(), "payment verified",
		"transaction_id", transaction.ID,
		"status", transaction.Status,
	)

	c.JSON(http.StatusOK, gin.H{
		"message": "Transaction updated successfully.",
		"status":  true,
		"data":    transaction,
	})
}
