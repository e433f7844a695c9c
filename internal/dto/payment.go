package dto

// InitializePaymentRequest creates a pending transaction. Amount is a
// pointer so that a zero amount still passes the required check. Plan is
// accepted for forward compatibility; the current flow always resolves the
// configured Pro plan.
type InitializePaymentRequest struct {
	FullName string   `json:"full_name" validate:"required,max=255"`
	Email    string   `json:"email" validate:"required,email"`
	Plan     string   `json:"plan" validate:"required"`
	Amount   *float64 `json:"amount" validate:"required,gte=0"`
	UserID   *uint    `json:"user_id"`
}

// VerifyReference is the gateway's result block inside the callback.
type VerifyReference struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Message   string `json:"message"`
}

// VerifyPaymentRequest is the webhook payload posted by the payment
// gateway after an initialized payment settles.
type VerifyPaymentRequest struct {
	Reference *VerifyReference `json:"reference"`
	TranID    uint             `json:"tran_id"`
}

// Complete reports whether every required callback field is present.
// Webhook shape problems are a 400, not a validation 422, so this is
// checked by hand instead of going through the validator.
func (r *VerifyPaymentRequest) Complete() bool {
	if r.Reference == nil || r.TranID == 0 {
		return false
	}
	return r.Reference.Status != "" && r.Reference.Reference != "" && r.Reference.Message != ""
}
