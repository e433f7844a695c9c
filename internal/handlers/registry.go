package handlers

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	TaskHandler    *TaskHandler
	UserHandler    *UserHandler
	PaymentHandler *PaymentHandler
}
