package services

// ServiceContainer bundles every service for dependency injection into the
// handler layer.
type ServiceContainer struct {
	TaskService    TaskService
	UserService    UserService
	PlanService    PlanService
	PaymentService PaymentService
}
