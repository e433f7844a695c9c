package dto

// ListTasksQuery holds the optional GET /tasks filters. Filters combine
// with AND; the search term matches name OR description. Values are opaque:
// one that can match no row yields an empty set, never an error.
type ListTasksQuery struct {
	UserID string `form:"user_id" json:"user_id"`
	Search string `form:"search" json:"search"`
	Status string `form:"status" json:"status"`
	Date   string `form:"date" json:"date"`
}

type CreateTaskRequest struct {
	UserID      uint    `json:"user_id" validate:"required"`
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
	Status      string  `json:"status" validate:"omitempty,is-task-status"`
}

// UpdateTaskRequest is deliberately a raw JSON object: a key that is absent
// leaves the column untouched, an explicit null description clears it.
// Field rules are checked in the service.
type UpdateTaskRequest map[string]interface{}
