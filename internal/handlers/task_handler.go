package handlers

import (
	"net/http"

	"taskpay_backend/internal/dto"
	"taskpay_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	*BaseHandler
	taskService services.TaskService
}

func NewTaskHandler(base *BaseHandler, taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		BaseHandler: base,
		taskService: taskService,
	}
}

func (h *TaskHandler) RegisterRoutes(r *gin.RouterGroup) {
	tasks := r.Group("/tasks")
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("", h.CreateTask)
		tasks.GET("/:id", h.GetTask)
		tasks.PUT("/:id", h.UpdateTask)
		tasks.PATCH("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}
}

// ListTasks godoc
// @Summary List tasks
// @Description Returns all tasks, optionally filtered by user, search term, status and creation date.
// @Tags tasks
// @Produce json
// @Param user_id query int false "Filter by owner id"
// @Param search query string false "Substring match against name or description"
// @Param status query string false "Task status (exact match)"
// @Param date query string false "Creation date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	var query dto.ListTasksQuery
	if !h.BindQuery(c, &query) {
		return
	}

	tasks, err := h.taskService.List(h.GetDB(c), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tasks retrieved successfully.",
		"status":  true,
		"data":    tasks,
	})
}

// CreateTask godoc
// @Summary Create a task
// @Description Creates a task for an existing user. Status defaults to pending.
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body dto.CreateTaskRequest true "Task to create"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} apperrors.ErrorResponse "Validation error"
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	task, err := h.taskService.Create(h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully.",
		"status":  true,
		"data":    task,
	})
}

// GetTask godoc
// @Summary Get a task by id
// @Tags tasks
// @Produce json
// @Param id path int true "Task id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	task, err := h.taskService.Get(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task retrieved successfully.",
		"status":  true,
		"data":    task,
	})
}

// UpdateTask applies a partial update; only the supplied fields change.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateTaskRequest
	if !h.BindJSON(c, &req) {
		return
	}

	task, err := h.taskService.Update(h.GetDB(c), id, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task updated successfully.",
		"status":  true,
		"data":    task,
	})
}

// DeleteTask godoc
// @Summary Delete a task by id
// @Tags tasks
// @Produce json
// @Param id path int true "Task id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 500 {object} apperrors.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.taskService.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully.",
		"status":  true,
	})
}
