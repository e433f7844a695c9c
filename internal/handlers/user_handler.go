package handlers

import (
	"net/http"

	"taskpay_backend/internal/dto"
	"taskpay_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
	planService services.PlanService
}

func NewUserHandler(base *BaseHandler, userService services.UserService, planService services.PlanService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		planService: planService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	user := r.Group("/user")
	{
		user.POST("", h.CreateUser)
		user.GET("/plan", h.GetProPlan)
	}
}

// CreateUser godoc
// @Summary Create a user
// @Description Creates a user with a unique email.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User to create"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} apperrors.ErrorResponse "Validation error or duplicate email"
// @Router /user [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.userService.CreateUser(h.GetDB(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User created successfully.",
		"status":  true,
		"data":    user,
	})
}

// GetProPlan godoc
// @Summary Get the Pro plan
// @Description Returns the configured reference plan if it exists.
// @Tags plans
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /user/plan [get]
func (h *UserHandler) GetProPlan(c *gin.Context) {
	plan, err := h.planService.ProPlan(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Plan fetched successfully.",
		"status":  true,
		"data":    plan,
	})
}
