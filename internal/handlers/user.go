package handlers

import (
	"github.com/civicgrid/initiative/backend/internal/middleware"
	"github.com/civicgrid/initiative/backend/internal/services"
	"github.com/civicgrid/initiative/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct {
	userService *services.UserService
	authService *services.AuthService
}

func NewUserHandler(db *gorm.DB, authService *services.AuthService) *UserHandler {
	return &UserHandler{
		userService: services.NewUserService(db),
		authService: authService,
	}
}

// UpdateCurrentUser patches the authenticated user's profile; absent
// fields are left untouched
// PATCH /api/users/me
func (h *UserHandler) UpdateCurrentUser(c *gin.Context) {
	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.GetUserByEmail(middleware.GetEmail(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	updated, err := h.userService.UpdateProfile(user.ID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, updated)
}

// GetUser returns a public profile by id
// GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, user)
}
