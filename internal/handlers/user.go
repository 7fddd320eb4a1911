package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hrcore/hr-admin-api/internal/dto"
	apierrors "github.com/hrcore/hr-admin-api/internal/errors"
	"github.com/hrcore/hr-admin-api/internal/models"
	"github.com/hrcore/hr-admin-api/internal/repository"
	"github.com/hrcore/hr-admin-api/internal/services"
	"github.com/hrcore/hr-admin-api/internal/utils"
)

// UserHandler coordinates user directory HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// parseID extracts the numeric :id path parameter.
func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

// parseBirthday parses an optional "2006-01-02" date string.
func parseBirthday(value *string) (*time.Time, bool) {
	if value == nil || *value == "" {
		return nil, true
	}
	parsed, err := time.Parse(models.DateLayout, *value)
	if err != nil {
		return nil, false
	}
	return &parsed, true
}

// ListUsers returns users, newest first. Supports ?search= over name/email.
func (h *UserHandler) ListUsers(c *gin.Context) {
	filter := repository.ListFilter{
		Search:     c.Query("search"),
		Pagination: utils.GetPaginationParams(c),
	}

	users, total, err := h.userService.ListUsers(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, dto.UserListResponse{
		Users: dto.ToUserDTOs(users),
		Pagination: dto.PaginationResponse{
			Page:  filter.Pagination.Page,
			Limit: filter.Pagination.Limit,
			Total: total,
		},
	})
}

// CreateUser creates a new user.
func (h *UserHandler) CreateUser(c *gin.Context) {
	type CreateUserRequest struct {
		Name     string  `json:"name" binding:"required,max=255"`
		Email    string  `json:"email" binding:"required,email,max=255"`
		Password string  `json:"password" binding:"required,min=8"`
		Birthday *string `json:"birthday"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	birthday, ok := parseBirthday(req.Birthday)
	if !ok {
		apierrors.FieldValidationFailed(c, "birthday", "Must be a valid date (YYYY-MM-DD)")
		return
	}

	user, err := h.userService.CreateUser(services.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Birthday: birthday,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// GetUser returns a single user.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// UpdateUser updates a user's identity fields.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	type UpdateUserRequest struct {
		Name     string  `json:"name" binding:"required,max=255"`
		Email    string  `json:"email" binding:"required,email,max=255"`
		Birthday *string `json:"birthday"`
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	birthday, ok := parseBirthday(req.Birthday)
	if !ok {
		apierrors.FieldValidationFailed(c, "birthday", "Must be a valid date (YYYY-MM-DD)")
		return
	}

	user, err := h.userService.UpdateUser(id, services.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Birthday: birthday,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// DeleteUser hard deletes a user and their attendance records.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(id); err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
	})
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, "Email already exists")
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.FieldValidationFailed(c, "password", "Password is too short")
	default:
		apierrors.InternalError(c, "")
	}
}
