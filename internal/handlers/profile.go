package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hrcore/hr-admin-api/internal/dto"
	apierrors "github.com/hrcore/hr-admin-api/internal/errors"
	"github.com/hrcore/hr-admin-api/internal/middleware"
	"github.com/hrcore/hr-admin-api/internal/services"
)

// ProfileHandler serves the authenticated user's own profile.
type ProfileHandler struct {
	userService *services.UserService
	authService *services.AuthService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(userService *services.UserService, authService *services.AuthService) *ProfileHandler {
	return &ProfileHandler{
		userService: userService,
		authService: authService,
	}
}

// GetProfile returns the authenticated user's profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.userService.GetUser(userID)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// UpdateProfile updates the authenticated user's identity fields. Keeping the
// current email is allowed; the uniqueness check excludes the user's own row.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateProfileRequest struct {
		Name     string  `json:"name" binding:"required,max=255"`
		Email    string  `json:"email" binding:"required,email,max=255"`
		Birthday *string `json:"birthday"`
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	birthday, ok := parseBirthday(req.Birthday)
	if !ok {
		apierrors.FieldValidationFailed(c, "birthday", "Must be a valid date (YYYY-MM-DD)")
		return
	}

	user, err := h.userService.UpdateUser(userID, services.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Birthday: birthday,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    dto.ToUserDTO(*user),
	})
}

// UpdatePassword replaces the authenticated user's password after verifying
// the current one.
func (h *ProfileHandler) UpdatePassword(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdatePasswordRequest struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		Password        string `json:"password" binding:"required,min=8"`
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	if err := h.authService.ChangePassword(userID, req.CurrentPassword, req.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrWrongPassword):
			apierrors.FieldValidationFailed(c, "current_password", "Current password is incorrect")
		case errors.Is(err, services.ErrPasswordTooShort):
			apierrors.FieldValidationFailed(c, "password", "Password is too short")
		case errors.Is(err, services.ErrUserNotFound):
			apierrors.NotFound(c, "User not found")
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password updated successfully",
	})
}
