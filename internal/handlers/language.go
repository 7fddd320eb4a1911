package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/hrcore/hr-admin-api/internal/constants"
	apierrors "github.com/hrcore/hr-admin-api/internal/errors"
	"github.com/hrcore/hr-admin-api/internal/i18n"
	"github.com/hrcore/hr-admin-api/internal/middleware"
)

// LanguageHandler manages the session locale.
type LanguageHandler struct{}

// NewLanguageHandler creates a new LanguageHandler.
func NewLanguageHandler() *LanguageHandler {
	return &LanguageHandler{}
}

// SetLanguage stores the locale in the session.
func (h *LanguageHandler) SetLanguage(c *gin.Context) {
	type SetLanguageRequest struct {
		Language string `json:"language" binding:"required,oneof=vi en"`
	}

	var req SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	if !i18n.Supported(req.Language) {
		apierrors.FieldValidationFailed(c, "language", "Must be one of: vi en")
		return
	}

	session := sessions.Default(c)
	session.Set(constants.SessionKeyLocale, req.Language)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Language updated successfully",
		"language": req.Language,
	})
}

// GetLanguage returns the session locale with its message catalog.
func (h *LanguageHandler) GetLanguage(c *gin.Context) {
	locale := middleware.GetLocale(c)

	c.JSON(http.StatusOK, gin.H{
		"language": locale,
		"messages": i18n.Messages(locale),
	})
}
