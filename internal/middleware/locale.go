package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/hrcore/hr-admin-api/internal/constants"
)

// SetLocale resolves the request locale from the session and stores it in the
// context. Handlers that localize output read it via GetLocale.
func SetLocale() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		locale := constants.DefaultLocale
		if v, ok := session.Get(constants.SessionKeyLocale).(string); ok && v != "" {
			locale = v
		}

		c.Set(constants.SessionKeyLocale, locale)
		c.Next()
	}
}

// GetLocale retrieves the resolved locale from context
func GetLocale(c *gin.Context) string {
	if v, ok := c.Get(constants.SessionKeyLocale); ok {
		if locale, ok := v.(string); ok {
			return locale
		}
	}
	return constants.DefaultLocale
}
