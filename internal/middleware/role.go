package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/labourlink-api/internal/constants"
	apierrors "github.com/yukikurage/labourlink-api/internal/errors"
	"github.com/yukikurage/labourlink-api/internal/models"
)

// RequireRole lets the request through only when the authenticated user has role.
// It must run after RequireAuth.
func RequireRole(role models.Role, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(constants.ContextKeyUserRole)
		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		if current, ok := value.(models.Role); !ok || current != role {
			apierrors.Forbidden(c, message)
			return
		}

		c.Next()
	}
}
