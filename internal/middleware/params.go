package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apierrors "github.com/yukikurage/labourlink-api/internal/errors"
)

const paramContextPrefix = "param:"

// RequireUUIDParam rejects the request with 400 unless the named path parameter
// is a valid UUID. The parsed value is read back with UUIDParam.
func RequireUUIDParam(name, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param(name))
		if err != nil || id == uuid.Nil {
			apierrors.BadRequest(c, message)
			return
		}

		c.Set(paramContextPrefix+name, id)
		c.Next()
	}
}

// UUIDParam returns the path parameter parsed by RequireUUIDParam.
func UUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	value, exists := c.Get(paramContextPrefix + name)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
