package handlers

import (
	"errors"
	"io"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apierrors "github.com/yukikurage/labourlink-api/internal/errors"
	"github.com/yukikurage/labourlink-api/internal/middleware"
	"github.com/yukikurage/labourlink-api/internal/services"
)

// bindJSON decodes the request body into req. An empty body leaves req zero
// so that required-field checks report the specific missing field.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		apierrors.BadRequest(c, "Invalid request body")
		return false
	}
	return true
}

func currentActor(c *gin.Context) (services.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return services.Actor{}, false
	}
	return actor, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, ok := middleware.UUIDParam(c, name)
	if !ok {
		apierrors.BadRequest(c, "Invalid ID")
		return uuid.Nil, false
	}
	return id, true
}

// respondInternalError logs the cause with the request ID and hides it from the client.
func respondInternalError(c *gin.Context, operation string, err error) {
	log.Printf("request_id=%s %s: %v", middleware.RequestIDFromContext(c), operation, err)
	apierrors.InternalError(c, "")
}

func respondRoleError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, services.ErrWorkerRoleRequired),
		errors.Is(err, services.ErrRecruiterRoleRequired):
		apierrors.Forbidden(c, err.Error())
		return true
	}
	return false
}

