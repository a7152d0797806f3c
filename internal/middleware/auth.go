package middleware

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yukikurage/labourlink-api/internal/constants"
	apierrors "github.com/yukikurage/labourlink-api/internal/errors"
	"github.com/yukikurage/labourlink-api/internal/models"
	"github.com/yukikurage/labourlink-api/internal/services"
)

// IdentityResolver turns a credential into a user. *services.AuthService implements it.
type IdentityResolver interface {
	UserIDFromToken(token string) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// RequireAuth resolves the caller from a bearer token or, failing that, the
// session cookie. The user is reloaded on every request so role and existence
// are never taken from the credential itself.
func RequireAuth(identity IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := resolveUserID(c, identity)
		if !ok {
			return
		}

		user, err := identity.GetUser(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				apierrors.Unauthorized(c, "User not found")
				return
			}
			log.Printf("request_id=%s auth: failed to load user %s: %v", RequestIDFromContext(c), userID, err)
			apierrors.InternalError(c, "")
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyUserRole, user.Role)
		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

func resolveUserID(c *gin.Context, identity IdentityResolver) (uuid.UUID, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			apierrors.Unauthorized(c, "Invalid authorization header")
			return uuid.Nil, false
		}
		userID, err := identity.UserIDFromToken(strings.TrimSpace(token))
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			return uuid.Nil, false
		}
		return userID, true
	}

	session := sessions.Default(c)
	raw, ok := session.Get(constants.ContextKeyUserID).(string)
	if !ok || raw == "" {
		apierrors.Unauthorized(c, "")
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		apierrors.Unauthorized(c, "")
		return uuid.Nil, false
	}
	return userID, true
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

// GetUser retrieves the current user from context
func GetUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}

// GetActor returns the authenticated caller in the form services expect.
func GetActor(c *gin.Context) (services.Actor, bool) {
	user, ok := GetUser(c)
	if !ok {
		return services.Actor{}, false
	}
	return services.NewActor(user), true
}
