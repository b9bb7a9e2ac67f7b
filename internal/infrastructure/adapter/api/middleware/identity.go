package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/cage-reservations/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cage-reservations/internal/domain/error"
	"github.com/amirhossein-jamali/cage-reservations/internal/infrastructure/adapter/api/dto"
)

// HeaderUserID is set by the trusted authentication proxy
const HeaderUserID = "X-User-ID"

const userContextKey = "cage.user"

// UserLookup loads the acting user
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

// Identity loads the user named by X-User-ID once per request. Requests
// without the header continue anonymously.
func Identity(users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderUserID)
		if id == "" {
			c.Next()
			return
		}

		user, err := users.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, errs.ErrUserNotFound) {
				abortUnauthorized(c, "Unknown user")
				return
			}
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireUser rejects anonymous requests
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			abortUnauthorized(c, "Authentication required")
			return
		}
		c.Next()
	}
}

// RequireStaff rejects requests from anyone but staff and admins
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortUnauthorized(c, "Authentication required")
			return
		}
		if !user.Role.IsStaff() {
			_ = c.Error(errs.NewForbiddenError(errs.RuleInsufficientRole, "Staff role required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user loaded by Identity
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}

// SetCurrentUser stores user as the acting user
func SetCurrentUser(c *gin.Context, user *entity.User) {
	c.Set(userContextKey, user)
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    errs.CodeUnauthorized,
		Message: message,
	})
}
