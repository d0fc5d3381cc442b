package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/harshydv24/event-nexus-backend/internal/auth/domain"
)

const ctxUserKey = "portal_user"

// SetUser stores the authenticated user on the request context.
func SetUser(c *gin.Context, user *domain.User) {
	c.Set(ctxUserKey, user)
}

// CurrentUser returns the authenticated user, or nil outside an
// authenticated route.
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*domain.User)
	if !ok {
		return nil
	}
	return user
}
