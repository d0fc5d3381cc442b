package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harshydv24/event-nexus-backend/internal/auth"
	"github.com/harshydv24/event-nexus-backend/internal/auth/domain"
	"github.com/harshydv24/event-nexus-backend/internal/auth/service"
)

// RequireAuth validates the Bearer token and the live session, then
// puts the authenticated user on the context.
func RequireAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			c.Abort()
			return
		}

		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token format"})
			c.Abort()
			return
		}

		user, err := authService.VerifyToken(c.Request.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		auth.SetUser(c, user)
		c.Next()
	}
}

// RequireRole gates a route group to one role, mirroring the old
// portal's role-scoped pages.
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		if user == nil || user.Role != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden for this role"})
			c.Abort()
			return
		}
		c.Next()
	}
}
