package http

import (
	"github.com/gin-gonic/gin"
	authdomain "github.com/harshydv24/event-nexus-backend/internal/auth/domain"
	"github.com/harshydv24/event-nexus-backend/internal/auth/middleware"
)

// Register registers the club routes on an authenticated group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/clubs", h.List)
	rg.GET("/clubs/:id", h.Get)

	club := rg.Group("", middleware.RequireRole(authdomain.RoleClub))
	club.GET("/my/club", h.Me)
	club.PUT("/clubs/:id", h.Update)
	club.POST("/clubs/:id/members", h.AddMember)
}
