package http

import (
	"github.com/gin-gonic/gin"
	authdomain "github.com/harshydv24/event-nexus-backend/internal/auth/domain"
	"github.com/harshydv24/event-nexus-backend/internal/auth/middleware"
)

// RegisterRoutes registers the event routes on an authenticated group.
// Write operations are gated by role, mirroring the portal's
// role-scoped pages: clubs propose and pick venues, the department
// decides, students register.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/events", h.List)
	rg.GET("/events/:id", h.Get)
	rg.GET("/events/:id/participants", h.Participants)
	rg.GET("/events/:id/history", h.History)

	club := rg.Group("", middleware.RequireRole(authdomain.RoleClub))
	club.POST("/events", h.Create)
	club.POST("/events/:id/venue", h.SelectVenue)

	department := rg.Group("", middleware.RequireRole(authdomain.RoleDepartment))
	department.POST("/events/:id/approve", h.Approve)
	department.POST("/events/:id/reject", h.Reject)
	department.POST("/events/:id/complete", h.Complete)

	student := rg.Group("", middleware.RequireRole(authdomain.RoleStudent))
	student.POST("/events/:id/register", h.Register)
	student.POST("/events/:id/register-team", h.RegisterTeam)
}
