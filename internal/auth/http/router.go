package http

import "github.com/gin-gonic/gin"

// Register registers the auth routes. public carries no auth
// middleware; authed requires a valid session.
func (h *Handler) Register(public, authed *gin.RouterGroup) {
	public.POST("/signup", h.Signup)
	public.POST("/login", h.Login)

	authed.POST("/logout", h.Logout)
	authed.GET("/me", h.Me)
}
