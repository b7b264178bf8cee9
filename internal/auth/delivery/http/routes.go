package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the public login and logout routes.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.LoginForm)
	r.GET("/logout", h.Logout)

	r.POST("/api/login", h.LoginJSON)
}
