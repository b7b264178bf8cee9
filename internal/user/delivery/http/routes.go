package http

import (
	"auth-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the identity routes behind their guards.
func (h *Handler) RegisterRoutes(r gin.IRouter, mw middleware.Middleware) {
	r.GET("/balance", mw.Auth(), h.Balance)

	api := r.Group("/api")
	{
		api.GET("/public", mw.OptionalAuth(), h.Public)
		api.GET("/profile", mw.Auth(), h.Profile)
		api.GET("/admin/users", mw.Admin(), h.ListUsers)
	}
}
