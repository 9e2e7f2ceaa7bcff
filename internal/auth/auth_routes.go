package auth

import (
	"go-yourtask/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes: login terbuka, sisanya butuh session aktif.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authenticate gin.HandlerFunc) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.5, 5), handler.Login)
		auth.GET("/me", authenticate, middleware.RateLimitBySession(2, 5), handler.Me)
		auth.POST("/logout", authenticate, middleware.RateLimitBySession(2, 5), handler.Logout)
	}
}
