package sheetcheck

import (
	"go-yourtask/internal/middleware"
	"go-yourtask/internal/rbac"
	"go-yourtask/internal/session"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	sheets := r.Group("/sheets")
	{
		sheets.GET("/summary",
			middleware.RoleMiddleware(session.RoleOps),
			middleware.RateLimitBySession(0.2, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceSheets, rbac.ActionRead),
			handler.Summary,
		)
	}
}
