package dashboard

import (
	"time"

	"go-yourtask/internal/middleware"
	"go-yourtask/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mengharuskan group sudah melewati AuthMiddleware.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, rdb *redis.Client) {
	group := r.Group("/dashboard")
	{
		group.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceTasks, rbac.ActionRead),
			handler.View,
		)
		group.POST("/refresh",
			middleware.RateLimitBySession(0.5, 2),
			middleware.InFlightLock(rdb, 30*time.Second),
			middleware.RBACAuthorize(rbacService, rbac.ResourceTasks, rbac.ActionRead),
			handler.Refresh,
		)
		group.PUT("/filters", handler.UpdateFilters)
		group.DELETE("/filters", handler.ResetFilters)
		group.PUT("/tab", handler.SetTab)

		group.GET("/tasks",
			middleware.RBACAuthorize(rbacService, rbac.ResourceTasks, rbac.ActionRead),
			handler.Tasks,
		)
		group.POST("/tasks/:taskId/finish",
			middleware.RBACAuthorize(rbacService, rbac.ResourceTasks, rbac.ActionFinish),
			handler.FinishTask,
		)
		group.GET("/attendance",
			middleware.RBACAuthorize(rbacService, rbac.ResourceAttendance, rbac.ActionRead),
			handler.Attendance,
		)
	}
}
