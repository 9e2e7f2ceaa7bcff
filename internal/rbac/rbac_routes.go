package rbac

import "github.com/gin-gonic/gin"

// RegisterRoutes mengharuskan group sudah melewati middleware auth.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/rbac")
	{
		group.GET("/permissions", handler.Permissions)
		group.POST("/enforce", handler.Check)
	}
}
