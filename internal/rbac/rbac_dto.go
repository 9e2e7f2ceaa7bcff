package rbac

import "go-yourtask/internal/domain"

type EnforceRequest = domain.EnforceRequest

type CheckRequest struct {
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PermissionResponse struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}
