package domain

// EnforceRequest dipakai bersama oleh rbac dan middleware agar tidak terjadi import cycle.
type EnforceRequest struct {
	Role     string `json:"role"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}
