package bootstrap

import "context"

// AuditLog adalah satu kejadian penting (login, logout, shutdown).
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
