package auth

import (
	"strings"

	"go-yourtask/internal/account"
	autherrors "go-yourtask/internal/auth/errors"
	"go-yourtask/internal/session"
	"go-yourtask/internal/task"
)

// Resolve menentukan identitas dari handle login.
// Ops dicek lebih dulu; kurir hanya lolos bila punya minimal satu tugas.
// Handle yang hanya muncul di kolom courier id tugas tidak dianggap terdaftar.
func Resolve(handle string, ops, couriers []account.Account, tasks []task.Task) (session.Session, error) {
	h := strings.TrimSpace(handle)
	if h == "" {
		return session.Session{}, autherrors.ErrEmptyUsername
	}

	if acc, ok := account.FindByUsername(ops, h); ok {
		return session.Session{Username: acc.Username, Name: acc.Name, Role: session.RoleOps}, nil
	}

	acc, ok := account.FindByUsername(couriers, h)
	if !ok {
		return session.Session{}, autherrors.UsernameNotRegistered(h)
	}

	for _, t := range tasks {
		if strings.EqualFold(t.CourierID, h) {
			return session.Session{Username: acc.Username, Name: acc.Name, Role: session.RoleKurir}, nil
		}
	}
	return session.Session{}, autherrors.NoActiveTask(h)
}
