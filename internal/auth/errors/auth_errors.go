package autherrors

import (
	"fmt"
	"net/http"

	"go-yourtask/internal/shared/apperror"
)

const (
	CodeUsernameNotRegistered = "USERNAME_NOT_REGISTERED"
	CodeNoActiveTask          = "NO_ACTIVE_TASK"
)

var (
	// ErrEmptyUsername tidak pernah sampai ke user; handler membalas 204.
	ErrEmptyUsername = apperror.New(
		apperror.CodeInvalidInput,
		"Username kosong",
		http.StatusNoContent,
	)

	ErrUsernameNotRegistered = apperror.New(
		CodeUsernameNotRegistered,
		"Username tidak terdaftar.",
		http.StatusUnauthorized,
	)

	ErrNoActiveTask = apperror.New(
		CodeNoActiveTask,
		"Username terdaftar tapi tidak ditemukan tugas aktif.",
		http.StatusUnauthorized,
	)
)

// UsernameNotRegistered menyebut handle yang diketik user di pesan error.
func UsernameNotRegistered(handle string) *apperror.AppError {
	return apperror.Wrap(ErrUsernameNotRegistered, CodeUsernameNotRegistered,
		fmt.Sprintf("Username '%s' tidak terdaftar.", handle), http.StatusUnauthorized)
}

func NoActiveTask(handle string) *apperror.AppError {
	return apperror.Wrap(ErrNoActiveTask, CodeNoActiveTask,
		fmt.Sprintf("Username '%s' terdaftar tapi tidak ditemukan tugas aktif di kolom V.", handle), http.StatusUnauthorized)
}
