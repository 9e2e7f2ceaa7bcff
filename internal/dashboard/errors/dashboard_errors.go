package dashboarderrors

import (
	"go-yourtask/internal/shared/apperror"
	"net/http"
)

var (
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"Tugas tidak ditemukan",
		http.StatusNotFound,
	)

	ErrInvalidTab = apperror.New(
		apperror.CodeInvalidInput,
		"Tab tidak dikenal",
		http.StatusBadRequest,
	)

	ErrNoSession = apperror.New(
		apperror.CodeUnauthorized,
		"Session tidak ditemukan",
		http.StatusUnauthorized,
	)
)
