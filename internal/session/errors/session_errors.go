package sessionerrors

import (
	"go-yourtask/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid session token",
		http.StatusUnauthorized,
	)

	ErrSessionNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Session not found, please login again",
		http.StatusUnauthorized,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate session token",
		http.StatusInternalServerError,
	)
)
