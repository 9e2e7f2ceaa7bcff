package sheeterrors

import (
	"go-yourtask/internal/shared/apperror"
	"net/http"
)

var (
	ErrFetchFailed = apperror.New(
		apperror.CodeUpstreamError,
		"Gagal mengambil data dari spreadsheet cloud.",
		http.StatusBadGateway,
	)

	ErrUnknownTable = apperror.New(
		apperror.CodeInternalError,
		"Sheet table is not configured",
		http.StatusInternalServerError,
	)
)

// FetchFailed membungkus penyebab kegagalan fetch tanpa mengubah kode error.
func FetchFailed(cause error) *apperror.AppError {
	return apperror.Wrap(cause, ErrFetchFailed.Code, ErrFetchFailed.Message, ErrFetchFailed.HTTPStatus)
}
