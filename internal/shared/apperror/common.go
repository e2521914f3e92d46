package apperror

import "net/http"

var (
	ErrNotFound     = New(CodeNotFound, "Resource not found", http.StatusNotFound)
	ErrForbidden    = New(CodeForbidden, "You do not have permission to access this resource", http.StatusForbidden)
	ErrUnauthorized = New(CodeUnauthorized, "Authentication is required", http.StatusUnauthorized)
	ErrInvalidInput = New(CodeInvalidInput, "The provided input is invalid", http.StatusBadRequest)

	// ErrValidation dipakai untuk body request yang gagal binding atau validasi tag.
	ErrValidation = New(CodeValidation, "Input tidak valid", http.StatusBadRequest)

	ErrInternal = New(CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)
)
