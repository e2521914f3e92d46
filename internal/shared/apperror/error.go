package apperror

import "fmt"

// AppError adalah error yang membawa code dan status HTTP sampai ke handler.
// Sentinel per fitur dideklarasikan di package <fitur>/errors.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error

	// base menunjuk sentinel asal bila error ini hasil WithCause.
	base *AppError
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is membuat salinan dari WithCause tetap cocok dengan sentinel asalnya lewat errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t != nil && t.root() == e.root()
}

func (e *AppError) root() *AppError {
	if e.base != nil {
		return e.base
	}
	return e
}

// WithCause menyalin sentinel dan menempelkan penyebab aslinya.
// Penyebab ikut tampil sebagai details untuk error 4xx.
func (e *AppError) WithCause(err error) *AppError {
	cp := *e
	cp.Err = err
	cp.base = e.root()
	return &cp
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}
