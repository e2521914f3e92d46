package apperror

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var fieldCaser = cases.Title(language.English)

// producer_ids -> Producer Ids
func formatFieldName(s string) string {
	return fieldCaser.String(strings.ReplaceAll(s, "_", " "))
}

// MapValidationError mengubah error binding gin menjadi ErrValidation dengan pesan untuk field pertama
// yang gagal. Error decode JSON tetap memakai pesan umum.
func MapValidationError(err error) *AppError {
	appErr := ErrValidation.WithCause(err)

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return appErr
	}

	e := errs[0]
	field := formatFieldName(e.Field())

	switch e.Tag() {
	case "required", "notblank":
		appErr.Message = RequiredField(field).Message
	case "oneof":
		appErr.Message = fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(e.Param(), " ", ", "))
	case "min", "gte":
		appErr.Message = fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "gt":
		appErr.Message = fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "max", "lte":
		appErr.Message = fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "uuid":
		appErr.Message = fmt.Sprintf("%s must be a valid UUID", field)
	default:
		appErr.Message = InvalidField(field).Message
	}
	return appErr
}
