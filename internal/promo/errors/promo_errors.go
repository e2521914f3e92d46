package promoerrors

import (
	"net/http"

	"go-agency/internal/shared/apperror"
)

var (
	ErrInvalidAgencyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid agency id",
		http.StatusBadRequest,
	)
	ErrInvalidPromoID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid promo id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrInvalidMeasurement = apperror.New(
		apperror.CodeInvalidInput,
		"unknown promo measurement",
		http.StatusBadRequest,
	)
	ErrInvalidScope = apperror.New(
		apperror.CodeInvalidInput,
		"unknown promo scope",
		http.StatusBadRequest,
	)
	ErrProducersRequired = apperror.New(
		apperror.CodeInvalidInput,
		"individual promos need at least one producer",
		http.StatusBadRequest,
	)
	ErrInvalidTarget = apperror.New(
		apperror.CodeInvalidInput,
		"target value must be positive and bonus non-negative",
		http.StatusBadRequest,
	)
	ErrPromoNotFound = apperror.New(
		apperror.CodeNotFound,
		"promo not found",
		http.StatusNotFound,
	)
)
