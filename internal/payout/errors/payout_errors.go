package payouterrors

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
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payout period",
		http.StatusBadRequest,
	)
	ErrInvalidPayoutID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payout id",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of draft, finalized, paid",
		http.StatusBadRequest,
	)
	ErrEmptyOverride = apperror.New(
		apperror.CodeInvalidInput,
		"override needs written_items or written_premium",
		http.StatusBadRequest,
	)
	ErrPayoutNotFound = apperror.New(
		apperror.CodeNotFound,
		"payout not found",
		http.StatusNotFound,
	)
	ErrOverrideNotFound = apperror.New(
		apperror.CodeNotFound,
		"payout override not found",
		http.StatusNotFound,
	)
	ErrNoDrafts = apperror.New(
		apperror.CodeInvalidState,
		"no draft payouts for this period",
		http.StatusUnprocessableEntity,
	)
	ErrPeriodFinalized = apperror.New(
		apperror.CodeInvalidState,
		"payouts for this period are already finalized",
		http.StatusConflict,
	)
	ErrPayoutNotFinalized = apperror.New(
		apperror.CodeInvalidState,
		"only finalized payouts can be marked paid",
		http.StatusConflict,
	)
	ErrPayoutAlreadyPaid = apperror.New(
		apperror.CodeInvalidState,
		"payout is already paid",
		http.StatusConflict,
	)
)
