package compplanerrors

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
	ErrInvalidPlanID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid comp plan id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"effective_from must be before or equal effective_to",
		http.StatusBadRequest,
	)
	ErrInvalidTierConfiguration = apperror.New(
		apperror.CodeInvalidInput,
		"tier thresholds must be strictly increasing and rates non-negative",
		http.StatusBadRequest,
	)
	ErrInvalidBonusRule = apperror.New(
		apperror.CodeInvalidInput,
		"bonus rule amounts cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidKickerPercent = apperror.New(
		apperror.CodeInvalidInput,
		"self-gen kicker percent must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrPlanNotFound = apperror.New(
		apperror.CodeNotFound,
		"comp plan not found",
		http.StatusNotFound,
	)
	ErrPlanInactive = apperror.New(
		apperror.CodeInvalidState,
		"comp plan is not active",
		http.StatusBadRequest,
	)
	ErrPlanInUse = apperror.New(
		apperror.CodeConflict,
		"comp plan still has producer assignments",
		http.StatusConflict,
	)
	ErrPlanNameTaken = apperror.New(
		apperror.CodeConflict,
		"comp plan with this name already exists",
		http.StatusConflict,
	)
	ErrAssignmentOverlap = apperror.New(
		apperror.CodeConflict,
		"producer already has an active comp plan assignment in this period",
		http.StatusConflict,
	)
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"producer assignment not found",
		http.StatusNotFound,
	)
)
