package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"go-agency/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errPeriodFinalized = apperror.New(apperror.CodeConflict, "period finalized", http.StatusConflict)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps its status", func(t *testing.T) {
		err := fmt.Errorf("save draft: %w", errPeriodFinalized)
		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, apperror.CodeConflict, got.Code)
		assert.Equal(t, "period finalized", got.Message)
	})

	t.Run("cause is exposed for client errors", func(t *testing.T) {
		err := apperror.ErrInvalidInput.WithCause(errors.New("month 13"))
		got := apperror.ToHTTP(err)
		assert.Equal(t, "month 13", got.Details)
	})

	t.Run("cause is hidden for server errors", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.ErrInternal.WithCause(errors.New("pq: connection refused")))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Nil(t, got.Details)
	})

	t.Run("unknown error is internal", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.Nil(t, got.Details)
	})
}

func TestWithCause_KeepsSentinelIdentity(t *testing.T) {
	err := errPeriodFinalized.WithCause(errors.New("2026-03"))
	assert.ErrorIs(t, err, errPeriodFinalized)
	assert.NotErrorIs(t, err, apperror.ErrNotFound)

	again := err.WithCause(errors.New("retry"))
	assert.ErrorIs(t, again, errPeriodFinalized)
	assert.Equal(t, "period finalized", again.Message)
	assert.Nil(t, errPeriodFinalized.Err)
}

func TestFieldErrors(t *testing.T) {
	assert.Equal(t, "Month is required", apperror.RequiredField("Month").Message)
	assert.Equal(t, "Year is invalid", apperror.InvalidField("Year").Message)
}

type periodInput struct {
	Month       int      `json:"month" validate:"required,min=1,max=12"`
	Measurement string   `json:"measurement" validate:"required,oneof=premium items"`
	PlanID      string   `json:"plan_id" validate:"required,uuid"`
	ProducerIDs []string `json:"producer_ids" validate:"required"`
}

func TestMapValidationError(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	tests := []struct {
		name    string
		input   periodInput
		message string
	}{
		{
			name:    "max",
			input:   periodInput{Month: 13, Measurement: "items", PlanID: "5f0c3c0e-8f43-4a7c-9a55-0d6c2a7d1b11", ProducerIDs: []string{"p"}},
			message: "Month must be at most 12",
		},
		{
			name:    "oneof",
			input:   periodInput{Month: 3, Measurement: "points", PlanID: "5f0c3c0e-8f43-4a7c-9a55-0d6c2a7d1b11", ProducerIDs: []string{"p"}},
			message: "Measurement must be one of: premium, items",
		},
		{
			name:    "uuid",
			input:   periodInput{Month: 3, Measurement: "items", PlanID: "plan-1", ProducerIDs: []string{"p"}},
			message: "Plan Id must be a valid UUID",
		},
		{
			name:    "required",
			input:   periodInput{Month: 3, Measurement: "items", PlanID: "5f0c3c0e-8f43-4a7c-9a55-0d6c2a7d1b11"},
			message: "Producer Ids is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			require.Error(t, err)

			got := apperror.MapValidationError(err)
			assert.Equal(t, apperror.CodeValidation, got.Code)
			assert.Equal(t, http.StatusBadRequest, got.HTTPStatus)
			assert.Equal(t, tt.message, got.Message)
			assert.ErrorIs(t, got, apperror.ErrValidation)
		})
	}

	t.Run("decode error keeps generic message", func(t *testing.T) {
		got := apperror.MapValidationError(errors.New("unexpected EOF"))
		assert.Equal(t, "Input tidak valid", got.Message)
	})
}
