package payout_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-agency/internal/payout"
	payouterrors "go-agency/internal/payout/errors"
	payoutMock "go-agency/internal/payout/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	testAgencyID = "7f1c0e52-2a47-4b8e-9a0e-4f6a1f0c9d11"
	testUserID   = "3b9d5a8e-1c2f-4e6a-8b7d-0a1b2c3d4e5f"
)

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set("agency_id", testAgencyID)
	c.Set("user_id", testUserID)
	return c, w
}

func setupHandler(t *testing.T) (*payout.Handler, *payoutMock.MockService) {
	ctrl := gomock.NewController(t)
	svc := payoutMock.NewMockService(ctrl)
	return payout.NewHandler(svc, zap.NewNop()), svc
}

func TestPayoutHandler_Preview(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, svc := setupHandler(t)
		svc.EXPECT().Preview(gomock.Any(), testAgencyID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req payout.CalculateRequest) (payout.CalculationResponse, error) {
				assert.Equal(t, 3, req.Month)
				require.Len(t, req.Producers, 1)
				require.Len(t, req.Producers[0].ChargebackInsureds, 1)
				assert.Equal(t, 45, *req.Producers[0].ChargebackInsureds[0].DaysInForce)
				return payout.CalculationResponse{Period: "2026-03", Warnings: []string{}}, nil
			})

		body := `{"month":3,"year":2026,"producers":[{"producer_id":"p-1","issued_premium":1000,
			"chargeback_insureds":[{"insured_name":"X","net_premium":-200,"days_in_force":45}]}]}`
		c, w := newTestContext(http.MethodPost, "/payouts/preview", body)
		h.Preview(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"period":"2026-03"`)
	})

	t.Run("missing producers", func(t *testing.T) {
		h, _ := setupHandler(t)
		c, w := newTestContext(http.MethodPost, "/payouts/preview", `{"month":3,"year":2026}`)
		h.Preview(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("month out of range", func(t *testing.T) {
		h, _ := setupHandler(t)
		c, w := newTestContext(http.MethodPost, "/payouts/preview", `{"month":13,"year":2026,"producers":[{"producer_id":"p"}]}`)
		h.Preview(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPayoutHandler_SaveDraft(t *testing.T) {
	h, svc := setupHandler(t)
	svc.EXPECT().SaveDraft(gomock.Any(), testAgencyID, testUserID, gomock.Any()).
		Return(payout.SaveDraftResponse{RunNumber: "RUN-2026-03-0001"}, nil)

	c, w := newTestContext(http.MethodPost, "/payouts/drafts", `{"month":3,"year":2026,"producers":[{"producer_id":"p-1"}]}`)
	h.SaveDraft(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "RUN-2026-03-0001")
}

func TestPayoutHandler_Finalize(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"success", nil, http.StatusOK},
		{"already finalized", payouterrors.ErrPeriodFinalized, http.StatusConflict},
		{"nothing to finalize", payouterrors.ErrNoDrafts, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := setupHandler(t)
			svc.EXPECT().Finalize(gomock.Any(), testAgencyID, testUserID, payout.PeriodRequest{Month: 3, Year: 2026}).
				Return(payout.FinalizeResponse{Finalized: 2}, tt.err)

			c, w := newTestContext(http.MethodPost, "/payouts/finalize", `{"month":3,"year":2026}`)
			h.Finalize(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestPayoutHandler_GetAll_Paginates(t *testing.T) {
	h, svc := setupHandler(t)
	rows := make([]payout.PayoutResponse, 5)
	for i := range rows {
		rows[i] = payout.PayoutResponse{ProducerID: string(rune('a' + i))}
	}
	svc.EXPECT().GetAll(gomock.Any(), testAgencyID, payout.ListFilter{Month: 3, Year: 2026, Status: "draft"}).Return(rows, nil)

	c, w := newTestContext(http.MethodGet, "/payouts?month=3&year=2026&status=draft&page=2&page_size=2", "")
	h.GetAll(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data []payout.PayoutResponse `json:"data"`
		Meta struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "c", body.Data[0].ProducerID)
	assert.Equal(t, int64(5), body.Meta.Total)
	assert.Equal(t, 3, body.Meta.TotalPages)
}

func TestPayoutHandler_GetSummary_BadQuery(t *testing.T) {
	h, _ := setupHandler(t)
	c, w := newTestContext(http.MethodGet, "/payouts/summary?month=march&year=2026", "")
	h.GetSummary(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "month is invalid")
}

func TestPayoutHandler_GetSummary_PeriodParam(t *testing.T) {
	h, svc := setupHandler(t)
	svc.EXPECT().GetSummary(gomock.Any(), testAgencyID, payout.PeriodRequest{Month: 3, Year: 2026}).Return(payout.Summary{}, nil)

	c, w := newTestContext(http.MethodGet, "/payouts/summary?period=2026-03", "")
	h.GetSummary(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newTestContext(http.MethodGet, "/payouts/summary?period=03-2026", "")
	h.GetSummary(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "period is invalid")
}

func TestPayoutHandler_MarkPaid_NotFinalized(t *testing.T) {
	h, svc := setupHandler(t)
	svc.EXPECT().MarkPaid(gomock.Any(), testAgencyID, testUserID, "pay-1").Return(payout.PayoutResponse{}, payouterrors.ErrPayoutNotFinalized)

	c, w := newTestContext(http.MethodPost, "/payouts/pay-1/mark-paid", "")
	c.Params = gin.Params{{Key: "id", Value: "pay-1"}}
	h.MarkPaid(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPayoutHandler_UpsertOverride_NegativeItems(t *testing.T) {
	h, _ := setupHandler(t)
	c, w := newTestContext(http.MethodPut, "/payouts/overrides", `{"producer_id":"p-1","month":3,"year":2026,"written_items":-1}`)
	h.UpsertOverride(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
