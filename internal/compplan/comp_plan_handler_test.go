package compplan_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-agency/internal/commission"
	"go-agency/internal/compplan"
	compplanerrors "go-agency/internal/compplan/errors"
	"go-agency/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeCompPlanService struct {
	CreateFn          func(ctx context.Context, agencyID string, req compplan.CreateCompPlanRequest) (compplan.CompPlanResponse, error)
	GetAllFn          func(ctx context.Context, agencyID string) ([]compplan.CompPlanResponse, error)
	GetByIDFn         func(ctx context.Context, agencyID, id string) (compplan.CompPlanResponse, error)
	UpdateFn          func(ctx context.Context, agencyID, id string, req compplan.UpdateCompPlanRequest) (compplan.CompPlanResponse, error)
	DeleteFn          func(ctx context.Context, agencyID, id string) error
	AssignFn          func(ctx context.Context, agencyID string, req compplan.AssignProducerRequest) (compplan.AssignmentResponse, error)
	ListAssignmentsFn func(ctx context.Context, agencyID string) ([]compplan.AssignmentResponse, error)
	UnassignFn        func(ctx context.Context, agencyID, id string) error
}

func (f *fakeCompPlanService) Create(ctx context.Context, agencyID string, req compplan.CreateCompPlanRequest) (compplan.CompPlanResponse, error) {
	return f.CreateFn(ctx, agencyID, req)
}
func (f *fakeCompPlanService) GetAll(ctx context.Context, agencyID string) ([]compplan.CompPlanResponse, error) {
	return f.GetAllFn(ctx, agencyID)
}
func (f *fakeCompPlanService) GetByID(ctx context.Context, agencyID, id string) (compplan.CompPlanResponse, error) {
	return f.GetByIDFn(ctx, agencyID, id)
}
func (f *fakeCompPlanService) Update(ctx context.Context, agencyID, id string, req compplan.UpdateCompPlanRequest) (compplan.CompPlanResponse, error) {
	return f.UpdateFn(ctx, agencyID, id, req)
}
func (f *fakeCompPlanService) Delete(ctx context.Context, agencyID, id string) error {
	return f.DeleteFn(ctx, agencyID, id)
}
func (f *fakeCompPlanService) Assign(ctx context.Context, agencyID string, req compplan.AssignProducerRequest) (compplan.AssignmentResponse, error) {
	return f.AssignFn(ctx, agencyID, req)
}
func (f *fakeCompPlanService) ListAssignments(ctx context.Context, agencyID string) ([]compplan.AssignmentResponse, error) {
	return f.ListAssignmentsFn(ctx, agencyID)
}
func (f *fakeCompPlanService) Unassign(ctx context.Context, agencyID, id string) error {
	return f.UnassignFn(ctx, agencyID, id)
}
func (f *fakeCompPlanService) LoadForPeriod(ctx context.Context, agencyID string, period commission.Period) (*commission.AssignmentSet, error) {
	return nil, errors.New("not used by handler")
}

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestCompPlanHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		agencyID := uuid.New().String()
		svc := &fakeCompPlanService{
			CreateFn: func(ctx context.Context, aid string, req compplan.CreateCompPlanRequest) (compplan.CompPlanResponse, error) {
				assert.Equal(t, agencyID, aid)
				assert.Len(t, req.Tiers, 2)
				assert.Equal(t, "12.5", req.Tiers[1].CommissionRate.String())
				return compplan.CompPlanResponse{ID: uuid.New().String(), Name: req.Name}, nil
			},
		}

		body := `{"name":"Standard","chargeback_rule":"three_month","tiers":[{"min_threshold":0,"commission_rate":"8"},{"min_threshold":100000,"commission_rate":"12.5"}]}`
		c, w := newTestContext(http.MethodPost, "/api/v1/comp-plans", body)
		c.Set("agency_id", agencyID)

		compplan.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Standard")
	})

	t.Run("blank name is required", func(t *testing.T) {
		body := `{"name":"   ","chargeback_rule":"none","tiers":[{"min_threshold":0,"commission_rate":"8"}]}`
		c, w := newTestContext(http.MethodPost, "/api/v1/comp-plans", body)
		c.Set("agency_id", uuid.New().String())

		compplan.NewHandler(&fakeCompPlanService{}).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Name is required")
	})

	t.Run("unknown chargeback rule fails binding", func(t *testing.T) {
		body := `{"name":"Standard","chargeback_rule":"sometimes","tiers":[{"min_threshold":0,"commission_rate":"8"}]}`
		c, w := newTestContext(http.MethodPost, "/api/v1/comp-plans", body)
		c.Set("agency_id", uuid.New().String())

		compplan.NewHandler(&fakeCompPlanService{}).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("invalid tiers map to bad request", func(t *testing.T) {
		svc := &fakeCompPlanService{
			CreateFn: func(ctx context.Context, aid string, req compplan.CreateCompPlanRequest) (compplan.CompPlanResponse, error) {
				return compplan.CompPlanResponse{}, compplanerrors.ErrInvalidTierConfiguration
			},
		}
		body := `{"name":"Standard","chargeback_rule":"none","tiers":[{"min_threshold":0,"commission_rate":"8"}]}`
		c, w := newTestContext(http.MethodPost, "/api/v1/comp-plans", body)
		c.Set("agency_id", uuid.New().String())

		compplan.NewHandler(svc).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
	})
}

func TestCompPlanHandler_GetById(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := &fakeCompPlanService{
			GetByIDFn: func(ctx context.Context, agencyID, id string) (compplan.CompPlanResponse, error) {
				return compplan.CompPlanResponse{}, compplanerrors.ErrPlanNotFound
			},
		}
		c, w := newTestContext(http.MethodGet, "/api/v1/comp-plans/x", "")
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
		c.Set("agency_id", uuid.New().String())

		compplan.NewHandler(svc).GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "comp plan not found")
	})

	t.Run("internal error is masked", func(t *testing.T) {
		svc := &fakeCompPlanService{
			GetByIDFn: func(ctx context.Context, agencyID, id string) (compplan.CompPlanResponse, error) {
				return compplan.CompPlanResponse{}, errors.New("connection reset by peer")
			},
		}
		c, w := newTestContext(http.MethodGet, "/api/v1/comp-plans/x", "")
		c.Set("agency_id", uuid.New().String())

		compplan.NewHandler(svc).GetById(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}

func TestCompPlanHandler_Assign(t *testing.T) {
	t.Run("overlap returns conflict", func(t *testing.T) {
		svc := &fakeCompPlanService{
			AssignFn: func(ctx context.Context, agencyID string, req compplan.AssignProducerRequest) (compplan.AssignmentResponse, error) {
				assert.Equal(t, "p-1", req.ProducerID)
				return compplan.AssignmentResponse{}, compplanerrors.ErrAssignmentOverlap
			},
		}
		body := `{"producer_id":"p-1","plan_id":"` + uuid.New().String() + `","effective_from":"2026-01-01"}`
		c, w := newTestContext(http.MethodPost, "/api/v1/comp-plans/assignments", body)
		c.Set("agency_id", uuid.New().String())

		compplan.NewHandler(svc).Assign(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeConflict)
	})

	t.Run("plan id must be uuid", func(t *testing.T) {
		body := `{"producer_id":"p-1","plan_id":"abc","effective_from":"2026-01-01"}`
		c, w := newTestContext(http.MethodPost, "/api/v1/comp-plans/assignments", body)

		compplan.NewHandler(&fakeCompPlanService{}).Assign(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCompPlanHandler_Delete(t *testing.T) {
	svc := &fakeCompPlanService{
		DeleteFn: func(ctx context.Context, agencyID, id string) error {
			return compplanerrors.ErrPlanInUse
		},
	}
	c, w := newTestContext(http.MethodDelete, "/api/v1/comp-plans/x", "")
	c.Set("agency_id", uuid.New().String())

	compplan.NewHandler(svc).Delete(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
