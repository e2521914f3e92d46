package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-agency/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRBAC struct {
	allowed bool
	err     error
	got     domain.EnforceRequest
}

func (f *fakeRBAC) Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func serveRBAC(svc RBACService, withAuth bool) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/payouts", func(c *gin.Context) {
		if withAuth {
			c.Set(ContextUserID, "u-1")
			c.Set(ContextAgencyID, "a-1")
		}
		c.Next()
	}, RBACAuthorize(svc, "payout", "read"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payouts", nil))
	return w
}

func TestRBACAuthorize(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		svc := &fakeRBAC{allowed: true}
		w := serveRBAC(svc, true)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, domain.EnforceRequest{UserID: "u-1", AgencyID: "a-1", Resource: "payout", Action: "read"}, svc.got)
	})

	t.Run("forbidden", func(t *testing.T) {
		w := serveRBAC(&fakeRBAC{}, true)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "payout:read")
	})

	t.Run("enforcer error", func(t *testing.T) {
		w := serveRBAC(&fakeRBAC{err: errors.New("boom")}, true)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "boom")
	})

	t.Run("missing auth context", func(t *testing.T) {
		w := serveRBAC(&fakeRBAC{allowed: true}, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
