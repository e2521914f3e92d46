package middleware

import (
	"context"

	"go-agency/internal/domain"
	"go-agency/internal/shared/apperror"
	"go-agency/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService adalah interface lokal.
// Apapun package yang punya method Enforce(ctx, domain.EnforceRequest) bisa masuk ke sini.
type RBACService interface {
	Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)
		agencyID := c.GetString(ContextAgencyID)
		if userID == "" || agencyID == "" {
			abortWithError(c, ErrMissingContext, nil)
			return
		}

		allowed, err := service.Enforce(c.Request.Context(), domain.EnforceRequest{
			UserID:   userID,
			AgencyID: agencyID,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			contextutil.GetLogger(c.Request.Context(), zap.L()).Error("rbac enforce failed", zap.Error(err))
			abortWithError(c, apperror.ErrInternal, nil)
			return
		}

		if !allowed {
			abortWithError(c, apperror.ErrForbidden, gin.H{"required": resource + ":" + action})
			return
		}
		c.Next()
	}
}
