package payout

import (
	"go-agency/internal/middleware"
	"go-agency/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	payouts := r.Group("/payouts")
	payouts.Use(middleware.AuthMiddleware())
	{
		payouts.GET("", middleware.RBACAuthorize(rbacService, "payout", "read"), h.GetAll)
		payouts.GET("/summary", middleware.RBACAuthorize(rbacService, "payout", "read"), h.GetSummary)
		payouts.POST("/preview",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "payout", "read"),
			h.Preview,
		)
		payouts.POST("/drafts",
			middleware.RBACAuthorize(rbacService, "payout", "calculate"),
			middleware.Idempotency(rdb),
			h.SaveDraft,
		)
		payouts.POST("/finalize",
			middleware.RBACAuthorize(rbacService, "payout", "finalize"),
			middleware.Idempotency(rdb),
			h.Finalize,
		)
		payouts.GET("/overrides", middleware.RBACAuthorize(rbacService, "payout", "read"), h.ListOverrides)
		payouts.PUT("/overrides", middleware.RBACAuthorize(rbacService, "payout", "override"), h.UpsertOverride)
		payouts.DELETE("/overrides/:id", middleware.RBACAuthorize(rbacService, "payout", "override"), h.DeleteOverride)
		payouts.GET("/:id", middleware.RBACAuthorize(rbacService, "payout", "read"), h.GetById)
		payouts.POST("/:id/mark-paid",
			middleware.RBACAuthorize(rbacService, "payout", "pay"),
			middleware.Idempotency(rdb),
			h.MarkPaid,
		)
	}
}
