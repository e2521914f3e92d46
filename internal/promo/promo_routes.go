package promo

import (
	"go-agency/internal/middleware"
	"go-agency/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
) {
	promos := r.Group("/promos")
	promos.Use(middleware.AuthMiddleware())
	{
		promos.GET("", middleware.RBACAuthorize(rbacService, "promo", "read"), h.GetAll)
		promos.POST("", middleware.RBACAuthorize(rbacService, "promo", "create"), h.Create)
		promos.GET("/:id", middleware.RBACAuthorize(rbacService, "promo", "read"), h.GetById)
		promos.PUT("/:id", middleware.RBACAuthorize(rbacService, "promo", "update"), h.Update)
		promos.DELETE("/:id", middleware.RBACAuthorize(rbacService, "promo", "delete"), h.Delete)
	}
}
