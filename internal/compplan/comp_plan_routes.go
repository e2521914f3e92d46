package compplan

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
	plans := r.Group("/comp-plans")
	plans.Use(middleware.AuthMiddleware())
	{
		plans.GET("", middleware.RBACAuthorize(rbacService, "comp_plan", "read"), h.GetAll)
		plans.POST("", middleware.RBACAuthorize(rbacService, "comp_plan", "create"), h.Create)
		plans.GET("/assignments", middleware.RBACAuthorize(rbacService, "comp_plan", "read"), h.ListAssignments)
		plans.POST("/assignments", middleware.RBACAuthorize(rbacService, "comp_plan", "assign"), h.Assign)
		plans.DELETE("/assignments/:id", middleware.RBACAuthorize(rbacService, "comp_plan", "assign"), h.Unassign)
		plans.GET("/:id", middleware.RBACAuthorize(rbacService, "comp_plan", "read"), h.GetById)
		plans.PUT("/:id", middleware.RBACAuthorize(rbacService, "comp_plan", "update"), h.Update)
		plans.DELETE("/:id", middleware.RBACAuthorize(rbacService, "comp_plan", "delete"), h.Delete)
	}
}
