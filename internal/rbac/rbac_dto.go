package rbac

import "go-agency/internal/domain"

type EnforceRequest = domain.EnforceRequest

type EnforceResponse = domain.EnforceResponse

type CreateRoleRequest struct {
	Name          string   `json:"name" binding:"required,notblank,max=100"`
	Description   string   `json:"description"`
	PermissionIDs []string `json:"permission_ids" binding:"dive,uuid"`
}

type AssignRoleRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	RoleID string `json:"role_id" binding:"required,uuid"`
}

type RoleResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

type PermissionResponse struct {
	ID       string `json:"id"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// CheckPermissionRequest: user_id kosong berarti user yang sedang login.
type CheckPermissionRequest struct {
	UserID   string `json:"user_id" binding:"omitempty,uuid"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}
