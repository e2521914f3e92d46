package domain

// EnforceRequest dipakai bersama oleh middleware dan package rbac tanpa import cycle.
type EnforceRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	AgencyID string `json:"agency_id" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
