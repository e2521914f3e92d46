package payout

import "go-agency/internal/commission"

type CalculateRequest struct {
	Month     int                             `json:"month" binding:"required,min=1,max=12"`
	Year      int                             `json:"year" binding:"required,min=2000,max=9999"`
	Producers []commission.SubProducerMetrics `json:"producers" binding:"required,min=1"`
	Overrides []commission.ManualOverride     `json:"overrides"`
}

type PeriodRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000,max=9999"`
}

type ListFilter struct {
	Month  int
	Year   int
	Status string
}

type OverrideRequest struct {
	ProducerID     string `json:"producer_id" binding:"required"`
	Month          int    `json:"month" binding:"required,min=1,max=12"`
	Year           int    `json:"year" binding:"required,min=2000,max=9999"`
	WrittenItems   *int64 `json:"written_items" binding:"omitempty,gte=0"`
	WrittenPremium *int64 `json:"written_premium"`
	Note           string `json:"note"`
}

type Summary struct {
	Period         string `json:"period"`
	ProducerCount  int    `json:"producer_count"`
	NetPremium     int64  `json:"net_premium"`
	BaseCommission int64  `json:"base_commission"`
	BonusAmount    int64  `json:"bonus_amount"`
	KickerAmount   int64  `json:"self_gen_kicker_amount"`
	TotalPayout    int64  `json:"total_payout"`
}

type CalculationResponse struct {
	Period   string                         `json:"period"`
	Payouts  []commission.PayoutCalculation `json:"payouts"`
	Warnings []string                       `json:"warnings"`
	Summary  Summary                        `json:"summary"`
}

type PayoutResponse struct {
	ID                  string  `json:"id"`
	RunNumber           string  `json:"run_number"`
	Period              string  `json:"period"`
	ProducerID          string  `json:"producer_id"`
	ProducerName        string  `json:"producer_name"`
	PlanID              string  `json:"plan_id"`
	PlanName            string  `json:"plan_name"`
	Status              string  `json:"status"`
	NetPremium          int64   `json:"net_premium"`
	CommissionRate      string  `json:"commission_rate"`
	BaseCommission      int64   `json:"base_commission"`
	BonusAmount         int64   `json:"bonus_amount"`
	SelfGenKickerAmount int64   `json:"self_gen_kicker_amount"`
	TotalPayout         int64   `json:"total_payout"`
	OverrideApplied     bool    `json:"override_applied"`
	FinalizedAt         *string `json:"finalized_at,omitempty"`
	PaidAt              *string `json:"paid_at,omitempty"`
}

type PayoutDetailResponse struct {
	PayoutResponse
	Detail commission.PayoutCalculation `json:"detail"`
}

type SaveDraftResponse struct {
	RunNumber string           `json:"run_number"`
	Period    string           `json:"period"`
	Payouts   []PayoutResponse `json:"payouts"`
	Warnings  []string         `json:"warnings"`
	Summary   Summary          `json:"summary"`
}

type FinalizeResponse struct {
	Period      string `json:"period"`
	RunNumber   string `json:"run_number"`
	Finalized   int64  `json:"finalized"`
	TotalPayout int64  `json:"total_payout"`
}

type OverrideResponse struct {
	ID             string `json:"id"`
	ProducerID     string `json:"producer_id"`
	Period         string `json:"period"`
	WrittenItems   *int64 `json:"written_items,omitempty"`
	WrittenPremium *int64 `json:"written_premium,omitempty"`
	Note           string `json:"note,omitempty"`
	UpdatedBy      string `json:"updated_by"`
}
