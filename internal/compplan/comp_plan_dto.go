package compplan

import "github.com/shopspring/decimal"

type TierInput struct {
	MinThreshold   int64           `json:"min_threshold"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

type BonusRuleInput struct {
	Name          string          `json:"name" binding:"required,notblank"`
	Kind          string          `json:"kind" binding:"required,oneof=flat percentage"`
	AmountCents   int64           `json:"amount_cents"`
	Percent       decimal.Decimal `json:"percent"`
	MinNetPremium int64           `json:"min_net_premium"`
}

type CreateCompPlanRequest struct {
	Name                 string           `json:"name" binding:"required,notblank"`
	ChargebackRule       string           `json:"chargeback_rule" binding:"required,oneof=none three_month full"`
	SelfGenKickerPercent decimal.Decimal  `json:"self_gen_kicker_percent"`
	Tiers                []TierInput      `json:"tiers" binding:"required,min=1"`
	BonusRules           []BonusRuleInput `json:"bonus_rules" binding:"omitempty,dive"`
}

type UpdateCompPlanRequest struct {
	Name                 string           `json:"name" binding:"required,notblank"`
	ChargebackRule       string           `json:"chargeback_rule" binding:"required,oneof=none three_month full"`
	SelfGenKickerPercent decimal.Decimal  `json:"self_gen_kicker_percent"`
	Tiers                []TierInput      `json:"tiers" binding:"required,min=1"`
	BonusRules           []BonusRuleInput `json:"bonus_rules" binding:"omitempty,dive"`
	IsActive             *bool            `json:"is_active"`
}

type AssignProducerRequest struct {
	ProducerID    string  `json:"producer_id" binding:"required"`
	ProducerName  string  `json:"producer_name"`
	PlanID        string  `json:"plan_id" binding:"required,uuid"`
	EffectiveFrom string  `json:"effective_from" binding:"required"`
	EffectiveTo   *string `json:"effective_to"`
}

type TierResponse struct {
	MinThreshold   int64  `json:"min_threshold"`
	CommissionRate string `json:"commission_rate"`
}

type BonusRuleResponse struct {
	Name          string `json:"name"`
	Kind          string `json:"kind"`
	AmountCents   int64  `json:"amount_cents"`
	Percent       string `json:"percent"`
	MinNetPremium int64  `json:"min_net_premium"`
}

type CompPlanResponse struct {
	ID                   string              `json:"id"`
	AgencyID             string              `json:"agency_id"`
	Name                 string              `json:"name"`
	ChargebackRule       string              `json:"chargeback_rule"`
	SelfGenKickerPercent string              `json:"self_gen_kicker_percent"`
	IsActive             bool                `json:"is_active"`
	Tiers                []TierResponse      `json:"tiers"`
	BonusRules           []BonusRuleResponse `json:"bonus_rules"`
}

type AssignmentResponse struct {
	ID            string  `json:"id"`
	ProducerID    string  `json:"producer_id"`
	ProducerName  string  `json:"producer_name,omitempty"`
	PlanID        string  `json:"plan_id"`
	PlanName      string  `json:"plan_name,omitempty"`
	EffectiveFrom string  `json:"effective_from"`
	EffectiveTo   *string `json:"effective_to,omitempty"`
}
