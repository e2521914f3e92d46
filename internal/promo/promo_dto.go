package promo

type CreatePromoRequest struct {
	Name             string   `json:"name" binding:"required,notblank"`
	Measurement      string   `json:"measurement" binding:"required,oneof=premium items points policies households"`
	TargetValue      int64    `json:"target_value" binding:"required,gt=0"`
	BonusAmountCents int64    `json:"bonus_amount_cents" binding:"gte=0"`
	StartDate        string   `json:"start_date" binding:"required"`
	EndDate          string   `json:"end_date" binding:"required"`
	Scope            string   `json:"scope" binding:"required,oneof=individual agency"`
	ProducerIDs      []string `json:"producer_ids"`
}

type UpdatePromoRequest struct {
	CreatePromoRequest
	IsActive *bool `json:"is_active"`
}

type PromoResponse struct {
	ID               string   `json:"id"`
	AgencyID         string   `json:"agency_id"`
	Name             string   `json:"name"`
	Measurement      string   `json:"measurement"`
	TargetValue      int64    `json:"target_value"`
	BonusAmountCents int64    `json:"bonus_amount_cents"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	Scope            string   `json:"scope"`
	ProducerIDs      []string `json:"producer_ids"`
	IsActive         bool     `json:"is_active"`
}
