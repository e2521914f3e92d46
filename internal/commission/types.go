package commission

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Money values are stored in minor units (cents) to avoid floating point drift.
// Rates and percentages are decimal percentages, e.g. 12 means 12%.

type ChargebackRule string

const (
	ChargebackNone       ChargebackRule = "none"
	ChargebackThreeMonth ChargebackRule = "three_month"
	ChargebackFull       ChargebackRule = "full"
)

func (r ChargebackRule) Valid() bool {
	switch r {
	case ChargebackNone, ChargebackThreeMonth, ChargebackFull:
		return true
	}
	return false
}

type Status string

const (
	StatusDraft     Status = "draft"
	StatusFinalized Status = "finalized"
	StatusPaid      Status = "paid"
)

type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func NewPeriod(month, year int) (Period, error) {
	p := Period{Month: month, Year: year}
	return p, p.Validate()
}

func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidPeriod, p.Month)
	}
	if p.Year < 2000 || p.Year > 9999 {
		return fmt.Errorf("%w: year %d", ErrInvalidPeriod, p.Year)
	}
	return nil
}

// Start is the first calendar day of the period, UTC.
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// End is the last calendar day of the period, UTC.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

func ParsePeriod(v string) (Period, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(v))
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, v)
	}
	return Period{Month: int(t.Month()), Year: t.Year()}, nil
}

type Tier struct {
	MinThreshold   int64           `json:"min_threshold"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

type BonusKind string

const (
	BonusFlat       BonusKind = "flat"
	BonusPercentage BonusKind = "percentage"
)

// BonusRule is a plan-level bonus paid when net premium reaches MinNetPremium.
// Flat rules pay AmountCents, percentage rules pay Percent of net premium.
type BonusRule struct {
	Name          string          `json:"name"`
	Kind          BonusKind       `json:"kind"`
	AmountCents   int64           `json:"amount_cents,omitempty"`
	Percent       decimal.Decimal `json:"percent"`
	MinNetPremium int64           `json:"min_net_premium,omitempty"`
}

type CompPlan struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Tiers                []Tier          `json:"tiers"`
	ChargebackRule       ChargebackRule  `json:"chargeback_rule"`
	BonusRules           []BonusRule     `json:"bonus_rules,omitempty"`
	SelfGenKickerPercent decimal.Decimal `json:"self_gen_kicker_percent"`
}

// ProducerAssignment links a producer to one plan. EffectiveTo nil means open-ended.
type ProducerAssignment struct {
	ProducerID    string     `json:"producer_id"`
	PlanID        string     `json:"plan_id"`
	EffectiveFrom time.Time  `json:"effective_from"`
	EffectiveTo   *time.Time `json:"effective_to,omitempty"`
}

// ActiveIn reports whether the assignment covers any day of the period.
func (a ProducerAssignment) ActiveIn(p Period) bool {
	if a.EffectiveFrom.After(p.End()) {
		return false
	}
	if a.EffectiveTo != nil && a.EffectiveTo.Before(p.Start()) {
		return false
	}
	return true
}

// InsuredLine is one insured-level credit or chargeback from a carrier statement.
// DaysInForce is nil when the statement did not carry an in-force duration.
type InsuredLine struct {
	InsuredName   string `json:"insured_name"`
	PolicyNumber  string `json:"policy_number,omitempty"`
	NetPremium    int64  `json:"net_premium"`
	NetCommission int64  `json:"net_commission"`
	DaysInForce   *int   `json:"days_in_force,omitempty"`
	SelfGenerated bool   `json:"self_generated,omitempty"`
}

// SaleRecord is one sold policy, used for promo progress.
type SaleRecord struct {
	SaleDate      time.Time `json:"sale_date"`
	CustomerName  string    `json:"customer_name"`
	PolicyNumber  string    `json:"policy_number"`
	Premium       int64     `json:"premium"`
	Items         int64     `json:"items"`
	Points        int64     `json:"points"`
	SelfGenerated bool      `json:"self_generated,omitempty"`
}

type SubProducerMetrics struct {
	ProducerID         string        `json:"producer_id"`
	ProducerName       string        `json:"producer_name"`
	WrittenPremium     int64         `json:"written_premium"`
	WrittenItems       int64         `json:"written_items"`
	IssuedPremium      int64         `json:"issued_premium"`
	CreditCount        int           `json:"credit_count"`
	ChargebackCount    int           `json:"chargeback_count"`
	PremiumChargebacks int64         `json:"premium_chargebacks"`
	CreditInsureds     []InsuredLine `json:"credit_insureds"`
	ChargebackInsureds []InsuredLine `json:"chargeback_insureds"`
	Sales              []SaleRecord  `json:"sales,omitempty"`
}

func (m SubProducerMetrics) displayName() string {
	if strings.TrimSpace(m.ProducerName) != "" {
		return m.ProducerName
	}
	return m.ProducerID
}

// ManualOverride replaces raw written figures for one producer. Nil fields are left untouched.
type ManualOverride struct {
	ProducerID     string `json:"producer_id"`
	WrittenItems   *int64 `json:"written_items,omitempty"`
	WrittenPremium *int64 `json:"written_premium,omitempty"`
	Note           string `json:"note,omitempty"`
}

type Measurement string

const (
	MeasurePremium    Measurement = "premium"
	MeasureItems      Measurement = "items"
	MeasurePoints     Measurement = "points"
	MeasurePolicies   Measurement = "policies"
	MeasureHouseholds Measurement = "households"
)

func (m Measurement) Valid() bool {
	switch m {
	case MeasurePremium, MeasureItems, MeasurePoints, MeasurePolicies, MeasureHouseholds:
		return true
	}
	return false
}

type PromoScope string

const (
	ScopeIndividual PromoScope = "individual"
	ScopeAgency     PromoScope = "agency"
)

type Promo struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Measurement      Measurement `json:"measurement"`
	TargetValue      int64       `json:"target_value"`
	BonusAmountCents int64       `json:"bonus_amount_cents"`
	StartDate        time.Time   `json:"start_date"`
	EndDate          time.Time   `json:"end_date"`
	Scope            PromoScope  `json:"scope"`
	ProducerIDs      []string    `json:"producer_ids,omitempty"`
}

// Overlaps reports whether the promo window shares at least one day with the period.
func (p Promo) Overlaps(period Period) bool {
	return !p.EndDate.Before(period.Start()) && !p.StartDate.After(period.End())
}

func (p Promo) AppliesTo(producerID string) bool {
	if p.Scope == ScopeAgency {
		return true
	}
	for _, id := range p.ProducerIDs {
		if id == producerID {
			return true
		}
	}
	return false
}

type TierMatch struct {
	Matched        bool            `json:"matched"`
	Index          int             `json:"index"`
	MinThreshold   int64           `json:"min_threshold"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

type ChargebackLine struct {
	InsuredLine
	Applied            bool `json:"applied"`
	Excluded           bool `json:"excluded"`
	MissingDaysInForce bool `json:"missing_days_in_force,omitempty"`
}

type PromoResult struct {
	PromoID          string      `json:"promo_id"`
	Name             string      `json:"name"`
	Measurement      Measurement `json:"measurement"`
	Scope            PromoScope  `json:"scope"`
	TargetValue      int64       `json:"target_value"`
	Progress         int64       `json:"progress"`
	Achieved         bool        `json:"achieved"`
	BonusAmountCents int64       `json:"bonus_amount_cents"`
}

type BonusLine struct {
	Name   string    `json:"name"`
	Kind   BonusKind `json:"kind"`
	Amount int64     `json:"amount"`
}

// OverrideAudit keeps the raw figures next to the ones used in the calculation.
type OverrideAudit struct {
	Applied           bool   `json:"applied"`
	RawWrittenItems   int64  `json:"raw_written_items"`
	RawWrittenPremium int64  `json:"raw_written_premium"`
	WrittenItems      int64  `json:"written_items"`
	WrittenPremium    int64  `json:"written_premium"`
	Note              string `json:"note,omitempty"`
}

type PayoutCalculation struct {
	ProducerID   string `json:"producer_id"`
	ProducerName string `json:"producer_name"`
	PlanID       string `json:"plan_id"`
	PlanName     string `json:"plan_name"`
	Period       Period `json:"period"`

	WrittenPremium       int64 `json:"written_premium"`
	WrittenItems         int64 `json:"written_items"`
	IssuedPremium        int64 `json:"issued_premium"`
	ChargebackPremium    int64 `json:"chargeback_premium"`
	ChargebackCommission int64 `json:"chargeback_commission"`
	NetPremium           int64 `json:"net_premium"`

	TierMatch      TierMatch `json:"tier_match"`
	BaseCommission int64     `json:"base_commission"`

	ChargebackRule          ChargebackRule `json:"chargeback_rule"`
	CreditCount             int            `json:"credit_count"`
	ChargebackCount         int            `json:"chargeback_count"`
	ExcludedChargebackCount int            `json:"excluded_chargeback_count"`

	AchievedPromos      []PromoResult `json:"achieved_promos"`
	PromoProgress       []PromoResult `json:"promo_progress"`
	BonusLines          []BonusLine   `json:"bonus_lines"`
	BonusAmount         int64         `json:"bonus_amount"`
	SelfGenPremium      int64         `json:"self_gen_premium"`
	SelfGenKickerAmount int64         `json:"self_gen_kicker_amount"`
	TotalPayout         int64         `json:"total_payout"`

	Override           OverrideAudit    `json:"override"`
	CreditInsureds     []InsuredLine    `json:"credit_insureds"`
	ChargebackInsureds []ChargebackLine `json:"chargeback_insureds"`

	Status Status `json:"status"`
}

type Result struct {
	Payouts  []PayoutCalculation `json:"payouts"`
	Warnings []string            `json:"warnings"`
}

var (
	ErrInvalidPeriod             = errors.New("invalid period")
	ErrInvalidTierConfiguration  = errors.New("invalid tier configuration")
	ErrDuplicateTierThreshold    = fmt.Errorf("%w: duplicate tier threshold", ErrInvalidTierConfiguration)
	ErrNonMonotonicTierThreshold = fmt.Errorf("%w: tier thresholds must be strictly increasing", ErrInvalidTierConfiguration)
	ErrNegativeCommissionRate    = fmt.Errorf("%w: commission rate cannot be negative", ErrInvalidTierConfiguration)
	ErrUnknownChargebackRule     = errors.New("unknown chargeback rule")
	ErrNoActivePlan              = errors.New("no active comp plan assignment")
	ErrMultipleActivePlans       = errors.New("more than one comp plan assignment active in period")
)
