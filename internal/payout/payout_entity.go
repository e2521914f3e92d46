package payout

import (
	"time"

	"go-agency/internal/commission"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payout adalah satu baris hasil kalkulasi per producer per periode.
// Detail menyimpan PayoutCalculation lengkap sebagai line item.
type Payout struct {
	ID                      uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgencyID                uuid.UUID       `gorm:"type:uuid;not null;index:idx_payout_period"`
	PeriodMonth             int             `gorm:"not null;index:idx_payout_period"`
	PeriodYear              int             `gorm:"not null;index:idx_payout_period"`
	RunNumber               string          `gorm:"type:varchar(40);not null"`
	ProducerID              string          `gorm:"type:varchar(64);not null"`
	ProducerName            string          `gorm:"type:varchar(160)"`
	PlanID                  string          `gorm:"type:varchar(64);not null"`
	PlanName                string          `gorm:"type:varchar(120)"`
	Status                  string          `gorm:"type:varchar(20);not null;default:'draft'"`
	WrittenPremium          int64           `gorm:"type:bigint;not null"`
	WrittenItems            int64           `gorm:"type:bigint;not null"`
	IssuedPremium           int64           `gorm:"type:bigint;not null"`
	ChargebackPremium       int64           `gorm:"type:bigint;not null"`
	NetPremium              int64           `gorm:"type:bigint;not null"`
	TierThreshold           int64           `gorm:"type:bigint;not null"`
	CommissionRate          decimal.Decimal `gorm:"type:numeric(7,4);not null"`
	BaseCommission          int64           `gorm:"type:bigint;not null"`
	BonusAmount             int64           `gorm:"type:bigint;not null"`
	SelfGenKickerAmount     int64           `gorm:"type:bigint;not null"`
	TotalPayout             int64           `gorm:"type:bigint;not null"`
	ChargebackCount         int             `gorm:"not null"`
	ExcludedChargebackCount int             `gorm:"not null"`
	OverrideApplied         bool            `gorm:"not null;default:false"`

	Detail commission.PayoutCalculation `gorm:"type:jsonb;serializer:json"`

	CreatedBy   string `gorm:"type:varchar(64)"`
	FinalizedBy *string
	FinalizedAt *time.Time
	PaidBy      *string
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p Payout) Period() commission.Period {
	return commission.Period{Month: p.PeriodMonth, Year: p.PeriodYear}
}

type PayoutOverride struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgencyID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_payout_override_producer_period"`
	ProducerID     string    `gorm:"type:varchar(64);not null;uniqueIndex:uq_payout_override_producer_period"`
	PeriodMonth    int       `gorm:"not null;uniqueIndex:uq_payout_override_producer_period"`
	PeriodYear     int       `gorm:"not null;uniqueIndex:uq_payout_override_producer_period"`
	WrittenItems   *int64    `gorm:"type:bigint"`
	WrittenPremium *int64    `gorm:"type:bigint"`
	Note           string    `gorm:"type:text"`
	UpdatedBy      string    `gorm:"type:varchar(64)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (o PayoutOverride) toDomain() commission.ManualOverride {
	return commission.ManualOverride{
		ProducerID:     o.ProducerID,
		WrittenItems:   o.WrittenItems,
		WrittenPremium: o.WrittenPremium,
		Note:           o.Note,
	}
}

func newPayoutRow(agencyID uuid.UUID, runNumber, actorID string, calc commission.PayoutCalculation) Payout {
	return Payout{
		ID:                      uuid.New(),
		AgencyID:                agencyID,
		PeriodMonth:             calc.Period.Month,
		PeriodYear:              calc.Period.Year,
		RunNumber:               runNumber,
		ProducerID:              calc.ProducerID,
		ProducerName:            calc.ProducerName,
		PlanID:                  calc.PlanID,
		PlanName:                calc.PlanName,
		Status:                  string(commission.StatusDraft),
		WrittenPremium:          calc.WrittenPremium,
		WrittenItems:            calc.WrittenItems,
		IssuedPremium:           calc.IssuedPremium,
		ChargebackPremium:       calc.ChargebackPremium,
		NetPremium:              calc.NetPremium,
		TierThreshold:           calc.TierMatch.MinThreshold,
		CommissionRate:          calc.TierMatch.CommissionRate,
		BaseCommission:          calc.BaseCommission,
		BonusAmount:             calc.BonusAmount,
		SelfGenKickerAmount:     calc.SelfGenKickerAmount,
		TotalPayout:             calc.TotalPayout,
		ChargebackCount:         calc.ChargebackCount,
		ExcludedChargebackCount: calc.ExcludedChargebackCount,
		OverrideApplied:         calc.Override.Applied,
		Detail:                  calc,
		CreatedBy:               actorID,
	}
}
