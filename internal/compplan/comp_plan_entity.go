package compplan

import (
	"time"

	"go-agency/internal/commission"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompPlan struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgencyID             uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_comp_plan_name"`
	Name                 string          `gorm:"type:varchar(120);not null;uniqueIndex:uq_comp_plan_name"`
	ChargebackRule       string          `gorm:"type:varchar(20);not null;default:'none'"`
	SelfGenKickerPercent decimal.Decimal `gorm:"type:numeric(7,4);not null;default:0"`
	IsActive             bool            `gorm:"not null;default:true"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            gorm.DeletedAt `gorm:"index"`

	Tiers      []CompPlanTier      `gorm:"foreignKey:PlanID"`
	BonusRules []CompPlanBonusRule `gorm:"foreignKey:PlanID"`
}

// Tier thresholds disimpan dalam sen, sama seperti premium di statement.
type CompPlanTier struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PlanID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_comp_plan_tier_threshold"`
	MinThreshold   int64           `gorm:"type:bigint;not null;uniqueIndex:uq_comp_plan_tier_threshold"`
	CommissionRate decimal.Decimal `gorm:"type:numeric(7,4);not null"`
	CreatedAt      time.Time
}

type CompPlanBonusRule struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PlanID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(120);not null"`
	Kind          string          `gorm:"type:varchar(20);not null"`
	AmountCents   int64           `gorm:"type:bigint;not null;default:0"`
	Percent       decimal.Decimal `gorm:"type:numeric(7,4);not null;default:0"`
	MinNetPremium int64           `gorm:"type:bigint;not null;default:0"`
	CreatedAt     time.Time
}

type ProducerAssignment struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgencyID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_assignment_producer"`
	ProducerID    string     `gorm:"type:varchar(64);not null;index:idx_assignment_producer"`
	ProducerName  string     `gorm:"type:varchar(160)"`
	PlanID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	PlanName      string     `gorm:"->;-:migration"`
	EffectiveFrom time.Time  `gorm:"type:date;not null"`
	EffectiveTo   *time.Time `gorm:"type:date"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p CompPlan) toDomain() commission.CompPlan {
	plan := commission.CompPlan{
		ID:                   p.ID.String(),
		Name:                 p.Name,
		ChargebackRule:       commission.ChargebackRule(p.ChargebackRule),
		SelfGenKickerPercent: p.SelfGenKickerPercent,
		Tiers:                make([]commission.Tier, 0, len(p.Tiers)),
		BonusRules:           make([]commission.BonusRule, 0, len(p.BonusRules)),
	}
	for _, t := range sortedTiers(p.Tiers) {
		plan.Tiers = append(plan.Tiers, commission.Tier{MinThreshold: t.MinThreshold, CommissionRate: t.CommissionRate})
	}
	for _, r := range p.BonusRules {
		plan.BonusRules = append(plan.BonusRules, commission.BonusRule{
			Name:          r.Name,
			Kind:          commission.BonusKind(r.Kind),
			AmountCents:   r.AmountCents,
			Percent:       r.Percent,
			MinNetPremium: r.MinNetPremium,
		})
	}
	return plan
}

func (a ProducerAssignment) toDomain() commission.ProducerAssignment {
	return commission.ProducerAssignment{
		ProducerID:    a.ProducerID,
		PlanID:        a.PlanID.String(),
		EffectiveFrom: a.EffectiveFrom,
		EffectiveTo:   a.EffectiveTo,
	}
}
