package promo

import (
	"time"

	"go-agency/internal/commission"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Promo struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgencyID         uuid.UUID `gorm:"type:uuid;not null;index:idx_promo_window"`
	Name             string    `gorm:"type:varchar(160);not null"`
	Measurement      string    `gorm:"type:varchar(20);not null"`
	TargetValue      int64     `gorm:"type:bigint;not null"`
	BonusAmountCents int64     `gorm:"type:bigint;not null;default:0"`
	StartDate        time.Time `gorm:"type:date;not null;index:idx_promo_window"`
	EndDate          time.Time `gorm:"type:date;not null;index:idx_promo_window"`
	Scope            string    `gorm:"type:varchar(20);not null;default:'individual'"`
	ProducerIDs      []string  `gorm:"type:jsonb;serializer:json"`
	IsActive         bool      `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (p Promo) toDomain() commission.Promo {
	return commission.Promo{
		ID:               p.ID.String(),
		Name:             p.Name,
		Measurement:      commission.Measurement(p.Measurement),
		TargetValue:      p.TargetValue,
		BonusAmountCents: p.BonusAmountCents,
		StartDate:        p.StartDate,
		EndDate:          p.EndDate,
		Scope:            commission.PromoScope(p.Scope),
		ProducerIDs:      append([]string(nil), p.ProducerIDs...),
	}
}
