package promo

import (
	"context"
	"database/sql"
	"time"

	"go-agency/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=promo_repo.go -destination=mock/promo_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Promo) error
	FindAllByAgency(ctx context.Context, agencyID string) ([]Promo, error)
	FindByIDAndAgency(ctx context.Context, agencyID, id string) (*Promo, error)
	FindActiveBetween(ctx context.Context, agencyID string, start, end time.Time) ([]Promo, error)
	Update(ctx context.Context, p *Promo) error
	Delete(ctx context.Context, agencyID, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, p *Promo) error {
	return r.conn(ctx).Create(p).Error
}

func (r *repository) FindAllByAgency(ctx context.Context, agencyID string) ([]Promo, error) {
	var promos []Promo
	err := r.conn(ctx).
		Scopes(tenant.Scope(agencyID)).
		Order("start_date DESC, name ASC").
		Find(&promos).Error
	return promos, err
}

func (r *repository) FindByIDAndAgency(ctx context.Context, agencyID, id string) (*Promo, error) {
	var p Promo
	err := r.conn(ctx).
		Scopes(tenant.Scope(agencyID)).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindActiveBetween mengambil promo aktif yang windownya beririsan dengan [start, end].
func (r *repository) FindActiveBetween(ctx context.Context, agencyID string, start, end time.Time) ([]Promo, error) {
	var promos []Promo
	err := r.conn(ctx).
		Scopes(tenant.Scope(agencyID)).
		Where("is_active = ?", true).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Order("start_date ASC, name ASC").
		Find(&promos).Error
	return promos, err
}

func (r *repository) Update(ctx context.Context, p *Promo) error {
	return r.conn(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, agencyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(agencyID)).
		Where("id = ?", id).
		Delete(&Promo{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
