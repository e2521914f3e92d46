package counter

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetNextValue(ctx context.Context, agencyID string, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx membuat counter ikut rollback bersama transaksi pemanggil.
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

// GetNextValue menaikkan counter per agency/type secara atomik dan mengembalikan nilai barunya.
func (r *repository) GetNextValue(ctx context.Context, agencyID string, counterType string) (int64, error) {
	var nextValue int64

	err := r.conn(ctx).Raw(`
		INSERT INTO agency_counters (agency_id, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (agency_id, counter_type) DO UPDATE
		SET last_value = agency_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, agencyID, counterType).Scan(&nextValue).Error
	if err != nil {
		return 0, fmt.Errorf("next %s counter: %w", counterType, err)
	}

	return nextValue, nil
}
