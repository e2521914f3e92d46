package payout

import (
	"context"
	"database/sql"
	"time"

	"go-agency/internal/commission"
	"go-agency/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payout_repo.go -destination=mock/payout_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	LockPeriod(ctx context.Context, agencyID string, period commission.Period) error
	CountByStatus(ctx context.Context, agencyID string, period commission.Period) (map[string]int64, error)
	ReplaceDrafts(ctx context.Context, agencyID string, period commission.Period, rows []Payout) error
	FinalizeDrafts(ctx context.Context, agencyID string, period commission.Period, actorID string, at time.Time) (int64, error)
	MarkPaid(ctx context.Context, agencyID, id, actorID string, at time.Time) (int64, error)
	FindAll(ctx context.Context, agencyID string, filter ListFilter) ([]Payout, error)
	FindByIDAndAgency(ctx context.Context, agencyID, id string) (*Payout, error)
	FindByPeriod(ctx context.Context, agencyID string, period commission.Period) ([]Payout, error)
	UpsertOverride(ctx context.Context, o *PayoutOverride) error
	FindOverrides(ctx context.Context, agencyID string, period commission.Period) ([]PayoutOverride, error)
	DeleteOverride(ctx context.Context, agencyID, id string) error
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

func periodScope(period commission.Period) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("period_month = ? AND period_year = ?", period.Month, period.Year)
	}
}

// LockPeriod mengambil advisory lock transaksi per agency+periode sehingga save draft
// dan finalize tidak saling menimpa. Harus dipanggil dari repo yang memegang tx.
func (r *repository) LockPeriod(ctx context.Context, agencyID string, period commission.Period) error {
	return r.conn(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", "payout:"+agencyID+":"+period.String()).
		Error
}

func (r *repository) CountByStatus(ctx context.Context, agencyID string, period commission.Period) (map[string]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := r.conn(ctx).
		Model(&Payout{}).
		Select("status, COUNT(*) AS total").
		Scopes(tenant.Scope(agencyID), periodScope(period)).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

// ReplaceDrafts menghapus draft periode lalu menulis batch baru. Baris finalized/paid tidak disentuh.
func (r *repository) ReplaceDrafts(ctx context.Context, agencyID string, period commission.Period, rows []Payout) error {
	db := r.conn(ctx)
	err := db.
		Scopes(tenant.Scope(agencyID), periodScope(period)).
		Where("status = ?", string(commission.StatusDraft)).
		Delete(&Payout{}).Error
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return db.CreateInBatches(&rows, 100).Error
}

func (r *repository) FinalizeDrafts(
	ctx context.Context,
	agencyID string,
	period commission.Period,
	actorID string,
	at time.Time,
) (int64, error) {
	res := r.conn(ctx).
		Model(&Payout{}).
		Scopes(tenant.Scope(agencyID), periodScope(period)).
		Where("status = ?", string(commission.StatusDraft)).
		Updates(map[string]any{
			"status":       string(commission.StatusFinalized),
			"finalized_by": actorID,
			"finalized_at": at,
			"updated_at":   at,
		})
	return res.RowsAffected, res.Error
}

// MarkPaid hanya mengubah baris yang masih finalized; 0 baris berarti transisi ditolak.
func (r *repository) MarkPaid(ctx context.Context, agencyID, id, actorID string, at time.Time) (int64, error) {
	res := r.conn(ctx).
		Model(&Payout{}).
		Scopes(tenant.Scope(agencyID)).
		Where("id = ? AND status = ?", id, string(commission.StatusFinalized)).
		Updates(map[string]any{
			"status":     string(commission.StatusPaid),
			"paid_by":    actorID,
			"paid_at":    at,
			"updated_at": at,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) FindAll(ctx context.Context, agencyID string, filter ListFilter) ([]Payout, error) {
	q := r.conn(ctx).
		Omit("Detail").
		Scopes(tenant.Scope(agencyID))
	if filter.Month > 0 {
		q = q.Where("period_month = ?", filter.Month)
	}
	if filter.Year > 0 {
		q = q.Where("period_year = ?", filter.Year)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var payouts []Payout
	err := q.Order("period_year DESC, period_month DESC, producer_name ASC").Find(&payouts).Error
	return payouts, err
}

func (r *repository) FindByIDAndAgency(ctx context.Context, agencyID, id string) (*Payout, error) {
	var p Payout
	err := r.conn(ctx).
		Scopes(tenant.Scope(agencyID)).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByPeriod(ctx context.Context, agencyID string, period commission.Period) ([]Payout, error) {
	var payouts []Payout
	err := r.conn(ctx).
		Omit("Detail").
		Scopes(tenant.Scope(agencyID), periodScope(period)).
		Order("producer_name ASC").
		Find(&payouts).Error
	return payouts, err
}

func (r *repository) UpsertOverride(ctx context.Context, o *PayoutOverride) error {
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "agency_id"}, {Name: "producer_id"}, {Name: "period_month"}, {Name: "period_year"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"written_items", "written_premium", "note", "updated_by", "updated_at",
			}),
		}).
		Create(o).Error
}

func (r *repository) FindOverrides(ctx context.Context, agencyID string, period commission.Period) ([]PayoutOverride, error) {
	var overrides []PayoutOverride
	err := r.conn(ctx).
		Scopes(tenant.Scope(agencyID), periodScope(period)).
		Order("updated_at ASC").
		Find(&overrides).Error
	return overrides, err
}

func (r *repository) DeleteOverride(ctx context.Context, agencyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(agencyID)).
		Where("id = ?", id).
		Delete(&PayoutOverride{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
