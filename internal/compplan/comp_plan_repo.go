package compplan

import (
	"context"
	"database/sql"
	"time"

	"go-agency/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=comp_plan_repo.go -destination=mock/comp_plan_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, plan *CompPlan) error
	FindAllByAgency(ctx context.Context, agencyID string) ([]CompPlan, error)
	FindByIDAndAgency(ctx context.Context, agencyID, id string) (*CompPlan, error)
	Update(ctx context.Context, plan *CompPlan) error
	ReplaceRules(ctx context.Context, plan *CompPlan) error
	Delete(ctx context.Context, agencyID, id string) error
	CountAssignmentsByPlan(ctx context.Context, agencyID, planID string) (int64, error)
	CreateAssignment(ctx context.Context, a *ProducerAssignment) error
	HasOverlappingAssignment(ctx context.Context, agencyID, producerID string, from time.Time, to *time.Time) (bool, error)
	FindAssignmentsByAgency(ctx context.Context, agencyID string) ([]ProducerAssignment, error)
	FindAssignmentsOverlapping(ctx context.Context, agencyID string, start, end time.Time) ([]ProducerAssignment, error)
	DeleteAssignment(ctx context.Context, agencyID, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// conn mengarahkan query ke *sql.Tx milik service kalau ada.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, plan *CompPlan) error {
	return r.conn(ctx).Create(plan).Error
}

func (r *repository) FindAllByAgency(ctx context.Context, agencyID string) ([]CompPlan, error) {
	var plans []CompPlan
	err := r.conn(ctx).
		Scopes(tenant.Scope(agencyID)).
		Preload("Tiers", func(db *gorm.DB) *gorm.DB { return db.Order("min_threshold ASC") }).
		Preload("BonusRules").
		Order("name ASC").
		Find(&plans).Error
	return plans, err
}

func (r *repository) FindByIDAndAgency(ctx context.Context, agencyID, id string) (*CompPlan, error) {
	var plan CompPlan
	err := r.conn(ctx).
		Scopes(tenant.Scope(agencyID)).
		Preload("Tiers", func(db *gorm.DB) *gorm.DB { return db.Order("min_threshold ASC") }).
		Preload("BonusRules").
		Where("id = ?", id).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *repository) Update(ctx context.Context, plan *CompPlan) error {
	return r.conn(ctx).
		Omit("Tiers", "BonusRules").
		Save(plan).Error
}

// ReplaceRules menghapus tier dan bonus rule lama lalu menulis ulang dari plan.
func (r *repository) ReplaceRules(ctx context.Context, plan *CompPlan) error {
	db := r.conn(ctx)
	if err := db.Where("plan_id = ?", plan.ID).Delete(&CompPlanTier{}).Error; err != nil {
		return err
	}
	if err := db.Where("plan_id = ?", plan.ID).Delete(&CompPlanBonusRule{}).Error; err != nil {
		return err
	}
	for i := range plan.Tiers {
		plan.Tiers[i].PlanID = plan.ID
	}
	for i := range plan.BonusRules {
		plan.BonusRules[i].PlanID = plan.ID
	}
	if len(plan.Tiers) > 0 {
		if err := db.Create(&plan.Tiers).Error; err != nil {
			return err
		}
	}
	if len(plan.BonusRules) > 0 {
		if err := db.Create(&plan.BonusRules).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, agencyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(agencyID)).
		Where("id = ?", id).
		Delete(&CompPlan{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CountAssignmentsByPlan(ctx context.Context, agencyID, planID string) (int64, error) {
	var count int64
	err := r.conn(ctx).
		Model(&ProducerAssignment{}).
		Scopes(tenant.Scope(agencyID)).
		Where("plan_id = ?", planID).
		Count(&count).Error
	return count, err
}

func (r *repository) CreateAssignment(ctx context.Context, a *ProducerAssignment) error {
	return r.conn(ctx).Omit("PlanName").Create(a).Error
}

// HasOverlappingAssignment cek irisan rentang [from, to] dengan assignment lain milik producer.
// to nil berarti open-ended. Service mengirim batas bulan penuh.
func (r *repository) HasOverlappingAssignment(
	ctx context.Context,
	agencyID, producerID string,
	from time.Time,
	to *time.Time,
) (bool, error) {
	q := r.conn(ctx).
		Model(&ProducerAssignment{}).
		Scopes(tenant.Scope(agencyID)).
		Where("producer_id = ?", producerID).
		Where("(effective_to IS NULL OR effective_to >= ?)", from)
	if to != nil {
		q = q.Where("effective_from <= ?", *to)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) FindAssignmentsByAgency(ctx context.Context, agencyID string) ([]ProducerAssignment, error) {
	var rows []ProducerAssignment
	err := r.conn(ctx).
		Table("producer_assignments AS pa").
		Select("pa.*, cp.name AS plan_name").
		Joins("JOIN comp_plans cp ON cp.id = pa.plan_id").
		Scopes(tenant.TableScope("pa", agencyID)).
		Order("pa.producer_id ASC, pa.effective_from DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindAssignmentsOverlapping(
	ctx context.Context,
	agencyID string,
	start, end time.Time,
) ([]ProducerAssignment, error) {
	var rows []ProducerAssignment
	err := r.conn(ctx).
		Scopes(tenant.Scope(agencyID)).
		Where("effective_from <= ?", end).
		Where("(effective_to IS NULL OR effective_to >= ?)", start).
		Order("effective_from DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) DeleteAssignment(ctx context.Context, agencyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(agencyID)).
		Where("id = ?", id).
		Delete(&ProducerAssignment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
