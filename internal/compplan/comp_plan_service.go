package compplan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"go-agency/internal/commission"
	compplanerrors "go-agency/internal/compplan/errors"
	"go-agency/internal/shared/apperror"
	"go-agency/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=comp_plan_service.go -destination=mock/comp_plan_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, agencyID string, req CreateCompPlanRequest) (CompPlanResponse, error)
	GetAll(ctx context.Context, agencyID string) ([]CompPlanResponse, error)
	GetByID(ctx context.Context, agencyID, id string) (CompPlanResponse, error)
	Update(ctx context.Context, agencyID, id string, req UpdateCompPlanRequest) (CompPlanResponse, error)
	Delete(ctx context.Context, agencyID, id string) error
	Assign(ctx context.Context, agencyID string, req AssignProducerRequest) (AssignmentResponse, error)
	ListAssignments(ctx context.Context, agencyID string) ([]AssignmentResponse, error)
	Unassign(ctx context.Context, agencyID, id string) error
	LoadForPeriod(ctx context.Context, agencyID string, period commission.Period) (*commission.AssignmentSet, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("compplan.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("compplan.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	agencyID string,
	req CreateCompPlanRequest,
) (CompPlanResponse, error) {
	agencyUUID, err := uuid.Parse(agencyID)
	if err != nil {
		return CompPlanResponse{}, compplanerrors.ErrInvalidAgencyID
	}

	tiers, bonusRules, err := buildRules(req.Tiers, req.BonusRules, req.SelfGenKickerPercent)
	if err != nil {
		s.logger.Warn("create comp plan rejected", zap.String("agency_id", agencyID), zap.Error(err))
		return CompPlanResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create comp plan begin tx failed", zap.Error(err))
		return CompPlanResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	plan := &CompPlan{
		ID:                   uuid.New(),
		AgencyID:             agencyUUID,
		Name:                 req.Name,
		ChargebackRule:       req.ChargebackRule,
		SelfGenKickerPercent: req.SelfGenKickerPercent,
		IsActive:             true,
	}
	if err := qtx.Create(ctx, plan); err != nil {
		s.logger.Error("create comp plan failed", zap.String("agency_id", agencyID), zap.Error(err))
		return CompPlanResponse{}, mapRepositoryError(err)
	}

	plan.Tiers = tiers
	plan.BonusRules = bonusRules
	if err := qtx.ReplaceRules(ctx, plan); err != nil {
		s.logger.Error("create comp plan rules failed", zap.String("plan_id", plan.ID.String()), zap.Error(err))
		return CompPlanResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return CompPlanResponse{}, err
	}

	s.logger.Info("comp plan created",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("agency_id", agencyID),
		zap.String("plan_id", plan.ID.String()),
		zap.Int("tiers", len(tiers)),
	)
	return mapToResponse(*plan), nil
}

func (s *service) GetAll(ctx context.Context, agencyID string) ([]CompPlanResponse, error) {
	plans, err := s.repo.FindAllByAgency(ctx, agencyID)
	if err != nil {
		s.logger.Error("get all comp plans failed", zap.String("agency_id", agencyID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(plans), nil
}

func (s *service) GetByID(ctx context.Context, agencyID, id string) (CompPlanResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CompPlanResponse{}, compplanerrors.ErrInvalidPlanID
	}

	plan, err := s.repo.FindByIDAndAgency(ctx, agencyID, id)
	if err != nil {
		return CompPlanResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*plan), nil
}

func (s *service) Update(
	ctx context.Context,
	agencyID, id string,
	req UpdateCompPlanRequest,
) (CompPlanResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CompPlanResponse{}, compplanerrors.ErrInvalidPlanID
	}

	tiers, bonusRules, err := buildRules(req.Tiers, req.BonusRules, req.SelfGenKickerPercent)
	if err != nil {
		s.logger.Warn("update comp plan rejected", zap.String("plan_id", id), zap.Error(err))
		return CompPlanResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CompPlanResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	plan, err := qtx.FindByIDAndAgency(ctx, agencyID, id)
	if err != nil {
		return CompPlanResponse{}, mapRepositoryError(err)
	}

	plan.Name = req.Name
	plan.ChargebackRule = req.ChargebackRule
	plan.SelfGenKickerPercent = req.SelfGenKickerPercent
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	if err := qtx.Update(ctx, plan); err != nil {
		s.logger.Error("update comp plan failed", zap.String("plan_id", id), zap.Error(err))
		return CompPlanResponse{}, mapRepositoryError(err)
	}

	plan.Tiers = tiers
	plan.BonusRules = bonusRules
	if err := qtx.ReplaceRules(ctx, plan); err != nil {
		return CompPlanResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return CompPlanResponse{}, err
	}

	s.logger.Info("comp plan updated", zap.String("agency_id", agencyID), zap.String("plan_id", id))
	return mapToResponse(*plan), nil
}

func (s *service) Delete(ctx context.Context, agencyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return compplanerrors.ErrInvalidPlanID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	inUse, err := qtx.CountAssignmentsByPlan(ctx, agencyID, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return compplanerrors.ErrPlanInUse
	}

	if err := qtx.Delete(ctx, agencyID, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func (s *service) Assign(
	ctx context.Context,
	agencyID string,
	req AssignProducerRequest,
) (AssignmentResponse, error) {
	agencyUUID, err := uuid.Parse(agencyID)
	if err != nil {
		return AssignmentResponse{}, compplanerrors.ErrInvalidAgencyID
	}
	planUUID, err := uuid.Parse(req.PlanID)
	if err != nil {
		return AssignmentResponse{}, compplanerrors.ErrInvalidPlanID
	}

	from, err := time.Parse(dateLayout, req.EffectiveFrom)
	if err != nil {
		return AssignmentResponse{}, compplanerrors.ErrInvalidDateFormat
	}
	var to *time.Time
	if req.EffectiveTo != nil && *req.EffectiveTo != "" {
		parsed, err := time.Parse(dateLayout, *req.EffectiveTo)
		if err != nil {
			return AssignmentResponse{}, compplanerrors.ErrInvalidDateFormat
		}
		if parsed.Before(from) {
			return AssignmentResponse{}, compplanerrors.ErrInvalidDateRange
		}
		to = &parsed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssignmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	plan, err := qtx.FindByIDAndAgency(ctx, agencyID, req.PlanID)
	if err != nil {
		return AssignmentResponse{}, mapRepositoryError(err)
	}
	if !plan.IsActive {
		return AssignmentResponse{}, compplanerrors.ErrPlanInactive
	}

	// payout dihitung per bulan, jadi satu bulan hanya boleh disentuh satu assignment
	monthFrom, monthTo := monthBounds(from, to)
	overlap, err := qtx.HasOverlappingAssignment(ctx, agencyID, req.ProducerID, monthFrom, monthTo)
	if err != nil {
		return AssignmentResponse{}, err
	}
	if overlap {
		s.logger.Warn("assign producer rejected, overlapping assignment",
			zap.String("agency_id", agencyID),
			zap.String("producer_id", req.ProducerID),
		)
		return AssignmentResponse{}, compplanerrors.ErrAssignmentOverlap
	}

	a := &ProducerAssignment{
		ID:            uuid.New(),
		AgencyID:      agencyUUID,
		ProducerID:    req.ProducerID,
		ProducerName:  req.ProducerName,
		PlanID:        planUUID,
		EffectiveFrom: from,
		EffectiveTo:   to,
	}
	if err := qtx.CreateAssignment(ctx, a); err != nil {
		return AssignmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AssignmentResponse{}, err
	}

	a.PlanName = plan.Name
	s.logger.Info("producer assigned to comp plan",
		zap.String("agency_id", agencyID),
		zap.String("producer_id", req.ProducerID),
		zap.String("plan_id", req.PlanID),
	)
	return mapAssignmentResponse(*a), nil
}

// monthBounds melebarkan [from, to] ke awal bulan from dan akhir bulan to.
func monthBounds(from time.Time, to *time.Time) (time.Time, *time.Time) {
	start := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	if to == nil {
		return start, nil
	}
	end := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
	return start, &end
}

func (s *service) ListAssignments(ctx context.Context, agencyID string) ([]AssignmentResponse, error) {
	rows, err := s.repo.FindAssignmentsByAgency(ctx, agencyID)
	if err != nil {
		return nil, err
	}
	res := make([]AssignmentResponse, len(rows))
	for i, row := range rows {
		res[i] = mapAssignmentResponse(row)
	}
	return res, nil
}

func (s *service) Unassign(ctx context.Context, agencyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return compplanerrors.ErrAssignmentNotFound
	}
	err := s.repo.DeleteAssignment(ctx, agencyID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return compplanerrors.ErrAssignmentNotFound
	}
	return err
}

// LoadForPeriod membangun lookup plan untuk satu periode. Plan nonaktif tidak ikut,
// sehingga producer-nya tercatat tanpa assignment aktif.
func (s *service) LoadForPeriod(
	ctx context.Context,
	agencyID string,
	period commission.Period,
) (*commission.AssignmentSet, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	plans, err := s.repo.FindAllByAgency(ctx, agencyID)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.FindAssignmentsOverlapping(ctx, agencyID, period.Start(), period.End())
	if err != nil {
		return nil, err
	}

	domainPlans := make([]commission.CompPlan, 0, len(plans))
	for _, p := range plans {
		if !p.IsActive {
			continue
		}
		domainPlans = append(domainPlans, p.toDomain())
	}
	assignments := make([]commission.ProducerAssignment, len(rows))
	for i, row := range rows {
		assignments[i] = row.toDomain()
	}

	s.logger.Debug("comp plans loaded for period",
		zap.String("agency_id", agencyID),
		zap.String("period", period.String()),
		zap.Int("plans", len(domainPlans)),
		zap.Int("assignments", len(assignments)),
	)
	return commission.NewAssignmentSet(domainPlans, assignments), nil
}

func buildRules(
	tierInputs []TierInput,
	bonusInputs []BonusRuleInput,
	kicker decimal.Decimal,
) ([]CompPlanTier, []CompPlanBonusRule, error) {
	if len(tierInputs) == 0 {
		return nil, nil, apperror.RequiredField("tiers")
	}
	if kicker.IsNegative() || kicker.GreaterThan(decimal.NewFromInt(100)) {
		return nil, nil, compplanerrors.ErrInvalidKickerPercent
	}

	domainTiers := make([]commission.Tier, len(tierInputs))
	tiers := make([]CompPlanTier, len(tierInputs))
	for i, t := range tierInputs {
		domainTiers[i] = commission.Tier{MinThreshold: t.MinThreshold, CommissionRate: t.CommissionRate}
		tiers[i] = CompPlanTier{ID: uuid.New(), MinThreshold: t.MinThreshold, CommissionRate: t.CommissionRate}
	}
	sort.SliceStable(domainTiers, func(i, j int) bool { return domainTiers[i].MinThreshold < domainTiers[j].MinThreshold })
	if err := commission.ValidateTiers(domainTiers); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", compplanerrors.ErrInvalidTierConfiguration, err)
	}

	bonusRules := make([]CompPlanBonusRule, len(bonusInputs))
	for i, b := range bonusInputs {
		if b.AmountCents < 0 || b.Percent.IsNegative() || b.MinNetPremium < 0 {
			return nil, nil, compplanerrors.ErrInvalidBonusRule
		}
		bonusRules[i] = CompPlanBonusRule{
			ID:            uuid.New(),
			Name:          b.Name,
			Kind:          b.Kind,
			AmountCents:   b.AmountCents,
			Percent:       b.Percent,
			MinNetPremium: b.MinNetPremium,
		}
	}

	return sortedTiers(tiers), bonusRules, nil
}

func sortedTiers(tiers []CompPlanTier) []CompPlanTier {
	out := append([]CompPlanTier(nil), tiers...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].MinThreshold < out[j].MinThreshold })
	return out
}

func mapToResponse(plan CompPlan) CompPlanResponse {
	res := CompPlanResponse{
		ID:                   plan.ID.String(),
		AgencyID:             plan.AgencyID.String(),
		Name:                 plan.Name,
		ChargebackRule:       plan.ChargebackRule,
		SelfGenKickerPercent: plan.SelfGenKickerPercent.String(),
		IsActive:             plan.IsActive,
		Tiers:                make([]TierResponse, 0, len(plan.Tiers)),
		BonusRules:           make([]BonusRuleResponse, 0, len(plan.BonusRules)),
	}
	for _, t := range sortedTiers(plan.Tiers) {
		res.Tiers = append(res.Tiers, TierResponse{MinThreshold: t.MinThreshold, CommissionRate: t.CommissionRate.String()})
	}
	for _, b := range plan.BonusRules {
		res.BonusRules = append(res.BonusRules, BonusRuleResponse{
			Name:          b.Name,
			Kind:          b.Kind,
			AmountCents:   b.AmountCents,
			Percent:       b.Percent.String(),
			MinNetPremium: b.MinNetPremium,
		})
	}
	return res
}

func mapToListResponse(plans []CompPlan) []CompPlanResponse {
	res := make([]CompPlanResponse, len(plans))
	for i, p := range plans {
		res[i] = mapToResponse(p)
	}
	return res
}

func mapAssignmentResponse(a ProducerAssignment) AssignmentResponse {
	res := AssignmentResponse{
		ID:            a.ID.String(),
		ProducerID:    a.ProducerID,
		ProducerName:  a.ProducerName,
		PlanID:        a.PlanID.String(),
		PlanName:      a.PlanName,
		EffectiveFrom: a.EffectiveFrom.Format(dateLayout),
	}
	if a.EffectiveTo != nil {
		to := a.EffectiveTo.Format(dateLayout)
		res.EffectiveTo = &to
	}
	return res
}
