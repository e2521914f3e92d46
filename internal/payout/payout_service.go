package payout

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-agency/internal/commission"
	"go-agency/internal/events"
	"go-agency/internal/messaging/kafka"
	payouterrors "go-agency/internal/payout/errors"
	"go-agency/internal/shared/contextutil"
	"go-agency/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	PayoutSummaryKeyPrefix = "payouts:summary:"
	summaryTTL             = 10 * time.Minute
	runCounterType         = "payout_run"
	timestampLayout        = time.RFC3339
)

func GetSummaryKey(agencyID string, period commission.Period) string {
	return PayoutSummaryKeyPrefix + agencyID + ":" + period.String()
}

// PlanSource dipenuhi oleh compplan.Service.
type PlanSource interface {
	LoadForPeriod(ctx context.Context, agencyID string, period commission.Period) (*commission.AssignmentSet, error)
}

// PromoSource dipenuhi oleh promo.Service.
type PromoSource interface {
	ActiveForPeriod(ctx context.Context, agencyID string, period commission.Period) ([]commission.Promo, error)
}

//go:generate mockgen -source=payout_service.go -destination=mock/payout_service_mock.go -package=mock
type Service interface {
	Preview(ctx context.Context, agencyID string, req CalculateRequest) (CalculationResponse, error)
	SaveDraft(ctx context.Context, agencyID, actorID string, req CalculateRequest) (SaveDraftResponse, error)
	Finalize(ctx context.Context, agencyID, actorID string, req PeriodRequest) (FinalizeResponse, error)
	MarkPaid(ctx context.Context, agencyID, actorID, id string) (PayoutResponse, error)
	GetAll(ctx context.Context, agencyID string, filter ListFilter) ([]PayoutResponse, error)
	GetByID(ctx context.Context, agencyID, id string) (PayoutDetailResponse, error)
	GetSummary(ctx context.Context, agencyID string, req PeriodRequest) (Summary, error)
	UpsertOverride(ctx context.Context, agencyID, actorID string, req OverrideRequest) (OverrideResponse, error)
	ListOverrides(ctx context.Context, agencyID string, req PeriodRequest) ([]OverrideResponse, error)
	DeleteOverride(ctx context.Context, agencyID, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	plans   PlanSource
	promos  PromoSource
	counter counter.Repository
	outbox  kafka.OutboxRepository
	rdb     *redis.Client
	metrics *Metrics
	sf      *singleflight.Group
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	plans PlanSource,
	promos PromoSource,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	metrics *Metrics,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payout.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payout.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		plans:   plans,
		promos:  promos,
		counter: counter,
		outbox:  outboxRepo,
		rdb:     rdb,
		metrics: metrics,
		sf:      &singleflight.Group{},
		now:     func() time.Time { return time.Now().UTC() },
		logger:  l,
	}
}

func parsePeriod(month, year int) (commission.Period, error) {
	period, err := commission.NewPeriod(month, year)
	if err != nil {
		return commission.Period{}, fmt.Errorf("%w: %w", payouterrors.ErrInvalidPeriod, err)
	}
	return period, nil
}

// calculate memuat plan, promo, dan override tersimpan lalu menjalankan kalkulator.
// Override dari request ditaruh paling belakang; digabung per field sehingga field
// yang tidak diisi request tetap memakai nilai override tersimpan.
func (s *service) calculate(
	ctx context.Context,
	agencyID string,
	period commission.Period,
	req CalculateRequest,
) (commission.Result, error) {
	plans, err := s.plans.LoadForPeriod(ctx, agencyID, period)
	if err != nil {
		return commission.Result{}, err
	}
	promos, err := s.promos.ActiveForPeriod(ctx, agencyID, period)
	if err != nil {
		return commission.Result{}, err
	}
	stored, err := s.repo.FindOverrides(ctx, agencyID, period)
	if err != nil {
		return commission.Result{}, err
	}

	overrides := make([]commission.ManualOverride, 0, len(stored)+len(req.Overrides))
	for _, o := range stored {
		overrides = append(overrides, o.toDomain())
	}
	overrides = append(overrides, req.Overrides...)

	res := commission.NewCalculator(plans, promos, s.logger).Calculate(req.Producers, period, overrides)

	for _, w := range res.Warnings {
		s.logger.Warn("payout calculation warning",
			zap.String("agency_id", agencyID),
			zap.String("period", period.String()),
			zap.String("warning", w),
		)
	}
	return res, nil
}

func previewKey(agencyID string, req CalculateRequest) (string, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("preview:%s:%04d-%02d:%s", agencyID, req.Year, req.Month, hex.EncodeToString(sum[:])), nil
}

func (s *service) Preview(ctx context.Context, agencyID string, req CalculateRequest) (CalculationResponse, error) {
	period, err := parsePeriod(req.Month, req.Year)
	if err != nil {
		return CalculationResponse{}, err
	}
	key, err := previewKey(agencyID, req)
	if err != nil {
		return CalculationResponse{}, err
	}

	// request identik yang datang bersamaan cukup dihitung sekali.
	// Pembatalan satu caller tidak boleh menggagalkan caller lain yang berbagi hasil.
	sharedCtx := context.WithoutCancel(ctx)
	v, err, shared := s.sf.Do(key, func() (interface{}, error) {
		res, err := s.calculate(sharedCtx, agencyID, period, req)
		if err != nil {
			return nil, err
		}
		s.metrics.observeBatch("preview", len(req.Producers), len(res.Payouts), len(res.Warnings))
		return CalculationResponse{
			Period:   period.String(),
			Payouts:  res.Payouts,
			Warnings: res.Warnings,
			Summary:  summarizeCalculations(period, res.Payouts),
		}, nil
	})
	if err != nil {
		s.logger.Error("preview payouts failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("agency_id", agencyID),
			zap.Error(err),
		)
		return CalculationResponse{}, err
	}

	s.logger.Debug("preview payouts",
		zap.String("agency_id", agencyID),
		zap.String("period", period.String()),
		zap.Bool("shared", shared),
	)
	return v.(CalculationResponse), nil
}

func (s *service) SaveDraft(
	ctx context.Context,
	agencyID, actorID string,
	req CalculateRequest,
) (SaveDraftResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	agencyUUID, err := uuid.Parse(agencyID)
	if err != nil {
		return SaveDraftResponse{}, payouterrors.ErrInvalidAgencyID
	}
	period, err := parsePeriod(req.Month, req.Year)
	if err != nil {
		return SaveDraftResponse{}, err
	}

	res, err := s.calculate(ctx, agencyID, period, req)
	if err != nil {
		s.logger.Error("save draft calculation failed", zap.String("request_id", rid), zap.Error(err))
		return SaveDraftResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("save draft begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SaveDraftResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.LockPeriod(ctx, agencyID, period); err != nil {
		return SaveDraftResponse{}, err
	}

	counts, err := qtx.CountByStatus(ctx, agencyID, period)
	if err != nil {
		return SaveDraftResponse{}, err
	}
	if counts[string(commission.StatusFinalized)]+counts[string(commission.StatusPaid)] > 0 {
		s.logger.Warn("save draft rejected, period finalized",
			zap.String("agency_id", agencyID),
			zap.String("period", period.String()),
		)
		return SaveDraftResponse{}, payouterrors.ErrPeriodFinalized
	}

	seq, err := s.counter.WithTx(tx).GetNextValue(ctx, agencyID, runCounterType)
	if err != nil {
		s.logger.Error("save draft run number failed", zap.Error(err))
		return SaveDraftResponse{}, err
	}
	runNumber := fmt.Sprintf("RUN-%s-%04d", period.String(), seq)

	rows := make([]Payout, len(res.Payouts))
	for i, calc := range res.Payouts {
		rows[i] = newPayoutRow(agencyUUID, runNumber, actorID, calc)
	}
	if err := qtx.ReplaceDrafts(ctx, agencyID, period, rows); err != nil {
		s.logger.Error("save draft persist failed", zap.String("request_id", rid), zap.Error(err))
		return SaveDraftResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("save draft commit failed", zap.String("request_id", rid), zap.Error(err))
		return SaveDraftResponse{}, err
	}

	s.invalidateSummary(ctx, agencyID, period)
	s.metrics.observeBatch("draft", len(req.Producers), len(res.Payouts), len(res.Warnings))
	s.logger.Info("payout drafts saved",
		zap.String("request_id", rid),
		zap.String("agency_id", agencyID),
		zap.String("period", period.String()),
		zap.String("run_number", runNumber),
		zap.Int("payouts", len(rows)),
		zap.Int("warnings", len(res.Warnings)),
	)

	return SaveDraftResponse{
		RunNumber: runNumber,
		Period:    period.String(),
		Payouts:   mapToListResponse(rows),
		Warnings:  res.Warnings,
		Summary:   summarizeRows(period, rows),
	}, nil
}

func (s *service) Finalize(
	ctx context.Context,
	agencyID, actorID string,
	req PeriodRequest,
) (FinalizeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	period, err := parsePeriod(req.Month, req.Year)
	if err != nil {
		return FinalizeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return FinalizeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.LockPeriod(ctx, agencyID, period); err != nil {
		return FinalizeResponse{}, err
	}

	counts, err := qtx.CountByStatus(ctx, agencyID, period)
	if err != nil {
		return FinalizeResponse{}, err
	}
	if counts[string(commission.StatusFinalized)]+counts[string(commission.StatusPaid)] > 0 {
		return FinalizeResponse{}, payouterrors.ErrPeriodFinalized
	}
	if counts[string(commission.StatusDraft)] == 0 {
		return FinalizeResponse{}, payouterrors.ErrNoDrafts
	}

	at := s.now()
	n, err := qtx.FinalizeDrafts(ctx, agencyID, period, actorID, at)
	if err != nil {
		s.logger.Error("finalize payouts failed", zap.String("request_id", rid), zap.Error(err))
		return FinalizeResponse{}, err
	}
	if n == 0 {
		return FinalizeResponse{}, payouterrors.ErrNoDrafts
	}

	rows, err := qtx.FindByPeriod(ctx, agencyID, period)
	if err != nil {
		return FinalizeResponse{}, err
	}

	event := events.PayoutFinalizedEvent{
		EventType:   "payout_finalized",
		RequestID:   rid,
		AgencyID:    agencyID,
		Month:       period.Month,
		Year:        period.Year,
		FinalizedBy: actorID,
		Payouts:     make([]events.FinalizedPayoutLine, 0, len(rows)),
		OccurredAt:  at,
	}
	for _, row := range rows {
		event.RunNumber = row.RunNumber
		event.TotalPayout += row.TotalPayout
		event.Payouts = append(event.Payouts, events.FinalizedPayoutLine{
			PayoutID:     row.ID.String(),
			ProducerID:   row.ProducerID,
			ProducerName: row.ProducerName,
			TotalPayout:  row.TotalPayout,
		})
	}

	if s.outbox != nil {
		outboxEvent, err := kafka.NewOutboxEvent(
			events.PayoutFinalizedTopic,
			agencyID,
			"payout_period",
			agencyID+":"+period.String(),
			event.EventType,
			rid,
			event,
		)
		if err != nil {
			return FinalizeResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			s.logger.Error("finalize outbox persist failed", zap.String("request_id", rid), zap.Error(err))
			return FinalizeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("finalize commit failed", zap.String("request_id", rid), zap.Error(err))
		return FinalizeResponse{}, err
	}

	s.invalidateSummary(ctx, agencyID, period)
	s.metrics.observeFinalized(n)
	s.logger.Info("payouts finalized",
		zap.String("request_id", rid),
		zap.String("agency_id", agencyID),
		zap.String("period", period.String()),
		zap.Int64("rows", n),
		zap.Int64("total_payout", event.TotalPayout),
	)

	return FinalizeResponse{
		Period:      period.String(),
		RunNumber:   event.RunNumber,
		Finalized:   n,
		TotalPayout: event.TotalPayout,
	}, nil
}

func (s *service) MarkPaid(ctx context.Context, agencyID, actorID, id string) (PayoutResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayoutResponse{}, payouterrors.ErrInvalidPayoutID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayoutResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	p, err := qtx.FindByIDAndAgency(ctx, agencyID, id)
	if err != nil {
		return PayoutResponse{}, mapNotFound(err)
	}

	switch commission.Status(p.Status) {
	case commission.StatusPaid:
		return PayoutResponse{}, payouterrors.ErrPayoutAlreadyPaid
	case commission.StatusDraft:
		return PayoutResponse{}, payouterrors.ErrPayoutNotFinalized
	}

	at := s.now()
	n, err := qtx.MarkPaid(ctx, agencyID, id, actorID, at)
	if err != nil {
		return PayoutResponse{}, err
	}
	if n == 0 {
		// status berubah di antara read dan update
		return PayoutResponse{}, payouterrors.ErrPayoutNotFinalized
	}

	if err := tx.Commit(); err != nil {
		return PayoutResponse{}, err
	}

	p.Status = string(commission.StatusPaid)
	p.PaidBy = &actorID
	p.PaidAt = &at

	s.invalidateSummary(ctx, agencyID, p.Period())
	s.metrics.observePaid()
	s.logger.Info("payout marked paid",
		zap.String("agency_id", agencyID),
		zap.String("payout_id", id),
		zap.String("actor_id", actorID),
	)
	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context, agencyID string, filter ListFilter) ([]PayoutResponse, error) {
	if filter.Status != "" {
		switch commission.Status(filter.Status) {
		case commission.StatusDraft, commission.StatusFinalized, commission.StatusPaid:
		default:
			return nil, payouterrors.ErrInvalidStatusFilter
		}
	}

	rows, err := s.repo.FindAll(ctx, agencyID, filter)
	if err != nil {
		s.logger.Error("get all payouts failed", zap.String("agency_id", agencyID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, agencyID, id string) (PayoutDetailResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayoutDetailResponse{}, payouterrors.ErrInvalidPayoutID
	}
	p, err := s.repo.FindByIDAndAgency(ctx, agencyID, id)
	if err != nil {
		return PayoutDetailResponse{}, mapNotFound(err)
	}
	return PayoutDetailResponse{PayoutResponse: mapToResponse(*p), Detail: p.Detail}, nil
}

func (s *service) GetSummary(ctx context.Context, agencyID string, req PeriodRequest) (Summary, error) {
	period, err := parsePeriod(req.Month, req.Year)
	if err != nil {
		return Summary{}, err
	}

	cacheKey := GetSummaryKey(agencyID, period)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var summary Summary
			if json.Unmarshal([]byte(cached), &summary) == nil {
				return summary, nil
			}
		}
	}

	rows, err := s.repo.FindByPeriod(ctx, agencyID, period)
	if err != nil {
		return Summary{}, err
	}
	summary := summarizeRows(period, rows)

	if s.rdb != nil {
		if data, err := json.Marshal(summary); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, data, summaryTTL).Err(); err != nil {
				s.logger.Warn("cache payout summary failed", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}
	return summary, nil
}

func (s *service) UpsertOverride(
	ctx context.Context,
	agencyID, actorID string,
	req OverrideRequest,
) (OverrideResponse, error) {
	agencyUUID, err := uuid.Parse(agencyID)
	if err != nil {
		return OverrideResponse{}, payouterrors.ErrInvalidAgencyID
	}
	period, err := parsePeriod(req.Month, req.Year)
	if err != nil {
		return OverrideResponse{}, err
	}
	if req.WrittenItems == nil && req.WrittenPremium == nil {
		return OverrideResponse{}, payouterrors.ErrEmptyOverride
	}

	counts, err := s.repo.CountByStatus(ctx, agencyID, period)
	if err != nil {
		return OverrideResponse{}, err
	}
	if counts[string(commission.StatusFinalized)]+counts[string(commission.StatusPaid)] > 0 {
		return OverrideResponse{}, payouterrors.ErrPeriodFinalized
	}

	o := &PayoutOverride{
		ID:             uuid.New(),
		AgencyID:       agencyUUID,
		ProducerID:     req.ProducerID,
		PeriodMonth:    period.Month,
		PeriodYear:     period.Year,
		WrittenItems:   req.WrittenItems,
		WrittenPremium: req.WrittenPremium,
		Note:           req.Note,
		UpdatedBy:      actorID,
	}
	if err := s.repo.UpsertOverride(ctx, o); err != nil {
		s.logger.Error("upsert payout override failed", zap.String("producer_id", req.ProducerID), zap.Error(err))
		return OverrideResponse{}, err
	}

	s.logger.Info("payout override saved",
		zap.String("agency_id", agencyID),
		zap.String("producer_id", req.ProducerID),
		zap.String("period", period.String()),
		zap.String("actor_id", actorID),
	)
	return mapOverrideResponse(*o), nil
}

func (s *service) ListOverrides(ctx context.Context, agencyID string, req PeriodRequest) ([]OverrideResponse, error) {
	period, err := parsePeriod(req.Month, req.Year)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.FindOverrides(ctx, agencyID, period)
	if err != nil {
		return nil, err
	}
	res := make([]OverrideResponse, len(rows))
	for i, row := range rows {
		res[i] = mapOverrideResponse(row)
	}
	return res, nil
}

func (s *service) DeleteOverride(ctx context.Context, agencyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return payouterrors.ErrOverrideNotFound
	}
	err := s.repo.DeleteOverride(ctx, agencyID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payouterrors.ErrOverrideNotFound
	}
	return err
}

func (s *service) invalidateSummary(ctx context.Context, agencyID string, period commission.Period) {
	if s.rdb == nil {
		return
	}
	key := GetSummaryKey(agencyID, period)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Error("failed to invalidate payout summary cache", zap.String("key", key), zap.Error(err))
	}
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payouterrors.ErrPayoutNotFound
	}
	return err
}

func summarizeCalculations(period commission.Period, payouts []commission.PayoutCalculation) Summary {
	s := Summary{Period: period.String(), ProducerCount: len(payouts)}
	for _, p := range payouts {
		s.NetPremium += p.NetPremium
		s.BaseCommission += p.BaseCommission
		s.BonusAmount += p.BonusAmount
		s.KickerAmount += p.SelfGenKickerAmount
		s.TotalPayout += p.TotalPayout
	}
	return s
}

func summarizeRows(period commission.Period, rows []Payout) Summary {
	s := Summary{Period: period.String(), ProducerCount: len(rows)}
	for _, r := range rows {
		s.NetPremium += r.NetPremium
		s.BaseCommission += r.BaseCommission
		s.BonusAmount += r.BonusAmount
		s.KickerAmount += r.SelfGenKickerAmount
		s.TotalPayout += r.TotalPayout
	}
	return s
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.UTC().Format(timestampLayout)
	return &v
}

func mapToResponse(p Payout) PayoutResponse {
	return PayoutResponse{
		ID:                  p.ID.String(),
		RunNumber:           p.RunNumber,
		Period:              p.Period().String(),
		ProducerID:          p.ProducerID,
		ProducerName:        p.ProducerName,
		PlanID:              p.PlanID,
		PlanName:            p.PlanName,
		Status:              p.Status,
		NetPremium:          p.NetPremium,
		CommissionRate:      p.CommissionRate.String(),
		BaseCommission:      p.BaseCommission,
		BonusAmount:         p.BonusAmount,
		SelfGenKickerAmount: p.SelfGenKickerAmount,
		TotalPayout:         p.TotalPayout,
		OverrideApplied:     p.OverrideApplied,
		FinalizedAt:         formatTime(p.FinalizedAt),
		PaidAt:              formatTime(p.PaidAt),
	}
}

func mapToListResponse(rows []Payout) []PayoutResponse {
	res := make([]PayoutResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res
}

func mapOverrideResponse(o PayoutOverride) OverrideResponse {
	return OverrideResponse{
		ID:             o.ID.String(),
		ProducerID:     o.ProducerID,
		Period:         commission.Period{Month: o.PeriodMonth, Year: o.PeriodYear}.String(),
		WrittenItems:   o.WrittenItems,
		WrittenPremium: o.WrittenPremium,
		Note:           o.Note,
		UpdatedBy:      o.UpdatedBy,
	}
}
