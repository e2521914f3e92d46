package promo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-agency/internal/commission"
	promoerrors "go-agency/internal/promo/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dateLayout       = "2006-01-02"
	PromoListKeyPref = "promos:all:"
	promoListTTL     = 30 * time.Minute
)

func GetPromoListKey(agencyID string) string {
	return PromoListKeyPref + agencyID
}

//go:generate mockgen -source=promo_service.go -destination=mock/promo_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, agencyID string, req CreatePromoRequest) (PromoResponse, error)
	GetAll(ctx context.Context, agencyID string) ([]PromoResponse, error)
	GetByID(ctx context.Context, agencyID, id string) (PromoResponse, error)
	Update(ctx context.Context, agencyID, id string, req UpdatePromoRequest) (PromoResponse, error)
	Delete(ctx context.Context, agencyID, id string) error
	ActiveForPeriod(ctx context.Context, agencyID string, period commission.Period) ([]commission.Promo, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("promo.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("promo.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, logger: l}
}

type promoWindow struct {
	start time.Time
	end   time.Time
}

func validateRequest(req CreatePromoRequest) (promoWindow, error) {
	if !commission.Measurement(req.Measurement).Valid() {
		return promoWindow{}, promoerrors.ErrInvalidMeasurement
	}
	scope := commission.PromoScope(req.Scope)
	if scope != commission.ScopeIndividual && scope != commission.ScopeAgency {
		return promoWindow{}, promoerrors.ErrInvalidScope
	}
	if scope == commission.ScopeIndividual && len(req.ProducerIDs) == 0 {
		return promoWindow{}, promoerrors.ErrProducersRequired
	}
	if req.TargetValue <= 0 || req.BonusAmountCents < 0 {
		return promoWindow{}, promoerrors.ErrInvalidTarget
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return promoWindow{}, promoerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return promoWindow{}, promoerrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return promoWindow{}, promoerrors.ErrInvalidDateRange
	}
	return promoWindow{start: start, end: end}, nil
}

func applyRequest(p *Promo, req CreatePromoRequest, w promoWindow) {
	p.Name = req.Name
	p.Measurement = req.Measurement
	p.TargetValue = req.TargetValue
	p.BonusAmountCents = req.BonusAmountCents
	p.StartDate = w.start
	p.EndDate = w.end
	p.Scope = req.Scope
	p.ProducerIDs = nil
	if commission.PromoScope(req.Scope) == commission.ScopeIndividual {
		p.ProducerIDs = append([]string(nil), req.ProducerIDs...)
	}
}

func (s *service) Create(ctx context.Context, agencyID string, req CreatePromoRequest) (PromoResponse, error) {
	agencyUUID, err := uuid.Parse(agencyID)
	if err != nil {
		return PromoResponse{}, promoerrors.ErrInvalidAgencyID
	}
	window, err := validateRequest(req)
	if err != nil {
		s.logger.Warn("create promo rejected", zap.String("agency_id", agencyID), zap.Error(err))
		return PromoResponse{}, err
	}

	p := &Promo{ID: uuid.New(), AgencyID: agencyUUID, IsActive: true}
	applyRequest(p, req, window)

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("create promo failed", zap.String("agency_id", agencyID), zap.Error(err))
		return PromoResponse{}, err
	}

	s.invalidate(ctx, agencyID)
	s.logger.Info("promo created",
		zap.String("agency_id", agencyID),
		zap.String("promo_id", p.ID.String()),
		zap.String("scope", p.Scope),
	)
	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context, agencyID string) ([]PromoResponse, error) {
	cacheKey := GetPromoListKey(agencyID)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []PromoResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	promos, err := s.repo.FindAllByAgency(ctx, agencyID)
	if err != nil {
		s.logger.Error("get all promos failed", zap.String("agency_id", agencyID), zap.Error(err))
		return nil, err
	}
	resp := make([]PromoResponse, len(promos))
	for i, p := range promos {
		resp[i] = mapToResponse(p)
	}

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			s.rdb.Set(ctx, cacheKey, data, promoListTTL)
		}
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, agencyID, id string) (PromoResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PromoResponse{}, promoerrors.ErrInvalidPromoID
	}
	p, err := s.repo.FindByIDAndAgency(ctx, agencyID, id)
	if err != nil {
		return PromoResponse{}, mapNotFound(err)
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, agencyID, id string, req UpdatePromoRequest) (PromoResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PromoResponse{}, promoerrors.ErrInvalidPromoID
	}
	window, err := validateRequest(req.CreatePromoRequest)
	if err != nil {
		return PromoResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PromoResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	p, err := qtx.FindByIDAndAgency(ctx, agencyID, id)
	if err != nil {
		return PromoResponse{}, mapNotFound(err)
	}

	applyRequest(p, req.CreatePromoRequest, window)
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := qtx.Update(ctx, p); err != nil {
		s.logger.Error("update promo failed", zap.String("promo_id", id), zap.Error(err))
		return PromoResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return PromoResponse{}, err
	}

	s.invalidate(ctx, agencyID)
	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, agencyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return promoerrors.ErrInvalidPromoID
	}
	if err := s.repo.Delete(ctx, agencyID, id); err != nil {
		return mapNotFound(err)
	}
	s.invalidate(ctx, agencyID)
	return nil
}

// ActiveForPeriod mengembalikan promo aktif yang windownya menyentuh periode, siap dipakai kalkulator.
func (s *service) ActiveForPeriod(ctx context.Context, agencyID string, period commission.Period) ([]commission.Promo, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}
	rows, err := s.repo.FindActiveBetween(ctx, agencyID, period.Start(), period.End())
	if err != nil {
		return nil, err
	}
	promos := make([]commission.Promo, len(rows))
	for i, row := range rows {
		promos[i] = row.toDomain()
	}
	return promos, nil
}

func (s *service) invalidate(ctx context.Context, agencyID string) {
	if s.rdb == nil {
		return
	}
	key := GetPromoListKey(agencyID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.logger.Error("failed to invalidate promo cache", zap.String("key", key), zap.Error(err))
	}
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return promoerrors.ErrPromoNotFound
	}
	return err
}

func mapToResponse(p Promo) PromoResponse {
	ids := p.ProducerIDs
	if ids == nil {
		ids = []string{}
	}
	return PromoResponse{
		ID:               p.ID.String(),
		AgencyID:         p.AgencyID.String(),
		Name:             p.Name,
		Measurement:      p.Measurement,
		TargetValue:      p.TargetValue,
		BonusAmountCents: p.BonusAmountCents,
		StartDate:        p.StartDate.Format(dateLayout),
		EndDate:          p.EndDate.Format(dateLayout),
		Scope:            p.Scope,
		ProducerIDs:      ids,
		IsActive:         p.IsActive,
	}
}
