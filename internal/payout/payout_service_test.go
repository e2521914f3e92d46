package payout_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-agency/internal/commission"
	"go-agency/internal/events"
	"go-agency/internal/messaging/kafka"
	kafkaMock "go-agency/internal/messaging/kafka/mock"
	"go-agency/internal/payout"
	payouterrors "go-agency/internal/payout/errors"
	payoutMock "go-agency/internal/payout/mock"
	"go-agency/internal/shared/contextutil"
	counterMock "go-agency/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var march2026 = commission.Period{Month: 3, Year: 2026}

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   payout.Service
	repo      *payoutMock.MockRepository
	plans     *payoutMock.MockPlanSource
	promos    *payoutMock.MockPromoSource
	counter   *counterMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	redismock redismock.ClientMock
	registry  *prometheus.Registry
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	rdb, redisMock := redismock.NewClientMock()
	reg := prometheus.NewRegistry()

	d := &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		repo:      payoutMock.NewMockRepository(ctrl),
		plans:     payoutMock.NewMockPlanSource(ctrl),
		promos:    payoutMock.NewMockPromoSource(ctrl),
		counter:   counterMock.NewMockRepository(ctrl),
		outbox:    kafkaMock.NewMockOutboxRepository(ctrl),
		redismock: redisMock,
		registry:  reg,
	}
	d.service = payout.NewService(
		db, d.repo, d.plans, d.promos, d.counter, d.outbox, rdb,
		payout.NewMetrics(reg), zap.NewNop(),
	)
	return d
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func i64(v int64) *int64 { return &v }

func standardPlans(producerIDs ...string) *commission.AssignmentSet {
	plan := commission.CompPlan{
		ID:   "plan-1",
		Name: "Standard",
		Tiers: []commission.Tier{
			{MinThreshold: 0, CommissionRate: decimal.RequireFromString("8")},
			{MinThreshold: 50000, CommissionRate: decimal.RequireFromString("10")},
		},
		ChargebackRule: commission.ChargebackThreeMonth,
	}
	assignments := make([]commission.ProducerAssignment, 0, len(producerIDs))
	for _, id := range producerIDs {
		assignments = append(assignments, commission.ProducerAssignment{
			ProducerID:    id,
			PlanID:        plan.ID,
			EffectiveFrom: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		})
	}
	return commission.NewAssignmentSet([]commission.CompPlan{plan}, assignments)
}

func batchRequest() payout.CalculateRequest {
	return payout.CalculateRequest{
		Month: 3,
		Year:  2026,
		Producers: []commission.SubProducerMetrics{
			{ProducerID: "p-1", ProducerName: "Alice", IssuedPremium: 60000, WrittenItems: 4},
			{ProducerID: "p-2", ProducerName: "Bob", IssuedPremium: 1000},
		},
	}
}

func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	var total float64
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

func TestPayoutService_Preview(t *testing.T) {
	ctx := context.Background()
	agencyID := uuid.NewString()

	t.Run("request override wins over stored override", func(t *testing.T) {
		d := setupServiceTest(t)
		d.plans.EXPECT().LoadForPeriod(gomock.Any(), agencyID, march2026).Return(standardPlans("p-1"), nil)
		d.promos.EXPECT().ActiveForPeriod(gomock.Any(), agencyID, march2026).Return(nil, nil)
		d.repo.EXPECT().FindOverrides(gomock.Any(), agencyID, march2026).Return([]payout.PayoutOverride{
			{ProducerID: "p-1", PeriodMonth: 3, PeriodYear: 2026, WrittenItems: i64(6)},
		}, nil)

		req := batchRequest()
		req.Overrides = []commission.ManualOverride{{ProducerID: "p-1", WrittenItems: i64(9)}}

		resp, err := d.service.Preview(ctx, agencyID, req)
		require.NoError(t, err)

		require.Len(t, resp.Payouts, 1)
		p := resp.Payouts[0]
		assert.Equal(t, "p-1", p.ProducerID)
		assert.Equal(t, int64(9), p.WrittenItems)
		assert.True(t, p.Override.Applied)
		assert.Equal(t, int64(4), p.Override.RawWrittenItems)
		// 60000 ada di tier 10%
		assert.Equal(t, int64(6000), p.BaseCommission)
		assert.Equal(t, "2026-03", resp.Period)
		assert.Equal(t, 1, resp.Summary.ProducerCount)
		assert.Equal(t, int64(6000), resp.Summary.TotalPayout)

		require.Len(t, resp.Warnings, 1)
		assert.Contains(t, resp.Warnings[0], "Bob")

		assert.Equal(t, 1.0, counterValue(t, d.registry, "payout_calculations_total"))
		assert.Equal(t, 1.0, counterValue(t, d.registry, "payout_producers_skipped_total"))
	})

	t.Run("request override keeps stored fields it does not set", func(t *testing.T) {
		d := setupServiceTest(t)
		d.plans.EXPECT().LoadForPeriod(gomock.Any(), agencyID, march2026).Return(standardPlans("p-1"), nil)
		d.promos.EXPECT().ActiveForPeriod(gomock.Any(), agencyID, march2026).Return(nil, nil)
		d.repo.EXPECT().FindOverrides(gomock.Any(), agencyID, march2026).Return([]payout.PayoutOverride{
			{ProducerID: "p-1", PeriodMonth: 3, PeriodYear: 2026, WrittenPremium: i64(70000), Note: "carrier late"},
		}, nil)

		req := batchRequest()
		req.Overrides = []commission.ManualOverride{{ProducerID: "p-1", WrittenItems: i64(9)}}

		resp, err := d.service.Preview(ctx, agencyID, req)
		require.NoError(t, err)

		require.Len(t, resp.Payouts, 1)
		p := resp.Payouts[0]
		assert.Equal(t, int64(9), p.WrittenItems)
		assert.Equal(t, int64(70000), p.WrittenPremium)
		assert.Equal(t, "carrier late", p.Override.Note)
	})

	t.Run("shared calculation ignores caller cancellation", func(t *testing.T) {
		d := setupServiceTest(t)
		callerCtx, cancel := context.WithCancel(contextutil.WithRequestID(ctx, "req-1"))
		cancel()

		d.plans.EXPECT().LoadForPeriod(gomock.Any(), agencyID, march2026).
			DoAndReturn(func(c context.Context, _ string, _ commission.Period) (*commission.AssignmentSet, error) {
				assert.NoError(t, c.Err())
				assert.Equal(t, "req-1", contextutil.GetRequestID(c))
				return standardPlans("p-1"), nil
			})
		d.promos.EXPECT().ActiveForPeriod(gomock.Any(), agencyID, march2026).Return(nil, nil)
		d.repo.EXPECT().FindOverrides(gomock.Any(), agencyID, march2026).Return(nil, nil)

		resp, err := d.service.Preview(callerCtx, agencyID, batchRequest())
		require.NoError(t, err)
		assert.Len(t, resp.Payouts, 1)
	})

	t.Run("invalid period", func(t *testing.T) {
		d := setupServiceTest(t)
		req := batchRequest()
		req.Month = 13

		_, err := d.service.Preview(ctx, agencyID, req)
		assert.ErrorIs(t, err, payouterrors.ErrInvalidPeriod)
		assert.ErrorIs(t, err, commission.ErrInvalidPeriod)
	})

	t.Run("plan source error", func(t *testing.T) {
		d := setupServiceTest(t)
		d.plans.EXPECT().LoadForPeriod(gomock.Any(), agencyID, march2026).Return(nil, errors.New("db down"))

		_, err := d.service.Preview(ctx, agencyID, batchRequest())
		assert.EqualError(t, err, "db down")
	})
}

func TestPayoutService_SaveDraft(t *testing.T) {
	ctx := context.Background()
	agencyID := uuid.NewString()
	actorID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		d := setupServiceTest(t)
		d.plans.EXPECT().LoadForPeriod(gomock.Any(), agencyID, march2026).Return(standardPlans("p-1", "p-2"), nil)
		d.promos.EXPECT().ActiveForPeriod(gomock.Any(), agencyID, march2026).Return(nil, nil)
		d.repo.EXPECT().FindOverrides(gomock.Any(), agencyID, march2026).Return(nil, nil)

		expectTx(t, d.sqlMock, true)
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockPeriod(gomock.Any(), agencyID, march2026).Return(nil)
		d.repo.EXPECT().CountByStatus(gomock.Any(), agencyID, march2026).Return(map[string]int64{"draft": 5}, nil)
		d.counter.EXPECT().WithTx(gomock.Any()).Return(d.counter)
		d.counter.EXPECT().GetNextValue(gomock.Any(), agencyID, "payout_run").Return(int64(3), nil)
		d.repo.EXPECT().ReplaceDrafts(gomock.Any(), agencyID, march2026, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ commission.Period, rows []payout.Payout) error {
				require.Len(t, rows, 2)
				for _, r := range rows {
					assert.Equal(t, "RUN-2026-03-0003", r.RunNumber)
					assert.Equal(t, "draft", r.Status)
					assert.Equal(t, actorID, r.CreatedBy)
					assert.Equal(t, r.ProducerID, r.Detail.ProducerID)
				}
				return nil
			})
		d.redismock.ExpectDel(payout.GetSummaryKey(agencyID, march2026)).SetVal(1)

		resp, err := d.service.SaveDraft(ctx, agencyID, actorID, batchRequest())
		require.NoError(t, err)

		assert.Equal(t, "RUN-2026-03-0003", resp.RunNumber)
		assert.Len(t, resp.Payouts, 2)
		assert.Empty(t, resp.Warnings)
		assert.Equal(t, int64(6000+80), resp.Summary.TotalPayout)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
		assert.NoError(t, d.redismock.ExpectationsWereMet())
	})

	t.Run("period already finalized", func(t *testing.T) {
		d := setupServiceTest(t)
		d.plans.EXPECT().LoadForPeriod(gomock.Any(), agencyID, march2026).Return(standardPlans("p-1"), nil)
		d.promos.EXPECT().ActiveForPeriod(gomock.Any(), agencyID, march2026).Return(nil, nil)
		d.repo.EXPECT().FindOverrides(gomock.Any(), agencyID, march2026).Return(nil, nil)

		expectTx(t, d.sqlMock, false)
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockPeriod(gomock.Any(), agencyID, march2026).Return(nil)
		d.repo.EXPECT().CountByStatus(gomock.Any(), agencyID, march2026).Return(map[string]int64{"finalized": 2}, nil)

		_, err := d.service.SaveDraft(ctx, agencyID, actorID, batchRequest())
		assert.ErrorIs(t, err, payouterrors.ErrPeriodFinalized)
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("persist failure rolls back run number with the tx", func(t *testing.T) {
		d := setupServiceTest(t)
		d.plans.EXPECT().LoadForPeriod(gomock.Any(), agencyID, march2026).Return(standardPlans("p-1"), nil)
		d.promos.EXPECT().ActiveForPeriod(gomock.Any(), agencyID, march2026).Return(nil, nil)
		d.repo.EXPECT().FindOverrides(gomock.Any(), agencyID, march2026).Return(nil, nil)

		expectTx(t, d.sqlMock, false)
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockPeriod(gomock.Any(), agencyID, march2026).Return(nil)
		d.repo.EXPECT().CountByStatus(gomock.Any(), agencyID, march2026).Return(map[string]int64{}, nil)
		d.counter.EXPECT().WithTx(gomock.Not(gomock.Nil())).Return(d.counter)
		d.counter.EXPECT().GetNextValue(gomock.Any(), agencyID, "payout_run").Return(int64(4), nil)
		d.repo.EXPECT().ReplaceDrafts(gomock.Any(), agencyID, march2026, gomock.Any()).Return(errors.New("insert failed"))

		_, err := d.service.SaveDraft(ctx, agencyID, actorID, batchRequest())
		assert.EqualError(t, err, "insert failed")
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid agency", func(t *testing.T) {
		d := setupServiceTest(t)
		_, err := d.service.SaveDraft(ctx, "agency", actorID, batchRequest())
		assert.ErrorIs(t, err, payouterrors.ErrInvalidAgencyID)
	})
}

func TestPayoutService_Finalize(t *testing.T) {
	ctx := context.Background()
	agencyID := uuid.NewString()
	actorID := uuid.NewString()
	req := payout.PeriodRequest{Month: 3, Year: 2026}

	t.Run("success writes outbox event", func(t *testing.T) {
		d := setupServiceTest(t)
		rows := []payout.Payout{
			{ID: uuid.New(), RunNumber: "RUN-2026-03-0003", ProducerID: "p-1", TotalPayout: 6000, PeriodMonth: 3, PeriodYear: 2026},
			{ID: uuid.New(), RunNumber: "RUN-2026-03-0003", ProducerID: "p-2", TotalPayout: 80, PeriodMonth: 3, PeriodYear: 2026},
		}

		expectTx(t, d.sqlMock, true)
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockPeriod(gomock.Any(), agencyID, march2026).Return(nil)
		d.repo.EXPECT().CountByStatus(gomock.Any(), agencyID, march2026).Return(map[string]int64{"draft": 2}, nil)
		d.repo.EXPECT().FinalizeDrafts(gomock.Any(), agencyID, march2026, actorID, gomock.Any()).Return(int64(2), nil)
		d.repo.EXPECT().FindByPeriod(gomock.Any(), agencyID, march2026).Return(rows, nil)
		d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox)
		d.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
				assert.Equal(t, events.PayoutFinalizedTopic, e.Topic)
				assert.Equal(t, agencyID+":2026-03", e.AggregateID)
				assert.Equal(t, kafka.OutboxStatusPending, e.Status)

				var payload events.PayoutFinalizedEvent
				require.NoError(t, json.Unmarshal(e.Payload, &payload))
				assert.Equal(t, int64(6080), payload.TotalPayout)
				assert.Len(t, payload.Payouts, 2)
				assert.Equal(t, actorID, payload.FinalizedBy)
				return nil
			})
		d.redismock.ExpectDel(payout.GetSummaryKey(agencyID, march2026)).SetVal(1)

		resp, err := d.service.Finalize(ctx, agencyID, actorID, req)
		require.NoError(t, err)

		assert.Equal(t, int64(2), resp.Finalized)
		assert.Equal(t, int64(6080), resp.TotalPayout)
		assert.Equal(t, "RUN-2026-03-0003", resp.RunNumber)
		assert.Equal(t, 2.0, counterValue(t, d.registry, "payout_finalized_total"))
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})

	t.Run("no drafts", func(t *testing.T) {
		d := setupServiceTest(t)
		expectTx(t, d.sqlMock, false)
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockPeriod(gomock.Any(), agencyID, march2026).Return(nil)
		d.repo.EXPECT().CountByStatus(gomock.Any(), agencyID, march2026).Return(map[string]int64{}, nil)

		_, err := d.service.Finalize(ctx, agencyID, actorID, req)
		assert.ErrorIs(t, err, payouterrors.ErrNoDrafts)
	})

	t.Run("already finalized", func(t *testing.T) {
		d := setupServiceTest(t)
		expectTx(t, d.sqlMock, false)
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockPeriod(gomock.Any(), agencyID, march2026).Return(nil)
		d.repo.EXPECT().CountByStatus(gomock.Any(), agencyID, march2026).Return(map[string]int64{"paid": 1}, nil)

		_, err := d.service.Finalize(ctx, agencyID, actorID, req)
		assert.ErrorIs(t, err, payouterrors.ErrPeriodFinalized)
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		d := setupServiceTest(t)
		expectTx(t, d.sqlMock, false)
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().LockPeriod(gomock.Any(), agencyID, march2026).Return(nil)
		d.repo.EXPECT().CountByStatus(gomock.Any(), agencyID, march2026).Return(map[string]int64{"draft": 1}, nil)
		d.repo.EXPECT().FinalizeDrafts(gomock.Any(), agencyID, march2026, actorID, gomock.Any()).Return(int64(1), nil)
		d.repo.EXPECT().FindByPeriod(gomock.Any(), agencyID, march2026).Return([]payout.Payout{{ID: uuid.New()}}, nil)
		d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox)
		d.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

		_, err := d.service.Finalize(ctx, agencyID, actorID, req)
		assert.EqualError(t, err, "insert failed")
		assert.NoError(t, d.sqlMock.ExpectationsWereMet())
	})
}

func TestPayoutService_MarkPaid(t *testing.T) {
	ctx := context.Background()
	agencyID := uuid.NewString()
	actorID := uuid.NewString()
	id := uuid.New()

	row := func(status string) *payout.Payout {
		return &payout.Payout{ID: id, Status: status, PeriodMonth: 3, PeriodYear: 2026, TotalPayout: 500}
	}

	t.Run("finalized to paid", func(t *testing.T) {
		d := setupServiceTest(t)
		expectTx(t, d.sqlMock, true)
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().FindByIDAndAgency(gomock.Any(), agencyID, id.String()).Return(row("finalized"), nil)
		d.repo.EXPECT().MarkPaid(gomock.Any(), agencyID, id.String(), actorID, gomock.Any()).Return(int64(1), nil)
		d.redismock.ExpectDel(payout.GetSummaryKey(agencyID, march2026)).SetVal(1)

		resp, err := d.service.MarkPaid(ctx, agencyID, actorID, id.String())
		require.NoError(t, err)
		assert.Equal(t, "paid", resp.Status)
		assert.NotNil(t, resp.PaidAt)
	})

	tests := []struct {
		name    string
		status  string
		wantErr error
	}{
		{"draft cannot be paid", "draft", payouterrors.ErrPayoutNotFinalized},
		{"paid twice", "paid", payouterrors.ErrPayoutAlreadyPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupServiceTest(t)
			expectTx(t, d.sqlMock, false)
			d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
			d.repo.EXPECT().FindByIDAndAgency(gomock.Any(), agencyID, id.String()).Return(row(tt.status), nil)

			_, err := d.service.MarkPaid(ctx, agencyID, actorID, id.String())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("not found", func(t *testing.T) {
		d := setupServiceTest(t)
		expectTx(t, d.sqlMock, false)
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().FindByIDAndAgency(gomock.Any(), agencyID, id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := d.service.MarkPaid(ctx, agencyID, actorID, id.String())
		assert.ErrorIs(t, err, payouterrors.ErrPayoutNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		d := setupServiceTest(t)
		_, err := d.service.MarkPaid(ctx, agencyID, actorID, "x")
		assert.ErrorIs(t, err, payouterrors.ErrInvalidPayoutID)
	})
}

func TestPayoutService_GetSummary(t *testing.T) {
	ctx := context.Background()
	agencyID := uuid.NewString()
	key := payout.GetSummaryKey(agencyID, march2026)
	req := payout.PeriodRequest{Month: 3, Year: 2026}

	want := payout.Summary{Period: "2026-03", ProducerCount: 2, NetPremium: 61000, BaseCommission: 6080, TotalPayout: 6080}
	data, err := json.Marshal(want)
	require.NoError(t, err)

	t.Run("cache miss", func(t *testing.T) {
		d := setupServiceTest(t)
		d.redismock.ExpectGet(key).RedisNil()
		d.repo.EXPECT().FindByPeriod(gomock.Any(), agencyID, march2026).Return([]payout.Payout{
			{NetPremium: 60000, BaseCommission: 6000, TotalPayout: 6000},
			{NetPremium: 1000, BaseCommission: 80, TotalPayout: 80},
		}, nil)
		d.redismock.ExpectSet(key, data, 10*time.Minute).SetVal("OK")

		got, err := d.service.GetSummary(ctx, agencyID, req)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NoError(t, d.redismock.ExpectationsWereMet())
	})

	t.Run("cache hit", func(t *testing.T) {
		d := setupServiceTest(t)
		d.redismock.ExpectGet(key).SetVal(string(data))

		got, err := d.service.GetSummary(ctx, agencyID, req)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestPayoutService_UpsertOverride(t *testing.T) {
	ctx := context.Background()
	agencyID := uuid.NewString()
	actorID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		d := setupServiceTest(t)
		d.repo.EXPECT().CountByStatus(gomock.Any(), agencyID, march2026).Return(map[string]int64{"draft": 1}, nil)
		d.repo.EXPECT().UpsertOverride(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *payout.PayoutOverride) error {
				assert.Equal(t, "p-1", o.ProducerID)
				assert.Equal(t, int64(12), *o.WrittenItems)
				assert.Nil(t, o.WrittenPremium)
				return nil
			})

		resp, err := d.service.UpsertOverride(ctx, agencyID, actorID, payout.OverrideRequest{
			ProducerID: "p-1", Month: 3, Year: 2026, WrittenItems: i64(12), Note: "late app",
		})
		require.NoError(t, err)
		assert.Equal(t, "2026-03", resp.Period)
		assert.Equal(t, actorID, resp.UpdatedBy)
	})

	t.Run("empty override", func(t *testing.T) {
		d := setupServiceTest(t)
		_, err := d.service.UpsertOverride(ctx, agencyID, actorID, payout.OverrideRequest{ProducerID: "p-1", Month: 3, Year: 2026})
		assert.ErrorIs(t, err, payouterrors.ErrEmptyOverride)
	})

	t.Run("finalized period", func(t *testing.T) {
		d := setupServiceTest(t)
		d.repo.EXPECT().CountByStatus(gomock.Any(), agencyID, march2026).Return(map[string]int64{"finalized": 3}, nil)

		_, err := d.service.UpsertOverride(ctx, agencyID, actorID, payout.OverrideRequest{
			ProducerID: "p-1", Month: 3, Year: 2026, WrittenPremium: i64(100),
		})
		assert.ErrorIs(t, err, payouterrors.ErrPeriodFinalized)
	})
}

func TestPayoutService_GetAll_InvalidStatus(t *testing.T) {
	d := setupServiceTest(t)
	_, err := d.service.GetAll(context.Background(), uuid.NewString(), payout.ListFilter{Status: "void"})
	assert.ErrorIs(t, err, payouterrors.ErrInvalidStatusFilter)
}

func TestPayoutService_DeleteOverride_NotFound(t *testing.T) {
	d := setupServiceTest(t)
	agencyID := uuid.NewString()
	id := uuid.NewString()
	d.repo.EXPECT().DeleteOverride(gomock.Any(), agencyID, id).Return(gorm.ErrRecordNotFound)

	err := d.service.DeleteOverride(context.Background(), agencyID, id)
	assert.ErrorIs(t, err, payouterrors.ErrOverrideNotFound)
}
