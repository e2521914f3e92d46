package commission_test

import (
	"testing"
	"time"

	"go-agency/internal/commission"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchTier(t *testing.T) {
	tiers := standardPlan(commission.ChargebackNone).Tiers

	tests := []struct {
		name      string
		net       int64
		matched   bool
		threshold int64
		rate      string
	}{
		{"below base tier", -1, false, 0, "0"},
		{"exactly base tier", 0, true, 0, "8"},
		{"between tiers", 49999, true, 0, "8"},
		{"exactly second tier", 50000, true, 50000, "10"},
		{"top tier", 250000, true, 100000, "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := commission.MatchTier(tiers, tt.net)
			require.NoError(t, err)
			assert.Equal(t, tt.matched, m.Matched)
			assert.Equal(t, tt.threshold, m.MinThreshold)
			assert.True(t, pct(tt.rate).Equal(m.CommissionRate), "rate %s", m.CommissionRate)
		})
	}
}

func TestMatchTier_NoBaseTier(t *testing.T) {
	m, err := commission.MatchTier([]commission.Tier{{MinThreshold: 10000, CommissionRate: pct("5")}}, 9999)
	require.NoError(t, err)
	assert.False(t, m.Matched)
	assert.Equal(t, -1, m.Index)
	assert.True(t, m.CommissionRate.IsZero())
}

func TestMatchTier_Monotonic(t *testing.T) {
	tiers := standardPlan(commission.ChargebackNone).Tiers
	prev := pct("0")
	for net := int64(-5000); net <= 200000; net += 250 {
		m, err := commission.MatchTier(tiers, net)
		require.NoError(t, err)
		assert.False(t, m.CommissionRate.LessThan(prev), "rate dropped at %d", net)
		prev = m.CommissionRate
	}
}

func TestMatchTier_InvalidConfiguration(t *testing.T) {
	t.Run("duplicate thresholds", func(t *testing.T) {
		_, err := commission.MatchTier([]commission.Tier{
			{MinThreshold: 0, CommissionRate: pct("5")},
			{MinThreshold: 0, CommissionRate: pct("6")},
		}, 100)
		assert.ErrorIs(t, err, commission.ErrDuplicateTierThreshold)
		assert.ErrorIs(t, err, commission.ErrInvalidTierConfiguration)
	})

	t.Run("descending thresholds", func(t *testing.T) {
		_, err := commission.MatchTier([]commission.Tier{
			{MinThreshold: 5000, CommissionRate: pct("5")},
			{MinThreshold: 1000, CommissionRate: pct("6")},
		}, 100)
		assert.ErrorIs(t, err, commission.ErrNonMonotonicTierThreshold)
	})

	t.Run("negative rate", func(t *testing.T) {
		err := commission.ValidateTiers([]commission.Tier{{MinThreshold: 0, CommissionRate: pct("-1")}})
		assert.ErrorIs(t, err, commission.ErrNegativeCommissionRate)
	})
}

func TestApplyChargebackRule(t *testing.T) {
	insureds := []commission.InsuredLine{
		{InsuredName: "A", NetPremium: -4000, NetCommission: -400, DaysInForce: days(30)},
		{InsuredName: "B", NetPremium: 2000, NetCommission: 200, DaysInForce: days(90)},
		{InsuredName: "C", NetPremium: 1000, NetCommission: 100, DaysInForce: days(91)},
	}

	t.Run("none never deducts", func(t *testing.T) {
		out, err := commission.ApplyChargebackRule(commission.ChargebackNone, insureds)
		require.NoError(t, err)
		assert.Equal(t, int64(0), out.ChargebackPremium)
		assert.Equal(t, int64(0), out.ChargebackCommission)
		assert.Len(t, out.Lines, 3)
	})

	t.Run("full deducts absolute premium of every insured", func(t *testing.T) {
		out, err := commission.ApplyChargebackRule(commission.ChargebackFull, insureds)
		require.NoError(t, err)
		assert.Equal(t, int64(7000), out.ChargebackPremium)
		assert.Equal(t, int64(700), out.ChargebackCommission)
		assert.Equal(t, 0, out.ExcludedCount)
	})

	t.Run("three month boundary", func(t *testing.T) {
		out, err := commission.ApplyChargebackRule(commission.ChargebackThreeMonth, insureds)
		require.NoError(t, err)
		// 30 and 90 days are deducted, 91 is excluded
		assert.Equal(t, int64(6000), out.ChargebackPremium)
		assert.Equal(t, 1, out.ExcludedCount)
		assert.True(t, out.Lines[1].Applied)
		assert.True(t, out.Lines[2].Excluded)
		assert.Empty(t, out.MissingDaysInForce)
	})

	t.Run("three month missing duration is deducted", func(t *testing.T) {
		out, err := commission.ApplyChargebackRule(commission.ChargebackThreeMonth, []commission.InsuredLine{
			{InsuredName: "D", NetPremium: 1500},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1500), out.ChargebackPremium)
		assert.Equal(t, []string{"D"}, out.MissingDaysInForce)
	})

	t.Run("unknown rule", func(t *testing.T) {
		_, err := commission.ApplyChargebackRule("sometimes", insureds)
		assert.ErrorIs(t, err, commission.ErrUnknownChargebackRule)
	})
}

func TestApplyOverride(t *testing.T) {
	raw := commission.SubProducerMetrics{
		ProducerID: "p-1", WrittenPremium: 1000, WrittenItems: 4,
		ChargebackInsureds: []commission.InsuredLine{{InsuredName: "X", NetPremium: 10}},
	}

	merged, audit := commission.ApplyOverride(raw, nil)
	assert.Equal(t, raw, merged)
	assert.False(t, audit.Applied)

	merged, audit = commission.ApplyOverride(raw, &commission.ManualOverride{ProducerID: "p-1", WrittenItems: i64(7)})
	assert.Equal(t, int64(7), merged.WrittenItems)
	assert.Equal(t, int64(1000), merged.WrittenPremium)
	assert.Equal(t, raw.ChargebackInsureds, merged.ChargebackInsureds)
	assert.True(t, audit.Applied)
	assert.Equal(t, int64(4), audit.RawWrittenItems)
	assert.Equal(t, int64(7), audit.WrittenItems)
}

func TestMeasureProgress(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	sales := []commission.SaleRecord{
		{SaleDate: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), CustomerName: "Jane Doe", PolicyNumber: "P-1", Premium: 1000, Items: 1, Points: 3},
		{SaleDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), CustomerName: "jane  doe", PolicyNumber: "P-2", Premium: 2000, Items: 2, Points: 5},
		{SaleDate: time.Date(2026, 3, 31, 23, 0, 0, 0, time.UTC), CustomerName: "Bob", PolicyNumber: "p-2", Premium: 500, Items: 1, Points: 1},
		{SaleDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), CustomerName: "Out Of Window", PolicyNumber: "P-9", Premium: 99999, Items: 9, Points: 9},
	}

	assert.Equal(t, int64(3500), commission.MeasureProgress(commission.MeasurePremium, sales, from, to))
	assert.Equal(t, int64(4), commission.MeasureProgress(commission.MeasureItems, sales, from, to))
	assert.Equal(t, int64(9), commission.MeasureProgress(commission.MeasurePoints, sales, from, to))
	assert.Equal(t, int64(2), commission.MeasureProgress(commission.MeasurePolicies, sales, from, to))
	assert.Equal(t, int64(2), commission.MeasureProgress(commission.MeasureHouseholds, sales, from, to))
}

func TestPromoEvaluator_Additive(t *testing.T) {
	batch := []commission.SubProducerMetrics{{
		ProducerID: "p-1",
		Sales: []commission.SaleRecord{
			{SaleDate: march2026.Start(), CustomerName: "A", PolicyNumber: "1", Premium: 30000},
			{SaleDate: march2026.Start(), CustomerName: "B", PolicyNumber: "2", Premium: 30000},
		},
	}}
	promoA := commission.Promo{
		ID: "a", Measurement: commission.MeasurePremium, TargetValue: 50000, BonusAmountCents: 10000,
		Scope: commission.ScopeIndividual, ProducerIDs: []string{"p-1"},
		StartDate: march2026.Start(), EndDate: march2026.End(),
	}
	promoB := commission.Promo{
		ID: "b", Measurement: commission.MeasurePolicies, TargetValue: 2, BonusAmountCents: 7500,
		Scope: commission.ScopeIndividual, ProducerIDs: []string{"p-1"},
		StartDate: march2026.Start(), EndDate: march2026.End(),
	}
	missed := commission.Promo{
		ID: "c", Measurement: commission.MeasureHouseholds, TargetValue: 3, BonusAmountCents: 99,
		Scope: commission.ScopeIndividual, ProducerIDs: []string{"p-1"},
		StartDate: march2026.Start(), EndDate: march2026.End(),
	}

	results, bonus := commission.NewPromoEvaluator(batch).Evaluate("p-1", []commission.Promo{promoA, promoB, missed}, march2026)

	require.Len(t, results, 3)
	assert.Equal(t, promoA.BonusAmountCents+promoB.BonusAmountCents, bonus)
	assert.False(t, results[2].Achieved)
	assert.Equal(t, int64(2), results[2].Progress)
}

func TestPromoEvaluator_Scope(t *testing.T) {
	batch := []commission.SubProducerMetrics{
		{ProducerID: "p-1", Sales: []commission.SaleRecord{{SaleDate: march2026.Start(), Items: 2}}},
		{ProducerID: "p-2", Sales: []commission.SaleRecord{{SaleDate: march2026.Start(), Items: 3}}},
	}
	agency := commission.Promo{
		ID: "team", Measurement: commission.MeasureItems, TargetValue: 5, BonusAmountCents: 1000,
		Scope: commission.ScopeAgency, StartDate: march2026.Start(), EndDate: march2026.End(),
	}
	otherProducer := commission.Promo{
		ID: "solo", Measurement: commission.MeasureItems, TargetValue: 1, BonusAmountCents: 1000,
		Scope: commission.ScopeIndividual, ProducerIDs: []string{"p-2"},
		StartDate: march2026.Start(), EndDate: march2026.End(),
	}
	expired := agency
	expired.ID = "expired"
	expired.StartDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	expired.EndDate = time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	results, bonus := commission.NewPromoEvaluator(batch).Evaluate("p-1", []commission.Promo{agency, otherProducer, expired}, march2026)

	require.Len(t, results, 1)
	assert.Equal(t, "team", results[0].PromoID)
	assert.Equal(t, int64(5), results[0].Progress)
	assert.Equal(t, int64(1000), bonus)
}

func TestSelfGenKicker(t *testing.T) {
	premium, kicker := commission.SelfGenKicker(pct("2.5"), []commission.InsuredLine{
		{NetPremium: 10001, SelfGenerated: true},
		{NetPremium: 50000},
	})
	assert.Equal(t, int64(10001), premium)
	// 250.025 rounds to 250
	assert.Equal(t, int64(250), kicker)
}
