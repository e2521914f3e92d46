package commission

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type Calculator struct {
	plans  PlanLookup
	promos []Promo
	logger *zap.Logger
}

func NewCalculator(plans PlanLookup, promos []Promo, logger ...*zap.Logger) *Calculator {
	l := zap.L().Named("commission.calculator")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("commission.calculator")
	}
	return &Calculator{plans: plans, promos: promos, logger: l}
}

// CalculatePayouts runs one batch with a throwaway calculator.
func CalculatePayouts(
	plans PlanLookup,
	promos []Promo,
	producers []SubProducerMetrics,
	month, year int,
	overrides []ManualOverride,
) (Result, error) {
	period, err := NewPeriod(month, year)
	if err != nil {
		return Result{}, err
	}
	return NewCalculator(plans, promos).Calculate(producers, period, overrides), nil
}

// Calculate produces one draft PayoutCalculation per producer with an active plan, in input order.
// A producer's data problem never fails the batch; it is reported in Warnings instead.
func (c *Calculator) Calculate(producers []SubProducerMetrics, period Period, overrides []ManualOverride) Result {
	res := Result{
		Payouts:  make([]PayoutCalculation, 0, len(producers)),
		Warnings: []string{},
	}
	byProducer := indexOverrides(overrides)
	promos := NewPromoEvaluator(producers)

	for _, m := range producers {
		payout, warnings, ok := c.calculateOne(m, period, byProducer[m.ProducerID], promos)
		res.Warnings = append(res.Warnings, warnings...)
		if ok {
			res.Payouts = append(res.Payouts, payout)
		}
	}

	c.logger.Debug("payout batch calculated",
		zap.String("period", period.String()),
		zap.Int("producers", len(producers)),
		zap.Int("payouts", len(res.Payouts)),
		zap.Int("warnings", len(res.Warnings)),
	)

	return res
}

func (c *Calculator) calculateOne(
	raw SubProducerMetrics,
	period Period,
	override *ManualOverride,
	promos *PromoEvaluator,
) (PayoutCalculation, []string, bool) {
	name := raw.displayName()
	var warnings []string

	plan, err := c.plans.PlanFor(raw.ProducerID, period)
	switch {
	case errors.Is(err, ErrMultipleActivePlans):
		c.logger.Warn("producer skipped, ambiguous plan assignment",
			zap.String("producer_id", raw.ProducerID),
			zap.String("period", period.String()),
		)
		return PayoutCalculation{}, []string{fmt.Sprintf("%s has more than one comp plan assignment active in %s; payout not calculated", name, period)}, false
	case err != nil:
		c.logger.Warn("producer skipped, no active plan",
			zap.String("producer_id", raw.ProducerID),
			zap.String("period", period.String()),
		)
		return PayoutCalculation{}, []string{fmt.Sprintf("%s has no active comp plan assignment", name)}, false
	}

	m, audit := ApplyOverride(raw, override)

	cb, err := ApplyChargebackRule(plan.ChargebackRule, m.ChargebackInsureds)
	if err != nil {
		c.logger.Error("producer skipped, bad chargeback rule",
			zap.String("producer_id", m.ProducerID),
			zap.String("plan_id", plan.ID),
			zap.Error(err),
		)
		return PayoutCalculation{}, []string{fmt.Sprintf("%s: plan %q: %v; payout not calculated", name, plan.Name, err)}, false
	}
	for _, insured := range cb.MissingDaysInForce {
		warnings = append(warnings, fmt.Sprintf("%s: chargeback for %s has no days in force; charged back in full", name, insured))
	}

	netPremium := m.IssuedPremium - cb.ChargebackPremium
	if netPremium < 0 {
		warnings = append(warnings, fmt.Sprintf("%s has negative net premium (%d) after chargebacks", name, netPremium))
	}

	tier, err := MatchTier(plan.Tiers, netPremium)
	if err != nil {
		c.logger.Error("producer skipped, invalid tier configuration",
			zap.String("producer_id", m.ProducerID),
			zap.String("plan_id", plan.ID),
			zap.Error(err),
		)
		return PayoutCalculation{}, append(warnings, fmt.Sprintf("%s: plan %q: %v; payout not calculated", name, plan.Name, err)), false
	}
	baseCommission := percentOf(netPremium, tier.CommissionRate)

	progress, promoBonus := promos.Evaluate(m.ProducerID, c.promos, period)
	achieved := make([]PromoResult, 0, len(progress))
	for _, p := range progress {
		if p.Achieved {
			achieved = append(achieved, p)
		}
	}
	bonusLines, ruleBonus := ApplyBonusRules(plan.BonusRules, netPremium)
	selfGenPremium, kicker := SelfGenKicker(plan.SelfGenKickerPercent, m.CreditInsureds)

	chargebackCount := m.ChargebackCount
	if chargebackCount == 0 {
		chargebackCount = len(m.ChargebackInsureds)
	}
	creditCount := m.CreditCount
	if creditCount == 0 {
		creditCount = len(m.CreditInsureds)
	}

	bonusAmount := promoBonus + ruleBonus
	payout := PayoutCalculation{
		ProducerID:              m.ProducerID,
		ProducerName:            m.ProducerName,
		PlanID:                  plan.ID,
		PlanName:                plan.Name,
		Period:                  period,
		WrittenPremium:          m.WrittenPremium,
		WrittenItems:            m.WrittenItems,
		IssuedPremium:           m.IssuedPremium,
		ChargebackPremium:       cb.ChargebackPremium,
		ChargebackCommission:    cb.ChargebackCommission,
		NetPremium:              netPremium,
		TierMatch:               tier,
		BaseCommission:          baseCommission,
		ChargebackRule:          plan.ChargebackRule,
		CreditCount:             creditCount,
		ChargebackCount:         chargebackCount,
		ExcludedChargebackCount: cb.ExcludedCount,
		AchievedPromos:          achieved,
		PromoProgress:           progress,
		BonusLines:              bonusLines,
		BonusAmount:             bonusAmount,
		SelfGenPremium:          selfGenPremium,
		SelfGenKickerAmount:     kicker,
		TotalPayout:             baseCommission + bonusAmount + kicker,
		Override:                audit,
		CreditInsureds:          append([]InsuredLine(nil), m.CreditInsureds...),
		ChargebackInsureds:      cb.Lines,
		Status:                  StatusDraft,
	}

	return payout, warnings, true
}
