package commission

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ProducerScope selects whose sales count toward a promo.
type ProducerScope func(producerID string) bool

func individualScope(producerID string) ProducerScope {
	return func(id string) bool { return id == producerID }
}

// agencyScope counts every producer in the batch, including ones skipped for payout.
func agencyScope(string) bool { return true }

// PromoEvaluator measures promo progress over one calculation batch. Individual and
// agency-wide promos share the same aggregation and differ only in their ProducerScope.
type PromoEvaluator struct {
	batch []SubProducerMetrics
}

func NewPromoEvaluator(batch []SubProducerMetrics) *PromoEvaluator {
	return &PromoEvaluator{batch: batch}
}

// Evaluate returns every applicable promo's progress for the producer and the summed bonus of
// those achieved.
func (e *PromoEvaluator) Evaluate(producerID string, promos []Promo, period Period) ([]PromoResult, int64) {
	results := make([]PromoResult, 0, len(promos))
	var bonus int64

	for _, p := range promos {
		if !p.Measurement.Valid() || !p.AppliesTo(producerID) || !p.Overlaps(period) {
			continue
		}

		scope := individualScope(producerID)
		if p.Scope == ScopeAgency {
			scope = agencyScope
		}

		progress := MeasureProgress(p.Measurement, e.sales(scope), p.StartDate, p.EndDate)
		res := PromoResult{
			PromoID:          p.ID,
			Name:             p.Name,
			Measurement:      p.Measurement,
			Scope:            p.Scope,
			TargetValue:      p.TargetValue,
			Progress:         progress,
			Achieved:         progress >= p.TargetValue,
			BonusAmountCents: p.BonusAmountCents,
		}
		if res.Achieved {
			bonus += p.BonusAmountCents
		}
		results = append(results, res)
	}

	return results, bonus
}

func (e *PromoEvaluator) sales(scope ProducerScope) []SaleRecord {
	var out []SaleRecord
	for _, m := range e.batch {
		if scope(m.ProducerID) {
			out = append(out, m.Sales...)
		}
	}
	return out
}

// MeasureProgress aggregates sales dated within [from, to] (inclusive, by calendar day).
// Policies and households are distinct cardinalities, not row counts.
func MeasureProgress(m Measurement, sales []SaleRecord, from, to time.Time) int64 {
	var total int64
	distinct := make(map[string]struct{})

	for _, s := range sales {
		if !withinDays(s.SaleDate, from, to) {
			continue
		}
		switch m {
		case MeasurePremium:
			total += s.Premium
		case MeasureItems:
			total += s.Items
		case MeasurePoints:
			total += s.Points
		case MeasurePolicies:
			if k := normalizeKey(s.PolicyNumber); k != "" {
				distinct[k] = struct{}{}
			}
		case MeasureHouseholds:
			if k := normalizeKey(s.CustomerName); k != "" {
				distinct[k] = struct{}{}
			}
		}
	}

	if m == MeasurePolicies || m == MeasureHouseholds {
		return int64(len(distinct))
	}
	return total
}

// SelfGenKicker pays percent of the credited premium flagged as self-generated.
func SelfGenKicker(percent decimal.Decimal, credits []InsuredLine) (selfGenPremium, kicker int64) {
	for _, c := range credits {
		if c.SelfGenerated {
			selfGenPremium += c.NetPremium
		}
	}
	return selfGenPremium, percentOf(selfGenPremium, percent)
}

// ApplyBonusRules evaluates plan-level flat and percentage bonuses against net premium.
func ApplyBonusRules(rules []BonusRule, netPremium int64) ([]BonusLine, int64) {
	var lines []BonusLine
	var total int64
	for _, r := range rules {
		if netPremium < r.MinNetPremium {
			continue
		}
		var amount int64
		switch r.Kind {
		case BonusFlat:
			amount = r.AmountCents
		case BonusPercentage:
			amount = percentOf(netPremium, r.Percent)
		default:
			continue
		}
		if amount == 0 {
			continue
		}
		lines = append(lines, BonusLine{Name: r.Name, Kind: r.Kind, Amount: amount})
		total += amount
	}
	return lines, total
}

func withinDays(t, from, to time.Time) bool {
	d := dateOnly(t)
	return !d.Before(dateOnly(from)) && !d.After(dateOnly(to))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func normalizeKey(v string) string {
	return strings.ToLower(strings.Join(strings.Fields(v), " "))
}
