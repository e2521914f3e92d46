package commission

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ValidateTiers checks the plan invariant: thresholds strictly increasing, rates non-negative.
func ValidateTiers(tiers []Tier) error {
	for i, t := range tiers {
		if t.CommissionRate.IsNegative() {
			return fmt.Errorf("%w (tier %d)", ErrNegativeCommissionRate, i)
		}
		if i == 0 {
			continue
		}
		prev := tiers[i-1].MinThreshold
		switch {
		case t.MinThreshold == prev:
			return fmt.Errorf("%w: %d", ErrDuplicateTierThreshold, t.MinThreshold)
		case t.MinThreshold < prev:
			return fmt.Errorf("%w: %d after %d", ErrNonMonotonicTierThreshold, t.MinThreshold, prev)
		}
	}
	return nil
}

// MatchTier returns the tier with the highest threshold not above netPremium.
// An unmatched result carries a zero rate. Malformed tiers are an error, never a guess.
func MatchTier(tiers []Tier, netPremium int64) (TierMatch, error) {
	if err := ValidateTiers(tiers); err != nil {
		return TierMatch{}, err
	}

	for i := len(tiers) - 1; i >= 0; i-- {
		if tiers[i].MinThreshold <= netPremium {
			return TierMatch{
				Matched:        true,
				Index:          i,
				MinThreshold:   tiers[i].MinThreshold,
				CommissionRate: tiers[i].CommissionRate,
			}, nil
		}
	}

	return TierMatch{Index: -1, CommissionRate: decimal.Zero}, nil
}

// percentOf returns amount * pct / 100 rounded half away from zero to whole cents.
func percentOf(amount int64, pct decimal.Decimal) int64 {
	if amount == 0 || pct.IsZero() {
		return 0
	}
	return decimal.NewFromInt(amount).Mul(pct).Div(hundred).Round(0).IntPart()
}
