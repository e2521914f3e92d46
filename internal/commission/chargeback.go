package commission

import "fmt"

// ThreeMonthWindowDays is the in-force duration after which a cancellation is no longer charged back.
const ThreeMonthWindowDays = 90

type ChargebackOutcome struct {
	ChargebackPremium    int64
	ChargebackCommission int64
	ExcludedCount        int
	MissingDaysInForce   []string
	Lines                []ChargebackLine
}

// ApplyChargebackRule decides, per chargeback insured, whether it reduces premium and commission.
//
// Under three_month an entry is excluded only when its in-force duration is known and exceeds
// ThreeMonthWindowDays. Entries without a duration are charged back and reported in
// MissingDaysInForce so the caller can surface them.
func ApplyChargebackRule(rule ChargebackRule, insureds []InsuredLine) (ChargebackOutcome, error) {
	if !rule.Valid() {
		return ChargebackOutcome{}, fmt.Errorf("%w: %q", ErrUnknownChargebackRule, rule)
	}

	out := ChargebackOutcome{Lines: make([]ChargebackLine, 0, len(insureds))}
	for _, ins := range insureds {
		line := ChargebackLine{InsuredLine: ins}

		switch rule {
		case ChargebackNone:
		case ChargebackFull:
			line.Applied = true
		case ChargebackThreeMonth:
			switch {
			case ins.DaysInForce == nil:
				line.Applied = true
				line.MissingDaysInForce = true
				out.MissingDaysInForce = append(out.MissingDaysInForce, ins.InsuredName)
			case *ins.DaysInForce > ThreeMonthWindowDays:
				line.Excluded = true
				out.ExcludedCount++
			default:
				line.Applied = true
			}
		}

		if line.Applied {
			out.ChargebackPremium += abs64(ins.NetPremium)
			out.ChargebackCommission += abs64(ins.NetCommission)
		}
		out.Lines = append(out.Lines, line)
	}

	return out, nil
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
