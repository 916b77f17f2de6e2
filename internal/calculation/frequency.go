package calculation

import (
	"github.com/fincast/fincast/internal/domain"
	"github.com/shopspring/decimal"
)

// Monthly conversion factors for each recurrence frequency. The multipliers
// are the historical product constants (30.42 days, 4.33 weeks, 2.17
// fortnights per standard month) and must stay bit-for-bit stable.
var (
	factorDaily    = decimal.NewFromFloat(30.42)
	factorWeekly   = decimal.NewFromFloat(4.33)
	factorBiWeekly = decimal.NewFromFloat(2.17)

	three  = decimal.NewFromInt(3)
	twelve = decimal.NewFromInt(12)
)

// MonthlyEquivalent converts an amount at the given recurrence frequency to
// its standard-month equivalent. One-time amounts are spread across a year.
// Unknown frequencies pass through as monthly; the value is best-effort
// telemetry, so a bad frequency string degrades rather than errors.
func MonthlyEquivalent(amount decimal.Decimal, freq domain.Frequency) decimal.Decimal {
	switch freq {
	case domain.FrequencyDaily:
		return amount.Mul(factorDaily)
	case domain.FrequencyWeekly:
		return amount.Mul(factorWeekly)
	case domain.FrequencyBiWeekly:
		return amount.Mul(factorBiWeekly)
	case domain.FrequencyQuarterly:
		return amount.Div(three)
	case domain.FrequencyAnnually, domain.FrequencyOneTime:
		return amount.Div(twelve)
	default:
		return amount
	}
}

// AnnualEquivalent is the monthly equivalent scaled to a year.
func AnnualEquivalent(amount decimal.Decimal, freq domain.Frequency) decimal.Decimal {
	return MonthlyEquivalent(amount, freq).Mul(twelve)
}
