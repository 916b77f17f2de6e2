package calculation

import (
	"errors"
	"fmt"

	"github.com/fincast/fincast/internal/domain"
	"github.com/fincast/fincast/pkg/percent"
	"github.com/shopspring/decimal"
)

// ErrInvalidBracketTable marks a bracket table the marching algorithm cannot
// run over: thresholds out of order or a non-zero first threshold.
var ErrInvalidBracketTable = errors.New("invalid tax bracket table")

// Fixed-rule hint thresholds. Each rule is a literal trigger over the
// computed assessment, not a generic rules engine.
var (
	hintDeductionFloor    = decimal.NewFromInt(13850)
	hintMarginalThreshold = decimal.NewFromInt(22)
)

// ProgressiveTaxEngine computes progressive tax liability by marching an
// ascending bracket table.
type ProgressiveTaxEngine struct {
	Logger Logger
}

// NewProgressiveTaxEngine creates a tax engine with a no-op logger.
func NewProgressiveTaxEngine() *ProgressiveTaxEngine {
	return &ProgressiveTaxEngine{Logger: NopLogger{}}
}

// ValidateBrackets checks the bracket table invariant: non-empty, first
// threshold zero, thresholds strictly ascending.
func ValidateBrackets(brackets []domain.TaxBracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("%w: table is empty", ErrInvalidBracketTable)
	}
	if !brackets[0].Threshold.IsZero() {
		return fmt.Errorf("%w: first threshold must be zero, got %s", ErrInvalidBracketTable, brackets[0].Threshold)
	}
	for i := 1; i < len(brackets); i++ {
		if !brackets[i].Threshold.GreaterThan(brackets[i-1].Threshold) {
			return fmt.Errorf("%w: thresholds not strictly ascending at index %d", ErrInvalidBracketTable, i)
		}
	}
	return nil
}

// Calculate computes tax owed, marginal and effective rates, and a per-bracket
// breakdown for the given gross income and deductions. Rates are percents
// (0-100). Negative deductions degrade to zero rather than failing.
func (te *ProgressiveTaxEngine) Calculate(grossIncome decimal.Decimal, brackets []domain.TaxBracket, deductions decimal.Decimal) (domain.TaxAssessment, error) {
	if err := ValidateBrackets(brackets); err != nil {
		return domain.TaxAssessment{}, err
	}

	if deductions.IsNegative() {
		deductions = decimal.Zero
	}
	taxableIncome := decimal.Max(grossIncome.Sub(deductions), decimal.Zero)

	var totalTax, marginalRate decimal.Decimal
	var breakdown []domain.BracketShare

	for i, bracket := range brackets {
		if taxableIncome.LessThanOrEqual(bracket.Threshold) {
			// All remaining brackets contribute nothing.
			break
		}
		upper := taxableIncome
		if i+1 < len(brackets) {
			upper = decimal.Min(taxableIncome, brackets[i+1].Threshold)
		}
		amount := upper.Sub(bracket.Threshold)
		if amount.LessThanOrEqual(decimal.Zero) {
			continue
		}
		tax := amount.Mul(percent.AsRate(bracket.Rate))
		totalTax = totalTax.Add(tax)
		marginalRate = bracket.Rate
		breakdown = append(breakdown, domain.BracketShare{
			Threshold: bracket.Threshold,
			Rate:      bracket.Rate,
			Amount:    amount,
			Tax:       tax,
		})
	}

	assessment := domain.TaxAssessment{
		TaxableIncome: taxableIncome,
		TotalTax:      totalTax,
		EffectiveRate: percent.Of(totalTax, grossIncome),
		MarginalRate:  marginalRate,
		Breakdown:     breakdown,
	}
	assessment.Hints = optimizationHints(deductions, assessment)
	te.Logger.Debugf("tax: taxable %s, total %s, marginal %s%%", taxableIncome, totalTax, marginalRate)
	return assessment, nil
}

// optimizationHints applies the fixed rule set over a computed assessment.
func optimizationHints(deductions decimal.Decimal, a domain.TaxAssessment) []domain.OptimizationHint {
	var hints []domain.OptimizationHint
	if deductions.LessThan(hintDeductionFloor) {
		hints = append(hints, domain.OptimizationHint{
			Code:    "standard_deduction",
			Message: "Deductions are below the standard deduction floor; claiming the standard deduction likely beats itemizing.",
		})
	}
	if a.MarginalRate.GreaterThanOrEqual(hintMarginalThreshold) {
		hints = append(hints, domain.OptimizationHint{
			Code:    "retirement_contributions",
			Message: "Marginal rate is 22% or higher; pre-tax retirement contributions reduce income taxed at that rate.",
		})
	}
	return hints
}
