package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/fincast/fincast/internal/domain"
	"github.com/fincast/fincast/pkg/percent"
	"github.com/shopspring/decimal"
)

// ErrInvalidDebtInput marks a debt snapshot with negative required fields.
var ErrInvalidDebtInput = errors.New("invalid debt input")

// PayoffHorizonCap bounds the estimate at 30 years for debts that never
// amortize (payment does not cover accruing interest) or have no defined
// repayment.
const PayoffHorizonCap = 360

// DebtAmortizationEstimator estimates months-to-payoff via the closed-form
// amortization formula.
type DebtAmortizationEstimator struct {
	Logger Logger
}

// NewDebtAmortizationEstimator creates an estimator with a no-op logger.
func NewDebtAmortizationEstimator() *DebtAmortizationEstimator {
	return &DebtAmortizationEstimator{Logger: NopLogger{}}
}

// ValidateDebt checks the required-field invariants of a debt snapshot.
func ValidateDebt(d domain.Debt) error {
	if d.CurrentBalance.IsNegative() {
		return fmt.Errorf("%w: current balance %s is negative", ErrInvalidDebtInput, d.CurrentBalance)
	}
	if d.InterestRate.IsNegative() {
		return fmt.Errorf("%w: interest rate %s is negative", ErrInvalidDebtInput, d.InterestRate)
	}
	if d.MinimumPayment.IsNegative() {
		return fmt.Errorf("%w: minimum payment %s is negative", ErrInvalidDebtInput, d.MinimumPayment)
	}
	return nil
}

// MonthsToPayoff estimates whole months until the balance reaches zero at the
// given annual rate (percent) and fixed monthly payment, capped at
// PayoffHorizonCap. Results are rounded up. A zero payment means repayment is
// undefined and returns the cap; a payment that does not cover monthly
// interest never amortizes and also returns the cap.
func (e *DebtAmortizationEstimator) MonthsToPayoff(balance, annualRatePercent, payment decimal.Decimal) (int, error) {
	if balance.IsNegative() || annualRatePercent.IsNegative() || payment.IsNegative() {
		return 0, fmt.Errorf("%w: balance %s, rate %s, payment %s", ErrInvalidDebtInput, balance, annualRatePercent, payment)
	}
	if balance.IsZero() {
		return 0, nil
	}
	if payment.IsZero() {
		return PayoffHorizonCap, nil
	}

	monthlyRate := percent.AsRate(annualRatePercent).Div(twelve)
	if monthlyRate.IsZero() {
		months := int(balance.Div(payment).Ceil().IntPart())
		return capMonths(months), nil
	}

	monthlyInterest := balance.Mul(monthlyRate)
	if payment.LessThanOrEqual(monthlyInterest) {
		e.Logger.Warnf("payment %s does not cover monthly interest %s; capping at %d months", payment, monthlyInterest, PayoffHorizonCap)
		return PayoffHorizonCap, nil
	}

	// months = ln(p / (p - b*r)) / ln(1 + r)
	p := payment.InexactFloat64()
	br := monthlyInterest.InexactFloat64()
	r := monthlyRate.InexactFloat64()
	raw := math.Log(p/(p-br)) / math.Log(1+r)
	if math.IsNaN(raw) || math.IsInf(raw, 0) || raw < 0 {
		return PayoffHorizonCap, nil
	}
	return capMonths(int(math.Ceil(raw))), nil
}

// MonthsToPayoffDebt is MonthsToPayoff over a debt record.
func (e *DebtAmortizationEstimator) MonthsToPayoffDebt(d domain.Debt) (int, error) {
	if err := ValidateDebt(d); err != nil {
		return 0, err
	}
	return e.MonthsToPayoff(d.CurrentBalance, d.InterestRate, d.MinimumPayment)
}

func capMonths(months int) int {
	if months > PayoffHorizonCap {
		return PayoffHorizonCap
	}
	return months
}
