package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashflowForecast is the output of a single forecast run.
type CashflowForecast struct {
	ProjectedIncome   decimal.Decimal    `json:"projected_income"`
	ProjectedExpenses decimal.Decimal    `json:"projected_expenses"`
	NetCashflow       decimal.Decimal    `json:"net_cashflow"`
	SavingsRate       decimal.Decimal    `json:"savings_rate"`
	MonthlyTrend      []MonthlyDataPoint `json:"monthly_trend"`
	MonthOverMonth    MonthOverMonth     `json:"month_over_month"`

	// Regression quality for the expense trend line.
	ExpenseTrendSlope    decimal.Decimal `json:"expense_trend_slope"`
	ExpenseTrendRSquared decimal.Decimal `json:"expense_trend_r_squared"`
}

// MonthOverMonth holds the percent change between the last two trend points.
type MonthOverMonth struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// TaxAssessment is the output of a progressive tax calculation. Rates are
// percents expressed 0-100.
type TaxAssessment struct {
	TaxableIncome decimal.Decimal    `json:"taxable_income"`
	TotalTax      decimal.Decimal    `json:"total_tax"`
	EffectiveRate decimal.Decimal    `json:"effective_rate"`
	MarginalRate  decimal.Decimal    `json:"marginal_rate"`
	Breakdown     []BracketShare     `json:"breakdown"`
	Hints         []OptimizationHint `json:"hints,omitempty"`
}

// BracketShare records the slice of taxable income that fell into one bracket.
type BracketShare struct {
	Threshold decimal.Decimal `json:"threshold"`
	Rate      decimal.Decimal `json:"rate"`
	Amount    decimal.Decimal `json:"amount"`
	Tax       decimal.Decimal `json:"tax"`
}

// OptimizationHint is a fixed-rule suggestion derived from a tax assessment.
type OptimizationHint struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DebtMilestone is a payoff progress marker. Ladder milestones carry a percent
// threshold; event milestones (individual debt cleared) carry a zero threshold
// and a descriptive label. Milestones are recomputed on every call, never stored.
type DebtMilestone struct {
	Label            string          `json:"label"`
	ThresholdPercent decimal.Decimal `json:"threshold_percent"`
	Reached          bool            `json:"reached"`
}

// DebtPortfolioSummary aggregates payoff progress across a debt portfolio.
// DebtFreeDate models paying minimums on everything with nothing extra, so the
// slowest-amortizing debt drives the date.
type DebtPortfolioSummary struct {
	DebtFreeDate    time.Time       `json:"debt_free_date"`
	DaysRemaining   int             `json:"days_remaining"`
	MonthsRemaining int             `json:"months_remaining"`
	ProgressPercent decimal.Decimal `json:"progress_percent"`
	Milestones      []DebtMilestone `json:"milestones"`
}

// PayoffMonth is one simulated month of a rolling payoff schedule.
type PayoffMonth struct {
	Month            int             `json:"month"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	InterestAccrued  decimal.Decimal `json:"interest_accrued"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// PayoffSchedule is the result of the month-by-month rolling simulation:
// minimums on all debts, extra payment to the top-ranked unpaid debt, freed
// minimums rolled into the pool once a debt clears.
type PayoffSchedule struct {
	Strategy      Strategy        `json:"strategy"`
	Months        int             `json:"months"`
	TotalInterest decimal.Decimal `json:"total_interest"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	PayoffOrder   []string        `json:"payoff_order"`
	Plan          []PayoffMonth   `json:"plan"`
	Truncated     bool            `json:"truncated"`
}

// StrategyOutcome summarizes one strategy's simulated cost.
type StrategyOutcome struct {
	Months        int             `json:"months"`
	TotalInterest decimal.Decimal `json:"total_interest"`
}

// StrategyComparison contrasts avalanche and snowball over the same portfolio.
// Positive savings mean avalanche comes out ahead.
type StrategyComparison struct {
	Avalanche     StrategyOutcome `json:"avalanche"`
	Snowball      StrategyOutcome `json:"snowball"`
	InterestSaved decimal.Decimal `json:"interest_saved"`
	MonthsSaved   int             `json:"months_saved"`
}

// DebtPlanReport bundles everything the debt command produces.
type DebtPlanReport struct {
	Strategy   Strategy             `json:"strategy"`
	Ranked     []Debt               `json:"ranked"`
	Summary    DebtPortfolioSummary `json:"summary"`
	Schedule   *PayoffSchedule      `json:"schedule,omitempty"`
	Comparison *StrategyComparison  `json:"comparison,omitempty"`
}

// Report is the top-level record handed to output formatters.
type Report struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Forecast    *CashflowForecast `json:"forecast,omitempty"`
	Tax         *TaxAssessment    `json:"tax,omitempty"`
	Debt        *DebtPlanReport   `json:"debt,omitempty"`
}
