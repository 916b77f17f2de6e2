package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency identifies how often a recurring amount repeats.
type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiWeekly  Frequency = "bi-weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyAnnually  Frequency = "annually"
	FrequencyOneTime   Frequency = "one-time"
)

// IncomeSource is a recurring (or one-time) income record as supplied by the
// record store. The engine reads a snapshot and never mutates it.
type IncomeSource struct {
	Name      string          `json:"name" yaml:"name"`
	Amount    decimal.Decimal `json:"amount" yaml:"amount"`
	Frequency Frequency       `json:"frequency" yaml:"frequency"`
	Taxable   bool            `json:"taxable" yaml:"taxable"`
	StartDate *time.Time      `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   *time.Time      `json:"end_date,omitempty" yaml:"end_date,omitempty"`
}

// ActiveAt reports whether the source is active for a forecast anchored at the
// given date. Missing bounds mean the source is always active on that side.
func (s IncomeSource) ActiveAt(at time.Time) bool {
	if s.StartDate != nil && at.Before(*s.StartDate) {
		return false
	}
	if s.EndDate != nil && at.After(*s.EndDate) {
		return false
	}
	return true
}

// MonthlyDataPoint is one observed month of aggregated income and expense
// totals. Month is a year-month key in the form "2006-01".
type MonthlyDataPoint struct {
	Month    string          `json:"month" yaml:"month"`
	Income   decimal.Decimal `json:"income" yaml:"income"`
	Expenses decimal.Decimal `json:"expenses" yaml:"expenses"`
}

// TaxBracket is one row of a progressive bracket table. Threshold is the lower
// bound of the bracket; Rate is a percent expressed 0-100. Tables must be
// sorted ascending by threshold with the first threshold at zero.
type TaxBracket struct {
	Threshold decimal.Decimal `json:"threshold" yaml:"threshold"`
	Rate      decimal.Decimal `json:"rate" yaml:"rate"`
}

// Debt is a single liability snapshot. InterestRate is an annual percent.
// OriginalBalance may be zero when the opening balance is unknown; the planner
// applies an explicit fallback policy in that case.
type Debt struct {
	Name            string          `json:"name" yaml:"name"`
	CurrentBalance  decimal.Decimal `json:"current_balance" yaml:"current_balance"`
	InterestRate    decimal.Decimal `json:"interest_rate" yaml:"interest_rate"`
	MinimumPayment  decimal.Decimal `json:"minimum_payment" yaml:"minimum_payment"`
	OriginalBalance decimal.Decimal `json:"original_balance,omitempty" yaml:"original_balance,omitempty"`
}

// Strategy selects the debt payoff ordering rule.
type Strategy string

const (
	StrategyAvalanche Strategy = "avalanche"
	StrategySnowball  Strategy = "snowball"
)
