package calculation

import (
	"sort"
	"time"

	"github.com/fincast/fincast/internal/domain"
	"github.com/fincast/fincast/pkg/percent"
	"github.com/shopspring/decimal"
)

// CashflowForecastEngine combines normalized recurring incomes with observed
// monthly totals to produce a forward-looking cashflow forecast.
type CashflowForecastEngine struct {
	Trend  TrendProjector
	Logger Logger
}

// NewCashflowForecastEngine creates a forecast engine with a no-op logger.
func NewCashflowForecastEngine() *CashflowForecastEngine {
	return &CashflowForecastEngine{Logger: NopLogger{}}
}

// Forecast produces projected income/expenses, net cashflow, savings rate and
// month-over-month deltas as of the given date.
//
// Recurring incomes active at asOf are added into every historical month
// bucket, not just going forward, so recent trend lines reflect steady-state
// recurring income.
func (ce *CashflowForecastEngine) Forecast(sources []domain.IncomeSource, history []domain.MonthlyDataPoint, asOf time.Time) domain.CashflowForecast {
	var recurringMonthly decimal.Decimal
	activeSources := 0
	for _, src := range sources {
		if !src.ActiveAt(asOf) {
			continue
		}
		activeSources++
		recurringMonthly = recurringMonthly.Add(MonthlyEquivalent(src.Amount, src.Frequency))
	}
	ce.Logger.Debugf("forecast: %d active sources, recurring monthly %s", activeSources, recurringMonthly)

	// Month keys sort lexicographically in chronological order.
	trend := make([]domain.MonthlyDataPoint, len(history))
	copy(trend, history)
	sort.SliceStable(trend, func(i, j int) bool { return trend[i].Month < trend[j].Month })
	for i := range trend {
		trend[i].Income = trend[i].Income.Add(recurringMonthly)
	}

	incomeSeries := make([]decimal.Decimal, len(trend))
	expenseSeries := make([]decimal.Decimal, len(trend))
	for i, p := range trend {
		incomeSeries[i] = p.Income
		expenseSeries[i] = p.Expenses
	}

	// With at least one active recurring source the projection is the
	// deterministic sum of monthly equivalents; regression is the fallback.
	projectedIncome := recurringMonthly
	if activeSources == 0 {
		projectedIncome = ce.Trend.ProjectNext(incomeSeries)
	}
	projectedExpenses := ce.Trend.ProjectNext(expenseSeries)
	expenseFit := ce.Trend.Fit(expenseSeries)

	netCashflow := projectedIncome.Sub(projectedExpenses)
	savingsRate := percent.Of(netCashflow, projectedIncome)

	var mom domain.MonthOverMonth
	if len(trend) >= 2 {
		prev := trend[len(trend)-2]
		last := trend[len(trend)-1]
		mom.Income = percent.Change(prev.Income, last.Income)
		mom.Expenses = percent.Change(prev.Expenses, last.Expenses)
	}

	return domain.CashflowForecast{
		ProjectedIncome:      projectedIncome,
		ProjectedExpenses:    projectedExpenses,
		NetCashflow:          netCashflow,
		SavingsRate:          savingsRate,
		MonthlyTrend:         trend,
		MonthOverMonth:       mom,
		ExpenseTrendSlope:    expenseFit.Slope,
		ExpenseTrendRSquared: expenseFit.RSquared,
	}
}
