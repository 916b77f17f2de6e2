package calculation

import (
	"testing"
	"time"

	"github.com/fincast/fincast/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var planDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func debt(name string, balance, rate, minimum float64) domain.Debt {
	return domain.Debt{
		Name:           name,
		CurrentBalance: decimal.NewFromFloat(balance),
		InterestRate:   decimal.NewFromFloat(rate),
		MinimumPayment: decimal.NewFromFloat(minimum),
	}
}

// TestRankOrdering pins the avalanche vs snowball fixture.
func TestRankOrdering(t *testing.T) {
	planner := NewDebtStrategyPlanner()
	debts := []domain.Debt{
		debt("low-rate", 1000, 5, 50),
		debt("high-rate", 500, 20, 25),
	}

	avalanche := planner.Rank(debts, domain.StrategyAvalanche)
	require.Len(t, avalanche, 2)
	assert.Equal(t, "high-rate", avalanche[0].Name, "avalanche leads with the highest rate")
	assert.Equal(t, "low-rate", avalanche[1].Name)

	snowball := planner.Rank(debts, domain.StrategySnowball)
	assert.Equal(t, "high-rate", snowball[0].Name, "snowball leads with the smallest balance")
	assert.Equal(t, "low-rate", snowball[1].Name)

	// The input order must survive ranking of the original slice.
	assert.Equal(t, "low-rate", debts[0].Name)
}

// TestRankTiesKeepInsertionOrder verifies stable sorting.
func TestRankTiesKeepInsertionOrder(t *testing.T) {
	planner := NewDebtStrategyPlanner()
	debts := []domain.Debt{
		debt("first", 800, 15, 40),
		debt("second", 800, 15, 40),
		debt("third", 800, 15, 40),
	}

	ranked := planner.Rank(debts, domain.StrategyAvalanche)
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{ranked[0].Name, ranked[1].Name, ranked[2].Name})
}

// TestRankSnowballUsesOriginalBalance: snowball orders by original balance
// when present, falling back to current.
func TestRankSnowballUsesOriginalBalance(t *testing.T) {
	planner := NewDebtStrategyPlanner()
	shrunk := debt("shrunk", 100, 10, 20)
	shrunk.OriginalBalance = decimal.NewFromInt(5000)
	debts := []domain.Debt{shrunk, debt("steady", 900, 10, 20)}

	ranked := planner.Rank(debts, domain.StrategySnowball)
	assert.Equal(t, "steady", ranked[0].Name, "original balance, not current, drives snowball order")
}

// TestPortfolioSummary checks date math, progress and the milestone ladder.
func TestPortfolioSummary(t *testing.T) {
	planner := NewDebtStrategyPlanner()
	card := debt("card", 5000, 0, 500)
	card.OriginalBalance = decimal.NewFromInt(10000)
	loan := debt("loan", 1000, 0, 500)
	loan.OriginalBalance = decimal.NewFromInt(2000)

	summary, err := planner.PortfolioSummary([]domain.Debt{card, loan}, planDate)
	require.NoError(t, err)

	// Slowest debt: card at 5000/500 = 10 months.
	assert.Equal(t, 10, summary.MonthsRemaining)
	assert.Equal(t, planDate.AddDate(0, 10, 0), summary.DebtFreeDate)
	assert.Greater(t, summary.DaysRemaining, 0)

	// (12000 - 6000) / 12000 = 50%
	assertDecimalNear(t, decimal.NewFromInt(50), summary.ProgressPercent, "progress percent")

	reached := map[string]bool{}
	for _, m := range summary.Milestones {
		if !m.ThresholdPercent.IsZero() {
			reached[m.ThresholdPercent.String()] = m.Reached
		}
	}
	assert.True(t, reached["5"])
	assert.True(t, reached["50"])
	assert.False(t, reached["66"])
	assert.False(t, reached["100"])
}

// TestPortfolioSummaryProgressClamp: fees pushing current above original must
// clamp at 0, and overshoot below zero balances never exceeds 100.
func TestPortfolioSummaryProgressClamp(t *testing.T) {
	planner := NewDebtStrategyPlanner()
	grown := debt("grown", 1200, 0, 100)
	grown.OriginalBalance = decimal.NewFromInt(1000)

	summary, err := planner.PortfolioSummary([]domain.Debt{grown}, planDate)
	require.NoError(t, err)
	assert.True(t, summary.ProgressPercent.IsZero(), "progress below zero must clamp, got %s", summary.ProgressPercent)
	assert.True(t, summary.ProgressPercent.LessThanOrEqual(decimal.NewFromInt(100)))
}

// TestPortfolioSummaryEmpty treats no debts as debt-free, not divide-by-zero.
func TestPortfolioSummaryEmpty(t *testing.T) {
	planner := NewDebtStrategyPlanner()
	summary, err := planner.PortfolioSummary(nil, planDate)
	require.NoError(t, err)
	assert.Equal(t, planDate, summary.DebtFreeDate)
	assert.Equal(t, 0, summary.MonthsRemaining)
	assert.True(t, summary.ProgressPercent.IsZero())
}

// TestPortfolioSummaryEventMilestones: clearing a debt raises one-off markers,
// including the strategy rewards.
func TestPortfolioSummaryEventMilestones(t *testing.T) {
	planner := NewDebtStrategyPlanner()
	cleared := debt("cleared-card", 0, 25, 0)
	cleared.OriginalBalance = decimal.NewFromInt(3000)
	open := debt("open-loan", 4000, 6, 200)
	open.OriginalBalance = decimal.NewFromInt(5000)

	summary, err := planner.PortfolioSummary([]domain.Debt{cleared, open}, planDate)
	require.NoError(t, err)

	labels := map[string]bool{}
	for _, m := range summary.Milestones {
		if m.ThresholdPercent.IsZero() && m.Reached {
			labels[m.Label] = true
		}
	}
	assert.True(t, labels["Paid off cleared-card"])
	assert.True(t, labels["Highest-rate debt cleared-card cleared"])
	assert.True(t, labels["Smallest debt cleared-card cleared"])
}

// TestPortfolioSummaryInvalidDebt surfaces the input validation error.
func TestPortfolioSummaryInvalidDebt(t *testing.T) {
	planner := NewDebtStrategyPlanner()
	bad := debt("bad", -100, 5, 50)
	_, err := planner.PortfolioSummary([]domain.Debt{bad}, planDate)
	assert.ErrorIs(t, err, ErrInvalidDebtInput)
}

// TestOriginalBalanceFallbackPolicies pins both named policies.
func TestOriginalBalanceFallbackPolicies(t *testing.T) {
	d := debt("no-history", 1000, 0, 100)

	planner := NewDebtStrategyPlanner()
	summary, err := planner.PortfolioSummary([]domain.Debt{d}, planDate)
	require.NoError(t, err)
	assert.True(t, summary.ProgressPercent.IsZero(), "current-balance fallback shows no progress")

	planner.Fallback = FallbackInflateCurrent
	summary, err = planner.PortfolioSummary([]domain.Debt{d}, planDate)
	require.NoError(t, err)
	// original = 1100, progress = 100/1100 ≈ 9.09%
	assertDecimalNear(t, decimal.NewFromFloat(9.09), summary.ProgressPercent, "inflate-current fallback")
}

// TestSimulatePayoffSingleDebt: a zero-rate debt amortizes by simple division.
func TestSimulatePayoffSingleDebt(t *testing.T) {
	planner := NewDebtStrategyPlanner()
	schedule, err := planner.SimulatePayoff([]domain.Debt{debt("loan", 1000, 0, 100)}, domain.StrategyAvalanche, decimal.Zero)
	require.NoError(t, err)

	assert.Equal(t, 10, schedule.Months)
	assert.False(t, schedule.Truncated)
	assert.Equal(t, []string{"loan"}, schedule.PayoffOrder)
	assertDecimalNear(t, decimal.NewFromInt(1000), schedule.TotalPaid, "total paid")
	assert.True(t, schedule.TotalInterest.IsZero())
	require.Len(t, schedule.Plan, 10)
	assert.True(t, schedule.Plan[9].RemainingBalance.IsZero())
}

// TestSimulatePayoffRollsFreedMinimums: once the small debt clears, its
// minimum joins the pool and accelerates the next debt.
func TestSimulatePayoffRollsFreedMinimums(t *testing.T) {
	planner := NewDebtStrategyPlanner()
	debts := []domain.Debt{
		debt("small", 300, 0, 100),
		debt("large", 600, 0, 100),
	}

	schedule, err := planner.SimulatePayoff(debts, domain.StrategySnowball, decimal.Zero)
	require.NoError(t, err)

	// small clears in month 3; large then receives 200/month: 600-300=300,
	// month 4 -> 100 left, month 5 -> done.
	assert.Equal(t, 5, schedule.Months)
	assert.Equal(t, []string{"small", "large"}, schedule.PayoffOrder)
	assertDecimalNear(t, decimal.NewFromInt(900), schedule.TotalPaid, "total paid")
}

// TestSimulatePayoffExtraPaymentTargetsTopRanked: extra goes to the highest
// rate under avalanche.
func TestSimulatePayoffExtraPaymentTargetsTopRanked(t *testing.T) {
	planner := NewDebtStrategyPlanner()
	debts := []domain.Debt{
		debt("cheap", 2000, 3, 50),
		debt("expensive", 2000, 28, 50),
	}

	schedule, err := planner.SimulatePayoff(debts, domain.StrategyAvalanche, decimal.NewFromInt(400))
	require.NoError(t, err)
	require.NotEmpty(t, schedule.PayoffOrder)
	assert.Equal(t, "expensive", schedule.PayoffOrder[0])
	assert.False(t, schedule.Truncated)
}

// TestSimulatePayoffExtraCascades: leftover pool after clearing the top debt
// flows to the next-ranked debt in the same month instead of being lost.
func TestSimulatePayoffExtraCascades(t *testing.T) {
	planner := NewDebtStrategyPlanner()
	debts := []domain.Debt{
		debt("first", 50, 0, 10),
		debt("second", 500, 0, 10),
	}

	schedule, err := planner.SimulatePayoff(debts, domain.StrategyAvalanche, decimal.NewFromInt(100))
	require.NoError(t, err)

	// Month 1: minimums bring first to 40 and second to 490; the 100 pool
	// clears first and the remaining 60 lands on second (430 left). Months
	// 2-5 pay 120 each (minimum plus the 110 pool), so 5 months total.
	assert.Equal(t, 5, schedule.Months)
	assert.Equal(t, []string{"first", "second"}, schedule.PayoffOrder)
	assertDecimalNear(t, decimal.NewFromInt(550), schedule.TotalPaid, "total paid")
	require.Len(t, schedule.Plan, 5)
	assertDecimalNear(t, decimal.NewFromInt(430), schedule.Plan[0].RemainingBalance, "month 1 balance")
}

// TestSimulatePayoffTruncates when nothing can ever be paid.
func TestSimulatePayoffTruncates(t *testing.T) {
	planner := NewDebtStrategyPlanner()
	schedule, err := planner.SimulatePayoff([]domain.Debt{debt("stuck", 1000, 10, 0)}, domain.StrategyAvalanche, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, schedule.Truncated)
	assert.Empty(t, schedule.PayoffOrder)
}

// TestCompareStrategies: avalanche should never pay more interest than
// snowball on a portfolio where rates and balances are inverted.
func TestCompareStrategies(t *testing.T) {
	planner := NewDebtStrategyPlanner()
	debts := []domain.Debt{
		debt("big-expensive", 8000, 24, 200),
		debt("small-cheap", 1500, 4, 75),
	}

	comparison, err := planner.CompareStrategies(debts, decimal.NewFromInt(300))
	require.NoError(t, err)

	assert.True(t, comparison.InterestSaved.GreaterThanOrEqual(decimal.Zero),
		"avalanche should save interest here, got %s", comparison.InterestSaved)
	assert.Greater(t, comparison.Avalanche.Months, 0)
	assert.Greater(t, comparison.Snowball.Months, 0)
}
