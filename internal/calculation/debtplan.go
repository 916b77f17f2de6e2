package calculation

import (
	"fmt"
	"sort"
	"time"

	"github.com/fincast/fincast/internal/domain"
	"github.com/fincast/fincast/pkg/dateutil"
	"github.com/fincast/fincast/pkg/percent"
	"github.com/shopspring/decimal"
)

// OriginalBalanceFallback selects how the planner fills in a missing original
// balance. The legacy product silently used current*1.1; here the policy is an
// explicit parameter.
type OriginalBalanceFallback int

const (
	// FallbackCurrentBalance treats the current balance as the original.
	FallbackCurrentBalance OriginalBalanceFallback = iota
	// FallbackInflateCurrent estimates the original as current*1.1, the
	// legacy heuristic.
	FallbackInflateCurrent
)

var inflateFactor = decimal.NewFromFloat(1.1)

// milestoneLadder is the fixed ascending ladder of progress thresholds.
var milestoneLadder = []int64{5, 10, 25, 33, 50, 66, 75, 90, 100}

// simulationHorizonCap bounds the rolling payoff simulation.
const simulationHorizonCap = 600

// DebtStrategyPlanner ranks a debt portfolio under a payoff strategy and
// derives aggregate payoff progress.
type DebtStrategyPlanner struct {
	Estimator *DebtAmortizationEstimator
	Fallback  OriginalBalanceFallback
	Logger    Logger
}

// NewDebtStrategyPlanner creates a planner with the current-balance fallback
// and a no-op logger.
func NewDebtStrategyPlanner() *DebtStrategyPlanner {
	return &DebtStrategyPlanner{
		Estimator: NewDebtAmortizationEstimator(),
		Fallback:  FallbackCurrentBalance,
		Logger:    NopLogger{},
	}
}

// originalBalance resolves a debt's original balance under the fallback policy.
func (p *DebtStrategyPlanner) originalBalance(d domain.Debt) decimal.Decimal {
	if d.OriginalBalance.IsPositive() {
		return d.OriginalBalance
	}
	if p.Fallback == FallbackInflateCurrent {
		return d.CurrentBalance.Mul(inflateFactor)
	}
	return d.CurrentBalance
}

// Rank returns the debts in payoff-priority order. Avalanche sorts by interest
// rate descending, snowball by original balance ascending; ties keep input
// order. The input slice is not modified.
func (p *DebtStrategyPlanner) Rank(debts []domain.Debt, strategy domain.Strategy) []domain.Debt {
	ranked := make([]domain.Debt, len(debts))
	copy(ranked, debts)
	switch strategy {
	case domain.StrategySnowball:
		sort.SliceStable(ranked, func(i, j int) bool {
			return p.originalBalance(ranked[i]).LessThan(p.originalBalance(ranked[j]))
		})
	default:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].InterestRate.GreaterThan(ranked[j].InterestRate)
		})
	}
	return ranked
}

// PortfolioSummary derives the projected debt-free date, paid-off progress and
// milestones as of the given date. The date models paying minimums on every
// debt with nothing extra, so the slowest-amortizing debt dominates.
func (p *DebtStrategyPlanner) PortfolioSummary(debts []domain.Debt, asOf time.Time) (domain.DebtPortfolioSummary, error) {
	if len(debts) == 0 {
		// No debts means debt-free, not a division by zero.
		return domain.DebtPortfolioSummary{
			DebtFreeDate: asOf,
			Milestones:   ladderMilestones(decimal.Zero),
		}, nil
	}

	var maxMonths int
	var sumOriginal, sumCurrent decimal.Decimal
	for _, d := range debts {
		months, err := p.Estimator.MonthsToPayoffDebt(d)
		if err != nil {
			return domain.DebtPortfolioSummary{}, fmt.Errorf("debt %q: %w", d.Name, err)
		}
		if months > maxMonths {
			maxMonths = months
		}
		sumOriginal = sumOriginal.Add(p.originalBalance(d))
		sumCurrent = sumCurrent.Add(d.CurrentBalance)
	}

	// Clamped so fees pushing current above original never yield negative
	// progress, and overpayment records never exceed 100.
	progress := percent.Clamp(percent.Of(sumOriginal.Sub(sumCurrent), sumOriginal))

	debtFreeDate := dateutil.AddMonths(asOf, maxMonths)
	summary := domain.DebtPortfolioSummary{
		DebtFreeDate:    debtFreeDate,
		DaysRemaining:   dateutil.DaysBetween(asOf, debtFreeDate),
		MonthsRemaining: maxMonths,
		ProgressPercent: progress,
		Milestones:      append(ladderMilestones(progress), p.eventMilestones(debts)...),
	}
	p.Logger.Debugf("portfolio: %d debts, progress %s%%, debt-free in %d months", len(debts), progress, maxMonths)
	return summary, nil
}

// ladderMilestones evaluates the fixed threshold ladder against progress.
func ladderMilestones(progress decimal.Decimal) []domain.DebtMilestone {
	milestones := make([]domain.DebtMilestone, 0, len(milestoneLadder))
	for _, threshold := range milestoneLadder {
		t := decimal.NewFromInt(threshold)
		milestones = append(milestones, domain.DebtMilestone{
			Label:            fmt.Sprintf("%d%% of debt repaid", threshold),
			ThresholdPercent: t,
			Reached:          progress.GreaterThanOrEqual(t),
		})
	}
	return milestones
}

// eventMilestones raises one-off markers: each individual debt cleared, plus
// strategy rewards when the highest-rate or smallest debt specifically clears.
func (p *DebtStrategyPlanner) eventMilestones(debts []domain.Debt) []domain.DebtMilestone {
	var milestones []domain.DebtMilestone
	highestRate := debts[0]
	smallest := debts[0]
	for _, d := range debts {
		if d.InterestRate.GreaterThan(highestRate.InterestRate) {
			highestRate = d
		}
		if p.originalBalance(d).LessThan(p.originalBalance(smallest)) {
			smallest = d
		}
		if d.CurrentBalance.IsZero() {
			milestones = append(milestones, domain.DebtMilestone{
				Label:   fmt.Sprintf("Paid off %s", d.Name),
				Reached: true,
			})
		}
	}
	if highestRate.CurrentBalance.IsZero() {
		milestones = append(milestones, domain.DebtMilestone{
			Label:   fmt.Sprintf("Highest-rate debt %s cleared", highestRate.Name),
			Reached: true,
		})
	}
	if smallest.CurrentBalance.IsZero() {
		milestones = append(milestones, domain.DebtMilestone{
			Label:   fmt.Sprintf("Smallest debt %s cleared", smallest.Name),
			Reached: true,
		})
	}
	return milestones
}

// SimulatePayoff runs the month-by-month rolling payoff: minimums on every
// debt, extra payment to the top-ranked unpaid debt, and each cleared debt's
// minimum rolled into the extra pool. The schedule is truncated (and flagged)
// if balances survive the horizon cap, which happens when payments cannot
// outrun interest.
func (p *DebtStrategyPlanner) SimulatePayoff(debts []domain.Debt, strategy domain.Strategy, extraPayment decimal.Decimal) (domain.PayoffSchedule, error) {
	for _, d := range debts {
		if err := ValidateDebt(d); err != nil {
			return domain.PayoffSchedule{}, fmt.Errorf("debt %q: %w", d.Name, err)
		}
	}
	if extraPayment.IsNegative() {
		extraPayment = decimal.Zero
	}

	ranked := p.Rank(debts, strategy)
	balances := make([]decimal.Decimal, len(ranked))
	rates := make([]decimal.Decimal, len(ranked))
	for i, d := range ranked {
		balances[i] = d.CurrentBalance
		rates[i] = percent.AsRate(d.InterestRate).Div(twelve)
	}

	schedule := domain.PayoffSchedule{Strategy: strategy}
	paid := make([]bool, len(ranked))
	remaining := len(ranked)
	for i := range ranked {
		if balances[i].IsZero() {
			paid[i] = true
			remaining--
		}
	}

	for month := 1; remaining > 0 && month <= simulationHorizonCap; month++ {
		var monthPaid, monthInterest decimal.Decimal
		pool := extraPayment

		for i := range ranked {
			if paid[i] {
				pool = pool.Add(ranked[i].MinimumPayment)
				continue
			}
			interest := balances[i].Mul(rates[i])
			balances[i] = balances[i].Add(interest)
			monthInterest = monthInterest.Add(interest)

			payment := decimal.Min(balances[i], ranked[i].MinimumPayment)
			balances[i] = balances[i].Sub(payment)
			monthPaid = monthPaid.Add(payment)
		}

		// Extra pool goes to the top-ranked unpaid debt; whatever is left
		// after clearing it cascades down the ranking within the same month.
		for i := range ranked {
			if pool.IsZero() {
				break
			}
			if paid[i] {
				continue
			}
			payment := decimal.Min(balances[i], pool)
			balances[i] = balances[i].Sub(payment)
			pool = pool.Sub(payment)
			monthPaid = monthPaid.Add(payment)
		}

		var totalBalance decimal.Decimal
		for i := range ranked {
			if !paid[i] && balances[i].IsZero() {
				paid[i] = true
				remaining--
				schedule.PayoffOrder = append(schedule.PayoffOrder, ranked[i].Name)
			}
			totalBalance = totalBalance.Add(balances[i])
		}

		schedule.Months = month
		schedule.TotalInterest = schedule.TotalInterest.Add(monthInterest)
		schedule.TotalPaid = schedule.TotalPaid.Add(monthPaid)
		schedule.Plan = append(schedule.Plan, domain.PayoffMonth{
			Month:            month,
			TotalPaid:        monthPaid,
			InterestAccrued:  monthInterest,
			RemainingBalance: totalBalance,
		})

		// Nothing can ever be paid; avoid spinning to the cap for nothing.
		if monthPaid.IsZero() && pool.IsZero() {
			schedule.Truncated = true
			break
		}
	}
	if remaining > 0 {
		schedule.Truncated = true
	}
	return schedule, nil
}

// CompareStrategies simulates both orderings over the same portfolio and
// reports the avalanche advantage (negative values mean snowball won).
func (p *DebtStrategyPlanner) CompareStrategies(debts []domain.Debt, extraPayment decimal.Decimal) (domain.StrategyComparison, error) {
	avalanche, err := p.SimulatePayoff(debts, domain.StrategyAvalanche, extraPayment)
	if err != nil {
		return domain.StrategyComparison{}, err
	}
	snowball, err := p.SimulatePayoff(debts, domain.StrategySnowball, extraPayment)
	if err != nil {
		return domain.StrategyComparison{}, err
	}
	return domain.StrategyComparison{
		Avalanche:     domain.StrategyOutcome{Months: avalanche.Months, TotalInterest: avalanche.TotalInterest},
		Snowball:      domain.StrategyOutcome{Months: snowball.Months, TotalInterest: snowball.TotalInterest},
		InterestSaved: snowball.TotalInterest.Sub(avalanche.TotalInterest),
		MonthsSaved:   snowball.Months - avalanche.Months,
	}, nil
}
