package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/fincast/fincast/internal/calculation"
	"github.com/fincast/fincast/internal/config"
	"github.com/fincast/fincast/internal/domain"
)

func newDebtCommand() *cobra.Command {
	var inputPath string
	var format string
	var compare bool

	cmd := &cobra.Command{
		Use:   "debt",
		Short: "Rank debts, track payoff progress and simulate a rolling plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := loadInput(inputPath)
			if err != nil {
				return err
			}

			engine := newEngine(cmd)
			plan, err := buildDebtPlan(engine.Planner, input, compare)
			if err != nil {
				return err
			}

			report := &domain.Report{
				GeneratedAt: time.Now().UTC(),
				Debt:        plan,
			}
			return render(cmd, format, report)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to YAML records file (required)")
	_ = cmd.MarkFlagRequired("input")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, json)")
	cmd.Flags().BoolVar(&compare, "compare", false, "also simulate the other strategy and report the difference")

	return cmd
}

func buildDebtPlan(planner *calculation.DebtStrategyPlanner, input *config.Input, compare bool) (*domain.DebtPlanReport, error) {
	strategy := input.EffectiveStrategy()

	summary, err := planner.PortfolioSummary(input.Debts, input.EffectiveAsOf())
	if err != nil {
		return nil, err
	}

	schedule, err := planner.SimulatePayoff(input.Debts, strategy, input.ExtraPayment)
	if err != nil {
		return nil, err
	}

	plan := &domain.DebtPlanReport{
		Strategy: strategy,
		Ranked:   planner.Rank(input.Debts, strategy),
		Summary:  summary,
		Schedule: &schedule,
	}

	if compare {
		comparison, err := planner.CompareStrategies(input.Debts, input.ExtraPayment)
		if err != nil {
			return nil, err
		}
		plan.Comparison = &comparison
	}

	return plan, nil
}
