package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/fincast/fincast/internal/domain"
)

func newForecastCommand() *cobra.Command {
	var inputPath string
	var format string

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Project next-month cashflow from income sources and history",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := loadInput(inputPath)
			if err != nil {
				return err
			}

			engine := newEngine(cmd)
			forecast := engine.Cashflow.Forecast(input.IncomeSources, input.History, input.EffectiveAsOf())

			report := &domain.Report{
				GeneratedAt: time.Now().UTC(),
				Forecast:    &forecast,
			}
			return render(cmd, format, report)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to YAML records file (required)")
	_ = cmd.MarkFlagRequired("input")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, json)")

	return cmd
}
