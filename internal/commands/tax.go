package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/fincast/fincast/internal/domain"
)

func newTaxCommand() *cobra.Command {
	var inputPath string
	var format string

	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Estimate progressive tax liability for a bracket table",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := loadInput(inputPath)
			if err != nil {
				return err
			}

			engine := newEngine(cmd)
			assessment, err := engine.Tax.Calculate(input.GrossIncome, input.TaxBrackets, input.Deductions)
			if err != nil {
				return err
			}

			report := &domain.Report{
				GeneratedAt: time.Now().UTC(),
				Tax:         &assessment,
			}
			return render(cmd, format, report)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to YAML records file (required)")
	_ = cmd.MarkFlagRequired("input")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, json)")

	return cmd
}
