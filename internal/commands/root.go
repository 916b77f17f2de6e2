package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fincast/fincast/internal/calculation"
	"github.com/fincast/fincast/internal/config"
	"github.com/fincast/fincast/internal/domain"
	"github.com/fincast/fincast/internal/output"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fincast",
		Short: "Cashflow forecasting, tax estimation and debt payoff planning",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log engine diagnostics to stderr")

	rootCmd.AddCommand(newForecastCommand())
	rootCmd.AddCommand(newTaxCommand())
	rootCmd.AddCommand(newDebtCommand())

	return rootCmd
}

// newEngine builds the engine for a command run: verbose runs log to the
// command's error stream, everything else stays silent.
func newEngine(cmd *cobra.Command) *calculation.Engine {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return calculation.NewEngineWithLogger(&streamLogger{out: cmd.ErrOrStderr()})
	}
	return calculation.NewEngine()
}

// loadInput reads and validates the YAML record file backing a run.
func loadInput(path string) (*config.Input, error) {
	input, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading input: %w", err)
	}
	return input, nil
}

// render writes the report through the requested formatter.
func render(cmd *cobra.Command, format string, report *domain.Report) error {
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unknown output format %q", format)
	}
	data, err := formatter.Format(report)
	if err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
