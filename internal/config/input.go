package config

import (
	"fmt"
	"os"
	"time"

	"github.com/fincast/fincast/internal/calculation"
	"github.com/fincast/fincast/internal/domain"
	"github.com/fincast/fincast/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Input is the full set of records a projection run can consume. Every
// section is optional; each command validates only the sections it needs.
type Input struct {
	AsOf          *time.Time                `yaml:"as_of,omitempty"`
	IncomeSources []domain.IncomeSource     `yaml:"income_sources,omitempty"`
	History       []domain.MonthlyDataPoint `yaml:"history,omitempty"`
	GrossIncome   decimal.Decimal           `yaml:"gross_income,omitempty"`
	Deductions    decimal.Decimal           `yaml:"deductions,omitempty"`
	TaxBrackets   []domain.TaxBracket       `yaml:"tax_brackets,omitempty"`
	Debts         []domain.Debt             `yaml:"debts,omitempty"`
	Strategy      domain.Strategy           `yaml:"strategy,omitempty"`
	ExtraPayment  decimal.Decimal           `yaml:"extra_payment,omitempty"`
}

// EffectiveAsOf resolves the forecast anchor date, defaulting to now.
func (in *Input) EffectiveAsOf() time.Time {
	if in.AsOf != nil {
		return *in.AsOf
	}
	return time.Now().UTC()
}

// EffectiveStrategy resolves the payoff strategy, defaulting to avalanche.
func (in *Input) EffectiveStrategy() domain.Strategy {
	if in.Strategy == "" {
		return domain.StrategyAvalanche
	}
	return in.Strategy
}

// InputParser handles parsing of input record files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads records from a YAML file and validates them.
func (ip *InputParser) LoadFromFile(filename string) (*Input, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Load(data)
}

// Load parses and validates YAML record data.
func (ip *InputParser) Load(data []byte) (*Input, error) {
	var input Input
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.Validate(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	return &input, nil
}

// Validate checks the required-input invariants. Optional fields are left to
// the engine's degrade-gracefully defaults.
func (ip *InputParser) Validate(input *Input) error {
	for i, point := range input.History {
		if _, err := dateutil.ParseMonthKey(point.Month); err != nil {
			return fmt.Errorf("history entry %d: %w", i, err)
		}
	}
	if len(input.TaxBrackets) > 0 {
		if err := calculation.ValidateBrackets(input.TaxBrackets); err != nil {
			return err
		}
	}
	for _, d := range input.Debts {
		if err := calculation.ValidateDebt(d); err != nil {
			return fmt.Errorf("debt %q: %w", d.Name, err)
		}
	}
	switch input.Strategy {
	case "", domain.StrategyAvalanche, domain.StrategySnowball:
	default:
		return fmt.Errorf("unknown strategy %q", input.Strategy)
	}
	if input.GrossIncome.IsNegative() {
		return fmt.Errorf("gross income cannot be negative")
	}
	return nil
}
