package output

import (
	"bytes"
	"fmt"

	"github.com/fincast/fincast/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter provides a concise console-style summary via the formatter interface.
type ConsoleFormatter struct{}

// formatMoney renders a decimal as USD with 2 decimals.
func formatMoney(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// formatPercent renders a decimal percent with 2 decimals.
func formatPercent(p decimal.Decimal) string { return p.StringFixed(2) + "%" }

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer

	if report.Forecast != nil {
		c.writeForecast(&buf, report.Forecast)
	}
	if report.Tax != nil {
		c.writeTax(&buf, report.Tax)
	}
	if report.Debt != nil {
		c.writeDebt(&buf, report.Debt)
	}

	return buf.Bytes(), nil
}

func (c ConsoleFormatter) writeForecast(buf *bytes.Buffer, f *domain.CashflowForecast) {
	fmt.Fprintln(buf, "CASHFLOW FORECAST")
	fmt.Fprintln(buf, "================================")
	fmt.Fprintf(buf, "Projected Income:   %s\n", formatMoney(f.ProjectedIncome))
	fmt.Fprintf(buf, "Projected Expenses: %s\n", formatMoney(f.ProjectedExpenses))
	fmt.Fprintf(buf, "Net Cashflow:       %s\n", formatMoney(f.NetCashflow))
	fmt.Fprintf(buf, "Savings Rate:       %s\n", formatPercent(f.SavingsRate))
	fmt.Fprintf(buf, "MoM Income/Expenses: %s / %s\n",
		formatPercent(f.MonthOverMonth.Income), formatPercent(f.MonthOverMonth.Expenses))
	for _, point := range f.MonthlyTrend {
		fmt.Fprintf(buf, "  %s: income=%s expenses=%s\n",
			point.Month, formatMoney(point.Income), formatMoney(point.Expenses))
	}
	fmt.Fprintln(buf)
}

func (c ConsoleFormatter) writeTax(buf *bytes.Buffer, t *domain.TaxAssessment) {
	fmt.Fprintln(buf, "TAX ASSESSMENT")
	fmt.Fprintln(buf, "================================")
	fmt.Fprintf(buf, "Taxable Income: %s\n", formatMoney(t.TaxableIncome))
	fmt.Fprintf(buf, "Total Tax:      %s\n", formatMoney(t.TotalTax))
	fmt.Fprintf(buf, "Effective Rate: %s  Marginal Rate: %s\n",
		formatPercent(t.EffectiveRate), formatPercent(t.MarginalRate))
	for _, share := range t.Breakdown {
		fmt.Fprintf(buf, "  over %s @ %s: %s on %s\n",
			formatMoney(share.Threshold), formatPercent(share.Rate),
			formatMoney(share.Tax), formatMoney(share.Amount))
	}
	for _, hint := range t.Hints {
		fmt.Fprintf(buf, "  hint[%s]: %s\n", hint.Code, hint.Message)
	}
	fmt.Fprintln(buf)
}

func (c ConsoleFormatter) writeDebt(buf *bytes.Buffer, d *domain.DebtPlanReport) {
	fmt.Fprintf(buf, "DEBT PLAN (%s)\n", d.Strategy)
	fmt.Fprintln(buf, "================================")
	for i, debt := range d.Ranked {
		fmt.Fprintf(buf, "  %d. %s balance=%s rate=%s minimum=%s\n",
			i+1, debt.Name, formatMoney(debt.CurrentBalance),
			formatPercent(debt.InterestRate), formatMoney(debt.MinimumPayment))
	}
	fmt.Fprintf(buf, "Debt-free: %s (%d months, %d days)\n",
		d.Summary.DebtFreeDate.Format("2006-01-02"), d.Summary.MonthsRemaining, d.Summary.DaysRemaining)
	fmt.Fprintf(buf, "Progress:  %s\n", formatPercent(d.Summary.ProgressPercent))
	for _, m := range d.Summary.Milestones {
		marker := " "
		if m.Reached {
			marker = "x"
		}
		fmt.Fprintf(buf, "  [%s] %s\n", marker, m.Label)
	}
	if d.Schedule != nil {
		fmt.Fprintf(buf, "Rolling payoff: %d months, interest %s, paid %s\n",
			d.Schedule.Months, formatMoney(d.Schedule.TotalInterest), formatMoney(d.Schedule.TotalPaid))
		if d.Schedule.Truncated {
			fmt.Fprintln(buf, "  (truncated at simulation horizon)")
		}
	}
	if d.Comparison != nil {
		fmt.Fprintf(buf, "Avalanche vs snowball: saves %s and %d months\n",
			formatMoney(d.Comparison.InterestSaved), d.Comparison.MonthsSaved)
	}
	fmt.Fprintln(buf)
}
