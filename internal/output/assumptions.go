package output

import (
	"fmt"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultAssumptions lists the modeling conventions shared by every projection.
var DefaultAssumptions = []string{
	"Rates are nominal annual percentages divided evenly across the periods of a year",
	"Contributions and cash flows are added at the end of each period",
	"Cash invested counts only positive period flows",
}

// GenerateAssumptions describes the inputs of one scenario in plain language.
func GenerateAssumptions(in domain.ProjectionInput, currency string) []string {
	in = in.Normalized()
	lines := []string{
		fmt.Sprintf("%d periods (%d per year)", in.HorizonPeriods, in.PeriodsPerYear),
	}
	if len(in.Allocation) == 0 {
		lines = append(lines, fmt.Sprintf("Return: %s annually", FormatPercentage(in.AnnualReturnRate)))
	} else {
		for _, b := range in.Allocation {
			lines = append(lines, fmt.Sprintf("%s: %s of flows, %s annually", b.Name, FormatShare(b.Weight), FormatPercentage(b.AnnualReturnRate)))
		}
	}
	if !in.PeriodicIncome.IsZero() {
		lines = append(lines, fmt.Sprintf("Income: %s per period, growing %s annually", FormatCurrency(in.PeriodicIncome, currency), FormatPercentage(in.IncomeGrowthRate)))
	}
	if !in.PeriodicExpense.IsZero() {
		lines = append(lines, fmt.Sprintf("Expense: %s per period, inflating %s annually", FormatCurrency(in.PeriodicExpense, currency), FormatPercentage(in.AnnualInflationRate)))
	}
	if in.Loan != nil {
		lines = append(lines, fmt.Sprintf("Loan: %s at %s over %d periods", FormatCurrency(in.Loan.Principal, currency), FormatPercentage(in.Loan.AnnualRate), in.Loan.TermPeriods))
	}
	return lines
}

var decimalHundred = decimal.NewFromInt(100)
