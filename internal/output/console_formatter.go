package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/rpgo/finplan/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	cur := results.Currency
	fmt.Fprintln(&buf, "WEALTH PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		if sc.Result == nil {
			continue
		}
		r := sc.Result
		fmt.Fprintf(&buf, "%s: Final=%s Invested=%s Profit=%s (%s)\n",
			sc.Name,
			FormatCurrency(r.FinalWealth, cur),
			FormatCurrency(r.TotalInvested, cur),
			FormatCurrency(r.Profit, cur),
			FormatPercentage(r.ProfitPercent()),
		)
		if !r.LoanPayment.IsZero() {
			fmt.Fprintf(&buf, "  LoanPayment=%s\n", FormatCurrency(r.LoanPayment, cur))
		}
	}
	if results.Expenses != nil {
		fmt.Fprintf(&buf, "Expenses: %s across %d categories\n", FormatCurrency(results.Expenses.Total, cur), len(results.Expenses.Items))
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (%s / %s)\n", rec.ScenarioName, FormatCurrency(rec.Profit, cur), FormatPercentage(rec.ProfitPercent))
	}
	return buf.Bytes(), nil
}
