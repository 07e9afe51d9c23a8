package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/pkg/dateutil"
)

// ConsoleVerboseFormatter renders the detailed console report as lipgloss tables.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	cur := results.Currency

	fmt.Fprintln(&buf, renderTitle("WEALTH PROJECTION REPORT"))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, headerStyle.Render("KEY ASSUMPTIONS"))
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "  • %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprint(&buf, renderTable(summaryTable(results)))
	fmt.Fprintln(&buf)

	for i, sc := range results.Scenarios {
		if sc.Result == nil {
			continue
		}
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, headerStyle.Render(sc.Name))
		for _, a := range GenerateAssumptions(sc.Input, cur) {
			fmt.Fprintf(&buf, "  • %s\n", a)
		}
		if !sc.Result.LoanPayment.IsZero() {
			fmt.Fprintln(&buf, renderKeyValue("Loan payment", FormatCurrency(sc.Result.LoanPayment, cur)))
		}
		fmt.Fprintln(&buf, renderKeyValue("Wealth", renderSparkline(yearlyWealth(sc.Result))))
		fmt.Fprint(&buf, renderTable(yearlyTable(sc.Result, cur)))
		fmt.Fprintln(&buf)
	}

	if results.Expenses != nil {
		fmt.Fprint(&buf, renderTable(expenseTable(results.Expenses, cur)))
		fmt.Fprintln(&buf)
	}

	writeAnalysis(&buf, results)
	return buf.Bytes(), nil
}

func summaryTable(results *domain.ScenarioComparison) textTable {
	t := textTable{
		Title:   "SCENARIO SUMMARY",
		Headers: []string{"Scenario", "Periods", "Invested", "Final Wealth", "Profit", "Return"},
	}
	for _, sc := range results.Scenarios {
		if sc.Result == nil {
			continue
		}
		r := sc.Result
		t.Rows = append(t.Rows, []string{
			sc.Name,
			intToString(len(r.Points)),
			FormatCurrency(r.TotalInvested, results.Currency),
			FormatCurrency(r.FinalWealth, results.Currency),
			FormatCurrency(r.Profit, results.Currency),
			FormatPercentage(r.ProfitPercent()),
		})
	}
	return t
}

// yearlyTable shows the last period of every year plus a trailing partial year.
func yearlyTable(r *domain.ProjectionResult, cur string) textTable {
	t := textTable{Headers: []string{"Year", "Wealth", "Cash Invested", "Income", "Expense", "Loan Payment", "Net Cash Flow"}}
	for i, p := range r.Points {
		if !dateutil.IsYearEnd(p.Period, r.PeriodsPerYear) && i != len(r.Points)-1 {
			continue
		}
		t.Rows = append(t.Rows, []string{
			intToString(dateutil.YearOfPeriod(p.Period, r.PeriodsPerYear)),
			FormatCurrency(p.Wealth, cur),
			FormatCurrency(p.CashInvested, cur),
			FormatCurrency(p.Income, cur),
			FormatCurrency(p.Expense, cur),
			FormatCurrency(p.LoanPayment, cur),
			FormatCurrency(p.NetCashFlow, cur),
		})
	}
	return t
}

func yearlyWealth(r *domain.ProjectionResult) []float64 {
	values := []float64{r.InitialWealth.InexactFloat64()}
	for _, p := range r.Points {
		if dateutil.IsYearEnd(p.Period, r.PeriodsPerYear) {
			values = append(values, p.Wealth.InexactFloat64())
		}
	}
	return values
}

func expenseTable(b *domain.ExpenseBreakdown, cur string) textTable {
	t := textTable{Title: "EXPENSE BREAKDOWN", Headers: []string{"Category", "Amount", "Share"}}
	for _, item := range b.Items {
		t.Rows = append(t.Rows, []string{item.Name, FormatCurrency(item.Amount, cur), FormatShare(item.Share)})
	}
	t.Rows = append(t.Rows, []string{"---"}, []string{"Total", FormatCurrency(b.Total, cur), "100.00%"})
	return t
}

func writeAnalysis(buf *bytes.Buffer, results *domain.ScenarioComparison) {
	a := results.Analysis
	fmt.Fprintln(buf, headerStyle.Render("ANALYSIS"))
	if a.BestFinalWealth != "" {
		fmt.Fprintln(buf, renderKeyValue("Highest final wealth", a.BestFinalWealth))
	}
	if a.BestProfit != "" {
		fmt.Fprintln(buf, renderKeyValue("Highest profit", a.BestProfit))
	}
	for _, x := range a.Crossovers {
		fmt.Fprintf(buf, "  %s overtakes %s at period %s (%s)\n",
			x.Leader, x.Trailer, FormatPeriod(x.Crossover.Period), FormatCurrency(x.Crossover.Wealth, results.Currency))
	}
	if rec := AnalyzeScenarios(results); rec.ScenarioName != "" {
		fmt.Fprintln(buf, highlightStyle.Render(fmt.Sprintf("  Recommended: %s (%s return on cash invested)", rec.ScenarioName, FormatPercentage(rec.ProfitPercent))))
	}
}
