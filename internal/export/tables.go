package export

import (
	"time"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/pkg/dateutil"
)

// ProjectionTable lays out one row per period. A Date column is added when start is set,
// and one balance column per bucket when the projection models an allocation.
func ProjectionTable(result *domain.ProjectionResult, start time.Time) Table {
	headers := []string{"Period", "Year"}
	if !start.IsZero() {
		headers = append(headers, "Date")
	}
	headers = append(headers, "Wealth", "Cash Invested", "Income", "Expense", "Loan Payment", "Loan Balance", "Net Cash Flow")
	if len(result.Points) > 0 {
		for _, b := range result.Points[0].Buckets {
			headers = append(headers, b.Name)
		}
	}

	rows := make([][]any, 0, len(result.Points))
	for _, p := range result.Points {
		row := []any{p.Period, dateutil.YearOfPeriod(p.Period, result.PeriodsPerYear)}
		if !start.IsZero() {
			row = append(row, dateutil.PeriodEndDate(start, p.Period, result.PeriodsPerYear).Format("2006-01-02"))
		}
		row = append(row, p.Wealth, p.CashInvested, p.Income, p.Expense, p.LoanPayment, p.LoanBalance, p.NetCashFlow)
		for _, b := range p.Buckets {
			row = append(row, b.Balance)
		}
		rows = append(rows, row)
	}
	return Table{Headers: headers, Rows: rows}
}

// LoanTable lays out an amortization schedule.
func LoanTable(schedule *domain.LoanSchedule) Table {
	rows := make([][]any, 0, len(schedule.Rows))
	for _, r := range schedule.Rows {
		rows = append(rows, []any{r.Period, r.Payment, r.Interest, r.Principal, r.Balance})
	}
	return Table{
		Headers: []string{"Period", "Payment", "Interest", "Principal", "Balance"},
		Rows:    rows,
	}
}

// ExpenseTable lays out an expense breakdown with a closing total row.
func ExpenseTable(breakdown *domain.ExpenseBreakdown) Table {
	rows := make([][]any, 0, len(breakdown.Items)+1)
	for _, item := range breakdown.Items {
		rows = append(rows, []any{item.Name, item.Amount, item.Share})
	}
	rows = append(rows, []any{"Total", breakdown.Total, 1})
	return Table{Headers: []string{"Category", "Amount", "Share"}, Rows: rows}
}

// SummaryTable has one row per scenario with its headline figures.
func SummaryTable(comparison *domain.ScenarioComparison) Table {
	rows := make([][]any, 0, len(comparison.Scenarios))
	for _, s := range comparison.Scenarios {
		r := s.Result
		rows = append(rows, []any{
			s.Name,
			len(r.Points),
			r.PeriodsPerYear,
			r.InitialWealth,
			r.TotalInvested,
			r.FinalWealth,
			r.Profit,
			r.ProfitPercent().Round(2),
			r.LoanPayment,
		})
	}
	return Table{
		Headers: []string{"Scenario", "Periods", "Periods/Year", "Initial Wealth", "Total Invested", "Final Wealth", "Profit", "Profit %", "Loan Payment"},
		Rows:    rows,
	}
}

// ComparisonSheets is the workbook for a scenario comparison: a Summary sheet,
// one sheet per scenario and an Expenses sheet when a breakdown is present.
func ComparisonSheets(comparison *domain.ScenarioComparison) []Sheet {
	sheets := []Sheet{{Name: "Summary", Table: SummaryTable(comparison)}}
	for _, s := range comparison.Scenarios {
		sheets = append(sheets, Sheet{Name: s.Name, Table: ProjectionTable(s.Result, comparison.StartDate)})
	}
	if comparison.Expenses != nil {
		sheets = append(sheets, Sheet{Name: "Expenses", Table: ExpenseTable(comparison.Expenses)})
	}
	return sheets
}
