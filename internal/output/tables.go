package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/finplan/internal/domain"
)

// RenderLoanSchedule renders an amortization schedule with its totals.
func RenderLoanSchedule(schedule *domain.LoanSchedule, currency string) string {
	var b strings.Builder
	fmt.Fprintln(&b, renderKeyValue("Payment", FormatCurrency(schedule.Payment, currency)))
	fmt.Fprintln(&b, renderKeyValue("Total paid", FormatCurrency(schedule.TotalPayment, currency)))
	fmt.Fprintln(&b, renderKeyValue("Total interest", FormatCurrency(schedule.TotalInterest, currency)))
	if len(schedule.Rows) == 0 {
		return b.String()
	}
	t := textTable{Title: "AMORTIZATION", Headers: []string{"Period", "Payment", "Interest", "Principal", "Balance"}}
	for _, r := range schedule.Rows {
		t.Rows = append(t.Rows, []string{
			intToString(r.Period),
			FormatCurrency(r.Payment, currency),
			FormatCurrency(r.Interest, currency),
			FormatCurrency(r.Principal, currency),
			FormatCurrency(r.Balance, currency),
		})
	}
	b.WriteString(renderTable(t))
	return b.String()
}

// RenderExpenseBreakdown renders category amounts and shares with a total row.
func RenderExpenseBreakdown(breakdown *domain.ExpenseBreakdown, currency string) string {
	return renderTable(expenseTable(breakdown, currency))
}
