package calculation

import (
	"github.com/rpgo/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// BreakdownExpenses totals the categories and computes each one's share of the total.
// Items keep input order; shares are zero when the total is zero.
func BreakdownExpenses(categories []domain.ExpenseCategory) (*domain.ExpenseBreakdown, error) {
	total := decimal.Zero
	for _, c := range categories {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		total = total.Add(c.Amount)
	}

	breakdown := &domain.ExpenseBreakdown{
		Items: make([]domain.ExpenseShare, len(categories)),
		Total: total,
	}
	for i, c := range categories {
		share := decimal.Zero
		if !total.IsZero() {
			share = c.Amount.Div(total).Round(workingPlaces)
		}
		breakdown.Items[i] = domain.ExpenseShare{Name: c.Name, Amount: c.Amount, Share: share}
	}
	return breakdown, nil
}
