package domain

import (
	"github.com/shopspring/decimal"
)

// ExpenseCategory is one line of a periodic budget (rent, food, transport...).
type ExpenseCategory struct {
	Name   string          `yaml:"name" toml:"name" json:"name"`
	Amount decimal.Decimal `yaml:"amount" toml:"amount" json:"amount"`
}

// ExpenseShare is a category with its fraction of the total.
type ExpenseShare struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Share  decimal.Decimal `json:"share"` // 0..1
}

// ExpenseBreakdown is the category split of a budget, in input order.
type ExpenseBreakdown struct {
	Items []ExpenseShare  `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// Validate rejects unnamed or negative categories.
func (c ExpenseCategory) Validate() error {
	if c.Name == "" {
		return invalid("expenses.name", "cannot be empty")
	}
	if c.Amount.IsNegative() {
		return invalid("expenses."+c.Name, "cannot be negative, got %s", c.Amount.String())
	}
	return nil
}
