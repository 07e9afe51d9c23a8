package decimal

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Currency resolves an ISO 4217 code, falling back to USD for unknown codes.
func Currency(code string) *money.Currency {
	if cur := money.GetCurrency(code); cur != nil {
		return cur
	}
	return money.GetCurrency(money.USD)
}

// Format renders the amount in the currency's own notation, e.g. "$1,234.50" or "1.234,50 €".
func (m Money) Format(code string) string {
	cur := Currency(code)
	minor := m.Decimal.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return cur.Formatter().Format(minor)
}
