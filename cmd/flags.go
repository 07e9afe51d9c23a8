package cmd

import (
	"fmt"
	"strings"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// decimalValue adapts a decimal.Decimal to pflag.Value.
type decimalValue struct{ d *decimal.Decimal }

func newDecimalValue(d *decimal.Decimal, def string) *decimalValue {
	*d = decimal.RequireFromString(def)
	return &decimalValue{d: d}
}

func (v *decimalValue) String() string {
	if v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v *decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid decimal %q", s)
	}
	*v.d = d
	return nil
}

func (v *decimalValue) Type() string { return "decimal" }

// parseAllocation parses "name=weight:rate" entries, e.g. "equity=0.5:12".
func parseAllocation(entries []string) ([]domain.Bucket, error) {
	buckets := make([]domain.Bucket, 0, len(entries))
	for _, entry := range entries {
		name, spec, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("allocation %q: expected name=weight:rate", entry)
		}
		weight, rate, ok := strings.Cut(spec, ":")
		if !ok {
			return nil, fmt.Errorf("allocation %q: expected name=weight:rate", entry)
		}
		w, err := decimal.NewFromString(weight)
		if err != nil {
			return nil, fmt.Errorf("allocation %q: invalid weight: %w", entry, err)
		}
		r, err := decimal.NewFromString(rate)
		if err != nil {
			return nil, fmt.Errorf("allocation %q: invalid rate: %w", entry, err)
		}
		buckets = append(buckets, domain.Bucket{Name: strings.TrimSpace(name), Weight: w, AnnualReturnRate: r})
	}
	return buckets, nil
}

// parseExpenses parses "name=amount" entries in order.
func parseExpenses(entries []string) ([]domain.ExpenseCategory, error) {
	categories := make([]domain.ExpenseCategory, 0, len(entries))
	for _, entry := range entries {
		name, amount, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("expense %q: expected name=amount", entry)
		}
		a, err := decimal.NewFromString(strings.TrimSpace(amount))
		if err != nil {
			return nil, fmt.Errorf("expense %q: invalid amount: %w", entry, err)
		}
		categories = append(categories, domain.ExpenseCategory{Name: strings.TrimSpace(name), Amount: a})
	}
	return categories, nil
}
