package domain

import (
	"github.com/shopspring/decimal"
)

const maxPeriodsPerYear = 365

var (
	minusHundred    = decimal.NewFromInt(-100)
	weightTolerance = decimal.New(1, -6)
)

// Validate checks the input and returns an *InvalidInputError for the first bad field.
// Defaults are applied before checking, so a zero PeriodsPerYear is accepted.
func (in ProjectionInput) Validate() error {
	in = in.Normalized()

	if in.HorizonPeriods <= 0 {
		return invalid("horizon_periods", "must be greater than zero, got %d", in.HorizonPeriods)
	}
	if in.PeriodsPerYear < 0 || in.PeriodsPerYear > maxPeriodsPerYear {
		return invalid("periods_per_year", "must be between 1 and %d, got %d", maxPeriodsPerYear, in.PeriodsPerYear)
	}
	if limit := MaxHorizonPeriods(in.PeriodsPerYear); in.HorizonPeriods > limit {
		return invalid("horizon_periods", "must be at most %d (%d years), got %d", limit, MaxHorizonYears, in.HorizonPeriods)
	}

	nonNegative := []struct {
		field string
		value decimal.Decimal
	}{
		{"initial_capital", in.InitialCapital},
		{"periodic_contribution", in.PeriodicContribution},
		{"periodic_income", in.PeriodicIncome},
		{"periodic_expense", in.PeriodicExpense},
	}
	for _, f := range nonNegative {
		if f.value.IsNegative() {
			return invalid(f.field, "cannot be negative, got %s", f.value.String())
		}
	}

	rates := []struct {
		field string
		value decimal.Decimal
	}{
		{"annual_return_rate", in.AnnualReturnRate},
		{"income_growth_rate", in.IncomeGrowthRate},
		{"annual_inflation_rate", in.AnnualInflationRate},
	}
	for _, f := range rates {
		if f.value.LessThanOrEqual(minusHundred) {
			return invalid(f.field, "must be greater than -100 percent, got %s", f.value.String())
		}
	}

	if in.Loan != nil {
		if err := in.Loan.Validate(); err != nil {
			return err
		}
	}

	if len(in.Allocation) > 0 {
		if err := ValidateAllocation(in.Allocation); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the loan fields. A zero term is accepted and means no payment is computed.
func (l Loan) Validate() error {
	if l.Principal.IsNegative() {
		return invalid("loan.principal", "cannot be negative, got %s", l.Principal.String())
	}
	if l.AnnualRate.IsNegative() {
		return invalid("loan.annual_rate", "cannot be negative, got %s", l.AnnualRate.String())
	}
	if l.TermPeriods < 0 {
		return invalid("loan.term_periods", "cannot be negative, got %d", l.TermPeriods)
	}
	return nil
}

// ValidateAllocation checks bucket names and that the weights form a full split.
func ValidateAllocation(buckets []Bucket) error {
	seen := make(map[string]bool, len(buckets))
	total := decimal.Zero
	for i, b := range buckets {
		if b.Name == "" {
			return invalid("allocation", "bucket %d has no name", i+1)
		}
		if seen[b.Name] {
			return invalid("allocation", "duplicate bucket %q", b.Name)
		}
		seen[b.Name] = true

		if b.Weight.IsNegative() || b.Weight.GreaterThan(decimal.NewFromInt(1)) {
			return invalid("allocation."+b.Name+".weight", "must be between 0 and 1, got %s", b.Weight.String())
		}
		if b.AnnualReturnRate.LessThanOrEqual(minusHundred) {
			return invalid("allocation."+b.Name+".annual_return_rate", "must be greater than -100 percent, got %s", b.AnnualReturnRate.String())
		}
		total = total.Add(b.Weight)
	}
	if total.Sub(decimal.NewFromInt(1)).Abs().GreaterThan(weightTolerance) {
		return invalid("allocation", "weights must sum to 1, got %s", total.String())
	}
	return nil
}
