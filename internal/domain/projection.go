package domain

import (
	"github.com/rpgo/finplan/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// DefaultPeriodsPerYear is used when an input leaves PeriodsPerYear unset (monthly projection).
const DefaultPeriodsPerYear = 12

// MaxHorizonYears caps the projection length in years at any period length.
const MaxHorizonYears = 100

// MaxHorizonPeriods returns the longest accepted horizon for the given periods per year.
// A non-positive periodsPerYear means DefaultPeriodsPerYear.
func MaxHorizonPeriods(periodsPerYear int) int {
	if periodsPerYear <= 0 {
		periodsPerYear = DefaultPeriodsPerYear
	}
	return dateutil.PeriodsInYears(MaxHorizonYears, periodsPerYear)
}

// Loan describes an amortizing loan serviced out of the periodic cash flow.
type Loan struct {
	Principal   decimal.Decimal `yaml:"principal" toml:"principal" json:"principal"`
	AnnualRate  decimal.Decimal `yaml:"annual_rate" toml:"annual_rate" json:"annual_rate"` // percent, e.g. 12.0
	TermPeriods int             `yaml:"term_periods" toml:"term_periods" json:"term_periods"`
}

// Bucket is a named asset class with its own growth rate and share of the cash flow.
type Bucket struct {
	Name             string          `yaml:"name" toml:"name" json:"name"`
	Weight           decimal.Decimal `yaml:"weight" toml:"weight" json:"weight"`                                     // 0..1, all weights sum to 1
	AnnualReturnRate decimal.Decimal `yaml:"annual_return_rate" toml:"annual_return_rate" json:"annual_return_rate"` // percent
}

// ProjectionInput is the full parameter set of a single projection.
// Rates are nominal annual percentages; the engine divides them by PeriodsPerYear.
type ProjectionInput struct {
	InitialCapital       decimal.Decimal `yaml:"initial_capital" toml:"initial_capital" json:"initial_capital"`
	PeriodicContribution decimal.Decimal `yaml:"periodic_contribution" toml:"periodic_contribution" json:"periodic_contribution"`
	AnnualReturnRate     decimal.Decimal `yaml:"annual_return_rate" toml:"annual_return_rate" json:"annual_return_rate"`
	HorizonPeriods       int             `yaml:"horizon_periods" toml:"horizon_periods" json:"horizon_periods"`
	PeriodsPerYear       int             `yaml:"periods_per_year,omitempty" toml:"periods_per_year,omitempty" json:"periods_per_year,omitempty"`

	// Cash-flow model (all optional)
	PeriodicIncome      decimal.Decimal `yaml:"periodic_income,omitempty" toml:"periodic_income,omitempty" json:"periodic_income,omitempty"`
	IncomeGrowthRate    decimal.Decimal `yaml:"income_growth_rate,omitempty" toml:"income_growth_rate,omitempty" json:"income_growth_rate,omitempty"`
	PeriodicExpense     decimal.Decimal `yaml:"periodic_expense,omitempty" toml:"periodic_expense,omitempty" json:"periodic_expense,omitempty"`
	AnnualInflationRate decimal.Decimal `yaml:"annual_inflation_rate,omitempty" toml:"annual_inflation_rate,omitempty" json:"annual_inflation_rate,omitempty"`
	Loan                *Loan           `yaml:"loan,omitempty" toml:"loan,omitempty" json:"loan,omitempty"`

	// Allocation switches the engine to the multi-bucket model when non-empty.
	Allocation []Bucket `yaml:"allocation,omitempty" toml:"allocation,omitempty" json:"allocation,omitempty"`
}

// Normalized returns a copy with defaults filled in.
func (in ProjectionInput) Normalized() ProjectionInput {
	if in.PeriodsPerYear == 0 {
		in.PeriodsPerYear = DefaultPeriodsPerYear
	}
	return in
}

// HasCashFlowModel reports whether income, expenses or a loan feed the projection.
func (in ProjectionInput) HasCashFlowModel() bool {
	return !in.PeriodicIncome.IsZero() || !in.PeriodicExpense.IsZero() || in.Loan != nil
}

// BucketBalance is the balance of one asset bucket at the end of a period.
type BucketBalance struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// ProjectionPoint is one row of the projection table.
type ProjectionPoint struct {
	Period       int             `json:"period"`
	Wealth       decimal.Decimal `json:"wealth"`
	CashInvested decimal.Decimal `json:"cash_invested"`

	Income      decimal.Decimal `json:"income"`
	Expense     decimal.Decimal `json:"expense"`
	LoanPayment decimal.Decimal `json:"loan_payment"`
	LoanBalance decimal.Decimal `json:"loan_balance"`
	NetCashFlow decimal.Decimal `json:"net_cash_flow"`

	Buckets []BucketBalance `json:"buckets,omitempty"`
}

// ProjectionResult is the full output of a projection run.
type ProjectionResult struct {
	Points         []ProjectionPoint `json:"points"`
	PeriodsPerYear int               `json:"periods_per_year"`
	InitialWealth  decimal.Decimal   `json:"initial_wealth"`
	TotalInvested  decimal.Decimal   `json:"total_invested"`
	FinalWealth    decimal.Decimal   `json:"final_wealth"`
	Profit         decimal.Decimal   `json:"profit"`
	LoanPayment    decimal.Decimal   `json:"loan_payment"`
}

// Wealth returns the wealth series with wealth[0] being the initial capital.
func (r *ProjectionResult) Wealth() []decimal.Decimal {
	series := make([]decimal.Decimal, 0, len(r.Points)+1)
	series = append(series, r.InitialWealth)
	for _, p := range r.Points {
		series = append(series, p.Wealth)
	}
	return series
}

// WealthAt returns wealth at period t, where t == 0 is the starting capital.
func (r *ProjectionResult) WealthAt(t int) decimal.Decimal {
	if t <= 0 {
		return r.InitialWealth
	}
	if t > len(r.Points) {
		t = len(r.Points)
	}
	return r.Points[t-1].Wealth
}

// ProfitPercent returns profit as a percentage of total invested (zero when nothing was invested).
func (r *ProjectionResult) ProfitPercent() decimal.Decimal {
	if r.TotalInvested.IsZero() {
		return decimal.Zero
	}
	return r.Profit.Div(r.TotalInvested).Mul(decimal.NewFromInt(100))
}

// LoanScheduleRow is one period of a loan amortization table.
type LoanScheduleRow struct {
	Period    int             `json:"period"`
	Payment   decimal.Decimal `json:"payment"`
	Interest  decimal.Decimal `json:"interest"`
	Principal decimal.Decimal `json:"principal"`
	Balance   decimal.Decimal `json:"balance"`
}

// LoanSchedule is the amortization of a Loan with a level payment.
type LoanSchedule struct {
	Loan          Loan              `json:"loan"`
	Payment       decimal.Decimal   `json:"payment"`
	TotalPayment  decimal.Decimal   `json:"total_payment"`
	TotalInterest decimal.Decimal   `json:"total_interest"`
	Rows          []LoanScheduleRow `json:"rows"`
}

// Crossover is where the wealth of one projection overtakes another.
// Period is fractional, interpolated linearly between the surrounding whole periods.
type Crossover struct {
	Period      decimal.Decimal `json:"period"`
	WholePeriod int             `json:"whole_period"`
	Wealth      decimal.Decimal `json:"wealth"`
}
