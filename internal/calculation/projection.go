package calculation

import (
	"github.com/rpgo/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// workingPlaces bounds the scale of intermediate values; every period is rounded to it.
const workingPlaces = 10

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// PeriodicRate converts a nominal annual percentage into a per-period rate
// by simple division: annual / 100 / periodsPerYear.
func PeriodicRate(annualPercent decimal.Decimal, periodsPerYear int) decimal.Decimal {
	return annualPercent.Div(hundred).Div(decimal.NewFromInt(int64(periodsPerYear)))
}

// compound returns (1+rate)^n.
func compound(rate decimal.Decimal, n int) decimal.Decimal {
	factor := one.Add(rate)
	result := one
	for k := 0; k < n; k++ {
		result = result.Mul(factor)
	}
	return result
}

// ProjectWealth runs a projection with a silent engine.
func ProjectWealth(input domain.ProjectionInput) (*domain.ProjectionResult, error) {
	return NewCalculationEngine().ProjectWealth(input)
}

// ProjectWealth validates the input and projects wealth period by period.
//
// Each period the flow entering the portfolio is the periodic contribution plus the
// net cash flow (income - expense - loan payment). Without an allocation the whole
// portfolio grows at AnnualReturnRate; with one, every bucket grows at its own rate
// and receives its weight of the flow. Cash invested only accumulates positive flows.
func (ce *CalculationEngine) ProjectWealth(input domain.ProjectionInput) (*domain.ProjectionResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	in := input.Normalized()
	ppy := in.PeriodsPerYear

	loanRows, loanPayment, err := ce.loanSchedule(in)
	if err != nil {
		return nil, err
	}

	buckets := in.Allocation
	if len(buckets) == 0 {
		buckets = []domain.Bucket{{Name: "portfolio", Weight: one, AnnualReturnRate: in.AnnualReturnRate}}
	}
	rates := make([]decimal.Decimal, len(buckets))
	balances := make([]decimal.Decimal, len(buckets))
	for b, bucket := range buckets {
		rates[b] = PeriodicRate(bucket.AnnualReturnRate, ppy)
		balances[b] = in.InitialCapital.Mul(bucket.Weight)
	}

	ce.Logger.Debugf("projecting %d periods (%d per year), %d bucket(s), loan payment %s",
		in.HorizonPeriods, ppy, len(buckets), loanPayment.StringFixed(2))

	incomeGrowth := one.Add(PeriodicRate(in.IncomeGrowthRate, ppy))
	inflation := one.Add(PeriodicRate(in.AnnualInflationRate, ppy))
	income := in.PeriodicIncome
	expense := in.PeriodicExpense
	cashInvested := in.InitialCapital

	result := &domain.ProjectionResult{
		Points:         make([]domain.ProjectionPoint, 0, in.HorizonPeriods),
		PeriodsPerYear: ppy,
		InitialWealth:  in.InitialCapital,
		LoanPayment:    loanPayment,
	}

	for t := 1; t <= in.HorizonPeriods; t++ {
		income = income.Mul(incomeGrowth).Round(workingPlaces)
		expense = expense.Mul(inflation).Round(workingPlaces)

		payment, loanBalance := decimal.Zero, decimal.Zero
		switch {
		case t <= len(loanRows):
			payment = loanRows[t-1].Payment
			loanBalance = loanRows[t-1].Balance
		case in.Loan != nil && in.Loan.TermPeriods == 0:
			loanBalance = in.Loan.Principal
		}

		net := income.Sub(expense).Sub(payment)
		flow := in.PeriodicContribution.Add(net)

		wealth := decimal.Zero
		var bucketBalances []domain.BucketBalance
		if len(in.Allocation) > 0 {
			bucketBalances = make([]domain.BucketBalance, len(buckets))
		}
		for b := range buckets {
			balances[b] = balances[b].Mul(one.Add(rates[b])).Add(flow.Mul(buckets[b].Weight)).Round(workingPlaces)
			wealth = wealth.Add(balances[b])
			if bucketBalances != nil {
				bucketBalances[b] = domain.BucketBalance{Name: buckets[b].Name, Balance: balances[b]}
			}
		}

		if flow.IsPositive() {
			cashInvested = cashInvested.Add(flow)
		}

		result.Points = append(result.Points, domain.ProjectionPoint{
			Period:       t,
			Wealth:       wealth,
			CashInvested: cashInvested,
			Income:       income,
			Expense:      expense,
			LoanPayment:  payment,
			LoanBalance:  loanBalance,
			NetCashFlow:  net,
			Buckets:      bucketBalances,
		})
	}

	last := result.Points[len(result.Points)-1]
	result.FinalWealth = last.Wealth
	result.TotalInvested = last.CashInvested
	result.Profit = result.FinalWealth.Sub(result.TotalInvested)

	ce.Logger.Debugf("final wealth %s, invested %s, profit %s",
		result.FinalWealth.StringFixed(2), result.TotalInvested.StringFixed(2), result.Profit.StringFixed(2))
	return result, nil
}

// loanSchedule returns the amortization rows charged against the cash flow.
func (ce *CalculationEngine) loanSchedule(in domain.ProjectionInput) ([]domain.LoanScheduleRow, decimal.Decimal, error) {
	if in.Loan == nil {
		return nil, decimal.Zero, nil
	}
	if in.Loan.TermPeriods == 0 && in.Loan.Principal.IsPositive() {
		ce.Logger.Warnf("loan of %s has no term; no payment is computed", in.Loan.Principal.StringFixed(2))
		return nil, decimal.Zero, nil
	}
	schedule, err := AmortizeLoan(*in.Loan, in.PeriodsPerYear)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return schedule.Rows, schedule.Payment, nil
}
