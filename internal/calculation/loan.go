package calculation

import (
	"github.com/rpgo/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// LevelPayment returns the equal periodic installment (EMI) that amortizes the loan,
// rounded to cents: P*i*(1+i)^n / ((1+i)^n - 1), or P/n for an interest-free loan.
// A zero term yields a zero payment.
func LevelPayment(loan domain.Loan, periodsPerYear int) (decimal.Decimal, error) {
	if err := validateLoan(loan, periodsPerYear); err != nil {
		return decimal.Zero, err
	}
	return levelPayment(loan, periodsPerYear), nil
}

func levelPayment(loan domain.Loan, periodsPerYear int) decimal.Decimal {
	if loan.TermPeriods == 0 || loan.Principal.IsZero() {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(loan.TermPeriods))
	i := PeriodicRate(loan.AnnualRate, periodsPerYear)
	if i.IsZero() {
		return loan.Principal.Div(n).Round(2)
	}

	growth := compound(i, loan.TermPeriods)
	payment := loan.Principal.Mul(i).Mul(growth).Div(growth.Sub(one))
	return payment.Round(2)
}

// AmortizeLoan builds the full amortization schedule. Interest is rounded to cents
// each period and the last installment absorbs the remainder so the balance closes at zero.
func AmortizeLoan(loan domain.Loan, periodsPerYear int) (*domain.LoanSchedule, error) {
	if err := validateLoan(loan, periodsPerYear); err != nil {
		return nil, err
	}

	schedule := &domain.LoanSchedule{
		Loan:          loan,
		Payment:       levelPayment(loan, periodsPerYear),
		TotalPayment:  decimal.Zero,
		TotalInterest: decimal.Zero,
		Rows:          []domain.LoanScheduleRow{},
	}
	if loan.TermPeriods == 0 || loan.Principal.IsZero() {
		return schedule, nil
	}

	i := PeriodicRate(loan.AnnualRate, periodsPerYear)
	balance := loan.Principal
	for period := 1; period <= loan.TermPeriods; period++ {
		interest := balance.Mul(i).Round(2)
		payment := schedule.Payment
		principal := payment.Sub(interest)
		if period == loan.TermPeriods || principal.GreaterThan(balance) {
			principal = balance
			payment = principal.Add(interest)
		}
		balance = balance.Sub(principal)

		schedule.Rows = append(schedule.Rows, domain.LoanScheduleRow{
			Period:    period,
			Payment:   payment,
			Interest:  interest,
			Principal: principal,
			Balance:   balance,
		})
		schedule.TotalPayment = schedule.TotalPayment.Add(payment)
		schedule.TotalInterest = schedule.TotalInterest.Add(interest)

		if balance.IsZero() {
			break
		}
	}
	return schedule, nil
}

func validateLoan(loan domain.Loan, periodsPerYear int) error {
	if periodsPerYear <= 0 {
		return &domain.InvalidInputError{Field: "periods_per_year", Reason: "must be greater than zero"}
	}
	return loan.Validate()
}
