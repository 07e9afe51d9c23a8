package calculation

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestPeriodicRate(t *testing.T) {
	assert.True(t, PeriodicRate(d("12"), 12).Equal(d("0.01")))
	assert.True(t, PeriodicRate(d("8"), 4).Equal(d("0.02")))
	assert.True(t, PeriodicRate(d("7"), 1).Equal(d("0.07")))
	assert.True(t, PeriodicRate(decimal.Zero, 12).IsZero())
}

func TestProjectWealth_ExampleScenario(t *testing.T) {
	input := domain.ProjectionInput{
		InitialCapital:       d("100000"),
		PeriodicContribution: d("10000"),
		AnnualReturnRate:     d("12"),
		HorizonPeriods:       240,
	}

	result, err := ProjectWealth(input)
	require.NoError(t, err)
	require.Len(t, result.Points, 240)

	assert.True(t, result.TotalInvested.Equal(d("2500000")), "total invested: %s", result.TotalInvested)
	assert.True(t, result.Profit.Equal(result.FinalWealth.Sub(result.TotalInvested)))
	assert.True(t, result.FinalWealth.Equal(result.Points[239].Wealth))
	assert.Equal(t, 12, result.PeriodsPerYear)

	// Closed form of the same recurrence
	growth := math.Pow(1.01, 240)
	expected := 100000*growth + 10000*(growth-1)/0.01
	assert.InDelta(t, expected, result.FinalWealth.InexactFloat64(), 0.01)

	// wealth[t] = wealth[t-1]*(1+r) + c holds for every period
	prev := result.InitialWealth
	for _, p := range result.Points {
		want := prev.Mul(d("1.01")).Add(d("10000"))
		assert.InDelta(t, want.InexactFloat64(), p.Wealth.InexactFloat64(), 1e-6, "period %d", p.Period)
		prev = p.Wealth
	}
}

func TestProjectWealth_PointInvariants(t *testing.T) {
	inputs := map[string]domain.ProjectionInput{
		"contribution only": {
			InitialCapital: d("10000"), PeriodicContribution: d("500"), AnnualReturnRate: d("7"), HorizonPeriods: 240,
		},
		"yearly periods": {
			InitialCapital: d("10000"), PeriodicContribution: d("6000"), AnnualReturnRate: d("7"), HorizonPeriods: 20, PeriodsPerYear: 1,
		},
		"expenses exceed contribution": {
			InitialCapital: d("50000"), PeriodicContribution: d("500"), AnnualReturnRate: d("5"), HorizonPeriods: 60,
			PeriodicExpense: d("2000"), AnnualInflationRate: d("3"),
		},
		"negative return": {
			InitialCapital: d("1000"), PeriodicContribution: d("10"), AnnualReturnRate: d("-20"), HorizonPeriods: 36,
		},
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			result, err := ProjectWealth(input)
			require.NoError(t, err)
			assert.Len(t, result.Points, input.HorizonPeriods)
			assert.True(t, result.InitialWealth.Equal(input.InitialCapital))

			prev := input.InitialCapital
			for i, p := range result.Points {
				assert.Equal(t, i+1, p.Period)
				assert.True(t, p.CashInvested.GreaterThanOrEqual(prev), "cash invested decreased at period %d", p.Period)
				prev = p.CashInvested
			}
		})
	}
}

func TestProjectWealth_CashInvestedWithoutCashFlow(t *testing.T) {
	input := domain.ProjectionInput{
		InitialCapital:       d("2500"),
		PeriodicContribution: d("125.50"),
		AnnualReturnRate:     d("9"),
		HorizonPeriods:       48,
	}
	result, err := ProjectWealth(input)
	require.NoError(t, err)
	for _, p := range result.Points {
		want := d("2500").Add(d("125.50").Mul(decimal.NewFromInt(int64(p.Period))))
		assert.True(t, p.CashInvested.Equal(want), "period %d: %s != %s", p.Period, p.CashInvested, want)
	}
}

func TestProjectWealth_ZeroRateZeroContribution(t *testing.T) {
	input := domain.ProjectionInput{
		InitialCapital: d("12345.67"),
		HorizonPeriods: 120,
	}
	result, err := ProjectWealth(input)
	require.NoError(t, err)
	for _, p := range result.Points {
		assert.True(t, p.Wealth.Equal(input.InitialCapital), "period %d wealth %s", p.Period, p.Wealth)
	}
	assert.True(t, result.Profit.IsZero())
}

func TestProjectWealth_InvalidInput(t *testing.T) {
	valid := domain.ProjectionInput{InitialCapital: d("1000"), HorizonPeriods: 12}

	tests := []struct {
		name   string
		mutate func(*domain.ProjectionInput)
		field  string
	}{
		{"negative capital", func(in *domain.ProjectionInput) { in.InitialCapital = d("-1") }, "initial_capital"},
		{"zero horizon", func(in *domain.ProjectionInput) { in.HorizonPeriods = 0 }, "horizon_periods"},
		{"negative horizon", func(in *domain.ProjectionInput) { in.HorizonPeriods = -5 }, "horizon_periods"},
		{"horizon too long", func(in *domain.ProjectionInput) { in.HorizonPeriods = domain.MaxHorizonPeriods(12) + 1 }, "horizon_periods"},
		{"daily horizon too long", func(in *domain.ProjectionInput) {
			in.PeriodsPerYear = 365
			in.HorizonPeriods = 365*domain.MaxHorizonYears + 1
		}, "horizon_periods"},
		{"negative contribution", func(in *domain.ProjectionInput) { in.PeriodicContribution = d("-10") }, "periodic_contribution"},
		{"negative expense", func(in *domain.ProjectionInput) { in.PeriodicExpense = d("-10") }, "periodic_expense"},
		{"negative periods per year", func(in *domain.ProjectionInput) { in.PeriodsPerYear = -12 }, "periods_per_year"},
		{"rate at -100", func(in *domain.ProjectionInput) { in.AnnualReturnRate = d("-100") }, "annual_return_rate"},
		{"negative loan principal", func(in *domain.ProjectionInput) {
			in.Loan = &domain.Loan{Principal: d("-1"), TermPeriods: 12}
		}, "loan.principal"},
		{"negative loan term", func(in *domain.ProjectionInput) {
			in.Loan = &domain.Loan{Principal: d("1000"), TermPeriods: -1}
		}, "loan.term_periods"},
		{"weights do not sum to one", func(in *domain.ProjectionInput) {
			in.Allocation = []domain.Bucket{{Name: "equity", Weight: d("0.5")}, {Name: "debt", Weight: d("0.4")}}
		}, "allocation"},
		{"duplicate bucket", func(in *domain.ProjectionInput) {
			in.Allocation = []domain.Bucket{{Name: "equity", Weight: d("0.5")}, {Name: "equity", Weight: d("0.5")}}
		}, "allocation"},
		{"weight above one", func(in *domain.ProjectionInput) {
			in.Allocation = []domain.Bucket{{Name: "equity", Weight: d("1.5")}, {Name: "debt", Weight: d("-0.5")}}
		}, "allocation.equity.weight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)

			result, err := ProjectWealth(input)
			require.Error(t, err)
			assert.Nil(t, result, "no partial result on invalid input")
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))

			var inputErr *domain.InvalidInputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.field, inputErr.Field)
		})
	}
}

func TestProjectWealth_LongDailyHorizon(t *testing.T) {
	input := domain.ProjectionInput{
		InitialCapital: d("1000"),
		PeriodsPerYear: 365,
		HorizonPeriods: 3650,
	}

	result, err := ProjectWealth(input)
	require.NoError(t, err)
	assert.Len(t, result.Points, 3650)
	assert.True(t, result.FinalWealth.Equal(d("1000")))
	assert.Equal(t, 1200, domain.MaxHorizonPeriods(0))
	assert.Equal(t, 36500, domain.MaxHorizonPeriods(365))
}

func TestProjectWealth_MultiBucket(t *testing.T) {
	input := domain.ProjectionInput{
		InitialCapital:  d("1000"),
		HorizonPeriods:  1,
		PeriodicIncome:  d("100"),
		PeriodicExpense: d("40"),
		Allocation: []domain.Bucket{
			{Name: "equity", Weight: d("0.5"), AnnualReturnRate: d("12")},
			{Name: "cash", Weight: d("0.5"), AnnualReturnRate: d("0")},
		},
	}

	result, err := ProjectWealth(input)
	require.NoError(t, err)
	p := result.Points[0]
	require.Len(t, p.Buckets, 2)
	assert.Equal(t, "equity", p.Buckets[0].Name)
	assert.True(t, p.Buckets[0].Balance.Equal(d("535")), "equity %s", p.Buckets[0].Balance)
	assert.True(t, p.Buckets[1].Balance.Equal(d("530")), "cash %s", p.Buckets[1].Balance)
	assert.True(t, p.Wealth.Equal(d("1065")))
	assert.True(t, p.NetCashFlow.Equal(d("60")))
	assert.True(t, p.CashInvested.Equal(d("1060")))
}

func TestProjectWealth_NegativeCashFlowReducesBucketsProportionally(t *testing.T) {
	input := domain.ProjectionInput{
		InitialCapital:  d("10000"),
		HorizonPeriods:  1,
		PeriodicExpense: d("1000"),
		Allocation: []domain.Bucket{
			{Name: "equity", Weight: d("0.5")},
			{Name: "debt", Weight: d("0.3")},
			{Name: "real_estate", Weight: d("0.2")},
		},
	}

	result, err := ProjectWealth(input)
	require.NoError(t, err)
	p := result.Points[0]
	assert.True(t, p.Buckets[0].Balance.Equal(d("4500")))
	assert.True(t, p.Buckets[1].Balance.Equal(d("2700")))
	assert.True(t, p.Buckets[2].Balance.Equal(d("1800")))
	assert.True(t, p.Wealth.Equal(d("9000")))
	assert.True(t, p.CashInvested.Equal(d("10000")), "negative flows are not invested")
}

func TestProjectWealth_IncomeAndInflationGrowth(t *testing.T) {
	input := domain.ProjectionInput{
		HorizonPeriods:      2,
		PeriodsPerYear:      1,
		PeriodicIncome:      d("1000"),
		IncomeGrowthRate:    d("10"),
		PeriodicExpense:     d("500"),
		AnnualInflationRate: d("20"),
	}
	result, err := ProjectWealth(input)
	require.NoError(t, err)

	assert.True(t, result.Points[0].Income.Equal(d("1100")))
	assert.True(t, result.Points[1].Income.Equal(d("1210")))
	assert.True(t, result.Points[0].Expense.Equal(d("600")))
	assert.True(t, result.Points[1].Expense.Equal(d("720")))
	assert.True(t, result.Points[1].NetCashFlow.Equal(d("490")))
}

func TestProjectWealth_LoanPaymentCharged(t *testing.T) {
	input := domain.ProjectionInput{
		HorizonPeriods: 14,
		PeriodicIncome: d("10000"),
		Loan:           &domain.Loan{Principal: d("100000"), AnnualRate: d("12"), TermPeriods: 12},
	}
	result, err := ProjectWealth(input)
	require.NoError(t, err)

	assert.True(t, result.LoanPayment.Equal(d("8884.88")))
	assert.True(t, result.Points[0].LoanPayment.Equal(d("8884.88")))
	assert.True(t, result.Points[0].NetCashFlow.Equal(d("1115.12")))
	assert.True(t, result.Points[11].LoanBalance.IsZero())
	assert.True(t, result.Points[12].LoanPayment.IsZero(), "no payment after the term")
	assert.True(t, result.Points[13].NetCashFlow.Equal(d("10000")))
}

type recordingLogger struct {
	NopLogger
	warnings []string
}

func (l *recordingLogger) Warnf(format string, args ...any) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func TestProjectWealth_LoanWithoutTerm(t *testing.T) {
	logger := &recordingLogger{}
	engine := NewCalculationEngine()
	engine.SetLogger(logger)

	input := domain.ProjectionInput{
		InitialCapital: d("1000"),
		HorizonPeriods: 3,
		Loan:           &domain.Loan{Principal: d("50000"), AnnualRate: d("6"), TermPeriods: 0},
	}
	result, err := engine.ProjectWealth(input)
	require.NoError(t, err)

	assert.True(t, result.LoanPayment.IsZero())
	for _, p := range result.Points {
		assert.True(t, p.LoanPayment.IsZero())
		assert.True(t, p.LoanBalance.Equal(d("50000")))
		assert.True(t, p.Wealth.Equal(d("1000")))
	}
	require.Len(t, logger.warnings, 1)
	assert.Contains(t, logger.warnings[0], "no term")
}

func TestProjectWealth_Deterministic(t *testing.T) {
	input := domain.ProjectionInput{
		InitialCapital:       d("10000"),
		PeriodicContribution: d("500"),
		AnnualReturnRate:     d("7"),
		HorizonPeriods:       240,
		PeriodicIncome:       d("4000"),
		IncomeGrowthRate:     d("3"),
		PeriodicExpense:      d("3000"),
		AnnualInflationRate:  d("2.5"),
	}
	a, err := ProjectWealth(input)
	require.NoError(t, err)
	b, err := ProjectWealth(input)
	require.NoError(t, err)
	for i := range a.Points {
		require.True(t, a.Points[i].Wealth.Equal(b.Points[i].Wealth))
	}
}

func TestProjectionResult_Wealth(t *testing.T) {
	result, err := ProjectWealth(domain.ProjectionInput{InitialCapital: d("100"), PeriodicContribution: d("10"), HorizonPeriods: 3})
	require.NoError(t, err)

	series := result.Wealth()
	require.Len(t, series, 4)
	assert.True(t, series[0].Equal(d("100")))
	assert.True(t, series[3].Equal(d("130")))
	assert.True(t, result.WealthAt(0).Equal(d("100")))
	assert.True(t, result.WealthAt(2).Equal(d("120")))
	assert.True(t, result.WealthAt(99).Equal(d("130")))
}
