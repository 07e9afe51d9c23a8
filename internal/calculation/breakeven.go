package calculation

import (
	"fmt"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	cent = decimal.New(1, -2)
	two  = decimal.NewFromInt(2)
)

// FindWealthCrossover finds the first period where the wealth of projection A and
// projection B cross, interpolating linearly within the period. Projections are aligned
// by period index. An equal starting wealth is not a crossover. If no crossover is
// found, returns nil, nil.
func FindWealthCrossover(a, b *domain.ProjectionResult) (*domain.Crossover, error) {
	if a == nil || b == nil || len(a.Points) == 0 || len(b.Points) == 0 {
		return nil, fmt.Errorf("one or both projections are empty")
	}
	if a.PeriodsPerYear != b.PeriodsPerYear {
		return nil, fmt.Errorf("projections use different periods per year (%d vs %d)", a.PeriodsPerYear, b.PeriodsPerYear)
	}

	n := len(a.Points)
	if len(b.Points) < n {
		n = len(b.Points)
	}

	prevDiff := a.InitialWealth.Sub(b.InitialWealth)
	prevWealth := a.InitialWealth
	for t := 1; t <= n; t++ {
		currWealth := a.Points[t-1].Wealth
		currDiff := currWealth.Sub(b.Points[t-1].Wealth)

		if !prevDiff.IsZero() {
			// Landing on equality within a cent counts as crossing at the period end
			if currDiff.Abs().LessThan(cent) {
				return &domain.Crossover{Period: decimal.NewFromInt(int64(t)), WholePeriod: t, Wealth: currWealth}, nil
			}
			if prevDiff.Sign()*currDiff.Sign() < 0 {
				fraction := prevDiff.Div(prevDiff.Sub(currDiff))
				return &domain.Crossover{
					Period:      decimal.NewFromInt(int64(t - 1)).Add(fraction).Round(4),
					WholePeriod: t,
					Wealth:      prevWealth.Add(currWealth.Sub(prevWealth).Mul(fraction)).Round(2),
				}, nil
			}
		}
		prevDiff = currDiff
		prevWealth = currWealth
	}
	return nil, nil
}

// SolveContributionForTarget finds the smallest whole-cent periodic contribution whose
// projection ends with at least target wealth. The search brackets the answer by doubling
// and then bisects until the bracket is narrower than one cent.
func (ce *CalculationEngine) SolveContributionForTarget(input domain.ProjectionInput, target decimal.Decimal) (decimal.Decimal, error) {
	if target.IsNegative() {
		return decimal.Zero, &domain.InvalidInputError{Field: "target", Reason: "cannot be negative, got " + target.String()}
	}

	finalWealth := func(contribution decimal.Decimal) (decimal.Decimal, error) {
		in := input
		in.PeriodicContribution = contribution
		result, err := ce.ProjectWealth(in)
		if err != nil {
			return decimal.Zero, err
		}
		return result.FinalWealth, nil
	}

	base, err := finalWealth(decimal.Zero)
	if err != nil {
		return decimal.Zero, err
	}
	if base.GreaterThanOrEqual(target) {
		return decimal.Zero, nil
	}

	lo := decimal.Zero
	hi := target.Sub(base).Div(decimal.NewFromInt(int64(input.HorizonPeriods)))
	if hi.LessThan(one) {
		hi = one
	}
	const maxDoublings = 60
	for k := 0; ; k++ {
		w, err := finalWealth(hi)
		if err != nil {
			return decimal.Zero, err
		}
		if w.GreaterThanOrEqual(target) {
			break
		}
		if k == maxDoublings {
			return decimal.Zero, fmt.Errorf("target %s is unreachable with any contribution", target.StringFixed(2))
		}
		lo = hi
		hi = hi.Mul(two)
	}

	maxIterations := 200
	for i := 0; i < maxIterations && hi.Sub(lo).GreaterThan(cent); i++ {
		mid := lo.Add(hi).Div(two)
		w, err := finalWealth(mid)
		if err != nil {
			return decimal.Zero, err
		}
		if w.GreaterThanOrEqual(target) {
			hi = mid
		} else {
			lo = mid
		}
	}

	// Step back to the smallest whole-cent contribution that still reaches the target
	contribution := hi.RoundCeil(2)
	for contribution.Sub(cent).GreaterThan(lo) {
		w, err := finalWealth(contribution.Sub(cent))
		if err != nil {
			return decimal.Zero, err
		}
		if w.LessThan(target) {
			break
		}
		contribution = contribution.Sub(cent)
	}

	ce.Logger.Debugf("contribution %s reaches target %s", contribution.StringFixed(2), target.StringFixed(2))
	return contribution, nil
}
