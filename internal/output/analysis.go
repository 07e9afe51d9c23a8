package output

import (
	"sort"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName  string
	FinalWealth   decimal.Decimal
	Profit        decimal.Decimal
	ProfitPercent decimal.Decimal
}

// AnalyzeScenarios picks the scenario with the highest return on the cash invested.
// Ties keep the configuration order.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	type ranked struct {
		name string
		pct  decimal.Decimal
		res  *domain.ProjectionResult
	}
	var ranks []ranked
	for _, sc := range results.Scenarios {
		if sc.Result == nil {
			continue
		}
		ranks = append(ranks, ranked{sc.Name, sc.Result.ProfitPercent(), sc.Result})
	}
	if len(ranks) == 0 {
		return Recommendation{}
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].pct.GreaterThan(ranks[j].pct) })
	best := ranks[0]
	return Recommendation{
		ScenarioName:  best.name,
		FinalWealth:   best.res.FinalWealth,
		Profit:        best.res.Profit,
		ProfitPercent: best.pct,
	}
}
