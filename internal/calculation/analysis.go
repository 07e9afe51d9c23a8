package calculation

import (
	"github.com/rpgo/finplan/internal/domain"
)

// generateComparisonAnalysis picks the leading scenarios and the wealth crossovers between them
func (ce *CalculationEngine) generateComparisonAnalysis(scenarios []domain.ScenarioSummary) domain.ComparisonAnalysis {
	var analysis domain.ComparisonAnalysis
	if len(scenarios) == 0 {
		return analysis
	}

	bestWealth, bestProfit := scenarios[0], scenarios[0]
	for _, s := range scenarios[1:] {
		if s.Result.FinalWealth.GreaterThan(bestWealth.Result.FinalWealth) {
			bestWealth = s
		}
		if s.Result.Profit.GreaterThan(bestProfit.Result.Profit) {
			bestProfit = s
		}
	}
	analysis.BestFinalWealth = bestWealth.Name
	analysis.BestProfit = bestProfit.Name

	for i := 0; i < len(scenarios); i++ {
		for j := i + 1; j < len(scenarios); j++ {
			a, b := scenarios[i], scenarios[j]
			if a.Result.PeriodsPerYear != b.Result.PeriodsPerYear {
				continue
			}
			crossover, err := FindWealthCrossover(a.Result, b.Result)
			if err != nil {
				ce.Logger.Warnf("crossover %s/%s: %v", a.Name, b.Name, err)
				continue
			}
			if crossover == nil {
				continue
			}
			leader, trailer := a.Name, b.Name
			if b.Result.FinalWealth.GreaterThan(a.Result.FinalWealth) {
				leader, trailer = b.Name, a.Name
			}
			analysis.Crossovers = append(analysis.Crossovers, domain.ScenarioCrossover{
				Leader:    leader,
				Trailer:   trailer,
				Crossover: *crossover,
			})
		}
	}
	return analysis
}
