package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/finplan/internal/domain"
)

// CalculationEngine runs projections and scenario comparisons. It holds no state
// besides its logger and is safe for concurrent use.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunScenario projects a single named scenario with the configuration defaults applied
func (ce *CalculationEngine) RunScenario(ctx context.Context, config *domain.Configuration, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	input := config.ResolvedInput(*scenario)
	result, err := ce.ProjectWealth(input)
	if err != nil {
		return nil, err
	}

	return &domain.ScenarioSummary{
		Name:   scenario.Name,
		Input:  input,
		Result: result,
	}, nil
}

// RunScenarios runs all scenarios and returns a comparison
func (ce *CalculationEngine) RunScenarios(config *domain.Configuration) (*domain.ScenarioComparison, error) {
	return ce.RunScenariosContext(context.Background(), config)
}

// RunScenariosContext is RunScenarios with cancellation between scenarios.
func (ce *CalculationEngine) RunScenariosContext(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	scenarios := make([]domain.ScenarioSummary, len(config.Scenarios))

	for i, scenario := range config.Scenarios {
		summary, err := ce.RunScenario(ctx, config, &scenario)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
		ce.Logger.Infof("scenario %q: final wealth %s", scenario.Name, summary.Result.FinalWealth.StringFixed(2))
		scenarios[i] = *summary
	}

	comparison := &domain.ScenarioComparison{
		Currency:  config.CurrencyCode(),
		StartDate: config.StartDate,
		Scenarios: scenarios,
	}

	if len(config.Expenses) > 0 {
		breakdown, err := BreakdownExpenses(config.Expenses)
		if err != nil {
			return nil, fmt.Errorf("expense breakdown: %w", err)
		}
		comparison.Expenses = breakdown
	}

	comparison.Analysis = ce.generateComparisonAnalysis(scenarios)
	return comparison, nil
}
