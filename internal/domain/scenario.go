package domain

import (
	"time"
)

// Defaults fills fields that a scenario input leaves at zero.
type Defaults struct {
	PeriodsPerYear int `yaml:"periods_per_year,omitempty" toml:"periods_per_year,omitempty" json:"periods_per_year,omitempty"`
	HorizonPeriods int `yaml:"horizon_periods,omitempty" toml:"horizon_periods,omitempty" json:"horizon_periods,omitempty"`
}

// Scenario is a named projection input.
type Scenario struct {
	Name  string          `yaml:"name" toml:"name" json:"name"`
	Input ProjectionInput `yaml:"input" toml:"input" json:"input"`
}

// Configuration is the top-level document loaded from YAML or TOML.
type Configuration struct {
	Currency  string            `yaml:"currency,omitempty" toml:"currency,omitempty" json:"currency,omitempty"` // ISO 4217, defaults to USD
	StartDate time.Time         `yaml:"start_date,omitempty" toml:"start_date,omitempty" json:"start_date,omitempty"`
	Defaults  Defaults          `yaml:"defaults,omitempty" toml:"defaults,omitempty" json:"defaults,omitempty"`
	Scenarios []Scenario        `yaml:"scenarios" toml:"scenarios" json:"scenarios"`
	Expenses  []ExpenseCategory `yaml:"expenses,omitempty" toml:"expenses,omitempty" json:"expenses,omitempty"`
}

// ResolvedInput returns the scenario input with configuration defaults applied.
func (c *Configuration) ResolvedInput(s Scenario) ProjectionInput {
	in := s.Input
	if in.PeriodsPerYear == 0 {
		in.PeriodsPerYear = c.Defaults.PeriodsPerYear
	}
	if in.HorizonPeriods == 0 {
		in.HorizonPeriods = c.Defaults.HorizonPeriods
	}
	return in.Normalized()
}

// ScenarioSummary pairs a scenario with its projection.
type ScenarioSummary struct {
	Name   string            `json:"name"`
	Input  ProjectionInput   `json:"input"`
	Result *ProjectionResult `json:"result"`
}

// ComparisonAnalysis names the leading scenarios of a comparison.
type ComparisonAnalysis struct {
	BestFinalWealth string              `json:"best_final_wealth"`
	BestProfit      string              `json:"best_profit"`
	Crossovers      []ScenarioCrossover `json:"crossovers,omitempty"`
}

// ScenarioCrossover is the point where one scenario's wealth overtakes another's.
type ScenarioCrossover struct {
	Leader    string    `json:"leader"`
	Trailer   string    `json:"trailer"`
	Crossover Crossover `json:"crossover"`
}

// ScenarioComparison is the result of running every scenario in a configuration.
type ScenarioComparison struct {
	Currency  string             `json:"currency"`
	StartDate time.Time          `json:"start_date,omitempty"`
	Scenarios []ScenarioSummary  `json:"scenarios"`
	Expenses  *ExpenseBreakdown  `json:"expenses,omitempty"`
	Analysis  ComparisonAnalysis `json:"analysis"`
}

// DefaultCurrency is used when a configuration names none.
const DefaultCurrency = "USD"

// CurrencyCode returns the configured ISO 4217 code or DefaultCurrency.
func (c *Configuration) CurrencyCode() string {
	if c.Currency == "" {
		return DefaultCurrency
	}
	return c.Currency
}
