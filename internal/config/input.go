package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/Rhymond/go-money"
	"github.com/goccy/go-json"
	"github.com/rpgo/finplan/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Supported configuration encodings
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatJSON = "json"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// FormatFromFilename picks the decoder from the file extension
func FormatFromFilename(filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported configuration file extension %q (use .yaml, .yml, .toml or .json)", filepath.Ext(filename))
	}
}

// LoadFromFile loads configuration from a YAML, TOML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	return ip.Parse(data, format)
}

// Parse decodes and validates a configuration document
func (ip *InputParser) Parse(data []byte, format string) (*domain.Configuration, error) {
	var config domain.Configuration
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported configuration format %q", format)
	}

	// Validate the configuration
	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Currency != "" && money.GetCurrency(config.Currency) == nil {
		return fmt.Errorf("unknown currency code %q", config.Currency)
	}

	if err := ip.validateDefaults(&config.Defaults); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	// Validate scenarios
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	names := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(config, &scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if names[scenario.Name] {
			return fmt.Errorf("scenario %d validation failed: duplicate scenario name %q", i, scenario.Name)
		}
		names[scenario.Name] = true
	}

	for _, category := range config.Expenses {
		if err := category.Validate(); err != nil {
			return fmt.Errorf("expenses validation failed: %w", err)
		}
	}

	return nil
}

// validateDefaults validates the values applied to scenarios that omit them
func (ip *InputParser) validateDefaults(defaults *domain.Defaults) error {
	if defaults.PeriodsPerYear < 0 {
		return fmt.Errorf("periods per year cannot be negative")
	}
	if limit := domain.MaxHorizonPeriods(defaults.PeriodsPerYear); defaults.HorizonPeriods < 0 || defaults.HorizonPeriods > limit {
		return fmt.Errorf("horizon periods must be between 0 and %d", limit)
	}
	return nil
}

// validateScenario validates a single scenario with the defaults applied
func (ip *InputParser) validateScenario(config *domain.Configuration, scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	return config.ResolvedInput(*scenario).Validate()
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	startDate, _ := time.Parse("2006-01-02", "2025-01-01")

	return &domain.Configuration{
		Currency:  money.USD,
		StartDate: startDate,
		Defaults: domain.Defaults{
			PeriodsPerYear: 12,
			HorizonPeriods: 240,
		},
		Scenarios: []domain.Scenario{
			{
				Name: "Steady Saver",
				Input: domain.ProjectionInput{
					InitialCapital:       decimal.NewFromInt(10000),
					PeriodicContribution: decimal.NewFromInt(500),
					AnnualReturnRate:     decimal.NewFromInt(7),
				},
			},
			{
				Name: "Aggressive Saver",
				Input: domain.ProjectionInput{
					InitialCapital:       decimal.NewFromInt(100000),
					PeriodicContribution: decimal.NewFromInt(10000),
					AnnualReturnRate:     decimal.NewFromInt(12),
				},
			},
			{
				Name: "Household Cash Flow",
				Input: domain.ProjectionInput{
					InitialCapital:      decimal.NewFromInt(50000),
					PeriodicIncome:      decimal.NewFromInt(8000),
					IncomeGrowthRate:    decimal.NewFromInt(3),
					PeriodicExpense:     decimal.NewFromInt(3000),
					AnnualInflationRate: decimal.NewFromFloat(2.5),
					Loan: &domain.Loan{
						Principal:   decimal.NewFromInt(200000),
						AnnualRate:  decimal.NewFromFloat(8.5),
						TermPeriods: 180,
					},
					Allocation: []domain.Bucket{
						{Name: "equity", Weight: decimal.NewFromFloat(0.5), AnnualReturnRate: decimal.NewFromInt(12)},
						{Name: "debt", Weight: decimal.NewFromFloat(0.3), AnnualReturnRate: decimal.NewFromInt(7)},
						{Name: "real_estate", Weight: decimal.NewFromFloat(0.2), AnnualReturnRate: decimal.NewFromInt(5)},
					},
				},
			},
		},
		Expenses: []domain.ExpenseCategory{
			{Name: "Rent", Amount: decimal.NewFromInt(1500)},
			{Name: "Food", Amount: decimal.NewFromInt(600)},
			{Name: "Transport", Amount: decimal.NewFromInt(300)},
			{Name: "Others", Amount: decimal.NewFromInt(600)},
		},
	}
}
