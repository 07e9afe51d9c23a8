package output_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/finplan/internal/config"
	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/internal/output"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalComparison() *domain.ScenarioComparison {
	return &domain.ScenarioComparison{
		Currency: "USD",
		Scenarios: []domain.ScenarioSummary{
			{
				Name: "Baseline",
				Result: &domain.ProjectionResult{
					PeriodsPerYear: 12,
					Points:         []domain.ProjectionPoint{{Period: 1, Wealth: decimal.NewFromInt(100), CashInvested: decimal.NewFromInt(100)}},
					InitialWealth:  decimal.NewFromInt(100),
					TotalInvested:  decimal.NewFromInt(100),
					FinalWealth:    decimal.NewFromInt(100),
				},
			},
		},
	}
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "$123.45", output.FormatCurrency(decimal.NewFromFloat(123.45), "USD"))
	assert.Equal(t, "12.34%", output.FormatPercentage(decimal.NewFromFloat(12.34)))
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := config.NewInputParser()
	for _, ext := range []string{"yaml", "toml", "json"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config."+ext)
			require.NoError(t, output.SaveConfiguration(parser.CreateExampleConfiguration(), path))

			loaded, err := parser.LoadFromFile(path)
			require.NoError(t, err)
			require.Len(t, loaded.Scenarios, 3)
			household := loaded.Scenarios[2].Input
			require.NotNil(t, household.Loan)
			assert.Equal(t, 180, household.Loan.TermPeriods)
			assert.True(t, household.Loan.AnnualRate.Equal(decimal.NewFromFloat(8.5)))
			require.Len(t, household.Allocation, 3)
			assert.True(t, household.Allocation[1].Weight.Equal(decimal.NewFromFloat(0.3)))
			assert.Len(t, loaded.Expenses, 4)
		})
	}
}

func TestGenerateReport_WritesTimestampedFile(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []string{"json", "csv", "console", "xlsx"} {
		path, err := output.GenerateReport(minimalComparison(), format, dir)
		require.NoError(t, err, format)
		assert.True(t, strings.HasPrefix(filepath.Base(path), "finplan_report_"), path)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.WriteReport(&buf, minimalComparison(), "summary"))
	assert.Contains(t, buf.String(), "Baseline: Final=$100.00")
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	_, err := output.GenerateReport(&domain.ScenarioComparison{}, "definitely-not-a-format", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, output.ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "Try one of:")
	assert.Contains(t, err.Error(), "xlsx")
}
