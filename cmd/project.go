package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rpgo/finplan/internal/calculation"
	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/internal/export"
	"github.com/rpgo/finplan/internal/output"
	"github.com/shopspring/decimal"

	"github.com/spf13/cobra"
)

var (
	projInput      domain.ProjectionInput
	projLoan       domain.Loan
	projAllocation []string
	projFormat     string
	projCurrency   string
	projStartDate  string
	projXLSX       string
	projTarget     decimal.Decimal
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project a single set of inputs",
	Long:  "Project wealth for the inputs given as flags. Rates are annual percentages.",
	Example: `  finplan project --capital 100000 --contribution 10000 --rate 12 --periods 240
  finplan project --capital 50000 --income 8000 --expense 3000 --loan-principal 200000 --loan-rate 8.5 --loan-term 180 \
    --allocation equity=0.5:12 --allocation debt=0.3:7 --allocation real_estate=0.2:5`,
	RunE: runProject,
}

func init() {
	f := projectCmd.Flags()
	f.Var(newDecimalValue(&projInput.InitialCapital, "10000"), "capital", "Initial capital")
	f.Var(newDecimalValue(&projInput.PeriodicContribution, "500"), "contribution", "Contribution per period")
	f.Var(newDecimalValue(&projInput.AnnualReturnRate, "7"), "rate", "Annual return rate in percent")
	f.IntVar(&projInput.HorizonPeriods, "periods", 240, "Projection horizon in periods")
	f.IntVar(&projInput.PeriodsPerYear, "periods-per-year", domain.DefaultPeriodsPerYear, "Periods per year (12 monthly, 4 quarterly, 1 yearly)")
	f.Var(newDecimalValue(&projInput.PeriodicIncome, "0"), "income", "Income per period")
	f.Var(newDecimalValue(&projInput.IncomeGrowthRate, "0"), "income-growth", "Annual income growth in percent")
	f.Var(newDecimalValue(&projInput.PeriodicExpense, "0"), "expense", "Expense per period")
	f.Var(newDecimalValue(&projInput.AnnualInflationRate, "0"), "inflation", "Annual expense inflation in percent")
	f.Var(newDecimalValue(&projLoan.Principal, "0"), "loan-principal", "Loan principal")
	f.Var(newDecimalValue(&projLoan.AnnualRate, "0"), "loan-rate", "Loan annual interest rate in percent")
	f.IntVar(&projLoan.TermPeriods, "loan-term", 0, "Loan term in periods")
	f.StringArrayVar(&projAllocation, "allocation", nil, "Asset bucket as name=weight:rate (repeatable)")
	f.StringVarP(&projFormat, "format", "f", "console", "Output format ("+fmt.Sprint(output.AvailableFormatterNames())+")")
	f.StringVar(&projCurrency, "currency", domain.DefaultCurrency, "ISO 4217 currency for display")
	f.StringVar(&projStartDate, "start", "", "Start date (YYYY-MM-DD) for dated exports")
	f.StringVar(&projXLSX, "xlsx", "", "Also write the projection table to this .xlsx file")
	f.Var(newDecimalValue(&projTarget, "0"), "target", "Solve for the contribution reaching this final wealth")
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, _ []string) error {
	input := projInput
	flags := cmd.Flags()
	if flags.Changed("loan-principal") || flags.Changed("loan-rate") || flags.Changed("loan-term") {
		loan := projLoan
		input.Loan = &loan
	}
	if len(projAllocation) > 0 {
		buckets, err := parseAllocation(projAllocation)
		if err != nil {
			return err
		}
		input.Allocation = buckets
	}
	var start time.Time
	if projStartDate != "" {
		var err error
		if start, err = time.Parse("2006-01-02", projStartDate); err != nil {
			return fmt.Errorf("invalid start date %q: %w", projStartDate, err)
		}
	}

	engine := newEngine(cmd)
	if flags.Changed("target") {
		return solveTarget(cmd, engine, input)
	}

	result, err := engine.ProjectWealth(input)
	if err != nil {
		return err
	}
	comparison := &domain.ScenarioComparison{
		Currency:  projCurrency,
		StartDate: start,
		Scenarios: []domain.ScenarioSummary{{Name: "Projection", Input: input, Result: result}},
		Analysis:  domain.ComparisonAnalysis{BestFinalWealth: "Projection", BestProfit: "Projection"},
	}

	if projXLSX != "" {
		path, err := export.SaveSingle(filepath.Clean(projXLSX), export.ProjectionTable(result, start), "Projection")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "  Wrote %s\n", path)
	}
	return output.WriteReport(cmd.OutOrStdout(), comparison, projFormat)
}

func solveTarget(cmd *cobra.Command, engine *calculation.CalculationEngine, input domain.ProjectionInput) error {
	contribution, err := engine.SolveContributionForTarget(input, projTarget)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Contribution per period to reach %s: %s\n",
		output.FormatCurrency(projTarget, projCurrency), output.FormatCurrency(contribution, projCurrency))
	return nil
}
