package cmd

import (
	"fmt"

	"github.com/rpgo/finplan/internal/calculation"
	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/internal/output"

	"github.com/spf13/cobra"
)

var (
	expenseItems  []string
	expenseConfig string
)

var expensesCmd = &cobra.Command{
	Use:     "expenses",
	Short:   "Break a budget down into category shares",
	Example: "  finplan expenses --item Rent=1500 --item Food=600 --item Transport=300",
	RunE:    runExpenses,
}

func init() {
	expensesCmd.Flags().StringArrayVar(&expenseItems, "item", nil, "Category as name=amount (repeatable)")
	expensesCmd.Flags().StringVarP(&expenseConfig, "config", "c", "", "Read the expenses section of a configuration file")
	rootCmd.AddCommand(expensesCmd)
}

func runExpenses(cmd *cobra.Command, _ []string) error {
	currency := domain.DefaultCurrency
	var categories []domain.ExpenseCategory
	if expenseConfig != "" {
		cfg, err := loadConfig(expenseConfig)
		if err != nil {
			return err
		}
		categories = cfg.Expenses
		currency = cfg.CurrencyCode()
	}
	items, err := parseExpenses(expenseItems)
	if err != nil {
		return err
	}
	categories = append(categories, items...)
	if len(categories) == 0 {
		return fmt.Errorf("no expenses given; use --item or --config")
	}

	breakdown, err := calculation.BreakdownExpenses(categories)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), output.RenderExpenseBreakdown(breakdown, currency))
	return nil
}
