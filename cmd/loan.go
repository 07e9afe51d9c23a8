package cmd

import (
	"fmt"

	"github.com/rpgo/finplan/internal/calculation"
	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/internal/export"
	"github.com/rpgo/finplan/internal/output"

	"github.com/spf13/cobra"
)

var (
	loanInput    domain.Loan
	loanPPY      int
	loanCurrency string
	loanXLSX     string
)

var loanCmd = &cobra.Command{
	Use:     "loan",
	Short:   "Level payment (EMI) and amortization schedule of a loan",
	Example: "  finplan loan --principal 100000 --rate 12 --term 12",
	RunE:    runLoan,
}

func init() {
	f := loanCmd.Flags()
	f.Var(newDecimalValue(&loanInput.Principal, "0"), "principal", "Loan principal")
	f.Var(newDecimalValue(&loanInput.AnnualRate, "0"), "rate", "Annual interest rate in percent")
	f.IntVar(&loanInput.TermPeriods, "term", 0, "Term in periods")
	f.IntVar(&loanPPY, "periods-per-year", domain.DefaultPeriodsPerYear, "Periods per year")
	f.StringVar(&loanCurrency, "currency", domain.DefaultCurrency, "ISO 4217 currency for display")
	f.StringVar(&loanXLSX, "xlsx", "", "Also write the schedule to this .xlsx file")
	rootCmd.AddCommand(loanCmd)
}

func runLoan(cmd *cobra.Command, _ []string) error {
	schedule, err := calculation.AmortizeLoan(loanInput, loanPPY)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), output.RenderLoanSchedule(schedule, loanCurrency))
	if loanXLSX != "" {
		path, err := export.SaveSingle(loanXLSX, export.LoanTable(schedule), "Loan")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "  Wrote %s\n", path)
	}
	return nil
}
