package cmd

import (
	"fmt"

	"github.com/rpgo/finplan/internal/export"

	"github.com/spf13/cobra"
)

var (
	exportConfig string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a scenario comparison to a spreadsheet",
	Long:  "Write a workbook with a Summary sheet, one sheet per scenario and an Expenses sheet when the configuration lists expenses.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportConfig, "config", "c", "", "Configuration file")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "finplan.xlsx", "Destination .xlsx file")
	_ = exportCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(exportConfig)
	if err != nil {
		return err
	}
	results, err := newEngine(cmd).RunScenariosContext(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	path, err := export.SaveSheets(exportOut, export.ComparisonSheets(results))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Workbook written to %s\n", path)
	return nil
}
