package cmd

import (
	"fmt"

	"github.com/rpgo/finplan/internal/output"

	"github.com/spf13/cobra"
)

var (
	runConfig string
	runFormat string
	runOutDir string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run and compare every scenario in a configuration file",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runConfig, "config", "c", "", "Configuration file (.yaml, .yml, .toml or .json)")
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "console", "Output format (aliases accepted)")
	runCmd.Flags().StringVarP(&runOutDir, "output", "o", "", "Write a timestamped report into this directory instead of stdout")
	_ = runCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(runConfig)
	if err != nil {
		return err
	}
	results, err := newEngine(cmd).RunScenariosContext(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if runOutDir == "" {
		if output.NormalizeFormatName(runFormat) == "xlsx" {
			return fmt.Errorf("xlsx output needs --output or the export command")
		}
		return output.WriteReport(cmd.OutOrStdout(), results, runFormat)
	}
	path, err := output.GenerateReport(results, runFormat, runOutDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
	return nil
}
