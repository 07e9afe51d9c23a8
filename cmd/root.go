package cmd

import (
	"os"

	"github.com/rpgo/finplan/internal/calculation"
	"github.com/rpgo/finplan/internal/config"
	"github.com/rpgo/finplan/internal/domain"

	"github.com/spf13/cobra"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:          "finplan",
	Short:        "Wealth and cash-flow projection CLI",
	Long:         "Project wealth, income, expenses and loans period by period, compare scenarios and export the results.",
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log engine activity to stderr")
}

// newEngine returns an engine that logs to stderr when --verbose is set.
func newEngine(cmd *cobra.Command) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	if flagVerbose {
		engine.SetLogger(calculation.NewWriterLogger(cmd.ErrOrStderr(), true))
	}
	return engine
}

// loadConfig is the shared configuration loading path used by config-driven commands.
func loadConfig(path string) (*domain.Configuration, error) {
	return config.NewInputParser().LoadFromFile(path)
}
