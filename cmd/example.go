package cmd

import (
	"fmt"

	"github.com/rpgo/finplan/internal/config"
	"github.com/rpgo/finplan/internal/output"

	"github.com/spf13/cobra"
)

var exampleOut string

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write an example configuration",
	Long:  "Write a ready-to-run configuration. The file extension picks YAML, TOML or JSON.",
	RunE:  runExample,
}

func init() {
	exampleCmd.Flags().StringVarP(&exampleOut, "output", "o", "finplan.yaml", "Destination file")
	rootCmd.AddCommand(exampleCmd)
}

func runExample(cmd *cobra.Command, _ []string) error {
	cfg := config.NewInputParser().CreateExampleConfiguration()
	if err := output.SaveConfiguration(cfg, exampleOut); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", exampleOut)
	return nil
}
