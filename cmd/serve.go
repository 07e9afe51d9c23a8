package cmd

import (
	"github.com/rpgo/finplan/internal/calculation"
	"github.com/rpgo/finplan/internal/server"

	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the projection engine over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	engine := newEngine(cmd)
	if !flagVerbose {
		engine.SetLogger(calculation.NewWriterLogger(cmd.ErrOrStderr(), false))
	}
	return server.New(engine).ListenAndServe(serveAddr)
}
