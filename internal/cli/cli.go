// Package cli provides the logogen command-line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"logo-backend/internal/shared/telemetry"
)

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:   "logogen",
		Short: "Render procedural logo sets from the command line",
		Long: `Render procedural logo sets from the command line.

Each run classifies the industry, picks four style variants and writes one
SVG document per variant. PNG copies can be rasterized alongside.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			telemetry.Configure(logLevel, "console")
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newIndustriesCmd())
	return root
}

// Execute runs the CLI with args taken from the process.
func Execute(ctx context.Context) error {
	defer telemetry.Sync()
	return NewRootCmd().ExecuteContext(ctx)
}
