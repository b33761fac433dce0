// Package cmd implements the maneuvergen command line.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/maneuvergen/logger"
)

type rootOptions struct {
	logLevel   string
	logConsole bool
}

// NewRootCmd assembles the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "maneuvergen",
		Short: "Instance generator for maneuver scheduling in power distribution network restoration",
		Long: `maneuvergen builds synthetic instances of the maneuver scheduling problem:
switches with maneuver durations, teams with travel times, and a precedence
graph of controlled order strength.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.logConsole, "log-console", false, "human-readable log output")

	root.AddCommand(newGenerateCmd(opts), newBenchmarkCmd(opts), newInspectCmd())
	return root
}

// newLogger builds the command logger. An explicit --log-level wins over
// fallback.
func (o *rootOptions) newLogger(cmd *cobra.Command, component, fallback string, console bool) *logger.ZerologLogger {
	level := o.logLevel
	if level == "" {
		level = fallback
	}
	return logger.NewZerologLogger(component, logger.Options{
		Out:     cmd.ErrOrStderr(),
		Level:   level,
		Console: o.logConsole || console,
	})
}

// Execute runs the CLI until completion or SIGINT/SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}
