package cmd

import (
	"fmt"
	"os"

	"precinct-reconciler/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "precinct-reconciler",
	Short: "Precinct election result export, combine and diff toolkit",
	Long: `Precinct Reconciler exports precinct-level election results from the
relational store into wide CSVs, combines per-vote-type exports into one
dataset keyed by (state, county, precinct), and diffs two exports under
configurable equality rules.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// Console format matches CLI expectations; debug level gives
		// readable ISO8601 timestamps.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
