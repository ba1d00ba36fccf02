// Command kata runs the kata packages from the command line.
//
// Usage:
//
//	kata compass [azimuth]
//	kata braces [--sorted] <pattern>
//	kata zigzag <n>
//	kata domino <a:b>...
//	kata ranges [--] <int>...
//	kata ranges --parse [--] <notation>
//
// Negative numbers for ranges must follow the -- separator, otherwise they
// are read as shorthand flags: kata ranges -- -3 -2 -1.
//
// Global flags: --verbose (debug logging), --format text|yaml.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// app carries the global flags and the logger shared by all subcommands.
type app struct {
	verbose bool
	format  string
	logger  *zap.Logger
}

// newRootCmd assembles the command tree around a. When a.logger is already
// set (tests) it is kept; otherwise a production logger is built on first run.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "kata",
		Short:        "Compass points, brace expansion, zig-zag grids, domino rows and range notation",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.format != formatText && a.format != formatYAML {
				return fmt.Errorf("unknown format %q (want %s or %s)", a.format, formatText, formatYAML)
			}
			if a.logger != nil {
				return nil
			}

			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.format, "format", formatText, "output format: text or yaml")

	root.AddCommand(
		newCompassCmd(a),
		newBracesCmd(a),
		newZigzagCmd(a),
		newDominoCmd(a),
		newRangesCmd(a),
	)

	return root
}

func main() {
	a := &app{}
	if err := newRootCmd(a).Execute(); err != nil {
		if a.logger != nil {
			a.logger.Error("command failed", zap.Error(err))
		}
		os.Exit(1)
	}
}
