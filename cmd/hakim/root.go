package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	library string

	logger *zap.Logger
)

// rootCmd is the base command; it carries no action of its own, only
// the shared --verbose and --library flags subcommands read.
var rootCmd = &cobra.Command{
	Use:   "hakim",
	Short: "hakim drives a small dependently-typed proof kernel",
	Long: `hakim checks tactic scripts against goals in a core dependently-typed
calculus. Use "prove" to run a script non-interactively, "repl" for an
interactive session, or "run-examples" to replay a directory of scenarios.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewDevelopmentConfig()
		if !verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}
		cfg.EncoderConfig.TimeKey = ""
		built, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("hakim: initializing logger: %w", err)
		}
		logger = built
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&library, "library", "Set", "stdlib library to seed the engine with (All, Logic, Eq, Set)")
	rootCmd.AddCommand(proveCmd, replCmd, runExamplesCmd)
}
