package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hakimgo/hakimgo/pkg/parser"
	"github.com/hakimgo/hakimgo/pkg/tactic"
)

var proveCmd = &cobra.Command{
	Use:   "prove <goal> [tactic]...",
	Short: "run a fixed tactic script against a goal, non-interactively",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runProve,
}

// noAsker always cancels: a non-interactive run cannot prompt for a
// missing witness.
func noAsker(prompt string) (string, bool) { return "", true }

func runProve(cmd *cobra.Command, args []string) error {
	goalText, tactics := args[0], args[1:]

	sess, err := newSession(goalText)
	if err != nil {
		return err
	}
	logger.Debug("goal parsed", zap.String("goal", goalText))

	for _, line := range tactics {
		if err := tactic.RunLine(sess, line, noAsker); err != nil {
			color.Red("✗ %s: %v", line, err)
			return err
		}
		color.Green("✓ %s", line)
	}

	if sess.Current().IsFinished() {
		color.Green("Proof complete.")
	} else {
		fmt.Print(sess.Monitor(parser.Unparse))
	}
	return nil
}
