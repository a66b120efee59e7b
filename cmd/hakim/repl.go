package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hakimgo/hakimgo/internal/persist"
	"github.com/hakimgo/hakimgo/pkg/parser"
	"github.com/hakimgo/hakimgo/pkg/proof"
	"github.com/hakimgo/hakimgo/pkg/tactic"
)

var (
	replLoad     string
	replAutoSave string
)

var replCmd = &cobra.Command{
	Use:   "repl [goal]",
	Short: "drive an interactive proof session from the terminal",
	Long: `repl reads tactic lines from stdin, one per prompt, and reports the
resulting goal state after each. "Undo" rewinds one step, "Switch n"
refocuses an earlier subgoal, and a blank line or EOF exits. When a
tactic cannot find a witness its error is printed like any other
failure; no witness is asked for.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRepl,
}

func init() {
	replCmd.Flags().StringVar(&replLoad, "load", "", "resume a session saved with --save")
	replCmd.Flags().StringVar(&replAutoSave, "save", "", "write the session here after every successful tactic")
}

func runRepl(cmd *cobra.Command, args []string) error {
	var sess *proof.Session
	var err error

	switch {
	case replLoad != "":
		sess, err = persist.Load(replLoad, parser.New())
	case len(args) == 1:
		sess, err = newSession(args[0])
	default:
		return fmt.Errorf("repl: either a goal or --load is required")
	}
	if err != nil {
		return err
	}
	sessionID := uuid.NewString()
	logger.Info("repl session started", zap.String("session_id", sessionID), zap.String("library", library))

	stdin := bufio.NewScanner(os.Stdin)
	fmt.Print(sess.Monitor(parser.Unparse))

	for {
		fmt.Print("> ")
		if !stdin.Scan() {
			break
		}
		line := strings.TrimSpace(stdin.Text())
		if line == "" {
			break
		}

		ask := func(prompt string) (string, bool) {
			fmt.Printf("%s: ", prompt)
			if !stdin.Scan() {
				return "", true
			}
			answer := strings.TrimSpace(stdin.Text())
			return answer, answer == ""
		}

		if err := tactic.RunLine(sess, line, ask); err != nil {
			logger.Debug("tactic failed", zap.String("session_id", sessionID), zap.String("tactic", line), zap.Error(err))
			color.Red("✗ %v", err)
			continue
		}
		if replAutoSave != "" {
			if err := persist.Save(sess, library, replAutoSave); err != nil {
				color.Yellow("warning: autosave failed: %v", err)
			}
		}
		if sess.Current().IsFinished() {
			color.Green("No more subgoals.")
			break
		}
		fmt.Print(sess.Monitor(parser.Unparse))
	}
	return nil
}
