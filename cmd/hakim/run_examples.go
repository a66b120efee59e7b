package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hakimgo/hakimgo/internal/batch"
	"github.com/hakimgo/hakimgo/pkg/engine"
	"github.com/hakimgo/hakimgo/pkg/parser"
	"github.com/hakimgo/hakimgo/pkg/proof"
	"github.com/hakimgo/hakimgo/pkg/stdlib"
	"github.com/hakimgo/hakimgo/pkg/tactic"
)

var runExamplesWorkers int

var runExamplesCmd = &cobra.Command{
	Use:   "run-examples <dir>",
	Short: "replay every scenario.yaml under dir concurrently and report pass/fail",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunExamples,
}

func init() {
	runExamplesCmd.Flags().IntVar(&runExamplesWorkers, "workers", 0, "max concurrent scenarios (0 = NumCPU)")
}

// scenario is the on-disk shape of examples/*/scenario.yaml: a goal and
// the tactic script expected to close it. Library overrides the
// --library flag with a comma-separated list of libraries to load, for
// scenarios that need more than the default; ExpectFail marks a
// scenario whose last tactic is expected to fail (demonstrating a
// tactic error rather than a closed proof).
type scenario struct {
	Name       string   `yaml:"name"`
	Library    string   `yaml:"library"`
	Goal       string   `yaml:"goal"`
	Tactics    []string `yaml:"tactics"`
	ExpectFail bool     `yaml:"expect_fail"`
}

func runRunExamples(cmd *cobra.Command, args []string) error {
	dir := args[0]
	paths, err := findScenarios(dir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("run-examples: no scenario.yaml files found under %s", dir)
	}

	jobs := make([]batch.Job, len(paths))
	for i, p := range paths {
		p := p
		jobs[i] = func(ctx context.Context) (string, error) { return runScenario(p) }
	}

	pool := batch.NewPool(runExamplesWorkers)
	results := pool.Run(context.Background(), jobs)

	failures := 0
	for i, r := range results {
		name := filepath.Dir(paths[i])
		if r.Err != nil {
			color.Red("✗ %s: %v", name, r.Err)
			failures++
			continue
		}
		color.Green("✓ %s: %s", name, r.Output)
	}
	if failures > 0 {
		return fmt.Errorf("run-examples: %d of %d scenarios failed", failures, len(paths))
	}
	return nil
}

func findScenarios(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Base(path) == "scenario.yaml" {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

func runScenario(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var sc scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}

	libs := []string{library}
	if sc.Library != "" {
		libs = strings.Split(sc.Library, ",")
	}
	eng := engine.New(parser.New())
	for _, lib := range libs {
		if err := stdlib.Load(eng, strings.TrimSpace(lib)); err != nil {
			return "", fmt.Errorf("loading library %q: %w", lib, err)
		}
	}
	sess, err := proof.NewSession(eng, sc.Goal)
	if err != nil {
		return "", fmt.Errorf("parsing goal: %w", err)
	}

	var last error
	for _, line := range sc.Tactics {
		if last = tactic.RunLine(sess, line, noAsker); last != nil {
			break
		}
	}

	if sc.ExpectFail {
		if last == nil {
			return "", fmt.Errorf("expected the tactic script to fail, but it closed the goal")
		}
		return fmt.Sprintf("expected failure reproduced: %v", last), nil
	}
	if last != nil {
		return "", fmt.Errorf("%s", last)
	}
	if !sess.Current().IsFinished() {
		return "", fmt.Errorf("goal still open after %d tactics", len(sc.Tactics))
	}
	return strings.Join(sc.Tactics, "; "), nil
}
