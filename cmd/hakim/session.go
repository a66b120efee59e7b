package main

import (
	"fmt"

	"github.com/hakimgo/hakimgo/pkg/engine"
	"github.com/hakimgo/hakimgo/pkg/parser"
	"github.com/hakimgo/hakimgo/pkg/proof"
	"github.com/hakimgo/hakimgo/pkg/stdlib"
)

// newSession seeds a fresh engine from the --library flag and opens a
// session on goalText.
func newSession(goalText string) (*proof.Session, error) {
	eng := engine.New(parser.New())
	if err := stdlib.Load(eng, library); err != nil {
		return nil, fmt.Errorf("loading library %q: %w", library, err)
	}
	sess, err := proof.NewSession(eng, goalText)
	if err != nil {
		return nil, fmt.Errorf("parsing goal: %w", err)
	}
	return sess, nil
}

