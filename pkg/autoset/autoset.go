package autoset

import (
	"fmt"
	"sort"

	"github.com/hakimgo/hakimgo/pkg/proof"
	"github.com/hakimgo/hakimgo/pkg/term"
)

// Kind discriminates autoset's own small error taxonomy; pkg/tactic
// wraps these into its own Error when dispatching the auto_set tactic.
type Kind int

const (
	BadGoal Kind = iota
	BadHyp
	CanNotSolve
)

// Error is the autoset-side error type.
type Error struct {
	Kind Kind
	Msg  string
	Term term.Term
}

func (e *Error) Error() string {
	switch e.Kind {
	case BadGoal:
		return fmt.Sprintf("auto_set: %s", e.Msg)
	case BadHyp:
		return fmt.Sprintf("auto_set: %s: %s", e.Msg, e.Term)
	case CanNotSolve:
		return "auto_set could not solve the goal"
	default:
		return "auto_set: unknown error"
	}
}

// falseAxiomName is the nullary proposition with no introduction rule;
// a goal of exactly this shape is provable only by finding a
// contradiction among the hypotheses, never by decomposition.
const falseAxiomName = "False"

// Run translates f's goal and same-typed hypotheses into the tableaux
// tree and searches it, returning an empty successor list on success.
func Run(f *proof.Frame) ([]*proof.Frame, error) {
	if axiom, ok := f.Goal.(term.Axiom); ok && axiom.UniqueName == falseAxiomName {
		return runAbsurd(f)
	}

	elements := newIdentifier()
	sets := newIdentifier()

	goalTree, goalTy, ok := fromPropType(f.Goal, elements, sets)
	if !ok {
		return nil, &Error{Kind: BadGoal, Msg: "goal is not a recognized set-algebra proposition"}
	}

	simpleHyps := make(map[hypKey]int)
	var ahyps, bhyps queue

	for _, name := range sortedHypNames(f.Hyps) {
		hypTree, hypTy, ok := fromPropType(f.Hyps[name], elements, sets)
		if !ok {
			// An unrecognized hypothesis constructor is a benign skip —
			// only an unrecognized goal is an error.
			continue
		}
		if !term.Equal(hypTy, goalTy) {
			continue
		}
		switch addHyp(hypTree, false, simpleHyps, &ahyps, &bhyps) {
		case 1:
			// Early contradiction while folding hypotheses closes the goal.
			return nil, nil
		case -1:
			return nil, &Error{Kind: BadHyp, Msg: "can't match", Term: f.Hyps[name]}
		}
	}

	switch dfs(goalTree, sentinelElement, simpleHyps, &ahyps, &bhyps) {
	case 1:
		return nil, nil
	case 0:
		return nil, &Error{Kind: CanNotSolve}
	default:
		return nil, &Error{Kind: BadGoal, Msg: "can't match hypothesis against goal"}
	}
}

// runAbsurd handles a bare False goal: there is no tree to decompose, so
// every recognized hypothesis (of any ambient type — False carries none
// of its own) is folded looking for the one contradiction that closes
// the goal outright.
func runAbsurd(f *proof.Frame) ([]*proof.Frame, error) {
	elements := newIdentifier()
	sets := newIdentifier()

	simpleHyps := make(map[hypKey]int)
	var ahyps, bhyps queue

	for _, name := range sortedHypNames(f.Hyps) {
		hypTree, _, ok := fromPropType(f.Hyps[name], elements, sets)
		if !ok {
			continue
		}
		switch addHyp(hypTree, false, simpleHyps, &ahyps, &bhyps) {
		case 1:
			return nil, nil
		case -1:
			return nil, &Error{Kind: BadHyp, Msg: "can't match", Term: f.Hyps[name]}
		}
	}
	return nil, &Error{Kind: CanNotSolve}
}

func sortedHypNames(hyps map[string]term.Term) []string {
	names := make([]string, 0, len(hyps))
	for name := range hyps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
