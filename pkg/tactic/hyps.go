package tactic

import (
	"strings"

	"github.com/hakimgo/hakimgo/pkg/infer"
	"github.com/hakimgo/hakimgo/pkg/proof"
)

// addHypTactic asserts a new hypothesis: "add_hyp name prop" checks prop
// elaborates to a well-formed type, then produces two successors — a
// side goal to prove prop, and the continuation with prop assumed.
// The side goal is returned last so it becomes the newly focused frame.
func addHypTactic(f *proof.Frame, args []string, ask Asker) ([]*proof.Frame, error) {
	if len(args) < 2 {
		return nil, &Error{Kind: BadArg, Msg: "add_hyp needs a name and a proposition"}
	}
	name, propText := args[0], strings.Join(args[1:], " ")
	if _, exists := f.Hyps[name]; exists {
		return nil, &Error{Kind: BadArg, Msg: "hypothesis name already in use: " + name}
	}

	e := engineWithHyps(f)
	prop, err := e.ParseText(propText)
	if err != nil {
		return nil, &Error{Kind: BadHyp, Msg: err.Error()}
	}
	if _, err := e.CalcTypeAndInfer(prop, infer.New(0)); err != nil {
		return nil, &Error{Kind: BadHyp, Msg: "proposition does not type-check", Term: prop}
	}

	continuation := f.Clone()
	continuation.Hyps[name] = prop

	sideGoal := f.Clone()
	sideGoal.Goal = prop

	return []*proof.Frame{continuation, sideGoal}, nil
}

// removeHypTactic drops a hypothesis, rejecting removal when the goal
// or another hypothesis's type still mentions it.
func removeHypTactic(f *proof.Frame, args []string, ask Asker) ([]*proof.Frame, error) {
	if len(args) != 1 {
		return nil, &Error{Kind: BadArg, Msg: "remove_hyp takes exactly one name"}
	}
	name := args[0]
	if _, exists := f.Hyps[name]; !exists {
		return nil, &Error{Kind: UnknownHyp, Name: name}
	}
	if f.DependsOn(name) {
		return nil, &Error{Kind: ContextDependOnHyp, Name: name, Term: f.Goal}
	}
	next := f.Clone()
	delete(next.Hyps, name)
	return []*proof.Frame{next}, nil
}
