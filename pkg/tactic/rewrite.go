package tactic

import (
	"strings"

	"github.com/hakimgo/hakimgo/pkg/infer"
	"github.com/hakimgo/hakimgo/pkg/proof"
	"github.com/hakimgo/hakimgo/pkg/term"
)

// eqAxiomName is the unique name the Eq library declares the
// equality proposition constructor under; "rewrite" looks for a
// hypothesis of this applied shape.
const eqAxiomName = "eq"

// rewriteTactic rewrites every occurrence of l with r in the goal,
// given a hypothesis name whose type is eq A l r.
func rewriteTactic(f *proof.Frame, args []string, ask Asker) ([]*proof.Frame, error) {
	if len(args) != 1 {
		return nil, &Error{Kind: BadArg, Msg: "rewrite takes exactly one hypothesis name"}
	}
	name := args[0]
	ty, exists := f.Hyps[name]
	if !exists {
		return nil, &Error{Kind: UnknownHyp, Name: name}
	}
	l, r, ok := asEquality(ty)
	if !ok {
		return nil, &Error{Kind: BadHyp, Msg: "not an equality hypothesis", Term: ty}
	}
	next := f.Clone()
	next.Goal = structuralReplace(next.Goal, l, r)
	return []*proof.Frame{next}, nil
}

// replaceTactic rewrites fromText to toText in the goal, leaving a side
// goal to justify the equality (the dual of rewrite, for when no
// hypothesis already proves it).
func replaceTactic(f *proof.Frame, args []string, ask Asker) ([]*proof.Frame, error) {
	if len(args) < 2 {
		return nil, &Error{Kind: BadArg, Msg: "replace needs two terms"}
	}
	mid := len(args) / 2
	fromText := strings.Join(args[:mid], " ")
	toText := strings.Join(args[mid:], " ")

	e := engineWithHyps(f)
	from, err := e.ParseText(fromText)
	if err != nil {
		return nil, &Error{Kind: BadGoal, Msg: err.Error()}
	}
	to, err := e.ParseText(toText)
	if err != nil {
		return nil, &Error{Kind: BadGoal, Msg: err.Error()}
	}
	fromTy, err := e.CalcTypeAndInfer(from, infer.New(0))
	if err != nil {
		return nil, err
	}
	toTy, err := e.CalcTypeAndInfer(to, infer.New(0))
	if err != nil {
		return nil, err
	}
	if err := infer.MatchAndInfer(fromTy, toTy, infer.New(0)); err != nil {
		return nil, &Error{Kind: BadGoal, Msg: "replace terms do not have matching types"}
	}

	continuation := f.Clone()
	continuation.Goal = structuralReplace(continuation.Goal, from, to)

	sideGoal := f.Clone()
	sideGoal.Goal = term.App{Func: term.App{Func: term.App{
		Func: term.Axiom{Ty: fromTy, UniqueName: eqAxiomName}, Op: fromTy}, Op: from}, Op: to}

	return []*proof.Frame{continuation, sideGoal}, nil
}

// asEquality reports whether ty is (eq A l r), returning l and r.
func asEquality(ty term.Term) (l, r term.Term, ok bool) {
	a3, ok := ty.(term.App)
	if !ok {
		return nil, nil, false
	}
	a2, ok := a3.Func.(term.App)
	if !ok {
		return nil, nil, false
	}
	a1, ok := a2.Func.(term.App)
	if !ok {
		return nil, nil, false
	}
	axiom, ok := a1.Func.(term.Axiom)
	if !ok || axiom.UniqueName != eqAxiomName {
		return nil, nil, false
	}
	return a2.Op, a3.Op, true
}
