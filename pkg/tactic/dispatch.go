package tactic

import (
	"strconv"

	"github.com/hakimgo/hakimgo/pkg/engine"
	"github.com/hakimgo/hakimgo/pkg/proof"
	"github.com/hakimgo/hakimgo/pkg/term"
)

// Asker is the host's prompt callback, passed through RunLine to every
// tactic. No tactic in this package calls it: a missing witness is
// returned to the caller as a CanNotFindInstance error.
type Asker func(prompt string) (answer string, cancel bool)

type tacticFunc func(f *proof.Frame, args []string, ask Asker) ([]*proof.Frame, error)

var dispatchTable = map[string]tacticFunc{
	"intros":     introsTactic,
	"rewrite":    rewriteTactic,
	"replace":    replaceTactic,
	"apply":      applyTactic,
	"add_hyp":    addHypTactic,
	"remove_hyp": removeHypTactic,
	"ring":       ringTactic,
	"lia":        liaTactic,
	"auto_set":   autoSetTactic,
}

// RunLine tokenizes line and applies it to sess's current snapshot,
// appending a new record on success. "Undo" and "Switch n" are handled
// directly against the session/snapshot rather than through the
// tactic table.
func RunLine(sess *proof.Session, line string, ask Asker) error {
	toks := smartSplit(line)
	if len(toks) == 0 {
		return &Error{Kind: EmptyTactic}
	}

	switch toks[0] {
	case "Undo":
		if err := sess.Undo(); err != nil {
			return &Error{Kind: CanNotUndo}
		}
		return nil
	case "Switch":
		if len(toks) != 2 {
			return &Error{Kind: BadArg, Msg: "Switch takes exactly one argument"}
		}
		n, err := strconv.Atoi(toks[1])
		if err != nil {
			return &Error{Kind: BadArg, Msg: "Switch argument must be an integer"}
		}
		next, err := sess.Current().SwitchFrame(n)
		if err != nil {
			return &Error{Kind: BadArg, Msg: err.Error()}
		}
		sess.Append(line, next)
		return nil
	}

	fn, ok := dispatchTable[toks[0]]
	if !ok {
		return &Error{Kind: UnknownTactic, Name: toks[0]}
	}

	snap := sess.Current()
	focused := snap.Focused()
	if focused == nil {
		return &Error{Kind: BadGoal, Msg: "no open subgoal"}
	}
	successors, err := fn(focused, toks[1:], ask)
	if err != nil {
		return err
	}
	sess.Append(line, snap.WithSuccessors(successors))
	return nil
}

// engineWithHyps returns a clone of f.Engine with every local
// hypothesis additionally declared, so tactic argument text can
// reference them by name.
func engineWithHyps(f *proof.Frame) *engine.Engine {
	e := f.Engine.Clone()
	for name, ty := range f.Hyps {
		e.DeclareUnchecked(name, ty)
	}
	return e
}

// structuralReplace rewrites every subterm structurally equal to from
// into to.
func structuralReplace(t, from, to term.Term) term.Term {
	if term.Equal(t, from) {
		return to
	}
	switch x := t.(type) {
	case term.App:
		return term.App{Func: structuralReplace(x.Func, from, to), Op: structuralReplace(x.Op, from, to)}
	case term.Forall:
		return term.Forall{term.Abstraction{
			VarTy:    structuralReplace(x.VarTy, from, to),
			Body:     structuralReplace(x.Body, from, to),
			HintName: x.HintName,
		}}
	case term.Fun:
		return term.Fun{term.Abstraction{
			VarTy:    structuralReplace(x.VarTy, from, to),
			Body:     structuralReplace(x.Body, from, to),
			HintName: x.HintName,
		}}
	default:
		return t
	}
}
