package tactic

import (
	"github.com/hakimgo/hakimgo/pkg/proof"
	"github.com/hakimgo/hakimgo/pkg/term"
)

// introsTactic peels one Forall binder per argument name, turning the
// bound variable into a named local hypothesis. Subst doubles as both
// the capture-avoiding substitution and the de Bruijn
// renumbering this needs).
func introsTactic(f *proof.Frame, args []string, ask Asker) ([]*proof.Frame, error) {
	if len(args) == 0 {
		return nil, &Error{Kind: BadArg, Msg: "intros needs at least one name"}
	}
	next := f.Clone()
	for _, name := range args {
		forall, ok := next.Goal.(term.Forall)
		if !ok {
			return nil, &Error{Kind: BadGoal, Msg: "goal is not a forall", Term: next.Goal}
		}
		if _, exists := next.Hyps[name]; exists {
			return nil, &Error{Kind: BadArg, Msg: "hypothesis name already in use: " + name}
		}
		next.Hyps[name] = forall.VarTy
		next.Goal = term.Subst(forall.Body, term.Axiom{Ty: forall.VarTy, UniqueName: name})
	}
	return []*proof.Frame{next}, nil
}
