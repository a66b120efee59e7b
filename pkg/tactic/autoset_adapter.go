package tactic

import (
	"github.com/hakimgo/hakimgo/pkg/autoset"
	"github.com/hakimgo/hakimgo/pkg/proof"
)

// autoSetTactic routes to the set-algebra decision procedure, translating
// its own error kinds into the tactic-side taxonomy.
func autoSetTactic(f *proof.Frame, args []string, ask Asker) ([]*proof.Frame, error) {
	successors, err := autoset.Run(f)
	if err == nil {
		return successors, nil
	}
	ae, ok := err.(*autoset.Error)
	if !ok {
		return nil, err
	}
	switch ae.Kind {
	case autoset.CanNotSolve:
		return nil, &Error{Kind: CanNotSolve, Name: "auto_set"}
	case autoset.BadHyp:
		return nil, &Error{Kind: BadHyp, Msg: ae.Msg, Term: ae.Term}
	default:
		return nil, &Error{Kind: BadGoal, Msg: ae.Msg}
	}
}
