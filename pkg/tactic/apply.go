package tactic

import (
	"strings"

	"github.com/hakimgo/hakimgo/pkg/infer"
	"github.com/hakimgo/hakimgo/pkg/proof"
)

// applyTactic elaborates a fully-applied witness term against the
// focused goal: its type must match the goal up to unification on any
// wilds discovery introduces. Obligations left over after matching are
// reported as CanNotFindInstance so the host can loop and ask for the
// missing piece.
func applyTactic(f *proof.Frame, args []string, ask Asker) ([]*proof.Frame, error) {
	if len(args) == 0 {
		return nil, &Error{Kind: BadArg, Msg: "apply needs a term"}
	}
	text := strings.Join(args, " ")
	e := engineWithHyps(f)

	witness, err := e.ParseText(text)
	if err != nil {
		return nil, &Error{Kind: BadGoal, Msg: err.Error()}
	}

	infers := infer.New(0)
	witnessTy, err := e.CalcTypeAndInfer(witness, infers)
	if err != nil {
		return nil, err
	}
	if err := infer.MatchAndInfer(witnessTy, f.Goal, infers); err != nil {
		return nil, &Error{Kind: BadGoal, Msg: err.Error()}
	}
	if len(infers.Unresolved) > 0 {
		ob := infers.Unresolved[0]
		return nil, &Error{Kind: CanNotFindInstance, Term: ob.Eq[1]}
	}
	return nil, nil
}
