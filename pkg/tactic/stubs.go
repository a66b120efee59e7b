package tactic

import "github.com/hakimgo/hakimgo/pkg/proof"

// ringTactic and liaTactic are recognized tactic names with no
// implementation: arithmetic decision procedures are out of scope here.
// Both always report the goal unsolved so a
// tactic line naming them fails the same way an unsolvable auto_set
// call does, rather than as an unknown tactic.
func ringTactic(f *proof.Frame, args []string, ask Asker) ([]*proof.Frame, error) {
	return nil, &Error{Kind: CanNotSolve, Name: "ring"}
}

func liaTactic(f *proof.Frame, args []string, ask Asker) ([]*proof.Frame, error) {
	return nil, &Error{Kind: CanNotSolve, Name: "lia"}
}
