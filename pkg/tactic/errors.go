package tactic

import (
	"fmt"

	"github.com/hakimgo/hakimgo/pkg/term"
)

// Kind discriminates the tactic-side error kinds — a thin layer above
// the kernel errors raised by pkg/infer.
type Kind int

const (
	UnknownTactic Kind = iota
	EmptyTactic
	BadArg
	UnknownHyp
	ContextDependOnHyp
	CanNotSolve
	BadHyp
	BadGoal
	CanNotFindInstance
	CanNotUndo
)

// Error is the tactic-side error type.
type Error struct {
	Kind Kind
	Name string // tactic name (CanNotSolve), hyp name (UnknownHyp, ContextDependOnHyp)
	Msg  string // BadHyp, BadGoal free-form detail
	Term term.Term
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnknownTactic:
		return fmt.Sprintf("unknown tactic %q", e.Name)
	case EmptyTactic:
		return "empty tactic line"
	case BadArg:
		return fmt.Sprintf("bad argument: %s", e.Msg)
	case UnknownHyp:
		return fmt.Sprintf("no hypothesis named %q", e.Name)
	case ContextDependOnHyp:
		return fmt.Sprintf("%s still depends on hypothesis %q", e.Term, e.Name)
	case CanNotSolve:
		return fmt.Sprintf("%s could not solve the goal", e.Name)
	case BadHyp:
		return fmt.Sprintf("%s: %s", e.Msg, e.Term)
	case BadGoal:
		return fmt.Sprintf("bad goal: %s", e.Msg)
	case CanNotFindInstance:
		return fmt.Sprintf("could not find an instance for %s", e.Term)
	case CanNotUndo:
		return "nothing to undo"
	default:
		return "unknown tactic error"
	}
}
