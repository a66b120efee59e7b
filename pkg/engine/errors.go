package engine

import (
	"fmt"

	"github.com/hakimgo/hakimgo/pkg/term"
)

// Kind discriminates the engine-side error kinds.
type Kind int

const (
	DuplicateName Kind = iota
	UnknownName
	NotAUniverse
	ContainsWild
)

// Error is the engine-side error type.
type Error struct {
	Kind Kind
	Name string
	Ty   term.Term
}

func (e *Error) Error() string {
	switch e.Kind {
	case DuplicateName:
		return fmt.Sprintf("axiom %q is already declared", e.Name)
	case UnknownName:
		return fmt.Sprintf("no axiom named %q", e.Name)
	case NotAUniverse:
		return fmt.Sprintf("declared type of %q does not resolve to a universe, got %s", e.Name, e.Ty)
	case ContainsWild:
		return fmt.Sprintf("declared type of %q may not contain a wild", e.Name)
	default:
		return "unknown engine error"
	}
}
