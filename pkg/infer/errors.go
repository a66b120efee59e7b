package infer

import (
	"errors"
	"fmt"

	"github.com/hakimgo/hakimgo/pkg/term"
)

// Kind discriminates the closed set of kernel error kinds.
type Kind int

const (
	BadTerm Kind = iota
	IsNotFunc
	ContainsWildKind
	IsNotUniverse
	TypeMismatch
	ForeignVariableInTerm
	LoopOfInference
	WildNeedLocalVar
)

// Error is the kernel-side error type. A is the primary offending term,
// B the secondary one (TypeMismatch's right-hand side), Ty an inferred
// type (IsNotFunc), and Hole a hole index (ForeignVariableInTerm,
// LoopOfInference, WildNeedLocalVar).
type Error struct {
	Kind Kind
	A, B term.Term
	Ty   term.Term
	Hole int
}

func (e *Error) Error() string {
	switch e.Kind {
	case BadTerm:
		return "bad term"
	case IsNotFunc:
		return fmt.Sprintf("%s has type %s, which is not a function type", e.A, e.Ty)
	case ContainsWildKind:
		return "term contains a wild"
	case IsNotUniverse:
		return "expected a universe"
	case TypeMismatch:
		return fmt.Sprintf("type mismatch: %s ≢ %s", e.A, e.B)
	case ForeignVariableInTerm:
		return fmt.Sprintf("variable $%d is foreign to this context", e.Hole)
	case LoopOfInference:
		return fmt.Sprintf("hole ?%d occurs in its own assignment %s", e.Hole, e.A)
	case WildNeedLocalVar:
		return fmt.Sprintf("hole ?%d cannot depend on the local variable being removed", e.Hole)
	default:
		return "unknown inference error"
	}
}

// Is reports whether err is (or wraps) an *Error of the given kind — the
// Go analogue of matching on the Rust Error enum's variant.
func Is(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == k
	}
	return false
}

// inMatching wraps err with the outer terms being matched, the way the
// source kernel's ErrorContext::InMatching names the unification step a
// failure occurred in.
func inMatching(err error, t1, t2 term.Term) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("in matching %s ≡ %s: %w", t1, t2, err)
}

// inTypechecking wraps err with the outer term being type-checked.
func inTypechecking(err error, t term.Term) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("in typechecking %s: %w", t, err)
}
