package parser

import (
	"fmt"
	"strconv"

	"github.com/hakimgo/hakimgo/pkg/term"
)

// Unparse renders t back into this package's own surface syntax, so the
// result round-trips through Parse against the same engine t was built
// from. Every Forall/Fun gets a synthesized scope name: t's HintName
// when it is non-empty and not already in scope, otherwise a generated
// "x<depth>" — generated rather than reused blindly, since a shadowed
// HintName would make an inner Var resolve to the wrong binder.
func Unparse(t term.Term) string {
	return unparse(t, nil)
}

func unparse(t term.Term, scope []string) string {
	switch x := t.(type) {
	case term.Axiom:
		return x.UniqueName
	case term.Universe:
		return "U" + strconv.Itoa(x.Index)
	case term.Number:
		return strconv.Itoa(x.Value)
	case term.Var:
		i := len(scope) - 1 - x.Index
		if i >= 0 && i < len(scope) {
			return scope[i]
		}
		return "$" + strconv.Itoa(x.Index)
	case term.App:
		return fmt.Sprintf("(%s %s)", unparse(x.Func, scope), unparse(x.Op, scope))
	case term.Forall:
		return unparseBinder("forall", x.Abstraction, scope)
	case term.Fun:
		return unparseBinder("fun", x.Abstraction, scope)
	default:
		return t.String()
	}
}

func unparseBinder(kind string, abs term.Abstraction, scope []string) string {
	name := abs.HintName
	if name == "" || inScope(name, scope) {
		name = "x" + strconv.Itoa(len(scope))
	}
	varTy := unparse(abs.VarTy, scope)
	body := unparse(abs.Body, append(append([]string{}, scope...), name))
	return fmt.Sprintf("(%s (%s %s) %s)", kind, name, varTy, body)
}

func inScope(name string, scope []string) bool {
	for _, s := range scope {
		if s == name {
			return true
		}
	}
	return false
}
