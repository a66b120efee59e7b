// Package engine maintains the dictionary of named axioms an Engine value
// declares, and drives the type-checker over top-level declarations and
// arbitrary terms produced by parsing surface text.
package engine

import (
	"github.com/hakimgo/hakimgo/pkg/infer"
	"github.com/hakimgo/hakimgo/pkg/term"
)

// TextParser turns surface syntax into a Term, resolving identifiers
// against the axioms an Engine has declared. Parsing itself is an
// external collaborator; this interface is the seam a concrete parser
// plugs into.
type TextParser interface {
	Parse(text string, e *Engine) (term.Term, error)
}

// Engine is a mapping from unique axiom name to declared type, plus the
// parser used to resolve surface text against it. An Engine is cheaply
// cloned: the declaration map is copied but the terms inside it are
// shared, since Term values are immutable.
type Engine struct {
	axioms map[string]term.Term
	order  []string
	parser TextParser
}

// New returns an empty engine using p to resolve surface text.
func New(p TextParser) *Engine {
	return &Engine{axioms: make(map[string]term.Term), parser: p}
}

// Clone returns an independent copy; mutating the clone's declarations
// never affects e's.
func (e *Engine) Clone() *Engine {
	clone := &Engine{
		axioms: make(map[string]term.Term, len(e.axioms)),
		order:  append([]string(nil), e.order...),
		parser: e.parser,
	}
	for k, v := range e.axioms {
		clone.axioms[k] = v
	}
	return clone
}

// Lookup returns the declared type of name, if any.
func (e *Engine) Lookup(name string) (term.Term, bool) {
	t, ok := e.axioms[name]
	return t, ok
}

// Names returns declared axiom names in declaration order.
func (e *Engine) Names() []string {
	return append([]string(nil), e.order...)
}

// AddAxiomWithTerm type-checks ty (it must resolve to a universe),
// rejects a duplicate or wild-containing declaration, and inserts
// Axiom{ty, name} into the dictionary.
func (e *Engine) AddAxiomWithTerm(name string, ty term.Term) error {
	if _, exists := e.axioms[name]; exists {
		return &Error{Kind: DuplicateName, Name: name}
	}
	if term.ContainsWild(ty) {
		return &Error{Kind: ContainsWild, Name: name}
	}
	tyOfTy, err := infer.Type(ty)
	if err != nil {
		return err
	}
	if _, ok := term.Normalize(tyOfTy).(term.Universe); !ok {
		return &Error{Kind: NotAUniverse, Name: name, Ty: tyOfTy}
	}
	e.axioms[name] = ty
	e.order = append(e.order, name)
	return nil
}

// DeclareUnchecked inserts Axiom{ty, name} without re-checking ty's
// universe or rejecting duplicates; used by pkg/proof to lift a frame's
// already-validated local hypotheses into the engine a tactic parses
// its argument text against.
func (e *Engine) DeclareUnchecked(name string, ty term.Term) {
	if _, exists := e.axioms[name]; !exists {
		e.order = append(e.order, name)
	}
	e.axioms[name] = ty
}

// RemoveNameUnchecked removes name, assuming the caller has verified no
// remaining declaration references it.
func (e *Engine) RemoveNameUnchecked(name string) {
	if _, exists := e.axioms[name]; !exists {
		return
	}
	delete(e.axioms, name)
	for i, n := range e.order {
		if n == name {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// CalcTypeAndInfer runs the type-checker on t under an empty context,
// using infers to resolve holes, and returns the fully-filled type.
func (e *Engine) CalcTypeAndInfer(t term.Term, infers *infer.Results) (term.Term, error) {
	ty, err := infer.TypeOf(t, nil, infers)
	if err != nil {
		return nil, err
	}
	return infers.Fill(ty), nil
}

// ParseText parses s, resolving free identifiers against e's
// declarations.
func (e *Engine) ParseText(s string) (term.Term, error) {
	return e.parser.Parse(s, e)
}
