package autoset

import "github.com/hakimgo/hakimgo/pkg/term"

// identifier interns distinct terms to small integer ids, starting at 1
// (0 is reserved — see the Outset search rule in search.go).
type identifier struct {
	ids     map[term.Term]uint16
	counter uint16
}

func newIdentifier() *identifier {
	return &identifier{ids: make(map[term.Term]uint16), counter: 1}
}

func (id *identifier) get(t term.Term) uint16 {
	if v, ok := id.ids[t]; ok {
		return v
	}
	v := id.counter
	id.ids[t] = v
	id.counter++
	return v
}

// fromSetType reads t as a set-algebra expression: a 3-argument
// application of union/intersection/setminus (the first argument being
// an ambient element-type parameter), or otherwise an atomic set.
func fromSetType(t term.Term, sets *identifier) Tree {
	if a3, ok := t.(term.App); ok {
		if a2, ok := a3.Func.(term.App); ok {
			if a1, ok := a2.Func.(term.App); ok {
				if axiom, ok := a1.Func.(term.Axiom); ok {
					switch axiom.UniqueName {
					case "union":
						return Union{A: fromSetType(a2.Op, sets), B: fromSetType(a3.Op, sets)}
					case "intersection":
						return Intersection{A: fromSetType(a2.Op, sets), B: fromSetType(a3.Op, sets)}
					case "setminus":
						return Setminus{A: fromSetType(a2.Op, sets), B: fromSetType(a3.Op, sets)}
					}
				}
			}
		}
	}
	return SetLeaf{ID: sets.get(t)}
}

// setOfType builds the term "set ty" used to compare two propositions'
// ambient element types for equality before folding them together.
func setOfType(ty term.Term) term.Term {
	return term.App{Func: term.Axiom{Ty: term.Universe{Index: 0}, UniqueName: "set"}, Op: ty}
}

// fromPropType reads t as a set-algebra proposition — inset, included,
// eq, or a Forall ending in False standing for outset — returning the
// tree and the ambient element type the proposition was stated over.
// ok is false for any proposition shape auto_set does not recognize.
func fromPropType(t term.Term, elements, sets *identifier) (tree Tree, ty term.Term, ok bool) {
	if forall, isForall := t.(term.Forall); isForall {
		if axiom, isAxiom := forall.Body.(term.Axiom); isAxiom && axiom.UniqueName == "False" {
			if inner, innerTy, innerOK := fromPropType(forall.VarTy, elements, sets); innerOK {
				if inset, isInset := inner.(Inset); isInset {
					return Outset{Elem: inset.Elem, Set: inset.Set}, innerTy, true
				}
			}
		}
	}

	a3, ok := t.(term.App)
	if !ok {
		return nil, nil, false
	}
	a2, ok := a3.Func.(term.App)
	if !ok {
		return nil, nil, false
	}
	a1, ok := a2.Func.(term.App)
	if !ok {
		return nil, nil, false
	}
	axiom, ok := a1.Func.(term.Axiom)
	if !ok {
		return nil, nil, false
	}

	switch axiom.UniqueName {
	case "inset":
		return Inset{Elem: elements.get(a2.Op), Set: fromSetType(a3.Op, sets)}, setOfType(a1.Op), true
	case "included":
		return Included{A: fromSetType(a2.Op, sets), B: fromSetType(a3.Op, sets)}, setOfType(a1.Op), true
	case "eq":
		return Eq{A: fromSetType(a2.Op, sets), B: fromSetType(a3.Op, sets)}, a1.Op, true
	default:
		return nil, nil, false
	}
}
