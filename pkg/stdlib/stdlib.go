// Package stdlib seeds a reduced but real instance of the axiom
// libraries the kernel treats as an external collaborator: Logic, Eq and
// Set declare real axioms that the worked end-to-end scenarios exercise;
// Arith, Sigma and Induction are named and load successfully but declare
// nothing, since the arithmetic tactics that would consume Arith are
// out of scope here.
package stdlib

import (
	"fmt"

	"github.com/hakimgo/hakimgo/pkg/engine"
	"github.com/hakimgo/hakimgo/pkg/term"
)

var u0 = term.Universe{Index: 0}

func forall(varTy, body term.Term) term.Term { return term.Forall{term.Abstraction{VarTy: varTy, Body: body}} }
func v(i int) term.Term                      { return term.Var{Index: i} }
func axiom(name string, ty term.Term) term.Term { return term.Axiom{Ty: ty, UniqueName: name} }

// Load declares name's axioms into e. Unknown names are rejected;
// Arith, Sigma and Induction are recognized but contribute nothing.
func Load(e *engine.Engine, name string) error {
	switch name {
	case "All":
		for _, lib := range []string{"Logic", "Eq", "Set", "Arith", "Sigma", "Induction"} {
			if err := Load(e, lib); err != nil {
				return err
			}
		}
		return nil
	case "Logic":
		return e.AddAxiomWithTerm("False", u0)
	case "Eq":
		return loadEq(e)
	case "Set":
		return loadSet(e)
	case "Arith", "Sigma", "Induction":
		return nil
	default:
		return fmt.Errorf("stdlib: unknown library %q", name)
	}
}

// loadEq declares generic Leibniz equality: eq T a b : U0, with
// eq_refl T x : eq T x x as its only introduction rule.
func loadEq(e *engine.Engine) error {
	// eq : forall (T:U0) (a:T) (b:T), U0
	eqTy := forall(u0, forall(v(0), forall(v(1), u0)))
	if err := e.AddAxiomWithTerm("eq", eqTy); err != nil {
		return err
	}
	// eq_refl : forall (T:U0) (x:T), eq T x x
	eqReflTy := forall(u0, forall(v(0), term.App{
		Func: term.App{Func: term.App{Func: axiom("eq", eqTy), Op: v(1)}, Op: v(0)},
		Op:   v(0),
	}))
	return e.AddAxiomWithTerm("eq_refl", eqReflTy)
}

// loadSet declares a Set universe over an ambient element type, the
// three set operations, and the inset/included membership predicates
// auto_set's translation layer recognizes (pkg/autoset).
func loadSet(e *engine.Engine) error {
	// set : forall (T:U0), U0
	setTy := forall(u0, u0)
	if err := e.AddAxiomWithTerm("set", setTy); err != nil {
		return err
	}
	setOfT := term.App{Func: axiom("set", setTy), Op: v(0)}

	// union, intersection, setminus : forall (T:U0) (A:set T) (B:set T), set T
	binOpTy := forall(u0, forall(setOfT, forall(shift(setOfT), shift(shift(setOfT)))))
	for _, name := range []string{"union", "intersection", "setminus"} {
		if err := e.AddAxiomWithTerm(name, binOpTy); err != nil {
			return err
		}
	}

	// inset : forall (T:U0) (x:T) (A:set T), U0
	insetTy := forall(u0, forall(v(0), forall(shift(setOfT), u0)))
	if err := e.AddAxiomWithTerm("inset", insetTy); err != nil {
		return err
	}

	// included : forall (T:U0) (A:set T) (B:set T), U0
	includedTy := forall(u0, forall(setOfT, forall(shift(setOfT), u0)))
	return e.AddAxiomWithTerm("included", includedTy)
}

// shift lifts a term one extra binder deeper, for building the Abstraction
// chains above where the same "set T" shape is reused under progressively
// more enclosing foralls.
func shift(t term.Term) term.Term { return term.IncreaseForeignVars(t, 0) }
