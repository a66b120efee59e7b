package infer

import (
	"testing"

	"github.com/hakimgo/hakimgo/pkg/term"
)

func TestResultsAssignAndRelax(t *testing.T) {
	r := New(2)
	w0 := r.Get(0)
	if !r.IsUnknown(0) {
		t.Fatalf("fresh hole 0 should be unknown, got %s", w0)
	}
	if err := r.set(0, term.Number{Value: 5}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if r.IsUnknown(0) {
		t.Fatal("hole 0 should be known after set")
	}
	if got := r.Get(0); !term.Equal(got, term.Number{Value: 5}) {
		t.Errorf("Get(0) = %s, want 5", got)
	}
}

func TestResultsOccursCheck(t *testing.T) {
	r := New(1)
	loop := term.App{Func: term.Wild{Index: 0, Scope: 0}, Op: term.Number{Value: 1}}
	err := r.set(0, loop)
	if !Is(err, LoopOfInference) {
		t.Fatalf("expected LoopOfInference, got %v", err)
	}
}

func TestResultsTypeOfTermHoleIsPairedTypeHole(t *testing.T) {
	r := New(1)
	if got, want := r.TypeOf(0), r.Get(1); !term.Equal(got, want) {
		t.Errorf("TypeOf(termHole) = %s, want paired type hole %s", got, want)
	}
}

func TestResultsTypeOfTypeHoleIsUniverseZero(t *testing.T) {
	r := New(1)
	if got := r.TypeOf(1); !term.Equal(got, term.Universe{Index: 0}) {
		t.Errorf("TypeOf(typeHole) = %s, want Universe(0)", got)
	}
}

func TestMatchAndInferAssignsUnknownWild(t *testing.T) {
	r := New(1)
	if err := MatchAndInfer(term.Wild{Index: 0, Scope: 0}, term.Number{Value: 42}, r); err != nil {
		t.Fatalf("MatchAndInfer: %v", err)
	}
	if got := r.Get(0); !term.Equal(got, term.Number{Value: 42}) {
		t.Errorf("hole 0 = %s, want 42", got)
	}
}

func TestMatchAndInferRejectsMismatch(t *testing.T) {
	r := New(0)
	err := MatchAndInfer(term.Number{Value: 1}, term.Number{Value: 2}, r)
	if !Is(err, TypeMismatch) {
		t.Fatalf("expected TypeMismatch, got %v", err)
	}
}

func TestMatchAndInferStructuralRecursion(t *testing.T) {
	r := New(1)
	t1 := term.App{Func: term.Number{Value: 1}, Op: term.Wild{Index: 0, Scope: 0}}
	t2 := term.App{Func: term.Number{Value: 1}, Op: term.Number{Value: 9}}
	if err := MatchAndInfer(t1, t2, r); err != nil {
		t.Fatalf("MatchAndInfer: %v", err)
	}
	if got := r.Get(0); !term.Equal(got, term.Number{Value: 9}) {
		t.Errorf("hole 0 = %s, want 9", got)
	}
}

func TestTypeOfAxiomAndUniverse(t *testing.T) {
	nat := term.Axiom{Ty: term.Universe{Index: 0}, UniqueName: "nat"}
	ty, err := Type(nat)
	if err != nil {
		t.Fatalf("Type: %v", err)
	}
	if !term.Equal(ty, term.Universe{Index: 0}) {
		t.Errorf("Type(nat) = %s, want Universe(0)", ty)
	}

	ty2, err := Type(term.Universe{Index: 3})
	if err != nil {
		t.Fatalf("Type: %v", err)
	}
	if !term.Equal(ty2, term.Universe{Index: 4}) {
		t.Errorf("Type(Universe 3) = %s, want Universe(4)", ty2)
	}
}

func TestTypeOfIdentityFunction(t *testing.T) {
	// fun (x : U0) => x  :  forall (_:U0), U0
	idFn := term.Fun{term.Abstraction{VarTy: term.Universe{Index: 0}, Body: term.Var{Index: 0}}}
	ty, err := Type(idFn)
	if err != nil {
		t.Fatalf("Type: %v", err)
	}
	forall, ok := ty.(term.Forall)
	if !ok {
		t.Fatalf("Type(id) = %s, want a Forall", ty)
	}
	if !term.Equal(forall.VarTy, term.Universe{Index: 0}) {
		t.Errorf("forall.VarTy = %s, want Universe(0)", forall.VarTy)
	}
	if !term.Equal(forall.Body, term.Universe{Index: 0}) {
		t.Errorf("forall.Body = %s, want Universe(0)", forall.Body)
	}
}

func TestTypeOfApplicationSubstitutes(t *testing.T) {
	// (fun (x : U1) => x) U0  :  U1
	idFn := term.Fun{term.Abstraction{VarTy: term.Universe{Index: 1}, Body: term.Var{Index: 0}}}
	app := term.App{Func: idFn, Op: term.Universe{Index: 0}}
	ty, err := Type(app)
	if err != nil {
		t.Fatalf("Type: %v", err)
	}
	if !term.Equal(ty, term.Universe{Index: 1}) {
		t.Errorf("Type(app) = %s, want Universe(1)", ty)
	}
}

func TestTypeRejectsWildTerm(t *testing.T) {
	_, err := Type(term.Wild{Index: 0, Scope: 0})
	if !Is(err, ContainsWildKind) {
		t.Fatalf("expected ContainsWildKind, got %v", err)
	}
}

func TestTypeOfDependentIdentityLiftsOuterVar(t *testing.T) {
	// fun (T : U0) => fun (x : T) => x  :  forall (T:U0), forall (x:T), T
	//
	// Checking the inner body's type must see T's reference shifted from
	// Var(0) (relative to the outer, one-variable context) to Var(1)
	// (relative to the combined two-variable context) now that x has
	// been pushed in front of it. A context push that forgets to lift
	// existing entries would instead report the inner type as Var(0),
	// i.e. "x : x" rather than "x : T".
	depIdentity := term.Fun{term.Abstraction{
		VarTy: term.Universe{Index: 0},
		Body: term.Fun{term.Abstraction{
			VarTy: term.Var{Index: 0},
			Body:  term.Var{Index: 0},
		}},
	}}

	ty, err := Type(depIdentity)
	if err != nil {
		t.Fatalf("Type: %v", err)
	}

	outer, ok := ty.(term.Forall)
	if !ok {
		t.Fatalf("Type(depIdentity) = %s, want a Forall", ty)
	}
	if !term.Equal(outer.VarTy, term.Universe{Index: 0}) {
		t.Errorf("outer.VarTy = %s, want Universe(0)", outer.VarTy)
	}
	inner, ok := outer.Body.(term.Forall)
	if !ok {
		t.Fatalf("outer.Body = %s, want a Forall", outer.Body)
	}
	if !term.Equal(inner.VarTy, term.Var{Index: 0}) {
		t.Errorf("inner.VarTy = %s, want Var(0) (T)", inner.VarTy)
	}
	if !term.Equal(inner.Body, term.Var{Index: 1}) {
		t.Errorf("inner.Body = %s, want Var(1) (T, lifted past x) — context push is not lifting existing entries", inner.Body)
	}
}

func TestTypeOfApplicationToNonFunctionFails(t *testing.T) {
	app := term.App{Func: term.Number{Value: 1}, Op: term.Number{Value: 2}}
	_, err := Type(app)
	if !Is(err, IsNotFunc) {
		t.Fatalf("expected IsNotFunc, got %v", err)
	}
}
