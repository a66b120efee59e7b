package engine

import (
	"testing"

	"github.com/hakimgo/hakimgo/pkg/term"
)

var u0 = term.Universe{Index: 0}

func TestAddAxiomWithTermRejectsDuplicate(t *testing.T) {
	e := New(nil)
	if err := e.AddAxiomWithTerm("foo", u0); err != nil {
		t.Fatalf("first declaration: %v", err)
	}
	err := e.AddAxiomWithTerm("foo", u0)
	if err == nil {
		t.Fatal("expected an error for a duplicate declaration")
	}
	var engErr *Error
	if !asError(err, &engErr) || engErr.Kind != DuplicateName {
		t.Fatalf("expected DuplicateName, got %v", err)
	}
}

func TestAddAxiomWithTermRejectsWild(t *testing.T) {
	e := New(nil)
	err := e.AddAxiomWithTerm("foo", term.Wild{Index: 0, Scope: 0})
	if err == nil {
		t.Fatal("expected an error for a wild-containing declaration")
	}
}

func TestAddAxiomWithTermRejectsNonUniverse(t *testing.T) {
	e := New(nil)
	if err := e.AddAxiomWithTerm("nat", u0); err != nil {
		t.Fatalf("declaring nat: %v", err)
	}
	nat := term.Axiom{Ty: u0, UniqueName: "nat"}
	if err := e.AddAxiomWithTerm("zero", nat); err != nil {
		t.Fatalf("declaring zero : nat: %v", err)
	}
	err := e.AddAxiomWithTerm("bad", term.Axiom{Ty: nat, UniqueName: "zero"})
	if err == nil {
		t.Fatal("expected an error declaring a term whose type is not a universe")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	e := New(nil)
	if err := e.AddAxiomWithTerm("foo", u0); err != nil {
		t.Fatalf("declaring foo: %v", err)
	}
	clone := e.Clone()
	clone.DeclareUnchecked("bar", u0)
	if _, ok := e.Lookup("bar"); ok {
		t.Fatal("declaring on the clone leaked back into the original")
	}
	if _, ok := clone.Lookup("foo"); !ok {
		t.Fatal("clone lost an axiom declared before cloning")
	}
}

func TestRemoveNameUnchecked(t *testing.T) {
	e := New(nil)
	e.DeclareUnchecked("foo", u0)
	e.RemoveNameUnchecked("foo")
	if _, ok := e.Lookup("foo"); ok {
		t.Fatal("foo should have been removed")
	}
	for _, n := range e.Names() {
		if n == "foo" {
			t.Fatal("foo should not appear in Names after removal")
		}
	}
}

func TestNamesPreservesDeclarationOrder(t *testing.T) {
	e := New(nil)
	e.DeclareUnchecked("b", u0)
	e.DeclareUnchecked("a", u0)
	got := e.Names()
	want := []string{"b", "a"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}

func asError(err error, target **Error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	*target = e
	return true
}
