package term

import "testing"

func u(k int) Term { return Universe{Index: k} }
func v(i int) Term { return Var{Index: i} }
func w(i, s int) Term { return Wild{Index: i, Scope: s} }

func TestEqual(t *testing.T) {
	t.Run("axioms compare by unique name, not type", func(t *testing.T) {
		a1 := Axiom{Ty: u(0), UniqueName: "x"}
		a2 := Axiom{Ty: u(5), UniqueName: "x"}
		if !Equal(a1, a2) {
			t.Error("axioms with the same unique name should be equal regardless of Ty")
		}
	})

	t.Run("axioms with different names differ", func(t *testing.T) {
		a1 := Axiom{Ty: u(0), UniqueName: "x"}
		a2 := Axiom{Ty: u(0), UniqueName: "y"}
		if Equal(a1, a2) {
			t.Error("axioms with different unique names should not be equal")
		}
	})

	t.Run("structural equality recurses through App", func(t *testing.T) {
		t1 := App{Func: v(0), Op: v(1)}
		t2 := App{Func: v(0), Op: v(1)}
		t3 := App{Func: v(0), Op: v(2)}
		if !Equal(t1, t2) {
			t.Error("identical Apps should be equal")
		}
		if Equal(t1, t3) {
			t.Error("Apps with different op should not be equal")
		}
	})

	t.Run("different variants never equal", func(t *testing.T) {
		if Equal(v(0), w(0, 0)) {
			t.Error("Var and Wild should never be equal")
		}
	})
}

func TestContainsWild(t *testing.T) {
	if ContainsWild(App{Func: v(0), Op: v(1)}) {
		t.Error("term with no wilds reported as containing one")
	}
	if !ContainsWild(App{Func: v(0), Op: w(0, 0)}) {
		t.Error("term containing a wild not detected")
	}
	if !ContainsWild(Forall{Abstraction{VarTy: w(0, 0), Body: u(0)}}) {
		t.Error("wild under a binder not detected")
	}
}

// TestIncreaseRemoveRoundTrip enforces the round-trip invariant:
// remove_unused_var(increase_foreign_vars(t, depth), depth) == t
func TestIncreaseRemoveRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		term  Term
		depth int
	}{
		{"bare var below depth", v(0), 1},
		{"application of two vars", App{Func: v(0), Op: v(2)}, 1},
		{"forall binding fresh var", Forall{Abstraction{VarTy: v(0), Body: v(1)}}, 0},
		{"axiom passes through untouched", Axiom{Ty: u(0), UniqueName: "z"}, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lifted := IncreaseForeignVars(c.term, c.depth)
			back, ok := RemoveUnusedVar(lifted, c.depth)
			if !ok {
				t.Fatalf("RemoveUnusedVar failed after IncreaseForeignVars")
			}
			if !Equal(back, c.term) {
				t.Errorf("round trip mismatch: got %s, want %s", back, c.term)
			}
		})
	}

	t.Run("fails when the bound variable is actually used", func(t *testing.T) {
		if _, ok := RemoveUnusedVar(v(0), 0); ok {
			t.Error("expected RemoveUnusedVar to fail when Var(depth) occurs")
		}
	})
}

func TestSubstAndNormalize(t *testing.T) {
	t.Run("subst replaces Var(0) and decrements outer vars", func(t *testing.T) {
		// (1 0) [:= 9]  ~>  (0 9): Var(0) is replaced, Var(1) loses its binder and shifts down.
		body := App{Func: v(1), Op: v(0)}
		got := Subst(body, Number{Value: 9})
		want := App{Func: v(0), Op: Number{Value: 9}}
		if !Equal(got, want) {
			t.Errorf("subst mismatch: got %s want %s", got, want)
		}
	})

	t.Run("normalize beta-reduces App(Fun, arg)", func(t *testing.T) {
		// (fun (_:U0) => $0) 7  ~>  7
		lam := Fun{Abstraction{VarTy: u(0), Body: v(0)}}
		got := Normalize(App{Func: lam, Op: Number{Value: 7}})
		if !Equal(got, Number{Value: 7}) {
			t.Errorf("beta reduction mismatch: got %s", got)
		}
	})

	t.Run("normalize matches direct subst for any body/arg (property 2)", func(t *testing.T) {
		lam := Fun{Abstraction{VarTy: u(0), Body: App{Func: v(0), Op: v(0)}}}
		arg := Number{Value: 3}
		viaNormalize := Normalize(App{Func: lam, Op: arg})
		viaSubst := Normalize(Subst(lam.Body, arg))
		if !Equal(viaNormalize, viaSubst) {
			t.Errorf("normalize(App(Fun,t)) != normalize(subst(body,t)): %s vs %s", viaNormalize, viaSubst)
		}
	})

	t.Run("normalize leaves neutral applications alone", func(t *testing.T) {
		neutral := App{Func: v(0), Op: v(1)}
		if !Equal(Normalize(neutral), neutral) {
			t.Error("normalize should not touch a stuck application")
		}
	})
}

func TestFillWild(t *testing.T) {
	t0 := App{Func: w(0, 0), Op: w(1, 2)}
	filled := FillWild(t0, func(index, scope int) Term {
		return Number{Value: index*10 + scope}
	})
	want := App{Func: Number{Value: 0}, Op: Number{Value: 12}}
	if !Equal(filled, want) {
		t.Errorf("FillWild mismatch: got %s want %s", filled, want)
	}
}

func TestReplaceVar(t *testing.T) {
	// ReplaceVar(($1 $2), depth 0, variable 2): $2 becomes $0, and $1,
	// which lies in [0, 2), shifts up to $2, giving ($2 $0).
	exp := App{Func: v(1), Op: v(2)}
	got := ReplaceVar(exp, 0, 2)
	want := App{Func: v(2), Op: v(0)}
	if !Equal(got, want) {
		t.Errorf("ReplaceVar mismatch: got %s want %s", got, want)
	}
}

func TestPredictAxiom(t *testing.T) {
	tm := Forall{Abstraction{VarTy: Axiom{Ty: u(0), UniqueName: "nat"}, Body: v(0)}}
	if !PredictAxiom(tm, func(name string) bool { return name == "nat" }) {
		t.Error("expected to find axiom 'nat' under a binder")
	}
	if PredictAxiom(tm, func(name string) bool { return name == "bool" }) {
		t.Error("did not expect to find axiom 'bool'")
	}
}
