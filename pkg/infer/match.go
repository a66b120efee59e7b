package infer

import "github.com/hakimgo/hakimgo/pkg/term"

// MatchAndInfer unifies t1 and t2 up to β-reduction, assigning holes into
// infers as needed. Equations that cannot be solved uniquely at
// discovery time are recorded as obligations rather than failing.
func MatchAndInfer(t1, t2 term.Term, infers *Results) error {
	n1 := term.Normalize(t1)
	n2 := term.Normalize(t2)
	return inMatching(matchMain(n1, n2, infers), n1, n2)
}

// SubtypeAndInfer is match_and_infer specialized to the function-arg vs
// formal-parameter direction; this kernel treats the two identically.
func SubtypeAndInfer(t1, t2 term.Term, infers *Results) error {
	return MatchAndInfer(t1, t2, infers)
}

func isWild(t term.Term) (index, scope int, ok bool) {
	w, ok := t.(term.Wild)
	if !ok {
		return 0, 0, false
	}
	return w.Index, w.Scope, true
}

// funcIsWild walks the left spine of a chain of Apps looking for a Wild
// in function position: ?w a1 a2 ... ak.
func funcIsWild(t term.Term) (index, scope int, ok bool) {
	a, isApp := t.(term.App)
	if !isApp {
		return 0, 0, false
	}
	if i, s, ok := isWild(a.Func); ok {
		return i, s, true
	}
	return funcIsWild(a.Func)
}

func matchMain(t1, t2 term.Term, infers *Results) error {
	if i, s, ok := isWild(t1); ok {
		return matchWild(i, s, t2, infers)
	}
	if i, s, ok := isWild(t2); ok {
		return matchWild(i, s, t1, infers)
	}
	if w, s, ok := funcIsWild(t1); ok {
		return matchWildFunc([2]int{w, s}, t1, t2, infers)
	}
	if w, s, ok := funcIsWild(t2); ok {
		return matchWildFunc([2]int{w, s}, t2, t1, infers)
	}

	switch a1 := t1.(type) {
	case term.App:
		a2, ok := t2.(term.App)
		if ok {
			if err := matchMain(a1.Func, a2.Func, infers); err != nil {
				return err
			}
			return matchMain(a1.Op, a2.Op, infers)
		}
	case term.Axiom:
		if a2, ok := t2.(term.Axiom); ok {
			if a1.UniqueName == a2.UniqueName {
				return nil
			}
			return &Error{Kind: TypeMismatch, A: t1, B: t2}
		}
	case term.Universe:
		if a2, ok := t2.(term.Universe); ok {
			if a1.Index == a2.Index {
				return nil
			}
			return &Error{Kind: TypeMismatch, A: t1, B: t2}
		}
	case term.Number:
		if a2, ok := t2.(term.Number); ok {
			if a1.Value == a2.Value {
				return nil
			}
			return &Error{Kind: TypeMismatch, A: t1, B: t2}
		}
	case term.Forall:
		if a2, ok := t2.(term.Forall); ok {
			return matchAbs(a1.Abstraction, a2.Abstraction, infers)
		}
	case term.Fun:
		if a2, ok := t2.(term.Fun); ok {
			return matchAbs(a1.Abstraction, a2.Abstraction, infers)
		}
	case term.Var:
		if a2, ok := t2.(term.Var); ok {
			if a1.Index == a2.Index {
				return nil
			}
			return &Error{Kind: TypeMismatch, A: t1, B: t2}
		}
	}

	// η-like rule: one side is a Fun, the other any f — match
	// App(lift(f,0), Var 0) against the lambda's body.
	if lam, ok := t1.(term.Fun); ok {
		return matchMain(term.App{Func: term.IncreaseForeignVars(t2, 0), Op: term.Var{Index: 0}}, lam.Body, infers)
	}
	if lam, ok := t2.(term.Fun); ok {
		return matchMain(term.App{Func: term.IncreaseForeignVars(t1, 0), Op: term.Var{Index: 0}}, lam.Body, infers)
	}

	return &Error{Kind: TypeMismatch, A: t1, B: t2}
}

func matchAbs(a1, a2 term.Abstraction, infers *Results) error {
	if err := matchMain(a1.VarTy, a2.VarTy, infers); err != nil {
		return err
	}
	return matchMain(a1.Body, a2.Body, infers)
}

func matchWild(i, scope int, t term.Term, infers *Results) error {
	if infers.IsUnknown(i) {
		return infers.setWithScope(i, scope, t)
	}
	return matchMain(infers.GetWithScope(i, scope), t, infers)
}

// matchWildFunc implements the applied-hole matching rule: given
// wildFunc = ?w applied to one or more arguments, vs exp.
func matchWildFunc(wild [2]int, wildFunc, exp term.Term, infers *Results) error {
	unresolved := func() error {
		infers.Unresolved = append(infers.Unresolved, Obligation{Var: wild[0], Eq: [2]term.Term{wildFunc, exp}})
		return nil
	}

	app, ok := wildFunc.(term.App)
	if !ok {
		return unresolved()
	}

	wildIdx, scope, isBareWild := isWild(app.Func)
	if !isBareWild {
		return unresolved()
	}
	if !infers.IsUnknown(wildIdx) {
		return matchMain(term.Normalize(infers.Fill(wildFunc)), exp, infers)
	}

	varIdx, isVar := app.Op.(term.Var)
	if !isVar {
		return unresolved()
	}
	if varIdx.Index < scope {
		// The hole may legitimately mention this variable; ambiguous.
		return unresolved()
	}

	var argTy term.Term
	switch vt := infers.TypeOf(wildIdx).(type) {
	case term.Forall:
		argTy = vt.VarTy
	case term.Wild:
		a := infers.AddVarWithScope(vt.Scope)
		b := infers.AddVarWithScope(vt.Scope + 1)
		if err := infers.set(vt.Index, term.Forall{term.Abstraction{VarTy: a, Body: b}}); err != nil {
			return err
		}
		argTy = a
	default:
		// The type of a wild applied to arguments must have been inferred
		// to a function type already; this kernel only reaches here if
		// the caller built an ill-typed term by hand.
		return &Error{Kind: BadTerm}
	}

	fbody := exp
	if varIdx.Index != 0 {
		fbody = term.ReplaceVar(exp, 0, varIdx.Index)
	}
	return infers.set(wildIdx, term.Fun{term.Abstraction{VarTy: argTy, Body: fbody}})
}
