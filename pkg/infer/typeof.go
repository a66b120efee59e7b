package infer

import "github.com/hakimgo/hakimgo/pkg/term"

// numberType is the builtin type assigned to numeric literals.
var numberType term.Term = term.Axiom{Ty: term.Universe{Index: 0}, UniqueName: "ℤ"}

// Type computes the type of a closed, wild-free term. It is the public
// entry point, a convenience wrapper around TypeOf with an
// empty variable stack and a fresh, unused inference state.
func Type(t term.Term) (term.Term, error) {
	if term.ContainsWild(t) {
		return nil, &Error{Kind: ContainsWildKind, A: t}
	}
	infers := New(0)
	return TypeOf(t, nil, infers)
}

// TypeOf computes the type of t under varTyStack — varTyStack[i] holds
// the (already-lifted, in-scope) type of Var{i} — assigning and reading
// holes through infers as needed.
func TypeOf(t term.Term, varTyStack []term.Term, infers *Results) (term.Term, error) {
	ty, err := typeOfInner(t, varTyStack, infers)
	if err != nil {
		return nil, inTypechecking(err, t)
	}
	return ty, nil
}

func typeOfInner(t term.Term, ctx []term.Term, infers *Results) (term.Term, error) {
	switch tt := t.(type) {
	case term.Axiom:
		return tt.Ty, nil

	case term.Universe:
		return term.Universe{Index: tt.Index + 1}, nil

	case term.Number:
		return numberType, nil

	case term.Var:
		if tt.Index < 0 || tt.Index >= len(ctx) {
			return nil, &Error{Kind: ForeignVariableInTerm, Hole: tt.Index}
		}
		return ctx[tt.Index], nil

	case term.Wild:
		return infers.TypeOfWithScope(tt.Index, tt.Scope), nil

	case term.Forall:
		u1, err := getUniverseAndInfer(tt.VarTy, ctx, infers)
		if err != nil {
			return nil, err
		}
		u2, err := getUniverseAndInfer(tt.Body, pushVar(ctx, tt.VarTy), infers)
		if err != nil {
			return nil, err
		}
		return term.Universe{Index: max(u1, u2)}, nil

	case term.Fun:
		if _, err := getUniverseAndInfer(tt.VarTy, ctx, infers); err != nil {
			return nil, err
		}
		bodyTy, err := typeOfInner(tt.Body, pushVar(ctx, tt.VarTy), infers)
		if err != nil {
			return nil, err
		}
		return term.Forall{term.Abstraction{VarTy: tt.VarTy, Body: bodyTy}}, nil

	case term.App:
		funcTy, err := typeOfInner(tt.Func, ctx, infers)
		if err != nil {
			return nil, err
		}
		forall, err := forceForall(funcTy, ctx, infers)
		if err != nil {
			return nil, &Error{Kind: IsNotFunc, A: tt.Func, Ty: funcTy}
		}
		opTy, err := typeOfInner(tt.Op, ctx, infers)
		if err != nil {
			return nil, err
		}
		if err := SubtypeAndInfer(opTy, forall.VarTy, infers); err != nil {
			return nil, err
		}
		return term.Subst(forall.Body, tt.Op), nil
	}
	return nil, &Error{Kind: BadTerm, A: t}
}

// forceForall normalizes ty and, if it is itself an unresolved Wild,
// bootstraps it into a Forall of two fresh holes — the same trick
// match_wild_func uses when a wild is discovered in function position
func forceForall(ty term.Term, ctx []term.Term, infers *Results) (term.Forall, error) {
	n := term.Normalize(ty)
	if f, ok := n.(term.Forall); ok {
		return f, nil
	}
	w, ok := n.(term.Wild)
	if !ok || !infers.IsUnknown(w.Index) {
		return term.Forall{}, &Error{Kind: IsNotFunc, A: n}
	}
	a := infers.AddVarWithScope(w.Scope)
	b := infers.AddVarWithScope(w.Scope + 1)
	forall := term.Forall{term.Abstraction{VarTy: a, Body: b}}
	if err := infers.set(w.Index, forall); err != nil {
		return term.Forall{}, err
	}
	return forall, nil
}

// getUniverseAndInfer computes the universe level of a term known to be
// a type. An unresolved wild is recovered to Universe(0) rather than
// inferring a level — a deliberate simplification carried over from the
// original implementation's own open TODO.
func getUniverseAndInfer(t term.Term, ctx []term.Term, infers *Results) (int, error) {
	ty, err := typeOfInner(t, ctx, infers)
	if err != nil {
		return 0, err
	}
	n := term.Normalize(ty)
	switch u := n.(type) {
	case term.Universe:
		return u.Index, nil
	case term.Wild:
		if infers.IsUnknown(u.Index) {
			if err := infers.set(u.Index, term.Universe{Index: 0}); err != nil {
				return 0, err
			}
			return 0, nil
		}
	}
	return 0, &Error{Kind: IsNotUniverse, A: n}
}

// pushVar extends ctx with a freshly bound variable of type varTy.
// Every existing entry in ctx, and varTy itself, gets one more binder
// in front of it, so each entry's own free variable references (which
// point at the rest of the stack) must be lifted by IncreaseForeignVars
// to keep pointing at the same logical slot now that it has shifted up
// by one position — ported from the original's
// `var_ty_stack.iter().chain(once(var_ty)).map(|x| increase_foreign_vars(x, 0))`.
func pushVar(ctx []term.Term, varTy term.Term) []term.Term {
	next := make([]term.Term, 0, len(ctx)+1)
	next = append(next, term.IncreaseForeignVars(varTy, 0))
	for _, c := range ctx {
		next = append(next, term.IncreaseForeignVars(c, 0))
	}
	return next
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
