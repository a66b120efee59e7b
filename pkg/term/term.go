// Package term implements the term algebra of the kernel: an immutable,
// structurally-shared syntax tree doubling as both expressions and types,
// with de Bruijn variable indices and unification holes ("wilds").
//
// Terms are a closed eight-variant sum, modeled the way the rest of this
// module's ancestry models sum types in Go: a narrow interface implemented
// by one concrete struct per variant, with every non-trivial operation
// written as a free function doing a single exhaustive type switch rather
// than as per-variant virtual methods.
package term

import "fmt"

// Term is any node of the syntax tree. Implementations are immutable;
// building a new term never mutates an existing one.
type Term interface {
	fmt.Stringer
	isTerm()
}

// Abstraction is the common shape of the two binder variants: a type for
// the bound variable and a body interpreted under one additional binder.
// HintName is display-only and ignored by Equal.
type Abstraction struct {
	VarTy    Term
	Body     Term
	HintName string
}

// Axiom is a named constant declared in an Engine. Two axioms are equal
// iff their UniqueName matches; Ty is carried for type-checking but is not
// part of the equality used by unification and the proof state.
type Axiom struct {
	Ty         Term
	UniqueName string
}

// Universe is a type universe; Universe{k} : Universe{k+1}.
type Universe struct {
	Index int
}

// Forall is the dependent function type ∀(x:A). B.
type Forall struct {
	Abstraction
}

// Fun is the lambda λ(x:A). B.
type Fun struct {
	Abstraction
}

// Var is a de Bruijn index into the enclosing binder stack; 0 is innermost.
type Var struct {
	Index int
}

// Number is an integer literal of type ℤ.
type Number struct {
	Value int
}

// App is function application.
type App struct {
	Func Term
	Op   Term
}

// Wild is a unification hole ?Index, declared at Scope many enclosing
// binders — it may not mention Var(i) for i >= Scope.
type Wild struct {
	Index int
	Scope int
}

func (Axiom) isTerm()    {}
func (Universe) isTerm() {}
func (Forall) isTerm()   {}
func (Fun) isTerm()      {}
func (Var) isTerm()      {}
func (Number) isTerm()   {}
func (App) isTerm()      {}
func (Wild) isTerm()     {}

func (a Axiom) String() string    { return a.UniqueName }
func (u Universe) String() string { return fmt.Sprintf("Universe(%d)", u.Index) }
func (f Forall) String() string   { return fmt.Sprintf("forall (_:%s), %s", f.VarTy, f.Body) }
func (f Fun) String() string      { return fmt.Sprintf("fun (_:%s) => %s", f.VarTy, f.Body) }
func (v Var) String() string      { return fmt.Sprintf("$%d", v.Index) }
func (n Number) String() string   { return fmt.Sprintf("%d", n.Value) }
func (a App) String() string      { return fmt.Sprintf("(%s %s)", a.Func, a.Op) }
func (w Wild) String() string     { return fmt.Sprintf("?%d", w.Index) }

// Equal reports whether t1 and t2 are structurally identical. Axiom.Ty is
// ignored; two axioms are equal iff their UniqueName matches.
func Equal(t1, t2 Term) bool {
	switch a := t1.(type) {
	case Axiom:
		b, ok := t2.(Axiom)
		return ok && a.UniqueName == b.UniqueName
	case Universe:
		b, ok := t2.(Universe)
		return ok && a.Index == b.Index
	case Forall:
		b, ok := t2.(Forall)
		return ok && equalAbs(a.Abstraction, b.Abstraction)
	case Fun:
		b, ok := t2.(Fun)
		return ok && equalAbs(a.Abstraction, b.Abstraction)
	case Var:
		b, ok := t2.(Var)
		return ok && a.Index == b.Index
	case Number:
		b, ok := t2.(Number)
		return ok && a.Value == b.Value
	case App:
		b, ok := t2.(App)
		return ok && Equal(a.Func, b.Func) && Equal(a.Op, b.Op)
	case Wild:
		b, ok := t2.(Wild)
		return ok && a.Index == b.Index && a.Scope == b.Scope
	default:
		return false
	}
}

func equalAbs(a, b Abstraction) bool {
	return Equal(a.VarTy, b.VarTy) && Equal(a.Body, b.Body)
}

// ContainsWild reports whether any subterm of t is a Wild.
func ContainsWild(t Term) bool {
	switch x := t.(type) {
	case Axiom, Universe, Var, Number:
		return false
	case App:
		return ContainsWild(x.Func) || ContainsWild(x.Op)
	case Forall:
		return ContainsWild(x.VarTy) || ContainsWild(x.Body)
	case Fun:
		return ContainsWild(x.VarTy) || ContainsWild(x.Body)
	case Wild:
		return true
	default:
		panic(fmt.Sprintf("term: unhandled variant %T in ContainsWild", t))
	}
}

// FillWild replaces every Wild{Index, Scope} in t with f(Index, Scope).
func FillWild(t Term, f func(index, scope int) Term) Term {
	switch x := t.(type) {
	case Axiom, Universe, Var, Number:
		return t
	case App:
		return App{Func: FillWild(x.Func, f), Op: FillWild(x.Op, f)}
	case Forall:
		return Forall{Abstraction{
			VarTy:    FillWild(x.VarTy, f),
			Body:     FillWild(x.Body, f),
			HintName: x.HintName,
		}}
	case Fun:
		return Fun{Abstraction{
			VarTy:    FillWild(x.VarTy, f),
			Body:     FillWild(x.Body, f),
			HintName: x.HintName,
		}}
	case Wild:
		return f(x.Index, x.Scope)
	default:
		panic(fmt.Sprintf("term: unhandled variant %T in FillWild", t))
	}
}

// IncreaseForeignVars shifts every Var(i) with i >= depth up by one. Use
// when moving a borrowed term under a freshly introduced binder.
func IncreaseForeignVars(t Term, depth int) Term {
	switch x := t.(type) {
	case Var:
		if x.Index >= depth {
			return Var{Index: x.Index + 1}
		}
		return x
	case Axiom, Universe, Number, Wild:
		return t
	case Forall:
		return Forall{Abstraction{
			VarTy:    IncreaseForeignVars(x.VarTy, depth),
			Body:     IncreaseForeignVars(x.Body, depth+1),
			HintName: x.HintName,
		}}
	case Fun:
		return Fun{Abstraction{
			VarTy:    IncreaseForeignVars(x.VarTy, depth),
			Body:     IncreaseForeignVars(x.Body, depth+1),
			HintName: x.HintName,
		}}
	case App:
		return App{Func: IncreaseForeignVars(x.Func, depth), Op: IncreaseForeignVars(x.Op, depth)}
	default:
		panic(fmt.Sprintf("term: unhandled variant %T in IncreaseForeignVars", t))
	}
}

// RemoveUnusedVar returns a term equivalent to t if the variable bound at
// depth does not occur free inside it (decrementing free vars past that
// point), or ok=false if it does occur.
func RemoveUnusedVar(t Term, depth int) (result Term, ok bool) {
	switch x := t.(type) {
	case Axiom, Universe, Wild, Number:
		return t, true
	case App:
		fn, ok := RemoveUnusedVar(x.Func, depth)
		if !ok {
			return nil, false
		}
		op, ok := RemoveUnusedVar(x.Op, depth)
		if !ok {
			return nil, false
		}
		return App{Func: fn, Op: op}, true
	case Forall:
		a, ok := removeUnusedVarAbs(x.Abstraction, depth)
		if !ok {
			return nil, false
		}
		return Forall{a}, true
	case Fun:
		a, ok := removeUnusedVarAbs(x.Abstraction, depth)
		if !ok {
			return nil, false
		}
		return Fun{a}, true
	case Var:
		switch {
		case x.Index == depth:
			return nil, false
		case x.Index < depth:
			return Var{Index: x.Index}, true
		default:
			return Var{Index: x.Index - 1}, true
		}
	default:
		panic(fmt.Sprintf("term: unhandled variant %T in RemoveUnusedVar", t))
	}
}

func removeUnusedVarAbs(a Abstraction, depth int) (Abstraction, bool) {
	vt, ok := RemoveUnusedVar(a.VarTy, depth)
	if !ok {
		return Abstraction{}, false
	}
	body, ok := RemoveUnusedVar(a.Body, depth+1)
	if !ok {
		return Abstraction{}, false
	}
	return Abstraction{VarTy: vt, Body: body, HintName: a.HintName}, true
}

// Subst performs capture-avoiding substitution of toPut for Var(0) in exp,
// decrementing free variables above 0. toPut is not relifted on each
// recursion; substitution happens at a single cursor that deepens under
// binders, and toPut is lifted once, by the cursor's depth, where it
// replaces the variable.
func Subst(exp, toPut Term) Term {
	var inner func(exp Term, i int) Term
	inner = func(exp Term, i int) Term {
		switch x := exp.(type) {
		case Var:
			switch {
			case x.Index == i:
				lifted := toPut
				for k := 0; k < i; k++ {
					lifted = IncreaseForeignVars(lifted, 0)
				}
				return lifted
			case x.Index > i:
				return Var{Index: x.Index - 1}
			default:
				return x
			}
		case Axiom, Universe, Number, Wild:
			return exp
		case Forall:
			return Forall{Abstraction{
				VarTy:    inner(x.VarTy, i),
				Body:     inner(x.Body, i+1),
				HintName: x.HintName,
			}}
		case Fun:
			return Fun{Abstraction{
				VarTy:    inner(x.VarTy, i),
				Body:     inner(x.Body, i+1),
				HintName: x.HintName,
			}}
		case App:
			return App{Func: inner(x.Func, i), Op: inner(x.Op, i)}
		default:
			panic(fmt.Sprintf("term: unhandled variant %T in Subst", exp))
		}
	}
	return inner(exp, 0)
}

// Normalize weak-head reduces t then recurses structurally: an application
// with a lambda in head position substitutes and renormalizes; otherwise
// children are normalized. Reduction is left-outermost and terminates for
// well-typed input only — callers must type-check before normalizing.
func Normalize(t Term) Term {
	switch x := t.(type) {
	case Var, Axiom, Universe, Number, Wild:
		return t
	case Forall:
		return Forall{normalizeAbs(x.Abstraction)}
	case Fun:
		return Fun{normalizeAbs(x.Abstraction)}
	case App:
		fn := Normalize(x.Func)
		if lam, ok := fn.(Fun); ok {
			return Normalize(Subst(lam.Body, x.Op))
		}
		op := Normalize(x.Op)
		return App{Func: fn, Op: op}
	default:
		panic(fmt.Sprintf("term: unhandled variant %T in Normalize", t))
	}
}

func normalizeAbs(a Abstraction) Abstraction {
	return Abstraction{VarTy: Normalize(a.VarTy), Body: Normalize(a.Body), HintName: a.HintName}
}

// PredictAxiom reports whether any Axiom subterm's UniqueName satisfies p.
// Used by the proof state to check whether removing a hypothesis would
// leave a dangling reference.
func PredictAxiom(t Term, p func(name string) bool) bool {
	switch x := t.(type) {
	case Axiom:
		return p(x.UniqueName)
	case Universe, Var, Number, Wild:
		return false
	case App:
		return PredictAxiom(x.Func, p) || PredictAxiom(x.Op, p)
	case Forall:
		return PredictAxiom(x.VarTy, p) || PredictAxiom(x.Body, p)
	case Fun:
		return PredictAxiom(x.VarTy, p) || PredictAxiom(x.Body, p)
	default:
		panic(fmt.Sprintf("term: unhandled variant %T in PredictAxiom", t))
	}
}

// PredictWild reports whether any Wild subterm satisfies p — used by the
// occurs check in pkg/infer.
func PredictWild(t Term, p func(index, scope int) bool) bool {
	switch x := t.(type) {
	case Axiom, Universe, Var, Number:
		return false
	case App:
		return PredictWild(x.Func, p) || PredictWild(x.Op, p)
	case Forall:
		return PredictWild(x.VarTy, p) || PredictWild(x.Body, p)
	case Fun:
		return PredictWild(x.VarTy, p) || PredictWild(x.Body, p)
	case Wild:
		return p(x.Index, x.Scope)
	default:
		panic(fmt.Sprintf("term: unhandled variant %T in PredictWild", t))
	}
}

// ReplaceVar rewrites Var(variable) in exp to Var(depth), shifting other
// indices in [depth, variable) up by one. Used by the applied-hole
// matching rule in pkg/infer to turn "?w applied to a foreign variable"
// into a first-order lambda solution.
func ReplaceVar(exp Term, depth, variable int) Term {
	switch x := exp.(type) {
	case Var:
		switch {
		case x.Index == variable:
			return Var{Index: depth}
		case x.Index >= depth && x.Index < variable:
			return Var{Index: x.Index + 1}
		default:
			return x
		}
	case Axiom, Universe, Number, Wild:
		return exp
	case Forall:
		return Forall{Abstraction{
			VarTy:    ReplaceVar(x.VarTy, depth, variable),
			Body:     ReplaceVar(x.Body, depth+1, variable+1),
			HintName: x.HintName,
		}}
	case Fun:
		return Fun{Abstraction{
			VarTy:    ReplaceVar(x.VarTy, depth, variable),
			Body:     ReplaceVar(x.Body, depth+1, variable+1),
			HintName: x.HintName,
		}}
	case App:
		return App{Func: ReplaceVar(x.Func, depth, variable), Op: ReplaceVar(x.Op, depth, variable)}
	default:
		panic(fmt.Sprintf("term: unhandled variant %T in ReplaceVar", exp))
	}
}
