package infer

import "github.com/hakimgo/hakimgo/pkg/term"

// ReservedSpace packs a term hole and its type hole into one flat index
// space: term -> 2i, type -> 2i+1.
const ReservedSpace = 2

// Obligation is a deferred unification equation of the form
// ?Var f1...fk ≡ e that match_and_infer could not solve uniquely at
// discovery time, by matchWildFunc.
type Obligation struct {
	Var int
	Eq  [2]term.Term
}

// Results is the mutable inference state: a table of term/type hole
// assignments plus the obligations deferred while filling them in.
type Results struct {
	n          int
	terms      []term.Term
	tys        []term.Term
	Unresolved []Obligation
}

func categoryIsTerm(i int) bool { return i%ReservedSpace == 0 }
func categoryIndex(i int) int   { return i / ReservedSpace }

func termWild(i, scope int) term.Term { return term.Wild{Index: ReservedSpace * i, Scope: scope} }
func tyWild(i, scope int) term.Term   { return term.Wild{Index: ReservedSpace*i + 1, Scope: scope} }

// New allocates n pre-filled term/type hole pairs, each unknown (assigned
// to its own Wild).
func New(n int) *Results {
	r := &Results{n: n, terms: make([]term.Term, n), tys: make([]term.Term, n)}
	for i := 0; i < n; i++ {
		r.terms[i] = termWild(i, 0)
		r.tys[i] = tyWild(i, 0)
	}
	return r
}

// AddVarWithScope allocates the next term/type hole pair, scoped to not
// mention the scope innermost binders, and returns the term hole.
func (r *Results) AddVarWithScope(scope int) term.Term {
	i := r.n
	w := termWild(i, scope)
	r.terms = append(r.terms, w)
	r.tys = append(r.tys, tyWild(i, scope))
	r.n++
	return w
}

// Get returns the current value of hole i (unknown holes return their own
// Wild with index i, carrying the scope the hole was allocated with).
func (r *Results) Get(i int) term.Term {
	if categoryIsTerm(i) {
		return r.terms[categoryIndex(i)]
	}
	return r.tys[categoryIndex(i)]
}

// GetWithScope returns Get(i) lifted through scope enclosing binders.
func (r *Results) GetWithScope(i, scope int) term.Term {
	t := r.Get(i)
	for k := 0; k < scope; k++ {
		t = term.IncreaseForeignVars(t, 0)
	}
	return t
}

// IsUnknown reports whether hole i is still unassigned.
func (r *Results) IsUnknown(i int) bool {
	w, ok := r.Get(i).(term.Wild)
	return ok && w.Index == i
}

// set assigns hole i to t, relaxes every stored assignment to a fixpoint
// (at most n sweeps), then rejects the assignment if any hole's filled
// form still mentions itself (an inference loop).
func (r *Results) set(i int, t term.Term) error {
	if categoryIsTerm(i) {
		r.terms[categoryIndex(i)] = t
	} else {
		r.tys[categoryIndex(i)] = t
	}
	// TODO: track a dependency graph instead of relaxing every hole on
	// every assignment.
	for k := 0; k < r.n; k++ {
		r.relax()
	}
	for x := 0; x < ReservedSpace*r.n; x++ {
		cur := r.Get(x)
		if !r.IsUnknown(x) &&
			term.PredictWild(cur, func(j, _ int) bool { return x == j }) {
			return &Error{Kind: LoopOfInference, Hole: i, A: t}
		}
	}
	return nil
}

// setWithScope assigns hole i, first stripping the s innermost binders
// from t (failing if the hole's scope bound is violated).
func (r *Results) setWithScope(i, scope int, t term.Term) error {
	cur := t
	for k := 0; k < scope; k++ {
		next, ok := term.RemoveUnusedVar(cur, 0)
		if !ok {
			return &Error{Kind: WildNeedLocalVar, Hole: i}
		}
		cur = next
	}
	return r.set(i, cur)
}

// TypeOf returns the type of hole i: for a term hole, its paired type
// hole; for a type hole, Universe(0) — a deliberate simplification
// carried over from the original implementation's own open TODO.
func (r *Results) TypeOf(i int) term.Term {
	if categoryIsTerm(i) {
		return r.tys[categoryIndex(i)]
	}
	return term.Universe{Index: 0}
}

// TypeOfWithScope returns TypeOf(i) lifted through scope binders.
func (r *Results) TypeOfWithScope(i, scope int) term.Term {
	t := r.TypeOf(i)
	for k := 0; k < scope; k++ {
		t = term.IncreaseForeignVars(t, 0)
	}
	return t
}

// Fill substitutes every current hole assignment into t.
func (r *Results) Fill(t term.Term) term.Term {
	return term.FillWild(t, func(i, s int) term.Term { return r.GetWithScope(i, s) })
}

func (r *Results) relax() {
	for i, t := range r.terms {
		r.terms[i] = r.Fill(t)
	}
	for i, t := range r.tys {
		r.tys[i] = r.Fill(t)
	}
}
