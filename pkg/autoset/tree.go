// Package autoset implements the set-algebra decision tactic: a tableaux
// procedure that translates a goal built from inset/outset/included/eq
// and the three set operations into a small tree, then searches it for
// a closing derivation.
package autoset

// sentinelElement is used as the fresh element id introduced when a
// universally-quantified goal like A ⊆ B is instantiated; 65535 cannot
// collide with a real interned id at the scale this tactic operates at.
const sentinelElement uint16 = 65535

// Tree is the closed set of set-algebra shapes auto_set reasons about,
// modeled the way the rest of this module models sum types: a narrow
// interface, one concrete struct per variant, exhaustive type switches.
type Tree interface {
	isTree()
}

// SetLeaf is an atomic set, identified by an interned id.
type SetLeaf struct{ ID uint16 }

// Union, Intersection and Setminus are the three binary set operations.
type Union struct{ A, B Tree }
type Intersection struct{ A, B Tree }
type Setminus struct{ A, B Tree }

// Eq and Included are set-level propositions.
type Eq struct{ A, B Tree }
type Included struct{ A, B Tree }

// Inset and Outset are element-level propositions: Elem ∈/∉ Set.
type Inset struct {
	Elem uint16
	Set  Tree
}
type Outset struct {
	Elem uint16
	Set  Tree
}

func (SetLeaf) isTree()      {}
func (Union) isTree()        {}
func (Intersection) isTree() {}
func (Setminus) isTree()     {}
func (Eq) isTree()           {}
func (Included) isTree()     {}
func (Inset) isTree()        {}
func (Outset) isTree()       {}
