package autoset

// queue is a FIFO of pending hypotheses: searches append to the back
// and consume from the front, but undo the most recent push from the
// back — safe because every push/undo pair in dfs nests in call order
// and dfs puts each item it takes from the front back there before
// returning.
type queue struct{ items []Tree }

func (q *queue) pushBack(t Tree)  { q.items = append(q.items, t) }
func (q *queue) popBack()         { q.items = q.items[:len(q.items)-1] }
func (q *queue) popFront() (Tree, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	t := q.items[0]
	q.items = q.items[1:]
	return t, true
}

// hypKey identifies one (element, atomic set) membership slot.
type hypKey struct {
	elem uint16
	set  uint16
}

// addHyp folds h into the stores, or reverses that effect when
// undo is true. Returns 1 on discovering a contradiction, 0 on success,
// -1 for a shape addHyp does not know how to store.
func addHyp(h Tree, undo bool, simpleHyps map[hypKey]int, ahyps, bhyps *queue) int {
	switch x := h.(type) {
	case Inset:
		switch leaf := x.Set.(type) {
		case Intersection, Setminus:
			if undo {
				ahyps.popBack()
			} else {
				ahyps.pushBack(h)
			}
			return 0
		case Union:
			if undo {
				bhyps.popBack()
			} else {
				bhyps.pushBack(h)
			}
			return 0
		case SetLeaf:
			key := hypKey{x.Elem, leaf.ID}
			if undo {
				simpleHyps[key]--
				return 0
			}
			if simpleHyps[key] < 0 {
				return 1
			}
			simpleHyps[key]++
			return 0
		default:
			return -1
		}
	case Outset:
		switch leaf := x.Set.(type) {
		case Union:
			if undo {
				ahyps.popBack()
			} else {
				ahyps.pushBack(h)
			}
			return 0
		case Intersection, Setminus:
			if undo {
				bhyps.popBack()
			} else {
				bhyps.pushBack(h)
			}
			return 0
		case SetLeaf:
			key := hypKey{x.Elem, leaf.ID}
			if undo {
				simpleHyps[key]++
				return 0
			}
			if simpleHyps[key] > 0 {
				return 1
			}
			simpleHyps[key]--
			return 0
		default:
			return -1
		}
	case Eq:
		if undo {
			ahyps.popBack()
		} else {
			ahyps.pushBack(h)
		}
		return 0
	case Included:
		if undo {
			bhyps.popBack()
		} else {
			bhyps.pushBack(h)
		}
		return 0
	default:
		return -1
	}
}

// dfs searches for a closing derivation of goal, returning 1 (proved),
// 0 (unknown/failed) or -1 (ill-formed), following a fixed rule order:
// goal decomposition, conjunctive-hyp elimination, goal re-decomposition,
// simple closure, disjunctive-hyp elimination.
func dfs(goal Tree, elementInGoal uint16, simpleHyps map[hypKey]int, ahyps, bhyps *queue) int {
	ans := 0

	step1 := func(h, g Tree, x uint16) {
		if c := addHyp(h, false, simpleHyps, ahyps, bhyps); c == 0 {
			ans = dfs(g, x, simpleHyps, ahyps, bhyps)
			addHyp(h, true, simpleHyps, ahyps, bhyps)
		} else {
			ans = c
		}
	}
	switch g := goal.(type) {
	case Inset:
		if u, ok := g.Set.(Union); ok {
			step1(Outset{g.Elem, u.B}, Inset{g.Elem, u.A}, g.Elem)
		}
	case Outset:
		step1(Inset{g.Elem, g.Set}, SetLeaf{ID: 0}, g.Elem)
	case Included:
		step1(Inset{sentinelElement, g.A}, Inset{sentinelElement, g.B}, sentinelElement)
	}
	if ans != 0 {
		return ans
	}

	if h, ok := ahyps.popFront(); ok {
		step2 := func(h1, h2 Tree) {
			c1 := addHyp(h1, false, simpleHyps, ahyps, bhyps)
			if c1 == 0 {
				c2 := addHyp(h2, false, simpleHyps, ahyps, bhyps)
				if c2 == 0 {
					ans = dfs(goal, elementInGoal, simpleHyps, ahyps, bhyps)
					addHyp(h2, true, simpleHyps, ahyps, bhyps)
				} else {
					ans = c2
				}
				addHyp(h1, true, simpleHyps, ahyps, bhyps)
			} else {
				ans = c1
			}
		}
		switch x := h.(type) {
		case Inset:
			if in, ok := x.Set.(Intersection); ok {
				step2(Inset{x.Elem, in.A}, Inset{x.Elem, in.B})
			} else if sm, ok := x.Set.(Setminus); ok {
				step2(Inset{x.Elem, sm.A}, Outset{x.Elem, sm.B})
			}
		case Outset:
			if u, ok := x.Set.(Union); ok {
				step2(Outset{x.Elem, u.A}, Outset{x.Elem, u.B})
			}
		case Eq:
			step2(Included{x.A, x.B}, Included{x.B, x.A})
		}
		ahyps.items = append([]Tree{h}, ahyps.items...)
	}
	if ans != 0 {
		return ans
	}

	step3 := func(g1, g2 Tree, x uint16) {
		c := dfs(g1, x, simpleHyps, ahyps, bhyps)
		if c == 1 {
			ans = dfs(g2, x, simpleHyps, ahyps, bhyps)
		} else {
			ans = c
		}
	}
	switch g := goal.(type) {
	case Inset:
		switch s := g.Set.(type) {
		case Intersection:
			step3(Inset{g.Elem, s.A}, Inset{g.Elem, s.B}, g.Elem)
		case Setminus:
			step3(Inset{g.Elem, s.A}, Outset{g.Elem, s.B}, g.Elem)
		case SetLeaf:
			if c, ok := simpleHyps[hypKey{g.Elem, s.ID}]; ok && c > 0 {
				return 1
			}
		}
	case Eq:
		step3(Included{g.A, g.B}, Included{g.B, g.A}, elementInGoal)
	}
	if ans != 0 {
		return ans
	}

	if h, ok := bhyps.popFront(); ok {
		step4 := func(h1, h2 Tree) {
			c := addHyp(h1, false, simpleHyps, ahyps, bhyps)
			if c != 0 {
				ans = c
				return
			}
			c2 := dfs(goal, elementInGoal, simpleHyps, ahyps, bhyps)
			addHyp(h1, true, simpleHyps, ahyps, bhyps)
			if c2 != 1 {
				ans = c2
				return
			}
			c3 := addHyp(h2, false, simpleHyps, ahyps, bhyps)
			if c3 == 0 {
				ans = dfs(goal, elementInGoal, simpleHyps, ahyps, bhyps)
				addHyp(h2, true, simpleHyps, ahyps, bhyps)
			} else {
				ans = c3
			}
		}
		switch x := h.(type) {
		case Inset:
			if u, ok := x.Set.(Union); ok {
				step4(Inset{x.Elem, u.A}, Inset{x.Elem, u.B})
			}
		case Outset:
			if in, ok := x.Set.(Intersection); ok {
				step4(Outset{x.Elem, in.A}, Outset{x.Elem, in.B})
			} else if sm, ok := x.Set.(Setminus); ok {
				step4(Outset{x.Elem, sm.A}, Inset{x.Elem, sm.B})
			}
		case Included:
			step4(Inset{elementInGoal, x.B}, Outset{elementInGoal, x.A})
		}
		bhyps.items = append([]Tree{h}, bhyps.items...)
	}
	return ans
}
