package dfs

import (
	"fmt"
	"sort"
)

// Walk explores the current adjacency depth-first from the supernode
// containing start. Neighbors are taken in ascending order, so the order is
// deterministic.
//
// Complexity: O(V + E) over representatives and current edges.
func Walk(g Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if start < 0 || start >= g.Size() {
		return nil, fmt.Errorf("%w: %d", ErrStartOutOfRange, start)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	res := &Result{Parent: make(map[int]int)}
	if err := walk(g, g.Representative(start), o, res, make(map[int]bool)); err != nil {
		return res, err
	}

	return res, nil
}

// walk uses an explicit stack; contracted graphs can be long chains.
func walk(g Graph, root int, o Options, res *Result, seen map[int]bool) error {
	type frame struct{ v, parent int }
	stack := []frame{{root, -1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[f.v] {
			continue
		}
		if err := o.Ctx.Err(); err != nil {
			return err
		}
		seen[f.v] = true
		res.Order = append(res.Order, f.v)
		res.Parent[f.v] = f.parent
		if o.OnVisit != nil {
			if err := o.OnVisit(f.v); err != nil {
				return fmt.Errorf("dfs: OnVisit(%d): %w", f.v, err)
			}
		}

		nbs := g.Neighbors(f.v)
		// push in reverse so the smallest neighbour is explored first
		for i := len(nbs) - 1; i >= 0; i-- {
			if !seen[nbs[i]] {
				stack = append(stack, frame{nbs[i], f.v})
			}
		}
	}

	return nil
}

// Components partitions the representatives of g into connected components
// of the current adjacency. Each component is sorted ascending and the
// components are ordered by their smallest representative.
func Components(g Graph, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	seen := make(map[int]bool)
	var comps [][]int
	for v := 0; v < g.Size(); v++ {
		r := g.Representative(v)
		if seen[r] {
			continue
		}
		res := &Result{Parent: make(map[int]int)}
		if err := walk(g, r, o, res, seen); err != nil {
			return nil, err
		}
		sort.Ints(res.Order)
		comps = append(comps, res.Order)
	}

	return comps, nil
}

// Connected reports whether g's current adjacency forms one component.
// An empty graph counts as connected.
func Connected(g Graph) bool {
	if g == nil {
		return false
	}
	if g.Size() == 0 {
		return true
	}
	res, err := Walk(g, 0)
	if err != nil {
		return false
	}
	reps := make(map[int]bool)
	for v := 0; v < g.Size(); v++ {
		reps[g.Representative(v)] = true
	}

	return len(res.Order) == len(reps)
}
