// SPDX-License-Identifier: MIT
//
// File: methods_merge.go
// Role: Union-find lookups, supernode merge and fake-edge accounting.
// Determinism:
//   - Member sets are walked in ascending order, so a fixed merge sequence always
//     yields the same fake-edge sets and the same current adjacency.
// AI-HINT (file):
//   - Merge(s, p) folds s's supernode into p's; p's representative survives.
//   - TotalFakeLinks is the fitness signal; it is O(1) because inserts are counted.

package core

import "fmt"

// rep follows parent references to the fixed point. Caller holds the lock.
func (g *ContractedGraph) rep(v int) int {
	for g.records[v].parent != v {
		v = g.records[v].parent
	}

	return v
}

// Representative returns the canonical id of v's supernode, or -1 when v is out of range.
//
// Complexity: O(chain length); chains are not compressed.
func (g *ContractedGraph) Representative(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return -1
	}

	return g.rep(v)
}

// Parent returns the record v points at directly (v itself for a representative),
// or -1 when v is out of range. Exposed for diagnostics of chain shape.
func (g *ContractedGraph) Parent(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return -1
	}

	return g.records[v].parent
}

// IsRepresentative reports whether v currently names its own supernode.
func (g *ContractedGraph) IsRepresentative(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inRange(v) && g.records[v].parent == v
}

// SameCluster reports whether u and v belong to the same supernode.
// Out-of-range ids are never in any cluster.
func (g *ContractedGraph) SameCluster(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) || !g.inRange(v) {
		return false
	}

	return g.rep(u) == g.rep(v)
}

// Merge contracts the supernode of secondary into the supernode of primary.
//
// Implementation:
//   - Stage 1: s = rep(secondary), p = rep(primary); equal reps are a logged no-op.
//   - Stage 2: S and P are the member sets (absorbed plus self) of s and p.
//   - Stage 3: s-p become fake partners unless originally adjacent.
//   - Stage 4: for every (sm, pm) in S×P, pm gains as fake partners the original
//     and fake neighbors of sm that pm was not originally adjacent to, and
//     symmetrically sm gains those of pm. Propagation is mirrored on each partner.
//   - Stage 5: s points at p; p absorbs S.
//   - Stage 6: cur(p) = cur(s) ∪ cur(p) − {s, p}; each neighbor swaps s for p.
//
// Returns true when a contraction happened, false on a same-cluster no-op.
//
// Errors: ErrVertexOutOfRange.
// Complexity: O(|S|·|P|·avg-degree) for the fake-edge pass.
func (g *ContractedGraph) Merge(secondary, primary int) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inRange(secondary) || !g.inRange(primary) {
		return false, fmt.Errorf("%w: merge (%d,%d) with %d vertices", ErrVertexOutOfRange, secondary, primary, len(g.records))
	}

	s, p := g.rep(secondary), g.rep(primary)
	if s == p {
		g.log.WithField("module", "core").
			WithField("secondary", secondary).
			WithField("primary", primary).
			Warn("merge skipped: vertices already share a supernode")

		return false, nil
	}

	sMembers, _ := insertSorted(cloneInts(g.records[s].absorbed), s)
	pMembers, _ := insertSorted(cloneInts(g.records[p].absorbed), p)

	if !containsSorted(g.original[p], s) {
		g.addFake(p, s)
	}

	for _, sm := range sMembers {
		for _, pm := range pMembers {
			g.propagateFakes(sm, pm)
			g.propagateFakes(pm, sm)
		}
	}

	g.records[s].parent = p
	g.records[p].absorbed = unionSorted(g.records[p].absorbed, sMembers)
	g.records[s].absorbed = nil

	merged := unionSorted(g.current[s], g.current[p])
	merged, _ = removeSorted(merged, s)
	merged, _ = removeSorted(merged, p)
	g.current[p] = merged
	g.current[s] = nil
	for _, nb := range merged {
		g.current[nb], _ = removeSorted(g.current[nb], s)
		g.current[nb], _ = insertSorted(g.current[nb], p)
	}
	g.size--

	return true, nil
}

// propagateFakes gives into every original or fake neighbor of from that into
// was not originally adjacent to, mirroring each new link on the neighbor.
// Caller holds the write lock.
func (g *ContractedGraph) propagateFakes(from, into int) {
	gained := unionSorted(g.original[from], g.records[from].fakes)
	gained = subtractSorted(gained, g.original[into])
	gained, _ = removeSorted(gained, into)
	for _, x := range gained {
		g.addFake(into, x)
	}
}

// addFake records a symmetric fake edge a-b. Caller holds the write lock.
func (g *ContractedGraph) addFake(a, b int) {
	var added bool
	if g.records[a].fakes, added = insertSorted(g.records[a].fakes, b); added {
		g.fakeTotal++
	}
	if g.records[b].fakes, added = insertSorted(g.records[b].fakes, a); added {
		g.fakeTotal++
	}
}

// Members returns every original id in v's supernode, ascending, v's representative included.
func (g *ContractedGraph) Members(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return nil
	}
	r := g.rep(v)
	out, _ := insertSorted(cloneInts(g.records[r].absorbed), r)

	return out
}

// FakeEdges returns a copy of v's own fake-edge partner set, ascending.
func (g *ContractedGraph) FakeEdges(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return nil
	}

	return cloneInts(g.records[v].fakes)
}

// TotalFakeLinks returns half the summed size of all fake-edge sets.
//
// Complexity: O(1).
func (g *ContractedGraph) TotalFakeLinks() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.fakeTotal / 2
}
