// File: methods_edges.go
// Role: Edge insertion and adjacency queries (original and current).
// Concurrency:
//   - AddEdge takes the write lock; all queries take the read lock.
// Determinism:
//   - Neighbor lists are returned in ascending id order.

package core

import "fmt"

// AddEdge inserts the undirected edge {u, v} into both the original and the
// current adjacency. Repeated and reversed duplicates are no-ops.
//
// The current adjacency is keyed by representatives, so on a graph that has
// already been contracted the current edge joins representative(u) and
// representative(v); an edge inside one supernode only touches the original
// adjacency.
//
// Errors: ErrVertexOutOfRange, ErrSelfLoop.
// Complexity: O(deg(u) + deg(v)).
func (g *ContractedGraph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inRange(u) || !g.inRange(v) {
		return fmt.Errorf("%w: edge (%d,%d) with %d vertices", ErrVertexOutOfRange, u, v, len(g.records))
	}
	if u == v {
		return fmt.Errorf("%w: vertex %d", ErrSelfLoop, u)
	}

	g.original[u], _ = insertSorted(g.original[u], v)
	g.original[v], _ = insertSorted(g.original[v], u)

	ru, rv := g.rep(u), g.rep(v)
	if ru != rv {
		g.current[ru], _ = insertSorted(g.current[ru], rv)
		g.current[rv], _ = insertSorted(g.current[rv], ru)
	}

	return nil
}

// Size returns the original vertex count N. It never changes.
func (g *ContractedGraph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.records)
}

// CurrentSize returns the number of supernodes (distinct representatives).
func (g *ContractedGraph) CurrentSize() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.size
}

// HasOriginalEdge reports whether {u, v} was an edge of the loaded graph.
func (g *ContractedGraph) HasOriginalEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) || !g.inRange(v) {
		return false
	}

	return containsSorted(g.original[u], v)
}

// OriginalDegree returns the degree of v in the loaded graph, or 0 when v is out of range.
func (g *ContractedGraph) OriginalDegree(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return 0
	}

	return len(g.original[v])
}

// OriginalNeighbors returns a copy of v's original neighbors in ascending order.
func (g *ContractedGraph) OriginalNeighbors(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return nil
	}

	return cloneInts(g.original[v])
}

// Neighbors returns a copy of the current neighbors of representative(v):
// the representatives of every supernode adjacent to v's supernode.
func (g *ContractedGraph) Neighbors(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return nil
	}

	return cloneInts(g.current[g.rep(v)])
}

// CurrentDegree returns len(Neighbors(v)) without copying.
func (g *ContractedGraph) CurrentDegree(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(v) {
		return 0
	}

	return len(g.current[g.rep(v)])
}

// OriginalEdgeCount returns the number of undirected edges in the loaded graph.
func (g *ContractedGraph) OriginalEdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, nbrs := range g.original {
		total += len(nbrs)
	}

	return total / 2
}
