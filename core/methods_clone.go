// File: methods_clone.go
// Role: Independent duplication of a ContractedGraph.
// Concurrency:
//   - Read lock on the source only; the clone is fresh and unshared.

package core

// Clone returns an independent deep copy: records (parent, absorbed, fakes),
// original and current adjacency, current size and the logger.
// Mutating either graph afterwards never affects the other.
//
// Complexity: O(V + E + F) where F is the number of fake-edge entries.
func (g *ContractedGraph) Clone() *ContractedGraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.records)
	clone := &ContractedGraph{
		records:   make([]VertexRecord, n),
		original:  make([][]int, n),
		current:   make([][]int, n),
		size:      g.size,
		fakeTotal: g.fakeTotal,
		log:       g.log,
	}
	for i := range g.records {
		r := &g.records[i]
		clone.records[i] = VertexRecord{
			id:       r.id,
			parent:   r.parent,
			absorbed: cloneInts(r.absorbed),
			fakes:    cloneInts(r.fakes),
		}
		clone.original[i] = cloneInts(g.original[i])
		clone.current[i] = cloneInts(g.current[i])
	}

	return clone
}

// CloneEmpty returns a graph with the same vertex count and the same original
// edges, with no merges applied.
func (g *ContractedGraph) CloneEmpty() *ContractedGraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.records)
	clone := &ContractedGraph{
		records:  make([]VertexRecord, n),
		original: make([][]int, n),
		current:  make([][]int, n),
		size:     n,
		log:      g.log,
	}
	for i := range g.records {
		clone.records[i] = VertexRecord{id: i, parent: i}
		clone.original[i] = cloneInts(g.original[i])
		clone.current[i] = cloneInts(g.original[i])
	}

	return clone
}
