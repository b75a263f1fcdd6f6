// Package core provides ContractedGraph, an undirected graph over vertices
// 0..N-1 that can be compressed by merging vertices into supernodes while
// keeping count of the structural error the merges introduce.
//
// Model:
//
//   - Every original vertex owns a VertexRecord. Records form a union-find
//     forest: a record is either its own representative or points at the record
//     it was merged into. Chains are never compressed, so Representative costs
//     O(chain length).
//   - Original adjacency is fixed after loading. Current adjacency is keyed by
//     representatives and changes on every Merge.
//   - A fake edge links two ids that are effectively connected after
//     contraction although no original edge joined them. Fake edges are stored
//     symmetrically; TotalFakeLinks is half their summed count and is the
//     fitness signal for merge-sequence search.
//
// Lifecycle:
//
//	g, _ := core.NewGraph(5)
//	_ = g.AddEdge(0, 1)              // idempotent, both adjacencies
//	work := g.Clone()                // evaluations always run on a clone
//	_, _ = work.Merge(1, 2)          // fold 1's supernode into 2's
//	fmt.Println(work.TotalFakeLinks())
//
// Errors:
//
//	ErrInvalidSize       - negative vertex count.
//	ErrVertexOutOfRange  - id outside [0, Size()).
//	ErrSelfLoop          - AddEdge(v, v).
//
// Merging two ids already in one supernode is not an error: Merge returns
// false and logs a warning through the configured logrus logger.
//
// Locality queries (bounded BFS, randomised BFS) live in package bfs and hop
// distance lives in package dijkstra; both only read the current adjacency.
package core
