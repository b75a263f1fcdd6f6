// Package bfs explores the current adjacency of a contracted graph
// breadth-first from the representative of a start vertex.
//
// What
//
//   - BFS returns a BFSResult: visit Order, Depth and Parent per representative.
//   - Neighborhood(g, root, d) is the locality query: every representative
//     within d hops, root excluded, ascending.
//   - RandomNeighborhood(g, root, d, rng) follows only a non-empty random
//     subset of each expanded vertex's neighbors, producing varied,
//     non-exhaustive localities.
//   - MaxDepth is a hard bound: nothing past it is ever enqueued.
//
// Determinism
//
//	Current adjacency is kept sorted, so exhaustive BFS visits in a fixed
//	order. The randomised mode is reproducible for a given *rand.Rand state.
//
// Complexity
//
//   - Time:   O(V + E) over the current (contracted) graph.
//   - Memory: O(V) for the queue and maps.
package bfs
