// Package supernode compresses undirected graphs by contracting vertices
// into supernodes, and searches for merge sequences that introduce as few
// fake edges as possible.
//
// A fake edge is a link between two supernodes that the original graph did
// not have between any of their members. The search is a genetic algorithm
// over chromosomes of merges, each scored by the total fake-edge count of the
// contraction it produces.
//
// Packages:
//
//	core       ContractedGraph: union-find records, original and current
//	           adjacency, fake-edge accounting, clone
//	bfs        bounded locality walks over the current adjacency
//	dfs        depth-first walks and connected components
//	dijkstra   hop distance between supernodes
//	builder    deterministic topologies for tests and synthetic inputs
//	loader     edge-list reader and writer
//	ga         genes, chromosomes, strategies, fitness cache, search loop
//	config     experiment files (YAML and legacy params), validation
//	report     CSV result files
//	store      archive of finished experiments
//	runner     worker pool over experiment units
//	layout     2-D placement and DOT export
//	view       terminal viewer
//
// Quick ASCII example, a star contracted by merging two leaves:
//
//	  1   2          [1,2]
//	   \ /             |
//	    0      →       0
//	    |              |
//	    3              3
//
// Leaves 1 and 2 were not adjacent, so the merge costs one fake edge.
//
// The supernode command (cmd/supernode) runs experiment batches, replays
// chromosomes, generates synthetic graphs and lists archived results.
package supernode
