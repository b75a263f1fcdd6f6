// Package builder produces deterministic graph topologies for tests,
// benchmarks and synthetic experiment inputs.
//
// Every factory (Path, Star, Cycle, Wheel, Complete, CompleteBipartite, Grid,
// RandomSparse) returns a Constructor. BuildGraph loads a constructor's output
// into a core.ContractedGraph; BuildEdgeList returns the raw EdgeList so it
// can be written to disk in the edge-list format (see package loader).
//
// Vertex numbering is fixed per topology and documented on each factory:
// the star hub is 0, the wheel hub is n-1, grid cells are row-major.
//
// Stochastic constructors need WithSeed or WithRand; the same seed always
// yields the same edge list.
package builder
