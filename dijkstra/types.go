// Package dijkstra defines core types and configuration options
// for hop-count shortest paths over a contracted graph.
//
// Every current edge has unit cost, so the priority queue orders vertices by
// hop count. Distances are measured between representatives: a vertex that
// was merged away is as far from the source as its representative.
//
// Complexity:
//
//	- Time:  O((V + E) log V)
//	- Space: O(V + E) (lazy decrease-key keeps stale heap entries)
//
// Options:
//
//	- Source:      original vertex id to start from (resolved to its representative).
//	- ReturnPath:  if true, return the predecessor slice.
//	- MaxDistance: vertices farther than this are not explored.
//
// Errors (sentinel):
//
//	- ErrNilGraph        if the provided graph is nil.
//	- ErrVertexNotFound  if the source id is outside [0, Size()).
//	- ErrBadMaxDistance  if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source id is not a vertex of the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Unreachable is the distance reported when no path exists. It is a normal
// result, not an error.
const Unreachable = -1

// NoPredecessor marks the source and unreachable vertices in the predecessor slice.
const NoPredecessor = -1

// Graph is the read-only view Dijkstra needs. *core.ContractedGraph satisfies it.
type Graph interface {
	Size() int
	Representative(v int) int
	Neighbors(v int) []int
}

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source      int  // original vertex id of the source
	ReturnPath  bool // whether to return the predecessor slice
	MaxDistance int  // maximum hop count to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration at max hops. Panics on a negative value.
func WithMaxDistance(max int) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options for source 0 with no distance cap and no predecessor output.
func DefaultOptions() Options {
	return Options{
		Source:      0,
		ReturnPath:  false,
		MaxDistance: math.MaxInt,
	}
}
