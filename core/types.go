// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: ContractedGraph, VertexRecord, options, sentinel errors and NewGraph.
// Concurrency:
//   - One sync.RWMutex guards every record and both adjacency relations.
//   - Exported methods lock; lower-case helpers assume the lock is held.
// Determinism:
//   - Adjacency, absorbed-member and fake-edge sets are sorted []int, so every
//     walk over them is in ascending id order.

package core

import (
	"errors"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for contracted graph operations.
var (
	// ErrInvalidSize indicates a negative vertex count was requested.
	ErrInvalidSize = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates an id outside [0, Size()).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrSelfLoop indicates an attempt to add an edge from a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// VertexRecord is the union-find node of one original vertex.
//
// A record is a representative when parent == id. Otherwise parent points at
// another record that was a representative at the time of the merge; chains
// are never compressed.
type VertexRecord struct {
	// id is the original vertex index.
	id int

	// parent is the index of the record this one was merged into.
	parent int

	// absorbed holds every original id merged into this record (self excluded).
	// Only meaningful on representatives.
	absorbed []int

	// fakes holds fake-edge partners accrued by this vertex or its absorbed members.
	fakes []int
}

// ContractedGraph is an undirected, unweighted graph over vertices 0..N-1
// that supports contracting pairs of vertices into supernodes while counting
// the fake edges those contractions introduce.
//
// The original adjacency is fixed once loading is done. The current adjacency
// is keyed by representatives only and changes on every merge.
type ContractedGraph struct {
	mu sync.RWMutex

	records  []VertexRecord
	original [][]int
	current  [][]int

	// size is the number of live representatives.
	size int

	// fakeTotal is the sum of len(records[i].fakes), kept in step with every insert.
	fakeTotal int

	log logrus.FieldLogger
}

// Option configures a ContractedGraph before creation.
type Option func(g *ContractedGraph)

// WithLogger routes merge diagnostics (for example no-op merges) to l.
// A nil logger keeps the default discard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(g *ContractedGraph) {
		if l != nil {
			g.log = l
		}
	}
}

// NewGraph allocates a graph with n isolated vertices, each its own representative.
//
// Complexity: O(n).
func NewGraph(n int, opts ...Option) (*ContractedGraph, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	g := &ContractedGraph{
		records:  make([]VertexRecord, n),
		original: make([][]int, n),
		current:  make([][]int, n),
		size:     n,
		log:      discardLogger(),
	}
	for i := range g.records {
		g.records[i] = VertexRecord{id: i, parent: i}
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// discardLogger returns a logger whose output goes nowhere.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = io.Discard

	return l
}

// inRange reports whether v is a valid vertex index.
func (g *ContractedGraph) inRange(v int) bool {
	return v >= 0 && v < len(g.records)
}
