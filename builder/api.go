// SPDX-License-Identifier: MIT
// Package: supernode/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - Constructors emit vertices and undirected edges into an edgeSink; BuildGraph
//     sizes a core.ContractedGraph from the sink and loads the edges in emission order.
//   - Functional options (BuilderOption) resolve into a builderConfig (no global state).
//   - Determinism: same constructor, options and seed ⇒ identical edge lists.
//   - Safety: never panic at runtime; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/supernode/core"
)

// Constructor emits a topology into the sink using the resolved builderConfig.
// Constructors MUST validate parameters early, return sentinel errors, and
// emit edges in a stable, documented order.
type Constructor func(s *edgeSink, cfg builderConfig) error

// EdgeList is a materialised topology: N vertices 0..N-1 and the undirected
// edges between them, in emission order.
type EdgeList struct {
	N     int
	Edges [][2]int
}

// edgeSink accumulates what constructors emit.
type edgeSink struct {
	n     int
	edges [][2]int
}

// grow makes sure vertices 0..n-1 exist.
func (s *edgeSink) grow(n int) {
	if n > s.n {
		s.n = n
	}
}

// edge records {u, v}; both endpoints must already exist.
func (s *edgeSink) edge(u, v int) {
	s.edges = append(s.edges, [2]int{u, v})
}

// BuildEdgeList runs ctor with options resolved from opts and returns what it emitted.
//
// Errors: constructor sentinels wrapped as "BuildEdgeList: %w", ErrConstructFailed for a nil constructor.
func BuildEdgeList(ctor Constructor, opts ...BuilderOption) (EdgeList, error) {
	return buildEdgeList(ctor, newBuilderConfig(opts...))
}

func buildEdgeList(ctor Constructor, cfg builderConfig) (EdgeList, error) {
	if ctor == nil {
		return EdgeList{}, fmt.Errorf("BuildEdgeList: nil constructor: %w", ErrConstructFailed)
	}
	sink := &edgeSink{}
	if err := ctor(sink, cfg); err != nil {
		return EdgeList{}, fmt.Errorf("BuildEdgeList: %w", err)
	}

	return EdgeList{N: sink.n, Edges: sink.edges}, nil
}

// BuildGraph runs ctor and loads the result into a fresh ContractedGraph,
// configured with any core options supplied via WithGraphOptions.
//
// Complexity: O(V + E·deg) for the edge inserts.
func BuildGraph(ctor Constructor, opts ...BuilderOption) (*core.ContractedGraph, error) {
	cfg := newBuilderConfig(opts...)
	el, err := buildEdgeList(ctor, cfg)
	if err != nil {
		return nil, err
	}

	return el.Graph(cfg.graphOpts...)
}

// Graph loads the edge list into a fresh ContractedGraph.
func (el EdgeList) Graph(opts ...core.Option) (*core.ContractedGraph, error) {
	g, err := core.NewGraph(el.N, opts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	for _, e := range el.Edges {
		if err = g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Compose applies several constructors in order over one shared vertex range;
// vertex i of every constructor is the same vertex.
func Compose(cons ...Constructor) Constructor {
	return func(s *edgeSink, cfg builderConfig) error {
		for i, fn := range cons {
			if fn == nil {
				return fmt.Errorf("Compose: nil constructor at index %d: %w", i, ErrConstructFailed)
			}
			if err := fn(s, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}

// ByName resolves a topology name and its size parameters into a Constructor.
// Recognised names: path, star, cycle, wheel, complete, grid (rows, cols),
// bipartite (left, right), random (n, probability as p).
func ByName(name string, n, m int, p float64) (Constructor, error) {
	switch name {
	case methodPath:
		return Path(n), nil
	case methodStar:
		return Star(n), nil
	case methodCycle:
		return Cycle(n), nil
	case methodWheel:
		return Wheel(n), nil
	case methodComplete:
		return Complete(n), nil
	case methodGrid:
		return Grid(n, m), nil
	case methodBipartite:
		return CompleteBipartite(n, m), nil
	case methodRandomSparse:
		return RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, name)
	}
}
