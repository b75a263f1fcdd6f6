// Package bfs provides tunable options and error definitions
// for breadth-first locality search over a contracted graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartOutOfRange is returned when the start id is not a vertex of the graph.
	ErrStartOutOfRange = errors.New("bfs: start vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Unlimited disables the depth bound.
const Unlimited = -1

// Graph is the read-only view BFS needs: representatives and the current
// adjacency keyed by them. *core.ContractedGraph satisfies it.
type Graph interface {
	Size() int
	Representative(v int) int
	Neighbors(v int) []int
}

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS runs.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth bounds expansion: nothing beyond MaxDepth hops is enqueued.
	// Unlimited (the default) disables the bound; 0 visits the start only.
	MaxDepth int

	// Rand, when set, switches to randomised-subset expansion: every expanded
	// vertex keeps a non-empty random subset of its neighbor list.
	Rand *rand.Rand

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with no depth limit, exhaustive
// expansion and a background context.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:      context.Background(),
		MaxDepth: Unlimited,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth bounds the search to d hops. Negative values other than
// Unlimited are rejected with ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 && d != Unlimited {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithRand enables randomised-subset expansion drawing from r.
func WithRand(r *rand.Rand) Option {
	return func(o *BFSOptions) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil random source", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// BFSResult holds the outcome of a traversal. All ids are representatives.
//   - Start: representative of the requested start vertex.
//   - Order: vertices visited, in visit sequence, Start first.
//   - Depth: hop distance from Start.
//   - Parent: predecessor in the BFS tree.
type BFSResult struct {
	Start  int
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// Reached returns every visited representative except Start, ascending.
func (r *BFSResult) Reached() []int {
	out := make([]int, 0, len(r.Order))
	for _, id := range r.Order {
		if id != r.Start {
			out = append(out, id)
		}
	}
	sortInts(out)

	return out
}
