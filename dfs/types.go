package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to Walk or Components.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange indicates a start vertex outside 0..Size()-1.
	ErrStartOutOfRange = errors.New("dfs: start vertex out of range")
)

// Graph is the read-only view a walk needs. *core.ContractedGraph satisfies it.
type Graph interface {
	Size() int
	Representative(v int) int
	Neighbors(v int) []int
}

// Option configures a walk.
type Option func(*Options)

// Options holds the walk parameters.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is called when a representative is discovered.
	// Returning an error aborts the walk with that error.
	OnVisit func(rep int) error
}

// DefaultOptions returns a background context and no hook.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context checked between discoveries. A nil context
// is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(rep int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// Result is the outcome of a walk from one start.
type Result struct {
	// Order lists representatives in discovery (pre-order) order.
	Order []int

	// Parent maps each discovered representative to the one it was reached
	// from; the start maps to -1.
	Parent map[int]int
}
