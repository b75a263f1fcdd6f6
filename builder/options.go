// SPDX-License-Identifier: MIT
// Package: supernode/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors panic on meaningless inputs (nil RNG); constructors never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/supernode/core"
)

// BuilderOption customizes a build by mutating builderConfig before construction.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithGraphOptions forwards core options (for example core.WithLogger) to BuildGraph.
func WithGraphOptions(opts ...core.Option) BuilderOption {
	return func(c *builderConfig) {
		c.graphOpts = append(c.graphOpts, opts...)
	}
}
