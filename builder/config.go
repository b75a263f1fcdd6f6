// Package builder holds the resolved configuration shared by all constructors.
package builder

import (
	"math/rand"

	"github.com/katalvlaran/supernode/core"
)

// builderConfig is the immutable result of applying BuilderOptions.
type builderConfig struct {
	// rng drives stochastic constructors; nil unless WithSeed/WithRand is given.
	rng *rand.Rand

	// graphOpts are forwarded to core.NewGraph by BuildGraph.
	graphOpts []core.Option
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
