package ga_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/supernode/builder"
	"github.com/katalvlaran/supernode/core"
	"github.com/katalvlaran/supernode/ga"
)

func mustBuild(t testing.TB, ctor builder.Constructor, opts ...builder.BuilderOption) *core.ContractedGraph {
	t.Helper()
	g, err := builder.BuildGraph(ctor, opts...)
	require.NoError(t, err)

	return g
}

// baseParams is a small, valid parameter set for an n-vertex graph.
func baseParams(kind ga.Kind, length int) ga.Params {
	return ga.Params{
		Strategy:         kind,
		PopulationSize:   8,
		Generations:      6,
		Runs:             2,
		ChromosomeLength: length,
		EliteCount:       2,
		TournamentSize:   3,
		MaxDistance:      2,
		CrossoverRate:    0.7,
		MutationRate:     0.5,
		DegreeSelectRate: 1,
		Seed:             42,
	}
}
