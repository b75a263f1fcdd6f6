package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/supernode/core"
)

const (
	// propertySeed fixes the random graphs and merge sequences used by property tests.
	propertySeed = 20240611

	// propertyRounds is how many random graphs each property test builds.
	propertyRounds = 25
)

// gene is a (root, offset) merge with target (root+offset) mod N.
type gene [2]int

// mustGraph builds an n-vertex graph from edge pairs, failing the test on error.
func mustGraph(t testing.TB, n int, edges ...[2]int) *core.ContractedGraph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// star returns the n-vertex star centred at 0.
func star(t testing.TB, n int) *core.ContractedGraph {
	t.Helper()
	edges := make([][2]int, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, [2]int{0, i})
	}

	return mustGraph(t, n, edges...)
}

// path returns the n-vertex path 0-1-...-(n-1).
func path(t testing.TB, n int) *core.ContractedGraph {
	t.Helper()
	edges := make([][2]int, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}

	return mustGraph(t, n, edges...)
}

// cycle returns the n-vertex ring.
func cycle(t testing.TB, n int) *core.ContractedGraph {
	t.Helper()
	edges := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, (i + 1) % n})
	}

	return mustGraph(t, n, edges...)
}

// applyGenes merges root into target for every gene, in order.
func applyGenes(t testing.TB, g *core.ContractedGraph, genes ...gene) {
	t.Helper()
	n := g.Size()
	for _, gn := range genes {
		_, err := g.Merge(gn[0], (gn[0]+gn[1])%n)
		require.NoError(t, err)
	}
}

// randomGraph builds a graph with n vertices where each pair is joined with probability p.
func randomGraph(t testing.TB, rng *rand.Rand, n int, p float64) *core.ContractedGraph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				require.NoError(t, g.AddEdge(u, v))
			}
		}
	}

	return g
}

// refPartition is a naive reference union-find used to check SameCluster.
type refPartition []int

func newRefPartition(n int) refPartition {
	p := make(refPartition, n)
	for i := range p {
		p[i] = i
	}

	return p
}

func (p refPartition) find(v int) int {
	for p[v] != v {
		v = p[v]
	}

	return v
}

func (p refPartition) union(a, b int) {
	p[p.find(a)] = p.find(b)
}
