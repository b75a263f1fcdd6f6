package ga_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/supernode/builder"
	"github.com/katalvlaran/supernode/dijkstra"
	"github.com/katalvlaran/supernode/ga"
)

func TestParseKind(t *testing.T) {
	for _, k := range ga.Kinds() {
		got, err := ga.ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := ga.ParseKind(" degree2 ")
	require.NoError(t, err)
	assert.Equal(t, ga.KindDegree2, got)

	_, err = ga.ParseKind("GREEDY")
	assert.ErrorIs(t, err, ga.ErrUnknownStrategy)
	_, err = ga.NewStrategy("GREEDY", ga.StrategyConfig{})
	assert.ErrorIs(t, err, ga.ErrUnknownStrategy)
}

func TestPropose_StaysWithinLocality(t *testing.T) {
	g := mustBuild(t, builder.RandomSparse(30, 0.12), builder.WithSeed(5))
	cfg := ga.StrategyConfig{MaxDistance: 2, DegreeSelectRate: 0.5, MaxAttempts: 200}
	rng := rand.New(rand.NewSource(9))

	for _, kind := range ga.Kinds() {
		s, err := ga.NewStrategy(kind, cfg)
		require.NoError(t, err)
		assert.Equal(t, kind, s.Kind())
		for i := 0; i < 50; i++ {
			gene, err := s.Propose(g, rng)
			require.NoError(t, err, kind)
			require.GreaterOrEqual(t, gene.Offset, 1, kind)
			require.Less(t, gene.Offset, g.Size(), kind)
			if kind == ga.KindUnrestricted {
				continue
			}
			d := dijkstra.Distance(g, gene.Root, gene.Target(g.Size()))
			assert.NotEqual(t, dijkstra.Unreachable, d, kind)
			assert.LessOrEqual(t, d, cfg.MaxDistance, kind)
			if kind == ga.KindFixed {
				assert.Equal(t, 1, d, "fixed merges direct neighbours")
			}
		}
	}
}

func TestPropose_FixedAndDegreeAreDeterministicOnStar(t *testing.T) {
	g := mustBuild(t, builder.Star(5))
	rng := rand.New(rand.NewSource(3))

	for _, kind := range []ga.Kind{ga.KindFixed, ga.KindDegree, ga.KindDegree2} {
		s, err := ga.NewStrategy(kind, ga.StrategyConfig{MaxDistance: 1, DegreeSelectRate: 1, MaxAttempts: 10})
		require.NoError(t, err)
		for i := 0; i < 20; i++ {
			gene, err := s.Propose(g, rng)
			require.NoError(t, err)
			if gene.Root == 0 {
				assert.Equal(t, 1, gene.Target(5), "%s: hub takes its first leaf", kind)
			} else {
				assert.Equal(t, 0, gene.Target(5), "%s: a leaf can only reach the hub", kind)
			}
		}
	}
}

func TestPropose_NoCandidates(t *testing.T) {
	g := mustBuild(t, builder.RandomSparse(6, 0))
	s, err := ga.NewStrategy(ga.KindBFS, ga.StrategyConfig{MaxDistance: 3, MaxAttempts: 16})
	require.NoError(t, err)

	_, err = s.Propose(g, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ga.ErrNoCandidates)
}

func TestRepair_DuplicateKeepsRoot(t *testing.T) {
	g := mustBuild(t, builder.Star(5))
	s, err := ga.NewStrategy(ga.KindBFS, ga.StrategyConfig{MaxDistance: 1, MaxAttempts: 32})
	require.NoError(t, err)
	c, err := ga.ParseChromosome("[(1,1),(1,1)]", s)
	require.NoError(t, err)
	assert.True(t, c.Duplicate(0))

	work := g.Clone()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < c.Len(); i++ {
		require.NoError(t, c.Repair(i, work, rng))
		_, err = c.Apply(i, work)
		require.NoError(t, err)
	}
	// Leaf 1 only reaches the hub, so the first copy is redirected to 0.
	assert.Equal(t, "[(1,4),(1,1)]", c.String())
	assert.False(t, c.Duplicate(0))
	assert.Equal(t, 3, work.CurrentSize())
}

func TestRepair_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 10; round++ {
		g := mustBuild(t, builder.RandomSparse(20, 0.2), builder.WithSeed(int64(round+1)))
		for _, kind := range ga.Kinds() {
			s, err := ga.NewStrategy(kind, ga.StrategyConfig{MaxDistance: 2, DegreeSelectRate: 0.7, MaxAttempts: 400})
			require.NoError(t, err)
			c := ga.NewChromosome(s, 6)
			require.NoError(t, c.Initialize(g, rng))

			work := g.Clone()
			for i := 0; i < c.Len(); i++ {
				require.NoError(t, c.Repair(i, work, rng), kind)
				merged, err := c.Apply(i, work)
				require.NoError(t, err)
				assert.True(t, merged, "%s: a repaired gene always contracts", kind)
			}

			// A second pass over the repaired genes changes nothing.
			repaired := c.String()
			again := g.Clone()
			for i := 0; i < c.Len(); i++ {
				require.NoError(t, c.Repair(i, again, rng))
				_, err := c.Apply(i, again)
				require.NoError(t, err)
			}
			assert.Equal(t, repaired, c.String(), kind)
			assert.Equal(t, work.TotalFakeLinks(), again.TotalFakeLinks(), kind)
		}
	}
}

func TestCrossover_SwapsInclusiveRange(t *testing.T) {
	s, err := ga.NewStrategy(ga.KindBFS, ga.StrategyConfig{MaxDistance: 1})
	require.NoError(t, err)
	a, err := ga.ParseChromosome("[(0,1),(1,1),(2,1),(3,1)]", s)
	require.NoError(t, err)
	b, err := ga.ParseChromosome("[(9,9),(8,8),(7,7),(6,6)]", s)
	require.NoError(t, err)

	ga.Crossover(a, b, 1, 2)
	assert.Equal(t, "[(0,1),(8,8),(7,7),(3,1)]", a.String())
	assert.Equal(t, "[(9,9),(1,1),(2,1),(6,6)]", b.String())

	clone := a.Clone()
	ga.Crossover(a, b, 0, 0)
	assert.Equal(t, "[(0,1),(8,8),(7,7),(3,1)]", clone.String())
}
