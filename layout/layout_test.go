package layout_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/supernode/builder"
	"github.com/katalvlaran/supernode/core"
	"github.com/katalvlaran/supernode/layout"
)

func build(t *testing.T, ctor builder.Constructor) *core.ContractedGraph {
	t.Helper()
	g, err := builder.BuildGraph(ctor)
	require.NoError(t, err)
	return g
}

func TestCompute_PathIsStretchedAlongX(t *testing.T) {
	l, err := layout.Compute(build(t, builder.Path(4)))
	require.NoError(t, err)
	require.Len(t, l.Nodes, 4)

	xs := make([]float64, 4)
	for i, n := range l.Nodes {
		assert.Equal(t, i, n.ID)
		assert.True(t, n.Pos.X >= 0 && n.Pos.X <= 1)
		assert.True(t, n.Pos.Y >= 0 && n.Pos.Y <= 1)
		xs[i] = n.Pos.X
	}
	assert.InDelta(t, 1.0, math.Abs(xs[0]-xs[3]), 1e-6, "endpoints at opposite extremes")
	assert.InDelta(t, 1.0/3, math.Abs(xs[0]-xs[1]), 1e-6)
	assert.InDelta(t, 2.0/3, math.Abs(xs[0]-xs[2]), 1e-6)
}

func TestCompute_AfterMerge(t *testing.T) {
	g := build(t, builder.Star(4))
	_, err := g.Merge(1, 0)
	require.NoError(t, err)

	l, err := layout.Compute(g)
	require.NoError(t, err)
	require.Len(t, l.Nodes, 3)
	assert.Equal(t, []int{0, 1}, l.Nodes[0].Members)
	assert.Equal(t, []core.Edge{{From: 0, To: 2}, {From: 0, To: 3}}, l.Edges)
	assert.Equal(t, []core.Edge{{From: 0, To: 2}, {From: 0, To: 3}}, l.Fake)

	_, ok := l.Position(1)
	assert.False(t, ok, "1 is no longer a representative")
	_, ok = l.Position(0)
	assert.True(t, ok)
}

func TestCompute_SmallAndDisconnected(t *testing.T) {
	g, err := core.NewGraph(1)
	require.NoError(t, err)
	l, err := layout.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, layout.Point{X: 0.5, Y: 0.5}, l.Nodes[0].Pos)

	g, err = core.NewGraph(3)
	require.NoError(t, err)
	l, err = layout.Compute(g)
	require.NoError(t, err)
	for _, n := range l.Nodes {
		assert.False(t, math.IsNaN(n.Pos.X) || math.IsNaN(n.Pos.Y))
	}

	_, err = layout.Compute(nil)
	assert.True(t, errors.Is(err, layout.ErrNilGraph))
}

func TestDOT(t *testing.T) {
	g := build(t, builder.Star(4))
	_, err := g.Merge(1, 2)
	require.NoError(t, err)

	want := `graph contracted {
  label="fake links: 1";
  n0 [label="0"];
  n2 [label="1,2"];
  n3 [label="3"];
  n0 -- n2;
  n0 -- n3;
}
`
	assert.Equal(t, want, layout.DOT(g))
	assert.Empty(t, layout.DOT(nil))
}
