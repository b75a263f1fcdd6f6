package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/supernode/core"
)

func TestNewGraph_InvalidSize(t *testing.T) {
	_, err := core.NewGraph(-1)
	require.ErrorIs(t, err, core.ErrInvalidSize)
}

func TestNewGraph_Isolated(t *testing.T) {
	g := mustGraph(t, 4)
	assert.Equal(t, 4, g.Size())
	assert.Equal(t, 4, g.CurrentSize())
	assert.Equal(t, 0, g.TotalFakeLinks())
	for v := 0; v < 4; v++ {
		assert.Equal(t, v, g.Representative(v))
		assert.True(t, g.IsRepresentative(v))
		assert.Empty(t, g.Neighbors(v))
	}
}

func TestAddEdge_Errors(t *testing.T) {
	g := mustGraph(t, 3)
	require.ErrorIs(t, g.AddEdge(0, 3), core.ErrVertexOutOfRange)
	require.ErrorIs(t, g.AddEdge(-1, 0), core.ErrVertexOutOfRange)
	require.ErrorIs(t, g.AddEdge(1, 1), core.ErrSelfLoop)
}

func TestAddEdge_Idempotent(t *testing.T) {
	g := mustGraph(t, 3, [2]int{0, 1}, [2]int{1, 0}, [2]int{0, 1}, [2]int{2, 0})

	assert.Equal(t, []int{1, 2}, g.OriginalNeighbors(0))
	assert.Equal(t, []int{0}, g.OriginalNeighbors(1))
	assert.Equal(t, []int{1, 2}, g.Neighbors(0))
	assert.Equal(t, 2, g.OriginalDegree(0))
	assert.Equal(t, 2, g.OriginalEdgeCount())
	assert.True(t, g.HasOriginalEdge(1, 0))
	assert.False(t, g.HasOriginalEdge(1, 2))
}

func TestQueries_OutOfRange(t *testing.T) {
	g := mustGraph(t, 2, [2]int{0, 1})
	assert.Equal(t, -1, g.Representative(5))
	assert.Equal(t, -1, g.Parent(-1))
	assert.False(t, g.SameCluster(0, 9))
	assert.False(t, g.HasOriginalEdge(0, 9))
	assert.Zero(t, g.OriginalDegree(9))
	assert.Nil(t, g.Neighbors(9))
	assert.Nil(t, g.Members(9))
	assert.Nil(t, g.FakeEdges(9))

	_, err := g.Merge(0, 2)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestAddEdge_AfterMerge(t *testing.T) {
	g := mustGraph(t, 4, [2]int{0, 1})
	_, err := g.Merge(0, 1)
	require.NoError(t, err)

	// 0 is absorbed into 1, so the current edge lands on representative 1.
	require.NoError(t, g.AddEdge(0, 3))
	assert.True(t, g.HasOriginalEdge(0, 3))
	assert.Equal(t, []int{3}, g.Neighbors(0))
	assert.Equal(t, []int{1}, g.Neighbors(3))

	// An edge inside one supernode only reaches the original adjacency.
	require.NoError(t, g.AddEdge(0, 1))
	assert.Equal(t, []int{3}, g.Neighbors(1))
}
