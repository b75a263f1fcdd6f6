package ga_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/supernode/ga"
)

func TestGenes_RoundTrip(t *testing.T) {
	genes, err := ga.ParseGenes("[(0,1),(1,1)]")
	require.NoError(t, err)
	assert.Equal(t, []ga.Gene{{Root: 0, Offset: 1}, {Root: 1, Offset: 1}}, genes)
	assert.Equal(t, "[(0,1),(1,1)]", ga.FormatGenes(genes))

	genes, err = ga.ParseGenes("  [(12,30)]\n")
	require.NoError(t, err)
	assert.Equal(t, []ga.Gene{{Root: 12, Offset: 30}}, genes)

	genes, err = ga.ParseGenes("[]")
	require.NoError(t, err)
	assert.Empty(t, genes)
	assert.Equal(t, "[]", ga.FormatGenes(nil))
}

func TestParseGenes_Rejects(t *testing.T) {
	for _, in := range []string{
		"",
		"(0,1)",
		"[(0,1)",
		"[(0, 1)]",
		"[(0,1,2)]",
		"[(0,1);(1,1)]",
		"[(-1,1)]",
		"[(+1,1)]",
		"[(a,1)]",
		"[()]",
	} {
		_, err := ga.ParseGenes(in)
		assert.ErrorIs(t, err, ga.ErrBadChromosomeText, "input %q", in)
	}
}

func TestGene_Target(t *testing.T) {
	g := ga.GeneFor(4, 1, 6)
	assert.Equal(t, ga.Gene{Root: 4, Offset: 3}, g)
	assert.Equal(t, 1, g.Target(6))
	assert.Equal(t, 0, ga.Gene{Root: 3, Offset: 3}.Target(6))
	assert.Equal(t, ga.Gene{Root: 0, Offset: 5}, ga.GeneFor(0, 5, 6))
}
