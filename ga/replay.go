package ga

import (
	"fmt"

	"github.com/katalvlaran/supernode/core"
)

// Result describes a chromosome applied verbatim to a graph.
type Result struct {
	// Graph is the contracted copy; the input graph is untouched.
	Graph *core.ContractedGraph

	// Fitness is the total number of fake links.
	Fitness int

	// Skipped counts genes that were same-cluster no-ops.
	Skipped int
}

// Replay applies the genes in text to an unmerged copy of g, in order and
// without repair, so a reported best chromosome can be inspected. Merges
// already applied to g are not carried over. Genes rooted outside the graph
// are ErrBadChromosomeText.
func Replay(g *core.ContractedGraph, text string) (Result, error) {
	genes, err := ParseGenes(text)
	if err != nil {
		return Result{}, err
	}
	n := g.Size()
	work := g.CloneEmpty()
	res := Result{Graph: work}
	for i, gene := range genes {
		if gene.Root >= n {
			return Result{}, fmt.Errorf("%w: gene %d root %d on %d vertices", ErrBadChromosomeText, i, gene.Root, n)
		}
		merged, err := work.Merge(gene.Root, gene.Target(n))
		if err != nil {
			return Result{}, fmt.Errorf("gene %d: %w", i, err)
		}
		if !merged {
			res.Skipped++
		}
	}
	res.Fitness = work.TotalFakeLinks()

	return res, nil
}
