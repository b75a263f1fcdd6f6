// SPDX-License-Identifier: MIT
//
// File: chromosome.go
// Role: Chromosome, a fixed-length ordered sequence of merges bound to one Strategy.
// Concurrency:
//   - Not safe for concurrent mutation. The search loop owns its population.

package ga

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/supernode/core"
)

// Chromosome is an ordered list of genes, applied in order to a fresh copy
// of the original graph. The Strategy decides how genes are proposed and repaired.
type Chromosome struct {
	genes    []Gene
	strategy Strategy
}

// NewChromosome returns a chromosome of length zero-valued genes.
// Call Initialize before evaluating it.
func NewChromosome(s Strategy, length int) *Chromosome {
	return &Chromosome{genes: make([]Gene, length), strategy: s}
}

// ParseChromosome decodes text (see FormatGenes) into a chromosome bound to s.
func ParseChromosome(text string, s Strategy) (*Chromosome, error) {
	genes, err := ParseGenes(text)
	if err != nil {
		return nil, err
	}

	return &Chromosome{genes: genes, strategy: s}, nil
}

// Len returns the number of genes.
func (c *Chromosome) Len() int { return len(c.genes) }

// Gene returns gene i.
func (c *Chromosome) Gene(i int) Gene { return c.genes[i] }

// Genes returns a copy of all genes.
func (c *Chromosome) Genes() []Gene {
	out := make([]Gene, len(c.genes))
	copy(out, c.genes)

	return out
}

// Strategy returns the strategy the chromosome is bound to.
func (c *Chromosome) Strategy() Strategy { return c.strategy }

// Clone returns an independent copy sharing the same strategy.
func (c *Chromosome) Clone() *Chromosome {
	return &Chromosome{genes: c.Genes(), strategy: c.strategy}
}

// String renders the chromosome in its canonical text form.
func (c *Chromosome) String() string { return FormatGenes(c.genes) }

// Initialize replaces every gene with a fresh proposal on the original graph g.
func (c *Chromosome) Initialize(g *core.ContractedGraph, rng *rand.Rand) error {
	for i := range c.genes {
		if err := c.MutateGene(i, g, rng); err != nil {
			return err
		}
	}

	return nil
}

// MutateGene replaces gene i with a fresh proposal.
func (c *Chromosome) MutateGene(i int, g *core.ContractedGraph, rng *rand.Rand) error {
	gene, err := c.strategy.Propose(g, rng)
	if err != nil {
		return fmt.Errorf("gene %d: %w", i, err)
	}
	c.genes[i] = gene

	return nil
}

// Mutate replaces one uniformly chosen gene.
func (c *Chromosome) Mutate(g *core.ContractedGraph, rng *rand.Rand) error {
	if len(c.genes) == 0 {
		return nil
	}

	return c.MutateGene(rng.Intn(len(c.genes)), g, rng)
}

// Repair makes gene i valid against the partially merged graph g, in place.
// A valid gene is unique in the chromosome and joins two different supernodes.
func (c *Chromosome) Repair(i int, g *core.ContractedGraph, rng *rand.Rand) error {
	if c.valid(i, c.genes[i], g) {
		return nil
	}

	return c.strategy.Repair(c, i, g, rng)
}

// Apply performs the merge encoded by gene i on g.
func (c *Chromosome) Apply(i int, g *core.ContractedGraph) (bool, error) {
	gene := c.genes[i]

	return g.Merge(gene.Root, gene.Target(g.Size()))
}

// Crossover swaps genes start..end (inclusive) between a and b.
func Crossover(a, b *Chromosome, start, end int) {
	for i := start; i <= end; i++ {
		a.genes[i], b.genes[i] = b.genes[i], a.genes[i]
	}
}

// Duplicate reports whether some other index holds the same gene as index i.
func (c *Chromosome) Duplicate(i int) bool {
	return c.duplicateOf(i, c.genes[i])
}

func (c *Chromosome) duplicateOf(i int, gene Gene) bool {
	for j, other := range c.genes {
		if j != i && other == gene {
			return true
		}
	}

	return false
}

// valid reports whether gene may sit at index i given the merges already on g.
func (c *Chromosome) valid(i int, gene Gene, g *core.ContractedGraph) bool {
	return !c.duplicateOf(i, gene) && !g.SameCluster(gene.Root, gene.Target(g.Size()))
}

// set stores gene at index i.
func (c *Chromosome) set(i int, gene Gene) {
	c.genes[i] = gene
}
