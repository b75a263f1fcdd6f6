// SPDX-License-Identifier: MIT
//
// File: strategy.go
// Role: Strategy variants that propose and repair genes.
// AI-HINT:
//   - Proposals run on the original, unmerged graph.
//   - Repair runs on the partially merged copy being evaluated: first a scan of
//     the root's own candidates, then bounded random-root retries.
//   - Candidate lists are ascending, so the first valid one is deterministic.

package ga

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/katalvlaran/supernode/bfs"
	"github.com/katalvlaran/supernode/core"
)

// Kind names a strategy variant.
type Kind string

// Strategy variants.
const (
	// KindBFS picks targets uniformly within the locality.
	KindBFS Kind = "BFS"
	// KindDegree prefers the lowest-degree target within the locality.
	KindDegree Kind = "DEGREE"
	// KindDegree2 is KindDegree with degree-ordered repair.
	KindDegree2 Kind = "DEGREE2"
	// KindFixed takes the first direct neighbour.
	KindFixed Kind = "FIXED"
	// KindRandomAdd samples targets from a randomised-subset locality.
	KindRandomAdd Kind = "RANDOMADD"
	// KindUnrestricted ignores locality entirely.
	KindUnrestricted Kind = "UNRESTRICTED"
)

// Kinds lists every known strategy.
func Kinds() []Kind {
	return []Kind{KindBFS, KindDegree, KindDegree2, KindFixed, KindRandomAdd, KindUnrestricted}
}

// ParseKind resolves a strategy name, case-insensitively.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToUpper(strings.TrimSpace(name)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Strategy proposes fresh genes and repairs invalid ones.
type Strategy interface {
	// Kind names the variant.
	Kind() Kind

	// Propose draws a new gene from the original graph g.
	Propose(g *core.ContractedGraph, rng *rand.Rand) (Gene, error)

	// Repair replaces gene i of c, known to be invalid on g, with a valid one.
	Repair(c *Chromosome, i int, g *core.ContractedGraph, rng *rand.Rand) error
}

// StrategyConfig carries the parameters strategies depend on.
type StrategyConfig struct {
	// MaxDistance is the locality hop bound.
	MaxDistance int

	// DegreeSelectRate is the probability DEGREE and DEGREE2 take the
	// minimum-degree candidate rather than a uniform one.
	DegreeSelectRate float64

	// MaxAttempts bounds random-root retries in Propose and Repair.
	MaxAttempts int
}

// NewStrategy builds the variant named by kind.
func NewStrategy(kind Kind, cfg StrategyConfig) (Strategy, error) {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	base := locality{cfg: cfg}
	switch kind {
	case KindBFS:
		return &bfsStrategy{base}, nil
	case KindDegree:
		return &degreeStrategy{locality: base}, nil
	case KindDegree2:
		return &degreeStrategy{locality: base, ordered: true}, nil
	case KindFixed:
		return &fixedStrategy{base}, nil
	case KindRandomAdd:
		return &randomAddStrategy{base}, nil
	case KindUnrestricted:
		return &unrestrictedStrategy{base}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, kind)
	}
}

// locality holds what every variant shares.
type locality struct {
	cfg StrategyConfig
}

// neighborhood returns the representatives within MaxDistance of root.
func (l locality) neighborhood(g *core.ContractedGraph, root int) []int {
	out, err := bfs.Neighborhood(g, root, l.cfg.MaxDistance)
	if err != nil {
		return nil
	}

	return out
}

// randomNeighborhood is neighborhood with randomised-subset expansion.
func (l locality) randomNeighborhood(g *core.ContractedGraph, root int, rng *rand.Rand) []int {
	out, err := bfs.RandomNeighborhood(g, root, l.cfg.MaxDistance, rng)
	if err != nil {
		return nil
	}

	return out
}

// propose draws random roots until candidates returns a non-empty list,
// then lets choose pick the target from it.
func (l locality) propose(
	g *core.ContractedGraph,
	rng *rand.Rand,
	candidates func(root int) []int,
	choose func(cands []int) int,
) (Gene, error) {
	n := g.Size()
	if n == 0 {
		return Gene{}, ErrNoCandidates
	}
	for attempt := 0; attempt < l.cfg.MaxAttempts; attempt++ {
		root := rng.Intn(n)
		cands := candidates(root)
		if len(cands) == 0 {
			continue
		}

		return GeneFor(root, choose(cands), n), nil
	}

	return Gene{}, fmt.Errorf("%w: %d roots without candidates", ErrNoCandidates, l.cfg.MaxAttempts)
}

// repair keeps the root and takes the first valid target from scan; failing
// that it draws random roots and lets fallback pick a target for each.
func (l locality) repair(
	c *Chromosome,
	i int,
	g *core.ContractedGraph,
	rng *rand.Rand,
	scan []int,
	fallback func(root int) (int, bool),
) error {
	n := g.Size()
	root := c.genes[i].Root
	for _, to := range scan {
		cand := GeneFor(root, to, n)
		if c.valid(i, cand, g) {
			c.set(i, cand)
			return nil
		}
	}

	for attempt := 0; attempt < l.cfg.MaxAttempts; attempt++ {
		from := rng.Intn(n)
		to, ok := fallback(from)
		if !ok {
			continue
		}
		cand := GeneFor(from, to, n)
		if c.valid(i, cand, g) {
			c.set(i, cand)
			return nil
		}
	}

	return fmt.Errorf("%w: gene %d after %d attempts", ErrRepairExhausted, i, l.cfg.MaxAttempts)
}

// uniformFallback picks a uniform target from a candidate source.
func uniformFallback(candidates func(root int) []int, rng *rand.Rand) func(int) (int, bool) {
	return func(root int) (int, bool) {
		cands := candidates(root)
		if len(cands) == 0 {
			return 0, false
		}

		return pick(cands, rng), true
	}
}

type bfsStrategy struct{ locality }

func (s *bfsStrategy) Kind() Kind { return KindBFS }

func (s *bfsStrategy) Propose(g *core.ContractedGraph, rng *rand.Rand) (Gene, error) {
	return s.propose(g, rng,
		func(root int) []int { return s.neighborhood(g, root) },
		func(cands []int) int { return pick(cands, rng) })
}

func (s *bfsStrategy) Repair(c *Chromosome, i int, g *core.ContractedGraph, rng *rand.Rand) error {
	local := func(root int) []int { return s.neighborhood(g, root) }

	return s.repair(c, i, g, rng, local(c.genes[i].Root), uniformFallback(local, rng))
}

// degreeStrategy backs DEGREE and, with ordered set, DEGREE2.
type degreeStrategy struct {
	locality
	ordered bool
}

func (s *degreeStrategy) Kind() Kind {
	if s.ordered {
		return KindDegree2
	}

	return KindDegree
}

func (s *degreeStrategy) Propose(g *core.ContractedGraph, rng *rand.Rand) (Gene, error) {
	return s.propose(g, rng,
		func(root int) []int { return s.neighborhood(g, root) },
		func(cands []int) int {
			if rng.Float64() < s.cfg.DegreeSelectRate {
				return minDegree(g, cands)
			}

			return pick(cands, rng)
		})
}

func (s *degreeStrategy) Repair(c *Chromosome, i int, g *core.ContractedGraph, rng *rand.Rand) error {
	local := func(root int) []int { return s.neighborhood(g, root) }
	if !s.ordered {
		return s.repair(c, i, g, rng, local(c.genes[i].Root), uniformFallback(local, rng))
	}

	return s.repair(c, i, g, rng, byDegree(g, local(c.genes[i].Root)), func(root int) (int, bool) {
		cands := local(root)
		if len(cands) == 0 {
			return 0, false
		}

		return minDegree(g, cands), true
	})
}

// minDegree returns the candidate of lowest original degree, the first one on ties.
func minDegree(g *core.ContractedGraph, cands []int) int {
	best, bestDeg := cands[0], g.OriginalDegree(cands[0])
	for _, v := range cands[1:] {
		if d := g.OriginalDegree(v); d < bestDeg {
			best, bestDeg = v, d
		}
	}

	return best
}

// byDegree returns cands ordered by (original degree, id).
func byDegree(g *core.ContractedGraph, cands []int) []int {
	out := append([]int(nil), cands...)
	deg := make(map[int]int, len(out))
	for _, v := range out {
		deg[v] = g.OriginalDegree(v)
	}
	sort.SliceStable(out, func(a, b int) bool {
		if deg[out[a]] != deg[out[b]] {
			return deg[out[a]] < deg[out[b]]
		}

		return out[a] < out[b]
	})

	return out
}

type fixedStrategy struct{ locality }

func (s *fixedStrategy) Kind() Kind { return KindFixed }

// Propose targets the first current neighbour, which is the smallest id
// because adjacency lists are sorted.
func (s *fixedStrategy) Propose(g *core.ContractedGraph, rng *rand.Rand) (Gene, error) {
	return s.propose(g, rng,
		g.Neighbors,
		func(cands []int) int { return cands[0] })
}

func (s *fixedStrategy) Repair(c *Chromosome, i int, g *core.ContractedGraph, rng *rand.Rand) error {
	return s.repair(c, i, g, rng, g.Neighbors(c.genes[i].Root), uniformFallback(g.Neighbors, rng))
}

type randomAddStrategy struct{ locality }

func (s *randomAddStrategy) Kind() Kind { return KindRandomAdd }

func (s *randomAddStrategy) Propose(g *core.ContractedGraph, rng *rand.Rand) (Gene, error) {
	return s.propose(g, rng,
		func(root int) []int { return s.randomNeighborhood(g, root, rng) },
		func(cands []int) int { return pick(cands, rng) })
}

func (s *randomAddStrategy) Repair(c *Chromosome, i int, g *core.ContractedGraph, rng *rand.Rand) error {
	scan := s.randomNeighborhood(g, c.genes[i].Root, rng)
	local := func(root int) []int { return s.neighborhood(g, root) }

	return s.repair(c, i, g, rng, scan, uniformFallback(local, rng))
}

type unrestrictedStrategy struct{ locality }

func (s *unrestrictedStrategy) Kind() Kind { return KindUnrestricted }

func (s *unrestrictedStrategy) Propose(g *core.ContractedGraph, rng *rand.Rand) (Gene, error) {
	n := g.Size()
	if n < 2 {
		return Gene{}, ErrNoCandidates
	}

	return Gene{Root: rng.Intn(n), Offset: rng.Intn(n-1) + 1}, nil
}

// Repair first retries the offset alone, then draws root and offset together.
func (s *unrestrictedStrategy) Repair(c *Chromosome, i int, g *core.ContractedGraph, rng *rand.Rand) error {
	n := g.Size()
	if n < 2 {
		return fmt.Errorf("%w: gene %d on %d vertices", ErrRepairExhausted, i, n)
	}
	cand := Gene{Root: c.genes[i].Root, Offset: rng.Intn(n-1) + 1}
	for attempt := 0; attempt <= s.cfg.MaxAttempts; attempt++ {
		if c.valid(i, cand, g) {
			c.set(i, cand)
			return nil
		}
		cand = Gene{Root: rng.Intn(n), Offset: rng.Intn(n-1) + 1}
	}

	return fmt.Errorf("%w: gene %d after %d attempts", ErrRepairExhausted, i, s.cfg.MaxAttempts)
}
