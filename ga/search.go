// SPDX-License-Identifier: MIT
//
// File: search.go
// Role: SearchLoop, the generational genetic search over chromosomes.
// Determinism:
//   - One *rand.Rand per loop, seeded from Params.Seed; every random draw
//     happens in a fixed order, so a seed reproduces the whole record stream.
// Concurrency:
//   - A SearchLoop is single-threaded. Run independent loops in parallel
//     (see package runner); they share only the read-only original graph.

package ga

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/supernode/core"
)

// WorstFitness is assigned to chromosomes that could not be repaired.
const WorstFitness = math.MaxInt

// Option configures a SearchLoop.
type Option func(*SearchLoop)

// WithLogger routes run progress and repair warnings to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *SearchLoop) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRecordSink sends every GenerationRecord to sink.
func WithRecordSink(sink RecordSink) Option {
	return func(s *SearchLoop) {
		s.sink = sink
	}
}

// SearchLoop evolves a population of chromosomes that minimise the fake
// links introduced by contracting the original graph.
type SearchLoop struct {
	original *core.ContractedGraph
	params   Params
	strategy Strategy
	rng      *rand.Rand
	cache    *FitnessCache
	log      logrus.FieldLogger
	sink     RecordSink

	population []*Chromosome
	fitness    []int
	stats      CacheStats
	total      CacheStats
}

// New validates p against g and prepares a loop. g is never modified.
func New(g *core.ContractedGraph, p Params, opts ...Option) (*SearchLoop, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", ErrInvalidParams)
	}
	if err := p.Validate(g.Size()); err != nil {
		return nil, err
	}
	strategy, err := NewStrategy(p.Strategy, StrategyConfig{
		MaxDistance:      p.MaxDistance,
		DegreeSelectRate: p.DegreeSelectRate,
		MaxAttempts:      p.RepairAttempts(g.Size()),
	})
	if err != nil {
		return nil, err
	}

	s := &SearchLoop{
		original: g,
		params:   p,
		strategy: strategy,
		rng:      rngFromSeed(p.Seed),
		cache:    NewFitnessCache(p.SaveTransform),
		log:      discardLogger(),
		sink:     RecordSinkFunc(func(GenerationRecord) error { return nil }),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Strategy returns the loop's strategy.
func (s *SearchLoop) Strategy() Strategy { return s.strategy }

// Cache exposes the fitness cache for inspection.
func (s *SearchLoop) Cache() *FitnessCache { return s.cache }

// Run executes Params.Runs runs of Params.Generations generations each.
// It stops early with the context's error when ctx is cancelled, and with
// the sink's error when a record cannot be written.
func (s *SearchLoop) Run(ctx context.Context) (Summary, error) {
	start := time.Now()
	p := s.params
	global := newScope()
	sum := Summary{RunBest: make([]int, 0, p.Runs)}

	for run := 1; run <= p.Runs; run++ {
		if p.ReseedPerRun {
			s.rng = rngFromSeed(p.Seed)
		}
		runLog := s.log.WithField("module", "ga").WithField("run", run)
		runLog.Info("run started")

		if err := s.initPopulation(); err != nil {
			return sum, fmt.Errorf("run %d: init: %w", run, err)
		}
		for i, c := range s.population {
			s.fitness[i] = s.Evaluate(c)
		}

		runScope := newScope()
		for gen := 1; gen <= p.Generations; gen++ {
			if err := ctx.Err(); err != nil {
				return sum, err
			}
			genStart := time.Now()
			s.stats = CacheStats{}

			next, err := s.breed()
			if err != nil {
				return sum, fmt.Errorf("run %d generation %d: %w", run, gen, err)
			}
			for i, c := range next {
				s.fitness[i] = s.Evaluate(c)
				s.population[i] = c
			}

			gs := summarize(s.fitness)
			genBest, genWorst := s.fitness[gs.bestIdx], s.fitness[gs.worstIdx]
			genText := s.population[gs.bestIdx].String()
			runScope.observe(genBest, genText, genWorst, gs.sum, len(s.fitness))
			global.observe(genBest, genText, genWorst, gs.sum, len(s.fitness))
			s.total.Add(s.stats)

			rec := GenerationRecord{
				Run:                  run,
				Generation:           gen,
				Elapsed:              time.Since(genStart),
				GlobalBest:           global.best,
				GlobalAverage:        global.average(),
				GlobalWorst:          global.worst,
				RunBest:              runScope.best,
				RunAverage:           runScope.average(),
				RunWorst:             runScope.worst,
				GenBest:              genBest,
				GenAverage:           gs.mean,
				GenWorst:             genWorst,
				GlobalBestChromosome: global.bestText,
				RunBestChromosome:    runScope.bestText,
				GenBestChromosome:    genText,
				Stats:                s.stats,
				CacheSize:            s.cache.Size(),
			}
			if err := s.sink.Record(rec); err != nil {
				return sum, fmt.Errorf("run %d generation %d: record: %w", run, gen, err)
			}
			runLog.WithField("generation", gen).
				WithField("best", genBest).
				WithField("average", gs.mean).
				Debug("generation done")
		}

		sum.RunBest = append(sum.RunBest, runScope.best)
		runLog.WithField("best", runScope.best).
			WithField("cache_size", s.cache.Size()).
			WithField("evaluations", s.total.Evaluations).
			Info("run finished")
	}

	sum.BestFitness = global.best
	sum.BestChromosome = global.bestText
	sum.WorstFitness = global.worst
	sum.Stats = s.total
	sum.CacheSize = s.cache.Size()
	sum.Variants = s.cache.Variants()
	sum.Elapsed = time.Since(start)

	return sum, nil
}

// initPopulation draws a fresh population from the original graph.
func (s *SearchLoop) initPopulation() error {
	p := s.params
	s.population = make([]*Chromosome, p.PopulationSize)
	s.fitness = make([]int, p.PopulationSize)
	for i := range s.population {
		c := NewChromosome(s.strategy, p.ChromosomeLength)
		if err := c.Initialize(s.original, s.rng); err != nil {
			return err
		}
		s.population[i] = c
	}

	return nil
}

// breed builds the next population: elites first, then tournament winners
// paired up for crossover and mutation.
func (s *SearchLoop) breed() ([]*Chromosome, error) {
	p := s.params
	next := make([]*Chromosome, p.PopulationSize)
	for e, idx := range s.eliteIndices() {
		next[e] = s.population[idx].Clone()
	}

	for c := p.EliteCount; c < p.PopulationSize; c += 2 {
		p1 := s.tournament()
		p2 := s.tournament()
		if s.rng.Float64() < p.CrossoverRate {
			start := s.rng.Intn(p.ChromosomeLength)
			end := s.rng.Intn(p.ChromosomeLength-start) + start
			Crossover(p1, p2, start, end)
		}
		if s.rng.Float64() < p.MutationRate {
			if err := p1.Mutate(s.original, s.rng); err != nil {
				return nil, err
			}
		}
		if s.rng.Float64() < p.MutationRate {
			if err := p2.Mutate(s.original, s.rng); err != nil {
				return nil, err
			}
		}

		if c+1 == p.PopulationSize {
			if s.rng.Intn(2) == 0 {
				next[c] = p1
			} else {
				next[c] = p2
			}
			continue
		}
		next[c], next[c+1] = p1, p2
	}

	return next, nil
}

// eliteIndices returns the EliteCount lowest-fitness indices of the previous
// generation; equal fitness keeps population order.
func (s *SearchLoop) eliteIndices() []int {
	idx := make([]int, len(s.fitness))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return s.fitness[idx[a]] < s.fitness[idx[b]]
	})

	return idx[:s.params.EliteCount]
}

// tournament copies the fittest of TournamentSize uniformly drawn members.
func (s *SearchLoop) tournament() *Chromosome {
	winner, best := -1, 0
	for i := 0; i < s.params.TournamentSize; i++ {
		idx := s.rng.Intn(len(s.population))
		if winner < 0 || s.fitness[idx] < best {
			winner, best = idx, s.fitness[idx]
		}
	}

	return s.population[winner].Clone()
}

// Evaluate returns the fitness of c, repairing its genes in place as they
// are applied to a fresh copy of the original graph. Results are cached by
// text before and after repair. A chromosome that cannot be repaired scores
// WorstFitness and is not cached.
func (s *SearchLoop) Evaluate(c *Chromosome) int {
	s.stats.Evaluations++
	pre := c.String()
	if f, ok := s.cache.Get(pre); ok {
		s.stats.CacheAccesses++
		return f
	}
	if f, ok := s.cache.Transformed(pre); ok {
		s.stats.TransformMapUses++
		return f
	}

	work := s.original.Clone()
	for i := 0; i < c.Len(); i++ {
		if err := c.Repair(i, work, s.rng); err != nil {
			s.log.WithField("module", "ga").
				WithField("chromosome", pre).
				WithError(err).
				Warn("chromosome scored as worst: repair failed")
			return WorstFitness
		}
		if _, err := c.Apply(i, work); err != nil {
			s.log.WithField("module", "ga").
				WithField("chromosome", pre).
				WithError(err).
				Warn("chromosome scored as worst: merge failed")
			return WorstFitness
		}
	}

	post := c.String()
	s.cache.RecordTransform(pre, post)
	if f, ok := s.cache.Get(post); ok {
		s.stats.PostTransformCacheAccesses++
		return f
	}
	f := work.TotalFakeLinks()
	s.cache.Put(post, f)

	return f
}

// Stats returns the cache statistics of the generation in progress.
func (s *SearchLoop) Stats() CacheStats { return s.stats }

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = io.Discard

	return l
}
