// File: stats.go
// Role: best/average/worst bookkeeping at generation, run and global scope.

package ga

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// generationStats summarises one evaluated population.
type generationStats struct {
	bestIdx, worstIdx int
	mean, sum         float64
}

// summarize finds the first best and first worst member and the mean fitness.
func summarize(fitness []int) generationStats {
	xs := make([]float64, len(fitness))
	for i, f := range fitness {
		xs[i] = float64(f)
	}

	return generationStats{
		bestIdx:  floats.MinIdx(xs),
		worstIdx: floats.MaxIdx(xs),
		mean:     stat.Mean(xs, nil),
		sum:      floats.Sum(xs),
	}
}

// scope accumulates best, worst and a running average over many generations.
type scope struct {
	best     int
	bestText string
	worst    int
	sum      float64
	count    int
}

func newScope() scope {
	return scope{best: math.MaxInt, worst: math.MinInt}
}

// observe folds one generation into the scope. Ties keep the earlier best.
func (s *scope) observe(best int, bestText string, worst int, sum float64, count int) {
	if best < s.best {
		s.best, s.bestText = best, bestText
	}
	if worst > s.worst {
		s.worst = worst
	}
	s.sum += sum
	s.count += count
}

func (s *scope) average() float64 {
	if s.count == 0 {
		return 0
	}

	return s.sum / float64(s.count)
}
