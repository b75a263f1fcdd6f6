// SPDX-License-Identifier: MIT
// Package: supernode/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi-like sampler.
//
// Contract:
//   - n ≥ 1, 0 ≤ p ≤ 1.
//   - cfg.rng is required when 0 < p < 1; p ∈ {0,1} is deterministic without one.
//   - Trials run over unordered pairs {i,j}, i asc then j asc (j > i).
//
// Determinism:
//   - Fixed trial order, so a fixed seed always yields the same edge list.

package builder

import "fmt"

// RandomSparse returns a Constructor that samples each pair independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(s *edgeSink, cfg builderConfig) error {
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		s.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case cfg.rng == nil:
					if p == probMax {
						s.edge(i, j)
					}
				case cfg.rng.Float64() < p:
					s.edge(i, j)
				}
			}
		}

		return nil
	}
}
