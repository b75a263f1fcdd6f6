// SPDX-License-Identifier: MIT
// Package: supernode/builder
//
// impl_cycle.go - Cycle(n): ring i-(i+1) mod n, emitted for i ascending.

package builder

import "fmt"

// Cycle returns a Constructor that builds the simple cycle C_n (n ≥ 3).
func Cycle(n int) Constructor {
	return func(s *edgeSink, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		s.grow(n)
		for i := 0; i < n; i++ {
			s.edge(i, (i+1)%n)
		}

		return nil
	}
}
