// SPDX-License-Identifier: MIT
// Package: supernode/builder
//
// impl_path.go - Path(n): vertices 0..n-1, edges i-(i+1) in ascending i.

package builder

import "fmt"

// Path returns a Constructor that builds the simple path P_n (n ≥ 2).
func Path(n int) Constructor {
	return func(s *edgeSink, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		s.grow(n)
		for i := 0; i+1 < n; i++ {
			s.edge(i, i+1)
		}

		return nil
	}
}
