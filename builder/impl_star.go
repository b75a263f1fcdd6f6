// SPDX-License-Identifier: MIT
// Package: supernode/builder
//
// impl_star.go - Star(n): hub 0 joined to leaves 1..n-1 in ascending order.

package builder

import "fmt"

// starCenter is the fixed hub index.
const starCenter = 0

// Star returns a Constructor that builds a star with hub 0 and n-1 leaves (n ≥ 2).
func Star(n int) Constructor {
	return func(s *edgeSink, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		s.grow(n)
		for leaf := 1; leaf < n; leaf++ {
			s.edge(starCenter, leaf)
		}

		return nil
	}
}
