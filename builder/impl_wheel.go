// SPDX-License-Identifier: MIT
// Package: supernode/builder
//
// impl_wheel.go - Wheel(n) = C_{n-1} on 0..n-2 plus hub n-1.
//
// Contract:
//   - n ≥ 4 so the rim is a valid cycle.
//   - Rim edges first (via Cycle), then spokes hub-i for i ascending.

package builder

import "fmt"

// Wheel returns a Constructor that builds the wheel W_n with hub n-1.
func Wheel(n int) Constructor {
	return func(s *edgeSink, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(s, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub := n - 1
		s.grow(n)
		for i := 0; i < hub; i++ {
			s.edge(hub, i)
		}

		return nil
	}
}
