// SPDX-License-Identifier: MIT
// Package: supernode/builder
//
// impl_complete.go - Complete(n): every pair {i,j}, i<j, emitted i then j ascending.

package builder

import "fmt"

// Complete returns a Constructor that builds K_n (n ≥ 1).
func Complete(n int) Constructor {
	return func(s *edgeSink, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		s.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.edge(i, j)
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{n1,n2}: left side 0..n1-1,
// right side n1..n1+n2-1, every cross pair joined.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(s *edgeSink, _ builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d n2=%d < min=%d: %w", methodBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		s.grow(n1 + n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				s.edge(i, n1+j)
			}
		}

		return nil
	}
}
