// SPDX-License-Identifier: MIT
// Package: supernode/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighbourhood lattice.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1.
//   - Cell (r,c) is vertex r*cols+c (row-major).
//   - For each cell in row-major order emit Right then Bottom where present.

package builder

import "fmt"

// Grid returns a Constructor that builds an R×C orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(s *edgeSink, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		s.grow(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					s.edge(v, v+1)
				}
				if r+1 < rows {
					s.edge(v, v+cols)
				}
			}
		}

		return nil
	}
}
