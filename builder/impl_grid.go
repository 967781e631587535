// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertices in row-major order; cell (r,c) is base + r·cols + c.
//   • 4-neighbourhood: right and down edges only, each emitted once.
//
// Complexity: O(rows·cols) edges.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that appends a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(c *canvas, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := c.grow(rows * cols)
		at := func(r, col int) int { return base + r*cols + col }
		for r := 0; r < rows; r++ {
			for col := 0; col < cols; col++ {
				if col+1 < cols {
					c.join(at(r, col), at(r, col+1))
				}
				if r+1 < rows {
					c.join(at(r, col), at(r+1, col))
				}
			}
		}

		return nil
	}
}
