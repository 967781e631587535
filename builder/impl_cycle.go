// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Appends n vertices; edges i–(i+1)%n for i=0..n-1.
//
// Complexity: O(n) edges on top of the canvas growth.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that appends an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(c *canvas, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := c.grow(n)
		for i := 0; i < n; i++ {
			c.join(base+i, base+(i+1)%n)
		}

		return nil
	}
}
