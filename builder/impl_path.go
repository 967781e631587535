// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Appends n vertices; edges i–(i+1) for i=0..n-2.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that appends a simple path P_n.
func Path(n int) Constructor {
	return func(c *canvas, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := c.grow(n)
		for i := 0; i+1 < n; i++ {
			c.join(base+i, base+i+1)
		}

		return nil
	}
}

// Empty returns a Constructor that appends n isolated vertices (n ≥ 0).
func Empty(n int) Constructor {
	return func(c *canvas, _ builderConfig) error {
		if n < 0 {
			return fmt.Errorf("Empty: n=%d < min=0: %w", n, ErrTooFewVertices)
		}
		c.grow(n)

		return nil
	}
}
