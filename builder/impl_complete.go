// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Appends n vertices, all pairs adjacent. K_1 is a single vertex.
//
// Complexity: O(n²).

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that appends the complete graph K_n.
func Complete(n int) Constructor {
	return func(c *canvas, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := c.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				c.join(base+i, base+j)
			}
		}

		return nil
	}
}
