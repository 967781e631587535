// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Appends a hub (first new vertex) and n-1 leaves joined to it.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that appends a star on n vertices:
// one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(c *canvas, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := c.grow(n)
		for i := 1; i < n; i++ {
			c.join(hub, hub+i)
		}

		return nil
	}
}
