// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_bipartite.go — implementation of CompleteBipartite(m, n) constructor.
//
// Contract:
//   • m ≥ 1 and n ≥ 1 (else ErrTooFewVertices).
//   • The m left vertices come first, then the n right vertices.
//   • Every left vertex is joined to every right vertex.

package builder

import "fmt"

const (
	methodBipartite  = "CompleteBipartite"
	minPartitionSize = 1
)

// CompleteBipartite returns a Constructor that appends K_{m,n}.
func CompleteBipartite(m, n int) Constructor {
	return func(c *canvas, _ builderConfig) error {
		if m < minPartitionSize || n < minPartitionSize {
			return fmt.Errorf("%s: m=%d, n=%d < min=%d: %w",
				methodBipartite, m, n, minPartitionSize, ErrTooFewVertices)
		}
		base := c.grow(m + n)
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				c.join(base+i, base+m+j)
			}
		}

		return nil
	}
}
