// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_density.go - implementation of RandomDensity(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j, with prob p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: for each i asc, j asc with j>i.

package builder

import "fmt"

const (
	methodRandomDensity      = "RandomDensity"
	minRandomDensityVertices = 1
	probMin                  = 0.0
	probMax                  = 1.0
)

// RandomDensity returns a Constructor that appends a G(n,p) random graph.
func RandomDensity(n int, p float64) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < minRandomDensityVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomDensity, n, minRandomDensityVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomDensity, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomDensity, ErrNeedRandSource)
		}

		base := c.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMax:
					c.join(base+i, base+j)
				case p == probMin:
				case cfg.rng.Float64() < p:
					c.join(base+i, base+j)
				}
			}
		}

		return nil
	}
}
