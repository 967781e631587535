// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_transform.go — constructors that rewrite what was built so far.

package builder

import "fmt"

const (
	methodShuffled = "Shuffled"
	methodConnect  = "Connect"
)

// Shuffled returns a Constructor that relabels every vertex built so far by
// a uniformly random permutation. The result is isomorphic to the input.
// Requires an RNG (else ErrNeedRandSource).
//
// Complexity: O(order²).
func Shuffled() Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodShuffled, ErrNeedRandSource)
		}
		n := c.order()
		perm := cfg.rng.Perm(n)
		out := make([][]bool, n)
		for i := range out {
			out[i] = make([]bool, n)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				out[perm[i]][perm[j]] = c.m[i][j]
			}
		}
		c.m = out

		return nil
	}
}

// Connect returns a Constructor that joins two vertices built earlier.
// u and v must be distinct and below the current order (else ErrVertexRange).
func Connect(u, v int) Constructor {
	return func(c *canvas, _ builderConfig) error {
		n := c.order()
		if u < 0 || v < 0 || u >= n || v >= n || u == v {
			return fmt.Errorf("%s: {%d,%d} with order %d: %w", methodConnect, u, v, n, ErrVertexRange)
		}
		c.join(u, v)

		return nil
	}
}
