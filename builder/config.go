// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go — internal configuration and the adjacency canvas.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//   • canvas is the growing adjacency matrix Constructors write into.

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{rng: nil}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// canvas is a square symmetric boolean matrix that only ever grows.
type canvas struct {
	m [][]bool
}

// order returns the number of vertices built so far.
func (c *canvas) order() int { return len(c.m) }

// grow appends k isolated vertices and returns the index of the first one.
// Complexity: O(order·k) time.
func (c *canvas) grow(k int) int {
	base := len(c.m)
	n := base + k
	for i := range c.m {
		row := make([]bool, n)
		copy(row, c.m[i])
		c.m[i] = row
	}
	for i := base; i < n; i++ {
		c.m = append(c.m, make([]bool, n))
	}

	return base
}

// join adds the undirected edge {u,v}.
func (c *canvas) join(u, v int) {
	c.m[u][v] = true
	c.m[v][u] = true
}
