// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMatrix(bopts, cons...). Resolves cfg, runs cons in order.
//   - Public factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical matrices.

package builder

import (
	"fmt"

	"github.com/Arnyev/Max-Common-Subgraph/graph"
)

// Constructor applies a deterministic mutation to the canvas using the
// resolved builderConfig. Constructors validate parameters early and return
// sentinel errors; they never panic.
type Constructor func(c *canvas, cfg builderConfig) error

// BuildMatrix resolves the builder configuration from bopts and applies all
// constructors in order to an initially empty canvas.
// Any constructor error is wrapped with the context "BuildMatrix: %w".
//
// Complexity: Σ cost of each constructor.
func BuildMatrix(bopts []BuilderOption, cons ...Constructor) ([][]bool, error) {
	var (
		c   canvas
		cfg = newBuilderConfig(bopts...)
	)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMatrix: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&c, cfg); err != nil {
			return nil, fmt.Errorf("BuildMatrix: %w", err)
		}
	}
	if c.m == nil {
		c.m = [][]bool{}
	}

	return c.m, nil
}

// BuildGraph is BuildMatrix followed by graph.New.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	m, err := BuildMatrix(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := graph.New(m)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}
