// SPDX-License-Identifier: MIT
// Package mcsplit: objective scores and bounds.

package mcsplit

import "fmt"

// Score is an objective value. Vertices is compared first, Edges second.
// Under VertexObjective Edges is always zero.
type Score struct {
	Vertices int
	Edges    int
}

// Compare returns -1, 0 or +1 as s is worse than, equal to or better than o.
func (s Score) Compare(o Score) int {
	switch {
	case s.Vertices != o.Vertices:
		if s.Vertices < o.Vertices {
			return -1
		}
		return 1
	case s.Edges != o.Edges:
		if s.Edges < o.Edges {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (s Score) String() string { return fmt.Sprintf("(%d,%d)", s.Vertices, s.Edges) }

// worst is below every reachable score, so the root is always recorded.
var worst = Score{Vertices: -1, Edges: -1}

// score evaluates a mapping of the given size and shared edge count.
func (o Objective) score(size, edges int) Score {
	if o == EdgeObjective {
		return Score{Vertices: size, Edges: edges}
	}

	return Score{Vertices: size}
}

// bound is the best score reachable by adding at most extra pairs.
// Each added pair brings at most one edge to every pair already present.
func (o Objective) bound(size, edges, extra int) Score {
	if o == EdgeObjective {
		return Score{
			Vertices: size + extra,
			Edges:    edges + extra*size + extra*(extra-1)/2,
		}
	}

	return Score{Vertices: size + extra}
}
