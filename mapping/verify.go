// SPDX-License-Identifier: MIT
// Package mapping: result verification.
//
// Verify is the executable form of the result contract shared by all
// solvers. Checks run in a fixed priority order:
//
//	range → injectivity → isomorphism → connectivity
//
// and the first violation is returned, wrapped with the offending indices.

package mapping

import (
	"fmt"

	"github.com/Arnyev/Max-Common-Subgraph/graph"
)

// Verify checks that m is a connected common induced subgraph of g and h.
// The empty mapping and single pairs with in-range indices are valid.
//
// Complexity: O(k²) for k = len(m).
func Verify(g, h *graph.Graph, m Mapping) error {
	var (
		usedG = make(map[int]int, len(m))
		usedH = make(map[int]int, len(m))
		i, j  int
		ok    bool
	)

	for i = 0; i < len(m); i++ {
		if m[i].G < 0 || m[i].G >= g.Order() || m[i].H < 0 || m[i].H >= h.Order() {
			return fmt.Errorf("pair %d (%s): %w", i, m[i], ErrOutOfRange)
		}
	}

	for i = 0; i < len(m); i++ {
		if j, ok = usedG[m[i].G]; ok {
			return fmt.Errorf("G-vertex %d at pairs %d and %d: %w", m[i].G, j, i, ErrNotInjective)
		}
		if j, ok = usedH[m[i].H]; ok {
			return fmt.Errorf("H-vertex %d at pairs %d and %d: %w", m[i].H, j, i, ErrNotInjective)
		}
		usedG[m[i].G] = i
		usedH[m[i].H] = i
	}

	for i = 0; i < len(m); i++ {
		for j = i + 1; j < len(m); j++ {
			if g.AreAdjacent(m[i].G, m[j].G) != h.AreAdjacent(m[i].H, m[j].H) {
				return fmt.Errorf("pairs %s and %s: %w", m[i], m[j], ErrNotIsomorphic)
			}
		}
	}

	if !IsConnected(g, m) {
		return ErrNotConnected
	}

	return nil
}

// IsConnected reports whether the G-side of m induces a connected subgraph.
func IsConnected(g *graph.Graph, m Mapping) bool {
	return g.IsConnectedSubset(m.GVertices())
}
