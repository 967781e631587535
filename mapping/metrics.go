// SPDX-License-Identifier: MIT
// Package mapping: metrics over a mapping and its two graphs.
//
// All functions are pure and assume well-formed indices; out-of-range pairs
// panic inside the graph queries.

package mapping

import "github.com/Arnyev/Max-Common-Subgraph/graph"

// EdgeCount returns the number of index pairs i<j with m[i].G adjacent to
// m[j].G in g. For an isomorphic mapping this equals the H-side count.
//
// Complexity: O(k²) for k = len(m).
func EdgeCount(g *graph.Graph, m Mapping) int {
	var (
		count int
		i, j  int
	)
	for i = 0; i < len(m); i++ {
		for j = i + 1; j < len(m); j++ {
			if g.AreAdjacent(m[i].G, m[j].G) {
				count++
			}
		}
	}

	return count
}

// DegreeDifferenceScore returns Σ |deg_G(v) − deg_H(w)| over the mapped pairs.
// Lower is better; it is only ever used to break ties between mappings of
// equal size.
//
// Complexity: O(k).
func DegreeDifferenceScore(g, h *graph.Graph, m Mapping) int {
	var sum, d int
	for _, p := range m {
		d = g.Degree(p.G) - h.Degree(p.H)
		if d < 0 {
			d = -d
		}
		sum += d
	}

	return sum
}
