// SPDX-License-Identifier: MIT
// Package clique: public entry point.

package clique

import (
	"github.com/Arnyev/Max-Common-Subgraph/graph"
	"github.com/Arnyev/Max-Common-Subgraph/mapping"
)

// Solve returns an approximate maximum common connected induced subgraph of
// g and h. The result is always a valid mapping; it is not guaranteed to be
// maximum.
//
//	either graph empty          → empty mapping
//	either graph single vertex  → [0→0]
//	otherwise                   → largest connected part of a greedy clique
//
// Pairs keep the order in which the clique was grown.
func Solve(g, h *graph.Graph, edgeAware bool) mapping.Mapping {
	if g.Order() == 0 || h.Order() == 0 {
		return mapping.Mapping{}
	}
	if g.Order() == 1 || h.Order() == 1 {
		return mapping.Mapping{{G: 0, H: 0}}
	}

	p := graph.NewProduct(g, h)
	members := Greedy(p, edgeAware)

	pairs := make(mapping.Mapping, len(members))
	for i, v := range members {
		pairs[i].G, pairs[i].H = p.Decompose(v)
	}

	return largestComponent(g, pairs)
}

// largestComponent keeps the pairs whose G-vertices form the largest
// connected component of the G-side; the first one found wins ties.
func largestComponent(g *graph.Graph, pairs mapping.Mapping) mapping.Mapping {
	var keep []int
	for _, comp := range g.Components(pairs.GVertices()) {
		if len(comp) > len(keep) {
			keep = comp
		}
	}

	in := make(map[int]bool, len(keep))
	for _, v := range keep {
		in[v] = true
	}
	out := make(mapping.Mapping, 0, len(keep))
	for _, pr := range pairs {
		if in[pr.G] {
			out = append(out, pr)
		}
	}

	return out
}
