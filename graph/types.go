// SPDX-License-Identifier: MIT
// Package graph: core types.

package graph

// Graph is an immutable simple undirected graph over vertices 0..n-1.
//
// All derived structures are computed once in New:
//   - adj:  dense row-major adjacency buffer, adj[v*n+w].
//   - deg:  per-vertex degree.
//   - nbrs: ascending neighbour list of every vertex.
//   - non:  ascending non-neighbour list of every vertex (v itself excluded).
//
// Memory: O(n²) for adj plus O(n²) for the neighbour/non-neighbour lists.
type Graph struct {
	n    int
	adj  []bool
	deg  []int
	nbrs [][]int
	non  [][]int
}

// Product is the modular product G ◇ H of two graphs.
//
// Vertex i of the product stands for the pair (a, b) with a = i / |H| and
// b = i mod |H|. Two product vertices (a,b) and (c,d) are adjacent iff a≠c,
// b≠d and G.AreAdjacent(a,c) == H.AreAdjacent(b,d).
//
// The embedded *Graph gives the usual degree/neighbour queries over the
// product vertex space.
type Product struct {
	*Graph

	g *Graph
	h *Graph
}
