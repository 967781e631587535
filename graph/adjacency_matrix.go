// SPDX-License-Identifier: MIT
// Package graph: construction from an adjacency matrix and O(1) queries.

package graph

import "fmt"

// New builds an immutable Graph from a square, symmetric, loop-free boolean
// adjacency matrix. The input is copied; later changes to m do not affect g.
//
// Errors:
//   - ErrInvalidShape if some row length differs from len(m).
//   - ErrInvalidGraph if m is asymmetric or has a true diagonal entry.
//
// A nil or empty m yields a valid 0-vertex graph.
//
// Complexity: O(n²) time and memory.
func New(m [][]bool) (*Graph, error) {
	n, err := validateMatrix(m)
	if err != nil {
		return nil, err
	}

	adj := make([]bool, n*n)
	var i int
	for i = 0; i < n; i++ {
		copy(adj[i*n:(i+1)*n], m[i])
	}

	return fromBuffer(n, adj), nil
}

// MustNew is New for fixtures known to be valid; it panics on error.
func MustNew(m [][]bool) *Graph {
	g, err := New(m)
	if err != nil {
		panic(err)
	}

	return g
}

// fromBuffer wraps an already validated row-major buffer and precomputes
// degrees and (non-)neighbour lists. adj is owned by the returned Graph.
func fromBuffer(n int, adj []bool) *Graph {
	g := &Graph{
		n:    n,
		adj:  adj,
		deg:  make([]int, n),
		nbrs: make([][]int, n),
		non:  make([][]int, n),
	}

	var v, w int
	for v = 0; v < n; v++ {
		row := adj[v*n : (v+1)*n]
		for w = 0; w < n; w++ {
			if row[w] {
				g.deg[v]++
			}
		}
		nb := make([]int, 0, g.deg[v])
		nn := make([]int, 0, n-1-g.deg[v])
		for w = 0; w < n; w++ {
			switch {
			case w == v:
				// neither a neighbour nor a non-neighbour of itself
			case row[w]:
				nb = append(nb, w)
			default:
				nn = append(nn, w)
			}
		}
		g.nbrs[v] = nb
		g.non[v] = nn
	}

	return g
}

// check panics when v is not a vertex of g.
func (g *Graph) check(v int) {
	if v < 0 || v >= g.n {
		panic(fmt.Sprintf("graph: vertex %d out of range [0,%d)", v, g.n))
	}
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.n }

// Degree returns the number of neighbours of v.
func (g *Graph) Degree(v int) int {
	g.check(v)

	return g.deg[v]
}

// Neighbours returns the ascending neighbours of v.
// The slice is shared with g and MUST NOT be modified.
func (g *Graph) Neighbours(v int) []int {
	g.check(v)

	return g.nbrs[v]
}

// NonNeighbours returns the ascending vertices that are neither v nor
// adjacent to v. The slice is shared with g and MUST NOT be modified.
func (g *Graph) NonNeighbours(v int) []int {
	g.check(v)

	return g.non[v]
}

// AreAdjacent reports whether v and w are joined by an edge.
// AreAdjacent(v, v) is always false.
func (g *Graph) AreAdjacent(v, w int) bool {
	g.check(v)
	g.check(w)

	return g.adj[v*g.n+w]
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(n).
func (g *Graph) EdgeCount() int {
	var (
		sum int
		v   int
	)
	for v = 0; v < g.n; v++ {
		sum += g.deg[v]
	}

	return sum / 2
}

// Matrix returns a deep copy of the adjacency matrix.
// Complexity: O(n²).
func (g *Graph) Matrix() [][]bool {
	out := make([][]bool, g.n)
	var i int
	for i = 0; i < g.n; i++ {
		out[i] = make([]bool, g.n)
		copy(out[i], g.adj[i*g.n:(i+1)*g.n])
	}

	return out
}
