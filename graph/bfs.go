// SPDX-License-Identifier: MIT
// Package graph: connectivity of vertex subsets.
//
// The induced subgraph on the requested vertices is materialised as a gonum
// simple.UndirectedGraph and explored with traverse.BreadthFirst.
//
// Determinism: gonum iterates neighbours in map order, so only component
// membership is taken from the traversal. Components are emitted in order of
// their first vertex in the input, and members keep their input order.
//
// Complexity: O(k²) to build the induced subgraph on k vertices, O(k + e) to
// traverse it.

package graph

import (
	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// Components returns the connected components of the subgraph induced by
// vertices. Duplicates in vertices are ignored. Panics on out-of-range input.
func (g *Graph) Components(vertices []int) [][]int {
	var (
		order = make([]int, 0, len(vertices)) // distinct vertices, input order
		pos   = make(map[int]int, len(vertices))
		ug    = simple.NewUndirectedGraph()
		i, j  int
	)
	for _, v := range vertices {
		g.check(v)
		if _, seen := pos[v]; seen {
			continue
		}
		pos[v] = len(order)
		order = append(order, v)
		ug.AddNode(simple.Node(v))
	}
	for i = 0; i < len(order); i++ {
		for j = i + 1; j < len(order); j++ {
			if g.adj[order[i]*g.n+order[j]] {
				ug.SetEdge(simple.Edge{F: simple.Node(order[i]), T: simple.Node(order[j])})
			}
		}
	}

	var (
		bf    traverse.BreadthFirst
		comps [][]int
	)
	for _, v := range order {
		if bf.Visited(simple.Node(v)) {
			continue
		}
		member := make([]bool, len(order))
		bf.Walk(ug, simple.Node(v), func(n gonum.Node, _ int) bool {
			member[pos[int(n.ID())]] = true
			return false
		})
		comp := make([]int, 0, len(order))
		for i = range order {
			if member[i] {
				comp = append(comp, order[i])
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// IsConnectedSubset reports whether vertices induce a connected subgraph.
// The empty set and singletons are connected.
func (g *Graph) IsConnectedSubset(vertices []int) bool {
	return len(g.Components(vertices)) <= 1
}
