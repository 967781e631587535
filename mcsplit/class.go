// SPDX-License-Identifier: MIT
// Package mcsplit: label classes and the future partition.

package mcsplit

import (
	"github.com/Arnyev/Max-Common-Subgraph/graph"
	"github.com/Arnyev/Max-Common-Subgraph/mapping"
)

// LabelClass is a block of unmapped vertices that every mapped pair sees
// alike: each G-vertex and each H-vertex is adjacent to exactly the same
// mapped positions. Both sides are non-empty in a live class.
type LabelClass struct {
	G []int
	H []int
}

// Cap is the number of pairs the class can still contribute.
func (c LabelClass) Cap() int {
	if len(c.G) < len(c.H) {
		return len(c.G)
	}

	return len(c.H)
}

// Future is the ordered list of live label classes.
// A Future is never modified after construction; Split and Without allocate.
type Future []LabelClass

// NewFuture returns the initial partition: one class holding every vertex
// of g and h, or no class at all when either graph is empty.
func NewFuture(g, h *graph.Graph) Future {
	if g.Order() == 0 || h.Order() == 0 {
		return Future{}
	}

	return Future{{G: seq(g.Order()), H: seq(h.Order())}}
}

// Capacity returns Σ min(|G-part|, |H-part|) over all classes, an upper
// bound on how many pairs can still be added.
func (f Future) Capacity() int {
	var total int
	for _, c := range f {
		total += c.Cap()
	}

	return total
}

// Split refines f after mapping v→w: every class splits into the vertices
// adjacent to v (resp. w) and the vertices neither adjacent nor equal to it.
// One-sided parts are dropped.
//
// Complexity: O(Σ |class|).
func (f Future) Split(g, h *graph.Graph, v, w int) Future {
	next := make(Future, 0, 2*len(f))
	for _, c := range f {
		gAdj, gNon := partition(g, c.G, v)
		hAdj, hNon := partition(h, c.H, w)
		if len(gAdj) > 0 && len(hAdj) > 0 {
			next = append(next, LabelClass{G: gAdj, H: hAdj})
		}
		if len(gNon) > 0 && len(hNon) > 0 {
			next = append(next, LabelClass{G: gNon, H: hNon})
		}
	}

	return next
}

// Without returns f with the first G-vertex of class i removed, dropping
// the class when its G-part becomes empty. It is the "leave v unmapped"
// branch of the search.
func (f Future) Without(i int) Future {
	next := make(Future, 0, len(f))
	next = append(next, f[:i]...)
	if rest := f[i].G[1:]; len(rest) > 0 {
		next = append(next, LabelClass{G: rest, H: f[i].H})
	}

	return append(next, f[i+1:]...)
}

// IsClassConnected reports whether adding a pair from c keeps the mapping
// connected: true on the empty mapping, otherwise true iff c.G[0] is
// adjacent in g to some mapped G-vertex. All G-vertices of a class share the
// same adjacency to mapped vertices, so testing c.G[0] is enough.
func IsClassConnected(g *graph.Graph, c LabelClass, m mapping.Mapping) bool {
	if len(m) == 0 {
		return true
	}
	v := c.G[0]
	for _, p := range m {
		if g.AreAdjacent(v, p.G) {
			return true
		}
	}

	return false
}

// firstConnected returns the index of the first class of f connected to m,
// or -1 when none is.
func firstConnected(g *graph.Graph, f Future, m mapping.Mapping) int {
	for i := range f {
		if IsClassConnected(g, f[i], m) {
			return i
		}
	}

	return -1
}

// partition splits vs into neighbours of pivot and the rest minus pivot,
// preserving order.
func partition(g *graph.Graph, vs []int, pivot int) (adj, non []int) {
	for _, u := range vs {
		switch {
		case u == pivot:
		case g.AreAdjacent(pivot, u):
			adj = append(adj, u)
		default:
			non = append(non, u)
		}
	}

	return adj, non
}

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}

	return s
}
