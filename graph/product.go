// SPDX-License-Identifier: MIT
// Package graph: modular product construction.
//
// The modular (compatibility) product reduces maximum common induced
// subgraph search to maximum clique search: a clique in G ◇ H is a set of
// pairs (a,b) whose G-sides and H-sides induce isomorphic subgraphs.
//
// Complexity: O(|G|²·|H|²) time and memory for the dense product buffer.

package graph

// NewProduct builds the modular product of g and h.
// Product vertex i corresponds to the pair (i / h.Order(), i mod h.Order()).
// Degrees and neighbour lists of the product are precomputed once.
func NewProduct(g, h *Graph) *Product {
	var (
		ng, nh = g.n, h.n
		n      = ng * nh
		adj    = make([]bool, n*n)
		a, c   int
		b, d   int
		x, y   int
		same   bool
	)

	// Visit every unordered G-pair {a,c} once; H-pairs (b,d) are ordered so
	// that both (a,b)-(c,d) and (a,d)-(c,b) are produced.
	for a = 0; a < ng; a++ {
		for c = a + 1; c < ng; c++ {
			same = g.adj[a*ng+c]
			for b = 0; b < nh; b++ {
				for d = 0; d < nh; d++ {
					if b == d || h.adj[b*nh+d] != same {
						continue
					}
					x = a*nh + b
					y = c*nh + d
					adj[x*n+y] = true
					adj[y*n+x] = true
				}
			}
		}
	}

	return &Product{Graph: fromBuffer(n, adj), g: g, h: h}
}

// Factors returns the two graphs the product was built from.
func (p *Product) Factors() (g, h *Graph) { return p.g, p.h }

// Index returns the product vertex standing for the pair (a, b).
func (p *Product) Index(a, b int) int {
	p.g.check(a)
	p.h.check(b)

	return a*p.h.n + b
}

// Decompose returns the pair (a, b) standing behind product vertex i.
func (p *Product) Decompose(i int) (a, b int) {
	p.check(i)

	return i / p.h.n, i % p.h.n
}
