// SPDX-License-Identifier: MIT
// Package clique: greedy clique growth on the modular product.

package clique

import "github.com/Arnyev/Max-Common-Subgraph/graph"

// Greedy grows a clique from every product vertex in index order and
// returns the largest one found, members in insertion order.
//
// Seeds and candidates whose degree is below the size of the best clique so
// far are skipped: they cannot belong to a larger clique. A growth loop stops
// as soon as the clique plus all remaining candidates cannot beat the best.
func Greedy(p *graph.Product, edgeAware bool) []int {
	var (
		best []int
		g, _ = p.Factors()
	)
	for i := 0; i < p.Order(); i++ {
		if p.Degree(i) < len(best) {
			continue
		}
		clique := []int{i}
		cand := filter(p, p.Neighbours(i), -1, len(best))
		for len(cand) > 0 && len(clique)+len(cand) > len(best) {
			var u int
			if edgeAware {
				u = pickByEdges(p, g, cand, clique)
			} else {
				u = pickByDegree(p, cand)
			}
			clique = append(clique, u)
			cand = filter(p, cand, u, len(best))
		}
		if len(clique) > len(best) {
			best = clique
		}
	}

	return best
}

// filter returns the members of vs adjacent to pivot (all of them when
// pivot < 0) whose degree is at least minDeg. vs is never modified.
func filter(p *graph.Product, vs []int, pivot, minDeg int) []int {
	out := make([]int, 0, len(vs))
	for _, v := range vs {
		if pivot >= 0 && !p.AreAdjacent(pivot, v) {
			continue
		}
		if p.Degree(v) >= minDeg {
			out = append(out, v)
		}
	}

	return out
}

// pickByDegree returns the candidate of highest product degree.
func pickByDegree(p *graph.Product, cand []int) int {
	best := cand[0]
	for _, v := range cand[1:] {
		if p.Degree(v) > p.Degree(best) {
			best = v
		}
	}

	return best
}

// pickByEdges returns the candidate whose G-vertex has the most G-neighbours
// among the G-vertices of clique.
func pickByEdges(p *graph.Product, g *graph.Graph, cand, clique []int) int {
	var (
		best      = cand[0]
		bestScore = -1
	)
	for _, v := range cand {
		a, _ := p.Decompose(v)
		score := 0
		for _, c := range clique {
			ca, _ := p.Decompose(c)
			if g.AreAdjacent(a, ca) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = v, score
		}
	}

	return best
}
