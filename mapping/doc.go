// Package mapping defines the vertex-pair mapping returned by every solver and
// the pure metrics computed over it.
//
// A Mapping is an ordered list of (G-vertex, H-vertex) pairs. A valid result
// is injective on both sides, induces isomorphic subgraphs (edge ↔ edge,
// non-edge ↔ non-edge) and its G-side induces a connected subgraph. Verify
// checks all three.
//
// Metrics:
//   - EdgeCount: shared edges of the induced common subgraph.
//   - DegreeDifferenceScore: Σ |deg_G(v) − deg_H(w)|, a tie-break heuristic.
package mapping
