// Package mcsplit implements the partition-refinement ("McSplit") search for
// the maximum common connected induced subgraph of two graphs.
//
// Search state is a pair (future, mapping):
//
//   - mapping: the pairs chosen so far, always a connected common induced
//     subgraph;
//   - future: label classes, i.e. blocks (G-part, H-part) of unmapped vertices
//     that no mapped pair can tell apart. A pair (v,w) may only ever be added
//     with v and w taken from the same class.
//
// One engine drives both solvers, parameterised by an objective and a policy:
//
//	Objective  VertexObjective: maximise |mapping|
//	           EdgeObjective:   maximise (|mapping|, shared edges) lexicographically
//	Mode       ModeExact:       depth-first branch-and-bound, optionally
//	                            collecting every optimal mapping
//	           ModeAnytime:     iterative deepening by StepSize, every pass
//	                            resumed from the best state of the previous one
//
// Per node the engine records the mapping, bounds the subtree by
// |mapping| + Σ min(|G-part|, |H-part|), picks the first class connected to
// the mapping, branches on its first G-vertex v against every H-vertex w,
// and finally explores the branch that leaves v unmapped.
//
// Complexity:
//   - Worst case exponential (the problem is NP-hard).
//   - Recursion depth ≤ |G| + |H|; per node O(|G|·|H|) to split the future.
//
// Concurrency : a Solve call owns all of its state; concurrent calls may
// share the same read-only *graph.Graph values.
package mcsplit
