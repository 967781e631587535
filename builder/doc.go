// Package builder provides deterministic, composable generators of adjacency
// matrices used as fixtures, benchmarks and CLI inputs for the solvers.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildMatrix:   applies Constructors in order and returns [][]bool.
//     – BuildGraph:    the same, validated into a *graph.Graph.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithSeed / WithRand: RNG for stochastic constructors.
//   - Topologies (each appends a fresh block of vertices, so several
//     constructors compose into a disjoint union):
//     – Empty(n), Path(n), Cycle(n), Complete(n), Star(n), Wheel(n),
//     Grid(rows, cols), CompleteBipartite(m, n).
//     – RandomDensity(n, p): every pair joined with probability p.
//   - Transformations over everything built so far:
//     – Shuffled(): uniformly random relabelling (an isomorphic copy).
//     – Connect(u, v): one explicit edge between existing vertices.
//
// Guarantees:
//
//   - Output is always a square, symmetric matrix with a false diagonal.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Sentinel errors for invalid build parameters, wrapped with the
//     constructor name for context.
//   - Same options, seed and constructor order ⇒ identical matrices.
package builder
