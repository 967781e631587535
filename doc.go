// Package mcis finds maximum common connected induced subgraphs of two simple
// undirected graphs.
//
// 🚀 What is in here?
//
//	graph/   : immutable adjacency-matrix graphs, modular product, components
//	mapping/ : vertex-pair mappings, edge/degree metrics, result verification
//	mcsplit/ : partition-refinement branch and bound: exact and anytime search
//	clique/  : greedy clique approximation on the modular product
//	builder/ : deterministic graph fixtures and random generators
//	csvgraph/: CSV adjacency matrices and result files
//	cmd/mcis : command line: solve, compare, generate
//
// This root package is the facade tying them together:
//
//   - ExactOrApproximate runs McSplit in exact or anytime mode.
//   - CliqueApprox runs the clique approximation.
//   - Algorithm numbers the eight classic variants (1..8) and Run
//     dispatches any of them with logging and timing.
//
// ✨ Guarantees
//
//   - Every returned mapping is injective, induces isomorphic subgraphs and
//     is connected; mapping.Verify checks all three.
//   - Results are deterministic for equal inputs and options.
//   - Each call owns its state, so concurrent calls on the same graphs are safe.
//
// Quick example:
//
//	g, _ := graph.New(adjG)
//	h, _ := graph.New(adjH)
//	ms, err := mcis.ExactOrApproximate(ctx, g, h, mcis.Options{EdgeObjective: true})
package mcis
