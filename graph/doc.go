// Package graph provides the immutable, matrix-backed graph model consumed by
// every maximum-common-subgraph solver in this module.
//
// What is in here?
//
//   - Graph: a simple undirected graph built once from a square boolean
//     adjacency matrix, with O(1) degree, neighbour and adjacency queries.
//   - Product: the modular product of two graphs; cliques in the product are
//     common induced subgraphs of the factors.
//   - Components / IsConnectedSubset: connectivity of vertex subsets, backed by
//     gonum's breadth-first traversal.
//
// Contract:
//   - New validates eagerly: non-square input yields ErrInvalidShape, an
//     asymmetric matrix or a self-loop yields ErrInvalidGraph.
//   - A nil or empty matrix is a valid 0-vertex graph.
//   - A constructed Graph is never mutated, so a single *Graph may be shared by
//     any number of concurrent readers without locking.
//   - Vertex indices are 0-based. Passing an index outside [0, Order()) to any
//     query is a programming error and panics.
//
// Quick ASCII example (C4, the 4-cycle):
//
//	0───1
//	│   │
//	3───2
//
//	g, _ := graph.New([][]bool{
//		{false, true, false, true},
//		{true, false, true, false},
//		{false, true, false, true},
//		{true, false, true, false},
//	})
//	g.Degree(0)          // 2
//	g.NonNeighbours(0)   // [2]
package graph
