// Package clique approximates the maximum common connected induced subgraph
// through the modular product.
//
// What
//
//   - Every clique of G ◇ H is a common induced subgraph of G and H.
//   - Solve finds a large clique greedily, decomposes it into vertex pairs
//     and keeps the largest connected piece.
//
// Pick rules
//
//   - vertex mode: the candidate with the highest product degree;
//   - edge-aware mode: the candidate whose G-vertex is adjacent to the most
//     G-vertices already selected.
//
// The first candidate in index order wins ties, so results are fully
// deterministic.
//
// Complexity
//
//   - O(|G|²·|H|²) time and memory to build the product.
//   - O(N·N²) for the greedy phase in the worst case, N = |G|·|H|.
package clique
