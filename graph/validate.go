// SPDX-License-Identifier: MIT
// Package graph: input validation.
//
// Design principles:
//   - Deterministic, side-effect free.
//   - No panics on user input; sentinel errors only.
//   - O(n²) worst case; the first violation found is reported.

package graph

import "fmt"

// validateMatrix checks that m is square, symmetric and loop-free.
// It returns the matrix order n on success.
//
// Error priority: shape (ErrInvalidShape) before structure (ErrInvalidGraph).
//
// Complexity: O(n²) time, O(1) extra space.
func validateMatrix(m [][]bool) (int, error) {
	var (
		n    int
		i, j int
	)
	n = len(m)

	// Stage 1: every row must have exactly n entries.
	for i = 0; i < n; i++ {
		if len(m[i]) != n {
			return 0, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(m[i]), n, ErrInvalidShape)
		}
	}

	// Stage 2: empty diagonal.
	for i = 0; i < n; i++ {
		if m[i][i] {
			return 0, fmt.Errorf("self-loop at vertex %d: %w", i, ErrInvalidGraph)
		}
	}

	// Stage 3: symmetry over the upper triangle.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m[i][j] != m[j][i] {
				return 0, fmt.Errorf("entry (%d,%d)=%t but (%d,%d)=%t: %w",
					i, j, m[i][j], j, i, m[j][i], ErrInvalidGraph)
			}
		}
	}

	return n, nil
}
