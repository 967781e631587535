// SPDX-License-Identifier: MIT
// Package graph: sentinel error set.
//
// Callers branch with errors.Is; context is attached with
// fmt.Errorf("...: %w", ErrX) at the point of detection.

package graph

import "errors"

var (
	// ErrInvalidShape is returned when the adjacency matrix is not square,
	// i.e. some row length differs from the number of rows.
	ErrInvalidShape = errors.New("graph: adjacency matrix is not square")

	// ErrInvalidGraph is returned when the adjacency matrix does not describe a
	// simple undirected graph: it is asymmetric or has a self-loop.
	ErrInvalidGraph = errors.New("graph: adjacency matrix is not a simple undirected graph")
)
