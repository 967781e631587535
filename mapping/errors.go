// SPDX-License-Identifier: MIT
// Package mapping: sentinel errors returned by Verify.

package mapping

import "errors"

var (
	// ErrOutOfRange is returned when a pair references a vertex outside its graph.
	ErrOutOfRange = errors.New("mapping: vertex index out of range")

	// ErrNotInjective is returned when a vertex is used twice on the same side.
	ErrNotInjective = errors.New("mapping: vertex mapped more than once")

	// ErrNotIsomorphic is returned when an edge on one side maps to a non-edge.
	ErrNotIsomorphic = errors.New("mapping: induced subgraphs are not isomorphic")

	// ErrNotConnected is returned when the mapped G-vertices induce a
	// disconnected subgraph.
	ErrNotConnected = errors.New("mapping: mapped subgraph is not connected")
)
