// SPDX-License-Identifier: MIT
// Package mcis: sentinel errors.

package mcis

import "errors"

var (
	// ErrUnknownAlgorithm is returned for an algorithm outside 1..8.
	ErrUnknownAlgorithm = errors.New("mcis: unknown algorithm")

	// ErrGraphNil is returned when either input graph is nil.
	ErrGraphNil = errors.New("mcis: graph is nil")
)
