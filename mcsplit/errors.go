// SPDX-License-Identifier: MIT
// Package mcsplit: sentinel errors.

package mcsplit

import "errors"

var (
	// ErrGraphNil is returned when either input graph is nil.
	ErrGraphNil = errors.New("mcsplit: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied,
	// e.g. a non-positive anytime step size.
	ErrOptionViolation = errors.New("mcsplit: invalid option supplied")

	// ErrCanceled is returned, wrapping the context error, when the search is
	// interrupted. The Result still carries the best mappings found so far.
	ErrCanceled = errors.New("mcsplit: search canceled")
)
