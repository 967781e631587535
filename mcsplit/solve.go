// SPDX-License-Identifier: MIT
// Package mcsplit: public entry point.

package mcsplit

import (
	"github.com/Arnyev/Max-Common-Subgraph/graph"
)

// Solve searches for a maximum common connected induced subgraph of g and h.
//
// Behaviour by options:
//   - ModeExact (default): the optimum under the objective; with
//     WithReturnAllTies every optimal mapping, in discovery order.
//   - ModeAnytime (WithAnytime): a heuristic mapping, usually much faster.
//
// On cancellation Solve returns the best result found so far together with
// an error wrapping ErrCanceled and the context error.
//
// Errors:
//   - ErrGraphNil if g or h is nil.
//   - ErrOptionViolation for invalid options.
//   - ErrCanceled if the context ends before the search does.
func Solve(g, h *graph.Graph, opts ...Option) (Result, error) {
	if g == nil || h == nil {
		return Result{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	if o.Mode == ModeAnytime {
		return solveAnytime(g, h, o)
	}

	return solveExact(g, h, o)
}
