// SPDX-License-Identifier: MIT
// Package mcsplit: the shared depth-first engine.
//
// The engine owns the current mapping as a push/pop stack and the shared
// edge count of that mapping. A policy decides what to record, which nodes
// are leaves and which subtrees are pruned; the exact and anytime drivers
// differ only in their policy.

package mcsplit

import (
	"context"
	"fmt"

	"github.com/Arnyev/Max-Common-Subgraph/graph"
	"github.com/Arnyev/Max-Common-Subgraph/mapping"
)

// policy plugs driver-specific behaviour into the engine.
type policy interface {
	// record sees every node whose mapping was just extended, plus the root.
	record(e *engine, f Future)
	// leaf reports whether the node must not be expanded further.
	leaf(e *engine, f Future) bool
	// prune reports whether no completion of the node can be useful.
	prune(e *engine, f Future) bool
}

// engine holds all search data of one Solve call.
type engine struct {
	g, h *graph.Graph
	obj  Objective
	pol  policy
	ctx  context.Context

	// Current search state
	stack mapping.Mapping // mapping[0:depth]
	edges int             // shared edges of stack

	// Counters
	nodes int64
	err   error // set once on cancellation; stops the search
}

func newEngine(ctx context.Context, g, h *graph.Graph, obj Objective) *engine {
	return &engine{
		g:     g,
		h:     h,
		obj:   obj,
		ctx:   ctx,
		stack: make(mapping.Mapping, 0, min(g.Order(), h.Order())),
	}
}

// run searches the subtree rooted at (f, seed). The seed is copied into the
// stack; fresh tells whether the root must be recorded.
func (e *engine) run(pol policy, f Future, seed mapping.Mapping, fresh bool) {
	e.pol = pol
	e.stack = append(e.stack[:0], seed...)
	e.edges = mapping.EdgeCount(e.g, seed)
	e.search(f, fresh)
}

// size is the current mapping size.
func (e *engine) size() int { return len(e.stack) }

// score evaluates the current mapping.
func (e *engine) score() Score { return e.obj.score(len(e.stack), e.edges) }

// bound is the best score reachable from the current node.
func (e *engine) bound(f Future) Score {
	return e.obj.bound(len(e.stack), e.edges, f.Capacity())
}

// canceled performs a rare context test (every 1024 nodes).
func (e *engine) canceled() bool {
	if e.err != nil {
		return true
	}
	if (e.nodes & cancelCheckMask) != 0 {
		return false
	}
	if err := e.ctx.Err(); err != nil {
		e.err = fmt.Errorf("%w: %w", ErrCanceled, err)
		return true
	}

	return false
}

// push maps v→w and returns the number of edges it added.
func (e *engine) push(v, w int) int {
	var added int
	for _, p := range e.stack {
		if e.g.AreAdjacent(v, p.G) {
			added++
		}
	}
	e.stack = append(e.stack, mapping.Pair{G: v, H: w})
	e.edges += added

	return added
}

// pop undoes the last push exactly.
func (e *engine) pop(added int) {
	e.stack = e.stack[:len(e.stack)-1]
	e.edges -= added
}

// search is the recursive branch-and-bound step.
//
//  1. record the node when its mapping was just extended;
//  2. stop at leaves and prunable nodes;
//  3. select the first class connected to the mapping, v = class.G[0];
//  4. for every w in class.H: push v→w, refine the future, recurse, pop;
//  5. recurse once more with v removed from its class.
func (e *engine) search(f Future, fresh bool) {
	e.nodes++
	if e.canceled() {
		return
	}
	if fresh {
		e.pol.record(e, f)
	}
	if e.pol.leaf(e, f) || e.pol.prune(e, f) {
		return
	}

	idx := firstConnected(e.g, f, e.stack)
	if idx < 0 {
		return
	}
	var (
		cls   = f[idx]
		v     = cls.G[0]
		added int
	)
	for _, w := range cls.H {
		next := f.Split(e.g, e.h, v, w)
		added = e.push(v, w)
		e.search(next, true)
		e.pop(added)
		if e.err != nil {
			return
		}
	}

	e.search(f.Without(idx), false)
}
