// SPDX-License-Identifier: MIT
// Package mcsplit: exact branch-and-bound driver.

package mcsplit

import (
	"github.com/Arnyev/Max-Common-Subgraph/graph"
	"github.com/Arnyev/Max-Common-Subgraph/mapping"
)

// exactPolicy keeps the best-set and prunes against its score.
type exactPolicy struct {
	returnAll bool
	inclusive bool

	best    Score
	bestSet []mapping.Mapping
}

func (p *exactPolicy) record(e *engine, _ Future) {
	s := e.score()
	switch c := s.Compare(p.best); {
	case c > 0:
		p.best = s
		p.bestSet = append(p.bestSet[:0], e.stack.Clone())
	case c == 0 && p.returnAll:
		p.bestSet = append(p.bestSet, e.stack.Clone())
	}
}

func (p *exactPolicy) leaf(_ *engine, _ Future) bool { return false }

func (p *exactPolicy) prune(e *engine, f Future) bool {
	c := e.bound(f).Compare(p.best)
	if p.inclusive {
		return c < 0
	}

	return c <= 0
}

// solveExact runs the complete search from the initial partition.
func solveExact(g, h *graph.Graph, o Options) (Result, error) {
	e := newEngine(o.Ctx, g, h, o.Objective)
	pol := &exactPolicy{
		returnAll: o.ReturnAllTies,
		inclusive: o.inclusive(),
		best:      worst,
	}
	e.run(pol, NewFuture(g, h), nil, true)

	return Result{
		Mappings: pol.bestSet,
		Score:    pol.best,
		Nodes:    e.nodes,
	}, e.err
}
