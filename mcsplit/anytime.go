// SPDX-License-Identifier: MIT
// Package mcsplit: anytime (iterative deepening) driver.
//
// Pass k searches with a target size of k·StepSize: a node reaching the
// target is a leaf. Every pass starts from the seed of the previous pass,
// the largest mapping seen so far (lower degree difference breaks ties)
// together with its future. Subtrees that cannot outgrow the seed are cut.
// The loop ends when the seed has no class connected to it any more, when
// a pass fails to grow the seed, or on cancellation.

package mcsplit

import (
	"github.com/Arnyev/Max-Common-Subgraph/graph"
	"github.com/Arnyev/Max-Common-Subgraph/mapping"
)

// anytimePolicy tracks two incumbents: the seed that the next pass resumes
// from and the result returned to the caller.
type anytimePolicy struct {
	obj    Objective
	target int

	seed       mapping.Mapping
	seedFuture Future
	seedDD     int

	result   mapping.Mapping
	resScore Score
	resDD    int
}

func (p *anytimePolicy) record(e *engine, f Future) {
	var (
		size = e.size()
		dd   = mapping.DegreeDifferenceScore(e.g, e.h, e.stack)
	)
	if size > len(p.seed) || (size == len(p.seed) && dd < p.seedDD) {
		p.seed = e.stack.Clone()
		p.seedFuture = f
		p.seedDD = dd
	}

	s := e.score()
	if c := s.Compare(p.resScore); c > 0 || (c == 0 && dd < p.resDD) {
		p.result = e.stack.Clone()
		p.resScore = s
		p.resDD = dd
	}
}

func (p *anytimePolicy) leaf(e *engine, f Future) bool {
	return e.size() >= p.target || len(f) == 0
}

func (p *anytimePolicy) prune(e *engine, f Future) bool {
	if e.size()+f.Capacity() > len(p.seed) {
		return false
	}
	if p.obj == EdgeObjective {
		return e.bound(f).Compare(p.resScore) <= 0
	}

	return true
}

// solveAnytime runs passes until the seed stops growing.
func solveAnytime(g, h *graph.Graph, o Options) (Result, error) {
	e := newEngine(o.Ctx, g, h, o.Objective)
	pol := &anytimePolicy{
		obj:        o.Objective,
		seed:       mapping.Mapping{},
		seedFuture: NewFuture(g, h),
		result:     mapping.Mapping{},
	}

	var (
		pass int
		prev int
	)
	for pass = 1; ; pass++ {
		pol.target = pass * o.StepSize
		prev = len(pol.seed)
		e.run(pol, pol.seedFuture, pol.seed, false)
		if o.OnPass != nil {
			o.OnPass(PassInfo{
				Pass:     pass,
				Target:   pol.target,
				SeedSize: len(pol.seed),
				BestSize: len(pol.result),
				Nodes:    e.nodes,
			})
		}
		if e.err != nil {
			break
		}
		if len(pol.seed) <= prev {
			break
		}
		if firstConnected(g, pol.seedFuture, pol.seed) < 0 {
			break
		}
	}

	return Result{
		Mappings: []mapping.Mapping{pol.result},
		Score:    pol.resScore,
		Nodes:    e.nodes,
		Passes:   pass,
	}, e.err
}
