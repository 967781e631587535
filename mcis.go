// SPDX-License-Identifier: MIT
// Package mcis: solver entry points.

package mcis

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Arnyev/Max-Common-Subgraph/clique"
	"github.com/Arnyev/Max-Common-Subgraph/graph"
	"github.com/Arnyev/Max-Common-Subgraph/mapping"
	"github.com/Arnyev/Max-Common-Subgraph/mcsplit"
)

// ExactOrApproximate runs the McSplit search configured by opts and returns
// the best mappings: one, or every optimal one with ReturnAllTies.
//
// On cancellation the best mappings found so far are returned together with
// an error wrapping mcsplit.ErrCanceled. A negative StepSize in ModeAnytime
// yields mcsplit.ErrOptionViolation.
func ExactOrApproximate(ctx context.Context, g, h *graph.Graph, opts Options) ([]mapping.Mapping, error) {
	res, err := solve(ctx, g, h, opts)

	return res.Mappings, err
}

func solve(ctx context.Context, g, h *graph.Graph, opts Options) (mcsplit.Result, error) {
	if g == nil || h == nil {
		return mcsplit.Result{}, ErrGraphNil
	}
	var (
		l     = opts.logger()
		start = time.Now()
	)
	l.WithFields(log.Fields{
		"mode": opts.Mode,
		"g":    g.Order(),
		"h":    h.Order(),
	}).Debug("starting search")

	res, err := mcsplit.Solve(g, h, opts.searchOptions(ctx)...)
	if len(res.Mappings) == 0 {
		return res, err
	}

	entry := l.WithFields(log.Fields{
		"mode":     opts.Mode,
		"size":     res.Score.Vertices,
		"mappings": len(res.Mappings),
		"nodes":    res.Nodes,
		"elapsed":  time.Since(start),
	})
	if err != nil {
		entry.WithField("err", err).Warn("search interrupted")
	} else {
		entry.Debug("search finished")
	}

	return res, err
}

// CliqueApprox runs the greedy clique approximation; see clique.Solve.
func CliqueApprox(g, h *graph.Graph, edgeAware bool) mapping.Mapping {
	return clique.Solve(g, h, edgeAware)
}
