// SPDX-License-Identifier: MIT
// Package mcis: the numbered algorithm variants.

package mcis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Arnyev/Max-Common-Subgraph/graph"
	"github.com/Arnyev/Max-Common-Subgraph/mapping"
)

// Algorithm identifies one of the eight solver variants.
//
//	1 exact-v        exact, vertices
//	2 exact-ve       exact, vertices then edges
//	3 exact-v-all    exact, vertices, every optimum
//	4 exact-ve-all   exact, vertices then edges, every optimum
//	5 clique-v       clique approximation, highest degree pick
//	6 clique-ve      clique approximation, edge-aware pick
//	7 anytime-v      anytime McSplit, vertices
//	8 anytime-ve     anytime McSplit, vertices then edges
type Algorithm int

// The variants, numbered as on the command line.
const (
	ExactV Algorithm = iota + 1
	ExactVE
	ExactVAll
	ExactVEAll
	CliqueV
	CliqueVE
	AnytimeV
	AnytimeVE
)

var algorithmNames = [...]string{
	ExactV:     "exact-v",
	ExactVE:    "exact-ve",
	ExactVAll:  "exact-v-all",
	ExactVEAll: "exact-ve-all",
	CliqueV:    "clique-v",
	CliqueVE:   "clique-ve",
	AnytimeV:   "anytime-v",
	AnytimeVE:  "anytime-ve",
}

// Algorithms lists every variant in numeric order.
func Algorithms() []Algorithm {
	return []Algorithm{ExactV, ExactVE, ExactVAll, ExactVEAll, CliqueV, CliqueVE, AnytimeV, AnytimeVE}
}

// Valid reports whether a is one of the eight variants.
func (a Algorithm) Valid() bool { return a >= ExactV && a <= AnytimeVE }

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// EdgeObjective reports whether a breaks ties by shared edges.
func (a Algorithm) EdgeObjective() bool {
	return a == ExactVE || a == ExactVEAll || a == CliqueVE || a == AnytimeVE
}

// ParseAlgorithm accepts a number ("1".."8") or a name ("exact-ve").
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if a := Algorithm(n); a.Valid() {
			return a, nil
		}
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownAlgorithm)
	}
	for _, a := range Algorithms() {
		if algorithmNames[a] == s {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownAlgorithm)
}

// Report is the outcome of Run.
type Report struct {
	Algorithm Algorithm
	Mappings  []mapping.Mapping
	Nodes     int64 // search nodes; 0 for the clique variants
	Passes    int   // anytime passes; 0 otherwise
	Elapsed   time.Duration
}

// Best returns the first mapping of the report, or nil.
func (r Report) Best() mapping.Mapping {
	if len(r.Mappings) == 0 {
		return nil
	}

	return r.Mappings[0]
}

// Run executes variant algo on g and h. step is the anytime step size for
// variants 7 and 8 (0 selects the default of 4). logger may be nil.
func Run(ctx context.Context, algo Algorithm, g, h *graph.Graph, step int, logger log.FieldLogger) (Report, error) {
	if !algo.Valid() {
		return Report{}, fmt.Errorf("%d: %w", int(algo), ErrUnknownAlgorithm)
	}
	if g == nil || h == nil {
		return Report{}, ErrGraphNil
	}
	opts := Options{
		EdgeObjective: algo.EdgeObjective(),
		StepSize:      step,
		Logger:        logger,
	}
	var (
		l     = opts.logger().WithField("algorithm", algo.String())
		start = time.Now()
		rep   = Report{Algorithm: algo}
		err   error
	)
	opts.Logger = l

	switch algo {
	case CliqueV, CliqueVE:
		rep.Mappings = []mapping.Mapping{CliqueApprox(g, h, algo == CliqueVE)}
	default:
		switch algo {
		case ExactVAll, ExactVEAll:
			opts.ReturnAllTies = true
		case AnytimeV, AnytimeVE:
			opts.Mode = ModeAnytime
		}
		res, serr := solve(ctx, g, h, opts)
		rep.Mappings, rep.Nodes, rep.Passes, err = res.Mappings, res.Nodes, res.Passes, serr
	}
	rep.Elapsed = time.Since(start)

	l.WithFields(log.Fields{
		"g":        g.Order(),
		"h":        h.Order(),
		"size":     rep.Best().Len(),
		"mappings": len(rep.Mappings),
		"nodes":    rep.Nodes,
		"elapsed":  rep.Elapsed,
	}).Info("algorithm finished")

	return rep, err
}
