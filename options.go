// SPDX-License-Identifier: MIT
// Package mcis: facade options.

package mcis

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/Arnyev/Max-Common-Subgraph/mcsplit"
)

// Mode re-exports the McSplit drivers.
type Mode = mcsplit.Mode

// TieBound re-exports the exact-search tie bound.
type TieBound = mcsplit.TieBound

// Aliases of the mcsplit constants, so callers need only this package.
const (
	ModeExact   = mcsplit.ModeExact
	ModeAnytime = mcsplit.ModeAnytime

	TieBoundAuto      = mcsplit.TieBoundAuto
	TieBoundInclusive = mcsplit.TieBoundInclusive
	TieBoundStrict    = mcsplit.TieBoundStrict
)

// Options configures ExactOrApproximate. The zero value is an exact,
// vertex-only search returning one mapping.
type Options struct {
	// EdgeObjective breaks vertex-count ties by shared edge count.
	EdgeObjective bool

	// ReturnAllTies returns every optimal mapping (ModeExact only).
	ReturnAllTies bool

	// Mode selects exact or anytime search.
	Mode Mode

	// StepSize is the anytime step; 0 selects mcsplit.DefaultStepSize.
	StepSize int

	// TieBound overrides the exact-search bound comparison.
	TieBound TieBound

	// Logger receives progress records; nil selects the standard logger.
	Logger log.FieldLogger
}

// logger resolves the configured logger.
func (o Options) logger() log.FieldLogger {
	if o.Logger == nil {
		return log.StandardLogger()
	}

	return o.Logger
}

// searchOptions translates o into mcsplit options.
func (o Options) searchOptions(ctx context.Context) []mcsplit.Option {
	opts := []mcsplit.Option{
		mcsplit.WithContext(ctx),
		mcsplit.WithTieBound(o.TieBound),
	}
	if o.EdgeObjective {
		opts = append(opts, mcsplit.WithObjective(mcsplit.EdgeObjective))
	}
	if o.ReturnAllTies {
		opts = append(opts, mcsplit.WithReturnAllTies())
	}
	if o.Mode == ModeAnytime {
		step := o.StepSize
		if step == 0 {
			step = mcsplit.DefaultStepSize
		}
		l := o.logger()
		opts = append(opts,
			mcsplit.WithAnytime(step),
			mcsplit.WithOnPass(func(p mcsplit.PassInfo) {
				l.WithFields(log.Fields{
					"pass":   p.Pass,
					"target": p.Target,
					"seed":   p.SeedSize,
					"best":   p.BestSize,
					"nodes":  p.Nodes,
				}).Debug("anytime pass finished")
			}),
		)
	}

	return opts
}
