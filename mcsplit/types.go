// SPDX-License-Identifier: MIT
// Package mcsplit: options and results.

package mcsplit

import (
	"context"
	"fmt"

	"github.com/Arnyev/Max-Common-Subgraph/mapping"
)

// Objective selects what the search maximises.
type Objective int

const (
	// VertexObjective maximises the number of mapped pairs.
	VertexObjective Objective = iota
	// EdgeObjective maximises mapped pairs first, shared edges second.
	EdgeObjective
)

// String implements fmt.Stringer.
func (o Objective) String() string {
	switch o {
	case VertexObjective:
		return "V"
	case EdgeObjective:
		return "V+E"
	default:
		return fmt.Sprintf("Objective(%d)", int(o))
	}
}

// Mode selects the search driver.
type Mode int

const (
	// ModeExact runs the complete branch-and-bound search.
	ModeExact Mode = iota
	// ModeAnytime runs iterative deepening passes of StepSize pairs each.
	ModeAnytime
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeExact:
		return "exact"
	case ModeAnytime:
		return "anytime"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// TieBound selects how the exact search compares a subtree bound with the
// best score.
type TieBound int

const (
	// TieBoundAuto is TieBoundInclusive when ReturnAllTies is set and
	// TieBoundStrict otherwise.
	TieBoundAuto TieBound = iota
	// TieBoundInclusive prunes only subtrees whose bound is below the best
	// score, so every optimal mapping is reached.
	TieBoundInclusive
	// TieBoundStrict also prunes subtrees that could at best tie; ties are
	// collected only when met on the way to an improvement.
	TieBoundStrict
)

// DefaultStepSize is the anytime step used by the numbered algorithms.
const DefaultStepSize = 4

// cancelCheckMask spaces out context checks to one every 1024 nodes.
const cancelCheckMask = 1023

// Option configures Solve via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Solve.
type Option func(*Options)

// Options holds the resolved search configuration.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked every 1024 nodes.
	Ctx context.Context

	// Objective selects vertex-only or vertex-then-edge maximisation.
	Objective Objective

	// ReturnAllTies makes the exact search return every optimal mapping.
	// Ignored in ModeAnytime.
	ReturnAllTies bool

	// TieBound selects the bound comparison of the exact search.
	TieBound TieBound

	// Mode selects the search driver.
	Mode Mode

	// StepSize is the per-pass growth of the anytime target size.
	StepSize int

	// OnPass, if set, is called after every anytime pass.
	OnPass func(PassInfo)

	err error
}

// DefaultOptions returns exact, vertex-only, first-best search with a
// background context.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Objective: VertexObjective,
		TieBound:  TieBoundAuto,
		Mode:      ModeExact,
		StepSize:  DefaultStepSize,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithObjective selects the objective.
func WithObjective(obj Objective) Option {
	return func(o *Options) {
		switch obj {
		case VertexObjective, EdgeObjective:
			o.Objective = obj
		default:
			o.err = fmt.Errorf("%w: unknown objective %d", ErrOptionViolation, int(obj))
		}
	}
}

// WithReturnAllTies makes the exact search return every optimal mapping.
func WithReturnAllTies() Option {
	return func(o *Options) { o.ReturnAllTies = true }
}

// WithTieBound overrides the bound comparison of the exact search.
func WithTieBound(tb TieBound) Option {
	return func(o *Options) {
		switch tb {
		case TieBoundAuto, TieBoundInclusive, TieBoundStrict:
			o.TieBound = tb
		default:
			o.err = fmt.Errorf("%w: unknown tie bound %d", ErrOptionViolation, int(tb))
		}
	}
}

// WithAnytime switches to the anytime driver with the given step size.
//
//	step > 0: target grows by step pairs per pass
//	step ≤ 0: invalid option → ErrOptionViolation
func WithAnytime(step int) Option {
	return func(o *Options) {
		if step <= 0 {
			o.err = fmt.Errorf("%w: step size must be positive (%d)", ErrOptionViolation, step)
			return
		}
		o.Mode = ModeAnytime
		o.StepSize = step
	}
}

// WithOnPass registers a callback run after each anytime pass.
func WithOnPass(fn func(PassInfo)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPass = fn
		}
	}
}

// inclusive resolves TieBoundAuto against ReturnAllTies.
func (o Options) inclusive() bool {
	switch o.TieBound {
	case TieBoundInclusive:
		return true
	case TieBoundStrict:
		return false
	default:
		return o.ReturnAllTies
	}
}

// PassInfo describes one finished anytime pass.
type PassInfo struct {
	Pass     int   // 1-based pass number
	Target   int   // target size of the pass
	SeedSize int   // size of the seed mapping after the pass
	BestSize int   // size of the best mapping under the objective
	Nodes    int64 // nodes explored so far, all passes
}

// Result is the outcome of Solve.
type Result struct {
	// Mappings holds the best mappings: exactly one unless ReturnAllTies
	// collected several. Never empty; the empty mapping is returned when
	// either graph has no vertices.
	Mappings []mapping.Mapping

	// Score is the objective value of Mappings[0].
	Score Score

	// Nodes is the number of search nodes explored.
	Nodes int64

	// Passes is the number of anytime passes (0 in ModeExact).
	Passes int
}

// Best returns the first best mapping.
func (r Result) Best() mapping.Mapping { return r.Mappings[0] }
