package router

import (
	"math"
	"time"

	"github.com/geomesh/snaproute/mwis"
)

// ConflictPolicy decides the canonical linkRefId to write back to a shared
// stop when a routing pass touches it more than once. Given the stop's
// current linkRefId and the one this pass's edge would naturally assign,
// it returns the value that should win. Fulfills Design Note "expose a
// callback hook for a future conflict policy."
type ConflictPolicy func(stopID, existingLinkRefID, newLinkRefID string) string

// lastWriterWins is the default ConflictPolicy spec.md §9 mandates: the
// most recently processed edge's natural assignment always wins.
func lastWriterWins(_, _, newLinkRefID string) string { return newLinkRefID }

// Options configures a routing pass. Built via functional options, in the
// shape of the teacher's core.GraphOption / dijkstra.Option.
type Options struct {
	snappingDistance float64
	solver           mwis.Solver
	logger           Logger
	timeout          time.Duration
	conflictPolicy   ConflictPolicy
}

// Option configures an Options value.
type Option func(*Options)

// WithSnappingDistance sets the candidate-pool search radius, in meters.
// Panics if meters is not a positive, finite static value.
func WithSnappingDistance(meters float64) Option {
	if meters <= 0 || math.IsNaN(meters) || math.IsInf(meters, 0) {
		panic("router: snapping distance must be positive and finite")
	}
	return func(o *Options) { o.snappingDistance = meters }
}

// WithSolver overrides the default mwis.BranchAndBound solver.
func WithSolver(s mwis.Solver) Option {
	if s == nil {
		panic("router: solver must not be nil")
	}
	return func(o *Options) { o.solver = s }
}

// WithLogger overrides the default no-op Logger.
func WithLogger(l Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = noopLogger{}
		}
		o.logger = l
	}
}

// WithTimeout bounds each schedule element's solve step. Zero (the
// default) means no deadline.
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic("router: timeout must not be negative")
	}
	return func(o *Options) { o.timeout = d }
}

// WithConflictPolicy overrides the default last-writer-wins ConflictPolicy.
func WithConflictPolicy(p ConflictPolicy) Option {
	if p == nil {
		panic("router: conflict policy must not be nil")
	}
	return func(o *Options) { o.conflictPolicy = p }
}

func buildOptions(opts []Option) Options {
	o := Options{
		solver:         mwis.BranchAndBound{},
		logger:         noopLogger{},
		conflictPolicy: lastWriterWins,
	}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
