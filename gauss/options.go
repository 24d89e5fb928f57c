// Package gauss: functional configuration of the elimination kernels.
//
// Design goals:
//   - Deterministic behavior: no global mutable state; the tolerance default
//     is a constant and every call resolves its own Options.
//   - Safe by construction: constructors panic only on nonsensical values
//     (programmer error), never on user data.
package gauss

import "math"

// DefaultPivotTolerance is the magnitude below which a pivot candidate is
// treated as numerically zero.
const DefaultPivotTolerance = 1e-10

const panicToleranceInvalid = "gauss: WithTolerance: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol float64 // >= 0; DefaultPivotTolerance
}

// WithTolerance sets the pivot tolerance used by ModeProbe elimination.
// A tolerance of 0 only treats exact zeros as vanishing pivots.
//
// Panics with a stable message when tol is negative, NaN or infinite.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// Tolerance reports the resolved pivot tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// NewOptions resolves opts over the documented defaults.
func NewOptions(opts ...Option) Options {
	o := Options{tol: DefaultPivotTolerance}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
