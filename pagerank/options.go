// Package pagerank: functional options.
package pagerank

import "github.com/katalvlaran/lvlalg/gauss"

const panicDanglingPolicyInvalid = "pagerank: WithDanglingPolicy: unknown policy"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	dangling DanglingPolicy // DanglingReject
	tol      float64        // gauss.DefaultPivotTolerance
}

// WithDanglingPolicy selects how pages without outbound links are handled.
// Panics on a value outside the declared policies.
func WithDanglingPolicy(p DanglingPolicy) Option {
	if p != DanglingReject && p != DanglingUniform && p != DanglingTeleportOnly {
		panic(panicDanglingPolicyInvalid)
	}

	return func(o *Options) { o.dangling = p }
}

// WithPivotTolerance forwards tol to the singular solver (gauss.WithTolerance).
// Panics under the same conditions as gauss.WithTolerance.
func WithPivotTolerance(tol float64) Option {
	gauss.WithTolerance(tol) // validate eagerly

	return func(o *Options) { o.tol = tol }
}

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{dangling: DanglingReject, tol: gauss.DefaultPivotTolerance}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// DanglingPolicy reports the resolved dangling-node policy.
func (o Options) DanglingPolicy() DanglingPolicy { return o.dangling }

// Tolerance reports the resolved pivot tolerance.
func (o Options) Tolerance() float64 { return o.tol }
