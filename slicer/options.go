// File: options.go
// Role: functional options for Slice — an Options struct,
// validated With* constructors, no hidden global state.
package slicer

import (
	"context"

	"github.com/sliceengine/sliceengine/slicelog"
)

// DefaultScalingFactor is the build-time constant from the original
// design (spec §9 DESIGN NOTES) re-expressed as an injectable default:
// 10^-6 mesh units per scaled integer unit, so a 1 mm input coordinate
// becomes 10^6 grid units.
const DefaultScalingFactor = 1e-6

// Options holds per-call configuration resolved from functional Option values.
type Options struct {
	ScalingFactor float64
	Logger        *slicelog.Logger
	Ctx           context.Context
}

// Option customizes a Slice call.
type Option func(*Options)

// WithScalingFactor overrides the unit-length-to-integer conversion
// (spec §9: "treat as an injected numeric parameter of the slicer so
// tests can exercise alternative scales"). Panics on a non-positive
// factor: this is a programmer error, not a runtime condition.
func WithScalingFactor(factor float64) Option {
	if factor <= 0 {
		panic("slicer: WithScalingFactor requires a positive factor")
	}
	return func(o *Options) { o.ScalingFactor = factor }
}

// WithLogger sets the logger used to report recoverable MalformedFacet
// conditions. Panics on nil; use slicelog.Discard() to silence output.
func WithLogger(l *slicelog.Logger) Option {
	if l == nil {
		panic("slicer: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithContext sets a context checked before each facet is sliced (never
// mid-facet; see spec §5 — the core has no suspension points inside one
// facet's per-plane work).
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("slicer: WithContext(nil)")
	}
	return func(o *Options) { o.Ctx = ctx }
}

func defaultOptions() Options {
	return Options{
		ScalingFactor: DefaultScalingFactor,
		Logger:        slicelog.Discard(),
		Ctx:           context.Background(),
	}
}
