// File: options.go
// Role: functional options for Build, matching slicer.Options' shape.
package loopbuilder

import "github.com/sliceengine/sliceengine/slicelog"

// Options holds per-call configuration.
type Options struct {
	Logger *slicelog.Logger
}

// Option customizes a Build call.
type Option func(*Options)

// WithLogger sets the logger used to report UnclosedLoop conditions.
// Panics on nil; use slicelog.Discard() to silence output.
func WithLogger(l *slicelog.Logger) Option {
	if l == nil {
		panic("loopbuilder: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

func defaultOptions() Options {
	return Options{Logger: slicelog.Discard()}
}
