// Package slicelog is the ambient logging used by slicer and loopbuilder
// to report recovered errors (MalformedFacet, UnclosedLoop) without
// stopping the pipeline (spec §7 policy: these are values, not
// exceptions, and are recovered locally).
//
// This wraps the standard library's log.Logger: warnings and debug
// output are routed through separate *log.Logger instances so callers
// can silence one without the other.
package slicelog

import (
	"io"
	"log"
	"os"
)

// Logger is the minimal surface slicer/loopbuilder need. A nil *Logger
// drops everything, as does the Logger returned by Discard(), which is
// the default when no logger is configured.
type Logger struct {
	warn  *log.Logger
	debug *log.Logger
}

// New returns a Logger writing warnings to w and debug lines to d.
func New(w, d io.Writer) *Logger {
	return &Logger{
		warn:  log.New(w, "WARN slice: ", log.LstdFlags),
		debug: log.New(d, "DEBUG slice: ", log.LstdFlags),
	}
}

// Default returns a Logger writing warnings to stderr and discarding debug output.
func Default() *Logger {
	return New(os.Stderr, io.Discard)
}

// Discard returns a Logger that drops every message.
func Discard() *Logger {
	return New(io.Discard, io.Discard)
}

// Warnf logs a recoverable-error message (MalformedFacet, UnclosedLoop, ...).
func (l *Logger) Warnf(format string, args ...interface{}) {
	if l == nil || l.warn == nil {
		return
	}
	l.warn.Printf(format, args...)
}

// Debugf logs a verbose diagnostic message.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l == nil || l.debug == nil {
		return
	}
	l.debug.Printf(format, args...)
}
