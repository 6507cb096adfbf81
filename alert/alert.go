// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alert routes severity-tagged messages from the GPU layer to a
// configurable [Sink]. Programmer errors are reported at [SeverityFatal] severity
// and terminate the process after the sink has seen them; compile and link
// diagnostics are [SeverityWarning]s, and skipped uniforms are [SeverityInfo].
package alert

import (
	"errors"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
)

// Severity is the importance of an alert.
type Severity int32

const (
	// SeverityInfo is for expected conditions worth knowing about,
	// such as a uniform that is not active in the current shader.
	SeverityInfo Severity = iota

	// SeverityWarning is for recoverable problems, such as a shader
	// that failed to compile.
	SeverityWarning

	// SeverityError is for contract violations that do not stop the program.
	SeverityError

	// SeverityFatal is for contract violations; the process terminates.
	SeverityFatal
)

// LevelFatal is the [slog.Level] used for [SeverityFatal] alerts.
const LevelFatal = slog.LevelError + 4

var severityNames = [...]string{"Info", "Warning", "Error", "Fatal"}

func (s Severity) String() string {
	if s < SeverityInfo || s > SeverityFatal {
		return "Severity(" + strconv.Itoa(int(s)) + ")"
	}
	return severityNames[s]
}

// Level returns the [slog.Level] matching the severity.
func (s Severity) Level() slog.Level {
	switch s {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	case SeverityError:
		return slog.LevelError
	default:
		return LevelFatal
	}
}

// Sink receives pre-formatted alerts. Implementations must be safe
// to call from the file watcher goroutine as well as the context thread.
type Sink interface {
	Alert(sev Severity, msg string)
}

// SinkFunc adapts a function to the [Sink] interface.
type SinkFunc func(sev Severity, msg string)

func (f SinkFunc) Alert(sev Severity, msg string) { f(sev, msg) }

// ErrFatal is the panic value used by [FatalPanic].
var ErrFatal = errors.New("alert: fatal")

// FatalPanic is a terminate function that panics with [ErrFatal]
// instead of exiting, for use in tests.
func FatalPanic() {
	panic(ErrFatal)
}

// Alerter sends alerts to a [Sink] and terminates on [SeverityFatal] ones.
type Alerter struct {
	mu        sync.Mutex
	sink      Sink
	terminate func()
}

// Option configures an [Alerter].
type Option func(a *Alerter)

// WithTerminate replaces the function run after a [SeverityFatal] alert.
// The default breaks into an attached debugger, and otherwise
// exits the process with status 1.
func WithTerminate(f func()) Option {
	return func(a *Alerter) { a.terminate = f }
}

// New returns a new [Alerter] writing to the given sink.
func New(sink Sink, opts ...Option) *Alerter {
	a := &Alerter{sink: sink, terminate: terminate}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Sink returns the sink alerts are written to.
func (a *Alerter) Sink() Sink {
	return a.sink
}

// Alert sends msg at the given severity, terminating after [SeverityFatal].
func (a *Alerter) Alert(sev Severity, msg string) {
	a.mu.Lock()
	a.sink.Alert(sev, msg)
	a.mu.Unlock()
	if sev >= SeverityFatal {
		a.terminate()
	}
}

func (a *Alerter) Info(msg string)    { a.Alert(SeverityInfo, msg) }
func (a *Alerter) Warning(msg string) { a.Alert(SeverityWarning, msg) }
func (a *Alerter) Error(msg string)   { a.Alert(SeverityError, msg) }
func (a *Alerter) Fatal(msg string)   { a.Alert(SeverityFatal, msg) }

// Assert sends msg as a [SeverityError] if cond is false, and returns cond.
func (a *Alerter) Assert(cond bool, msg string) bool {
	if !cond {
		a.Alert(SeverityError, msg)
	}
	return cond
}

// AssertFatal sends msg as a [SeverityFatal] alert if cond is false, and returns cond.
// It only returns false when the terminate function returns,
// which happens under a debugger or in tests.
func (a *Alerter) AssertFatal(cond bool, msg string) bool {
	if !cond {
		a.Alert(SeverityFatal, msg)
	}
	return cond
}

func terminate() {
	if DebuggerAttached() {
		runtime.Breakpoint()
		return
	}
	os.Exit(1)
}

var defaultAlerter atomic.Pointer[Alerter]

func init() {
	defaultAlerter.Store(New(NewConsoleSink(os.Stderr, slog.LevelInfo)))
}

// Default returns the default [Alerter], used by the package level functions.
func Default() *Alerter {
	return defaultAlerter.Load()
}

// SetDefault makes a the default [Alerter]. Passing nil restores
// a console alerter on stderr.
func SetDefault(a *Alerter) {
	if a == nil {
		a = New(NewConsoleSink(os.Stderr, slog.LevelInfo))
	}
	defaultAlerter.Store(a)
}

// Info sends msg as a [SeverityInfo] alert through the default [Alerter].
func Info(msg string) { Default().Info(msg) }

// Warning sends msg as a [SeverityWarning] alert through the default [Alerter].
func Warning(msg string) { Default().Warning(msg) }

// Error sends msg as a [SeverityError] alert through the default [Alerter].
func Error(msg string) { Default().Error(msg) }

// Fatal sends msg as a [SeverityFatal] alert through the default [Alerter].
func Fatal(msg string) { Default().Fatal(msg) }

// Assert calls [Alerter.Assert] on the default [Alerter].
func Assert(cond bool, msg string) bool { return Default().Assert(cond, msg) }

// AssertFatal calls [Alerter.AssertFatal] on the default [Alerter].
func AssertFatal(cond bool, msg string) bool { return Default().AssertFatal(cond, msg) }
