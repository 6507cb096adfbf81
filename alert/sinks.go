// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alert

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
)

// ConsoleSink writes alerts to a [slog.Logger].
type ConsoleSink struct {
	Logger *slog.Logger
}

// NewConsoleSink returns a [ConsoleSink] using a [Handler] on w.
func NewConsoleSink(w io.Writer, level slog.Leveler) *ConsoleSink {
	return &ConsoleSink{Logger: slog.New(NewHandler(w, level))}
}

func (s *ConsoleSink) Alert(sev Severity, msg string) {
	s.Logger.Log(context.Background(), sev.Level(), msg)
}

// DialogSink shows alerts at or above Min in a native message box,
// and sends everything else to Fallback. If the dialog cannot be
// shown, the alert also goes to Fallback.
type DialogSink struct {
	Min      Severity
	Fallback Sink

	// Show displays a blocking message box. It defaults to
	// zenity on Linux, osascript on macOS and PowerShell on Windows.
	Show func(sev Severity, title, msg string) error
}

// NewDialogSink returns a [DialogSink] for warnings and above.
func NewDialogSink(fallback Sink) *DialogSink {
	return &DialogSink{Min: SeverityWarning, Fallback: fallback, Show: ShowDialog}
}

func (s *DialogSink) Alert(sev Severity, msg string) {
	if sev < s.Min || s.Show == nil {
		s.Fallback.Alert(sev, msg)
		return
	}
	if err := s.Show(sev, sev.String(), msg); err != nil {
		s.Fallback.Alert(sev, msg)
	}
}

// ShowDialog shows msg in a blocking native message box.
func ShowDialog(sev Severity, title, msg string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		icon := "note"
		if sev >= SeverityError {
			icon = "stop"
		} else if sev == SeverityWarning {
			icon = "caution"
		}
		script := fmt.Sprintf("display dialog %s with title %s buttons {\"OK\"} with icon %s",
			appleQuote(msg), appleQuote(title), icon)
		cmd = exec.Command("osascript", "-e", script)
	case "windows":
		script := fmt.Sprintf("Add-Type -AssemblyName PresentationFramework;[System.Windows.MessageBox]::Show(%s,%s) | Out-Null",
			psQuote(msg), psQuote(title))
		cmd = exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	default:
		kind := "--info"
		if sev >= SeverityError {
			kind = "--error"
		} else if sev == SeverityWarning {
			kind = "--warning"
		}
		cmd = exec.Command("zenity", kind, "--no-markup", "--title", title, "--text", msg)
	}
	return cmd.Run()
}

func appleQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// DebuggerSink sends alerts to the attached debugger's output window
// on Windows. Elsewhere, and when that fails, alerts are written to W.
type DebuggerSink struct {
	W io.Writer
}

// NewDebuggerSink returns a [DebuggerSink] falling back to stderr.
func NewDebuggerSink() *DebuggerSink {
	return &DebuggerSink{W: os.Stderr}
}

func (s *DebuggerSink) Alert(sev Severity, msg string) {
	line := sev.String() + ": " + msg
	if outputDebugString(line + "\r\n") {
		return
	}
	fmt.Fprintln(s.W, line)
}

// SinkNames are the names accepted by [SinkFromName].
var SinkNames = []string{"console", "dialog", "debugger", "auto"}

// SinkFromName returns the sink with the given name, writing console
// output to w at the given level. "auto" picks the debugger sink when
// a debugger is attached and the console sink otherwise.
func SinkFromName(name string, w io.Writer, level slog.Leveler) (Sink, error) {
	console := NewConsoleSink(w, level)
	switch strings.ToLower(name) {
	case "", "console":
		return console, nil
	case "dialog":
		return NewDialogSink(console), nil
	case "debugger":
		return &DebuggerSink{W: w}, nil
	case "auto":
		if DebuggerAttached() {
			return &DebuggerSink{W: w}, nil
		}
		return console, nil
	}
	return nil, fmt.Errorf("alert: unknown sink %q (want one of %s)", name, strings.Join(SinkNames, ", "))
}

// Record is one alert captured by a [Recorder].
type Record struct {
	Severity Severity
	Message  string
}

// Recorder is a [Sink] that keeps every alert in memory.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

func (r *Recorder) Alert(sev Severity, msg string) {
	r.mu.Lock()
	r.records = append(r.records, Record{Severity: sev, Message: msg})
	r.mu.Unlock()
}

// Records returns a copy of everything recorded so far.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Record(nil), r.records...)
}

// Messages returns the messages recorded at the given severity.
func (r *Recorder) Messages(sev Severity) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ms []string
	for _, rc := range r.records {
		if rc.Severity == sev {
			ms = append(ms, rc.Message)
		}
	}
	return ms
}

// Count returns the number of alerts recorded at the given severity.
func (r *Recorder) Count(sev Severity) int {
	return len(r.Messages(sev))
}

// Reset discards all records.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.records = nil
	r.mu.Unlock()
}

// Cleanuper is the part of [testing.TB] used by [Capture].
type Cleanuper interface {
	Cleanup(f func())
}

// Capture installs a default [Alerter] that records into a new [Recorder]
// and panics with [ErrFatal] on fatal alerts. The previous default is
// restored when the test finishes.
func Capture(t Cleanuper) *Recorder {
	prev := Default()
	rec := &Recorder{}
	SetDefault(New(rec, WithTerminate(FatalPanic)))
	t.Cleanup(func() { SetDefault(prev) })
	return rec
}
