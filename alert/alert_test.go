// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alert

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, SeverityInfo.Level())
	assert.Equal(t, slog.LevelWarn, SeverityWarning.Level())
	assert.Equal(t, slog.LevelError, SeverityError.Level())
	assert.Equal(t, LevelFatal, SeverityFatal.Level())
	assert.Equal(t, "Warning", SeverityWarning.String())
	assert.Equal(t, "Severity(9)", Severity(9).String())
}

func TestAlerterRoutes(t *testing.T) {
	rec := &Recorder{}
	a := New(rec, WithTerminate(FatalPanic))
	a.Info("i")
	a.Warning("w")
	a.Error("e")
	assert.True(t, a.Assert(true, "never"))
	assert.False(t, a.Assert(false, "assert"))

	assert.Equal(t, []string{"i"}, rec.Messages(SeverityInfo))
	assert.Equal(t, []string{"w"}, rec.Messages(SeverityWarning))
	assert.Equal(t, []string{"e", "assert"}, rec.Messages(SeverityError))
	assert.Equal(t, 0, rec.Count(SeverityFatal))
}

func TestFatalTerminates(t *testing.T) {
	rec := &Recorder{}
	a := New(rec, WithTerminate(FatalPanic))
	assert.PanicsWithValue(t, ErrFatal, func() { a.Fatal("boom") })
	assert.PanicsWithValue(t, ErrFatal, func() { a.AssertFatal(false, "bad") })
	assert.NotPanics(t, func() { a.AssertFatal(true, "fine") })
	assert.Equal(t, []string{"boom", "bad"}, rec.Messages(SeverityFatal))

	terminated := 0
	a = New(rec, WithTerminate(func() { terminated++ }))
	assert.False(t, a.AssertFatal(false, "again"))
	assert.Equal(t, 1, terminated)
}

func TestCapture(t *testing.T) {
	prev := Default()
	t.Run("inner", func(t *testing.T) {
		rec := Capture(t)
		Warning("captured")
		assert.Equal(t, []Record{{Severity: SeverityWarning, Message: "captured"}}, rec.Records())
		assert.Panics(t, func() { Fatal("x") })
	})
	assert.Same(t, prev, Default())
}

func TestPackageFunctions(t *testing.T) {
	rec := Capture(t)
	Info("uniform skipped")
	Warning("compile failed")
	Error("bad mips")
	assert.False(t, Assert(false, "bad level"))
	assert.PanicsWithValue(t, ErrFatal, func() { Fatal("use after release") })
	assert.PanicsWithValue(t, ErrFatal, func() { AssertFatal(false, "short data") })

	assert.Equal(t, []Record{
		{Severity: SeverityInfo, Message: "uniform skipped"},
		{Severity: SeverityWarning, Message: "compile failed"},
		{Severity: SeverityError, Message: "bad mips"},
		{Severity: SeverityError, Message: "bad level"},
		{Severity: SeverityFatal, Message: "use after release"},
		{Severity: SeverityFatal, Message: "short data"},
	}, rec.Records())
}

func TestConsoleSink(t *testing.T) {
	var b bytes.Buffer
	s := NewConsoleSink(&b, slog.LevelWarn)
	s.Alert(SeverityInfo, "hidden")
	s.Alert(SeverityWarning, "compile failed")
	s.Alert(SeverityFatal, "invalid format")
	out := b.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "compile failed")
	assert.Contains(t, out, "FATAL")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestHandlerAttrs(t *testing.T) {
	var b bytes.Buffer
	l := slog.New(NewHandler(&b, slog.LevelDebug)).With("path", "a.frag").WithGroup("gl")
	l.Debug("compiled", "id", 3)
	assert.Contains(t, b.String(), "compiled path=a.frag gl.id=3")
}

func TestDialogSinkFallback(t *testing.T) {
	rec := &Recorder{}
	var shown []string
	s := &DialogSink{Min: SeverityWarning, Fallback: rec, Show: func(sev Severity, title, msg string) error {
		shown = append(shown, title+":"+msg)
		if sev == SeverityError {
			return errors.New("no display")
		}
		return nil
	}}
	s.Alert(SeverityInfo, "uniform skipped")
	s.Alert(SeverityWarning, "link failed")
	s.Alert(SeverityError, "bad mips")
	assert.Equal(t, []string{"Warning:link failed", "Error:bad mips"}, shown)
	assert.Equal(t, []string{"uniform skipped"}, rec.Messages(SeverityInfo))
	assert.Equal(t, []string{"bad mips"}, rec.Messages(SeverityError))
	assert.Empty(t, rec.Messages(SeverityWarning))
}

func TestSinkFromName(t *testing.T) {
	var b bytes.Buffer
	for _, name := range SinkNames {
		s, err := SinkFromName(name, &b, slog.LevelInfo)
		require.NoError(t, err, name)
		assert.NotNil(t, s)
	}
	s, err := SinkFromName("Dialog", &b, slog.LevelInfo)
	require.NoError(t, err)
	assert.IsType(t, &DialogSink{}, s)

	_, err = SinkFromName("pager", &b, slog.LevelInfo)
	assert.Error(t, err)
}

func TestDebuggerSink(t *testing.T) {
	var b bytes.Buffer
	s := &DebuggerSink{W: &b}
	s.Alert(SeverityWarning, "hello")
	if b.Len() > 0 {
		assert.Equal(t, "Warning: hello\n", b.String())
	}
}

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, false))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}
