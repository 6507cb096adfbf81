// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureDefault(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	buf := &bytes.Buffer{}
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, nil)))
	return buf
}

func TestLog(t *testing.T) {
	buf := captureDefault(t)
	assert.NoError(t, Log(nil))
	assert.Empty(t, buf.String())

	err := New("boom")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, buf.String(), "boom")
	assert.Contains(t, buf.String(), "errors_test.go")
}

func TestLog1(t *testing.T) {
	buf := captureDefault(t)
	assert.Equal(t, 3, Log1(3, nil))
	assert.Empty(t, buf.String())
	assert.Equal(t, 0, Log1(0, New("bad")))
	assert.Contains(t, buf.String(), "bad")
}

func TestIs(t *testing.T) {
	err := New("missing")
	assert.True(t, Is(err, err))
	assert.False(t, Is(New("missing"), err))
}
