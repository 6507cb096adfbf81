// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/colorgrade/alert"
	"cogentcore.org/colorgrade/gl/gltest"
)

// drained collects everything a watcher queues.
type drained struct {
	mu    sync.Mutex
	paths []string
}

func (d *drained) poll(w *Watcher) []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.paths = append(d.paths, w.Drain()...)
	return slices.Clone(d.paths)
}

func TestWatcherWrite(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.frag", bSrc)
	var changes atomic.Int32
	w, err := NewWatcher(DefaultRetry(), func() { changes.Add(1) })
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(path))
	require.NoError(t, w.Add(path))
	assert.True(t, w.Watched(path))

	require.NoError(t, os.WriteFile(path, []byte(aSrc), 0o644))
	d := &drained{}
	assert.Eventually(t, func() bool {
		return slices.Contains(d.poll(w), Normalize(path))
	}, 2*time.Second, 10*time.Millisecond)
	assert.Positive(t, changes.Load())
	assert.True(t, w.Watched(path))
}

func TestWatcherRename(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.frag", bSrc)
	w, err := NewWatcher(DefaultRetry(), nil)
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(path))

	// editors save by writing a new file and renaming it over the old one
	tmp := writeFile(t, dir, "a.frag.tmp", aSrc)
	require.NoError(t, os.Rename(tmp, path))
	d := &drained{}
	assert.Eventually(t, func() bool {
		return slices.Contains(d.poll(w), Normalize(path)) && w.Watched(path)
	}, 2*time.Second, 10*time.Millisecond)

	// the new file is watched too
	d.mu.Lock()
	d.paths = nil
	d.mu.Unlock()
	require.NoError(t, os.WriteFile(path, []byte(bSrc), 0o644))
	assert.Eventually(t, func() bool {
		return slices.Contains(d.poll(w), Normalize(path))
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherGiveUp(t *testing.T) {
	rec := alert.Capture(t)
	w, err := NewWatcher(Retry{Initial: time.Millisecond, Max: 2 * time.Millisecond, Timeout: 20 * time.Millisecond}, nil)
	require.NoError(t, err)
	defer w.Close()
	gone := filepath.Join(t.TempDir(), "gone.frag")
	assert.False(t, w.rearm(gone))
	ws := rec.Messages(alert.SeverityWarning)
	require.Len(t, ws, 1)
	assert.Contains(t, ws[0], "could not re-watch")

	// it is picked up again when it comes back
	assert.True(t, w.Watched(gone))
	require.NoError(t, os.WriteFile(gone, []byte(bSrc), 0o644))
	d := &drained{}
	assert.Eventually(t, func() bool {
		return slices.Contains(d.poll(w), Normalize(gone)) && w.listed(Normalize(gone))
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "later.frag")
	var changes atomic.Int32
	w, err := NewWatcher(DefaultRetry(), func() { changes.Add(1) })
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(path))
	assert.True(t, w.Watched(path))
	assert.False(t, w.listed(Normalize(path)))

	// other files in the directory are not reported
	writeFile(t, dir, "other.frag", bSrc)
	writeFile(t, dir, "later.frag", aSrc)
	d := &drained{}
	assert.Eventually(t, func() bool {
		return slices.Contains(d.poll(w), Normalize(path)) && w.listed(Normalize(path))
	}, 2*time.Second, 10*time.Millisecond)
	assert.NotContains(t, d.poll(w), Normalize(filepath.Join(dir, "other.frag")))
	assert.Positive(t, changes.Load())
	assert.Empty(t, w.dirs)
	assert.False(t, w.listed(Normalize(dir)))

	// from now on it is watched like any other file
	d.mu.Lock()
	d.paths = nil
	d.mu.Unlock()
	require.NoError(t, os.WriteFile(path, []byte(bSrc), 0o644))
	assert.Eventually(t, func() bool {
		return slices.Contains(d.poll(w), Normalize(path))
	}, 2*time.Second, 10*time.Millisecond)
}

func TestCacheMissingInclude(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(gltest.New())
	t.Cleanup(c.Close)
	require.NoError(t, c.Watch(DefaultRetry(), nil))
	rec := alert.Capture(t)
	frag := NewShader(writeFile(t, dir, "main.frag", "#version 430 core\n#include \"later.glsl\"\nvoid main() {}\n"))
	c.Shader(frag)
	assert.Equal(t, 1, rec.Count(alert.SeverityWarning))
	later := filepath.Join(dir, "later.glsl")
	assert.True(t, c.Watched(later))

	writeFile(t, dir, "later.glsl", commonSrc)
	assert.Eventually(t, func() bool {
		c.Poll()
		return !c.HasShader(frag)
	}, 2*time.Second, 10*time.Millisecond)
	c.Shader(frag)
	assert.Equal(t, 1, rec.Count(alert.SeverityWarning))
}

func TestWatcherDrainOnce(t *testing.T) {
	w, err := NewWatcher(DefaultRetry(), nil)
	require.NoError(t, err)
	defer w.Close()
	w.queue("/a")
	w.queue("/b")
	w.queue("/a")
	assert.Equal(t, []string{"/a", "/b"}, w.Drain())
	assert.Empty(t, w.Drain())
}

func TestCacheWatch(t *testing.T) {
	f := newFixture(t)
	wake := make(chan struct{}, 1)
	require.NoError(t, f.cache.Watch(DefaultRetry(), func() {
		select {
		case wake <- struct{}{}:
		default:
		}
	}))
	f.cache.Program(f.vert, f.a)
	assert.True(t, f.cache.Watched(f.common))
	assert.True(t, f.cache.Watched(f.a.Path))
	assert.False(t, f.cache.Watched(f.b.Path))

	require.NoError(t, os.WriteFile(f.common, []byte(commonSrc+"\n"), 0o644))
	select {
	case <-wake:
	case <-time.After(2 * time.Second):
		t.Fatal("no change notification")
	}
	assert.Eventually(t, func() bool {
		f.cache.Poll()
		return !f.cache.HasShader(f.a)
	}, 2*time.Second, 10*time.Millisecond)
	assert.True(t, f.cache.HasShader(f.vert))
	assert.False(t, f.cache.HasProgram(f.vert, f.a))

	// files stay watched after their entries are evicted
	assert.True(t, f.cache.Watched(f.common))
	f.cache.Program(f.vert, f.a)
	assert.True(t, f.cache.HasProgram(f.vert, f.a))
}
