// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fsnotify/fsnotify"

	"cogentcore.org/colorgrade/alert"
	"cogentcore.org/colorgrade/base/errors"
)

// Retry is the backoff used to re-add a watch after a file change.
// Editors often replace a file instead of writing it, which drops
// the watch until the new file exists.
type Retry struct {
	Initial time.Duration
	Max     time.Duration
	Timeout time.Duration
}

// DefaultRetry returns the default re-arm backoff.
func DefaultRetry() Retry {
	return Retry{Initial: 5 * time.Millisecond, Max: 100 * time.Millisecond, Timeout: 2 * time.Second}
}

func (r Retry) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.Initial
	b.MaxInterval = r.Max
	b.MaxElapsedTime = r.Timeout
	b.Reset()
	return backoff.WithContext(b, ctx)
}

var errNotWatched = errors.New("path not in watch list")

// Watcher watches shader source files and queues the normalized
// paths of changed files until they are drained on the context thread.
// Its goroutine never touches the [Cache].
//
// A file that does not exist yet is watched through its directory
// until it is created, and then through a watch of its own.
type Watcher struct {
	fsw   *fsnotify.Watcher
	retry Retry

	// onChange is called from the watcher goroutine after a path is queued.
	onChange func()

	mu      sync.Mutex
	pending []string

	// files are the paths passed to Add.
	files map[string]struct{}

	// missing are files waiting to be created, watched through dirs,
	// which counts the missing files in each directory.
	missing map[string]struct{}
	dirs    map[string]int

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher starts a new file watcher. onChange, if non-nil, is called
// from the watcher goroutine each time a changed path is queued.
func NewWatcher(retry Retry, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{fsw: fsw, retry: retry, onChange: onChange,
		files: map[string]struct{}{}, missing: map[string]struct{}{}, dirs: map[string]int{}}
	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Add watches the given file. If it does not exist, its directory
// is watched until it is created.
func (w *Watcher) Add(path string) error {
	path = Normalize(path)
	w.mu.Lock()
	w.files[path] = struct{}{}
	w.mu.Unlock()
	if w.Watched(path) {
		return nil
	}
	err := w.fsw.Add(path)
	if err == nil {
		return nil
	}
	if _, serr := os.Stat(path); !errors.Is(serr, fs.ErrNotExist) {
		return err
	}
	return w.addMissing(path)
}

// Watched returns whether path is watched, either directly or
// through its directory while it does not exist.
func (w *Watcher) Watched(path string) bool {
	path = Normalize(path)
	return w.listed(path) || w.isMissing(path)
}

// listed returns whether path has a watch of its own.
func (w *Watcher) listed(path string) bool {
	return slices.Contains(w.fsw.WatchList(), path)
}

func (w *Watcher) isMissing(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.missing[path]
	return ok
}

func (w *Watcher) isFile(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.files[path]
	return ok
}

// addMissing watches the directory of path until path is created.
func (w *Watcher) addMissing(path string) error {
	dir := filepath.Dir(path)
	w.mu.Lock()
	_, ok := w.missing[path]
	first := w.dirs[dir] == 0
	if !ok {
		w.missing[path] = struct{}{}
		w.dirs[dir]++
	}
	w.mu.Unlock()
	if ok {
		return nil
	}
	if first {
		if err := w.fsw.Add(dir); err != nil {
			w.forget(path)
			return err
		}
	}
	slog.Debug("watching directory for missing shader file", "path", path)
	// it may have been created before the directory watch existed
	if _, err := os.Stat(path); err == nil {
		w.created(path)
	}
	return nil
}

// forget stops waiting for path to be created. It reports whether
// path was missing, and whether its directory is no longer needed.
func (w *Watcher) forget(path string) (found, dropDir bool) {
	dir := filepath.Dir(path)
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.missing[path]; !ok {
		return false, false
	}
	delete(w.missing, path)
	w.dirs[dir]--
	if w.dirs[dir] > 0 {
		return true, false
	}
	delete(w.dirs, dir)
	return true, true
}

// created moves the watch of a missing file from its directory
// to the file itself and queues the file.
func (w *Watcher) created(path string) {
	if err := w.fsw.Add(path); err != nil {
		// removed again before it could be watched
		return
	}
	found, dropDir := w.forget(path)
	if !found {
		return
	}
	if dropDir {
		errors.Log(w.fsw.Remove(filepath.Dir(path)))
	}
	w.notify(path)
}

// Drain returns the queued paths in the order they changed,
// each once, and empties the queue.
func (w *Watcher) Drain() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	ps := w.pending
	w.pending = nil
	return ps
}

// Close stops the watcher goroutine and releases the watches.
func (w *Watcher) Close() error {
	w.cancel()
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)) {
				continue
			}
			path := Normalize(ev.Name)
			switch {
			case w.isMissing(path):
				if !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
					w.created(path)
				}
			case w.isFile(path):
				w.changed(path)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			errors.Log(err)
		}
	}
}

func (w *Watcher) changed(path string) {
	slog.Debug("shader file changed", "path", path)
	w.rearm(path)
	w.notify(path)
}

func (w *Watcher) notify(path string) {
	w.queue(path)
	if w.onChange != nil {
		w.onChange()
	}
}

// rearm re-adds the watch on path until it shows up in the watch list,
// backing off between attempts. It gives up with a warning, and if the
// file is gone it waits for the file to be created again.
func (w *Watcher) rearm(path string) bool {
	op := func() error {
		if w.listed(path) {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			return err
		}
		if !w.listed(path) {
			return errNotWatched
		}
		return nil
	}
	err := backoff.Retry(op, w.retry.backOff(w.ctx))
	if err == nil {
		return true
	}
	if w.ctx.Err() != nil {
		return false
	}
	alert.Warning(fmt.Sprintf("shaders: could not re-watch %s after %v: %v", path, w.retry.Timeout, err))
	if _, serr := os.Stat(path); errors.Is(serr, fs.ErrNotExist) {
		errors.Log(w.addMissing(path))
	}
	return false
}

func (w *Watcher) queue(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !slices.Contains(w.pending, path) {
		w.pending = append(w.pending, path)
	}
}
