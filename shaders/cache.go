// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/colorgrade/alert"
	"cogentcore.org/colorgrade/base/errors"
	"cogentcore.org/colorgrade/gl"
)

// Cache compiles shaders and links programs on first fetch and keeps
// them until a file they were built from changes. It must only be used
// from the thread that owns the GL context.
//
// A shader that fails to compile, or a program that fails to link,
// is reported as a warning and cached anyway, so it is not retried
// until one of its files changes.
type Cache struct {
	fns gl.Functions

	shaders  map[string]uint32
	programs map[string]uint32

	// files maps a normalized path to the keys built from it.
	files map[string]map[string]struct{}

	// keyFiles maps a key to the paths it was built from.
	keyFiles map[string][]string

	// locations caches uniform locations per program key.
	locations map[string]map[string]int32

	// bound is the program last made current by the cache.
	bound uint32

	watcher *Watcher
}

// NewCache returns a new cache that does not watch files.
// Call [Cache.Watch] to start watching.
func NewCache(fns gl.Functions) *Cache {
	return &Cache{
		fns:       fns,
		shaders:   map[string]uint32{},
		programs:  map[string]uint32{},
		files:     map[string]map[string]struct{}{},
		keyFiles:  map[string][]string{},
		locations: map[string]map[string]int32{},
	}
}

// Watch starts watching every file that goes into a cached entry.
// onChange, if non-nil, is called from the watcher goroutine when a
// change is queued, and may be used to wake up the event loop so
// that it calls [Cache.Poll].
func (c *Cache) Watch(retry Retry, onChange func()) error {
	if c.watcher != nil {
		return nil
	}
	w, err := NewWatcher(retry, onChange)
	if err != nil {
		return err
	}
	c.watcher = w
	for f := range c.files {
		c.watch(f)
	}
	return nil
}

func (c *Cache) watch(path string) {
	if c.watcher == nil {
		return
	}
	if err := c.watcher.Add(path); err != nil {
		slog.Warn("shaders: not watching file", "path", path, "err", err)
	}
}

// Watched returns whether path is being watched.
func (c *Cache) Watched(path string) bool {
	return c.watcher != nil && c.watcher.Watched(path)
}

// Poll evicts every entry built from a file that changed since the
// last call. It is called at the start of every fetch.
func (c *Cache) Poll() {
	if c.watcher == nil {
		return
	}
	for _, p := range c.watcher.Drain() {
		c.FileChanged(p)
	}
}

// FileChanged deletes every shader and program built from path and
// forgets them. They are rebuilt on their next fetch.
func (c *Cache) FileChanged(path string) {
	path = Normalize(path)
	keys := c.files[path]
	if len(keys) == 0 {
		return
	}
	slog.Info("reloading shaders", "path", path, "entries", len(keys))
	for key := range keys {
		c.evict(key)
	}
}

func (c *Cache) evict(key string) {
	if id, ok := c.shaders[key]; ok {
		c.fns.DeleteShader(id)
		delete(c.shaders, key)
	}
	if id, ok := c.programs[key]; ok {
		c.fns.DeleteProgram(id)
		delete(c.programs, key)
		delete(c.locations, key)
		if c.bound == id {
			c.bound = 0
		}
	}
	for _, f := range c.keyFiles[key] {
		delete(c.files[f], key)
		if len(c.files[f]) == 0 {
			delete(c.files, f)
		}
	}
	delete(c.keyFiles, key)
}

func (c *Cache) associate(key string, files []string) {
	c.keyFiles[key] = files
	for _, f := range files {
		ks := c.files[f]
		if ks == nil {
			ks = map[string]struct{}{}
			c.files[f] = ks
		}
		ks[key] = struct{}{}
		c.watch(f)
	}
}

// Shader returns the native id of the compiled shader, compiling it
// if it is not cached.
func (c *Cache) Shader(s Shader) uint32 {
	c.Poll()
	return c.shader(s)
}

func (c *Cache) shader(s Shader) uint32 {
	key := ShaderKey(s)
	if id, ok := c.shaders[key]; ok {
		return id
	}
	path := Normalize(s.Path)
	src, files, err := Include(path)
	if err != nil {
		alert.Warning(fmt.Sprintf("shaders: could not read %s: %v", path, err))
		src = ""
	}
	id := c.fns.CreateShader(gl.Enum(s.Stage))
	c.fns.ShaderSource(id, src)
	c.fns.CompileShader(id)
	if c.fns.GetShaderi(id, gl.COMPILE_STATUS) == gl.FALSE {
		alert.Warning(fmt.Sprintf("shaders: compiling %s shader %s failed:\n%s", s.Stage, path, c.fns.GetShaderInfoLog(id)))
	} else {
		slog.Debug("compiled shader", "path", path, "stage", s.Stage, "id", id)
	}
	c.shaders[key] = id
	c.associate(key, files)
	return id
}

// Program returns the native id of the linked program for the
// ordered list of shaders, compiling and linking as needed.
func (c *Cache) Program(shaders ...Shader) uint32 {
	c.Poll()
	return c.program(ProgramKey(shaders), shaders)
}

func (c *Cache) program(key string, shaders []Shader) uint32 {
	if id, ok := c.programs[key]; ok {
		return id
	}
	id := c.fns.CreateProgram()
	var files []string
	for _, s := range shaders {
		c.fns.AttachShader(id, c.shader(s))
		for _, f := range c.keyFiles[ShaderKey(s)] {
			if !slices.Contains(files, f) {
				files = append(files, f)
			}
		}
	}
	c.fns.LinkProgram(id)
	c.fns.ValidateProgram(id)
	name := programName(shaders)
	if c.fns.GetProgrami(id, gl.VALIDATE_STATUS) == gl.FALSE {
		alert.Warning(fmt.Sprintf("shaders: validating program %s failed:\n%s", name, c.fns.GetProgramInfoLog(id)))
	}
	if c.fns.GetProgrami(id, gl.LINK_STATUS) == gl.FALSE {
		alert.Warning(fmt.Sprintf("shaders: linking program %s failed:\n%s", name, c.fns.GetProgramInfoLog(id)))
	} else {
		slog.Debug("linked program", "program", name, "id", id)
	}
	c.programs[key] = id
	c.associate(key, files)
	return id
}

func programName(shaders []Shader) string {
	names := make([]string, len(shaders))
	for i, s := range shaders {
		names[i] = s.String()
	}
	return fmt.Sprint(names)
}

// use makes the program current unless the cache already did.
func (c *Cache) use(id uint32) {
	if c.bound == id {
		return
	}
	c.fns.UseProgram(id)
	c.bound = id
}

// HasShader returns whether the shader is cached.
func (c *Cache) HasShader(s Shader) bool {
	_, ok := c.shaders[ShaderKey(s)]
	return ok
}

// HasProgram returns whether the program for the shaders is cached.
func (c *Cache) HasProgram(shaders ...Shader) bool {
	_, ok := c.programs[ProgramKey(shaders)]
	return ok
}

// Len returns the number of cached shaders and programs.
func (c *Cache) Len() (shaders, programs int) {
	return len(c.shaders), len(c.programs)
}

// Files returns the files the entry with the given key was built from.
func (c *Cache) Files(key string) []string {
	return slices.Clone(c.keyFiles[key])
}

// Close deletes every cached shader and program and stops watching.
func (c *Cache) Close() {
	for _, id := range c.programs {
		c.fns.DeleteProgram(id)
	}
	for _, id := range c.shaders {
		c.fns.DeleteShader(id)
	}
	c.shaders = map[string]uint32{}
	c.programs = map[string]uint32{}
	c.files = map[string]map[string]struct{}{}
	c.keyFiles = map[string][]string{}
	c.locations = map[string]map[string]int32{}
	c.bound = 0
	if c.watcher != nil {
		errors.Log(c.watcher.Close())
		c.watcher = nil
	}
}
