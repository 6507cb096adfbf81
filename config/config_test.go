// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
images = ["shots/01.png", "/abs/02.png"]
lut = "looks/warm.cube"

[window]
width = 640
height = 360

[shaders]
fragment = "mine.frag"

[watch]
max = "250ms"

[log]
level = "debug"
sink = "console"

[grading]
lift = [0.1, 0.0, 0.0]
contrast = 1.25
`

func clearEnv(t *testing.T) {
	for _, e := range []string{EnvConfig, EnvAlerts, EnvLog, EnvShaders} {
		t.Setenv(e, "")
	}
}

func TestDefaults(t *testing.T) {
	c := Defaults()
	assert.Equal(t, 1280, c.Window.Width)
	assert.Equal(t, filepath.Join("assets", "shaders", "grading.frag"), c.Shaders.FragmentPath())
	assert.Equal(t, 5*time.Millisecond, c.Watch.Retry().Initial)
	assert.Equal(t, 2*time.Second, c.Watch.Retry().Timeout)
	assert.Equal(t, float32(66), c.Grading.Temperature)
	lv, err := c.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lv)
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	fn := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(fn, []byte(testConfig), 0o644))

	c, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, 640, c.Window.Width)
	assert.Equal(t, "colorgrade", c.Window.Title)
	assert.Equal(t, []string{filepath.Join(dir, "shots", "01.png"), "/abs/02.png"}, c.Images)
	assert.Equal(t, filepath.Join(dir, "looks", "warm.cube"), c.LUT)
	assert.Equal(t, filepath.Join(dir, "assets", "shaders", "mine.frag"), c.Shaders.FragmentPath())
	assert.Equal(t, filepath.Join(dir, "assets", "shaders", "fullscreen.vert"), c.Shaders.VertexPath())
	assert.Equal(t, 250*time.Millisecond, c.Watch.Retry().Max)
	assert.Equal(t, 5*time.Millisecond, c.Watch.Retry().Initial)
	assert.True(t, c.Watch.Enabled)
	assert.Equal(t, "console", c.Log.Sink)
	assert.Equal(t, mgl32.Vec3{0.1, 0, 0}, c.Grading.Lift)
	assert.Equal(t, float32(1.25), c.Grading.Contrast)
	assert.Equal(t, float32(1), c.Grading.Saturation)
	lv, err := c.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lv)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	fn := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(fn, []byte("[window]\nwdith = 3\n"), 0o644))
	_, err = Load(fn)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(fn, []byte("[watch]\nmax = \"soon\"\n"), 0o644))
	_, err = Load(fn)
	assert.Error(t, err)
}

func TestLoadDefaultPath(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "colorgrade", FileName), DefaultPath())

	// a missing default file is fine
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults().Window, c.Window)

	t.Setenv(EnvConfig, filepath.Join(dir, "other.toml"))
	assert.Equal(t, filepath.Join(dir, "other.toml"), DefaultPath())
}

func TestEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAlerts, "Dialog")
	t.Setenv(EnvLog, "ERROR")
	t.Setenv(EnvShaders, "/srv/shaders")
	c, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	assert.Error(t, err)
	assert.Nil(t, c)

	c = Defaults()
	c.Env()
	assert.Equal(t, "dialog", c.Log.Sink)
	assert.Equal(t, "error", c.Log.Level)
	assert.Equal(t, "/srv/shaders/grading.frag", c.Shaders.FragmentPath())
}

func TestSave(t *testing.T) {
	clearEnv(t)
	fn := filepath.Join(t.TempDir(), "sub", FileName)
	c := Defaults()
	c.Window.Width = 99
	c.Watch.Max = Duration(time.Second)
	c.Grading.Gain = mgl32.Vec3{0.5, 0.25, 0}
	require.NoError(t, c.Save(fn))

	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Contains(t, string(b), "1s")

	got, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, 99, got.Window.Width)
	assert.Equal(t, time.Second, got.Watch.Retry().Max)
	assert.Equal(t, c.Grading, got.Grading)
}
