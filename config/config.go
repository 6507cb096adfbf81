// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the colorgrade
// viewer, read from a TOML file with environment overrides.
package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"cogentcore.org/colorgrade/base/errors"
	"cogentcore.org/colorgrade/grading"
	"cogentcore.org/colorgrade/shaders"
)

// Environment variables that override the config file.
const (
	EnvConfig  = "COLORGRADE_CONFIG"
	EnvAlerts  = "COLORGRADE_ALERTS"
	EnvLog     = "COLORGRADE_LOG"
	EnvShaders = "COLORGRADE_SHADERS"
)

// FileName is the name of the config file in the config directory.
const FileName = "config.toml"

// Config is the main config struct that contains all of
// the configuration options for the viewer.
type Config struct {

	// the initial window
	Window Window `toml:"window"`

	// the shader files the preview is drawn with
	Shaders Shaders `toml:"shaders"`

	// how shader files are watched for changes
	Watch Watch `toml:"watch"`

	// logging and alerts
	Log Log `toml:"log"`

	// the images the preview cycles through
	Images []string `toml:"images"`

	// an optional .cube 3D LUT
	LUT string `toml:"lut"`

	// the directory exported images are written to
	ExportDir string `toml:"export_dir"`

	// the initial grading
	Grading grading.Settings `toml:"grading"`
}

type Window struct {

	// [def: 1280]
	Width int `toml:"width"`

	// [def: 800]
	Height int `toml:"height"`

	// [def: colorgrade]
	Title string `toml:"title"`

	// whether to wait for vertical sync between frames
	VSync bool `toml:"vsync"`
}

type Shaders struct {

	// [def: assets/shaders] the directory relative shader paths are in
	Dir string `toml:"dir"`

	// [def: fullscreen.vert]
	Vertex string `toml:"vertex"`

	// [def: grading.frag]
	Fragment string `toml:"fragment"`
}

// VertexPath returns the vertex shader path, joined to Dir if relative.
func (s Shaders) VertexPath() string { return s.join(s.Vertex) }

// FragmentPath returns the fragment shader path, joined to Dir if relative.
func (s Shaders) FragmentPath() string { return s.join(s.Fragment) }

func (s Shaders) join(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.Dir, p)
}

type Watch struct {

	// [def: true] whether to reload shaders when their files change
	Enabled bool `toml:"enabled"`

	// [def: 5ms] the first delay between attempts to re-watch a replaced file
	Initial Duration `toml:"initial"`

	// [def: 100ms] the longest delay between attempts
	Max Duration `toml:"max"`

	// [def: 2s] how long to keep trying
	Timeout Duration `toml:"timeout"`
}

// Retry returns the watch settings as a shader watcher backoff.
func (w Watch) Retry() shaders.Retry {
	return shaders.Retry{Initial: time.Duration(w.Initial), Max: time.Duration(w.Max), Timeout: time.Duration(w.Timeout)}
}

type Log struct {

	// [def: warn] the log level: debug, info, warn or error
	Level string `toml:"level"`

	// [def: auto] where alerts go: console, dialog, debugger or auto
	Sink string `toml:"sink"`
}

// SlogLevel returns the parsed log level.
func (l Log) SlogLevel() (slog.Level, error) {
	var lv slog.Level
	err := lv.UnmarshalText([]byte(l.Level))
	return lv, err
}

// Duration is a [time.Duration] written as a string like "100ms" in TOML.
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Defaults returns the default config.
func Defaults() *Config {
	r := shaders.DefaultRetry()
	return &Config{
		Window:  Window{Width: 1280, Height: 800, Title: "colorgrade", VSync: true},
		Shaders: Shaders{Dir: filepath.Join("assets", "shaders"), Vertex: "fullscreen.vert", Fragment: "grading.frag"},
		Watch:   Watch{Enabled: true, Initial: Duration(r.Initial), Max: Duration(r.Max), Timeout: Duration(r.Timeout)},
		Log:     Log{Level: "warn", Sink: "auto"},
		Grading: grading.DefaultSettings(),
	}
}

// Dir returns the config directory, $XDG_CONFIG_HOME/colorgrade
// or ~/.config/colorgrade.
func Dir() string {
	if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
		return filepath.Join(x, "colorgrade")
	}
	return filepath.Join(errors.Log1(homedir.Expand("~/.config")), "colorgrade")
}

// DefaultPath returns the config file used when none is given:
// $COLORGRADE_CONFIG, or [FileName] in [Dir].
func DefaultPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return filepath.Join(Dir(), FileName)
}

// Load returns the defaults overridden by the TOML file and then by
// the environment. An empty filename loads [DefaultPath], which may
// be missing. Relative paths in the file are relative to its directory.
func Load(filename string) (*Config, error) {
	c := Defaults()
	optional := filename == ""
	if optional {
		filename = DefaultPath()
	}
	filename, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if err := c.decode(b); err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		if err := c.resolve(filepath.Dir(filename)); err != nil {
			return nil, err
		}
	case optional && errors.Is(err, fs.ErrNotExist):
		slog.Debug("no config file", "path", filename)
	default:
		return nil, err
	}
	c.Env()
	return c, nil
}

func (c *Config) decode(b []byte) error {
	d := toml.NewDecoder(bytes.NewReader(b))
	d.DisallowUnknownFields()
	return d.Decode(c)
}

// resolve expands ~ in every path and makes relative ones relative to dir.
func (c *Config) resolve(dir string) error {
	var err error
	fix := func(p *string) {
		if *p == "" || err != nil {
			return
		}
		var e error
		*p, e = homedir.Expand(*p)
		if e != nil {
			err = e
			return
		}
		if !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
	fix(&c.Shaders.Dir)
	fix(&c.LUT)
	fix(&c.ExportDir)
	for i := range c.Images {
		fix(&c.Images[i])
	}
	return err
}

// Env applies the environment overrides.
func (c *Config) Env() {
	if v := os.Getenv(EnvAlerts); v != "" {
		c.Log.Sink = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLog); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvShaders); v != "" {
		c.Shaders.Dir = errors.Log1(homedir.Expand(v))
	}
}

// Save writes the config to the given file as TOML.
func (c *Config) Save(filename string) error {
	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o644)
}
