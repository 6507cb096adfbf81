// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colorgrade shows images with a live color grade applied.
// The grading shaders are reloaded when their files change.
//
// Keys: space shows the next image, r reloads the grading from the
// config file, s exports the graded image, h prints the luma
// histogram and escape quits.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/pflag"

	"cogentcore.org/colorgrade/alert"
	"cogentcore.org/colorgrade/base/errors"
	"cogentcore.org/colorgrade/buffers"
	"cogentcore.org/colorgrade/config"
	"cogentcore.org/colorgrade/gl/glcore"
	"cogentcore.org/colorgrade/grading"
	"cogentcore.org/colorgrade/imagex"
	"cogentcore.org/colorgrade/shaders"
)

func init() {
	// GL calls must all come from the main thread
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "colorgrade:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		cfgFile  string
		v, vv, q bool
	)
	pflag.StringVarP(&cfgFile, "config", "c", "", "the config file (default "+config.DefaultPath()+")")
	pflag.BoolVarP(&v, "verbose", "v", false, "log info messages")
	pflag.BoolVar(&vv, "vv", false, "log debug messages")
	pflag.BoolVarP(&q, "quiet", "q", false, "only log errors")
	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: colorgrade [flags] [images...]")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	level := alert.LevelFromFlags(vv, v, q)
	if !v && !vv && !q {
		if lv, err := cfg.Log.SlogLevel(); errors.Log(err) == nil {
			level = lv
		}
	}
	slog.SetDefault(slog.New(alert.NewHandler(os.Stderr, level)))
	sink, err := alert.SinkFromName(cfg.Log.Sink, os.Stderr, level)
	if err != nil {
		return err
	}
	alert.SetDefault(alert.New(sink))
	cfg.Images = append(cfg.Images, pflag.Args()...)

	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	win, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return err
	}
	defer win.Destroy()
	win.MakeContextCurrent()
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	}

	fns, err := glcore.New()
	if err != nil {
		return err
	}
	version, renderer := fns.Version()
	slog.Info("opengl", "version", version, "renderer", renderer)

	cache := shaders.NewCache(fns)
	defer cache.Close()
	if cfg.Watch.Enabled {
		errors.Log(cache.Watch(cfg.Watch.Retry(), glfw.PostEmptyEvent))
	}

	pv := grading.NewPreview(fns, cache,
		shaders.NewShader(cfg.Shaders.VertexPath()),
		shaders.NewShader(cfg.Shaders.FragmentPath()))
	defer pv.Release()
	for _, fn := range cfg.Images {
		img, _, err := imagex.Open(fn)
		if errors.Log(err) != nil {
			continue
		}
		pv.AddImage(buffers.FromImage(fns, img, false, true))
	}
	vw := &viewer{cfgFile: cfgFile, cfg: cfg, preview: pv}
	vw.loadLUT()
	pv.Set(cfg.Grading)
	pv.Resize(win.GetFramebufferSize())
	pv.Redraw = glfw.PostEmptyEvent

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		pv.Resize(w, h)
	})
	win.SetKeyCallback(vw.key)

	for !win.ShouldClose() {
		cache.Poll()
		pv.Draw()
		win.SwapBuffers()
		glfw.WaitEvents()
	}
	return nil
}
