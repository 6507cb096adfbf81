// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"cogentcore.org/colorgrade/alert"
	"cogentcore.org/colorgrade/base/errors"
	"cogentcore.org/colorgrade/config"
	"cogentcore.org/colorgrade/grading"
	"cogentcore.org/colorgrade/imagex"
)

// viewer handles the keys of the preview window.
type viewer struct {
	cfgFile string
	cfg     *config.Config
	preview *grading.Preview
}

func (vw *viewer) key(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		w.SetShouldClose(true)
	case glfw.KeySpace:
		vw.preview.NextImage()
	case glfw.KeyR:
		vw.reload()
	case glfw.KeyS:
		vw.export()
	case glfw.KeyH:
		fmt.Println(histogramText(vw.preview.Histogram(), 32, 8))
	}
}

// reload rereads the grading and LUT from the config file.
func (vw *viewer) reload() {
	cfg, err := config.Load(vw.cfgFile)
	if err != nil {
		alert.Warning(fmt.Sprintf("colorgrade: could not reload the config: %v", err))
		return
	}
	vw.cfg.Grading, vw.cfg.LUT = cfg.Grading, cfg.LUT
	vw.loadLUT()
	vw.preview.Set(cfg.Grading)
	slog.Info("reloaded grading", "config", vw.cfgFile)
}

func (vw *viewer) loadLUT() {
	if vw.cfg.LUT == "" {
		vw.preview.SetLUT(grading.IdentityLUT(2))
		return
	}
	l, err := grading.OpenCube(vw.cfg.LUT)
	if errors.Log(err) != nil {
		return
	}
	vw.preview.SetLUT(l)
}

// export renders the current image at its own size and saves it.
func (vw *viewer) export() {
	w, h := vw.preview.Size()
	if img := vw.preview.Image(); img != nil {
		w, h = img.Width(), img.Height()
	}
	out := vw.preview.Export(w, h)
	if out == nil {
		return
	}
	fn := exportName(vw.cfg.ExportDir, time.Now())
	if err := imagex.Save(out, fn); err != nil {
		alert.Warning(fmt.Sprintf("colorgrade: could not export: %v", err))
		return
	}
	slog.Info("exported", "file", fn)
}

func exportName(dir string, t time.Time) string {
	return filepath.Join(dir, "colorgrade-"+t.Format("20060102-150405")+".png")
}

var blocks = []rune(" ▁▂▃▄▅▆▇█")

// histogramText draws the histogram as a bar chart of the given
// number of columns and rows of block characters.
func histogramText(h [grading.HistogramBins]uint32, cols, rows int) string {
	sums := make([]uint64, cols)
	per := grading.HistogramBins / cols
	var peak uint64
	for i, n := range h {
		c := min(i/per, cols-1)
		sums[c] += uint64(n)
		peak = max(peak, sums[c])
	}
	var sb strings.Builder
	levels := uint64(len(blocks) - 1)
	for r := rows - 1; r >= 0; r-- {
		for _, s := range sums {
			fill := uint64(0)
			if peak > 0 {
				fill = s * levels * uint64(rows) / peak
			}
			cell := min(max(int64(fill)-int64(uint64(r)*levels), 0), int64(levels))
			sb.WriteRune(blocks[cell])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
