// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grading

import (
	"encoding/binary"
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/colorgrade/alert"
	"cogentcore.org/colorgrade/buffers"
	"cogentcore.org/colorgrade/formats"
	"cogentcore.org/colorgrade/gl"
	"cogentcore.org/colorgrade/handle"
	"cogentcore.org/colorgrade/shaders"
)

// HistogramBins is the number of luma bins the grading shader counts into.
const HistogramBins = 256

// Texture units and storage bindings used by the grading shader.
const (
	imageUnit        = 0
	lutUnit          = 1
	histogramBinding = 0
)

// Preview renders the current image with [Settings] applied, as one
// fullscreen triangle drawn by the grading program. It must only be
// used on the thread that owns the GL context.
type Preview struct {
	fns     gl.Functions
	program *shaders.Program

	images []*buffers.Texture
	index  int

	lut       *buffers.Texture
	histogram *buffers.ShaderStorageBuffer
	vao       handle.Handle

	settings      Settings
	width, height int
	dirty         bool

	// Redraw, if set, is called whenever the preview needs to be drawn
	// again, for example to post an empty event to the window loop.
	Redraw func()
}

// NewPreview returns a preview that draws with the program made of
// the given vertex and fragment shaders. It starts with the default
// settings and an identity LUT.
func NewPreview(fns gl.Functions, cache *shaders.Cache, vertex, fragment shaders.Shader) *Preview {
	p := &Preview{
		fns:       fns,
		program:   cache.NewProgram(vertex, fragment),
		histogram: buffers.NewStorageBuffer(fns, 4*HistogramBins, nil),
		settings:  DefaultSettings(),
		dirty:     true,
	}
	p.vao = handle.New(fns.GenVertexArray, fns.DeleteVertexArray)
	p.SetLUT(IdentityLUT(2))
	return p
}

// Program returns the grading program.
func (p *Preview) Program() *shaders.Program { return p.program }

func (p *Preview) changed() {
	p.dirty = true
	if p.Redraw != nil {
		p.Redraw()
	}
}

// Dirty returns whether something changed since the last [Preview.Draw].
func (p *Preview) Dirty() bool { return p.dirty }

// Set stores the settings, clamped to their ranges, and requests a redraw.
func (p *Preview) Set(s Settings) {
	p.settings = s.Clamp()
	p.changed()
}

// Settings returns the current settings.
func (p *Preview) Settings() Settings { return p.settings }

// AddImage adds an image to the ones the preview cycles through.
// The preview releases it.
func (p *Preview) AddImage(tex *buffers.Texture) {
	p.images = append(p.images, tex)
	p.changed()
}

// Image returns the image being shown, or nil if there is none.
func (p *Preview) Image() *buffers.Texture {
	if len(p.images) == 0 {
		return nil
	}
	return p.images[p.index]
}

// Index returns the index of the image being shown.
func (p *Preview) Index() int { return p.index }

// NextImage shows the next image, wrapping around.
func (p *Preview) NextImage() {
	if len(p.images) == 0 {
		return
	}
	p.index = (p.index + 1) % len(p.images)
	p.changed()
}

// SetLUT replaces the 3D LUT.
func (p *Preview) SetLUT(l *LUT) {
	if p.lut != nil {
		p.lut.Release()
	}
	p.lut = l.Texture(p.fns)
	slog.Debug("preview LUT", "title", l.Title, "size", l.Size)
	p.changed()
}

// Resize sets the size of the window surface and the viewport.
func (p *Preview) Resize(width, height int) {
	p.width, p.height = width, height
	p.fns.Viewport(0, 0, width, height)
	p.changed()
}

// Size returns the size of the window surface.
func (p *Preview) Size() (width, height int) { return p.width, p.height }

// Draw renders the preview into the bound framebuffer.
func (p *Preview) Draw() {
	p.draw(p.width, p.height)
	p.dirty = false
}

func (p *Preview) draw(width, height int) {
	p.fns.ClearColor(0, 0, 0, 1)
	p.fns.Clear(gl.COLOR_BUFFER_BIT)

	pg := p.program
	pg.Bind()
	pg.SetFloat("uResolution", float32(width), float32(height))
	if img := p.Image(); img != nil {
		pg.SetTexture("uImage", imageUnit, img)
	}
	pg.SetTexture("uLUT", lutUnit, p.lut)

	s := p.settings
	pg.SetVec3("uLift", s.Lift)
	pg.SetVec3("uGamma", s.Gamma)
	pg.SetVec3("uGain", s.Gain)
	pg.SetVec3("uOffset", s.Offset)
	pg.SetFloat("uContrast", s.Contrast)
	pg.SetFloat("uContrastPivot", s.Pivot)
	pg.SetFloat("uSaturation", s.Saturation)
	pg.SetFloat("uHue", s.HueShift)
	pg.SetVec3("uTemperature", kelvinVec(s.Temperature))
	pg.SetFloat("uUnsharpMask", s.UnsharpMask)
	pg.SetFloat("uLUTAmount", s.LUTAmount)

	p.histogram.SetData(make([]byte, 4*HistogramBins))
	p.histogram.Bind(histogramBinding)

	p.fns.BindVertexArray(p.vao.ID())
	p.fns.DrawArrays(gl.TRIANGLES, 0, 3)
	p.fns.BindVertexArray(0)
}

// Export renders the preview offscreen at the given size and reads
// it back. It returns nil if the offscreen target can not be made.
func (p *Preview) Export(width, height int) *image.RGBA {
	if !alert.Assert(width > 0 && height > 0, fmt.Sprintf("grading: export size %dx%d", width, height)) {
		return nil
	}
	fb := buffers.NewFramebuffer(p.fns, formats.RGBA8, width, height, false)
	defer fb.Release()
	if !fb.Complete() {
		alert.Error("grading: export framebuffer is not complete")
		fb.Unbind()
		return nil
	}
	fb.Bind()
	p.draw(width, height)
	img := fb.Color.ToImage(0)
	fb.Unbind()
	p.fns.Viewport(0, 0, p.width, p.height)
	return img
}

// Histogram returns the luma histogram counted by the last draw.
func (p *Preview) Histogram() [HistogramBins]uint32 {
	var h [HistogramBins]uint32
	b := p.histogram.Read()
	for i := range h {
		h[i] = binary.NativeEndian.Uint32(b[4*i:])
	}
	return h
}

// Release deletes every GPU object the preview owns.
func (p *Preview) Release() {
	for _, img := range p.images {
		img.Release()
	}
	p.images = nil
	p.lut.Release()
	p.histogram.Release()
	p.vao.Release()
}
