// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grading

import (
	"encoding/binary"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/colorgrade/alert"
	"cogentcore.org/colorgrade/buffers"
	"cogentcore.org/colorgrade/formats"
	"cogentcore.org/colorgrade/gl"
	"cogentcore.org/colorgrade/gl/gltest"
	"cogentcore.org/colorgrade/shaders"
)

var assets = filepath.Join("..", "assets", "shaders")

func newPreview(t *testing.T) (*gltest.Device, *Preview) {
	d := gltest.New()
	cache := shaders.NewCache(d)
	t.Cleanup(cache.Close)
	p := NewPreview(d, cache,
		shaders.NewShader(filepath.Join(assets, "fullscreen.vert")),
		shaders.NewShader(filepath.Join(assets, "grading.frag")))
	t.Cleanup(p.Release)
	return d, p
}

func testImage(c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := range 2 {
		for x := range 4 {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestPreviewDraw(t *testing.T) {
	rec := alert.Capture(t)
	d, p := newPreview(t)
	p.AddImage(buffers.FromImage(d, testImage(color.RGBA{255, 0, 0, 255}), false, true))
	p.Resize(640, 360)
	s := DefaultSettings()
	s.Lift = mgl32.Vec3{0.1, 0, 0}
	s.Contrast = 1.5
	p.Set(s)
	require.True(t, p.Dirty())
	p.Draw()
	assert.False(t, p.Dirty())
	assert.Empty(t, rec.Records(), "the grading shaders compile and every uniform is active")

	assert.Equal(t, 1, d.Draws)
	gp := d.Program()
	require.NotNil(t, gp)
	assert.True(t, gp.Linked)
	assert.Equal(t, []float32{640, 360}, gp.Uniform("uResolution"))
	assert.Equal(t, []float32{0.1, 0, 0}, gp.Uniform("uLift"))
	assert.Equal(t, []float32{1.5}, gp.Uniform("uContrast"))
	assert.Equal(t, []float32{0.435}, gp.Uniform("uContrastPivot"))
	assert.Equal(t, []float32{1}, gp.Uniform("uLUTAmount"))
	assert.Equal(t, []int32{imageUnit}, gp.Uniform("uImage"))
	assert.Equal(t, []int32{lutUnit}, gp.Uniform("uLUT"))
	temp := gp.Uniform("uTemperature").([]float32)
	assert.InDelta(t, 1, temp[0], 1e-6)
	assert.InDelta(t, 252.0/255, temp[2], 1e-6)

	assert.Equal(t, p.Image().ID(), d.BoundAt(imageUnit, gl.TEXTURE_2D))
	assert.Equal(t, p.lut.ID(), d.BoundAt(lutUnit, gl.TEXTURE_3D))
	assert.Equal(t, p.histogram.ID(), d.BoundBase(gl.SHADER_STORAGE_BUFFER, histogramBinding))
	assert.Equal(t, [4]int{0, 0, 640, 360}, d.View)
}

func TestPreviewRedraw(t *testing.T) {
	_, p := newPreview(t)
	redraws := 0
	p.Redraw = func() { redraws++ }
	p.Set(DefaultSettings())
	p.NextImage()
	assert.Equal(t, 1, redraws, "NextImage without images does nothing")
	assert.Nil(t, p.Image())

	d := gltest.New()
	p.AddImage(buffers.NewTexture2D(d, formats.RGBA8, 1, 1, nil))
	p.AddImage(buffers.NewTexture2D(d, formats.RGBA8, 1, 1, nil))
	p.NextImage()
	assert.Equal(t, 1, p.Index())
	p.NextImage()
	assert.Equal(t, 0, p.Index())
	assert.Equal(t, 5, redraws)
}

func TestPreviewSetClamps(t *testing.T) {
	_, p := newPreview(t)
	s := DefaultSettings()
	s.Saturation = 5
	p.Set(s)
	assert.Equal(t, float32(2), p.Settings().Saturation)
}

func TestPreviewLUT(t *testing.T) {
	d, p := newPreview(t)
	p.Draw()
	old := p.lut.ID()
	p.SetLUT(IdentityLUT(17))
	assert.NotContains(t, d.Textures, old)
	p.Draw()
	tex := d.Textures[p.lut.ID()]
	require.NotNil(t, tex)
	img := tex.Images[gltest.Level{Target: gl.TEXTURE_3D, Level: 0}]
	require.NotNil(t, img)
	assert.Equal(t, gl.Enum(gl.RGB32F), img.Internal)
	assert.Equal(t, 17, img.Depth)
	assert.Len(t, img.Data, 17*17*17*3*4)
}

func TestPreviewExport(t *testing.T) {
	d, p := newPreview(t)
	p.Resize(100, 50)
	img := p.Export(8, 4)
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 8, 4), img.Bounds())
	assert.Equal(t, 1, d.Draws)
	assert.Equal(t, []float32{8, 4}, d.Program().Uniform("uResolution"))
	assert.Equal(t, uint32(0), d.Bound(gl.FRAMEBUFFER))
	assert.Equal(t, [4]int{0, 0, 100, 50}, d.View)
	assert.Empty(t, d.Framebuffers)

	rec := alert.Capture(t)
	assert.Nil(t, p.Export(0, 4))
	assert.Equal(t, 1, rec.Count(alert.SeverityError))
}

func TestPreviewHistogram(t *testing.T) {
	d, p := newPreview(t)
	p.Draw()
	assert.Equal(t, [HistogramBins]uint32{}, p.Histogram())

	// stand in for the shader's atomic counts
	buf := d.Buffers[p.histogram.ID()]
	require.NotNil(t, buf)
	require.Len(t, buf.Data, 4*HistogramBins)
	binary.NativeEndian.PutUint32(buf.Data[4*10:], 7)
	binary.NativeEndian.PutUint32(buf.Data[4*255:], 3)
	h := p.Histogram()
	assert.Equal(t, uint32(7), h[10])
	assert.Equal(t, uint32(3), h[255])

	// every draw starts from zero
	p.Draw()
	assert.Equal(t, [HistogramBins]uint32{}, p.Histogram())
}
