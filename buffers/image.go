// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffers

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"

	"cogentcore.org/colorgrade/alert"
	"cogentcore.org/colorgrade/formats"
	"cogentcore.org/colorgrade/gl"
	"cogentcore.org/colorgrade/imagex"
)

// FromPixels returns a 2D texture holding decoded 8 bit RGBA pixels,
// rows bottom-up as OpenGL expects. The format is SRGB8_ALPHA8
// when srgb is set and RGBA8 otherwise.
func FromPixels(fns gl.Functions, pix []byte, width, height int, tile, srgb bool) *Texture {
	format := formats.RGBA8
	if srgb {
		format = formats.SRGB8Alpha8
	}
	t := NewTexture2D(fns, format, width, height, [][]byte{pix})
	t.SetTiling(tile)
	return t
}

// FromImage returns a 2D texture of the image, converted to RGBA and
// flipped so that the top row of the image is the last texture row.
func FromImage(fns gl.Functions, img image.Image, tile, srgb bool) *Texture {
	flipped := transform.FlipV(imagex.AsRGBA(img))
	b := flipped.Bounds()
	return FromPixels(fns, flipped.Pix, b.Dx(), b.Dy(), tile, srgb)
}

// ToImage reads a mip level of an 8 bit RGBA texture back as an image,
// flipping rows so the first texture row ends up at the bottom.
// It reports an error and returns nil for other formats.
func (t *Texture) ToImage(mip int) *image.RGBA {
	if !alert.Assert(t.kind == Texture2D && formats.HighLevelFormat(t.format).Enum() == gl.RGBA && formats.DataType(t.format).Enum() == gl.UNSIGNED_BYTE,
		fmt.Sprintf("buffers: ToImage needs an 8 bit RGBA 2D texture, have %s %s", t.kind, t.format)) {
		return nil
	}
	pix := t.ReadBytes(mip)
	if pix == nil {
		return nil
	}
	w, h, _ := t.levelSize(mip)
	im := &image.RGBA{Pix: pix, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	return transform.FlipV(im)
}
