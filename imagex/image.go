// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"

	"github.com/anthonynsimon/bild/clone"
)

// AsRGBA returns the image as an RGBA with tightly packed rows:
// if it already is one, then it returns that image directly.
// Otherwise it returns a clone.
func AsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	if rgba, ok := src.(*image.RGBA); ok && rgba.Stride == 4*rgba.Bounds().Dx() {
		return rgba
	}
	return clone.AsRGBA(src)
}
