// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.RGBA {
	im := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := range 2 {
		for x := range 4 {
			im.SetRGBA(x, y, color.RGBA{uint8(x * 60), uint8(y * 200), 10, 255})
		}
	}
	return im
}

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".JPG")
	require.NoError(t, err)
	assert.Equal(t, JPEG, f)
	_, err = ExtToFormat("exr")
	assert.Error(t, err)
	_, err = ExtToFormat("")
	assert.Error(t, err)
	assert.Equal(t, "WebP", WebP.String())
}

func TestSniff(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, testImage()))
	f, err := Sniff(b.Bytes())
	require.NoError(t, err)
	assert.Equal(t, PNG, f)

	_, err = Sniff([]byte("#version 430\nvoid main() {}"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestReadWrite(t *testing.T) {
	for _, f := range []Formats{PNG, BMP, TIFF} {
		var b bytes.Buffer
		require.NoError(t, Write(testImage(), &b, f), f.String())
		im, got, err := Read(&b)
		require.NoError(t, err, f.String())
		assert.Equal(t, f, got)
		assert.Equal(t, image.Rect(0, 0, 4, 2), im.Bounds())
		r, g, _, _ := im.At(3, 1).RGBA()
		assert.Equal(t, uint32(180), r>>8)
		assert.Equal(t, uint32(200), g>>8)
	}
	assert.Error(t, Write(testImage(), &bytes.Buffer{}, None))
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "export.png")
	require.NoError(t, Save(testImage(), fn))
	im, f, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
	assert.Equal(t, testImage().Pix, AsRGBA(im).Pix)

	assert.Error(t, Save(testImage(), filepath.Join(t.TempDir(), "export.exr")))
	_, _, err = Open(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestAsRGBA(t *testing.T) {
	im := testImage()
	assert.Same(t, im, AsRGBA(im))
	sub := im.SubImage(image.Rect(1, 0, 3, 2)).(*image.RGBA)
	c := AsRGBA(sub)
	assert.NotSame(t, sub, c)
	assert.Len(t, c.Pix, 2*2*4)
	assert.Nil(t, AsRGBA(nil))
}
