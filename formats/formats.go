// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package formats maps the semantic color and render buffer formats
// to the native triple OpenGL needs to allocate and upload them:
// the internal format, the channel layout and the per channel
// element type. All mappings are total over the declared values;
// anything else is a programmer error reported with [alert.Fatal].
package formats

import (
	"fmt"
	"slices"

	"cogentcore.org/colorgrade/alert"
	"cogentcore.org/colorgrade/gl"
)

// ColorBufferFormat is a texture internal format.
type ColorBufferFormat gl.Enum

// RenderBufferFormat is a renderbuffer internal format.
type RenderBufferFormat gl.Enum

// ChannelLayout is the client side pixel format, such as gl.RGBA
// or gl.RG_INTEGER.
type ChannelLayout gl.Enum

// ElementType is the client side per channel data type,
// such as gl.UNSIGNED_BYTE, or a packed type.
type ElementType gl.Enum

type formatInfo struct {
	name   string
	layout gl.Enum
	typ    gl.Enum
}

func (f ColorBufferFormat) info() formatInfo {
	fi, ok := colorFormats[f]
	if !ok {
		alert.Fatal(fmt.Sprintf("formats: unexpected ColorBufferFormat 0x%X, not a declared format", uint32(f)))
		return formatInfo{name: "invalid", layout: gl.RGBA, typ: gl.UNSIGNED_BYTE}
	}
	return fi
}

// String returns the OpenGL name of the format without the GL_ prefix.
func (f ColorBufferFormat) String() string {
	if fi, ok := colorFormats[f]; ok {
		return fi.name
	}
	return fmt.Sprintf("ColorBufferFormat(0x%X)", uint32(f))
}

// Enum returns the internal format passed to the driver.
func (f ColorBufferFormat) Enum() gl.Enum { return gl.Enum(f) }

// IsValid returns whether f is one of the declared formats.
func (f ColorBufferFormat) IsValid() bool {
	_, ok := colorFormats[f]
	return ok
}

// HighLevelFormat returns the channel layout of the format,
// for example RG16UI gives gl.RG_INTEGER.
func HighLevelFormat(f ColorBufferFormat) ChannelLayout {
	return ChannelLayout(f.info().layout)
}

// DataType returns the element type of one channel of the format,
// for example R16F gives gl.HALF_FLOAT.
func DataType(f ColorBufferFormat) ElementType {
	return ElementType(f.info().typ)
}

// Triple returns the internal format, channel layout and element type.
func Triple(f ColorBufferFormat) (internal, layout, typ gl.Enum) {
	fi := f.info()
	return gl.Enum(f), fi.layout, fi.typ
}

// Channels returns the number of channels in a pixel of this layout.
func (l ChannelLayout) Channels() int {
	switch gl.Enum(l) {
	case gl.RED, gl.RED_INTEGER, gl.DEPTH_COMPONENT, gl.STENCIL_INDEX:
		return 1
	case gl.RG, gl.RG_INTEGER, gl.DEPTH_STENCIL:
		return 2
	case gl.RGB, gl.RGB_INTEGER:
		return 3
	case gl.RGBA, gl.RGBA_INTEGER:
		return 4
	}
	alert.Fatal(fmt.Sprintf("formats: unexpected channel layout 0x%X", uint32(l)))
	return 4
}

// Enum returns the layout passed to the driver.
func (l ChannelLayout) Enum() gl.Enum { return gl.Enum(l) }

// IsInteger returns whether the layout is one of the _INTEGER layouts.
func (l ChannelLayout) IsInteger() bool {
	switch gl.Enum(l) {
	case gl.RED_INTEGER, gl.RG_INTEGER, gl.RGB_INTEGER, gl.RGBA_INTEGER:
		return true
	}
	return false
}

// Enum returns the type passed to the driver.
func (t ElementType) Enum() gl.Enum { return gl.Enum(t) }

// IsPacked returns whether all channels of a pixel share one element.
func (t ElementType) IsPacked() bool {
	switch gl.Enum(t) {
	case gl.UNSIGNED_INT_10F_11F_11F_REV, gl.UNSIGNED_INT_5_9_9_9_REV,
		gl.UNSIGNED_INT_2_10_10_10_REV, gl.UNSIGNED_INT_24_8, gl.FLOAT_32_UNSIGNED_INT_24_8_REV:
		return true
	}
	return false
}

// Size returns the size in bytes of one element. For packed types
// this is the size of a whole pixel.
func (t ElementType) Size() int {
	switch gl.Enum(t) {
	case gl.BYTE, gl.UNSIGNED_BYTE:
		return 1
	case gl.SHORT, gl.UNSIGNED_SHORT, gl.HALF_FLOAT:
		return 2
	case gl.INT, gl.UNSIGNED_INT, gl.FLOAT,
		gl.UNSIGNED_INT_10F_11F_11F_REV, gl.UNSIGNED_INT_5_9_9_9_REV,
		gl.UNSIGNED_INT_2_10_10_10_REV, gl.UNSIGNED_INT_24_8:
		return 4
	case gl.FLOAT_32_UNSIGNED_INT_24_8_REV:
		return 8
	}
	alert.Fatal(fmt.Sprintf("formats: unexpected element type 0x%X", uint32(t)))
	return 1
}

// BytesPerPixel returns the host side size of one pixel of the format,
// as uploaded with its layout and element type.
func BytesPerPixel(f ColorBufferFormat) int {
	t := DataType(f)
	if t.IsPacked() {
		return t.Size()
	}
	return HighLevelFormat(f).Channels() * t.Size()
}

// IsInteger returns whether the format is a non normalized integer format.
func IsInteger(f ColorBufferFormat) bool {
	return HighLevelFormat(f).IsInteger()
}

// IsDepth returns whether the format has a depth or stencil component.
func IsDepth(f ColorBufferFormat) bool {
	l := gl.Enum(HighLevelFormat(f))
	return l == gl.DEPTH_COMPONENT || l == gl.DEPTH_STENCIL
}

// IsSRGB returns whether the format stores sRGB encoded color.
func IsSRGB(f ColorBufferFormat) bool {
	return f == SRGB8 || f == SRGB8Alpha8
}

// Values returns all color buffer formats, in ascending enum order.
func Values() []ColorBufferFormat {
	vs := make([]ColorBufferFormat, 0, len(colorFormats))
	for f := range colorFormats {
		vs = append(vs, f)
	}
	slices.Sort(vs)
	return vs
}

// String returns the OpenGL name of the format without the GL_ prefix.
func (f RenderBufferFormat) String() string {
	if n, ok := renderFormats[f]; ok {
		return n
	}
	return fmt.Sprintf("RenderBufferFormat(0x%X)", uint32(f))
}

// Enum returns the internal format passed to the driver.
func (f RenderBufferFormat) Enum() gl.Enum { return gl.Enum(f) }

// IsValid returns whether f is one of the declared formats.
func (f RenderBufferFormat) IsValid() bool {
	_, ok := renderFormats[f]
	return ok
}

// Color returns the color buffer format sharing this internal format.
// It is false for STENCIL_INDEX8, which has no texture equivalent.
func (f RenderBufferFormat) Color() (ColorBufferFormat, bool) {
	c := ColorBufferFormat(f)
	_, ok := colorFormats[c]
	return c, ok
}

// HighLevelFormat returns the channel layout of the render format.
func (f RenderBufferFormat) HighLevelFormat() ChannelLayout {
	if f == RenderStencil8 {
		return ChannelLayout(gl.STENCIL_INDEX)
	}
	if !f.IsValid() {
		alert.Fatal(fmt.Sprintf("formats: unexpected RenderBufferFormat 0x%X, not a declared format", uint32(f)))
		return ChannelLayout(gl.RGBA)
	}
	return HighLevelFormat(ColorBufferFormat(f))
}

// DataType returns the element type of the render format.
func (f RenderBufferFormat) DataType() ElementType {
	if f == RenderStencil8 {
		return ElementType(gl.UNSIGNED_BYTE)
	}
	if !f.IsValid() {
		alert.Fatal(fmt.Sprintf("formats: unexpected RenderBufferFormat 0x%X, not a declared format", uint32(f)))
		return ElementType(gl.UNSIGNED_BYTE)
	}
	return DataType(ColorBufferFormat(f))
}

// RenderValues returns all render buffer formats, in ascending enum order.
func RenderValues() []RenderBufferFormat {
	vs := make([]RenderBufferFormat, 0, len(renderFormats))
	for f := range renderFormats {
		vs = append(vs, f)
	}
	slices.Sort(vs)
	return vs
}
