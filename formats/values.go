// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package formats

import "cogentcore.org/colorgrade/gl"

// Color buffer formats, valued as their OpenGL internal formats.
const (
	R8               = ColorBufferFormat(gl.R8)
	R8Snorm          = ColorBufferFormat(gl.R8_SNORM)
	R16F             = ColorBufferFormat(gl.R16F)
	R32F             = ColorBufferFormat(gl.R32F)
	R8UI             = ColorBufferFormat(gl.R8UI)
	R8I              = ColorBufferFormat(gl.R8I)
	R16UI            = ColorBufferFormat(gl.R16UI)
	R16I             = ColorBufferFormat(gl.R16I)
	R32UI            = ColorBufferFormat(gl.R32UI)
	R32I             = ColorBufferFormat(gl.R32I)
	RG8              = ColorBufferFormat(gl.RG8)
	RG8Snorm         = ColorBufferFormat(gl.RG8_SNORM)
	RG16F            = ColorBufferFormat(gl.RG16F)
	RG32F            = ColorBufferFormat(gl.RG32F)
	RG8UI            = ColorBufferFormat(gl.RG8UI)
	RG8I             = ColorBufferFormat(gl.RG8I)
	RG16UI           = ColorBufferFormat(gl.RG16UI)
	RG16I            = ColorBufferFormat(gl.RG16I)
	RG32UI           = ColorBufferFormat(gl.RG32UI)
	RG32I            = ColorBufferFormat(gl.RG32I)
	RGB8             = ColorBufferFormat(gl.RGB8)
	SRGB8            = ColorBufferFormat(gl.SRGB8)
	RGB565           = ColorBufferFormat(gl.RGB565)
	RGB8Snorm        = ColorBufferFormat(gl.RGB8_SNORM)
	R11FG11FB10F     = ColorBufferFormat(gl.R11F_G11F_B10F)
	RGB9E5           = ColorBufferFormat(gl.RGB9_E5)
	RGB16F           = ColorBufferFormat(gl.RGB16F)
	RGB32F           = ColorBufferFormat(gl.RGB32F)
	RGB8UI           = ColorBufferFormat(gl.RGB8UI)
	RGB8I            = ColorBufferFormat(gl.RGB8I)
	RGB16UI          = ColorBufferFormat(gl.RGB16UI)
	RGB16I           = ColorBufferFormat(gl.RGB16I)
	RGB32UI          = ColorBufferFormat(gl.RGB32UI)
	RGB32I           = ColorBufferFormat(gl.RGB32I)
	RGBA8            = ColorBufferFormat(gl.RGBA8)
	SRGB8Alpha8      = ColorBufferFormat(gl.SRGB8_ALPHA8)
	RGBA8Snorm       = ColorBufferFormat(gl.RGBA8_SNORM)
	RGB5A1           = ColorBufferFormat(gl.RGB5_A1)
	RGBA4            = ColorBufferFormat(gl.RGBA4)
	RGB10A2          = ColorBufferFormat(gl.RGB10_A2)
	RGBA16F          = ColorBufferFormat(gl.RGBA16F)
	RGBA32F          = ColorBufferFormat(gl.RGBA32F)
	RGBA8UI          = ColorBufferFormat(gl.RGBA8UI)
	RGBA8I           = ColorBufferFormat(gl.RGBA8I)
	RGB10A2UI        = ColorBufferFormat(gl.RGB10_A2UI)
	RGBA16UI         = ColorBufferFormat(gl.RGBA16UI)
	RGBA16I          = ColorBufferFormat(gl.RGBA16I)
	RGBA32I          = ColorBufferFormat(gl.RGBA32I)
	RGBA32UI         = ColorBufferFormat(gl.RGBA32UI)
	Depth16          = ColorBufferFormat(gl.DEPTH_COMPONENT16)
	Depth24          = ColorBufferFormat(gl.DEPTH_COMPONENT24)
	Depth32F         = ColorBufferFormat(gl.DEPTH_COMPONENT32F)
	Depth24Stencil8  = ColorBufferFormat(gl.DEPTH24_STENCIL8)
	Depth32FStencil8 = ColorBufferFormat(gl.DEPTH32F_STENCIL8)
)

// Render buffer formats, valued as their OpenGL internal formats.
const (
	RenderR8               = RenderBufferFormat(gl.R8)
	RenderR8UI             = RenderBufferFormat(gl.R8UI)
	RenderR8I              = RenderBufferFormat(gl.R8I)
	RenderR16UI            = RenderBufferFormat(gl.R16UI)
	RenderR16I             = RenderBufferFormat(gl.R16I)
	RenderR32UI            = RenderBufferFormat(gl.R32UI)
	RenderR32I             = RenderBufferFormat(gl.R32I)
	RenderRG8              = RenderBufferFormat(gl.RG8)
	RenderRG8UI            = RenderBufferFormat(gl.RG8UI)
	RenderRG8I             = RenderBufferFormat(gl.RG8I)
	RenderRG16UI           = RenderBufferFormat(gl.RG16UI)
	RenderRG16I            = RenderBufferFormat(gl.RG16I)
	RenderRG32UI           = RenderBufferFormat(gl.RG32UI)
	RenderRG32I            = RenderBufferFormat(gl.RG32I)
	RenderRGB8             = RenderBufferFormat(gl.RGB8)
	RenderRGB565           = RenderBufferFormat(gl.RGB565)
	RenderRGBA8            = RenderBufferFormat(gl.RGBA8)
	RenderSRGB8Alpha8      = RenderBufferFormat(gl.SRGB8_ALPHA8)
	RenderRGB5A1           = RenderBufferFormat(gl.RGB5_A1)
	RenderRGBA4            = RenderBufferFormat(gl.RGBA4)
	RenderRGB10A2          = RenderBufferFormat(gl.RGB10_A2)
	RenderRGBA8UI          = RenderBufferFormat(gl.RGBA8UI)
	RenderRGBA8I           = RenderBufferFormat(gl.RGBA8I)
	RenderRGB10A2UI        = RenderBufferFormat(gl.RGB10_A2UI)
	RenderRGBA16UI         = RenderBufferFormat(gl.RGBA16UI)
	RenderRGBA16I          = RenderBufferFormat(gl.RGBA16I)
	RenderRGBA32I          = RenderBufferFormat(gl.RGBA32I)
	RenderRGBA32UI         = RenderBufferFormat(gl.RGBA32UI)
	RenderDepth16          = RenderBufferFormat(gl.DEPTH_COMPONENT16)
	RenderDepth24          = RenderBufferFormat(gl.DEPTH_COMPONENT24)
	RenderDepth32F         = RenderBufferFormat(gl.DEPTH_COMPONENT32F)
	RenderDepth24Stencil8  = RenderBufferFormat(gl.DEPTH24_STENCIL8)
	RenderDepth32FStencil8 = RenderBufferFormat(gl.DEPTH32F_STENCIL8)
	RenderStencil8         = RenderBufferFormat(gl.STENCIL_INDEX8)
)

var colorFormats = map[ColorBufferFormat]formatInfo{
	R8:               {"R8", gl.RED, gl.UNSIGNED_BYTE},
	R8Snorm:          {"R8_SNORM", gl.RED, gl.BYTE},
	R16F:             {"R16F", gl.RED, gl.HALF_FLOAT},
	R32F:             {"R32F", gl.RED, gl.FLOAT},
	R8UI:             {"R8UI", gl.RED_INTEGER, gl.UNSIGNED_BYTE},
	R8I:              {"R8I", gl.RED_INTEGER, gl.BYTE},
	R16UI:            {"R16UI", gl.RED_INTEGER, gl.UNSIGNED_SHORT},
	R16I:             {"R16I", gl.RED_INTEGER, gl.SHORT},
	R32UI:            {"R32UI", gl.RED_INTEGER, gl.UNSIGNED_INT},
	R32I:             {"R32I", gl.RED_INTEGER, gl.INT},
	RG8:              {"RG8", gl.RG, gl.UNSIGNED_BYTE},
	RG8Snorm:         {"RG8_SNORM", gl.RG, gl.BYTE},
	RG16F:            {"RG16F", gl.RG, gl.HALF_FLOAT},
	RG32F:            {"RG32F", gl.RG, gl.FLOAT},
	RG8UI:            {"RG8UI", gl.RG_INTEGER, gl.UNSIGNED_BYTE},
	RG8I:             {"RG8I", gl.RG_INTEGER, gl.BYTE},
	RG16UI:           {"RG16UI", gl.RG_INTEGER, gl.UNSIGNED_SHORT},
	RG16I:            {"RG16I", gl.RG_INTEGER, gl.SHORT},
	RG32UI:           {"RG32UI", gl.RG_INTEGER, gl.UNSIGNED_INT},
	RG32I:            {"RG32I", gl.RG_INTEGER, gl.INT},
	RGB8:             {"RGB8", gl.RGB, gl.UNSIGNED_BYTE},
	SRGB8:            {"SRGB8", gl.RGB, gl.UNSIGNED_BYTE},
	RGB565:           {"RGB565", gl.RGB, gl.UNSIGNED_BYTE},
	RGB8Snorm:        {"RGB8_SNORM", gl.RGB, gl.BYTE},
	R11FG11FB10F:     {"R11F_G11F_B10F", gl.RGB, gl.UNSIGNED_INT_10F_11F_11F_REV},
	RGB9E5:           {"RGB9_E5", gl.RGB, gl.UNSIGNED_INT_5_9_9_9_REV},
	RGB16F:           {"RGB16F", gl.RGB, gl.HALF_FLOAT},
	RGB32F:           {"RGB32F", gl.RGB, gl.FLOAT},
	RGB8UI:           {"RGB8UI", gl.RGB_INTEGER, gl.UNSIGNED_BYTE},
	RGB8I:            {"RGB8I", gl.RGB_INTEGER, gl.BYTE},
	RGB16UI:          {"RGB16UI", gl.RGB_INTEGER, gl.UNSIGNED_SHORT},
	RGB16I:           {"RGB16I", gl.RGB_INTEGER, gl.SHORT},
	RGB32UI:          {"RGB32UI", gl.RGB_INTEGER, gl.UNSIGNED_INT},
	RGB32I:           {"RGB32I", gl.RGB_INTEGER, gl.INT},
	RGBA8:            {"RGBA8", gl.RGBA, gl.UNSIGNED_BYTE},
	SRGB8Alpha8:      {"SRGB8_ALPHA8", gl.RGBA, gl.UNSIGNED_BYTE},
	RGBA8Snorm:       {"RGBA8_SNORM", gl.RGBA, gl.BYTE},
	RGB5A1:           {"RGB5_A1", gl.RGBA, gl.UNSIGNED_BYTE},
	RGBA4:            {"RGBA4", gl.RGBA, gl.UNSIGNED_BYTE},
	RGB10A2:          {"RGB10_A2", gl.RGBA, gl.UNSIGNED_INT_2_10_10_10_REV},
	RGBA16F:          {"RGBA16F", gl.RGBA, gl.HALF_FLOAT},
	RGBA32F:          {"RGBA32F", gl.RGBA, gl.FLOAT},
	RGBA8UI:          {"RGBA8UI", gl.RGBA_INTEGER, gl.UNSIGNED_BYTE},
	RGBA8I:           {"RGBA8I", gl.RGBA_INTEGER, gl.BYTE},
	RGB10A2UI:        {"RGB10_A2UI", gl.RGBA_INTEGER, gl.UNSIGNED_INT_2_10_10_10_REV},
	RGBA16UI:         {"RGBA16UI", gl.RGBA_INTEGER, gl.UNSIGNED_SHORT},
	RGBA16I:          {"RGBA16I", gl.RGBA_INTEGER, gl.SHORT},
	RGBA32I:          {"RGBA32I", gl.RGBA_INTEGER, gl.INT},
	RGBA32UI:         {"RGBA32UI", gl.RGBA_INTEGER, gl.UNSIGNED_INT},
	Depth16:          {"DEPTH_COMPONENT16", gl.DEPTH_COMPONENT, gl.UNSIGNED_SHORT},
	Depth24:          {"DEPTH_COMPONENT24", gl.DEPTH_COMPONENT, gl.UNSIGNED_INT},
	Depth32F:         {"DEPTH_COMPONENT32F", gl.DEPTH_COMPONENT, gl.FLOAT},
	Depth24Stencil8:  {"DEPTH24_STENCIL8", gl.DEPTH_STENCIL, gl.UNSIGNED_INT_24_8},
	Depth32FStencil8: {"DEPTH32F_STENCIL8", gl.DEPTH_STENCIL, gl.FLOAT_32_UNSIGNED_INT_24_8_REV},
}

var renderFormats = map[RenderBufferFormat]string{
	RenderR8:               "R8",
	RenderR8UI:             "R8UI",
	RenderR8I:              "R8I",
	RenderR16UI:            "R16UI",
	RenderR16I:             "R16I",
	RenderR32UI:            "R32UI",
	RenderR32I:             "R32I",
	RenderRG8:              "RG8",
	RenderRG8UI:            "RG8UI",
	RenderRG8I:             "RG8I",
	RenderRG16UI:           "RG16UI",
	RenderRG16I:            "RG16I",
	RenderRG32UI:           "RG32UI",
	RenderRG32I:            "RG32I",
	RenderRGB8:             "RGB8",
	RenderRGB565:           "RGB565",
	RenderRGBA8:            "RGBA8",
	RenderSRGB8Alpha8:      "SRGB8_ALPHA8",
	RenderRGB5A1:           "RGB5_A1",
	RenderRGBA4:            "RGBA4",
	RenderRGB10A2:          "RGB10_A2",
	RenderRGBA8UI:          "RGBA8UI",
	RenderRGBA8I:           "RGBA8I",
	RenderRGB10A2UI:        "RGB10_A2UI",
	RenderRGBA16UI:         "RGBA16UI",
	RenderRGBA16I:          "RGBA16I",
	RenderRGBA32I:          "RGBA32I",
	RenderRGBA32UI:         "RGBA32UI",
	RenderDepth16:          "DEPTH_COMPONENT16",
	RenderDepth24:          "DEPTH_COMPONENT24",
	RenderDepth32F:         "DEPTH_COMPONENT32F",
	RenderDepth24Stencil8:  "DEPTH24_STENCIL8",
	RenderDepth32FStencil8: "DEPTH32F_STENCIL8",
	RenderStencil8:         "STENCIL_INDEX8",
}
