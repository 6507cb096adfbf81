// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

// Enum is an OpenGL enumerated value.
type Enum uint32

// Internal formats.
const (
	R8                 Enum = 0x8229
	R8_SNORM           Enum = 0x8F94
	R16F               Enum = 0x822D
	R32F               Enum = 0x822E
	R8UI               Enum = 0x8232
	R8I                Enum = 0x8231
	R16UI              Enum = 0x8234
	R16I               Enum = 0x8233
	R32UI              Enum = 0x8236
	R32I               Enum = 0x8235
	RG8                Enum = 0x822B
	RG8_SNORM          Enum = 0x8F95
	RG16F              Enum = 0x822F
	RG32F              Enum = 0x8230
	RG8UI              Enum = 0x8238
	RG8I               Enum = 0x8237
	RG16UI             Enum = 0x823A
	RG16I              Enum = 0x8239
	RG32UI             Enum = 0x823C
	RG32I              Enum = 0x823B
	RGB8               Enum = 0x8051
	SRGB8              Enum = 0x8C41
	RGB565             Enum = 0x8D62
	RGB8_SNORM         Enum = 0x8F96
	R11F_G11F_B10F     Enum = 0x8C3A
	RGB9_E5            Enum = 0x8C3D
	RGB16F             Enum = 0x881B
	RGB32F             Enum = 0x8815
	RGB8UI             Enum = 0x8D7D
	RGB8I              Enum = 0x8D8F
	RGB16UI            Enum = 0x8D77
	RGB16I             Enum = 0x8D89
	RGB32UI            Enum = 0x8D71
	RGB32I             Enum = 0x8D83
	RGBA8              Enum = 0x8058
	SRGB8_ALPHA8       Enum = 0x8C43
	RGBA8_SNORM        Enum = 0x8F97
	RGB5_A1            Enum = 0x8057
	RGBA4              Enum = 0x8056
	RGB10_A2           Enum = 0x8059
	RGBA16F            Enum = 0x881A
	RGBA32F            Enum = 0x8814
	RGBA8UI            Enum = 0x8D7C
	RGBA8I             Enum = 0x8D8E
	RGB10_A2UI         Enum = 0x906F
	RGBA16UI           Enum = 0x8D76
	RGBA16I            Enum = 0x8D88
	RGBA32I            Enum = 0x8D82
	RGBA32UI           Enum = 0x8D70
	DEPTH_COMPONENT16  Enum = 0x81A5
	DEPTH_COMPONENT24  Enum = 0x81A6
	DEPTH_COMPONENT32F Enum = 0x8CAC
	DEPTH24_STENCIL8   Enum = 0x88F0
	DEPTH32F_STENCIL8  Enum = 0x8CAD
	STENCIL_INDEX8     Enum = 0x8D48
)

// Pixel layouts.
const (
	STENCIL_INDEX   Enum = 0x1901
	DEPTH_COMPONENT Enum = 0x1902
	RED             Enum = 0x1903
	RGB             Enum = 0x1907
	RGBA            Enum = 0x1908
	RG              Enum = 0x8227
	RG_INTEGER      Enum = 0x8228
	DEPTH_STENCIL   Enum = 0x84F9
	RED_INTEGER     Enum = 0x8D94
	RGB_INTEGER     Enum = 0x8D98
	RGBA_INTEGER    Enum = 0x8D99
)

// Element types.
const (
	BYTE                           Enum = 0x1400
	UNSIGNED_BYTE                  Enum = 0x1401
	SHORT                          Enum = 0x1402
	UNSIGNED_SHORT                 Enum = 0x1403
	INT                            Enum = 0x1404
	UNSIGNED_INT                   Enum = 0x1405
	FLOAT                          Enum = 0x1406
	HALF_FLOAT                     Enum = 0x140B
	UNSIGNED_INT_2_10_10_10_REV    Enum = 0x8368
	UNSIGNED_INT_24_8              Enum = 0x84FA
	UNSIGNED_INT_10F_11F_11F_REV   Enum = 0x8C3B
	UNSIGNED_INT_5_9_9_9_REV       Enum = 0x8C3E
	FLOAT_32_UNSIGNED_INT_24_8_REV Enum = 0x8DAD
)

// Textures.
const (
	TEXTURE_2D                  Enum = 0x0DE1
	TEXTURE_3D                  Enum = 0x806F
	TEXTURE_CUBE_MAP            Enum = 0x8513
	TEXTURE_CUBE_MAP_POSITIVE_X Enum = 0x8515
	TEXTURE_MAG_FILTER          Enum = 0x2800
	TEXTURE_MIN_FILTER          Enum = 0x2801
	TEXTURE_WRAP_S              Enum = 0x2802
	TEXTURE_WRAP_T              Enum = 0x2803
	TEXTURE_WRAP_R              Enum = 0x8072
	TEXTURE_BASE_LEVEL          Enum = 0x813C
	TEXTURE_MAX_LEVEL           Enum = 0x813D
	NEAREST                     Enum = 0x2600
	LINEAR                      Enum = 0x2601
	LINEAR_MIPMAP_LINEAR        Enum = 0x2703
	REPEAT                      Enum = 0x2901
	CLAMP_TO_EDGE               Enum = 0x812F
	TEXTURE0                    Enum = 0x84C0
	PACK_ALIGNMENT              Enum = 0x0D05
	UNPACK_ALIGNMENT            Enum = 0x0CF5
)

// Buffers, framebuffers and access.
const (
	RENDERBUFFER             Enum = 0x8D41
	FRAMEBUFFER              Enum = 0x8D40
	FRAMEBUFFER_COMPLETE     Enum = 0x8CD5
	COLOR_ATTACHMENT0        Enum = 0x8CE0
	DEPTH_STENCIL_ATTACHMENT Enum = 0x821A
	SHADER_STORAGE_BUFFER    Enum = 0x90D2
	DYNAMIC_COPY             Enum = 0x88EA
	READ_ONLY                Enum = 0x88B8
	WRITE_ONLY               Enum = 0x88B9
	READ_WRITE               Enum = 0x88BA
	COLOR_BUFFER_BIT         Enum = 0x4000
	TRIANGLES                Enum = 0x0004
	NO_ERROR                 Enum = 0
)

// Shaders and programs.
const (
	FRAGMENT_SHADER Enum = 0x8B30
	VERTEX_SHADER   Enum = 0x8B31
	GEOMETRY_SHADER Enum = 0x8DD9
	COMPUTE_SHADER  Enum = 0x91B9
	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82
	VALIDATE_STATUS Enum = 0x8B83
	INFO_LOG_LENGTH Enum = 0x8B84
	TRUE                 = 1
	FALSE                = 0
)
