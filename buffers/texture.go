// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffers

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/chewxy/math32"

	"cogentcore.org/colorgrade/alert"
	"cogentcore.org/colorgrade/formats"
	"cogentcore.org/colorgrade/gl"
	"cogentcore.org/colorgrade/handle"
)

// Texture is a 2D, 3D or cube map color texture with an optional
// mip chain. Host data, when given, is stored per mip level; for
// cube maps it is face-major, so face f, level m is data[f*levels+m].
// A texture built from data has a fixed size.
type Texture struct {
	fns    gl.Functions
	kind   Kind
	format formats.ColorBufferFormat
	width  int
	height int
	depth  int
	tiling bool

	// mips is the number of levels allocated on the device.
	mips int

	// autoMips is set when the mip count follows the size.
	autoMips bool

	// data is the host data, nil when the texture is resizable.
	data [][]byte

	handle handle.Handle
}

// NewTexture2D returns a 2D texture. If data is non-empty it holds
// one buffer per mip level, which also sets the mip count.
func NewTexture2D(fns gl.Functions, format formats.ColorBufferFormat, width, height int, data [][]byte) *Texture {
	return newTexture(fns, Texture2D, format, width, height, 1, data)
}

// NewTexture3D returns a 3D texture. If data is non-empty it holds
// one buffer per mip level, which also sets the mip count.
func NewTexture3D(fns gl.Functions, format formats.ColorBufferFormat, width, height, depth int, data [][]byte) *Texture {
	return newTexture(fns, Texture3D, format, width, height, depth, data)
}

// NewTextureCube returns a cube map with square faces of the given size.
// If data is non-empty it holds 6 faces times the number of mip levels,
// face-major, in the order +X, -X, +Y, -Y, +Z, -Z.
func NewTextureCube(fns gl.Functions, format formats.ColorBufferFormat, size int, data [][]byte) *Texture {
	return newTexture(fns, TextureCube, format, size, size, 1, data)
}

func newTexture(fns gl.Functions, kind Kind, format formats.ColorBufferFormat, width, height, depth int, data [][]byte) *Texture {
	t := &Texture{fns: fns, kind: kind, format: format, width: width, height: height, depth: depth, mips: 1}
	faces := kind.Caps().Faces
	if len(data) > 0 {
		if !alert.AssertFatal(len(data)%faces == 0, fmt.Sprintf("buffers: %s needs a multiple of %d data buffers, got %d", kind, faces, len(data))) {
			return t
		}
		t.data = data
		t.mips = len(data) / faces
		for f := range faces {
			for m := range t.mips {
				want := formats.BytesPerPixel(format) * t.levelPixels(m)
				got := len(data[f*t.mips+m])
				if !alert.AssertFatal(got >= want, fmt.Sprintf("buffers: %s %s level %d face %d has %d bytes, needs %d", kind, format, m, f, got, want)) {
					return t
				}
			}
		}
	}
	t.handle = handle.New(t.create, fns.DeleteTexture)
	return t
}

// MipLevelsFor returns the number of levels in a full mip chain
// for the given largest dimension.
func MipLevelsFor(size int) int {
	if size <= 1 {
		return 1
	}
	return int(math32.Floor(math32.Log2(float32(size)))) + 1
}

func (t *Texture) Kind() Kind                        { return t.kind }
func (t *Texture) Caps() Caps                        { return t.kind.Caps() }
func (t *Texture) Format() formats.ColorBufferFormat { return t.format }
func (t *Texture) Width() int                        { return t.width }
func (t *Texture) Height() int                       { return t.height }
func (t *Texture) Depth() int                        { return t.depth }
func (t *Texture) Tiling() bool                      { return t.tiling }

// MipLevels returns the number of mip levels on the device.
func (t *Texture) MipLevels() int { return t.mips }

// HasMips returns whether there is more than one mip level.
func (t *Texture) HasMips() bool { return t.mips > 1 }

// Fixed returns whether the texture was built from host data,
// which makes its size immutable.
func (t *Texture) Fixed() bool { return t.data != nil }

// Data returns the host buffer for the given face and level,
// or nil if there is none.
func (t *Texture) Data(face, mip int) []byte {
	levels := t.dataLevels()
	if face < 0 || mip < 0 || mip >= levels || face >= t.kind.Caps().Faces {
		return nil
	}
	return t.data[face*levels+mip]
}

// Ready returns whether the native texture exists.
func (t *Texture) Ready() bool { return t.handle.Ready() }

// ID returns the native texture id, creating and uploading it on first use.
func (t *Texture) ID() uint32 { return t.handle.ID() }

// Bind binds the texture to its target on the active texture unit.
func (t *Texture) Bind() {
	t.fns.BindTexture(t.kind.Caps().Target, t.handle.ID())
}

// BindLoadStore binds level 0 of the texture to an image unit for
// image load/store, with access gl.READ_ONLY, gl.WRITE_ONLY or gl.READ_WRITE.
func (t *Texture) BindLoadStore(unit int, access gl.Enum) {
	layered := t.kind != Texture2D
	t.fns.BindImageTexture(unit, t.handle.ID(), 0, layered, 0, access, t.format.Enum())
}

// Release deletes the native texture. The texture can not be used afterwards.
func (t *Texture) Release() {
	t.handle.Release()
}

func (t *Texture) dataLevels() int {
	return len(t.data) / t.kind.Caps().Faces
}

func (t *Texture) levelSize(mip int) (w, h, d int) {
	w, h, d = max(t.width>>mip, 1), max(t.height>>mip, 1), 1
	if t.kind == Texture3D {
		d = max(t.depth>>mip, 1)
	}
	return
}

func (t *Texture) levelPixels(mip int) int {
	w, h, d := t.levelSize(mip)
	return w * h * d
}

func (t *Texture) fullChain() int {
	size := max(t.width, t.height)
	if t.kind == Texture3D {
		size = max(size, t.depth)
	}
	return MipLevelsFor(size)
}

func (t *Texture) faceTarget(face int) gl.Enum {
	if t.kind == TextureCube {
		return gl.TEXTURE_CUBE_MAP_POSITIVE_X + gl.Enum(face)
	}
	return t.kind.Caps().Target
}

func (t *Texture) create() uint32 {
	id := t.fns.GenTexture()
	t.fns.BindTexture(t.kind.Caps().Target, id)
	t.fns.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	t.fns.PixelStorei(gl.PACK_ALIGNMENT, 1)
	t.setWrap()
	t.allocate()
	return id
}

func (t *Texture) setWrap() {
	target := t.kind.Caps().Target
	wrap := gl.CLAMP_TO_EDGE
	if t.tiling {
		wrap = gl.REPEAT
	}
	t.fns.TexParameteri(target, gl.TEXTURE_WRAP_S, int(wrap))
	t.fns.TexParameteri(target, gl.TEXTURE_WRAP_T, int(wrap))
	t.fns.TexParameteri(target, gl.TEXTURE_WRAP_R, int(wrap))
}

func (t *Texture) setFilter() {
	target := t.kind.Caps().Target
	filter := gl.LINEAR
	if t.mips > 1 {
		filter = gl.LINEAR_MIPMAP_LINEAR
	}
	t.fns.TexParameteri(target, gl.TEXTURE_MIN_FILTER, int(filter))
	t.fns.TexParameteri(target, gl.TEXTURE_MAG_FILTER, int(gl.LINEAR))
	t.fns.TexParameteri(target, gl.TEXTURE_BASE_LEVEL, 0)
	t.fns.TexParameteri(target, gl.TEXTURE_MAX_LEVEL, t.mips-1)
}

// allocate uploads level 0 of every face, generates the mip chain,
// then uploads any remaining explicit levels. The texture must be bound.
func (t *Texture) allocate() {
	t.setFilter()
	faces := t.kind.Caps().Faces
	for f := range faces {
		t.upload(f, 0)
	}
	if t.mips > 1 {
		t.fns.GenerateMipmap(t.kind.Caps().Target)
	}
	for m := 1; m < t.dataLevels(); m++ {
		for f := range faces {
			t.upload(f, m)
		}
	}
}

func (t *Texture) upload(face, mip int) {
	internal, layout, typ := formats.Triple(t.format)
	w, h, d := t.levelSize(mip)
	data := t.Data(face, mip)
	if t.kind == Texture3D {
		t.fns.TexImage3D(gl.TEXTURE_3D, mip, internal, w, h, d, layout, typ, data)
		return
	}
	t.fns.TexImage2D(t.faceTarget(face), mip, internal, w, h, layout, typ, data)
}

// SetSize sets the width and height, reallocating every level if the
// texture is ready. It does nothing if the size is unchanged.
// Any resize of a texture built from host data is a fatal error, even
// to the same size, and a cube map must stay square.
func (t *Texture) SetSize(width, height int) {
	t.SetSize3D(width, height, t.depth)
}

// SetSize3D is [Texture.SetSize] including the depth of a 3D texture.
func (t *Texture) SetSize3D(width, height, depth int) {
	if t.kind != Texture3D {
		depth = t.depth
	}
	if !alert.AssertFatal(!t.Fixed(), fmt.Sprintf("buffers: can not resize %s %dx%d built from data", t.kind, t.width, t.height)) {
		return
	}
	if width == t.width && height == t.height && depth == t.depth {
		return
	}
	if t.kind == TextureCube && width != height {
		alert.Error(fmt.Sprintf("buffers: cube map faces must be square, ignoring resize to %dx%d", width, height))
		return
	}
	t.width, t.height, t.depth = width, height, depth
	if t.autoMips {
		t.mips = t.fullChain()
	}
	if !t.handle.Ready() {
		return
	}
	t.Bind()
	t.allocate()
}

// GenerateMipMaps sets the number of mip levels and generates them
// from level 0. Zero levels means a full chain down to 1x1.
// Textures with more than one level of host data can not generate
// mips; that is reported as an error and nothing changes.
func (t *Texture) GenerateMipMaps(levels int) {
	if !alert.Assert(t.dataLevels() <= 1, fmt.Sprintf("buffers: %s has %d explicit mip levels, not generating mips", t.kind, t.dataLevels())) {
		return
	}
	t.autoMips = levels <= 0
	if t.autoMips {
		levels = t.fullChain()
	}
	t.mips = levels
	if !t.handle.Ready() {
		return
	}
	t.Bind()
	t.setFilter()
	t.fns.GenerateMipmap(t.kind.Caps().Target)
}

// SetTiling sets the wrap mode on all axes to REPEAT when tile is true,
// and CLAMP_TO_EDGE otherwise.
func (t *Texture) SetTiling(tile bool) {
	t.tiling = tile
	if !t.handle.Ready() {
		return
	}
	t.Bind()
	t.setWrap()
}

// readLevel reads face level data with the given element type.
// For 2D and 3D textures face is ignored.
func (t *Texture) readLevel(face, mip int, typ gl.Enum, size int) []byte {
	if !alert.Assert(mip >= 0 && mip < t.mips, fmt.Sprintf("buffers: read of mip %d out of %d levels", mip, t.mips)) {
		return nil
	}
	layout := formats.HighLevelFormat(t.format)
	dst := make([]byte, layout.Channels()*t.levelPixels(mip)*size)
	t.Bind()
	t.fns.PixelStorei(gl.PACK_ALIGNMENT, 1)
	t.fns.GetTexImage(t.faceTarget(face), mip, layout.Enum(), typ, dst)
	return dst
}

func (t *Texture) readAll(mip int, typ gl.Enum, size int) []byte {
	if t.kind != TextureCube {
		return t.readLevel(0, mip, typ, size)
	}
	var all []byte
	for f := range 6 {
		all = append(all, t.readLevel(f, mip, typ, size)...)
	}
	return all
}

// ReadBytes reads a mip level back as unsigned bytes per channel.
// Cube maps return all six faces one after another.
func (t *Texture) ReadBytes(mip int) []byte {
	return t.readAll(mip, gl.UNSIGNED_BYTE, 1)
}

// ReadFloats reads a mip level back as float32 per channel.
// Cube maps return all six faces one after another.
func (t *Texture) ReadFloats(mip int) []float32 {
	return bytesToFloats(t.readAll(mip, gl.FLOAT, 4))
}

// ReadFaceBytes reads one face of a cube map level as unsigned bytes.
func (t *Texture) ReadFaceBytes(face, mip int) []byte {
	if !t.checkFace(face) {
		return nil
	}
	return t.readLevel(face, mip, gl.UNSIGNED_BYTE, 1)
}

// ReadFaceFloats reads one face of a cube map level as float32s.
func (t *Texture) ReadFaceFloats(face, mip int) []float32 {
	if !t.checkFace(face) {
		return nil
	}
	return bytesToFloats(t.readLevel(face, mip, gl.FLOAT, 4))
}

func (t *Texture) checkFace(face int) bool {
	return alert.Assert(t.kind == TextureCube && face >= 0 && face < 6, fmt.Sprintf("buffers: face %d read on %s", face, t.kind))
}

func bytesToFloats(b []byte) []float32 {
	if b == nil {
		return nil
	}
	fs := make([]float32, len(b)/4)
	for i := range fs {
		fs[i] = math.Float32frombits(binary.NativeEndian.Uint32(b[4*i:]))
	}
	return fs
}
