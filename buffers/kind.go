// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package buffers provides the GPU buffer objects: color textures
// with mip chains (2D, 3D and cube), renderbuffers, shader storage
// buffers and an offscreen framebuffer. Each object creates its
// native handle on first use and owns any host data it was built from.
package buffers

import (
	"fmt"

	"cogentcore.org/colorgrade/gl"
)

// Kind is the variant of a buffer object.
type Kind int32

const (
	Texture2D Kind = iota
	Texture3D
	TextureCube
	RenderTarget
	StorageBuffer
)

// Caps are the capabilities of a [Kind].
type Caps struct {
	// Target is the native bind target.
	Target gl.Enum

	// Dims is the number of dimensions of one image.
	Dims int

	// Faces is 6 for cube maps and 1 otherwise.
	Faces int

	// Mips is whether the kind supports mip chains.
	Mips bool

	// Readable is whether contents can be read back to the host.
	Readable bool

	// Resizable is whether the size can change after construction,
	// provided the object was not built from host data.
	Resizable bool
}

var kindCaps = [...]Caps{
	Texture2D:     {Target: gl.TEXTURE_2D, Dims: 2, Faces: 1, Mips: true, Readable: true, Resizable: true},
	Texture3D:     {Target: gl.TEXTURE_3D, Dims: 3, Faces: 1, Mips: true, Readable: true, Resizable: true},
	TextureCube:   {Target: gl.TEXTURE_CUBE_MAP, Dims: 2, Faces: 6, Mips: true, Readable: true, Resizable: true},
	RenderTarget:  {Target: gl.RENDERBUFFER, Dims: 2, Faces: 1, Resizable: true},
	StorageBuffer: {Target: gl.SHADER_STORAGE_BUFFER, Dims: 1, Faces: 1, Readable: true, Resizable: true},
}

var kindNames = [...]string{"Texture2D", "Texture3D", "TextureCube", "RenderTarget", "StorageBuffer"}

// Caps returns the capabilities of the kind.
func (k Kind) Caps() Caps {
	return kindCaps[k]
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int32(k))
	}
	return kindNames[k]
}
