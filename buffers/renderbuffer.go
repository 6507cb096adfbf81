// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffers

import (
	"cogentcore.org/colorgrade/formats"
	"cogentcore.org/colorgrade/gl"
	"cogentcore.org/colorgrade/handle"
)

// RenderBuffer is a render target that can be attached to a
// [Framebuffer] but not sampled or read back.
type RenderBuffer struct {
	fns    gl.Functions
	format formats.RenderBufferFormat
	width  int
	height int
	handle handle.Handle
}

// NewRenderBuffer returns a new renderbuffer of the given format and size.
func NewRenderBuffer(fns gl.Functions, format formats.RenderBufferFormat, width, height int) *RenderBuffer {
	rb := &RenderBuffer{fns: fns, format: format, width: width, height: height}
	rb.handle = handle.New(rb.create, fns.DeleteRenderbuffer)
	return rb
}

func (rb *RenderBuffer) Kind() Kind                         { return RenderTarget }
func (rb *RenderBuffer) Format() formats.RenderBufferFormat { return rb.format }
func (rb *RenderBuffer) Width() int                         { return rb.width }
func (rb *RenderBuffer) Height() int                        { return rb.height }
func (rb *RenderBuffer) Ready() bool                        { return rb.handle.Ready() }

// ID returns the native renderbuffer id, allocating storage on first use.
func (rb *RenderBuffer) ID() uint32 { return rb.handle.ID() }

func (rb *RenderBuffer) create() uint32 {
	id := rb.fns.GenRenderbuffer()
	rb.fns.BindRenderbuffer(gl.RENDERBUFFER, id)
	rb.allocate()
	return id
}

func (rb *RenderBuffer) allocate() {
	rb.fns.RenderbufferStorage(gl.RENDERBUFFER, rb.format.Enum(), rb.width, rb.height)
}

// Bind binds the renderbuffer to gl.RENDERBUFFER.
func (rb *RenderBuffer) Bind() {
	rb.fns.BindRenderbuffer(gl.RENDERBUFFER, rb.handle.ID())
}

// SetSize sets the size, reallocating storage if the renderbuffer
// is ready. It does nothing if the size is unchanged.
func (rb *RenderBuffer) SetSize(width, height int) {
	if width == rb.width && height == rb.height {
		return
	}
	rb.width, rb.height = width, height
	if !rb.handle.Ready() {
		return
	}
	rb.Bind()
	rb.allocate()
}

// Release deletes the native renderbuffer.
func (rb *RenderBuffer) Release() {
	rb.handle.Release()
}
