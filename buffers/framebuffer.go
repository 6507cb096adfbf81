// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffers

import (
	"cogentcore.org/colorgrade/formats"
	"cogentcore.org/colorgrade/gl"
	"cogentcore.org/colorgrade/handle"
)

// Framebuffer is an offscreen render target with a color [Texture]
// and an optional depth-stencil [RenderBuffer].
type Framebuffer struct {
	fns   gl.Functions
	Color *Texture
	Depth *RenderBuffer

	handle handle.Handle
}

// NewFramebuffer returns a framebuffer with a 2D color texture of the
// given format. If depth is true a DEPTH24_STENCIL8 renderbuffer
// is attached as well.
func NewFramebuffer(fns gl.Functions, color formats.ColorBufferFormat, width, height int, depth bool) *Framebuffer {
	fb := &Framebuffer{fns: fns, Color: NewTexture2D(fns, color, width, height, nil)}
	if depth {
		fb.Depth = NewRenderBuffer(fns, formats.RenderDepth24Stencil8, width, height)
	}
	fb.handle = handle.New(fb.create, fns.DeleteFramebuffer)
	return fb
}

func (fb *Framebuffer) Width() int  { return fb.Color.Width() }
func (fb *Framebuffer) Height() int { return fb.Color.Height() }

func (fb *Framebuffer) create() uint32 {
	id := fb.fns.GenFramebuffer()
	fb.fns.BindFramebuffer(gl.FRAMEBUFFER, id)
	fb.attach()
	return id
}

func (fb *Framebuffer) attach() {
	fb.fns.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.Color.ID(), 0)
	if fb.Depth != nil {
		fb.fns.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, fb.Depth.ID())
	}
}

// Bind makes the framebuffer the render target and sets the viewport to its size.
func (fb *Framebuffer) Bind() {
	fb.fns.BindFramebuffer(gl.FRAMEBUFFER, fb.handle.ID())
	fb.fns.Viewport(0, 0, fb.Width(), fb.Height())
}

// Unbind restores the default framebuffer.
func (fb *Framebuffer) Unbind() {
	fb.fns.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Complete binds the framebuffer and returns whether it is complete.
func (fb *Framebuffer) Complete() bool {
	fb.fns.BindFramebuffer(gl.FRAMEBUFFER, fb.handle.ID())
	return fb.fns.CheckFramebufferStatus(gl.FRAMEBUFFER) == gl.FRAMEBUFFER_COMPLETE
}

// SetSize resizes the attachments, reattaching them if the
// framebuffer is ready. It does nothing if the size is unchanged.
func (fb *Framebuffer) SetSize(width, height int) {
	if width == fb.Width() && height == fb.Height() {
		return
	}
	fb.Color.SetSize(width, height)
	if fb.Depth != nil {
		fb.Depth.SetSize(width, height)
	}
	if !fb.handle.Ready() {
		return
	}
	fb.fns.BindFramebuffer(gl.FRAMEBUFFER, fb.handle.ID())
	fb.attach()
}

// Release deletes the framebuffer and its attachments.
func (fb *Framebuffer) Release() {
	fb.handle.Release()
	fb.Color.Release()
	if fb.Depth != nil {
		fb.Depth.Release()
	}
}
