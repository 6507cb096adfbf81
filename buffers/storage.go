// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffers

import (
	"fmt"

	"cogentcore.org/colorgrade/alert"
	"cogentcore.org/colorgrade/gl"
	"cogentcore.org/colorgrade/handle"
)

// ShaderStorageBuffer is a raw byte buffer on the GPU, bound to
// an indexed shader storage binding point. Once host data backs it
// its size follows that data, and [ShaderStorageBuffer.SetSize] is
// a fatal error.
type ShaderStorageBuffer struct {
	fns    gl.Functions
	size   int
	data   []byte
	handle handle.Handle
}

// NewStorageBuffer returns a storage buffer of size bytes. If data is
// non-nil it backs the buffer and the size is len(data).
func NewStorageBuffer(fns gl.Functions, size int, data []byte) *ShaderStorageBuffer {
	sb := &ShaderStorageBuffer{fns: fns, size: size, data: data}
	if data != nil {
		sb.size = len(data)
	}
	sb.handle = handle.New(sb.create, fns.DeleteBuffer)
	return sb
}

func (sb *ShaderStorageBuffer) Kind() Kind  { return StorageBuffer }
func (sb *ShaderStorageBuffer) Size() int   { return sb.size }
func (sb *ShaderStorageBuffer) Ready() bool { return sb.handle.Ready() }

// Data returns the host data backing the buffer, if any.
func (sb *ShaderStorageBuffer) Data() []byte { return sb.data }

// ID returns the native buffer id, uploading on first use.
func (sb *ShaderStorageBuffer) ID() uint32 { return sb.handle.ID() }

func (sb *ShaderStorageBuffer) create() uint32 {
	id := sb.fns.GenBuffer()
	sb.fns.BindBuffer(gl.SHADER_STORAGE_BUFFER, id)
	sb.upload()
	return id
}

func (sb *ShaderStorageBuffer) upload() {
	sb.fns.BufferData(gl.SHADER_STORAGE_BUFFER, sb.size, sb.data, gl.DYNAMIC_COPY)
}

// SetSize sets the size in bytes, reallocating if ready.
// It does nothing if the size is unchanged. Buffers backed by data
// can not be resized at all.
func (sb *ShaderStorageBuffer) SetSize(size int) {
	if !alert.AssertFatal(sb.data == nil, fmt.Sprintf("buffers: can not resize a storage buffer backed by %d bytes of data", len(sb.data))) {
		return
	}
	if size == sb.size {
		return
	}
	sb.size = size
	if !sb.handle.Ready() {
		return
	}
	sb.fns.BindBuffer(gl.SHADER_STORAGE_BUFFER, sb.handle.ID())
	sb.upload()
}

// SetData replaces the host data and uploads it if ready.
// The size becomes len(data).
func (sb *ShaderStorageBuffer) SetData(data []byte) {
	sb.data = data
	sb.size = len(data)
	if !sb.handle.Ready() {
		return
	}
	sb.fns.BindBuffer(gl.SHADER_STORAGE_BUFFER, sb.handle.ID())
	sb.upload()
}

// Bind binds the buffer to the indexed storage binding point.
func (sb *ShaderStorageBuffer) Bind(index int) {
	sb.fns.BindBufferBase(gl.SHADER_STORAGE_BUFFER, index, sb.handle.ID())
}

// Read copies the GPU contents back into a new host slice.
func (sb *ShaderStorageBuffer) Read() []byte {
	dst := make([]byte, sb.size)
	sb.fns.BindBuffer(gl.SHADER_STORAGE_BUFFER, sb.handle.ID())
	sb.fns.GetBufferSubData(gl.SHADER_STORAGE_BUFFER, 0, dst)
	return dst
}

// Release deletes the native buffer.
func (sb *ShaderStorageBuffer) Release() {
	sb.handle.Release()
}

// UnbindAll clears the generic storage buffer binding and indexed binding 0.
func UnbindAll(fns gl.Functions) {
	fns.BindBuffer(gl.SHADER_STORAGE_BUFFER, 0)
	fns.BindBufferBase(gl.SHADER_STORAGE_BUFFER, 0, 0)
}
