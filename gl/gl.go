// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gl defines the OpenGL 4.3 core surface used by the
// rest of the module. All driver access goes through [Functions];
// package glcore implements it on a real context, and package
// gltest provides an in-memory fake for tests.
package gl

// Functions is the set of OpenGL entry points used by buffers,
// shaders and the grading preview. Object ids are plain uint32s,
// as returned by the driver; a zero id is never valid.
// Slices are passed through to the driver, so their length
// determines element counts where the C API takes a count.
type Functions interface {
	ActiveTexture(texture Enum)
	BindTexture(target Enum, tex uint32)
	GenTexture() uint32
	DeleteTexture(tex uint32)
	TexImage2D(target Enum, level int, internal Enum, width, height int, format, typ Enum, data []byte)
	TexImage3D(target Enum, level int, internal Enum, width, height, depth int, format, typ Enum, data []byte)
	TexParameteri(target, pname Enum, param int)
	GenerateMipmap(target Enum)
	GetTexImage(target Enum, level int, format, typ Enum, dst []byte)
	BindImageTexture(unit int, tex uint32, level int, layered bool, layer int, access, format Enum)
	PixelStorei(pname Enum, param int)

	GenRenderbuffer() uint32
	DeleteRenderbuffer(rb uint32)
	BindRenderbuffer(target Enum, rb uint32)
	RenderbufferStorage(target, internal Enum, width, height int)

	GenFramebuffer() uint32
	DeleteFramebuffer(fb uint32)
	BindFramebuffer(target Enum, fb uint32)
	FramebufferTexture2D(target, attachment, texTarget Enum, tex uint32, level int)
	FramebufferRenderbuffer(target, attachment, rbTarget Enum, rb uint32)
	CheckFramebufferStatus(target Enum) Enum

	GenBuffer() uint32
	DeleteBuffer(buf uint32)
	BindBuffer(target Enum, buf uint32)
	BindBufferBase(target Enum, index int, buf uint32)
	BufferData(target Enum, size int, data []byte, usage Enum)
	GetBufferSubData(target Enum, offset int, dst []byte)

	GenVertexArray() uint32
	DeleteVertexArray(vao uint32)
	BindVertexArray(vao uint32)

	CreateShader(stage Enum) uint32
	DeleteShader(sh uint32)
	ShaderSource(sh uint32, src string)
	CompileShader(sh uint32)
	GetShaderi(sh uint32, pname Enum) int
	GetShaderInfoLog(sh uint32) string

	CreateProgram() uint32
	DeleteProgram(prog uint32)
	AttachShader(prog, sh uint32)
	LinkProgram(prog uint32)
	ValidateProgram(prog uint32)
	GetProgrami(prog uint32, pname Enum) int
	GetProgramInfoLog(prog uint32) string
	UseProgram(prog uint32)
	GetUniformLocation(prog uint32, name string) int32

	Uniform1fv(loc int32, v []float32)
	Uniform2fv(loc int32, v []float32)
	Uniform3fv(loc int32, v []float32)
	Uniform4fv(loc int32, v []float32)
	Uniform1iv(loc int32, v []int32)
	Uniform2iv(loc int32, v []int32)
	Uniform3iv(loc int32, v []int32)
	Uniform4iv(loc int32, v []int32)
	Uniform1uiv(loc int32, v []uint32)
	Uniform2uiv(loc int32, v []uint32)
	Uniform3uiv(loc int32, v []uint32)
	Uniform4uiv(loc int32, v []uint32)
	UniformMatrix2fv(loc int32, v []float32)
	UniformMatrix3fv(loc int32, v []float32)
	UniformMatrix4fv(loc int32, v []float32)

	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)
	DrawArrays(mode Enum, first, count int)
	GetError() Enum
}
