// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glcore implements [gl.Functions] on the current
// OpenGL 4.3 core context using github.com/go-gl/gl.
// All calls must be made on the thread that owns the context.
package glcore

import (
	"fmt"
	"strings"
	"unsafe"

	gogl "github.com/go-gl/gl/v4.3-core/gl"

	"cogentcore.org/colorgrade/gl"
)

// Functions calls straight through to the driver.
type Functions struct{}

// New loads the OpenGL entry points for the current context
// and returns the driver functions. A context must be current.
func New() (*Functions, error) {
	if err := gogl.Init(); err != nil {
		return nil, fmt.Errorf("glcore: loading OpenGL: %w", err)
	}
	return &Functions{}, nil
}

// Version returns the GL_VERSION and GL_RENDERER strings.
func (f *Functions) Version() (version, renderer string) {
	return gogl.GoStr(gogl.GetString(gogl.VERSION)), gogl.GoStr(gogl.GetString(gogl.RENDERER))
}

var _ gl.Functions = (*Functions)(nil)

func ptr[T any](v []T) unsafe.Pointer {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Pointer(&v[0])
}

func head[T any](v []T) *T {
	if len(v) == 0 {
		return nil
	}
	return &v[0]
}

func (f *Functions) ActiveTexture(texture gl.Enum) { gogl.ActiveTexture(uint32(texture)) }

func (f *Functions) BindTexture(target gl.Enum, tex uint32) { gogl.BindTexture(uint32(target), tex) }

func (f *Functions) GenTexture() uint32 {
	var id uint32
	gogl.GenTextures(1, &id)
	return id
}

func (f *Functions) DeleteTexture(tex uint32) { gogl.DeleteTextures(1, &tex) }

func (f *Functions) TexImage2D(target gl.Enum, level int, internal gl.Enum, width, height int, format, typ gl.Enum, data []byte) {
	gogl.TexImage2D(uint32(target), int32(level), int32(internal), int32(width), int32(height), 0, uint32(format), uint32(typ), ptr(data))
}

func (f *Functions) TexImage3D(target gl.Enum, level int, internal gl.Enum, width, height, depth int, format, typ gl.Enum, data []byte) {
	gogl.TexImage3D(uint32(target), int32(level), int32(internal), int32(width), int32(height), int32(depth), 0, uint32(format), uint32(typ), ptr(data))
}

func (f *Functions) TexParameteri(target, pname gl.Enum, param int) {
	gogl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (f *Functions) GenerateMipmap(target gl.Enum) { gogl.GenerateMipmap(uint32(target)) }

func (f *Functions) GetTexImage(target gl.Enum, level int, format, typ gl.Enum, dst []byte) {
	gogl.GetTexImage(uint32(target), int32(level), uint32(format), uint32(typ), ptr(dst))
}

func (f *Functions) BindImageTexture(unit int, tex uint32, level int, layered bool, layer int, access, format gl.Enum) {
	gogl.BindImageTexture(uint32(unit), tex, int32(level), layered, int32(layer), uint32(access), uint32(format))
}

func (f *Functions) PixelStorei(pname gl.Enum, param int) { gogl.PixelStorei(uint32(pname), int32(param)) }

func (f *Functions) GenRenderbuffer() uint32 {
	var id uint32
	gogl.GenRenderbuffers(1, &id)
	return id
}

func (f *Functions) DeleteRenderbuffer(rb uint32) { gogl.DeleteRenderbuffers(1, &rb) }

func (f *Functions) BindRenderbuffer(target gl.Enum, rb uint32) {
	gogl.BindRenderbuffer(uint32(target), rb)
}

func (f *Functions) RenderbufferStorage(target, internal gl.Enum, width, height int) {
	gogl.RenderbufferStorage(uint32(target), uint32(internal), int32(width), int32(height))
}

func (f *Functions) GenFramebuffer() uint32 {
	var id uint32
	gogl.GenFramebuffers(1, &id)
	return id
}

func (f *Functions) DeleteFramebuffer(fb uint32) { gogl.DeleteFramebuffers(1, &fb) }

func (f *Functions) BindFramebuffer(target gl.Enum, fb uint32) {
	gogl.BindFramebuffer(uint32(target), fb)
}

func (f *Functions) FramebufferTexture2D(target, attachment, texTarget gl.Enum, tex uint32, level int) {
	gogl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), tex, int32(level))
}

func (f *Functions) FramebufferRenderbuffer(target, attachment, rbTarget gl.Enum, rb uint32) {
	gogl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(rbTarget), rb)
}

func (f *Functions) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	return gl.Enum(gogl.CheckFramebufferStatus(uint32(target)))
}

func (f *Functions) GenBuffer() uint32 {
	var id uint32
	gogl.GenBuffers(1, &id)
	return id
}

func (f *Functions) DeleteBuffer(buf uint32) { gogl.DeleteBuffers(1, &buf) }

func (f *Functions) BindBuffer(target gl.Enum, buf uint32) { gogl.BindBuffer(uint32(target), buf) }

func (f *Functions) BindBufferBase(target gl.Enum, index int, buf uint32) {
	gogl.BindBufferBase(uint32(target), uint32(index), buf)
}

func (f *Functions) BufferData(target gl.Enum, size int, data []byte, usage gl.Enum) {
	gogl.BufferData(uint32(target), size, ptr(data), uint32(usage))
}

func (f *Functions) GetBufferSubData(target gl.Enum, offset int, dst []byte) {
	gogl.GetBufferSubData(uint32(target), offset, len(dst), ptr(dst))
}

func (f *Functions) GenVertexArray() uint32 {
	var id uint32
	gogl.GenVertexArrays(1, &id)
	return id
}

func (f *Functions) DeleteVertexArray(vao uint32) { gogl.DeleteVertexArrays(1, &vao) }

func (f *Functions) BindVertexArray(vao uint32) { gogl.BindVertexArray(vao) }

func (f *Functions) CreateShader(stage gl.Enum) uint32 { return gogl.CreateShader(uint32(stage)) }

func (f *Functions) DeleteShader(sh uint32) { gogl.DeleteShader(sh) }

func (f *Functions) ShaderSource(sh uint32, src string) {
	csrc, free := gogl.Strs(src + "\x00")
	gogl.ShaderSource(sh, 1, csrc, nil)
	free()
}

func (f *Functions) CompileShader(sh uint32) { gogl.CompileShader(sh) }

func (f *Functions) GetShaderi(sh uint32, pname gl.Enum) int {
	var v int32
	gogl.GetShaderiv(sh, uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetShaderInfoLog(sh uint32) string {
	var n int32
	gogl.GetShaderiv(sh, gogl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gogl.GetShaderInfoLog(sh, n, nil, gogl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (f *Functions) CreateProgram() uint32 { return gogl.CreateProgram() }

func (f *Functions) DeleteProgram(prog uint32) { gogl.DeleteProgram(prog) }

func (f *Functions) AttachShader(prog, sh uint32) { gogl.AttachShader(prog, sh) }

func (f *Functions) LinkProgram(prog uint32) { gogl.LinkProgram(prog) }

func (f *Functions) ValidateProgram(prog uint32) { gogl.ValidateProgram(prog) }

func (f *Functions) GetProgrami(prog uint32, pname gl.Enum) int {
	var v int32
	gogl.GetProgramiv(prog, uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetProgramInfoLog(prog uint32) string {
	var n int32
	gogl.GetProgramiv(prog, gogl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gogl.GetProgramInfoLog(prog, n, nil, gogl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (f *Functions) UseProgram(prog uint32) { gogl.UseProgram(prog) }

func (f *Functions) GetUniformLocation(prog uint32, name string) int32 {
	return gogl.GetUniformLocation(prog, gogl.Str(name+"\x00"))
}

func (f *Functions) Uniform1fv(loc int32, v []float32) { gogl.Uniform1fv(loc, int32(len(v)), head(v)) }
func (f *Functions) Uniform2fv(loc int32, v []float32) { gogl.Uniform2fv(loc, int32(len(v)/2), head(v)) }
func (f *Functions) Uniform3fv(loc int32, v []float32) { gogl.Uniform3fv(loc, int32(len(v)/3), head(v)) }
func (f *Functions) Uniform4fv(loc int32, v []float32) { gogl.Uniform4fv(loc, int32(len(v)/4), head(v)) }
func (f *Functions) Uniform1iv(loc int32, v []int32)   { gogl.Uniform1iv(loc, int32(len(v)), head(v)) }
func (f *Functions) Uniform2iv(loc int32, v []int32)   { gogl.Uniform2iv(loc, int32(len(v)/2), head(v)) }
func (f *Functions) Uniform3iv(loc int32, v []int32)   { gogl.Uniform3iv(loc, int32(len(v)/3), head(v)) }
func (f *Functions) Uniform4iv(loc int32, v []int32)   { gogl.Uniform4iv(loc, int32(len(v)/4), head(v)) }
func (f *Functions) Uniform1uiv(loc int32, v []uint32) { gogl.Uniform1uiv(loc, int32(len(v)), head(v)) }
func (f *Functions) Uniform2uiv(loc int32, v []uint32) { gogl.Uniform2uiv(loc, int32(len(v)/2), head(v)) }
func (f *Functions) Uniform3uiv(loc int32, v []uint32) { gogl.Uniform3uiv(loc, int32(len(v)/3), head(v)) }
func (f *Functions) Uniform4uiv(loc int32, v []uint32) { gogl.Uniform4uiv(loc, int32(len(v)/4), head(v)) }

func (f *Functions) UniformMatrix2fv(loc int32, v []float32) {
	gogl.UniformMatrix2fv(loc, int32(len(v)/4), false, head(v))
}

func (f *Functions) UniformMatrix3fv(loc int32, v []float32) {
	gogl.UniformMatrix3fv(loc, int32(len(v)/9), false, head(v))
}

func (f *Functions) UniformMatrix4fv(loc int32, v []float32) {
	gogl.UniformMatrix4fv(loc, int32(len(v)/16), false, head(v))
}

func (f *Functions) Viewport(x, y, width, height int) {
	gogl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (f *Functions) ClearColor(r, g, b, a float32) { gogl.ClearColor(r, g, b, a) }

func (f *Functions) Clear(mask gl.Enum) { gogl.Clear(uint32(mask)) }

func (f *Functions) DrawArrays(mode gl.Enum, first, count int) {
	gogl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (f *Functions) GetError() gl.Enum { return gl.Enum(gogl.GetError()) }
