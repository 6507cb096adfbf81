// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/colorgrade/gl"
)

func compile(d *Device, stage gl.Enum, src string) uint32 {
	sh := d.CreateShader(stage)
	d.ShaderSource(sh, src)
	d.CompileShader(sh)
	return sh
}

func TestCompileStatus(t *testing.T) {
	d := New()
	ok := compile(d, gl.FRAGMENT_SHADER, "void main() {}")
	assert.Equal(t, gl.TRUE, d.GetShaderi(ok, gl.COMPILE_STATUS))
	assert.Equal(t, 0, d.GetShaderi(ok, gl.INFO_LOG_LENGTH))

	bad := compile(d, gl.FRAGMENT_SHADER, "#version 430\n#error broken here\n")
	assert.Equal(t, gl.FALSE, d.GetShaderi(bad, gl.COMPILE_STATUS))
	assert.Contains(t, d.GetShaderInfoLog(bad), "broken here")

	empty := compile(d, gl.VERTEX_SHADER, "  \n")
	assert.Equal(t, gl.FALSE, d.GetShaderi(empty, gl.COMPILE_STATUS))
}

func TestLinkDiscoversUniforms(t *testing.T) {
	d := New()
	vs := compile(d, gl.VERTEX_SHADER, "uniform vec2 uResolution;\nvoid main() {}")
	fs := compile(d, gl.FRAGMENT_SHADER, "layout(binding = 0) uniform sampler2D uImage;\nuniform float uWeights[4];\nuniform vec2 uResolution;\n")
	p := d.CreateProgram()
	d.AttachShader(p, vs)
	d.AttachShader(p, fs)
	d.LinkProgram(p)
	d.ValidateProgram(p)
	require.Equal(t, gl.TRUE, d.GetProgrami(p, gl.LINK_STATUS))
	assert.Equal(t, gl.TRUE, d.GetProgrami(p, gl.VALIDATE_STATUS))

	assert.Equal(t, int32(0), d.GetUniformLocation(p, "uResolution"))
	assert.Equal(t, int32(1), d.GetUniformLocation(p, "uImage"))
	assert.Equal(t, int32(2), d.GetUniformLocation(p, "uWeights"))
	assert.Equal(t, int32(2), d.GetUniformLocation(p, "uWeights[0]"))
	assert.Equal(t, int32(-1), d.GetUniformLocation(p, "uMissing"))

	d.UseProgram(p)
	d.Uniform2fv(0, []float32{640, 480})
	assert.Equal(t, []float32{640, 480}, d.Program().Uniform("uResolution"))
}

func TestLinkFailsWithBrokenShader(t *testing.T) {
	d := New()
	bad := compile(d, gl.FRAGMENT_SHADER, "#error nope")
	p := d.CreateProgram()
	d.AttachShader(p, bad)
	d.LinkProgram(p)
	d.ValidateProgram(p)
	assert.Equal(t, gl.FALSE, d.GetProgrami(p, gl.LINK_STATUS))
	assert.Equal(t, gl.FALSE, d.GetProgrami(p, gl.VALIDATE_STATUS))
	assert.NotEmpty(t, d.GetProgramInfoLog(p))
	assert.Equal(t, int32(-1), d.GetUniformLocation(p, "anything"))
}

func TestTextureStorage(t *testing.T) {
	d := New()
	tex := d.GenTexture()
	d.BindTexture(gl.TEXTURE_2D, tex)
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	d.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, 2, 2, gl.RGBA, gl.UNSIGNED_BYTE, data)
	d.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAX_LEVEL, 1)
	d.GenerateMipmap(gl.TEXTURE_2D)

	tx := d.Textures[tex]
	require.NotNil(t, tx)
	assert.Equal(t, gl.Enum(gl.TEXTURE_2D), tx.Target)
	assert.Len(t, tx.Images, 2)
	assert.Equal(t, 1, tx.Images[Level{gl.TEXTURE_2D, 1}].Width)

	out := make([]byte, 16)
	d.GetTexImage(gl.TEXTURE_2D, 0, gl.RGBA, gl.UNSIGNED_BYTE, out)
	assert.Equal(t, data, out)
	assert.Equal(t, 1, d.Count("GenerateMipmap"))

	d.DeleteTexture(tex)
	assert.Empty(t, d.Textures)
}

func TestBufferStorage(t *testing.T) {
	d := New()
	b := d.GenBuffer()
	d.BindBuffer(gl.SHADER_STORAGE_BUFFER, b)
	d.BufferData(gl.SHADER_STORAGE_BUFFER, 8, []byte{1, 2, 3}, gl.DYNAMIC_COPY)
	d.BindBufferBase(gl.SHADER_STORAGE_BUFFER, 2, b)
	assert.Equal(t, b, d.BoundBase(gl.SHADER_STORAGE_BUFFER, 2))

	out := make([]byte, 4)
	d.GetBufferSubData(gl.SHADER_STORAGE_BUFFER, 1, out)
	assert.Equal(t, []byte{2, 3, 0, 0}, out)
}
