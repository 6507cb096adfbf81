// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"cogentcore.org/colorgrade/alert"
	"cogentcore.org/colorgrade/gl"
)

// Program is an ordered list of shaders linked through a [Cache].
// It holds no native object itself: every use fetches the program
// from the cache, so edits to its files take effect on the next use.
type Program struct {
	cache   *Cache
	shaders []Shader
	key     string
}

// NewProgram returns the program made of the given shaders, in order.
func (c *Cache) NewProgram(shaders ...Shader) *Program {
	shaders = slices.Clone(shaders)
	return &Program{cache: c, shaders: shaders, key: ProgramKey(shaders)}
}

// Shaders returns the shaders of the program.
func (p *Program) Shaders() []Shader { return slices.Clone(p.shaders) }

// Key returns the cache key of the program.
func (p *Program) Key() string { return p.key }

func (p *Program) String() string { return programName(p.shaders) }

// ID returns the native id of the linked program.
func (p *Program) ID() uint32 {
	p.cache.Poll()
	return p.cache.program(p.key, p.shaders)
}

// Bind makes the program current.
func (p *Program) Bind() {
	id := p.ID()
	p.cache.fns.UseProgram(id)
	p.cache.bound = id
}

// Location returns the location of the named uniform, or -1 if it is
// not an active uniform of the program. Lookups are cached until the
// program is evicted, and a missing uniform is reported once.
func (p *Program) Location(name string) int32 {
	id := p.ID()
	locs := p.cache.locations[p.key]
	if locs == nil {
		locs = map[string]int32{}
		p.cache.locations[p.key] = locs
	}
	if loc, ok := locs[name]; ok {
		return loc
	}
	loc := p.cache.fns.GetUniformLocation(id, name)
	locs[name] = loc
	if loc < 0 {
		alert.Info(fmt.Sprintf("shaders: uniform %q is not active in %s, not setting it", name, p))
	}
	return loc
}

// target returns the location of name with the program current,
// or false if the uniform is not active.
func (p *Program) target(name string) (int32, bool) {
	loc := p.Location(name)
	if loc < 0 {
		return loc, false
	}
	p.cache.use(p.ID())
	return loc, true
}

func (p *Program) components(name string, n int) bool {
	return alert.Assert(n >= 1 && n <= 4, fmt.Sprintf("shaders: uniform %q set with %d components, need 1 to 4", name, n))
}

// SetFloat sets a float, vec2, vec3 or vec4 uniform from 1 to 4 values.
func (p *Program) SetFloat(name string, v ...float32) {
	if !p.components(name, len(v)) {
		return
	}
	loc, ok := p.target(name)
	if !ok {
		return
	}
	fns := p.cache.fns
	switch len(v) {
	case 1:
		fns.Uniform1fv(loc, v)
	case 2:
		fns.Uniform2fv(loc, v)
	case 3:
		fns.Uniform3fv(loc, v)
	case 4:
		fns.Uniform4fv(loc, v)
	}
}

// SetInt sets an int or ivecN uniform from 1 to 4 values.
// Samplers are set with SetInt or [Program.SetTexture].
func (p *Program) SetInt(name string, v ...int32) {
	if !p.components(name, len(v)) {
		return
	}
	loc, ok := p.target(name)
	if !ok {
		return
	}
	fns := p.cache.fns
	switch len(v) {
	case 1:
		fns.Uniform1iv(loc, v)
	case 2:
		fns.Uniform2iv(loc, v)
	case 3:
		fns.Uniform3iv(loc, v)
	case 4:
		fns.Uniform4iv(loc, v)
	}
}

// SetUint sets a uint or uvecN uniform from 1 to 4 values.
func (p *Program) SetUint(name string, v ...uint32) {
	if !p.components(name, len(v)) {
		return
	}
	loc, ok := p.target(name)
	if !ok {
		return
	}
	fns := p.cache.fns
	switch len(v) {
	case 1:
		fns.Uniform1uiv(loc, v)
	case 2:
		fns.Uniform2uiv(loc, v)
	case 3:
		fns.Uniform3uiv(loc, v)
	case 4:
		fns.Uniform4uiv(loc, v)
	}
}

func (p *Program) SetVec2(name string, v mgl32.Vec2) { p.SetFloat(name, v[:]...) }
func (p *Program) SetVec3(name string, v mgl32.Vec3) { p.SetFloat(name, v[:]...) }
func (p *Program) SetVec4(name string, v mgl32.Vec4) { p.SetFloat(name, v[:]...) }

// SetMat2 sets a mat2 uniform; mgl32 matrices are column major like GLSL.
func (p *Program) SetMat2(name string, m mgl32.Mat2) {
	if loc, ok := p.target(name); ok {
		p.cache.fns.UniformMatrix2fv(loc, m[:])
	}
}

func (p *Program) SetMat3(name string, m mgl32.Mat3) {
	if loc, ok := p.target(name); ok {
		p.cache.fns.UniformMatrix3fv(loc, m[:])
	}
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc, ok := p.target(name); ok {
		p.cache.fns.UniformMatrix4fv(loc, m[:])
	}
}

// SetFloats sets a float array uniform.
func (p *Program) SetFloats(name string, v []float32) {
	if loc, ok := p.target(name); ok {
		p.cache.fns.Uniform1fv(loc, v)
	}
}

// SetInts sets an int array uniform.
func (p *Program) SetInts(name string, v []int32) {
	if loc, ok := p.target(name); ok {
		p.cache.fns.Uniform1iv(loc, v)
	}
}

// SetUints sets a uint array uniform.
func (p *Program) SetUints(name string, v []uint32) {
	if loc, ok := p.target(name); ok {
		p.cache.fns.Uniform1uiv(loc, v)
	}
}

func flatten[V ~[2]float32 | ~[3]float32 | ~[4]float32 | ~[9]float32 | ~[16]float32](vs []V, n int) []float32 {
	fs := make([]float32, 0, len(vs)*n)
	for i := range vs {
		for j := range n {
			fs = append(fs, vs[i][j])
		}
	}
	return fs
}

func (p *Program) SetVec2s(name string, v []mgl32.Vec2) {
	if loc, ok := p.target(name); ok {
		p.cache.fns.Uniform2fv(loc, flatten(v, 2))
	}
}

func (p *Program) SetVec3s(name string, v []mgl32.Vec3) {
	if loc, ok := p.target(name); ok {
		p.cache.fns.Uniform3fv(loc, flatten(v, 3))
	}
}

func (p *Program) SetVec4s(name string, v []mgl32.Vec4) {
	if loc, ok := p.target(name); ok {
		p.cache.fns.Uniform4fv(loc, flatten(v, 4))
	}
}

func (p *Program) SetMat2s(name string, v []mgl32.Mat2) {
	if loc, ok := p.target(name); ok {
		p.cache.fns.UniformMatrix2fv(loc, flatten(v, 4))
	}
}

func (p *Program) SetMat3s(name string, v []mgl32.Mat3) {
	if loc, ok := p.target(name); ok {
		p.cache.fns.UniformMatrix3fv(loc, flatten(v, 9))
	}
}

func (p *Program) SetMat4s(name string, v []mgl32.Mat4) {
	if loc, ok := p.target(name); ok {
		p.cache.fns.UniformMatrix4fv(loc, flatten(v, 16))
	}
}

// Bindable is a texture that can bind itself on the active texture unit.
type Bindable interface {
	Bind()
}

// SetTexture activates texture unit, binds tex to it and points the
// named sampler uniform at the unit.
func (p *Program) SetTexture(name string, unit int, tex Bindable) {
	loc, ok := p.target(name)
	if !ok {
		return
	}
	fns := p.cache.fns
	fns.ActiveTexture(gl.TEXTURE0 + gl.Enum(unit))
	tex.Bind()
	fns.Uniform1iv(loc, []int32{int32(unit)})
}

// Set sets the named uniform from a Go value of any supported type:
// float32, float64, int, int32, uint32, bool, mgl32 vectors and
// matrices, and slices of those.
func (p *Program) Set(name string, value any) {
	switch v := value.(type) {
	case float32:
		p.SetFloat(name, v)
	case float64:
		p.SetFloat(name, float32(v))
	case int:
		p.SetInt(name, int32(v))
	case int32:
		p.SetInt(name, v)
	case uint32:
		p.SetUint(name, v)
	case bool:
		b := int32(0)
		if v {
			b = 1
		}
		p.SetInt(name, b)
	case mgl32.Vec2:
		p.SetVec2(name, v)
	case mgl32.Vec3:
		p.SetVec3(name, v)
	case mgl32.Vec4:
		p.SetVec4(name, v)
	case mgl32.Mat2:
		p.SetMat2(name, v)
	case mgl32.Mat3:
		p.SetMat3(name, v)
	case mgl32.Mat4:
		p.SetMat4(name, v)
	case []float32:
		p.SetFloats(name, v)
	case []int32:
		p.SetInts(name, v)
	case []uint32:
		p.SetUints(name, v)
	case []mgl32.Vec2:
		p.SetVec2s(name, v)
	case []mgl32.Vec3:
		p.SetVec3s(name, v)
	case []mgl32.Vec4:
		p.SetVec4s(name, v)
	case []mgl32.Mat2:
		p.SetMat2s(name, v)
	case []mgl32.Mat3:
		p.SetMat3s(name, v)
	case []mgl32.Mat4:
		p.SetMat4s(name, v)
	default:
		alert.Error(fmt.Sprintf("shaders: uniform %q can not be set from %T", name, value))
	}
}
