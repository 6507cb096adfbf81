// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gltest provides an in-memory [gl.Functions] that records
// every call and simulates enough driver state for tests: object ids,
// texture and buffer storage, shader compile and link status derived
// from the source text, and uniform locations discovered from
// uniform declarations.
//
// A shader fails to compile when its source is empty or contains
// an #error directive. A program fails to link when any attached
// shader failed to compile or no shader is attached.
package gltest

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"cogentcore.org/colorgrade/gl"
)

// Call is one recorded call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

// Image is the storage of one texture level or cube face level.
type Image struct {
	Internal, Format, Type gl.Enum
	Width, Height, Depth   int
	Data                   []byte
}

// Level identifies a texture image: the image target
// (a cube face for cube maps) and the mip level.
type Level struct {
	Target gl.Enum
	Level  int
}

// Texture is a simulated texture object.
type Texture struct {
	Target  gl.Enum
	Images  map[Level]*Image
	Params  map[gl.Enum]int
	Mipmaps int // number of GenerateMipmap calls
}

// Buffer is a simulated buffer object.
type Buffer struct {
	Data  []byte
	Usage gl.Enum
}

// Renderbuffer is a simulated renderbuffer object.
type Renderbuffer struct {
	Internal      gl.Enum
	Width, Height int
}

// Framebuffer is a simulated framebuffer object.
type Framebuffer struct {
	Attachments map[gl.Enum]uint32
}

// Shader is a simulated shader object.
type Shader struct {
	Stage    gl.Enum
	Source   string
	Compiled bool
	Compiles int
	Log      string
}

// Program is a simulated program object.
type Program struct {
	Shaders   []uint32
	Linked    bool
	Validated bool
	Log       string
	Locations map[string]int32

	// Uniforms holds the last value written to each location,
	// as the slice passed to the Uniform call.
	Uniforms map[int32]any
}

// Uniform returns the last value written to the named uniform.
func (p *Program) Uniform(name string) any {
	loc, ok := p.Locations[name]
	if !ok {
		return nil
	}
	return p.Uniforms[loc]
}

// Device implements [gl.Functions] in memory.
// It is not safe for concurrent use, like a real context.
type Device struct {
	Calls []Call

	Textures      map[uint32]*Texture
	Buffers       map[uint32]*Buffer
	Renderbuffers map[uint32]*Renderbuffer
	Framebuffers  map[uint32]*Framebuffer
	VertexArrays  map[uint32]bool
	Shaders       map[uint32]*Shader
	Programs      map[uint32]*Program

	// FailValidate makes every ValidateProgram fail.
	FailValidate bool

	// Draws counts DrawArrays calls.
	Draws int

	Pixel      map[gl.Enum]int
	Current    uint32 // program in use
	ActiveUnit int
	View       [4]int

	nextID  uint32
	units   map[int]map[gl.Enum]uint32
	bound   map[gl.Enum]uint32
	indexed map[gl.Enum]map[int]uint32
	images  map[int]uint32
}

var _ gl.Functions = (*Device)(nil)

// New returns a new empty [Device].
func New() *Device {
	return &Device{
		Textures:      map[uint32]*Texture{},
		Buffers:       map[uint32]*Buffer{},
		Renderbuffers: map[uint32]*Renderbuffer{},
		Framebuffers:  map[uint32]*Framebuffer{},
		VertexArrays:  map[uint32]bool{},
		Shaders:       map[uint32]*Shader{},
		Programs:      map[uint32]*Program{},
		Pixel:         map[gl.Enum]int{},
		units:         map[int]map[gl.Enum]uint32{},
		bound:         map[gl.Enum]uint32{},
		indexed:       map[gl.Enum]map[int]uint32{},
		images:        map[int]uint32{},
	}
}

func (d *Device) record(name string, args ...any) {
	d.Calls = append(d.Calls, Call{Name: name, Args: args})
}

func (d *Device) gen() uint32 {
	d.nextID++
	return d.nextID
}

// Reset forgets the recorded calls, keeping all object state.
func (d *Device) Reset() {
	d.Calls = nil
}

// Count returns how many times the named function was called.
func (d *Device) Count(name string) int {
	n := 0
	for _, c := range d.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Names returns the names of the recorded calls, in order.
func (d *Device) Names() []string {
	ns := make([]string, len(d.Calls))
	for i, c := range d.Calls {
		ns[i] = c.Name
	}
	return ns
}

// Find returns the recorded calls with the given name.
func (d *Device) Find(name string) []Call {
	var cs []Call
	for _, c := range d.Calls {
		if c.Name == name {
			cs = append(cs, c)
		}
	}
	return cs
}

// Bound returns the object bound to target, on the active unit for textures.
func (d *Device) Bound(target gl.Enum) uint32 {
	if isTextureTarget(target) {
		return d.units[d.ActiveUnit][target]
	}
	return d.bound[target]
}

// BoundAt returns the texture bound to target on the given unit.
func (d *Device) BoundAt(unit int, target gl.Enum) uint32 {
	return d.units[unit][target]
}

// BoundBase returns the buffer bound to the indexed binding point.
func (d *Device) BoundBase(target gl.Enum, index int) uint32 {
	return d.indexed[target][index]
}

// ImageUnit returns the texture bound to an image unit.
func (d *Device) ImageUnit(unit int) uint32 {
	return d.images[unit]
}

// Program returns the program in use, or nil.
func (d *Device) Program() *Program {
	return d.Programs[d.Current]
}

func isTextureTarget(t gl.Enum) bool {
	return t == gl.TEXTURE_2D || t == gl.TEXTURE_3D || t == gl.TEXTURE_CUBE_MAP
}

func cubeFace(t gl.Enum) bool {
	return t >= gl.TEXTURE_CUBE_MAP_POSITIVE_X && t < gl.TEXTURE_CUBE_MAP_POSITIVE_X+6
}

// texture returns the texture object that target (possibly a cube face) refers to.
func (d *Device) texture(target gl.Enum) *Texture {
	bt := target
	if cubeFace(target) {
		bt = gl.TEXTURE_CUBE_MAP
	}
	return d.Textures[d.units[d.ActiveUnit][bt]]
}

func (d *Device) ActiveTexture(texture gl.Enum) {
	d.record("ActiveTexture", texture)
	d.ActiveUnit = int(texture - gl.TEXTURE0)
}

func (d *Device) BindTexture(target gl.Enum, tex uint32) {
	d.record("BindTexture", target, tex)
	u := d.units[d.ActiveUnit]
	if u == nil {
		u = map[gl.Enum]uint32{}
		d.units[d.ActiveUnit] = u
	}
	u[target] = tex
	if t := d.Textures[tex]; t != nil && t.Target == 0 {
		t.Target = target
	}
}

func (d *Device) GenTexture() uint32 {
	id := d.gen()
	d.record("GenTexture", id)
	d.Textures[id] = &Texture{Images: map[Level]*Image{}, Params: map[gl.Enum]int{}}
	return id
}

func (d *Device) DeleteTexture(tex uint32) {
	d.record("DeleteTexture", tex)
	delete(d.Textures, tex)
}

func (d *Device) TexImage2D(target gl.Enum, level int, internal gl.Enum, width, height int, format, typ gl.Enum, data []byte) {
	d.record("TexImage2D", target, level, internal, width, height, format, typ, len(data))
	d.texImage(target, level, &Image{Internal: internal, Format: format, Type: typ, Width: width, Height: height, Depth: 1, Data: slices.Clone(data)})
}

func (d *Device) TexImage3D(target gl.Enum, level int, internal gl.Enum, width, height, depth int, format, typ gl.Enum, data []byte) {
	d.record("TexImage3D", target, level, internal, width, height, depth, format, typ, len(data))
	d.texImage(target, level, &Image{Internal: internal, Format: format, Type: typ, Width: width, Height: height, Depth: depth, Data: slices.Clone(data)})
}

func (d *Device) texImage(target gl.Enum, level int, img *Image) {
	t := d.texture(target)
	if t == nil {
		return
	}
	t.Images[Level{target, level}] = img
}

func (d *Device) TexParameteri(target, pname gl.Enum, param int) {
	d.record("TexParameteri", target, pname, param)
	if t := d.texture(target); t != nil {
		t.Params[pname] = param
	}
}

func (d *Device) GenerateMipmap(target gl.Enum) {
	d.record("GenerateMipmap", target)
	t := d.texture(target)
	if t == nil {
		return
	}
	t.Mipmaps++
	faces := []gl.Enum{target}
	if target == gl.TEXTURE_CUBE_MAP {
		faces = faces[:0]
		for f := range 6 {
			faces = append(faces, gl.TEXTURE_CUBE_MAP_POSITIVE_X+gl.Enum(f))
		}
	}
	maxLevel, ok := t.Params[gl.TEXTURE_MAX_LEVEL]
	if !ok {
		maxLevel = 1000
	}
	for _, f := range faces {
		base := t.Images[Level{f, 0}]
		if base == nil {
			continue
		}
		w, h, dp := base.Width, base.Height, base.Depth
		for l := 1; l <= maxLevel && (w > 1 || h > 1 || dp > 1); l++ {
			w, h = max(w/2, 1), max(h/2, 1)
			if target == gl.TEXTURE_3D {
				dp = max(dp/2, 1)
			}
			t.Images[Level{f, l}] = &Image{Internal: base.Internal, Format: base.Format, Type: base.Type, Width: w, Height: h, Depth: dp}
		}
	}
}

func (d *Device) GetTexImage(target gl.Enum, level int, format, typ gl.Enum, dst []byte) {
	d.record("GetTexImage", target, level, format, typ, len(dst))
	t := d.texture(target)
	if t == nil {
		return
	}
	if img := t.Images[Level{target, level}]; img != nil {
		copy(dst, img.Data)
	}
}

func (d *Device) BindImageTexture(unit int, tex uint32, level int, layered bool, layer int, access, format gl.Enum) {
	d.record("BindImageTexture", unit, tex, level, layered, layer, access, format)
	d.images[unit] = tex
}

func (d *Device) PixelStorei(pname gl.Enum, param int) {
	d.record("PixelStorei", pname, param)
	d.Pixel[pname] = param
}

func (d *Device) GenRenderbuffer() uint32 {
	id := d.gen()
	d.record("GenRenderbuffer", id)
	d.Renderbuffers[id] = &Renderbuffer{}
	return id
}

func (d *Device) DeleteRenderbuffer(rb uint32) {
	d.record("DeleteRenderbuffer", rb)
	delete(d.Renderbuffers, rb)
}

func (d *Device) BindRenderbuffer(target gl.Enum, rb uint32) {
	d.record("BindRenderbuffer", target, rb)
	d.bound[target] = rb
}

func (d *Device) RenderbufferStorage(target, internal gl.Enum, width, height int) {
	d.record("RenderbufferStorage", target, internal, width, height)
	if rb := d.Renderbuffers[d.bound[target]]; rb != nil {
		rb.Internal, rb.Width, rb.Height = internal, width, height
	}
}

func (d *Device) GenFramebuffer() uint32 {
	id := d.gen()
	d.record("GenFramebuffer", id)
	d.Framebuffers[id] = &Framebuffer{Attachments: map[gl.Enum]uint32{}}
	return id
}

func (d *Device) DeleteFramebuffer(fb uint32) {
	d.record("DeleteFramebuffer", fb)
	delete(d.Framebuffers, fb)
}

func (d *Device) BindFramebuffer(target gl.Enum, fb uint32) {
	d.record("BindFramebuffer", target, fb)
	d.bound[target] = fb
}

func (d *Device) FramebufferTexture2D(target, attachment, texTarget gl.Enum, tex uint32, level int) {
	d.record("FramebufferTexture2D", target, attachment, texTarget, tex, level)
	if fb := d.Framebuffers[d.bound[target]]; fb != nil {
		fb.Attachments[attachment] = tex
	}
}

func (d *Device) FramebufferRenderbuffer(target, attachment, rbTarget gl.Enum, rb uint32) {
	d.record("FramebufferRenderbuffer", target, attachment, rbTarget, rb)
	if fb := d.Framebuffers[d.bound[target]]; fb != nil {
		fb.Attachments[attachment] = rb
	}
}

// CheckFramebufferStatus reports complete when a color attachment is present.
func (d *Device) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	d.record("CheckFramebufferStatus", target)
	fb := d.Framebuffers[d.bound[target]]
	if fb == nil || fb.Attachments[gl.COLOR_ATTACHMENT0] == 0 {
		return 0x8CD6 // FRAMEBUFFER_INCOMPLETE_ATTACHMENT
	}
	return gl.FRAMEBUFFER_COMPLETE
}

func (d *Device) GenBuffer() uint32 {
	id := d.gen()
	d.record("GenBuffer", id)
	d.Buffers[id] = &Buffer{}
	return id
}

func (d *Device) DeleteBuffer(buf uint32) {
	d.record("DeleteBuffer", buf)
	delete(d.Buffers, buf)
}

func (d *Device) BindBuffer(target gl.Enum, buf uint32) {
	d.record("BindBuffer", target, buf)
	d.bound[target] = buf
}

func (d *Device) BindBufferBase(target gl.Enum, index int, buf uint32) {
	d.record("BindBufferBase", target, index, buf)
	m := d.indexed[target]
	if m == nil {
		m = map[int]uint32{}
		d.indexed[target] = m
	}
	m[index] = buf
	d.bound[target] = buf
}

func (d *Device) BufferData(target gl.Enum, size int, data []byte, usage gl.Enum) {
	d.record("BufferData", target, size, len(data), usage)
	b := d.Buffers[d.bound[target]]
	if b == nil {
		return
	}
	b.Data = make([]byte, size)
	copy(b.Data, data)
	b.Usage = usage
}

func (d *Device) GetBufferSubData(target gl.Enum, offset int, dst []byte) {
	d.record("GetBufferSubData", target, offset, len(dst))
	if b := d.Buffers[d.bound[target]]; b != nil && offset < len(b.Data) {
		copy(dst, b.Data[offset:])
	}
}

func (d *Device) GenVertexArray() uint32 {
	id := d.gen()
	d.record("GenVertexArray", id)
	d.VertexArrays[id] = true
	return id
}

func (d *Device) DeleteVertexArray(vao uint32) {
	d.record("DeleteVertexArray", vao)
	delete(d.VertexArrays, vao)
}

func (d *Device) BindVertexArray(vao uint32) {
	d.record("BindVertexArray", vao)
	d.bound[0] = vao
}

func (d *Device) CreateShader(stage gl.Enum) uint32 {
	id := d.gen()
	d.record("CreateShader", stage, id)
	d.Shaders[id] = &Shader{Stage: stage}
	return id
}

func (d *Device) DeleteShader(sh uint32) {
	d.record("DeleteShader", sh)
	delete(d.Shaders, sh)
}

func (d *Device) ShaderSource(sh uint32, src string) {
	d.record("ShaderSource", sh, len(src))
	if s := d.Shaders[sh]; s != nil {
		s.Source = src
	}
}

var errorDirective = regexp.MustCompile(`(?m)^\s*#error\b(.*)$`)

func (d *Device) CompileShader(sh uint32) {
	d.record("CompileShader", sh)
	s := d.Shaders[sh]
	if s == nil {
		return
	}
	s.Compiles++
	s.Compiled, s.Log = true, ""
	if strings.TrimSpace(s.Source) == "" {
		s.Compiled, s.Log = false, "0:0: error: empty shader source"
	} else if m := errorDirective.FindStringSubmatch(s.Source); m != nil {
		s.Compiled, s.Log = false, "0:1: error: #error"+m[1]
	}
}

func (d *Device) GetShaderi(sh uint32, pname gl.Enum) int {
	d.record("GetShaderi", sh, pname)
	s := d.Shaders[sh]
	if s == nil {
		return 0
	}
	switch pname {
	case gl.COMPILE_STATUS:
		if s.Compiled {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		if s.Log == "" {
			return 0
		}
		return len(s.Log) + 1
	}
	return 0
}

func (d *Device) GetShaderInfoLog(sh uint32) string {
	d.record("GetShaderInfoLog", sh)
	if s := d.Shaders[sh]; s != nil {
		return s.Log
	}
	return ""
}

func (d *Device) CreateProgram() uint32 {
	id := d.gen()
	d.record("CreateProgram", id)
	d.Programs[id] = &Program{Locations: map[string]int32{}, Uniforms: map[int32]any{}}
	return id
}

func (d *Device) DeleteProgram(prog uint32) {
	d.record("DeleteProgram", prog)
	delete(d.Programs, prog)
	if d.Current == prog {
		d.Current = 0
	}
}

func (d *Device) AttachShader(prog, sh uint32) {
	d.record("AttachShader", prog, sh)
	if p := d.Programs[prog]; p != nil {
		p.Shaders = append(p.Shaders, sh)
	}
}

var uniformDecl = regexp.MustCompile(`(?m)^\s*(?:layout\s*\([^)]*\)\s*)?uniform\s+\w+\s+(\w+)\s*(\[\s*\d+\s*\])?\s*;`)

func (d *Device) LinkProgram(prog uint32) {
	d.record("LinkProgram", prog)
	p := d.Programs[prog]
	if p == nil {
		return
	}
	p.Linked, p.Log = true, ""
	p.Locations = map[string]int32{}
	if len(p.Shaders) == 0 {
		p.Linked, p.Log = false, "error: no shaders attached"
		return
	}
	loc := int32(0)
	for _, id := range p.Shaders {
		s := d.Shaders[id]
		if s == nil || !s.Compiled {
			p.Linked, p.Log = false, fmt.Sprintf("error: shader %d is not compiled", id)
			p.Locations = map[string]int32{}
			return
		}
		for _, m := range uniformDecl.FindAllStringSubmatch(s.Source, -1) {
			name := m[1]
			if _, has := p.Locations[name]; has {
				continue
			}
			p.Locations[name] = loc
			if m[2] != "" {
				p.Locations[name+"[0]"] = loc
			}
			loc++
		}
	}
}

func (d *Device) ValidateProgram(prog uint32) {
	d.record("ValidateProgram", prog)
	if p := d.Programs[prog]; p != nil {
		p.Validated = p.Linked && !d.FailValidate
	}
}

func (d *Device) GetProgrami(prog uint32, pname gl.Enum) int {
	d.record("GetProgrami", prog, pname)
	p := d.Programs[prog]
	if p == nil {
		return 0
	}
	status := false
	switch pname {
	case gl.LINK_STATUS:
		status = p.Linked
	case gl.VALIDATE_STATUS:
		status = p.Validated
	case gl.INFO_LOG_LENGTH:
		if p.Log == "" {
			return 0
		}
		return len(p.Log) + 1
	}
	if status {
		return gl.TRUE
	}
	return gl.FALSE
}

func (d *Device) GetProgramInfoLog(prog uint32) string {
	d.record("GetProgramInfoLog", prog)
	if p := d.Programs[prog]; p != nil {
		if p.Log == "" && !p.Validated && p.Linked {
			return "validation failed"
		}
		return p.Log
	}
	return ""
}

func (d *Device) UseProgram(prog uint32) {
	d.record("UseProgram", prog)
	d.Current = prog
}

func (d *Device) GetUniformLocation(prog uint32, name string) int32 {
	d.record("GetUniformLocation", prog, name)
	if p := d.Programs[prog]; p != nil && p.Linked {
		if loc, ok := p.Locations[name]; ok {
			return loc
		}
	}
	return -1
}

func (d *Device) uniform(name string, loc int32, v any) {
	d.record(name, loc, v)
	if p := d.Programs[d.Current]; p != nil {
		p.Uniforms[loc] = v
	}
}

func (d *Device) Uniform1fv(loc int32, v []float32) { d.uniform("Uniform1fv", loc, slices.Clone(v)) }
func (d *Device) Uniform2fv(loc int32, v []float32) { d.uniform("Uniform2fv", loc, slices.Clone(v)) }
func (d *Device) Uniform3fv(loc int32, v []float32) { d.uniform("Uniform3fv", loc, slices.Clone(v)) }
func (d *Device) Uniform4fv(loc int32, v []float32) { d.uniform("Uniform4fv", loc, slices.Clone(v)) }
func (d *Device) Uniform1iv(loc int32, v []int32)   { d.uniform("Uniform1iv", loc, slices.Clone(v)) }
func (d *Device) Uniform2iv(loc int32, v []int32)   { d.uniform("Uniform2iv", loc, slices.Clone(v)) }
func (d *Device) Uniform3iv(loc int32, v []int32)   { d.uniform("Uniform3iv", loc, slices.Clone(v)) }
func (d *Device) Uniform4iv(loc int32, v []int32)   { d.uniform("Uniform4iv", loc, slices.Clone(v)) }
func (d *Device) Uniform1uiv(loc int32, v []uint32) { d.uniform("Uniform1uiv", loc, slices.Clone(v)) }
func (d *Device) Uniform2uiv(loc int32, v []uint32) { d.uniform("Uniform2uiv", loc, slices.Clone(v)) }
func (d *Device) Uniform3uiv(loc int32, v []uint32) { d.uniform("Uniform3uiv", loc, slices.Clone(v)) }
func (d *Device) Uniform4uiv(loc int32, v []uint32) { d.uniform("Uniform4uiv", loc, slices.Clone(v)) }

func (d *Device) UniformMatrix2fv(loc int32, v []float32) {
	d.uniform("UniformMatrix2fv", loc, slices.Clone(v))
}

func (d *Device) UniformMatrix3fv(loc int32, v []float32) {
	d.uniform("UniformMatrix3fv", loc, slices.Clone(v))
}

func (d *Device) UniformMatrix4fv(loc int32, v []float32) {
	d.uniform("UniformMatrix4fv", loc, slices.Clone(v))
}

func (d *Device) Viewport(x, y, width, height int) {
	d.record("Viewport", x, y, width, height)
	d.View = [4]int{x, y, width, height}
}

func (d *Device) ClearColor(r, g, b, a float32) { d.record("ClearColor", r, g, b, a) }

func (d *Device) Clear(mask gl.Enum) { d.record("Clear", mask) }

func (d *Device) DrawArrays(mode gl.Enum, first, count int) {
	d.record("DrawArrays", mode, first, count)
	d.Draws++
}

func (d *Device) GetError() gl.Enum {
	d.record("GetError")
	return gl.NO_ERROR
}
