// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders compiles GLSL shader files and links them into
// programs, caching both by file and stage. Cached entries are
// evicted when any file that went into them changes on disk,
// and are rebuilt on the next fetch.
package shaders

import (
	"encoding/binary"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"cogentcore.org/colorgrade/gl"
)

// Stage is a shader stage, valued as its OpenGL shader type.
type Stage gl.Enum

const (
	Vertex   = Stage(gl.VERTEX_SHADER)
	Fragment = Stage(gl.FRAGMENT_SHADER)
	Geometry = Stage(gl.GEOMETRY_SHADER)
	Compute  = Stage(gl.COMPUTE_SHADER)
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "Vertex"
	case Fragment:
		return "Fragment"
	case Geometry:
		return "Geometry"
	case Compute:
		return "Compute"
	}
	return fmt.Sprintf("Stage(0x%X)", uint32(s))
}

// StageFromExt returns the stage for the conventional file extensions
// .vert, .frag, .geom and .comp.
func StageFromExt(ext string) (Stage, bool) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "vert", "vs":
		return Vertex, true
	case "frag", "fs":
		return Fragment, true
	case "geom", "gs":
		return Geometry, true
	case "comp", "cs":
		return Compute, true
	}
	return 0, false
}

// Shader names one stage of a program by its source file.
type Shader struct {
	Path  string
	Stage Stage
}

// NewShader returns a shader for path with the stage
// taken from its extension, or Fragment if unknown.
func NewShader(path string) Shader {
	st, ok := StageFromExt(filepath.Ext(path))
	if !ok {
		st = Fragment
	}
	return Shader{Path: path, Stage: st}
}

func (s Shader) String() string {
	return s.Path + " (" + s.Stage.String() + ")"
}

// Normalize returns the absolute clean form of path used for keys
// and file associations. Paths are case folded on Windows only.
func Normalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	abs = filepath.Clean(abs)
	if runtime.GOOS == "windows" {
		abs = strings.ToLower(abs)
	}
	return abs
}

// ShaderKey returns the cache key of a shader: the normalized path
// followed by the four little-endian bytes of the stage.
func ShaderKey(s Shader) string {
	b := binary.LittleEndian.AppendUint32([]byte(Normalize(s.Path)), uint32(s.Stage))
	return string(b)
}

// ProgramKey returns the cache key of a program: the concatenation
// of its shader keys, in order.
func ProgramKey(shaders []Shader) string {
	var sb strings.Builder
	for _, s := range shaders {
		sb.WriteString(ShaderKey(s))
	}
	return sb.String()
}
