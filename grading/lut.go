// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grading

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"cogentcore.org/colorgrade/base/errors"
	"cogentcore.org/colorgrade/buffers"
	"cogentcore.org/colorgrade/formats"
	"cogentcore.org/colorgrade/gl"
)

// MaxLUTSize is the largest LUT_3D_SIZE accepted.
const MaxLUTSize = 256

// LUT is a 3D color lookup table.
type LUT struct {
	Title string

	// Size is the number of samples along each axis.
	Size int

	DomainMin, DomainMax mgl32.Vec3

	// Data holds Size³ RGB triples with red changing fastest,
	// then green, then blue.
	Data []float32
}

// IdentityLUT returns a LUT that maps every color to itself.
func IdentityLUT(size int) *LUT {
	size = max(size, 2)
	l := &LUT{Title: "identity", Size: size, DomainMax: mgl32.Vec3{1, 1, 1}}
	l.Data = make([]float32, 0, 3*size*size*size)
	step := 1 / float32(size-1)
	for b := range size {
		for g := range size {
			for r := range size {
				l.Data = append(l.Data, float32(r)*step, float32(g)*step, float32(b)*step)
			}
		}
	}
	return l
}

// OpenCube reads a .cube LUT file.
func OpenCube(filename string) (*LUT, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := ReadCube(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return l, nil
}

// ReadCube parses an Adobe .cube 3D LUT. Only 3D tables are supported.
func ReadCube(r io.Reader) (*LUT, error) {
	l := &LUT{DomainMax: mgl32.Vec3{1, 1, 1}}
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "TITLE":
			l.Title = strings.Trim(strings.TrimSpace(strings.TrimPrefix(line, "TITLE")), `"`)
			continue
		case "LUT_1D_SIZE":
			return nil, fmt.Errorf("line %d: 1D LUTs are not supported", ln)
		case "LUT_3D_SIZE":
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: malformed LUT_3D_SIZE", ln)
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 2 || n > MaxLUTSize {
				return nil, fmt.Errorf("line %d: invalid LUT_3D_SIZE %q", ln, fields[1])
			}
			l.Size = n
			l.Data = make([]float32, 0, 3*n*n*n)
			continue
		case "DOMAIN_MIN", "DOMAIN_MAX":
			v, err := triple(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %s: %w", ln, fields[0], err)
			}
			if fields[0] == "DOMAIN_MIN" {
				l.DomainMin = v
			} else {
				l.DomainMax = v
			}
			continue
		}
		if l.Size == 0 {
			return nil, fmt.Errorf("line %d: data before LUT_3D_SIZE", ln)
		}
		v, err := triple(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", ln, err)
		}
		l.Data = append(l.Data, v[:]...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if l.Size == 0 {
		return nil, errors.New("missing LUT_3D_SIZE")
	}
	if want := 3 * l.Size * l.Size * l.Size; len(l.Data) != want {
		return nil, fmt.Errorf("have %d values, LUT_3D_SIZE %d needs %d", len(l.Data), l.Size, want)
	}
	return l, nil
}

func triple(fields []string) (mgl32.Vec3, error) {
	var v mgl32.Vec3
	if len(fields) != 3 {
		return v, fmt.Errorf("need 3 values, have %d", len(fields))
	}
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return v, err
		}
		v[i] = float32(x)
	}
	return v, nil
}

// At returns the entry at the given red, green and blue indices.
func (l *LUT) At(r, g, b int) mgl32.Vec3 {
	i := 3 * (r + l.Size*(g+l.Size*b))
	return mgl32.Vec3{l.Data[i], l.Data[i+1], l.Data[i+2]}
}

// Bytes returns the table as native endian float32s, as uploaded.
func (l *LUT) Bytes() []byte {
	b := make([]byte, 0, 4*len(l.Data))
	for _, f := range l.Data {
		b = binary.NativeEndian.AppendUint32(b, math.Float32bits(f))
	}
	return b
}

// Texture returns an RGB32F 3D texture holding the table.
func (l *LUT) Texture(fns gl.Functions) *buffers.Texture {
	return buffers.NewTexture3D(fns, formats.RGB32F, l.Size, l.Size, l.Size, [][]byte{l.Bytes()})
}
