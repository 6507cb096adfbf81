// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grading

import (
	"image/color"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, float32(1), s.Contrast)
	assert.Equal(t, float32(0.435), s.Pivot)
	assert.Equal(t, float32(1), s.Saturation)
	assert.Equal(t, float32(66), s.Temperature)
	assert.Equal(t, s, s.Clamp())
	assert.Equal(t, s, Wheels{}.Apply(s))
}

func TestClamp(t *testing.T) {
	s := Settings{Contrast: 3, Pivot: -1, Saturation: -2, HueShift: 7, Temperature: 1, UnsharpMask: -4, LUTAmount: 2}.Clamp()
	assert.Equal(t, float32(2), s.Contrast)
	assert.Equal(t, float32(0), s.Pivot)
	assert.Equal(t, float32(0), s.Saturation)
	assert.Equal(t, float32(6), s.HueShift)
	assert.Equal(t, TemperatureMin, s.Temperature)
	assert.Equal(t, float32(-1), s.UnsharpMask)
	assert.Equal(t, float32(1), s.LUTAmount)
}

func TestWheelValue(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{}, Wheel{}.Value())
	assert.Equal(t, mgl32.Vec3{0.5, 0.25, 0.25}, Wheel{Y: 0.25, Red: 0.25}.Value())

	// white pulls every channel towards one
	v := Wheel{Red: 0.5, White: 0.5}.Value()
	assert.InDelta(t, 0.75, v[0], 1e-6)
	assert.InDelta(t, 0.5, v[1], 1e-6)

	// and negative white towards black
	v = Wheel{White: -1}.Value()
	assert.InDelta(t, -1, v[2], 1e-6)

	assert.Equal(t, [4]string{"0.10", "0.60", "0.10", "0.10"}, Wheel{Red: 0.5, White: 0.1}.Labels())
}

func TestPuckOffset(t *testing.T) {
	x, y := Wheel{Blue: 0.5, Red: 0.5}.PuckOffset()
	assert.InDelta(t, 0.25, x, 1e-6)
	assert.InDelta(t, -0.25, y, 1e-6)
	x, y = Wheel{Blue: 3, Red: 4}.PuckOffset()
	assert.InDelta(t, 0.3, x, 1e-6)
	assert.InDelta(t, -0.4, y, 1e-6)
}

func TestGainWheel(t *testing.T) {
	g := GainWheel{Wheel{Y: 0.1, Red: 0.5, Green: -0.5, Blue: 0, White: 0.02}}
	s := g.Scaled()
	assert.InDelta(t, 1.5, s.Y, 1e-6)
	assert.InDelta(t, 1.0, s.Red, 1e-6)
	assert.InDelta(t, -0.5, s.Green, 1e-6)
	assert.InDelta(t, 0.3, s.White, 1e-6)
	assert.Equal(t, s.Value(), g.Value())

	var back GainWheel
	back.SetScaled(s)
	assert.InDelta(t, g.Y, back.Y, 1e-6)
	assert.InDelta(t, g.Red, back.Red, 1e-6)
	assert.InDelta(t, g.Green, back.Green, 1e-6)
	assert.InDelta(t, g.White, back.White, 1e-6)
}

func TestTemperatureSlider(t *testing.T) {
	assert.InDelta(t, 6, TemperatureFromSlider(0), 1e-3)
	assert.InDelta(t, 68.40625, TemperatureFromSlider(0.5), 1e-3)
	assert.InDelta(t, 4000, TemperatureFromSlider(1), 1e-2)
	assert.InDelta(t, 34.0076, TemperatureFromSlider(0.25), 1e-2)
	for _, x := range []float32{0, 0.1, 0.25, 0.4, 0.5, 0.6, 0.75, 0.9, 1} {
		assert.InDelta(t, x, SliderFromTemperature(TemperatureFromSlider(x)), 1e-3, "slider %v", x)
	}
	assert.InDelta(t, 0, SliderFromTemperature(1), 1e-6)
	assert.InDelta(t, 1, SliderFromTemperature(1e6), 1e-6)
}

func TestKelvinColor(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 67, 0, 255}, KelvinColor(10))
	assert.Equal(t, color.RGBA{255, 205, 166, 255}, KelvinColor(40))
	assert.Equal(t, color.RGBA{255, 255, 252, 255}, KelvinColor(66))
	assert.Equal(t, color.RGBA{201, 218, 255, 255}, KelvinColor(100))
	assert.Equal(t, color.RGBA{151, 185, 255, 255}, KelvinColor(400))

	cs := TemperatureGradient(1, 20)
	require.Len(t, cs, 21)
	assert.Equal(t, KelvinColor(TemperatureMin), cs[0])
	assert.Equal(t, KelvinColor(TemperatureMax), cs[20])
	assert.Len(t, TemperatureGradient(0.5, 0), 2)
}

const cube = `# a comment
TITLE "warm"
LUT_3D_SIZE 2
DOMAIN_MIN 0 0 0
DOMAIN_MAX 1 1 1

0 0 0
1 0 0
0 1 0
1 1 0
0 0 1
1 0 1
0 1 1
1 1 0.5
`

func TestReadCube(t *testing.T) {
	l, err := ReadCube(strings.NewReader(cube))
	require.NoError(t, err)
	assert.Equal(t, "warm", l.Title)
	assert.Equal(t, 2, l.Size)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, l.DomainMax)
	assert.Len(t, l.Data, 24)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, l.At(1, 0, 0))
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, l.At(0, 1, 0))
	assert.Equal(t, mgl32.Vec3{1, 1, 0.5}, l.At(1, 1, 1))
	assert.Len(t, l.Bytes(), 96)
}

func TestReadCubeErrors(t *testing.T) {
	bad := map[string]string{
		"1D":        "LUT_1D_SIZE 16\n",
		"no size":   "0 0 0\n",
		"size":      "LUT_3D_SIZE x\n",
		"too big":   "LUT_3D_SIZE 1000\n",
		"short":     "LUT_3D_SIZE 2\n0 0 0\n",
		"values":    "LUT_3D_SIZE 2\n0 0\n",
		"number":    "LUT_3D_SIZE 2\n0 0 z\n",
		"domain":    "DOMAIN_MIN 0 0\n",
		"empty":     "",
		"two sizes": "LUT_3D_SIZE 2 2\n",
	}
	for name, src := range bad {
		_, err := ReadCube(strings.NewReader(src))
		assert.Error(t, err, name)
	}
}

func TestIdentityLUT(t *testing.T) {
	l := IdentityLUT(3)
	assert.Equal(t, 3, l.Size)
	assert.Len(t, l.Data, 81)
	assert.Equal(t, mgl32.Vec3{0.5, 0, 1}, l.At(1, 0, 2))
	assert.Equal(t, 2, IdentityLUT(0).Size)
}
