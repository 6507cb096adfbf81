// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grading

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Wheel is the state of a color wheel control. Red and Blue are the
// position of the center puck, Y raises all channels together and
// White is the outer ring, which fades the result towards white
// for positive values and towards black for negative ones.
type Wheel struct {
	Y     float32 `toml:"y"`
	Red   float32 `toml:"red"`
	Green float32 `toml:"green"`
	Blue  float32 `toml:"blue"`
	White float32 `toml:"white"`
}

// Value returns the RGB value of the wheel: each channel plus Y,
// then moved towards one by White.
func (w Wheel) Value() mgl32.Vec3 {
	ch := func(c float32) float32 {
		v := c + w.Y
		return v + w.White*(1-v)
	}
	return mgl32.Vec3{ch(w.Red), ch(w.Green), ch(w.Blue)}
}

// Labels returns the per channel readouts shown under the wheel.
func (w Wheel) Labels() [4]string {
	return [4]string{
		fmt.Sprintf("%.02f", w.Y+w.White),
		fmt.Sprintf("%.02f", w.Red+w.White),
		fmt.Sprintf("%.02f", w.Green+w.White),
		fmt.Sprintf("%.02f", w.Blue+w.White),
	}
}

// PuckOffset returns the puck position in unit space, with the
// Blue, Red vector pulled back inside the unit circle.
func (w Wheel) PuckOffset() (x, y float32) {
	excess := math32.Sqrt(max(w.Blue*w.Blue+w.Red*w.Red, 1))
	return w.Blue / excess * 0.5, -w.Red / excess * 0.5
}

// Gain scale factors for positive values. Gain needs far more room
// above one than below it.
const (
	gainLumaScale  = 15
	gainColorScale = 2
)

// GainWheel is a [Wheel] whose positive values are stretched,
// so the same control travel reaches much brighter gains.
type GainWheel struct {
	Wheel
}

func stretch(v, scale float32) float32 {
	if v <= 0 {
		return v
	}
	return v * scale
}

func unstretch(v, scale float32) float32 {
	if v <= 0 {
		return v
	}
	return v / scale
}

// Scaled returns the wheel with its positive components stretched.
func (g GainWheel) Scaled() Wheel {
	return Wheel{
		Y:     stretch(g.Y, gainLumaScale),
		Red:   stretch(g.Red, gainColorScale),
		Green: stretch(g.Green, gainColorScale),
		Blue:  stretch(g.Blue, gainColorScale),
		White: stretch(g.White, gainLumaScale),
	}
}

// SetScaled sets the control state from an already stretched wheel.
func (g *GainWheel) SetScaled(w Wheel) {
	g.Wheel = Wheel{
		Y:     unstretch(w.Y, gainLumaScale),
		Red:   unstretch(w.Red, gainColorScale),
		Green: unstretch(w.Green, gainColorScale),
		Blue:  unstretch(w.Blue, gainColorScale),
		White: unstretch(w.White, gainLumaScale),
	}
}

// Value returns the RGB value of the stretched wheel.
func (g GainWheel) Value() mgl32.Vec3 {
	return g.Scaled().Value()
}

// Labels returns the readouts of the stretched wheel.
func (g GainWheel) Labels() [4]string {
	return g.Scaled().Labels()
}

// Wheels are the four wheel controls that produce the per channel
// parts of [Settings].
type Wheels struct {
	Lift   Wheel
	Gamma  Wheel
	Gain   GainWheel
	Offset Wheel
}

// Apply writes the wheel values into s.
func (w Wheels) Apply(s Settings) Settings {
	s.Lift = w.Lift.Value()
	s.Gamma = w.Gamma.Value()
	s.Gain = w.Gain.Value()
	s.Offset = w.Offset.Value()
	return s
}
