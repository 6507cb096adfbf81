// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grading

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Temperature range in hundreds of kelvin.
const (
	TemperatureMin float32 = 6
	TemperatureMax float32 = 4000
)

const (
	// tempPower pushes most of the slider travel towards low temperatures.
	tempPower float32 = 6

	// tempSmear flattens the curve around the middle of the slider.
	tempSmear float32 = 3
)

// TemperatureFromSlider maps a slider position in [0, 1] to a
// temperature. The middle of the slider is stretched out and the
// curve is pushed towards the photographic range.
func TemperatureFromSlider(t float32) float32 {
	t -= 0.5
	s := float32(0.5)
	if t < 0 {
		s = -0.5
	}
	t = math32.Pow(math32.Abs(t+t), tempSmear)*s + 0.5
	return math32.Pow(clamp(t, 0, 1), tempPower)*(TemperatureMax-TemperatureMin) + TemperatureMin
}

// SliderFromTemperature is the inverse of [TemperatureFromSlider].
func SliderFromTemperature(temp float32) float32 {
	t := math32.Pow(clamp((temp-TemperatureMin)/(TemperatureMax-TemperatureMin), 0, 1), 1/tempPower)
	t -= 0.5
	s := float32(0.5)
	if t < 0 {
		s = -0.5
	}
	return math32.Pow(math32.Abs(t+t), 1/tempSmear)*s + 0.5
}

// KelvinColor returns the color of a black body at the given
// temperature in hundreds of kelvin, using Tanner Helland's fit.
func KelvinColor(temp float32) color.RGBA {
	c := func(v float32) uint8 {
		return uint8(clamp(int(v), 0, 255))
	}
	if temp <= 66 {
		g := c(99.4708025861*math32.Log(temp) - 161.1195681661)
		if temp < 19 {
			return color.RGBA{255, g, 0, 255}
		}
		b := c(138.5177312231*math32.Log(temp-10) - 305.0447927307)
		return color.RGBA{255, g, b, 255}
	}
	r := c(329.698727446 * math32.Pow(temp-60, -0.1332047592))
	g := c(288.1221695283 * math32.Pow(temp-60, -0.0755148492))
	return color.RGBA{r, g, 255, 255}
}

// TemperatureGradient returns n+1 colors sampling the slider
// from 0 to pos, as drawn on the slider track.
func TemperatureGradient(pos float32, n int) []color.RGBA {
	n = max(n, 1)
	cs := make([]color.RGBA, n+1)
	for i := range cs {
		cs[i] = KelvinColor(TemperatureFromSlider(pos * float32(i) / float32(n)))
	}
	return cs
}

// kelvinVec returns [KelvinColor] as linear 0-1 floats for the shader.
func kelvinVec(temp float32) [3]float32 {
	c := KelvinColor(temp)
	return [3]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}
