// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grading holds the color grading settings, the math that
// turns control positions into those settings, a 3D LUT loader and
// the preview surface that renders an image with the settings applied.
package grading

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Settings are the values of every grading control.
// They map one to one to the uniforms of the grading shader.
type Settings struct {

	// Lift moves the shadows, per channel.
	Lift mgl32.Vec3 `toml:"lift"`

	// Gamma bends the midtones, per channel.
	Gamma mgl32.Vec3 `toml:"gamma"`

	// Gain scales the highlights, per channel.
	Gain mgl32.Vec3 `toml:"gain"`

	// Offset is added to every channel.
	Offset mgl32.Vec3 `toml:"offset"`

	// Contrast around Pivot, in [0, 2].
	Contrast float32 `toml:"contrast"`

	// Pivot is the luminance contrast pivots around, in [0, 1].
	Pivot float32 `toml:"pivot"`

	// Saturation in [0, 2].
	Saturation float32 `toml:"saturation"`

	// HueShift rotates hue, in [-6, 6] sextants.
	HueShift float32 `toml:"hue_shift"`

	// Temperature is the white balance in hundreds of kelvin,
	// in [TemperatureMin, TemperatureMax].
	Temperature float32 `toml:"temperature"`

	// UnsharpMask sharpens for positive values and blurs for negative
	// ones, in [-1, 1].
	UnsharpMask float32 `toml:"unsharp_mask"`

	// LUTAmount blends the 3D LUT in, in [0, 1].
	LUTAmount float32 `toml:"lut_amount"`
}

// DefaultSettings returns the settings of controls at rest:
// every wheel centered, unit contrast and saturation, and neutral
// white balance.
func DefaultSettings() Settings {
	return Settings{
		Contrast:    1,
		Pivot:       0.435,
		Saturation:  1,
		Temperature: 66,
		LUTAmount:   1,
	}
}

// Clamp returns the settings with every slider value in its range.
func (s Settings) Clamp() Settings {
	s.Contrast = clamp(s.Contrast, 0, 2)
	s.Pivot = clamp(s.Pivot, 0, 1)
	s.Saturation = clamp(s.Saturation, 0, 2)
	s.HueShift = clamp(s.HueShift, -6, 6)
	s.Temperature = clamp(s.Temperature, TemperatureMin, TemperatureMax)
	s.UnsharpMask = clamp(s.UnsharpMask, -1, 1)
	s.LUTAmount = clamp(s.LUTAmount, 0, 1)
	return s
}

func clamp[T int | float32](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
