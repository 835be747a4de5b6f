// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brush

import (
	"image/color"

	"github.com/google/ink-sub000/math32"
)

// RGBA is a premultiplication-free float32 color with components in
// [0, 1] (alpha may exceed 1 transiently while an opacity multiplier
// above 1 is applied, and is clamped on conversion).
type RGBA struct {
	R, G, B, A float32
}

// AsColor returns the color as a standard 8-bit [color.RGBA],
// clamping each component into [0, 1] first.
func (c RGBA) AsColor() color.RGBA {
	return color.RGBA{
		R: uint8(math32.Round(math32.Clamp01(c.R) * 255)),
		G: uint8(math32.Round(math32.Clamp01(c.G) * 255)),
		B: uint8(math32.Round(math32.Clamp01(c.B) * 255)),
		A: uint8(math32.Round(math32.Clamp01(c.A) * 255)),
	}
}

// ShiftHSL returns the color shifted in HSL space: the hue rotated by
// hueOffset radians, the saturation scaled by satMul, the luminosity
// shifted by lumShift, and the alpha scaled by opacityMul. Saturation
// and luminosity results are clamped to [0, 1]; the hue wraps.
func (c RGBA) ShiftHSL(hueOffset, satMul, lumShift, opacityMul float32) RGBA {
	h, s, l := c.toHSL()
	h = math32.NormalizeAngle(h + hueOffset)
	s = math32.Clamp01(s * satMul)
	l = math32.Clamp01(l + lumShift)
	out := fromHSL(h, s, l)
	out.A = math32.Clamp01(c.A * opacityMul)
	return out
}

// toHSL converts to hue in radians in [0, 2π), saturation in [0, 1],
// and luminosity in [0, 1].
func (c RGBA) toHSL() (h, s, l float32) {
	r, g, b := math32.Clamp01(c.R), math32.Clamp01(c.G), math32.Clamp01(c.B)
	mx := math32.Max(r, math32.Max(g, b))
	mn := math32.Min(r, math32.Min(g, b))
	l = 0.5 * (mx + mn)
	if mx == mn {
		return 0, 0, l
	}
	d := mx - mn
	if l > 0.5 {
		s = d / (2 - mx - mn)
	} else {
		s = d / (mx + mn)
	}
	var hue float32
	switch mx {
	case r:
		hue = (g - b) / d
		if g < b {
			hue += 6
		}
	case g:
		hue = (b-r)/d + 2
	default:
		hue = (r-g)/d + 4
	}
	return math32.NormalizeAngle(hue * math32.Pi / 3), s, l
}

// fromHSL converts hue in radians, saturation, and luminosity back to
// RGB, with alpha left zero.
func fromHSL(h, s, l float32) RGBA {
	if s == 0 {
		return RGBA{R: l, G: l, B: l}
	}
	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hn := h / (2 * math32.Pi) // hue as a fraction of a turn
	return RGBA{
		R: hueToRGB(p, q, hn+1.0/3),
		G: hueToRGB(p, q, hn),
		B: hueToRGB(p, q, hn-1.0/3),
	}
}

func hueToRGB(p, q, t float32) float32 {
	t = math32.Fract(t)
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}
