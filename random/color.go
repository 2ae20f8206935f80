// SPDX-License-Identifier: GPL-2.0-or-later

package random

import (
	"github.com/chewxy/math32"
)

// Color is an RGBA color with float32 channels. Channels may exceed [0,1]
// when generated from value bounds above 1, the conversion does not clamp.
type Color struct {
	R, G, B, A float32
}

// Color returns a random color with hue, saturation and value each drawn
// from [0,1] and alpha 1.
//
// Engine builds on runtimes older than .NET 5 round the conversion math
// slightly differently; the last digit of a channel can deviate from such
// builds. That historical inaccuracy is kept as is.
func (g *Generator) Color() Color {
	return g.ColorHSVA(0, 1, 0, 1, 0, 1, 1, 1)
}

// ColorH is Color with the hue drawn from [hMin,hMax].
func (g *Generator) ColorH(hMin, hMax float32) Color {
	return g.ColorHSVA(hMin, hMax, 0, 1, 0, 1, 1, 1)
}

// ColorHS is Color with hue and saturation drawn from the given ranges.
func (g *Generator) ColorHS(hMin, hMax, sMin, sMax float32) Color {
	return g.ColorHSVA(hMin, hMax, sMin, sMax, 0, 1, 1, 1)
}

// ColorHSV is Color with hue, saturation and value drawn from the given
// ranges.
func (g *Generator) ColorHSV(hMin, hMax, sMin, sMax, vMin, vMax float32) Color {
	return g.ColorHSVA(hMin, hMax, sMin, sMax, vMin, vMax, 1, 1)
}

// ColorHSVA returns a random color with hue, saturation, value and alpha
// each drawn from the given range. Hue, saturation and value are drawn in
// that order, converted to RGB, and the alpha draw follows the conversion.
// See Color for the runtime rounding caveat.
func (g *Generator) ColorHSVA(hMin, hMax, sMin, sMax, vMin, vMax, aMin, aMax float32) Color {
	h := lerp(hMin, hMax, g.nextFloat())
	s := lerp(sMin, sMax, g.nextFloat())
	v := lerp(vMin, vMax, g.nextFloat())
	r, gr, b := hsvToRGB(h, s, v)
	a := lerp(aMin, aMax, g.nextFloat())
	return Color{
		R: precision(r, 7),
		G: precision(gr, 7),
		B: precision(b, 7),
		A: precision(a, 7),
	}
}

// lerp interpolates from a to b with t clamped to [0,1].
func lerp(a, b, t float32) float32 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a + (b-a)*t
}

// hsvToRGB converts hue, saturation and value to RGB channels without
// clamping, following the engine's sextant table. Saturation 0 short
// circuits to grey and value 0 to black before any hue math happens.
func hsvToRGB(h, s, v float32) (float32, float32, float32) {
	if s == 0 {
		return v, v, v
	}
	if v == 0 {
		return 0, 0, 0
	}
	num := h * 6
	sextant := math32.Floor(num)
	frac := num - sextant
	p := v * (1 - s)
	q := v * (1 - s*frac)
	t := v * (1 - s*(1-frac))
	switch int32(sextant) + 1 {
	case 0:
		return v, p, q
	case 1:
		return v, t, p
	case 2:
		return q, v, p
	case 3:
		return p, v, t
	case 4:
		return p, q, v
	case 5:
		return t, p, v
	case 6:
		return v, p, q
	case 7:
		return v, t, p
	}
	return 0, 0, 0
}
