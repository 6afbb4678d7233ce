// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 pgostovic
//
// SPDX-License-Identifier: GPL-2.0-only

package colour

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pgostovic/colour/utils/numeric"
)

// HSL converts the colour into its HSL form, the alpha carries across unchanged. Conversion is total, a
// valid RGB colour always has a valid HSL form.
func (c RGB) HSL() HSL {
	h, s, l := c.colorful().Hsl()
	return HSL{h: h, s: s * 100, l: l * 100, a: c.a}
}

// RGB converts the colour into its RGB form, the alpha carries across unchanged. Channels round to the
// nearest 8 bit value.
func (c HSL) RGB() RGB {
	r, g, b := colorful.Hsl(c.h, c.s/100, c.l/100).Clamped().RGB255()
	return RGB{r: r, g: g, b: b, a: c.a}
}

// Blend linearly interpolates between the receiver and other in RGB space, t runs from 0 (the receiver) to
// 1 (other) and is clamped into that range. The alpha interpolates too.
func (c RGB) Blend(other RGB, t float64) RGB {
	t = numeric.Clamp(t, 0, 1)
	r, g, b := c.colorful().BlendRgb(other.colorful(), t).Clamped().RGB255()
	return RGB{r: r, g: g, b: b, a: c.a + t*(other.a-c.a)}
}

func (c RGB) colorful() colorful.Color {
	const max8Bit = 255.0
	return colorful.Color{R: float64(c.r) / max8Bit, G: float64(c.g) / max8Bit, B: float64(c.b) / max8Bit}
}
