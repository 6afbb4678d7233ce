// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 pgostovic
//
// SPDX-License-Identifier: GPL-2.0-only

package colour

import (
	"image/color"
	"math"
)

// RGBA implements [color.Color], returning alpha premultiplied 16 bit channels, so an [RGB] slots straight
// into the image packages.
func (c RGB) RGBA() (r, g, b, a uint32) {
	a = uint32(math.Round(c.a * 0xffff))
	r = uint32(c.r) * 0x101 * a / 0xffff
	g = uint32(c.g) * 0x101 * a / 0xffff
	b = uint32(c.b) * 0x101 * a / 0xffff
	return r, g, b, a
}

// FromColor converts any [color.Color] into an [RGB], un-premultiplying the alpha back into its own
// channel.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	const max8Bit = 255.0
	return RGB{r: n.R, g: n.G, b: n.B, a: float64(n.A) / max8Bit}
}
