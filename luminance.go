// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 pgostovic
//
// SPDX-License-Identifier: GPL-2.0-only

package colour

// Luminance is the perceived brightness of a colour, 0 is black and 1 is white.
type Luminance float64

const (
	Dark  Luminance = 0.0
	Light Luminance = 1.0
)

func (l Luminance) IsDark() bool {
	return l < 0.5
}
func (l Luminance) IsLight() bool {
	return l >= 0.5
}

// Luminance computes the perceived brightness of the colour from its red, green and blue channels using
// the CCIR 601 weightings, the alpha does not contribute.
//
// CCIR 601: https://en.wikipedia.org/wiki/Rec._601
func (c RGB) Luminance() Luminance {
	const max8Bit = 255.0
	r := float64(c.r) / max8Bit
	g := float64(c.g) / max8Bit
	b := float64(c.b) / max8Bit
	return Luminance((0.299 * r) + (0.587 * g) + (0.114 * b))
}
