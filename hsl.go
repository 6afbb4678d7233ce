// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 pgostovic
//
// SPDX-License-Identifier: GPL-2.0-only

package colour

import (
	"fmt"

	"github.com/pgostovic/colour/utils/errors"
)

// HSL is an immutable colour made of a hue from 0 to 360 degrees, saturation and lightness percentages
// from 0 to 100 and an alpha from 0 (fully transparent) to 1 (fully opaque). The zero value is transparent
// black, construct meaningful values with [NewHSL], [NewHSLA] or [ParseHSL].
type HSL struct {
	h, s, l, a float64
}

// NewHSL creates a fully opaque colour from hue, saturation and lightness channels, failing with
// [ErrInvalidColourArguments] when any channel is outside its range.
func NewHSL(h, s, l float64) (HSL, error) {
	return NewHSLA(h, s, l, 1)
}

// NewHSLA is [NewHSL] with an explicit alpha within 0 and 1. An alpha of 0 is preserved, not defaulted.
func NewHSLA(h, s, l, a float64) (HSL, error) {
	err := errors.Join(
		checkFloatComponent("hue", h, 360),
		checkFloatComponent("saturation", s, 100),
		checkFloatComponent("lightness", l, 100),
		checkAlpha(a),
	)
	if err != nil {
		return HSL{}, err
	}
	return HSL{h: h, s: s, l: l, a: a}, nil
}

// Alpha returns a copy of the colour with the given alpha, the receiver is left untouched. The new alpha
// is validated exactly as in [NewHSLA].
func (c HSL) Alpha(a float64) (HSL, error) {
	if err := checkAlpha(a); err != nil {
		return HSL{}, err
	}
	c.a = a
	return c, nil
}

// Hue returns the hue channel, 0 to 360 degrees.
func (c HSL) Hue() float64 { return c.h }

// Saturation returns the saturation channel, 0 to 100 percent.
func (c HSL) Saturation() float64 { return c.s }

// Lightness returns the lightness channel, 0 to 100 percent.
func (c HSL) Lightness() float64 { return c.l }

// A returns the alpha channel, 0 to 1.
func (c HSL) A() float64 { return c.a }

// String prints the colour in CSS compatible form: 'hsl(h, s%, l%)' when fully opaque, otherwise
// 'hsla(h, s%, l%, a)'. Whole number channels print without a decimal point.
func (c HSL) String() string {
	h, s, l := formatChannel(c.h), formatChannel(c.s), formatChannel(c.l)
	if c.a == 1 {
		return fmt.Sprintf("hsl(%s, %s%%, %s%%)", h, s, l)
	}
	return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)", h, s, l, formatChannel(c.a))
}
