// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 pgostovic
//
// SPDX-License-Identifier: GPL-2.0-only

package colour

import (
	"fmt"

	"github.com/pgostovic/colour/utils/check"
	"github.com/pgostovic/colour/utils/errors"
)

// RGB is an immutable colour made of 8 bit red, green and blue channels plus an alpha from 0 (fully
// transparent) to 1 (fully opaque). The zero value is transparent black, construct meaningful values with
// [NewRGB], [NewRGBA], [ParseHex] or [Parse].
type RGB struct {
	r, g, b uint8
	a       float64
}

// NewRGB creates a fully opaque colour from red, green and blue channels, each of which should be within 0
// and 255, failing with [ErrInvalidColourArguments] otherwise.
func NewRGB(r, g, b int) (RGB, error) {
	return NewRGBA(r, g, b, 1)
}

// NewRGBA is [NewRGB] with an explicit alpha within 0 and 1. An alpha of 0 is preserved, not defaulted.
func NewRGBA(r, g, b int, a float64) (RGB, error) {
	err := errors.Join(
		checkComponent("red", r, 255),
		checkComponent("green", g, 255),
		checkComponent("blue", b, 255),
		checkAlpha(a),
	)
	if err != nil {
		return RGB{}, err
	}
	// G115: These are not an integer overflow because we bounds check above ^
	return RGB{r: uint8(r), g: uint8(g), b: uint8(b), a: a}, nil //nolint:gosec
}

// MustHex is [ParseHex] for compile time constant strings, panicking on any parse failure.
func MustHex(s string) RGB {
	return check.Must(ParseHex(s))
}

// Alpha returns a copy of the colour with the given alpha, the receiver is left untouched. The new alpha
// is validated exactly as in [NewRGBA].
func (c RGB) Alpha(a float64) (RGB, error) {
	if err := checkAlpha(a); err != nil {
		return RGB{}, err
	}
	c.a = a
	return c, nil
}

// Red returns the red channel, 0 to 255.
func (c RGB) Red() uint8 { return c.r }

// Green returns the green channel, 0 to 255.
func (c RGB) Green() uint8 { return c.g }

// Blue returns the blue channel, 0 to 255.
func (c RGB) Blue() uint8 { return c.b }

// A returns the alpha channel, 0 to 1.
func (c RGB) A() float64 { return c.a }

// String prints the colour in CSS compatible form: the canonical lowercase '#rrggbb' when fully opaque,
// otherwise 'rgba(r, g, b, a)' with decimal channels and the alpha printed as given.
func (c RGB) String() string {
	if c.a == 1 {
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.r, c.g, c.b, formatChannel(c.a))
}
