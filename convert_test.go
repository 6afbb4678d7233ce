// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 pgostovic
//
// SPDX-License-Identifier: GPL-2.0-only

package colour_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/pgostovic/colour"
	"github.com/pgostovic/colour/utils/th"
)

func TestRGBToHSL(t *testing.T) {
	t.Parallel()
	cases := []ConversionTest{
		{name: "red", Hex: "#ff0000", H: 0, S: 100, L: 50},
		{name: "green", Hex: "#00ff00", H: 120, S: 100, L: 50},
		{name: "blue", Hex: "#0000ff", H: 240, S: 100, L: 50},
		{name: "white", Hex: "#ffffff", H: 0, S: 0, L: 100},
		{name: "black", Hex: "#000000", H: 0, S: 0, L: 0},
		{name: "gray", Hex: "#808080", H: 0, S: 0, L: 50.2},
	}
	for _, tc := range cases {
		t.Run(tc.name, tc.Run)
	}
}

type ConversionTest struct {
	name    string
	Hex     string
	H, S, L float64
}

func (tc ConversionTest) Run(t *testing.T) {
	t.Parallel()
	hsl := colour.MustHex(tc.Hex).HSL()
	const sigFigs = 3
	th.AssertFloatEqual(t, tc.H, hsl.Hue(), sigFigs, "hue of %s", tc.Hex)
	th.AssertFloatEqual(t, tc.S, hsl.Saturation(), sigFigs, "saturation of %s", tc.Hex)
	th.AssertFloatEqual(t, tc.L, hsl.Lightness(), sigFigs, "lightness of %s", tc.Hex)
	assert.Equal(t, float64(1), hsl.A())
}

func TestHSLToRGB(t *testing.T) {
	t.Parallel()
	red, err := colour.NewHSL(0, 100, 50)
	assert.NilError(t, err)
	assert.Equal(t, "#ff0000", red.RGB().String())

	green, err := colour.NewHSL(120, 100, 50)
	assert.NilError(t, err)
	assert.Equal(t, "#00ff00", green.RGB().String())

	gray, err := colour.NewHSL(0, 0, 50)
	assert.NilError(t, err)
	assert.Equal(t, "#808080", gray.RGB().String())
}

func TestConversion_AlphaCarries(t *testing.T) {
	t.Parallel()
	c, err := colour.NewRGBA(255, 0, 0, 0.5)
	assert.NilError(t, err)
	hsl := c.HSL()
	assert.Equal(t, 0.5, hsl.A())
	assert.Equal(t, 0.5, hsl.RGB().A())
}

func TestBlend(t *testing.T) {
	t.Parallel()
	red := colour.MustHex("#ff0000")
	blue := colour.MustHex("#0000ff")

	assert.Equal(t, "#ff0000", red.Blend(blue, 0).String())
	assert.Equal(t, "#0000ff", red.Blend(blue, 1).String())
	// t is clamped
	assert.Equal(t, "#ff0000", red.Blend(blue, -3).String())
	assert.Equal(t, "#0000ff", red.Blend(blue, 42).String())

	mid := red.Blend(blue, 0.5)
	assert.Equal(t, mid.Red(), mid.Blue())
	assert.Equal(t, uint8(0), mid.Green())
}

func TestBlend_AlphaInterpolates(t *testing.T) {
	t.Parallel()
	opaque := colour.MustHex("#ff0000")
	transparent, err := opaque.Alpha(0)
	assert.NilError(t, err)
	half := opaque.Blend(transparent, 0.5)
	assert.Equal(t, 0.5, half.A())
}

func TestLuminance(t *testing.T) {
	t.Parallel()
	assert.Assert(t, colour.MustHex("#000000").Luminance().IsDark())
	assert.Assert(t, colour.MustHex("#ffffff").Luminance().IsLight())
	assert.Assert(t, colour.MustHex("#ffff00").Luminance().IsLight())
	assert.Assert(t, colour.MustHex("#00007f").Luminance().IsDark())

	const sigFigs = 3
	th.AssertFloatEqual(t, 0.299, float64(colour.MustHex("#ff0000").Luminance()), sigFigs)
	th.AssertFloatEqual(t, 0.587, float64(colour.MustHex("#00ff00").Luminance()), sigFigs)
	th.AssertFloatEqual(t, 0.114, float64(colour.MustHex("#0000ff").Luminance()), sigFigs)
}
