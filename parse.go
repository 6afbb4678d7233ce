// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 pgostovic
//
// SPDX-License-Identifier: GPL-2.0-only

package colour

import (
	"strconv"
	"strings"

	"github.com/pgostovic/colour/utils/errors"
)

// Parse creates an RGB colour from any of the string forms this package understands:
//
//   - hex strings, '#rgb' or '#rrggbb', see [ParseHex]
//   - CSS functional notation, 'rgb(r, g, b)' or 'rgba(r, g, b, a)'
//   - the basic CSS colour keywords, see [Lookup]
//
// Hex failures carry [ErrInvalidHexColour], every other failure carries [ErrInvalidColourArguments].
func Parse(s string) (RGB, error) {
	trimmed := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(trimmed, "#"):
		return ParseHex(trimmed)
	case strings.HasPrefix(trimmed, "rgb"):
		return parseRGBFunc(trimmed)
	default:
		if c, ok := Lookup(trimmed); ok {
			return c, nil
		}
		return RGB{}, errors.Wrapf(ErrInvalidColourArguments, "Couldn't parse colour from %q", s)
	}
}

// ParseHSL creates an HSL colour from the CSS functional notation 'hsl(h, s%, l%)' or
// 'hsla(h, s%, l%, a)', failing with [ErrInvalidColourArguments] for any other shape or any channel
// outside its range. The percent signs on saturation and lightness are mandatory.
func ParseHSL(s string) (HSL, error) {
	args, hasAlpha, err := callArgs(strings.TrimSpace(s), "hsl")
	if err != nil {
		return HSL{}, err
	}
	h, herr := strconv.ParseFloat(args[0], 64)
	sat, serr := parsePercent(args[1])
	l, lerr := parsePercent(args[2])
	if err := errors.Join(herr, serr, lerr); err != nil {
		return HSL{}, errors.WrapErr(errors.Wrapf(err, "Couldn't parse HSL values for %q", s),
			ErrInvalidColourArguments)
	}
	if !hasAlpha {
		return NewHSL(h, sat, l)
	}
	a, aerr := strconv.ParseFloat(args[3], 64)
	if aerr != nil {
		return HSL{}, errors.WrapErr(errors.Wrapf(aerr, "Couldn't parse alpha for %q", s),
			ErrInvalidColourArguments)
	}
	return NewHSLA(h, sat, l, a)
}

func parseRGBFunc(s string) (RGB, error) {
	args, hasAlpha, err := callArgs(s, "rgb")
	if err != nil {
		return RGB{}, err
	}
	r, rerr := strconv.Atoi(args[0])
	g, gerr := strconv.Atoi(args[1])
	b, berr := strconv.Atoi(args[2])
	if err := errors.Join(rerr, gerr, berr); err != nil {
		return RGB{}, errors.WrapErr(errors.Wrapf(err, "Couldn't parse RGB values for %q", s),
			ErrInvalidColourArguments)
	}
	if !hasAlpha {
		return NewRGB(r, g, b)
	}
	a, aerr := strconv.ParseFloat(args[3], 64)
	if aerr != nil {
		return RGB{}, errors.WrapErr(errors.Wrapf(aerr, "Couldn't parse alpha for %q", s),
			ErrInvalidColourArguments)
	}
	return NewRGBA(r, g, b, a)
}

func parsePercent(s string) (float64, error) {
	trimmed, found := strings.CutSuffix(s, "%")
	if !found {
		return 0, errors.Errorf("%q should end with '%%'", s)
	}
	return strconv.ParseFloat(trimmed, 64)
}

// callArgs splits the CSS functional notation "name(a, b, c)" or "namea(a, b, c, d)" into its trimmed
// arguments, reporting whether the alpha carrying form was used.
func callArgs(s, name string) ([]string, bool, error) {
	rest, found := strings.CutPrefix(s, name)
	if !found {
		return nil, false, errors.Wrapf(ErrInvalidColourArguments,
			"Colour %q should start with %q", s, name)
	}
	rest, hasAlpha := strings.CutPrefix(rest, "a")
	rest, foundOpen := strings.CutPrefix(rest, "(")
	rest, foundClose := strings.CutSuffix(rest, ")")
	if !foundOpen || !foundClose {
		return nil, false, errors.Wrapf(ErrInvalidColourArguments,
			"Colour %q should wrap its channels in parentheses", s)
	}
	args := strings.Split(rest, ",")
	want := 3
	if hasAlpha {
		want = 4
	}
	if len(args) != want {
		return nil, false, errors.Wrapf(ErrInvalidColourArguments,
			"Wrong number of channels for colour %q, should be %d", s, want)
	}
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return args, hasAlpha, nil
}
