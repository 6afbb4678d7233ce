// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 pgostovic
//
// SPDX-License-Identifier: GPL-2.0-only

package colour

import (
	"strconv"

	"github.com/pgostovic/colour/utils/errors"
)

// ParseHex creates a fully opaque colour from a '#rgb' or '#rrggbb' hex string, hex digits in either case.
// The 3 digit shorthand expands each digit by duplication, so "#f00" is "#ff0000". Anything else fails
// with [ErrInvalidHexColour]: the '#' is mandatory and exactly 3 or 6 hex digits must follow it.
func ParseHex(s string) (RGB, error) {
	r, g, b, err := hexToRGB(s)
	if err != nil {
		return RGB{}, err
	}
	return RGB{r: r, g: g, b: b, a: 1}, nil
}

func hexToRGB(s string) (uint8, uint8, uint8, error) {
	if len(s) == 0 || s[0] != '#' {
		return 0, 0, 0, errors.Wrapf(ErrInvalidHexColour, "Colour %q should start with '#'", s)
	}
	digits := s[1:]
	switch len(digits) {
	case 3:
		digits = digits[0:1] + digits[0:1] + digits[1:2] + digits[1:2] + digits[2:3] + digits[2:3]
	case 6:
	default:
		return 0, 0, 0, errors.Wrapf(ErrInvalidHexColour,
			"Wrong number of digits for colour %q, should be 3 or 6 hex digits", s)
	}
	r, rerr := strconv.ParseUint(digits[0:2], 16, 8)
	g, gerr := strconv.ParseUint(digits[2:4], 16, 8)
	b, berr := strconv.ParseUint(digits[4:6], 16, 8)
	if err := errors.Join(rerr, gerr, berr); err != nil {
		return 0, 0, 0, errors.WrapErr(errors.Wrapf(err, "Couldn't parse hex values for %q", s),
			ErrInvalidHexColour)
	}
	// G115: ParseUint was told 8 bits, these fit
	return uint8(r), uint8(g), uint8(b), nil //nolint:gosec
}
