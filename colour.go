// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 pgostovic
//
// SPDX-License-Identifier: GPL-2.0-only

// Package colour provides small immutable value types for CSS colours in RGB(A) and HSL(A) form,
// constructed from hex strings, CSS functional notation, or explicit channel values, and printed back out
// in CSS compatible form.
//
// The two types [RGB] and [HSL] are independent terminal values, neither owns the other, instances are
// always valid: every constructor range checks its channels and an invalid construction returns an error
// and no usable value. Derived colours are produced with [RGB.Alpha], [RGB.Blend] and friends, never by
// mutating the receiver.
package colour

import (
	"strconv"

	"github.com/pgostovic/colour/utils/errors"
	"github.com/pgostovic/colour/utils/numeric"
)

// The two failure kinds this package surfaces, every error returned by a constructor wraps exactly one of
// them so callers discriminate with [errors.Is]. Detail about which channel or which part of the input was
// at fault travels alongside in the wrapping.
var (
	// ErrInvalidColourArguments is the failure for channel values outside their documented ranges or CSS
	// functional notation which doesn't have the right shape.
	ErrInvalidColourArguments = errors.New("invalid colour arguments")
	// ErrInvalidHexColour is the failure for strings which match neither the '#rgb' nor '#rrggbb' pattern.
	ErrInvalidHexColour = errors.New("invalid hex colour")
)

func checkComponent(name string, value, max int) error {
	if numeric.InRange(value, 0, max) {
		return nil
	}
	return errors.Wrapf(ErrInvalidColourArguments,
		"%s component out of range %d, should be within 0 and %d", name, value, max)
}

func checkFloatComponent(name string, value, max float64) error {
	if numeric.InRange(value, 0, max) {
		return nil
	}
	return errors.Wrapf(ErrInvalidColourArguments,
		"%s component out of range %v, should be within 0 and %v", name, value, max)
}

func checkAlpha(a float64) error {
	return checkFloatComponent("alpha", a, 1)
}

// formatChannel prints a float channel the way CSS authors write them, whole numbers without a decimal
// point and fractions with the fewest digits that survive a round trip. No rounding is imposed.
func formatChannel(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
