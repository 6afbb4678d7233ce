// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 pgostovic
//
// SPDX-License-Identifier: GPL-2.0-only

// Package numeric holds the small range helpers shared by the colour channel validation.
package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// InRange reports whether value lies within [minimum, maximum], both bounds inclusive. A float NaN is never
// in range.
func InRange[N constraints.Ordered](value, minimum, maximum N) bool {
	return value >= minimum && value <= maximum
}

// Clamp returns value limited to [minimum, maximum].
func Clamp[N constraints.Ordered](value, minimum, maximum N) N {
	switch {
	case value < minimum:
		return minimum
	case value > maximum:
		return maximum
	default:
		return value
	}
}

// RoundToNearestSigFig rounds the input to [sigFigs] significant figures, e.g.
//
//	RoundToNearestSigFig(0.299999, 2) == 0.3
func RoundToNearestSigFig(input float64, sigFigs int) float64 {
	if input == 0 {
		return 0
	}
	power := float64(sigFigs) - math.Ceil(math.Log10(math.Abs(input)))
	magnitude := math.Pow(10, power)
	shifted := math.Round(input * magnitude)
	return shifted / magnitude
}
