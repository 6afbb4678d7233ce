// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 pgostovic
//
// SPDX-License-Identifier: GPL-2.0-only

package numeric_test

import (
	"math"
	"testing"

	"gotest.tools/v3/assert"
	"pgregory.net/rapid"

	"github.com/pgostovic/colour/utils/numeric"
)

func TestInRange(t *testing.T) {
	t.Parallel()
	assert.Assert(t, numeric.InRange(0, 0, 255))
	assert.Assert(t, numeric.InRange(255, 0, 255))
	assert.Assert(t, numeric.InRange(128, 0, 255))
	assert.Assert(t, !numeric.InRange(-1, 0, 255))
	assert.Assert(t, !numeric.InRange(256, 0, 255))

	assert.Assert(t, numeric.InRange(0.0, 0.0, 1.0))
	assert.Assert(t, numeric.InRange(1.0, 0.0, 1.0))
	assert.Assert(t, !numeric.InRange(1.0000001, 0.0, 1.0))
	assert.Assert(t, !numeric.InRange(math.NaN(), 0.0, 1.0))
	assert.Assert(t, !numeric.InRange(math.Inf(1), 0.0, 1.0))
	assert.Assert(t, !numeric.InRange(math.Inf(-1), 0.0, 1.0))
}

func TestClamp_Property(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		var (
			minimum = rapid.Float64Range(-1000, 1000).Draw(t, "minimum")
			span    = rapid.Float64Range(0, 1000).Draw(t, "span")
			value   = rapid.Float64Range(-10000, 10000).Draw(t, "value")
		)
		maximum := minimum + span
		clamped := numeric.Clamp(value, minimum, maximum)
		if !numeric.InRange(clamped, minimum, maximum) {
			t.Fatalf("Clamp(%v, %v, %v) = %v should be in range", value, minimum, maximum, clamped)
		}
		if numeric.InRange(value, minimum, maximum) && clamped != value {
			t.Fatalf("Clamp(%v, %v, %v) = %v should not move an in range value",
				value, minimum, maximum, clamped)
		}
	})
}

func TestRoundToNearestSigFig(t *testing.T) {
	t.Parallel()
	cases := []struct {
		input    float64
		sigFigs  int
		expected float64
	}{
		{input: 0, sigFigs: 3, expected: 0},
		{input: 0.299999, sigFigs: 2, expected: 0.3},
		{input: 50.196, sigFigs: 3, expected: 50.2},
		{input: 123456, sigFigs: 2, expected: 120000},
		{input: -0.123, sigFigs: 2, expected: -0.12},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, numeric.RoundToNearestSigFig(tc.input, tc.sigFigs))
	}
}
