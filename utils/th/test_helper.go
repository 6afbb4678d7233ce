// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 pgostovic
//
// SPDX-License-Identifier: GPL-2.0-only

// th stands for "test helper"
package th

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"pgregory.net/rapid"

	"github.com/pgostovic/colour/utils/numeric"
)

// T is the most generic test interface for use with all the test frameworks and third party helpers this
// module tests with. [*testing.T] is safer and easier to use if in doubt, you will know when you need this
// helper because certain property tests have stopped compiling.
type T interface {
	rapid.TB
}

// AssertFloatEqual checks that the two floats are equal within the given significant figures.
func AssertFloatEqual(t T, expected float64, actual float64, sigFigs int, msgAndArgs ...any) {
	t.Helper()
	a := numeric.RoundToNearestSigFig(actual, sigFigs)
	e := numeric.RoundToNearestSigFig(expected, sigFigs)
	assert.Check(t, is.Equal(e, a), msgAndArgs...)
}

// AssertFloatWithin checks that actual is no further than tolerance from expected.
func AssertFloatWithin(t T, expected float64, actual float64, tolerance float64, msgAndArgs ...any) {
	t.Helper()
	diff := expected - actual
	if diff < 0 {
		diff = -diff
	}
	assert.Check(t, diff <= tolerance, msgAndArgs...)
}

// AllowAllUnexported lets go-cmp based assertions see the unexported channels of the colour value types.
var AllowAllUnexported = cmp.Exporter(func(reflect.Type) bool { return true })
