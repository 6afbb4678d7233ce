// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 pgostovic
//
// SPDX-License-Identifier: GPL-2.0-only

package colour

// The value types marshal as their CSS string form and unmarshal from any form [Parse] and [ParseHSL]
// accept, which makes them usable directly inside JSON theme and palette files.

// MarshalText implements [encoding.TextMarshaler] as the CSS string form.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] accepting everything [Parse] accepts.
func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements [encoding.TextMarshaler] as the CSS string form.
func (c HSL) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] accepting everything [ParseHSL] accepts.
func (c *HSL) UnmarshalText(text []byte) error {
	parsed, err := ParseHSL(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
