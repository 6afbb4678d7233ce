// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 pgostovic
//
// SPDX-License-Identifier: GPL-2.0-only

package colour

import "strings"

// The 16 basic CSS colour keywords: https://developer.mozilla.org/en-US/docs/Web/CSS/named-color
var named = map[string]RGB{
	"black":   MustHex("#000000"),
	"silver":  MustHex("#c0c0c0"),
	"gray":    MustHex("#808080"),
	"white":   MustHex("#ffffff"),
	"maroon":  MustHex("#800000"),
	"red":     MustHex("#ff0000"),
	"purple":  MustHex("#800080"),
	"fuchsia": MustHex("#ff00ff"),
	"green":   MustHex("#008000"),
	"lime":    MustHex("#00ff00"),
	"olive":   MustHex("#808000"),
	"yellow":  MustHex("#ffff00"),
	"navy":    MustHex("#000080"),
	"blue":    MustHex("#0000ff"),
	"teal":    MustHex("#008080"),
	"aqua":    MustHex("#00ffff"),
}

// Lookup finds the RGB colour for one of the basic CSS colour keywords, case-insensitively, or false when
// the name isn't one of them.
func Lookup(name string) (RGB, bool) {
	c, ok := named[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}
