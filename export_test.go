// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 pgostovic
//
// SPDX-License-Identifier: GPL-2.0-only

package colour

var HexToRGB = hexToRGB
