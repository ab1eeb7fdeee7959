// seehuhn.de/go/gray - an anti-aliased glyph rasterizer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// emboldenCases grow (or shrink) the outline by a fixed amount in device
// space.  Reference renderers can reproduce this by stroking the filled
// outline with a mitred pen of width Embolden.
var emboldenCases = []TestCase{
	{
		Name:     "embolden_rectangle",
		Path:     rectangle(16, 16, 48, 48),
		Width:    64,
		Height:   64,
		Embolden: 2,
	},
	{
		Name:     "embolden_triangle",
		Path:     triangle(10, 54, 32, 10, 54, 54),
		Width:    64,
		Height:   64,
		Embolden: 1,
	},
	{
		Name:     "embolden_circle",
		Path:     circle(32, 32, 20),
		Width:    64,
		Height:   64,
		Embolden: 1.5,
	},
	{
		Name:     "embolden_half_pixel",
		Path:     diamond(32, 32, 20),
		Width:    64,
		Height:   64,
		Embolden: 0.5,
	},
	{
		Name:     "embolden_ring",
		Path:     ringShapeReversed(32, 32, 25, 12),
		Width:    64,
		Height:   64,
		Embolden: 2,
	},
	{
		Name:     "embolden_scaled",
		Path:     rectangle(0, 0, 10, 10),
		Width:    64,
		Height:   64,
		Scale:    vec.Vec2{X: 4, Y: 4},
		Position: vec.Vec2{X: 12, Y: 12},
		Embolden: 2,
	},
	{
		Name:     "embolden_glyph",
		Path:     glyphPath("R", 40, 14, 48),
		Width:    64,
		Height:   64,
		Embolden: 1,
	},
}

// ringShapeReversed builds a square ring with the hole drawn in the
// opposite direction, so that it is a hole under both fill rules.
func ringShapeReversed(cx, cy, outer, inner float64) *path.Data {
	p := addRectangle(&path.Data{}, cx-outer, cy-outer, cx+outer, cy+outer)
	return p.
		MoveTo(pt(cx-inner, cy-inner)).
		LineTo(pt(cx-inner, cy+inner)).
		LineTo(pt(cx+inner, cy+inner)).
		LineTo(pt(cx+inner, cy-inner)).
		Close()
}
