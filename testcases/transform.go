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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

var transformCases = []TestCase{
	// Scaling and translation through the Scale and Position fields
	{
		Name:     "scale_2x",
		Path:     rectangle(0, 0, 20, 20),
		Width:    128,
		Height:   128,
		Scale:    vec.Vec2{X: 2, Y: 2},
		Position: vec.Vec2{X: 24, Y: 24},
	},
	{
		Name:     "scale_half",
		Path:     rectangle(0, 0, 80, 80),
		Width:    64,
		Height:   64,
		Scale:    vec.Vec2{X: 0.5, Y: 0.5},
		Position: vec.Vec2{X: 12, Y: 12},
	},
	{
		Name:     "scale_10x",
		Path:     rectangle(0, 0, 4, 4),
		Width:    128,
		Height:   128,
		Scale:    vec.Vec2{X: 10, Y: 10},
		Position: vec.Vec2{X: 44, Y: 44},
	},
	{
		Name:     "scale_nonuniform_circle",
		Path:     circle(0, 0, 15),
		Width:    128,
		Height:   64,
		Scale:    vec.Vec2{X: 2, Y: 1},
		Position: vec.Vec2{X: 64, Y: 32},
	},
	{
		Name:     "flip_y",
		Path:     triangle(0, 0, 40, 0, 20, 30),
		Width:    64,
		Height:   64,
		Scale:    vec.Vec2{X: 1, Y: -1},
		Position: vec.Vec2{X: 12, Y: 48},
	},
	{
		Name:     "fractional_position",
		Path:     rectangle(0, 0, 20, 20),
		Width:    64,
		Height:   64,
		Position: vec.Vec2{X: 20.3, Y: 20.7},
	},
	{
		Name:     "far_origin",
		Path:     rectangle(10000, 10000, 10030, 10020),
		Width:    64,
		Height:   64,
		Position: vec.Vec2{X: -10000 + 17, Y: -10000 + 22},
	},

	// Rotation and shear, applied to the geometry itself
	{
		Name:   "rotate_45",
		Path:   transformed(rectangle(-15, -15, 15, 15), matrix.RotateDeg(45).Translate(32, 32)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rotate_5",
		Path:   transformed(rectangle(-20, -10, 20, 10), matrix.RotateDeg(5).Translate(32, 32)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "shear_x",
		Path:   transformed(rectangle(-15, -15, 15, 15), matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rotate_shear_circle",
		Path:   transformed(circle(0, 0, 20), matrix.Matrix{1, 0, 0.3, 1, 0, 0}.RotateDeg(30).Translate(32, 32)),
		Width:  64,
		Height: 64,
	},
}
