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
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name     string     // lowercase a-z, 0-9 and _ only
	Path     *path.Data // the outline, every subpath is a closed contour
	Width    int        // canvas width in pixels
	Height   int        // canvas height in pixels
	Rule     FillRule   // nonzero or even-odd
	Scale    vec.Vec2   // scale factors (zero-value means no scaling)
	Position vec.Vec2   // offset added after scaling, in pixels
	Embolden float64    // outline growth in pixels (0 for none)
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// Transform returns the device space coordinates of p, for renderers
// which do not implement the Scale and Position fields.
func (tc TestCase) Transform(p vec.Vec2) vec.Vec2 {
	s := tc.Scale
	if s == (vec.Vec2{}) {
		s = vec.Vec2{X: 1, Y: 1}
	}
	return vec.Vec2{X: p.X*s.X + tc.Position.X, Y: p.Y*s.Y + tc.Position.Y}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// transformed applies the affine map m to all points of p.
func transformed(p *path.Data, m matrix.Matrix) *path.Data {
	res := &path.Data{
		Cmds:   slices.Clone(p.Cmds),
		Coords: make([]vec.Vec2, len(p.Coords)),
	}
	for i, v := range p.Coords {
		res.Coords[i] = vec.Vec2{
			X: m[0]*v.X + m[2]*v.Y + m[4],
			Y: m[1]*v.X + m[3]*v.Y + m[5],
		}
	}
	return res
}
