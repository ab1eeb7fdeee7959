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

package gray

import (
	"slices"

	"seehuhn.de/go/geom/vec"
)

// orientation returns 1 if the total signed area of the outline is
// positive, and -1 if it is negative.  For outlines without area the
// winding direction is taken from FlagReverseFill.
func orientation(pts []vec.Vec2, contours []int16, flags OutlineFlags) float64 {
	var area float64
	first := 0
	for _, end := range contours {
		last := int(end)
		prev := pts[last]
		for _, p := range pts[first : last+1] {
			area += prev.X*p.Y - p.X*prev.Y
			prev = p
		}
		first = last + 1
	}

	switch {
	case area > 0:
		return 1
	case area < 0:
		return -1
	case flags&FlagReverseFill != 0:
		return -1
	default:
		return 1
	}
}

// embolden moves every point of r.work outwards, so that the outline
// becomes wider and higher by strength pixels.  Negative values of
// strength make the outline thinner.
//
// Every point moves along the bisector of the normals of its two adjacent
// edges, far enough that both edges move by strength/2.  At sharp inner
// corners the shift is limited by the length of the adjacent edges.
func (r *Rasterizer) embolden(contours []int16, strength, sign float64) {
	half := strength / 2
	n := len(r.work)
	r.shift = slices.Grow(r.shift[:0], n)[:n]
	clear(r.shift)

	first := 0
	for _, end := range contours {
		last := int(end)
		pts := r.work[first : last+1]
		shift := r.shift[first : last+1]
		for i, cur := range pts {
			prev, ok := neighbour(pts, i, -1)
			if !ok {
				break // all points coincide
			}
			next, _ := neighbour(pts, i, 1)

			in := cur.Sub(prev)
			lIn := in.Length()
			in = in.Mul(1 / lIn)
			out := next.Sub(cur)
			lOut := out.Length()
			out = out.Mul(1 / lOut)

			d := in.X*out.X + in.Y*out.Y
			if d <= -0.9375 {
				continue // the contour nearly reverses here
			}
			d += 1

			s := vec.Vec2{X: sign * (in.Y + out.Y), Y: -sign * (in.X + out.X)}
			q := sign * (out.X*in.Y - out.Y*in.X)
			l := min(lIn, lOut)
			if half*q <= l*d {
				shift[i] = s.Mul(half / d)
			} else {
				shift[i] = s.Mul(l / q)
			}
		}
		first = last + 1
	}

	for i, s := range r.shift {
		r.work[i] = r.work[i].Add(s)
	}
}

// neighbour returns the closest point before (dir = -1) or after
// (dir = 1) point i of the closed contour pts which does not coincide
// with point i.
func neighbour(pts []vec.Vec2, i, dir int) (vec.Vec2, bool) {
	n := len(pts)
	for k := 1; k < n; k++ {
		j := ((i+dir*k)%n + n) % n
		if pts[j] != pts[i] {
			return pts[j], true
		}
	}
	return vec.Vec2{}, false
}
