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
	"image"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Fixed is a 24.8 fixed point number, used for device space coordinates.
type Fixed int32

const (
	pixelBits = 8
	onePixel  = 1 << pixelBits

	// OnePixel is the size of one pixel.
	OnePixel Fixed = onePixel

	// MaxCoord is the largest magnitude of a device space coordinate, in
	// pixels.  Outline points outside this range are clamped.
	MaxCoord = 1 << 21
)

// FixedFromFloat converts x to fixed point, rounding to the nearest
// representable value.  Values outside ±MaxCoord are clamped.
// NaN is mapped to zero.
func FixedFromFloat(x float64) Fixed {
	if math.IsNaN(x) {
		return 0
	}
	x = math.Round(x * onePixel)
	const limit = MaxCoord * onePixel
	if x > limit {
		return limit
	} else if x < -limit {
		return -limit
	}
	return Fixed(x)
}

// Float converts x to a floating point number of pixels.
func (x Fixed) Float() float64 {
	return float64(x) / onePixel
}

// Floor returns the largest integer not greater than x.
func (x Fixed) Floor() int {
	return int(x >> pixelBits)
}

// Ceil returns the smallest integer not less than x.
func (x Fixed) Ceil() int {
	return int((x + onePixel - 1) >> pixelBits)
}

// Point is a device space point in fixed point coordinates.
type Point struct {
	X, Y Fixed
}

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) >> 1, Y: (a.Y + b.Y) >> 1}
}

// loadPoints maps the outline points to device space and stores them in
// r.points.  The outline and the parameters must have been checked.
func (r *Rasterizer) loadPoints(o *Outline, p *Params) {
	scale := p.scale()
	n := len(o.Points)

	r.work = slices.Grow(r.work[:0], n)[:n]
	for i, v := range o.Points {
		// Clamp before emboldening, so that overflowing coordinates
		// do not turn into NaN.
		r.work[i] = vec.Vec2{
			X: clampCoord(v.X*scale.X + p.Position.X),
			Y: clampCoord(v.Y*scale.Y + p.Position.Y),
		}
	}

	if p.Embolden != 0 {
		sign := orientation(r.work, o.Contours, o.Flags)
		r.embolden(o.Contours, p.Embolden, sign)
	}

	r.points = slices.Grow(r.points[:0], n)[:n]
	for i, v := range r.work {
		r.points[i] = Point{X: FixedFromFloat(v.X), Y: FixedFromFloat(v.Y)}
	}
}

// clampCoord limits x to ±MaxCoord.
func clampCoord(x float64) float64 {
	return max(-MaxCoord, min(x, MaxCoord))
}

// setClip sets the clip box to the intersection of the control box of
// r.points and clip.  It reports false if the intersection is empty.
func (r *Rasterizer) setClip(clip image.Rectangle) bool {
	if len(r.points) == 0 {
		return false
	}

	xMin, yMin := r.points[0].X, r.points[0].Y
	xMax, yMax := xMin, yMin
	for _, p := range r.points[1:] {
		xMin = min(xMin, p.X)
		xMax = max(xMax, p.X)
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
	}

	r.minEx = max(xMin.Floor(), clip.Min.X)
	r.maxEx = min(xMax.Ceil(), clip.Max.X)
	r.minEy = max(yMin.Floor(), clip.Min.Y)
	r.maxEy = min(yMax.Ceil(), clip.Max.Y)
	return r.minEx < r.maxEx && r.minEy < r.maxEy
}
