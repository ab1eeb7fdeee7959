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
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Tag classifies an outline point.  The two lowest bits give the point
// type, the remaining bits are informational and ignored by the
// rasterizer.
type Tag uint8

// These are the point types and the informational tag bits.
const (
	TagConic Tag = 0 // control point of a quadratic Bézier curve
	TagOn    Tag = 1 // point on the curve
	TagCubic Tag = 2 // control point of a cubic Bézier curve

	TagHasScanMode Tag = 0x04
	TagTouchX      Tag = 0x08
	TagTouchY      Tag = 0x10

	tagCurveMask Tag = 0x03
)

func (t Tag) curve() Tag {
	return t & tagCurveMask
}

// OutlineFlags modify how an outline is rendered.
type OutlineFlags uint32

const (
	// FlagEvenOdd selects the even-odd fill rule instead of the
	// nonzero winding rule.
	FlagEvenOdd OutlineFlags = 0x2

	// FlagReverseFill indicates that the outer contours of the outline
	// have negative signed area.  This is only used for emboldening
	// outlines whose orientation cannot be determined from the points.
	FlagReverseFill OutlineFlags = 0x4

	// FlagHighPrecision selects a finer curve flattening tolerance.
	FlagHighPrecision OutlineFlags = 0x100
)

// Outline describes a glyph as a list of closed contours.
//
// Points and Tags have the same length.  Contours[i] is the index of the
// last point of contour i; contour i starts after the last point of
// contour i-1.
type Outline struct {
	Points   []vec.Vec2
	Tags     []Tag
	Contours []int16
	Flags    OutlineFlags
}

// Validate checks the structure of the outline.  The returned error wraps
// [ErrInvalidOutline].
func (o *Outline) Validate() error {
	if err := o.check(); err != nil {
		return err
	}
	return decompose(make([]Point, len(o.Points)), o.Tags, o.Contours, nopSink{})
}

// check verifies everything except the tag sequence, which is checked
// when the outline is decomposed.
func (o *Outline) check() error {
	if len(o.Tags) != len(o.Points) {
		return fmt.Errorf("%w: %d points but %d tags",
			ErrInvalidOutline, len(o.Points), len(o.Tags))
	}

	prev := -1
	for i, end := range o.Contours {
		if int(end) <= prev || int(end) >= len(o.Points) {
			return fmt.Errorf("%w: contour %d ends at point %d", ErrInvalidOutline, i, end)
		}
		prev = int(end)
	}
	if prev != len(o.Points)-1 {
		return fmt.Errorf("%w: %d points outside of all contours",
			ErrInvalidOutline, len(o.Points)-1-prev)
	}

	for i, p := range o.Points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return fmt.Errorf("%w: point %d is not finite", ErrInvalidOutline, i)
		}
	}
	return nil
}

// Bounds returns the control box of the outline, the smallest rectangle
// containing all points.  The glyph itself lies inside this rectangle.
func (o *Outline) Bounds() rect.Rect {
	if len(o.Points) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: o.Points[0].X,
		LLy: o.Points[0].Y,
		URx: o.Points[0].X,
		URy: o.Points[0].Y,
	}
	for _, p := range o.Points[1:] {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
