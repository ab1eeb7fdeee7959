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

import "fmt"

// outlineSink receives the segments of an outline from decompose.
type outlineSink interface {
	moveTo(to Point)
	lineTo(to Point)
	conicTo(ctrl, to Point)
	cubicTo(ctrl1, ctrl2, to Point)
}

// decompose walks the contours of an outline and passes the segments to
// sink.  Every contour is closed.  pts and tags must have the same length.
//
// Two consecutive conic control points imply an on-curve point half way
// between them.  A contour which starts with a conic control point
// starts at its last point if that is on the curve, and half way between
// its first and last point otherwise.
func decompose(pts []Point, tags []Tag, contours []int16, sink outlineSink) error {
	first := 0
	for n, end := range contours {
		last := int(end)
		if last < first || last >= len(pts) {
			return fmt.Errorf("%w: contour %d ends at point %d", ErrInvalidOutline, n, last)
		}

		vStart := pts[first]
		i := first
		limit := last
		switch tags[first].curve() {
		case TagOn:
			// pass
		case TagConic:
			if tags[last].curve() == TagOn {
				vStart = pts[last]
				limit--
			} else {
				vStart = midpoint(vStart, pts[last])
			}
			i--
		default:
			return fmt.Errorf("%w: contour %d starts with tag %d",
				ErrInvalidOutline, n, tags[first].curve())
		}
		sink.moveTo(vStart)

		closed := false
	segments:
		for i < limit {
			i++
			switch tags[i].curve() {
			case TagOn:
				sink.lineTo(pts[i])

			case TagConic:
				ctrl := pts[i]
				for i < limit {
					i++
					switch tags[i].curve() {
					case TagOn:
						sink.conicTo(ctrl, pts[i])
						continue segments
					case TagConic:
						sink.conicTo(ctrl, midpoint(ctrl, pts[i]))
						ctrl = pts[i]
					default:
						return fmt.Errorf("%w: point %d: tag %d after conic control point",
							ErrInvalidOutline, i, tags[i].curve())
					}
				}
				sink.conicTo(ctrl, vStart)
				closed = true
				break segments

			case TagCubic:
				if i+1 > limit || tags[i+1].curve() != TagCubic {
					return fmt.Errorf("%w: point %d: unpaired cubic control point",
						ErrInvalidOutline, i)
				}
				ctrl1, ctrl2 := pts[i], pts[i+1]
				i += 2
				if i > limit {
					sink.cubicTo(ctrl1, ctrl2, vStart)
					closed = true
					break segments
				}
				if tags[i].curve() != TagOn {
					return fmt.Errorf("%w: point %d: cubic segment ends off the curve",
						ErrInvalidOutline, i)
				}
				sink.cubicTo(ctrl1, ctrl2, pts[i])

			default:
				return fmt.Errorf("%w: point %d: tag %d", ErrInvalidOutline, i, tags[i].curve())
			}
		}
		if !closed {
			sink.lineTo(vStart)
		}

		first = last + 1
	}
	return nil
}

// nopSink discards all segments.  It is used to check outlines before
// anything is drawn.
type nopSink struct{}

func (nopSink) moveTo(Point)                {}
func (nopSink) lineTo(Point)                {}
func (nopSink) conicTo(Point, Point)        {}
func (nopSink) cubicTo(Point, Point, Point) {}

// conicTo flattens a quadratic Bézier curve by recursive subdivision,
// using r.arcs as an explicit stack.  The stack entries are stored in
// reverse order: arc[0] is the end point and arc[2] the start point.
func (r *Rasterizer) conicTo(ctrl, to Point) {
	if r.overflow {
		return
	}

	arcs := r.arcs
	arcs[0] = to
	arcs[1] = ctrl
	arcs[2] = Point{X: Fixed(r.x), Y: Fixed(r.y)}
	r.levels[0] = 0

	top := 0
	for top >= 0 {
		arc := arcs[2*top:]
		level := r.levels[top]
		if level < r.cfg.MaxLevels && r.inBand(arc[:3]) && !r.conicIsFlat(arc) {
			splitConic(arc)
			top++
			r.levels[top-1] = level + 1
			r.levels[top] = level + 1
			continue
		}
		r.renderLine(int(arc[0].X), int(arc[0].Y))
		top--
	}
}

// cubicTo flattens a cubic Bézier curve, like conicTo.  arc[0] is the
// end point and arc[3] the start point.
func (r *Rasterizer) cubicTo(ctrl1, ctrl2, to Point) {
	if r.overflow {
		return
	}

	arcs := r.arcs
	arcs[0] = to
	arcs[1] = ctrl2
	arcs[2] = ctrl1
	arcs[3] = Point{X: Fixed(r.x), Y: Fixed(r.y)}
	r.levels[0] = 0

	top := 0
	for top >= 0 {
		arc := arcs[3*top:]
		level := r.levels[top]
		if level < r.cfg.MaxLevels && r.inBand(arc[:4]) && !r.cubicIsFlat(arc) {
			splitCubic(arc)
			top++
			r.levels[top-1] = level + 1
			r.levels[top] = level + 1
			continue
		}
		r.renderLine(int(arc[0].X), int(arc[0].Y))
		top--
	}
}

// inBand reports whether the control polygon of an arc reaches into the
// current band.  Arcs outside the band are drawn as a single line.
func (r *Rasterizer) inBand(arc []Point) bool {
	yMin, yMax := arc[0].Y, arc[0].Y
	for _, p := range arc[1:] {
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
	}
	return yMin.Floor() < r.bandMax && yMax.Floor() >= r.bandMin
}

// conicIsFlat reports whether the chord of a quadratic arc stays within
// the flattening tolerance.  The distance between curve and chord is at
// most a quarter of the second difference of the control points.
func (r *Rasterizer) conicIsFlat(arc []Point) bool {
	dx := abs(int(arc[0].X) - 2*int(arc[1].X) + int(arc[2].X))
	dy := abs(int(arc[0].Y) - 2*int(arc[1].Y) + int(arc[2].Y))
	return max(dx, dy) <= 4*r.flatness
}

// cubicIsFlat is the cubic version of conicIsFlat.  The distance between
// curve and chord is at most 3/4 of the larger second difference.
func (r *Rasterizer) cubicIsFlat(arc []Point) bool {
	d1x := abs(int(arc[0].X) - 2*int(arc[1].X) + int(arc[2].X))
	d1y := abs(int(arc[0].Y) - 2*int(arc[1].Y) + int(arc[2].Y))
	d2x := abs(int(arc[1].X) - 2*int(arc[2].X) + int(arc[3].X))
	d2y := abs(int(arc[1].Y) - 2*int(arc[2].Y) + int(arc[3].Y))
	return 3*max(d1x, d1y, d2x, d2y) <= 4*r.flatness
}

// splitConic replaces the arc in base[0:3] by its two halves, in
// base[0:3] and base[2:5].
func splitConic(base []Point) {
	base[4] = base[2]
	base[3].X = (base[2].X + base[1].X) >> 1
	base[3].Y = (base[2].Y + base[1].Y) >> 1
	base[1].X = (base[0].X + base[1].X) >> 1
	base[1].Y = (base[0].Y + base[1].Y) >> 1
	base[2].X = (base[1].X + base[3].X) >> 1
	base[2].Y = (base[1].Y + base[3].Y) >> 1
}

// splitCubic replaces the arc in base[0:4] by its two halves, in
// base[0:4] and base[3:7].
func splitCubic(base []Point) {
	base[6] = base[3]
	split := func(p0, p1, p2, p3 Fixed) (a, b, c, d, e Fixed) {
		a = (p0 + p1) >> 1
		e = (p3 + p2) >> 1
		m := (p1 + p2) >> 1
		b = (a + m) >> 1
		d = (e + m) >> 1
		c = (b + d) >> 1
		return
	}
	base[1].X, base[2].X, base[3].X, base[4].X, base[5].X =
		split(base[0].X, base[1].X, base[2].X, base[3].X)
	base[1].Y, base[2].Y, base[3].Y, base[4].Y, base[5].Y =
		split(base[0].Y, base[1].Y, base[2].Y, base[3].Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
