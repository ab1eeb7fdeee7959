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

// Span is a horizontal run of pixels with equal coverage.
type Span struct {
	X        int   // first pixel
	Len      int   // number of pixels
	Coverage uint8 // 0 = not covered, 255 = fully covered
}

// sweep converts the cells of the current band into spans.
//
// The coverage of a pixel is given by the cover of all cells to its
// left, minus the area of the edges inside the pixel.  Runs of pixels
// without cells get the accumulated cover only.
func (r *Rasterizer) sweep() {
	for row := range r.bandMax - r.bandMin {
		y := r.bandMin + row
		cover := 0
		x := r.minEx

		for i := r.rows[row]; i >= 0; i = r.cells[i].next {
			c := &r.cells[i]
			cx := int(c.x)

			if cx > x && cover != 0 {
				r.hline(x, y, cover*(onePixel*2), cx-x)
			}

			cover += c.cover
			area := cover*(onePixel*2) - c.area
			if area != 0 && cx >= r.minEx {
				r.hline(cx, y, area, 1)
			}
			x = cx + 1
		}

		if cover != 0 && x < r.maxEx {
			r.hline(x, y, cover*(onePixel*2), r.maxEx-x)
		}
	}
	r.flushSpans()
}

// hline adds a span of count pixels starting at (x, y).  area is the
// accumulated area, in units of 1/(2*256*256) pixel².
func (r *Rasterizer) hline(x, y, area, count int) {
	if area < 0 {
		area = -area
	}
	coverage := area >> (pixelBits*2 + 1 - 8)

	if r.evenOdd {
		coverage &= 511
		if coverage > 256 {
			coverage = 512 - coverage
		} else if coverage == 256 {
			coverage = 255
		}
	} else if coverage >= 256 {
		coverage = 255
	}
	if coverage == 0 {
		return
	}

	if n := len(r.spans); n > 0 {
		last := &r.spans[n-1]
		if r.spanY == y && last.X+last.Len == x && int(last.Coverage) == coverage {
			last.Len += count
			return
		}
		if r.spanY != y || n == cap(r.spans) {
			r.flushSpans()
		}
	}

	r.spanY = y
	r.spans = append(r.spans, Span{X: x, Len: count, Coverage: uint8(coverage)})
}

func (r *Rasterizer) flushSpans() {
	if len(r.spans) == 0 {
		return
	}
	r.emit(r.spanY, r.spans)
	r.spans = r.spans[:0]
}
