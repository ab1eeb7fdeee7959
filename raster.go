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
	"sync"
	"sync/atomic"

	"seehuhn.de/go/geom/vec"
)

// cell accumulates the contributions of all edges crossing one pixel.
type cell struct {
	x    int32 // pixel column
	next int32 // index of the next cell in the same row, or -1

	cover int // signed vertical extent of the edges, in 1/256 pixel
	area  int // twice the signed area to the left of the edges, in 1/65536 pixel²
}

// band is the half-open range [min, max) of pixel rows.
type band struct {
	min, max int
}

// Rasterizer converts glyph outlines into coverage spans.
//
// All scratch memory is allocated once, when the rasterizer is created.
// Outlines which need more cells than are available are rendered in
// several horizontal bands.  A Rasterizer is used through a [Session],
// which guarantees exclusive access.
type Rasterizer struct {
	cfg Config

	mu      sync.Mutex
	session atomic.Pointer[Session]

	pool *Pool
	refs int // guarded by pool.mu

	// device space outline points, before and after conversion
	work   []vec.Vec2
	shift  []vec.Vec2
	points []Point

	cells  []cell  // cell arena, fixed capacity
	rows   []int32 // first cell of every row in the current band
	bands  []band  // pending bands, the top one is rendered next
	arcs   []Point // curve subdivision stack
	levels []int   // subdivision depth of the entries of arcs
	spans  []Span  // spans not yet handed to emit

	// clip box of the current outline, in pixels
	minEx, maxEx int
	minEy, maxEy int

	bandMin, bandMax int

	// the current cell
	ex, ey  int
	area    int
	cover   int
	invalid bool

	// current position, in 1/256 pixel
	x, y int

	overflow bool
	evenOdd  bool
	flatness int

	spanY int
	emit  func(y int, spans []Span)

	bandSplits int
}

// New allocates a rasterizer which is not managed by a [Pool].
func New(cfg Config) (*Rasterizer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	r := &Rasterizer{cfg: cfg}
	r.alloc()
	return r, nil
}

func (r *Rasterizer) alloc() {
	r.cells = make([]cell, 0, r.cfg.Cells)
	r.rows = make([]int32, r.cfg.BandRows)
	r.bands = make([]band, 0, 16)
	r.arcs = make([]Point, 3*r.cfg.MaxLevels+4)
	r.levels = make([]int, r.cfg.MaxLevels+1)
	r.spans = make([]Span, 0, r.cfg.Spans)
}

// free drops all scratch memory.  The rasterizer cannot be used afterwards.
func (r *Rasterizer) free() {
	r.work = nil
	r.shift = nil
	r.points = nil
	r.cells = nil
	r.rows = nil
	r.bands = nil
	r.arcs = nil
	r.levels = nil
	r.spans = nil
}

// render converts the points in r.points into spans, passed to r.emit.
// The clip box must have been set by setClip.
func (r *Rasterizer) render(o *Outline) error {
	if r.maxEx-r.minEx+2 > cap(r.cells) {
		return fmt.Errorf("%w: %d pixel wide row, %d cells",
			ErrTooComplex, r.maxEx-r.minEx, cap(r.cells))
	}

	bandRows := min(r.cfg.BandRows, r.maxEy-r.minEy)
	for y := r.minEy; y < r.maxEy; y += bandRows {
		r.bands = append(r.bands[:0], band{min: y, max: min(y+bandRows, r.maxEy)})

		for len(r.bands) > 0 {
			top := len(r.bands) - 1
			b := r.bands[top]
			if r.renderBand(o, b) {
				r.sweep()
				r.bands = r.bands[:top]
				continue
			}

			// The cell pool overflowed: render the two halves separately.
			mid := b.min + (b.max-b.min)/2
			if mid == b.min {
				return fmt.Errorf("%w: row %d", ErrTooComplex, b.min)
			}
			r.bandSplits++
			Logger().Debug("band split",
				"rows", b.max-b.min, "from", b.min, "cells", cap(r.cells))
			r.bands[top] = band{min: mid, max: b.max}
			r.bands = append(r.bands, band{min: b.min, max: mid})
		}
	}
	return nil
}

// renderBand accumulates the cells of all outline edges inside b.
// It reports false if the cell pool overflowed.
func (r *Rasterizer) renderBand(o *Outline, b band) bool {
	r.bandMin, r.bandMax = b.min, b.max
	r.cells = r.cells[:0]
	rows := r.rows[:b.max-b.min]
	for i := range rows {
		rows[i] = -1
	}
	r.overflow = false
	r.invalid = true

	// The outline has been checked by decompose before.
	if err := decompose(r.points, o.Tags, o.Contours, r); err != nil {
		panic("gray: unchecked outline: " + err.Error())
	}
	if !r.invalid {
		r.recordCell()
	}
	return !r.overflow
}

// startCell makes (ex, ey) the current cell, discarding the old one.
func (r *Rasterizer) startCell(ex, ey int) {
	ex = r.clampEx(ex)
	r.ex, r.ey = ex, ey
	r.area, r.cover = 0, 0
	r.invalid = ey < r.bandMin || ey >= r.bandMax || ex >= r.maxEx
}

// setCell moves to the cell (ex, ey), recording the current one.
func (r *Rasterizer) setCell(ex, ey int) {
	ex = r.clampEx(ex)
	if ex != r.ex || ey != r.ey {
		if !r.invalid {
			r.recordCell()
		}
		r.ex, r.ey = ex, ey
		r.area, r.cover = 0, 0
	}
	r.invalid = ey < r.bandMin || ey >= r.bandMax || ex >= r.maxEx
}

// clampEx maps all columns left of the clip box to column minEx-1, so that
// their cover still reaches the visible pixels.
func (r *Rasterizer) clampEx(ex int) int {
	if ex < r.minEx {
		return r.minEx - 1
	}
	if ex > r.maxEx {
		return r.maxEx
	}
	return ex
}

// recordCell adds the current cell to the cell list of its row.
func (r *Rasterizer) recordCell() {
	if r.area == 0 && r.cover == 0 {
		return
	}
	i := r.findCell()
	if i < 0 {
		r.overflow = true
		return
	}
	c := &r.cells[i]
	c.area += r.area
	c.cover += r.cover
}

// findCell returns the index of the cell at (r.ex, r.ey), creating it if
// necessary.  Rows are kept sorted by x.  The return value is -1 if the
// pool is exhausted.
func (r *Rasterizer) findCell() int {
	x := int32(r.ex)
	link := &r.rows[r.ey-r.bandMin]
	for *link >= 0 {
		c := &r.cells[*link]
		if c.x == x {
			return int(*link)
		}
		if c.x > x {
			break
		}
		link = &c.next
	}

	if len(r.cells) == cap(r.cells) {
		return -1
	}
	i := len(r.cells)
	r.cells = append(r.cells, cell{x: x, next: *link})
	*link = int32(i)
	return i
}

func (r *Rasterizer) moveTo(to Point) {
	if !r.invalid {
		r.recordCell()
	}
	x, y := int(to.X), int(to.Y)
	r.startCell(x>>pixelBits, y>>pixelBits)
	r.x, r.y = x, y
}

func (r *Rasterizer) lineTo(to Point) {
	if r.overflow {
		return
	}
	r.renderLine(int(to.X), int(to.Y))
}

// renderScanline adds the edge from (x1, y1) to (x2, y2) to the cells of
// row ey.  The y values are relative to the top of the row, in the range
// 0 to OnePixel.
func (r *Rasterizer) renderScanline(ey, x1, y1, x2, y2 int) {
	ex1 := x1 >> pixelBits
	ex2 := x2 >> pixelBits
	fx1 := x1 - ex1<<pixelBits
	fx2 := x2 - ex2<<pixelBits

	// horizontal
	if y1 == y2 {
		r.setCell(ex2, ey)
		return
	}

	// inside a single cell
	if ex1 == ex2 {
		delta := y2 - y1
		r.area += (fx1 + fx2) * delta
		r.cover += delta
		return
	}

	// a run of adjacent cells
	dx := int64(x2 - x1)
	p := int64(onePixel-fx1) * int64(y2-y1)
	first := onePixel
	incr := 1
	if dx < 0 {
		p = int64(fx1) * int64(y2-y1)
		first = 0
		incr = -1
		dx = -dx
	}

	delta := int(p / dx)
	mod := p % dx
	if mod < 0 {
		delta--
		mod += dx
	}

	r.area += (fx1 + first) * delta
	r.cover += delta

	ex1 += incr
	r.setCell(ex1, ey)
	y1 += delta

	if ex1 != ex2 {
		p = int64(onePixel) * int64(y2-y1+delta)
		lift := p / dx
		rem := p % dx
		if rem < 0 {
			lift--
			rem += dx
		}
		mod -= dx

		for ex1 != ex2 {
			delta = int(lift)
			mod += rem
			if mod >= 0 {
				mod -= dx
				delta++
			}

			r.area += onePixel * delta
			r.cover += delta
			y1 += delta
			ex1 += incr
			r.setCell(ex1, ey)
		}
	}

	delta = y2 - y1
	r.area += (fx2 + onePixel - first) * delta
	r.cover += delta
}

// renderLine adds the edge from the current position to (toX, toY),
// splitting it at row boundaries.
func (r *Rasterizer) renderLine(toX, toY int) {
	ey1 := r.y >> pixelBits
	ey2 := toY >> pixelBits
	fy1 := r.y - ey1<<pixelBits
	fy2 := toY - ey2<<pixelBits

	defer func() {
		r.x, r.y = toX, toY
	}()

	// vertical clipping against the current band
	if min(ey1, ey2) >= r.bandMax || max(ey1, ey2) < r.bandMin {
		return
	}

	// everything on a single row
	if ey1 == ey2 {
		r.renderScanline(ey1, r.x, fy1, toX, fy2)
		return
	}

	dx := toX - r.x
	dy := toY - r.y

	// vertical line
	if dx == 0 {
		ex := r.x >> pixelBits
		twoFx := (r.x - ex<<pixelBits) << 1

		first := onePixel
		incr := 1
		if dy < 0 {
			first = 0
			incr = -1
		}

		delta := first - fy1
		r.area += twoFx * delta
		r.cover += delta
		ey1 += incr
		r.setCell(ex, ey1)

		delta = first + first - onePixel
		area := twoFx * delta
		for ey1 != ey2 {
			r.area += area
			r.cover += delta
			ey1 += incr
			r.setCell(ex, ey1)
		}

		delta = fy2 - onePixel + first
		r.area += twoFx * delta
		r.cover += delta
		return
	}

	// several rows
	p := int64(onePixel-fy1) * int64(dx)
	first := onePixel
	incr := 1
	dy64 := int64(dy)
	if dy < 0 {
		p = int64(fy1) * int64(dx)
		first = 0
		incr = -1
		dy64 = -dy64
	}

	delta := p / dy64
	mod := p % dy64
	if mod < 0 {
		delta--
		mod += dy64
	}

	x := r.x + int(delta)
	r.renderScanline(ey1, r.x, fy1, x, first)

	ey1 += incr
	r.setCell(x>>pixelBits, ey1)

	if ey1 != ey2 {
		p = int64(onePixel) * int64(dx)
		lift := p / dy64
		rem := p % dy64
		if rem < 0 {
			lift--
			rem += dy64
		}
		mod -= dy64

		for ey1 != ey2 {
			delta = lift
			mod += rem
			if mod >= 0 {
				mod -= dy64
				delta++
			}

			x2 := x + int(delta)
			r.renderScanline(ey1, x, onePixel-first, x2, first)
			x = x2

			ey1 += incr
			r.setCell(x>>pixelBits, ey1)
		}
	}

	r.renderScanline(ey1, x, onePixel-first, toX, fy2)
}
