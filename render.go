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

// Package gray renders glyph outlines into anti-aliased bitmaps.
//
// Outlines consist of closed contours made of straight lines, quadratic
// and cubic Bézier curves.  The rasterizer computes the exact area of
// every pixel covered by the outline, using 24.8 fixed point arithmetic,
// and composites the result into a [Bitmap] or passes it to a callback as
// a list of [Span] values.
//
// A [Rasterizer] is used through a [Session]:
//
//	pool, _ := gray.NewPool(gray.DefaultConfig(), 0)
//	err := pool.Do(func(s *gray.Session) error {
//		return s.Rasterize(outline, bitmap, &gray.Params{Scale: vec.Vec2{X: 2, Y: 2}})
//	})
package gray

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// Params describes how an outline is placed and painted.
type Params struct {
	// Color is the color of the outline.  If nil, opaque white is used.
	Color color.Color

	// Background is the color of uncovered pixels, used by [BlendCopy].
	// If nil, transparent black is used.
	Background color.Color

	// Position is added to every outline point after scaling, in pixels.
	Position vec.Vec2

	// Scale multiplies the coordinates of every outline point.
	// The zero value means no scaling.
	Scale vec.Vec2

	// Embolden makes the outline wider and higher by this many pixels.
	// Negative values make it thinner.
	Embolden float64

	// Blend selects how the outline is combined with the bitmap.
	Blend BlendMode
}

func (p *Params) scale() vec.Vec2 {
	if p.Scale == (vec.Vec2{}) {
		return vec.Vec2{X: 1, Y: 1}
	}
	return p.Scale
}

func (p *Params) check() error {
	if !isFinite(p.Position.X) || !isFinite(p.Position.Y) {
		return fmt.Errorf("%w: position %v", ErrInvalidParams, p.Position)
	}
	if !isFinite(p.Scale.X) || !isFinite(p.Scale.Y) {
		return fmt.Errorf("%w: scale %v", ErrInvalidParams, p.Scale)
	}
	if !isFinite(p.Embolden) {
		return fmt.Errorf("%w: embolden %g", ErrInvalidParams, p.Embolden)
	}
	if p.Blend != BlendCopy && p.Blend != BlendOver {
		return fmt.Errorf("%w: %s", ErrInvalidParams, p.Blend)
	}
	return nil
}

// Rasterize renders o into dst.
//
// If an error is returned, dst is unchanged.
func (s *Session) Rasterize(o *Outline, dst *Bitmap, p *Params) error {
	r := s.rasterizer()
	if p == nil {
		p = &Params{}
	}
	if err := dst.check(); err != nil {
		return err
	}

	fg, bg := p.Color, p.Background
	if fg == nil {
		fg = color.White
	}
	if bg == nil {
		bg = color.Transparent
	}
	c := newCompositor(dst, p.Blend, fg, bg)
	return r.rasterize(o, p, image.Rect(0, 0, dst.Width, dst.Height), c.blit)
}

// Spans renders o and passes the covered pixels inside clip to emit, one
// row at a time.  The rows are emitted from top to bottom, and the spans
// within a row from left to right.  A row may be emitted in several
// calls.  The spans slice is only valid during the call to emit.
//
// The Color, Background and Blend fields of p are ignored.
func (s *Session) Spans(o *Outline, p *Params, clip image.Rectangle, emit func(y int, spans []Span)) error {
	r := s.rasterizer()
	if p == nil {
		p = &Params{}
	}
	return r.rasterize(o, p, clip, emit)
}

// rasterize checks the outline, maps it to device space, and renders it.
// Nothing is emitted if an error is found while checking.
func (r *Rasterizer) rasterize(o *Outline, p *Params, clip image.Rectangle, emit func(int, []Span)) error {
	if err := p.check(); err != nil {
		return err
	}
	if err := o.check(); err != nil {
		Logger().Debug("outline rejected", "error", err)
		return err
	}
	r.loadPoints(o, p)
	if err := decompose(r.points, o.Tags, o.Contours, nopSink{}); err != nil {
		Logger().Debug("outline rejected", "error", err)
		return err
	}

	if !r.setClip(clip) {
		return nil
	}

	r.evenOdd = o.Flags&FlagEvenOdd != 0
	r.flatness = int(r.cfg.Flatness)
	if o.Flags&FlagHighPrecision != 0 {
		r.flatness = max(r.flatness/4, 1)
	}
	r.spans = r.spans[:0]
	r.emit = emit
	defer func() {
		r.emit = nil
	}()

	return r.render(o)
}
