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

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/vec"
)

// OutlineFromSegments converts a glyph loaded by [sfnt.Font.LoadGlyph]
// into an outline.  The coordinates are in pixels, with the y axis
// pointing down, as returned by LoadGlyph.
func OutlineFromSegments(segs sfnt.Segments) (*Outline, error) {
	o := &Outline{}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				o.Contours = append(o.Contours, int16(len(o.Points)-1))
			}
			o.addPoint(seg.Args[0], TagOn)
			open = true
		case sfnt.SegmentOpLineTo:
			o.addPoint(seg.Args[0], TagOn)
		case sfnt.SegmentOpQuadTo:
			o.addPoint(seg.Args[0], TagConic)
			o.addPoint(seg.Args[1], TagOn)
		case sfnt.SegmentOpCubeTo:
			o.addPoint(seg.Args[0], TagCubic)
			o.addPoint(seg.Args[1], TagCubic)
			o.addPoint(seg.Args[2], TagOn)
		default:
			return nil, fmt.Errorf("%w: unknown segment op %d", ErrInvalidOutline, seg.Op)
		}
		if !open {
			return nil, fmt.Errorf("%w: segment before the first MoveTo", ErrInvalidOutline)
		}
	}
	if open {
		o.Contours = append(o.Contours, int16(len(o.Points)-1))
	}

	if len(o.Points) > math.MaxInt16+1 {
		return nil, fmt.Errorf("%w: %d points", ErrInvalidOutline, len(o.Points))
	}
	return o, nil
}

func (o *Outline) addPoint(p fixed.Point26_6, tag Tag) {
	o.Points = append(o.Points, vec.Vec2{
		X: float64(p.X) / 64,
		Y: float64(p.Y) / 64,
	})
	o.Tags = append(o.Tags, tag)
}
