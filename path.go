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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// OutlineFromPath converts a path into an outline.  Every subpath becomes
// one contour; open subpaths are closed implicitly.
func OutlineFromPath(p *path.Data) (*Outline, error) {
	o := &Outline{}

	var start vec.Vec2
	open := false // the current contour has points
	closeContour := func() {
		if !open {
			return
		}
		n := len(o.Points)
		if prev := lastContourEnd(o); n-1 == prev+1 {
			// a contour consisting of its start point only
			o.Points = o.Points[:n-1]
			o.Tags = o.Tags[:n-1]
		} else {
			o.Contours = append(o.Contours, int16(n-1))
		}
		open = false
	}
	add := func(tag Tag, pts ...vec.Vec2) {
		if !open {
			o.Points = append(o.Points, start)
			o.Tags = append(o.Tags, TagOn)
			open = true
		}
		for i, v := range pts {
			t := TagOn
			if i < len(pts)-1 {
				t = tag
			}
			o.Points = append(o.Points, v)
			o.Tags = append(o.Tags, t)
		}
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			closeContour()
			start = p.Coords[coordIdx]
			coordIdx++
		case path.CmdLineTo:
			add(TagOn, p.Coords[coordIdx])
			coordIdx++
		case path.CmdQuadTo:
			add(TagConic, p.Coords[coordIdx:coordIdx+2]...)
			coordIdx += 2
		case path.CmdCubeTo:
			add(TagCubic, p.Coords[coordIdx:coordIdx+3]...)
			coordIdx += 3
		case path.CmdClose:
			closeContour()
		}
	}
	closeContour()

	if len(o.Points) > math.MaxInt16+1 {
		return nil, fmt.Errorf("%w: %d points", ErrInvalidOutline, len(o.Points))
	}
	return o, nil
}

func lastContourEnd(o *Outline) int {
	if len(o.Contours) == 0 {
		return -1
	}
	return int(o.Contours[len(o.Contours)-1])
}
