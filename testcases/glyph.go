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
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var glyphCases = []TestCase{
	{
		Name:   "glyph_a_small",
		Path:   glyphPath("a", 12, 4, 12),
		Width:  16,
		Height: 16,
	},
	{
		Name:   "glyph_g_large",
		Path:   glyphPath("g", 96, 16, 96),
		Width:  128,
		Height: 128,
	},
	{
		Name:   "glyph_at",
		Path:   glyphPath("@", 48, 4, 44),
		Width:  56,
		Height: 56,
	},
	{
		Name:   "glyph_word",
		Path:   glyphPath("Glyph", 32, 4, 32),
		Width:  128,
		Height: 40,
	},
	{
		Name:   "glyph_word_evenodd",
		Path:   glyphPath("Glyph", 32, 4, 32),
		Width:  128,
		Height: 40,
		Rule:   EvenOdd,
	},
	{
		Name:   "glyph_tiny",
		Path:   glyphPath("Hamburgefonts", 7, 1, 8),
		Width:  64,
		Height: 10,
	},
}

var goRegular = sync.OnceValue(func() *sfnt.Font {
	f, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return f
})

// glyphPath lays out text in Go Regular at the given pixel size, with the
// baseline starting at (x, y).  The y axis points down.
func glyphPath(text string, size, x, y float64) *path.Data {
	f := goRegular()
	ppem := fixed.Int26_6(size * 64)

	var buf sfnt.Buffer
	p := &path.Data{}
	for _, r := range text {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil {
			panic(err)
		}
		segs, err := f.LoadGlyph(&buf, idx, ppem, nil)
		if err != nil {
			panic(err)
		}
		p = appendSegments(p, segs, x, y)

		adv, err := f.GlyphAdvance(&buf, idx, ppem, font.HintingNone)
		if err != nil {
			panic(err)
		}
		x += float64(adv) / 64
	}
	return p
}

// appendSegments adds the glyph outline segs, shifted by (dx, dy), to p.
func appendSegments(p *path.Data, segs sfnt.Segments, dx, dy float64) *path.Data {
	conv := func(q fixed.Point26_6) vec.Vec2 {
		return pt(float64(q.X)/64+dx, float64(q.Y)/64+dy)
	}

	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p = p.Close()
			}
			p = p.MoveTo(conv(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			p = p.LineTo(conv(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p = p.QuadTo(conv(seg.Args[0]), conv(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			p = p.CubeTo(conv(seg.Args[0]), conv(seg.Args[1]), conv(seg.Args[2]))
		}
	}
	if open {
		p = p.Close()
	}
	return p
}
