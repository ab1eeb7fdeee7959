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
	"image/color"
	"maps"
	"math"
	"slices"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gray/testcases"
)

// TestAgainstVector compares the nonzero test cases with the output of
// golang.org/x/image/vector.  Curves are passed to vector as fine
// polylines, since its own flattening is much coarser.
func TestAgainstVector(t *testing.T) {
	r := newTestRasterizer(t)

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if tc.Rule != testcases.NonZero || tc.Embolden != 0 {
				continue
			}
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				o, err := OutlineFromPath(tc.Path)
				if err != nil {
					t.Fatal(err)
				}
				for i, p := range o.Points {
					o.Points[i] = tc.Transform(p)
				}
				b := o.Bounds()
				if b.LLx < 0 || b.LLy < 0 || b.URx > float64(tc.Width) || b.URy > float64(tc.Height) {
					t.Skip("outline leaves the canvas")
				}

				got, err := renderCase(r, tc)
				if err != nil {
					t.Fatal(err)
				}
				want := renderVector(tc)

				var sum, worst int
				for i := range want {
					d := int(got[i]) - int(want[i])
					if d < 0 {
						d = -d
					}
					sum += d
					worst = max(worst, d)
				}
				mean := float64(sum) / float64(len(want))
				if worst > 32 || mean > 1 {
					_ = writeDiffImage("vector_"+name, want, got, tc.Width, tc.Height)
					t.Errorf("max diff %d, mean diff %.2f", worst, mean)
				}
			})
		}
	}
}

// renderVector renders a test case with golang.org/x/image/vector.
func renderVector(tc testcases.TestCase) []byte {
	z := vector.NewRasterizer(tc.Width, tc.Height)
	addPath(z, tc.Path, tc.Transform, 256)

	dst := image.NewAlpha(image.Rect(0, 0, tc.Width, tc.Height))
	z.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})
	return dst.Pix
}

// addPath adds the subpaths of p to z, mapping all points through f.
// If segments is positive, every curve is replaced by a polyline with
// this many segments.
func addPath(z *vector.Rasterizer, p *path.Data, f func(vec.Vec2) vec.Vec2, segments int) {
	conv := func(v vec.Vec2) (float32, float32) {
		v = f(v)
		return float32(v.X), float32(v.Y)
	}
	flatten := func(curve func(t float64) vec.Vec2) {
		for i := 1; i <= segments; i++ {
			z.LineTo(conv(curve(float64(i) / float64(segments))))
		}
	}

	open := false
	k := 0
	var cur vec.Vec2
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				z.ClosePath()
			}
			cur = p.Coords[k]
			z.MoveTo(conv(cur))
			open = true
			k++
		case path.CmdLineTo:
			cur = p.Coords[k]
			z.LineTo(conv(cur))
			k++
		case path.CmdQuadTo:
			p0, p1, p2 := cur, p.Coords[k], p.Coords[k+1]
			if segments > 0 {
				flatten(func(t float64) vec.Vec2 {
					s := 1 - t
					return p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
				})
			} else {
				x1, y1 := conv(p1)
				x2, y2 := conv(p2)
				z.QuadTo(x1, y1, x2, y2)
			}
			cur = p2
			k += 2
		case path.CmdCubeTo:
			p0, p1, p2, p3 := cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			if segments > 0 {
				flatten(func(t float64) vec.Vec2 {
					s := 1 - t
					return p0.Mul(s * s * s).Add(p1.Mul(3 * s * s * t)).
						Add(p2.Mul(3 * s * t * t)).Add(p3.Mul(t * t * t))
				})
			} else {
				x1, y1 := conv(p1)
				x2, y2 := conv(p2)
				x3, y3 := conv(p3)
				z.CubeTo(x1, y1, x2, y2, x3, y3)
			}
			cur = p3
			k += 3
		case path.CmdClose:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
}

func identity(v vec.Vec2) vec.Vec2 { return v }

// TestVectorTriangle checks the exact triangle of TestTriangleCoverage
// against golang.org/x/image/vector.
func TestVectorTriangle(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(10, 0)).
		LineTo(pt(10, 1)).
		Close()

	z := vector.NewRasterizer(10, 1)
	addPath(z, triangle, identity, 0)
	dst := image.NewAlpha(image.Rect(0, 0, 10, 1))
	z.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})

	r := newTestRasterizer(t)
	got := collectCoverage(t, r, triangle, image.Rect(0, 0, 10, 1))
	for x := range 10 {
		if math.Abs(float64(got[x])-float64(dst.Pix[x])) > 2 {
			t.Errorf("pixel %d: got %d, vector has %d", x, got[x], dst.Pix[x])
		}
	}
}
