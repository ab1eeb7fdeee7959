package gray

import (
	"fmt"
	"image"
	"image/color"
	"maps"
	"slices"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/gray/testcases"
)

// BenchmarkRasterizerO benchmarks our rasterizer drawing an "O" shape.
func BenchmarkRasterizerO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r, err := New(DefaultConfig())
			if err != nil {
				b.Fatal(err)
			}

			dst := NewBitmap(size, size, FormatAlpha)

			center := float64(size) / 2
			outerR := float64(size) * 0.45
			innerR := float64(size) * 0.30

			o, err := OutlineFromPath(makeOPath(center, center, outerR, innerR))
			if err != nil {
				b.Fatal(err)
			}
			o.Flags = FlagEvenOdd

			s := r.BeginRasterizing()
			defer s.End()

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				if err := s.Rasterize(o, dst, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkVectorO benchmarks x/image/vector drawing an "O" shape.
func BenchmarkVectorO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float64(size) / 2
			outerR := float64(size) * 0.45
			innerR := float64(size) * 0.30
			oPath := makeOPath(center, center, outerR, innerR)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				addPath(r, oPath, identity, 0)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkRasterizeAll measures steady-state performance by reusing a single
// Rasterizer across all test cases.
func BenchmarkRasterizeAll(b *testing.B) {
	type prepared struct {
		o   *Outline
		dst *Bitmap
		p   *Params
	}
	var cases []prepared
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			o, err := OutlineFromPath(tc.Path)
			if err != nil {
				b.Fatal(err)
			}
			if tc.Rule == testcases.EvenOdd {
				o.Flags |= FlagEvenOdd
			}
			cases = append(cases, prepared{
				o:   o,
				dst: NewBitmap(tc.Width, tc.Height, FormatLuma),
				p:   &Params{Scale: tc.Scale, Position: tc.Position, Embolden: tc.Embolden},
			})
		}
	}

	r, err := New(DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}
	s := r.BeginRasterizing()
	defer s.End()

	b.ResetTimer()
	for b.Loop() {
		for _, c := range cases {
			if err := s.Rasterize(c.o, c.dst, c.p); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkPool measures the overhead of scoped sessions.
func BenchmarkPool(b *testing.B) {
	p, err := NewPool(DefaultConfig(), 0)
	if err != nil {
		b.Fatal(err)
	}
	o, err := OutlineFromPath(makeOPath(16, 16, 14, 9))
	if err != nil {
		b.Fatal(err)
	}

	b.RunParallel(func(pb *testing.PB) {
		dst := NewBitmap(32, 32, FormatLuma)
		for pb.Next() {
			err := p.Do(func(s *Session) error {
				return s.Rasterize(o, dst, nil)
			})
			if err != nil {
				b.Error(err)
				return
			}
		}
	})
}

// makeOPath creates an "O" shape path.
// Outer circle is counter-clockwise, inner circle is clockwise.
func makeOPath(cx, cy, outerR, innerR float64) *path.Data {
	p := &path.Data{}
	p = addCircle(p, cx, cy, outerR, false)
	return addCircle(p, cx, cy, innerR, true)
}

// addCircle adds a circle to a path using cubic Bézier curves.
func addCircle(p *path.Data, cx, cy, r float64, clockwise bool) *path.Data {
	// Magic number for circular arc approximation with cubic Bézier
	const k = 0.5522847498
	kr := k * r

	p = p.MoveTo(pt(cx, cy-r))
	if clockwise {
		p = p.
			CubeTo(pt(cx-kr, cy-r), pt(cx-r, cy-kr), pt(cx-r, cy)).
			CubeTo(pt(cx-r, cy+kr), pt(cx-kr, cy+r), pt(cx, cy+r)).
			CubeTo(pt(cx+kr, cy+r), pt(cx+r, cy+kr), pt(cx+r, cy)).
			CubeTo(pt(cx+r, cy-kr), pt(cx+kr, cy-r), pt(cx, cy-r))
	} else {
		p = p.
			CubeTo(pt(cx+kr, cy-r), pt(cx+r, cy-kr), pt(cx+r, cy)).
			CubeTo(pt(cx+r, cy+kr), pt(cx+kr, cy+r), pt(cx, cy+r)).
			CubeTo(pt(cx-kr, cy+r), pt(cx-r, cy+kr), pt(cx-r, cy)).
			CubeTo(pt(cx-r, cy-kr), pt(cx-kr, cy-r), pt(cx, cy-r))
	}
	return p.Close()
}
