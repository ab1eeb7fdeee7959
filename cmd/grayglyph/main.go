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

// Command grayglyph renders a line of text into a PNG image.
//
// Usage:
//
//	grayglyph [flags] text...
//
// The text is set in Go Regular unless a TrueType or OpenType font file
// is given with --font.
package main

import (
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gray"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	var (
		fontPath string
		size     float64
		output   string
		embolden float64
		fgColor  string
		bgColor  string
		margin   int
		evenOdd  bool
		noKern   bool
		verbose  bool
		showHelp bool
	)

	flags := pflag.NewFlagSet("grayglyph", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&fontPath, "font", "f", "", "Path to a TrueType or OpenType font (default: Go Regular)")
	flags.Float64VarP(&size, "size", "s", 32, "Font size in pixels per em")
	flags.StringVarP(&output, "output", "o", "out.png", "Output PNG file")
	flags.Float64VarP(&embolden, "embolden", "b", 0, "Make the glyphs wider by this many pixels")
	flags.StringVar(&fgColor, "fg", "#000000", "Text color as #rrggbb or #rrggbbaa")
	flags.StringVar(&bgColor, "bg", "#ffffff", "Background color as #rrggbb or #rrggbbaa")
	flags.IntVarP(&margin, "margin", "m", 4, "Empty border around the text, in pixels")
	flags.BoolVar(&evenOdd, "evenodd", false, "Use the even-odd fill rule")
	flags.BoolVar(&noKern, "no-kern", false, "Disable kerning")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log rasterizer debug messages to stderr")
	flags.BoolVarP(&showHelp, "help", "h", false, "Show help message")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if showHelp {
		fmt.Fprintln(stderr, "Usage: grayglyph [flags] text...")
		flags.PrintDefaults()
		return 0
	}

	text := strings.Join(flags.Args(), " ")
	if text == "" {
		fmt.Fprintln(stderr, "Error: no text provided")
		return 1
	}
	if !(size > 0 && size < 4096) {
		fmt.Fprintf(stderr, "Error: invalid size %g\n", size)
		return 1
	}

	if verbose {
		h := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		gray.SetLogger(slog.New(h))
	}

	fg, err := parseColor(fgColor)
	if err != nil {
		fmt.Fprintf(stderr, "Error: --fg: %v\n", err)
		return 1
	}
	bg, err := parseColor(bgColor)
	if err != nil {
		fmt.Fprintf(stderr, "Error: --bg: %v\n", err)
		return 1
	}

	f, err := loadFont(fontPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading font: %v\n", err)
		return 1
	}

	line, err := layout(f, text, size, !noKern)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if evenOdd {
		for _, g := range line.glyphs {
			g.outline.Flags |= gray.FlagEvenOdd
		}
	}

	pad := float64(margin) + math.Ceil(max(embolden, 0))
	width := int(math.Ceil(line.width + 2*pad))
	height := int(math.Ceil(line.ascent + line.descent + 2*pad))
	dst := gray.NewBitmap(width, height, gray.FormatRGBA)
	fill(dst, bg)

	pool, err := gray.NewPool(gray.DefaultConfig(), 1)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	err = pool.Do(func(s *gray.Session) error {
		for _, g := range line.glyphs {
			p := &gray.Params{
				Color:    fg,
				Position: vec.Vec2{X: pad + g.x, Y: pad + line.ascent},
				Embolden: embolden,
				Blend:    gray.BlendOver,
			}
			if err := s.Rasterize(g.outline, dst, p); err != nil {
				return fmt.Errorf("glyph %q: %w", g.r, err)
			}
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error rendering text: %v\n", err)
		return 1
	}

	if err := writePNG(output, dst); err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return 1
	}
	return 0
}

type glyph struct {
	r       rune
	x       float64 // pen position, in pixels
	outline *gray.Outline
}

type textLine struct {
	glyphs  []*glyph
	width   float64
	ascent  float64
	descent float64
}

func loadFont(fontPath string) (*sfnt.Font, error) {
	if fontPath == "" {
		return sfnt.Parse(goregular.TTF)
	}
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, err
	}
	return sfnt.Parse(data)
}

// layout places the glyphs of text on a single line, starting at x = 0.
func layout(f *sfnt.Font, text string, size float64, kern bool) (*textLine, error) {
	ppem := fixed.Int26_6(math.Round(size * 64))
	var buf sfnt.Buffer

	m, err := f.Metrics(&buf, ppem, font.HintingNone)
	if err != nil {
		return nil, err
	}
	line := &textLine{
		ascent:  fix2float(m.Ascent),
		descent: fix2float(m.Descent),
	}

	var x fixed.Int26_6
	var prev sfnt.GlyphIndex
	for i, r := range text {
		idx, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return nil, err
		}
		if kern && i > 0 {
			// Fonts without kerning information return an error here.
			if k, err := f.Kern(&buf, prev, idx, ppem, font.HintingNone); err == nil {
				x += k
			}
		}

		segs, err := f.LoadGlyph(&buf, idx, ppem, nil)
		if errors.Is(err, sfnt.ErrNotFound) {
			segs = nil
		} else if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", r, err)
		}
		o, err := gray.OutlineFromSegments(segs)
		if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", r, err)
		}
		line.glyphs = append(line.glyphs, &glyph{r: r, x: fix2float(x), outline: o})

		adv, err := f.GlyphAdvance(&buf, idx, ppem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", r, err)
		}
		x += adv
		prev = idx
	}
	line.width = fix2float(x)
	return line, nil
}

func fix2float(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

// parseColor parses colors of the form #rrggbb and #rrggbbaa.
func parseColor(s string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.NRGBA{}, fmt.Errorf("malformed color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("malformed color %q", s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func fill(dst *gray.Bitmap, c color.NRGBA) {
	px := []byte{c.R, c.G, c.B, c.A}
	for y := range dst.Height {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+4*dst.Width]
		for x := 0; x < len(row); x += 4 {
			copy(row[x:], px)
		}
	}
}

func writePNG(name string, b *gray.Bitmap) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, b.Image())
}
