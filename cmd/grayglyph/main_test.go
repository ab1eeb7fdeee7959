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

package main

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"#000000", color.NRGBA{A: 255}, true},
		{"#ff8000", color.NRGBA{R: 255, G: 128, A: 255}, true},
		{"#ff800040", color.NRGBA{R: 255, G: 128, A: 64}, true},
		{"ff8000", color.NRGBA{}, false},
		{"#ff80", color.NRGBA{}, false},
		{"#gg0000", color.NRGBA{}, false},
	}
	for _, c := range cases {
		got, err := parseColor(c.in)
		if (err == nil) != c.ok {
			t.Errorf("%q: unexpected error state %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: got %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLayout(t *testing.T) {
	f, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	line, err := layout(f, "AV a", 20, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(line.glyphs) != 4 {
		t.Fatalf("got %d glyphs", len(line.glyphs))
	}
	for i := 1; i < len(line.glyphs); i++ {
		if line.glyphs[i].x <= line.glyphs[i-1].x {
			t.Errorf("glyph %d not right of glyph %d", i, i-1)
		}
	}
	if len(line.glyphs[2].outline.Points) != 0 {
		t.Error("space has an outline")
	}
	if line.ascent <= 0 || line.descent <= 0 || line.width <= 0 {
		t.Errorf("bad metrics: %+v", line)
	}
}

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "hello.png")
	var stderr bytes.Buffer
	code := run([]string{"-o", out, "-s", "24", "--fg", "#ff0000", "-v", "Hello"}, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr.String())
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}

	// some pixels are pure text color, the corner is background
	var red int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c == (color.NRGBA{R: 255, A: 255}) {
				red++
			}
		}
	}
	if red == 0 {
		t.Error("no text pixels")
	}
	if c := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA); c != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("corner pixel %v", c)
	}
}

func TestRunErrors(t *testing.T) {
	cases := [][]string{
		{},
		{"--size", "-3", "x"},
		{"--fg", "red", "x"},
		{"--font", "/nonexistent/font.ttf", "x"},
	}
	for _, args := range cases {
		var stderr bytes.Buffer
		if code := run(args, &stderr); code == 0 {
			t.Errorf("%q: expected failure", strings.Join(args, " "))
		}
	}
}
