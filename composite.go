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
	"image/color"
)

// PixelFormat describes the memory layout of a [Bitmap].
// All formats use 8 bits per channel and non-premultiplied alpha.
type PixelFormat int

// These are the supported pixel formats.
const (
	FormatLuma      PixelFormat = iota + 1 // Y
	FormatAlpha                            // A
	FormatLumaAlpha                        // Y, A
	FormatRGB                              // R, G, B
	FormatRGBA                             // R, G, B, A
	FormatBGRA                             // B, G, R, A
)

// BytesPerPixel returns the size of one pixel, or 0 for unknown formats.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case FormatLuma, FormatAlpha:
		return 1
	case FormatLumaAlpha:
		return 2
	case FormatRGB:
		return 3
	case FormatRGBA, FormatBGRA:
		return 4
	default:
		return 0
	}
}

func (f PixelFormat) String() string {
	switch f {
	case FormatLuma:
		return "luma"
	case FormatAlpha:
		return "alpha"
	case FormatLumaAlpha:
		return "luma+alpha"
	case FormatRGB:
		return "RGB"
	case FormatRGBA:
		return "RGBA"
	case FormatBGRA:
		return "BGRA"
	default:
		return fmt.Sprintf("PixelFormat(%d)", int(f))
	}
}

// BlendMode selects how coverage is combined with the destination pixels.
type BlendMode int

const (
	// BlendCopy sets every covered pixel to a mix of the background and
	// the outline color, weighted by coverage.
	BlendCopy BlendMode = iota

	// BlendOver draws the outline color over the existing pixels, with
	// coverage times the alpha of the outline color as opacity.
	BlendOver
)

func (m BlendMode) String() string {
	switch m {
	case BlendCopy:
		return "copy"
	case BlendOver:
		return "over"
	default:
		return fmt.Sprintf("BlendMode(%d)", int(m))
	}
}

// compositor writes spans into a bitmap.  Colors are converted to the
// channel order of the bitmap once, when the compositor is set up.
type compositor struct {
	dst   *Bitmap
	mode  BlendMode
	bpp   int
	fg    [4]uint8
	bg    [4]uint8
	alpha uint8 // alpha of the outline color
}

func newCompositor(dst *Bitmap, mode BlendMode, fg, bg color.Color) *compositor {
	c := &compositor{
		dst:  dst,
		mode: mode,
		bpp:  dst.Format.BytesPerPixel(),
	}
	c.fg = pack(dst.Format, fg)
	c.bg = pack(dst.Format, bg)
	c.alpha = color.NRGBAModel.Convert(fg).(color.NRGBA).A
	return c
}

// pack converts col into the channel order of format f.
func pack(f PixelFormat, col color.Color) [4]uint8 {
	c := color.NRGBAModel.Convert(col).(color.NRGBA)
	switch f {
	case FormatLuma:
		return [4]uint8{luma(c)}
	case FormatAlpha:
		return [4]uint8{c.A}
	case FormatLumaAlpha:
		return [4]uint8{luma(c), c.A}
	case FormatRGB:
		return [4]uint8{c.R, c.G, c.B}
	case FormatRGBA:
		return [4]uint8{c.R, c.G, c.B, c.A}
	case FormatBGRA:
		return [4]uint8{c.B, c.G, c.R, c.A}
	}
	return [4]uint8{}
}

// luma uses the same weights as [color.GrayModel].
func luma(c color.NRGBA) uint8 {
	y := (19595*uint32(c.R) + 38470*uint32(c.G) + 7471*uint32(c.B) + 1<<15) >> 16
	return uint8(y)
}

// blit writes one row of spans.  This is the emit function of the
// rasterizer when rendering into a bitmap.
func (c *compositor) blit(y int, spans []Span) {
	row := c.dst.Pix[y*c.dst.Stride:]
	switch c.dst.Format {
	case FormatLuma, FormatRGB:
		if c.mode == BlendCopy {
			c.copySpans(row, spans)
		} else {
			c.overOpaque(row, spans)
		}
	case FormatAlpha:
		if c.mode == BlendCopy {
			c.copySpans(row, spans)
		} else {
			c.overAlpha(row, spans)
		}
	case FormatLumaAlpha, FormatRGBA, FormatBGRA:
		if c.mode == BlendCopy {
			c.copySpans(row, spans)
		} else {
			c.overColorAlpha(row, spans)
		}
	}
}

// copySpans sets the pixels to a mix of background and outline color.
func (c *compositor) copySpans(row []byte, spans []Span) {
	n := c.bpp
	for _, s := range spans {
		cov := s.Coverage
		var px [4]uint8
		for k := range n {
			px[k] = lerp(c.bg[k], c.fg[k], cov)
		}
		pix := row[s.X*n : (s.X+s.Len)*n]
		for i := 0; i < len(pix); i += n {
			copy(pix[i:i+n], px[:n])
		}
	}
}

// overOpaque draws over pixels without alpha channel.
func (c *compositor) overOpaque(row []byte, spans []Span) {
	n := c.bpp
	for _, s := range spans {
		a := mul8(s.Coverage, c.alpha)
		if a == 0 {
			continue
		}
		pix := row[s.X*n : (s.X+s.Len)*n]
		for i := 0; i < len(pix); i += n {
			for k := range n {
				pix[i+k] = lerp(pix[i+k], c.fg[k], a)
			}
		}
	}
}

// overAlpha draws over a pure alpha mask.
func (c *compositor) overAlpha(row []byte, spans []Span) {
	for _, s := range spans {
		a := mul8(s.Coverage, c.alpha)
		if a == 0 {
			continue
		}
		pix := row[s.X : s.X+s.Len]
		for i, d := range pix {
			pix[i] = a + mul8(d, 255-a)
		}
	}
}

// overColorAlpha draws over pixels where the last channel is alpha and
// the other channels are not premultiplied.
func (c *compositor) overColorAlpha(row []byte, spans []Span) {
	n := c.bpp
	nc := n - 1 // number of color channels
	for _, s := range spans {
		a := uint32(mul8(s.Coverage, c.alpha))
		if a == 0 {
			continue
		}
		pix := row[s.X*n : (s.X+s.Len)*n]
		for i := 0; i < len(pix); i += n {
			dA := uint32(pix[i+nc])
			// weight of the old pixel, scaled by 255
			w := dA * (255 - a) / 255
			outA := a + w
			for k := range nc {
				v := (uint32(c.fg[k])*a + uint32(pix[i+k])*w + outA/2) / outA
				pix[i+k] = uint8(v)
			}
			pix[i+nc] = uint8(outA)
		}
	}
}

// lerp interpolates between a (t = 0) and b (t = 255).
func lerp(a, b, t uint8) uint8 {
	v := uint32(a)*(255-uint32(t)) + uint32(b)*uint32(t)
	return uint8((v + 127) / 255)
}

// mul8 returns a*b/255, rounded.
func mul8(a, b uint8) uint8 {
	v := uint32(a)*uint32(b) + 128
	return uint8((v + v>>8) >> 8)
}
