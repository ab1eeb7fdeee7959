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
	"image"
	"image/color"
)

// Bitmap is a rectangular pixel buffer.  Row y starts at Pix[y*Stride],
// the top row is y = 0.
type Bitmap struct {
	Pix    []byte
	Stride int
	Width  int
	Height int
	Format PixelFormat
}

// NewBitmap allocates a bitmap with all pixels set to zero.
func NewBitmap(width, height int, format PixelFormat) *Bitmap {
	stride := width * format.BytesPerPixel()
	return &Bitmap{
		Pix:    make([]byte, stride*height),
		Stride: stride,
		Width:  width,
		Height: height,
		Format: format,
	}
}

// BitmapFromImage returns a bitmap which shares its pixels with img.
// Supported image types are [*image.Gray], [*image.Alpha] and
// [*image.NRGBA].
func BitmapFromImage(img image.Image) (*Bitmap, error) {
	var pix []byte
	var stride int
	var format PixelFormat
	r := img.Bounds()
	switch img := img.(type) {
	case *image.Gray:
		pix, stride, format = img.Pix, img.Stride, FormatLuma
		if !r.Empty() {
			pix = pix[img.PixOffset(r.Min.X, r.Min.Y):]
		}
	case *image.Alpha:
		pix, stride, format = img.Pix, img.Stride, FormatAlpha
		if !r.Empty() {
			pix = pix[img.PixOffset(r.Min.X, r.Min.Y):]
		}
	case *image.NRGBA:
		pix, stride, format = img.Pix, img.Stride, FormatRGBA
		if !r.Empty() {
			pix = pix[img.PixOffset(r.Min.X, r.Min.Y):]
		}
	default:
		return nil, fmt.Errorf("%w: unsupported image type %T", ErrInvalidBitmap, img)
	}

	return &Bitmap{
		Pix:    pix,
		Stride: stride,
		Width:  r.Dx(),
		Height: r.Dy(),
		Format: format,
	}, nil
}

// Image returns the contents of the bitmap as an image.  Luma, alpha and
// RGBA bitmaps share their pixels with the returned image, the other
// formats are copied into a new [*image.NRGBA].
func (b *Bitmap) Image() image.Image {
	rect := image.Rect(0, 0, b.Width, b.Height)
	switch b.Format {
	case FormatLuma:
		return &image.Gray{Pix: b.Pix, Stride: b.Stride, Rect: rect}
	case FormatAlpha:
		return &image.Alpha{Pix: b.Pix, Stride: b.Stride, Rect: rect}
	case FormatRGBA:
		return &image.NRGBA{Pix: b.Pix, Stride: b.Stride, Rect: rect}
	}

	img := image.NewNRGBA(rect)
	for y := range b.Height {
		row := b.Pix[y*b.Stride:]
		for x := range b.Width {
			img.SetNRGBA(x, y, b.at(row, x))
		}
	}
	return img
}

func (b *Bitmap) at(row []byte, x int) color.NRGBA {
	switch b.Format {
	case FormatLumaAlpha:
		p := row[2*x:]
		return color.NRGBA{R: p[0], G: p[0], B: p[0], A: p[1]}
	case FormatRGB:
		p := row[3*x:]
		return color.NRGBA{R: p[0], G: p[1], B: p[2], A: 255}
	case FormatBGRA:
		p := row[4*x:]
		return color.NRGBA{R: p[2], G: p[1], B: p[0], A: p[3]}
	}
	return color.NRGBA{}
}

func (b *Bitmap) check() error {
	bpp := b.Format.BytesPerPixel()
	switch {
	case bpp == 0:
		return fmt.Errorf("%w: unknown pixel format %d", ErrInvalidBitmap, int(b.Format))
	case b.Width < 0 || b.Height < 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidBitmap, b.Width, b.Height)
	case b.Width == 0 || b.Height == 0:
		return nil
	case b.Stride < b.Width*bpp:
		return fmt.Errorf("%w: stride %d for %d pixels of %s",
			ErrInvalidBitmap, b.Stride, b.Width, b.Format)
	case len(b.Pix) < (b.Height-1)*b.Stride+b.Width*bpp:
		return fmt.Errorf("%w: %d bytes for %dx%d pixels",
			ErrInvalidBitmap, len(b.Pix), b.Width, b.Height)
	}
	return nil
}
