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

import "fmt"

// Config holds the sizes of the scratch memory of a [Rasterizer].
// The zero value is not usable; start from [DefaultConfig].
type Config struct {
	// Cells is the number of accumulation cells available for one band.
	// A band which needs more cells is split in half and rendered again.
	// Must be at least two more than the width of the widest bitmap
	// rendered into.
	Cells int

	// BandRows is the maximal height of a band, in pixels.
	BandRows int

	// Spans is the number of spans buffered before they are handed to
	// the compositor.
	Spans int

	// Flatness is the curve flattening tolerance, in units of 1/256 pixel.
	// Outlines with [FlagHighPrecision] set use a quarter of this value.
	Flatness Fixed

	// MaxLevels limits the recursion depth of curve subdivision.
	MaxLevels int
}

// DefaultConfig returns the configuration used by [NewPool] if no
// other configuration is given.
func DefaultConfig() Config {
	return Config{
		Cells:     defaultCells,
		BandRows:  defaultBandRows,
		Spans:     defaultSpans,
		Flatness:  defaultFlatness,
		MaxLevels: defaultMaxLevels,
	}
}

func (c *Config) validate() error {
	switch {
	case c.Cells < minCells:
		return fmt.Errorf("%w: %d cells (need at least %d)", ErrInvalidConfig, c.Cells, minCells)
	case c.BandRows < 1:
		return fmt.Errorf("%w: %d band rows", ErrInvalidConfig, c.BandRows)
	case c.Spans < 1:
		return fmt.Errorf("%w: span buffer size %d", ErrInvalidConfig, c.Spans)
	case c.Flatness < 1:
		return fmt.Errorf("%w: flatness %d", ErrInvalidConfig, c.Flatness)
	case c.MaxLevels < 1 || c.MaxLevels > maxLevelsLimit:
		return fmt.Errorf("%w: %d subdivision levels (need 1 to %d)",
			ErrInvalidConfig, c.MaxLevels, maxLevelsLimit)
	}
	return nil
}

const (
	// defaultCells gives room for bitmaps up to 16382 pixels wide.
	defaultCells = 16384

	defaultBandRows = 256

	defaultSpans = 32

	// defaultFlatness is 1/64 pixel, the resolution of TrueType and
	// CFF outlines at the sizes of [golang.org/x/image/font/sfnt].
	defaultFlatness = 4

	defaultMaxLevels = 32

	minCells       = 4
	maxLevelsLimit = 64
)
