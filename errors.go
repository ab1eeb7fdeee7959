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

import "errors"

var (
	// ErrInvalidOutline is returned for outlines with malformed contours,
	// malformed point tags, or non-finite coordinates.
	ErrInvalidOutline = errors.New("invalid outline")

	// ErrInvalidParams is returned for non-finite position, scale or
	// embolden values, and for unknown blend modes.
	ErrInvalidParams = errors.New("invalid rendering parameters")

	// ErrInvalidBitmap is returned if the destination bitmap is too small
	// for its declared size, or uses an unknown pixel format.
	ErrInvalidBitmap = errors.New("invalid bitmap")

	// ErrTooComplex is returned if a single row of the output cannot fit
	// into the cell pool of the rasterizer.
	ErrTooComplex = errors.New("outline too complex for cell pool")

	// ErrInvalidConfig is returned by [New] and [NewPool] for unusable
	// configurations.
	ErrInvalidConfig = errors.New("invalid rasterizer configuration")

	// ErrSessionEnded is returned when a session is ended twice.
	ErrSessionEnded = errors.New("rasterizing session already ended")

	// ErrNotAcquired is returned by [Pool.Release] for rasterizers which
	// are not currently held from the pool.
	ErrNotAcquired = errors.New("rasterizer not acquired from this pool")
)
