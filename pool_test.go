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
	"errors"
	"image"
	"slices"
	"sync"
	"testing"

	"seehuhn.de/go/gray/testcases"
)

func TestPoolRefCount(t *testing.T) {
	p, err := NewPool(DefaultConfig(), 2)
	if err != nil {
		t.Fatal(err)
	}

	r1 := p.Acquire()
	r2 := p.Acquire()
	if r1 == r2 {
		t.Fatal("pool shares a rasterizer while below its size")
	}
	r3 := p.Acquire()
	if r3 != r1 && r3 != r2 {
		t.Fatal("pool created more rasterizers than its size")
	}
	r4 := p.Acquire()
	if r4 == r3 {
		t.Error("pool did not pick the rasterizer with fewest references")
	}

	if err := p.Release(r3); err != nil {
		t.Fatal(err)
	}
	if err := p.Release(r3); err != nil {
		t.Fatal(err)
	}
	if r3.cells != nil {
		t.Error("rasterizer still holds its memory after the last release")
	}
	if err := p.Release(r3); !errors.Is(err, ErrNotAcquired) {
		t.Errorf("expected ErrNotAcquired, got %v", err)
	}

	// a new rasterizer is created in place of the freed one
	r5 := p.Acquire()
	if r5 == r3 || r5.cells == nil {
		t.Error("freed rasterizer reused")
	}

	other, _ := NewPool(DefaultConfig(), 1)
	if err := other.Release(r4); !errors.Is(err, ErrNotAcquired) {
		t.Errorf("foreign pool: expected ErrNotAcquired, got %v", err)
	}
	standalone := newTestRasterizer(t)
	if err := p.Release(standalone); !errors.Is(err, ErrNotAcquired) {
		t.Errorf("standalone: expected ErrNotAcquired, got %v", err)
	}
	if err := p.Release(nil); !errors.Is(err, ErrNotAcquired) {
		t.Errorf("nil: expected ErrNotAcquired, got %v", err)
	}
}

func TestPoolDo(t *testing.T) {
	p, err := NewPool(DefaultConfig(), 1)
	if err != nil {
		t.Fatal(err)
	}

	dst := NewBitmap(8, 8, FormatLuma)
	err = p.Do(func(s *Session) error {
		return s.Rasterize(squareOutline(), dst, nil)
	})
	if err != nil {
		t.Fatal(err)
	}
	if dst.Pix[3*8+3] != 255 {
		t.Error("nothing rendered")
	}

	// errors from fn are passed through, and the rasterizer is released
	var saved *Session
	err = p.Do(func(s *Session) error {
		saved = s
		return s.Rasterize(&Outline{Tags: []Tag{3}}, dst, nil)
	})
	if !errors.Is(err, ErrInvalidOutline) {
		t.Errorf("expected ErrInvalidOutline, got %v", err)
	}
	if len(p.live) != 0 {
		t.Errorf("%d rasterizers live after Do", len(p.live))
	}
	if err := saved.End(); !errors.Is(err, ErrSessionEnded) {
		t.Errorf("expected ErrSessionEnded, got %v", err)
	}
}

func TestSessionMisuse(t *testing.T) {
	mustPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: no panic", name)
			}
		}()
		f()
	}

	r := newTestRasterizer(t)
	s := r.BeginRasterizing()
	if err := s.End(); err != nil {
		t.Fatal(err)
	}
	if err := s.End(); !errors.Is(err, ErrSessionEnded) {
		t.Errorf("expected ErrSessionEnded, got %v", err)
	}

	mustPanic("Rasterize after End", func() {
		_ = s.Rasterize(squareOutline(), NewBitmap(8, 8, FormatLuma), nil)
	})
	mustPanic("Spans after End", func() {
		_ = s.Spans(squareOutline(), nil, image.Rect(0, 0, 8, 8), func(int, []Span) {})
	})

	// a stale session must not end a newer one
	s2 := r.BeginRasterizing()
	if err := s.End(); !errors.Is(err, ErrSessionEnded) {
		t.Errorf("expected ErrSessionEnded, got %v", err)
	}
	if err := s2.Rasterize(squareOutline(), NewBitmap(8, 8, FormatLuma), nil); err != nil {
		t.Error(err)
	}
	if err := s2.End(); err != nil {
		t.Error(err)
	}

	p, _ := NewPool(DefaultConfig(), 1)
	released := p.Acquire()
	if err := p.Release(released); err != nil {
		t.Fatal(err)
	}
	mustPanic("BeginRasterizing after Release", func() {
		released.BeginRasterizing()
	})
}

// TestConcurrent renders the same outlines from several goroutines,
// sharing a single rasterizer.
func TestConcurrent(t *testing.T) {
	iterations := 10000
	if testing.Short() {
		iterations = 500
	}

	tc := testcases.All["glyph"][0]
	ref := newTestRasterizer(t)
	want, err := renderCase(ref, tc)
	if err != nil {
		t.Fatal(err)
	}
	o, err := OutlineFromPath(tc.Path)
	if err != nil {
		t.Fatal(err)
	}

	p, err := NewPool(DefaultConfig(), 1)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dst := NewBitmap(tc.Width, tc.Height, FormatLuma)
			for range iterations {
				clear(dst.Pix)
				err := p.Do(func(s *Session) error {
					return s.Rasterize(o, dst, nil)
				})
				if err != nil {
					errs <- err
					return
				}
				if !slices.Equal(dst.Pix, want) {
					errs <- errors.New("concurrent rendering differs")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

// TestConcurrentInstances runs two goroutines on separate rasterizers
// from the same pool, each with its own expected pattern.
func TestConcurrentInstances(t *testing.T) {
	iterations := 10000
	if testing.Short() {
		iterations = 500
	}

	p, err := NewPool(DefaultConfig(), 2)
	if err != nil {
		t.Fatal(err)
	}

	cases := []testcases.TestCase{testcases.All["fill"][0], testcases.All["curve"][0]}
	var wg sync.WaitGroup
	errs := make(chan error, len(cases))
	for _, tc := range cases {
		want, err := renderCase(newTestRasterizer(t), tc)
		if err != nil {
			t.Fatal(err)
		}
		o, err := OutlineFromPath(tc.Path)
		if err != nil {
			t.Fatal(err)
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			r := p.Acquire()
			defer p.Release(r)

			dst := NewBitmap(tc.Width, tc.Height, FormatLuma)
			for range iterations {
				clear(dst.Pix)
				s := r.BeginRasterizing()
				err := s.Rasterize(o, dst, nil)
				if endErr := s.End(); err == nil {
					err = endErr
				}
				if err != nil {
					errs <- err
					return
				}
				if !slices.Equal(dst.Pix, want) {
					errs <- errors.New(tc.Name + ": output differs")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
