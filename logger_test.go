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
	"bytes"
	"context"
	"image"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefault(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	cfg := DefaultConfig()
	cfg.Cells = 70
	cfg.BandRows = 64
	r, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	collectCoverage(t, r, circlePath(32, 32, 20), image.Rect(0, 0, 64, 64))

	p, err := NewPool(DefaultConfig(), 1)
	if err != nil {
		t.Fatal(err)
	}
	s := p.Acquire().BeginRasterizing()
	_ = s.Rasterize(&Outline{Tags: []Tag{TagOn}}, NewBitmap(1, 1, FormatLuma), nil)
	s.End()
	if err := p.Release(s.r); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, msg := range []string{"band split", "rasterizer created", "outline rejected", "rasterizer released"} {
		if !strings.Contains(out, msg) {
			t.Errorf("missing log message %q", msg)
		}
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}
