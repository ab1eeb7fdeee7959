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
	"runtime"
	"slices"
	"sync"
)

// Pool shares a limited number of rasterizers between goroutines.
//
// Rasterizers are reference counted.  While fewer than the maximal
// number of rasterizers are in use, [Pool.Acquire] creates a new one.
// Otherwise the rasterizer with the fewest references is shared, and
// sessions on it run one after another.  A rasterizer is freed when its
// last reference is released.
type Pool struct {
	cfg  Config
	size int

	mu   sync.Mutex
	live []*Rasterizer
}

// NewPool creates a pool of at most size rasterizers, each using the
// given configuration.  If size is zero or negative, the pool holds up to
// runtime.GOMAXPROCS(0) rasterizers.
func NewPool(cfg Config, size int) (*Pool, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	return &Pool{cfg: cfg, size: size}, nil
}

// Acquire returns a reference to a rasterizer from the pool.
// The reference must be returned using [Pool.Release].
func (p *Pool) Acquire() *Rasterizer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.live) < p.size {
		r := &Rasterizer{cfg: p.cfg, pool: p, refs: 1}
		r.alloc()
		p.live = append(p.live, r)
		Logger().Debug("rasterizer created", "live", len(p.live), "cells", p.cfg.Cells)
		return r
	}

	best := p.live[0]
	for _, r := range p.live[1:] {
		if r.refs < best.refs {
			best = r
		}
	}
	best.refs++
	return best
}

// Release returns a reference obtained from [Pool.Acquire].
// Once the last reference is gone, the rasterizer is freed.
// Release returns [ErrNotAcquired] if r holds no references from p.
func (p *Pool) Release(r *Rasterizer) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if r == nil || r.pool != p || r.refs <= 0 {
		return ErrNotAcquired
	}
	r.refs--
	if r.refs > 0 {
		return nil
	}

	if i := slices.Index(p.live, r); i >= 0 {
		p.live = slices.Delete(p.live, i, i+1)
	}
	r.mu.Lock()
	r.free()
	r.mu.Unlock()
	Logger().Debug("rasterizer released", "live", len(p.live))
	return nil
}

// Do acquires a rasterizer, runs fn inside a session, and releases the
// rasterizer again.
func (p *Pool) Do(fn func(s *Session) error) (err error) {
	r := p.Acquire()
	defer func() {
		if rErr := p.Release(r); err == nil {
			err = rErr
		}
	}()

	s := r.BeginRasterizing()
	defer s.End()
	return fn(s)
}
