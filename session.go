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

// Session gives exclusive access to a [Rasterizer].  It is obtained from
// [Rasterizer.BeginRasterizing] and is valid until [Session.End] is
// called.  Using a session after End panics.
type Session struct {
	r *Rasterizer
}

// BeginRasterizing waits until no other session is active on r and
// starts a new one.  Calling BeginRasterizing again before the session
// has ended deadlocks.
func (r *Rasterizer) BeginRasterizing() *Session {
	r.mu.Lock()
	if r.cells == nil {
		r.mu.Unlock()
		panic("gray: BeginRasterizing on a released rasterizer")
	}
	s := &Session{r: r}
	r.session.Store(s)
	return s
}

// End finishes the session and lets other goroutines use the rasterizer.
// Ending a session twice returns [ErrSessionEnded].
func (s *Session) End() error {
	if !s.r.session.CompareAndSwap(s, nil) {
		return ErrSessionEnded
	}
	s.r.mu.Unlock()
	return nil
}

// rasterizer returns the rasterizer of an active session.
func (s *Session) rasterizer() *Rasterizer {
	if s.r.session.Load() != s {
		panic("gray: session used after End")
	}
	return s.r
}
