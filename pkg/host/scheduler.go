// Package host adapts the control toolkit to a native windowing system:
// it owns the redraw scheduler that coalesces invalidation requests within
// one event-loop turn, and the registry wiring controls to it.
package host

import "github.com/go-drift/easel/pkg/control"

// RepaintFunc is the single outbound signal to the native host: "this
// control has this much pending damage, please schedule a paint for it."
type RepaintFunc func(c control.Control, d control.Damage)

// RedrawScheduler coalesces invalidation notifications arriving within one
// host processing turn into exactly one forwarded repaint request per dirty
// control. Damage coalesces too: the forwarded request carries the union of
// every notified region (or the whole-surface flag), never just the first
// or last request.
type RedrawScheduler struct {
	repaint RepaintFunc
	pending map[control.Control]control.Damage // coalesced damage per control
	order   []control.Control                  // notification order for deterministic flushes
}

// NewRedrawScheduler creates a scheduler forwarding to the given host
// callback.
func NewRedrawScheduler(repaint RepaintFunc) *RedrawScheduler {
	return &RedrawScheduler{repaint: repaint}
}

// Notify records pending damage for a control. Safe to call any number of
// times per turn; repeated calls merge.
func (s *RedrawScheduler) Notify(c control.Control, d control.Damage) {
	if c == nil || d.IsZero() {
		return
	}
	if existing, ok := s.pending[c]; ok {
		s.pending[c] = existing.Merge(d)
		return
	}
	if s.pending == nil {
		s.pending = make(map[control.Control]control.Damage)
	}
	s.pending[c] = d
	s.order = append(s.order, c)
}

// HasPending reports whether any control awaits a repaint request.
func (s *RedrawScheduler) HasPending() bool {
	return len(s.order) > 0
}

// FlushTurn forwards one repaint request per distinct dirty control, in
// first-notification order, then resets. A no-op when nothing is pending.
//
// State is cleared before forwarding so that notifications raised from
// inside a repaint callback land in the next turn instead of being lost.
func (s *RedrawScheduler) FlushTurn() {
	if len(s.order) == 0 {
		return
	}
	order := s.order
	pending := s.pending
	s.order = nil
	s.pending = nil

	for _, c := range order {
		if s.repaint != nil {
			s.repaint(c, pending[c])
		}
	}
}
