package mainloop

import (
	"time"

	"github.com/bnema/shade/internal/domain/entity"
)

// FrameRequester is a window that can ask the compositor for a frame callback.
type FrameRequester interface {
	Kind() entity.WindowKind

	// RequestFrame returns false when the window cannot receive frames yet
	// (unmapped or not configured).
	RequestFrame() bool
}

// Coalescer merges bursts of frame requests per window into a single
// compositor frame callback, and tracks the forced redraw deadline that bounds
// content staleness when the compositor stops sending callbacks.
type Coalescer struct {
	pending  map[entity.WindowKind]bool
	interval time.Duration
	next     time.Time
}

func NewCoalescer(interval time.Duration, now time.Time) *Coalescer {
	if interval <= 0 {
		panic("mainloop.NewCoalescer: interval must be positive")
	}

	return &Coalescer{
		pending:  make(map[entity.WindowKind]bool, 2),
		interval: interval,
		next:     now.Add(interval),
	}
}

// Request asks for a frame callback unless one is already outstanding.
func (c *Coalescer) Request(w FrameRequester) {
	kind := w.Kind()
	if c.pending[kind] {
		return
	}
	if w.RequestFrame() {
		c.pending[kind] = true
	}
}

// Delivered clears the outstanding request once the callback arrived.
func (c *Coalescer) Delivered(kind entity.WindowKind) {
	delete(c.pending, kind)
}

// Forget drops an outstanding request whose surface was destroyed.
func (c *Coalescer) Forget(kind entity.WindowKind) {
	delete(c.pending, kind)
}

// Pending reports whether a frame callback is outstanding for kind.
func (c *Coalescer) Pending(kind entity.WindowKind) bool {
	return c.pending[kind]
}

// Deadline returns the next forced redraw time.
func (c *Coalescer) Deadline() time.Time {
	return c.next
}

// Due reports whether the forced redraw deadline passed. When it did, the
// deadline moves to now + interval.
func (c *Coalescer) Due(now time.Time) bool {
	if now.Before(c.next) {
		return false
	}
	c.next = now.Add(c.interval)
	return true
}

// SetInterval changes the forced redraw interval, restarting the deadline.
func (c *Coalescer) SetInterval(interval time.Duration, now time.Time) {
	if interval <= 0 {
		return
	}
	c.interval = interval
	c.next = now.Add(interval)
}
