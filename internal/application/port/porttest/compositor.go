// Package porttest provides in-memory implementations of the compositor and
// render ports for tests.
package porttest

import (
	"errors"
	"sync"
	"time"

	"github.com/bnema/shade/internal/application/port"
)

// ErrRejected is returned by CreateSurface when Reject is set.
var ErrRejected = errors.New("surface rejected")

// Surface records the requests made on one fake layer surface.
type Surface struct {
	id            port.SurfaceID
	Spec          port.SurfaceSpec
	BufferScale   int
	Acked         []uint32
	FrameRequests int
	Commits       int
	Destroyed     bool
}

func (s *Surface) ID() port.SurfaceID { return s.id }

func (s *Surface) RequestFrame() {
	s.FrameRequests++
	s.Commits++
}

func (s *Surface) SetBufferScale(factor int)  { s.BufferScale = factor }
func (s *Surface) AckConfigure(serial uint32) { s.Acked = append(s.Acked, serial) }
func (s *Surface) Commit()                    { s.Commits++ }
func (s *Surface) Destroy()                   { s.Destroyed = true }

// Compositor is a scripted compositor. Events pushed with Push are delivered
// by the next Dispatch call, in order.
type Compositor struct {
	mu      sync.Mutex
	handler port.EventHandler
	queue   []func(port.EventHandler)
	wakeups int

	Surfaces []*Surface
	Timeouts []time.Duration
	Reject   bool
	Closed   bool

	// Idle runs when Dispatch finds no queued event, typically to advance
	// a manual clock by timeout.
	Idle func(timeout time.Duration)

	// DispatchErr is returned by the next Dispatch call.
	DispatchErr error

	nextID port.SurfaceID
}

func NewCompositor() *Compositor {
	return &Compositor{nextID: 1}
}

func (c *Compositor) SetHandler(handler port.EventHandler) {
	c.handler = handler
}

func (c *Compositor) CreateSurface(spec port.SurfaceSpec) (port.Surface, error) {
	if c.Reject {
		return nil, ErrRejected
	}

	s := &Surface{id: c.nextID, Spec: spec, BufferScale: 1}
	c.nextID++
	c.Surfaces = append(c.Surfaces, s)
	return s, nil
}

// Push queues an event for the next Dispatch.
func (c *Compositor) Push(event func(port.EventHandler)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queue = append(c.queue, event)
}

func (c *Compositor) Dispatch(timeout time.Duration) (int, error) {
	c.Timeouts = append(c.Timeouts, timeout)

	if err := c.DispatchErr; err != nil {
		c.DispatchErr = nil
		return 0, err
	}

	c.mu.Lock()
	queue := c.queue
	c.queue = nil
	c.mu.Unlock()

	if len(queue) == 0 {
		if c.Idle != nil {
			c.Idle(timeout)
		}
		return 0, nil
	}

	for _, event := range queue {
		event(c.handler)
	}
	return len(queue), nil
}

func (c *Compositor) Wakeup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.wakeups++
}

// Wakeups returns the number of Wakeup calls.
func (c *Compositor) Wakeups() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.wakeups
}

func (c *Compositor) Close() error {
	c.Closed = true
	return nil
}

// Live returns the surfaces that were created with namespace and not yet
// destroyed.
func (c *Compositor) Live(namespace string) []*Surface {
	var live []*Surface
	for _, s := range c.Surfaces {
		if s.Spec.Namespace == namespace && !s.Destroyed {
			live = append(live, s)
		}
	}
	return live
}

// Last returns the most recent surface created with namespace.
func (c *Compositor) Last(namespace string) *Surface {
	for i := len(c.Surfaces) - 1; i >= 0; i-- {
		if c.Surfaces[i].Spec.Namespace == namespace {
			return c.Surfaces[i]
		}
	}
	return nil
}
