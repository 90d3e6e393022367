// Package port defines application-layer interfaces for external capabilities.
// Ports abstract the compositor, the GPU and the shell modules so the state
// machine in the ui packages can run against fakes.
package port

import (
	"time"

	"github.com/bnema/shade/internal/domain/entity"
)

// SurfaceID identifies a compositor surface for event routing.
type SurfaceID uint32

// Layer is the stacking layer of a layer surface.
type Layer uint32

const (
	LayerBackground Layer = iota
	LayerBottom
	LayerTop
	LayerOverlay
)

// Anchor is a bit set of screen edges a layer surface is attached to.
type Anchor uint32

const (
	AnchorTop Anchor = 1 << iota
	AnchorBottom
	AnchorLeft
	AnchorRight
)

// AnchorAll anchors a surface to every edge.
const AnchorAll = AnchorTop | AnchorBottom | AnchorLeft | AnchorRight

// SurfaceSpec describes a layer surface to create.
type SurfaceSpec struct {
	Namespace     string
	Layer         Layer
	Anchor        Anchor
	Size          entity.Size // logical; zero dimensions are chosen by the compositor
	ExclusiveZone int
}

// Surface is a compositor-side layer surface.
type Surface interface {
	// ID returns the protocol identifier used to route callbacks.
	ID() SurfaceID

	// RequestFrame asks for a one-shot frame callback and commits.
	RequestFrame()

	// SetBufferScale sets the integer buffer scale of the surface.
	SetBufferScale(factor int)

	// AckConfigure acknowledges a configure event.
	AckConfigure(serial uint32)

	// Commit commits pending surface state.
	Commit()

	// Destroy releases the surface. Pending frame callbacks are discarded.
	Destroy()
}

// EventHandler receives protocol events during Compositor.Dispatch.
// All calls happen synchronously on the dispatching goroutine.
type EventHandler interface {
	Configure(surface SurfaceID, size entity.Size, serial uint32)
	Closed(surface SurfaceID)
	ScaleChanged(surface SurfaceID, factor int)
	Frame(surface SurfaceID, time uint32)

	TouchDown(surface SurfaceID, id int32, position entity.Point)
	TouchMotion(id int32, position entity.Point)
	TouchUp(id int32)
	TouchCancel()

	// TouchLost is called when the seat stops advertising touch input.
	TouchLost()
}

// Compositor is the connection to the display server.
type Compositor interface {
	// SetHandler installs the receiver of protocol events.
	SetHandler(handler EventHandler)

	// CreateSurface creates and commits a new layer surface.
	CreateSurface(spec SurfaceSpec) (Surface, error)

	// Dispatch blocks until protocol events arrive, Wakeup is called or the
	// timeout expires, then dispatches queued events. It returns the number
	// of events dispatched.
	Dispatch(timeout time.Duration) (int, error)

	// Wakeup interrupts a blocked Dispatch. Safe to call from any goroutine.
	Wakeup()

	// Close disconnects from the display server.
	Close() error
}
