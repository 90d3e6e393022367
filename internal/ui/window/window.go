// Package window wraps the panel and drawer layer surfaces together with the
// GPU context that renders into them.
package window

import (
	"context"
	"fmt"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/logging"
)

// Window is one logical overlay window. Its render target exists exactly
// while the window is mapped.
type Window struct {
	kind       entity.WindowKind
	spec       port.SurfaceSpec
	compositor port.Compositor
	gpu        *SurfaceContext

	surface    port.Surface
	size       entity.Size
	scale      int
	mapped     bool
	configured bool
	dirty      bool
}

func New(kind entity.WindowKind, spec port.SurfaceSpec, compositor port.Compositor, platform port.RenderPlatform) *Window {
	return &Window{
		kind:       kind,
		spec:       spec,
		compositor: compositor,
		gpu:        NewSurfaceContext(platform),
		size:       spec.Size,
		scale:      1,
	}
}

func (w *Window) Kind() entity.WindowKind { return w.kind }
func (w *Window) Mapped() bool            { return w.mapped }
func (w *Window) Configured() bool        { return w.configured }
func (w *Window) Dirty() bool             { return w.dirty }
func (w *Window) Scale() int              { return w.scale }

// Size returns the logical size.
func (w *Window) Size() entity.Size { return w.size }

// PixelSize returns the logical size multiplied by the scale factor.
func (w *Window) PixelSize() entity.Size { return w.size.Scale(w.scale) }

// Attached reports whether the GPU context exists.
func (w *Window) Attached() bool { return w.gpu.Attached() }

// Show creates the layer surface and attaches the GPU context.
func (w *Window) Show(ctx context.Context) error {
	if w.mapped {
		return nil
	}

	surface, err := w.compositor.CreateSurface(w.spec)
	if err != nil {
		return fmt.Errorf("%w: create %s surface: %w", port.ErrProtocol, w.kind, err)
	}
	surface.SetBufferScale(w.scale)

	if err := w.gpu.Attach(surface, w.PixelSize()); err != nil {
		surface.Destroy()
		return err
	}

	w.surface = surface
	w.mapped = true
	w.configured = false
	w.dirty = true

	logging.FromContext(ctx).Debug().
		Str("window", w.kind.String()).
		Uint32("surface", uint32(surface.ID())).
		Msg("window shown")
	return nil
}

// Hide detaches the GPU context and destroys the surface.
func (w *Window) Hide(ctx context.Context) {
	if !w.mapped {
		return
	}

	w.gpu.Detach()
	w.surface.Destroy()
	w.surface = nil
	w.mapped = false
	w.configured = false

	logging.FromContext(ctx).Debug().
		Str("window", w.kind.String()).
		Msg("window hidden")
}

// Owns reports whether id is this window's surface.
func (w *Window) Owns(id port.SurfaceID) bool {
	return w.surface != nil && w.surface.ID() == id
}

// SurfaceID returns the current surface id, zero while unmapped.
func (w *Window) SurfaceID() port.SurfaceID {
	if w.surface == nil {
		return 0
	}
	return w.surface.ID()
}

// SetScale changes the scale factor. A mapped window gets a new GPU context
// at the new pixel size.
func (w *Window) SetScale(factor int) error {
	if factor < 1 {
		factor = 1
	}
	if factor == w.scale {
		return nil
	}

	w.scale = factor
	w.dirty = true

	if !w.mapped {
		return nil
	}

	w.surface.SetBufferScale(factor)
	w.gpu.Detach()
	return w.gpu.Attach(w.surface, w.PixelSize())
}

// Reconfigure applies a compositor configure event. Zero dimensions keep the
// requested size.
func (w *Window) Reconfigure(size entity.Size, serial uint32) {
	if !w.mapped {
		return
	}

	w.size = size.Merge(w.spec.Size)
	w.surface.AckConfigure(serial)
	w.gpu.Resize(w.PixelSize())
	w.configured = true
	w.dirty = true
}

// RequestFrame asks the compositor for a frame callback. It returns false
// while the window cannot present.
func (w *Window) RequestFrame() bool {
	if !w.mapped || !w.configured {
		return false
	}
	w.surface.RequestFrame()
	return true
}

// Render draws one frame. Failures are logged and the frame is dropped.
func (w *Window) Render(ctx context.Context, draw func(port.Canvas)) bool {
	if !w.mapped || !w.configured {
		return false
	}

	if err := w.gpu.Render(draw); err != nil {
		logging.FromContext(ctx).Error().
			Err(err).
			Str("window", w.kind.String()).
			Msg("rendering failed, frame dropped")
		return false
	}

	w.dirty = false
	return true
}
