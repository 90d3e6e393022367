package port

import (
	"image"
	"image/color"

	"github.com/bnema/shade/internal/domain/entity"
)

// RenderPlatform creates GPU render targets for compositor surfaces.
// It is the only place that touches native display handles.
type RenderPlatform interface {
	// CreateTarget creates a native render surface and GPU context bound to
	// surface, sized in pixels.
	CreateTarget(surface Surface, size entity.Size) (RenderTarget, error)
}

// RenderTarget is a GPU context plus the native surface it renders into.
type RenderTarget interface {
	MakeCurrent() error
	Resize(size entity.Size)
	Canvas() Canvas
	Present() error
	Destroy()
}

// Canvas is the minimal drawing surface handed to draw routines.
// Coordinates are pixels with the origin at the top-left corner.
type Canvas interface {
	Size() entity.Size
	Clear(c color.NRGBA)
	FillRect(r image.Rectangle, c color.NRGBA)
}
