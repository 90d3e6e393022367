package window

import (
	"errors"
	"fmt"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
)

var (
	ErrAlreadyAttached = errors.New("render target already attached")
	ErrNotAttached     = errors.New("render target not attached")
)

// SurfaceContext owns the GPU render target of one mapped window.
type SurfaceContext struct {
	platform port.RenderPlatform
	target   port.RenderTarget
	size     entity.Size
}

func NewSurfaceContext(platform port.RenderPlatform) *SurfaceContext {
	return &SurfaceContext{platform: platform}
}

// Attach creates a render target for surface at the given pixel size.
func (c *SurfaceContext) Attach(surface port.Surface, size entity.Size) error {
	if c.target != nil {
		return fmt.Errorf("%w: %w", port.ErrContext, ErrAlreadyAttached)
	}

	target, err := c.platform.CreateTarget(surface, size)
	if err != nil {
		return fmt.Errorf("%w: create render target %dx%d: %w", port.ErrContext, size.Width, size.Height, err)
	}

	c.target = target
	c.size = size
	return nil
}

// Resize changes the pixel size of the attached target.
func (c *SurfaceContext) Resize(size entity.Size) {
	if c.target == nil || c.size == size {
		return
	}
	c.target.Resize(size)
	c.size = size
}

// Render makes the context current, draws and presents.
func (c *SurfaceContext) Render(draw func(port.Canvas)) error {
	if c.target == nil {
		return ErrNotAttached
	}
	if err := c.target.MakeCurrent(); err != nil {
		return fmt.Errorf("make current: %w", err)
	}

	draw(c.target.Canvas())

	if err := c.target.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}

// Detach destroys the render target. Calling it again is a no-op.
func (c *SurfaceContext) Detach() {
	if c.target == nil {
		return
	}
	c.target.Destroy()
	c.target = nil
	c.size = entity.Size{}
}

func (c *SurfaceContext) Attached() bool {
	return c.target != nil
}

// PixelSize returns the size of the attached target.
func (c *SurfaceContext) PixelSize() entity.Size {
	return c.size
}
