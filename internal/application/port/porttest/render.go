package porttest

import (
	"errors"
	"image"
	"image/color"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
)

// ErrContextRejected is returned by CreateTarget when FailCreate is set.
var ErrContextRejected = errors.New("context creation rejected")

// Fill is one recorded canvas fill.
type Fill struct {
	Rect  image.Rectangle
	Color color.NRGBA
}

// Canvas records draw calls.
type Canvas struct {
	size   entity.Size
	Clears []color.NRGBA
	Fills  []Fill
}

func NewCanvas(size entity.Size) *Canvas {
	return &Canvas{size: size}
}

func (c *Canvas) Size() entity.Size { return c.size }

// Clear records the clear color and drops fills of the previous frame.
func (c *Canvas) Clear(col color.NRGBA) {
	c.Clears = append(c.Clears, col)
	c.Fills = nil
}

func (c *Canvas) FillRect(r image.Rectangle, col color.NRGBA) {
	r = r.Intersect(image.Rect(0, 0, c.size.Width, c.size.Height))
	if r.Empty() {
		return
	}
	c.Fills = append(c.Fills, Fill{Rect: r, Color: col})
}

// Target is a fake render target.
type Target struct {
	Surface   port.Surface
	Sizes     []entity.Size
	Presents  int
	Destroyed bool

	// PresentErr is returned by every Present call while set.
	PresentErr error

	canvas *Canvas
}

func (t *Target) MakeCurrent() error {
	if t.Destroyed {
		return errors.New("target destroyed")
	}
	return nil
}

func (t *Target) Resize(size entity.Size) {
	t.Sizes = append(t.Sizes, size)
	t.canvas.size = size
}

// Size returns the current pixel size.
func (t *Target) Size() entity.Size {
	return t.Sizes[len(t.Sizes)-1]
}

func (t *Target) Canvas() port.Canvas { return t.canvas }

// LastCanvas returns the canvas of the most recent frame.
func (t *Target) LastCanvas() *Canvas { return t.canvas }

func (t *Target) Present() error {
	if t.PresentErr != nil {
		return t.PresentErr
	}
	t.Presents++
	return nil
}

func (t *Target) Destroy() { t.Destroyed = true }

// Platform hands out fake targets and keeps all of them for inspection.
type Platform struct {
	Targets    []*Target
	FailCreate bool
}

func NewPlatform() *Platform {
	return &Platform{}
}

func (p *Platform) CreateTarget(surface port.Surface, size entity.Size) (port.RenderTarget, error) {
	if p.FailCreate {
		return nil, ErrContextRejected
	}

	t := &Target{
		Surface: surface,
		Sizes:   []entity.Size{size},
		canvas:  NewCanvas(size),
	}
	p.Targets = append(p.Targets, t)
	return t, nil
}

// For returns the targets created for surface, oldest first.
func (p *Platform) For(surface port.Surface) []*Target {
	var out []*Target
	for _, t := range p.Targets {
		if t.Surface == surface {
			out = append(out, t)
		}
	}
	return out
}

// Live returns the single undestroyed target of surface, or nil.
func (p *Platform) Live(surface port.Surface) *Target {
	var live *Target
	for _, t := range p.For(surface) {
		if !t.Destroyed {
			if live != nil {
				return nil
			}
			live = t
		}
	}
	return live
}

// LiveCount returns the number of undestroyed targets of surface.
func (p *Platform) LiveCount(surface port.Surface) int {
	n := 0
	for _, t := range p.For(surface) {
		if !t.Destroyed {
			n++
		}
	}
	return n
}
