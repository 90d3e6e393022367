package coordinator

import (
	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/logging"
	"github.com/bnema/shade/internal/ui/input"
)

// Configure applies a compositor configure and redraws immediately.
func (c *Coordinator) Configure(id port.SurfaceID, size entity.Size, serial uint32) {
	w := c.windowFor(id)
	if w == nil {
		return
	}

	w.Reconfigure(size, serial)
	if w.Kind() == entity.WindowDrawer {
		c.offset = entity.ClampOffset(c.offset, c.maxOffset())
	}

	logging.FromContext(c.ctx).Debug().
		Str("window", w.Kind().String()).
		Int("width", w.Size().Width).
		Int("height", w.Size().Height).
		Msg("surface configured")

	c.render(w)
}

// Closed handles the compositor closing a layer surface. Losing the panel
// ends the loop; losing the drawer only hides it.
func (c *Coordinator) Closed(id port.SurfaceID) {
	log := logging.FromContext(c.ctx)

	switch {
	case c.panel.Owns(id):
		log.Info().Msg("panel closed by compositor")
		c.terminated = true
	case c.drawer.Owns(id):
		log.Debug().Msg("drawer closed by compositor")
		c.hideDrawer()
	}
}

// ScaleChanged rebuilds the GPU context of the window at the new density.
func (c *Coordinator) ScaleChanged(id port.SurfaceID, factor int) {
	w := c.windowFor(id)
	if w == nil {
		return
	}

	if err := w.SetScale(factor); err != nil {
		c.fail(err)
		return
	}

	logging.FromContext(c.ctx).Debug().
		Str("window", w.Kind().String()).
		Int("scale", factor).
		Msg("scale changed")

	c.frames.Request(w)
}

// Frame renders the window whose frame callback fired.
func (c *Coordinator) Frame(id port.SurfaceID, _ uint32) {
	w := c.windowFor(id)
	if w == nil {
		return
	}

	c.frames.Delivered(w.Kind())
	c.render(w)
}

func (c *Coordinator) TouchDown(id port.SurfaceID, touchID int32, pos entity.Point) {
	w := c.windowFor(id)
	if w == nil {
		return
	}

	idle := c.gestures.State() == input.TouchIdle
	g := c.gestures.Down(touchID, w.Kind(), pos, input.DrawerGeometry{
		Mapped:    c.drawer.Mapped(),
		MaxOffset: c.maxOffset(),
	})

	switch g.Action {
	case input.GestureOpen:
		c.cancelAnimation()
		if err := c.drawer.Show(c.ctx); err != nil {
			if c.isFatal(err) {
				c.fail(err)
				return
			}
			logging.FromContext(c.ctx).Error().Err(err).Msg("couldn't open drawer")
			c.gestures.Reset()
			return
		}
		c.offset = entity.ClampOffset(g.Offset, c.maxOffset())
		c.frames.Request(c.drawer)

	case input.GestureClose:
		c.cancelAnimation()
		c.offset = entity.ClampOffset(g.Offset, c.maxOffset())
		c.frames.Request(c.drawer)

	case input.GestureNone:
		if idle && w.Kind() == entity.WindowDrawer && !c.animation.Active() {
			c.touchSlider(pos)
		}
	}
}

func (c *Coordinator) TouchMotion(touchID int32, pos entity.Point) {
	g := c.gestures.Motion(touchID, pos)
	if g.Action != input.GestureMove {
		return
	}

	c.offset = entity.ClampOffset(g.Offset, c.maxOffset())
	c.frames.Request(c.drawer)
}

func (c *Coordinator) TouchUp(touchID int32) {
	c.release(c.gestures.Up(touchID))
}

// TouchCancel ends the session like a touch-up.
func (c *Coordinator) TouchCancel() {
	c.release(c.gestures.Cancel())
}

// TouchLost ends the session like a touch-up when the seat loses touch input.
func (c *Coordinator) TouchLost() {
	logging.FromContext(c.ctx).Debug().Msg("touch capability removed")
	c.release(c.gestures.Cancel())
}

func (c *Coordinator) release(g input.Gesture) {
	if g.Action != input.GestureRelease {
		return
	}
	c.startAnimation(g.Opening)
}

func (c *Coordinator) touchSlider(pos entity.Point) {
	if !c.drawer.Mapped() {
		return
	}

	slider, value, ok := c.drawerView.SliderAt(pos, c.offset, c.drawer.Size())
	if !ok {
		return
	}

	if err := slider.SetValue(c.ctx, value); err != nil {
		logging.FromContext(c.ctx).Warn().
			Err(err).
			Str("icon", slider.Icon().String()).
			Float64("value", value).
			Msg("module value write failed")
	}
	c.requestFrames()
}
