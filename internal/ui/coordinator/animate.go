package coordinator

import (
	"time"

	"github.com/bnema/shade/internal/logging"
	"github.com/bnema/shade/internal/ui/animation"
	"github.com/bnema/shade/internal/ui/mainloop"
)

// startAnimation hands a released drag to the animation driver. The first
// tick runs one interval after the release.
func (c *Coordinator) startAnimation(opening bool) {
	c.cancelAnimation()

	if !c.drawer.Mapped() {
		c.offset = 0
		return
	}

	c.animation.Start(animation.DirectionFor(opening))
	c.animationTimer = c.timers.Insert(c.now().Add(c.animation.Interval()), c.animateDrawer)
}

func (c *Coordinator) cancelAnimation() {
	if c.animationTimer != 0 {
		c.timers.Cancel(c.animationTimer)
		c.animationTimer = 0
	}
	c.animation.Stop()
}

func (c *Coordinator) animateDrawer(now time.Time) mainloop.Action {
	offset, outcome := c.animation.Tick(c.offset, c.maxOffset())
	c.offset = offset

	if outcome.Done() {
		logging.FromContext(c.ctx).Debug().
			Str("outcome", outcome.String()).
			Str("direction", c.animation.Direction().String()).
			Int("ticks", c.animation.Ticks()).
			Msg("drawer animation finished")
		c.animationTimer = 0
	}

	switch outcome {
	case animation.Closed:
		c.hideDrawer()
		return mainloop.Stop()
	case animation.Opened:
		c.frames.Request(c.drawer)
		return mainloop.Stop()
	default:
		c.frames.Request(c.drawer)
		return mainloop.ContinueAt(now.Add(c.animation.Interval()))
	}
}
