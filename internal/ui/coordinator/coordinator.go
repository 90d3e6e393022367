// Package coordinator runs the shell's single-threaded dispatch loop. It owns
// the panel and drawer windows, the touch session, the drawer animation and
// the frame scheduler, and is the only code that mutates them.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/infrastructure/config"
	"github.com/bnema/shade/internal/logging"
	"github.com/bnema/shade/internal/ui/animation"
	"github.com/bnema/shade/internal/ui/component"
	"github.com/bnema/shade/internal/ui/input"
	"github.com/bnema/shade/internal/ui/mainloop"
	"github.com/bnema/shade/internal/ui/theme"
	"github.com/bnema/shade/internal/ui/window"
)

const (
	PanelNamespace  = "shade-panel"
	DrawerNamespace = "shade-drawer"
)

// Options holds the collaborators of a Coordinator.
type Options struct {
	Compositor port.Compositor
	Platform   port.RenderPlatform
	Modules    []port.Module
	Config     *config.Config

	// Now defaults to time.Now.
	Now func() time.Time

	// OnFirstFrame runs once after the panel presented its first frame.
	OnFirstFrame func()
}

// Coordinator merges compositor events, the forced redraw deadline and the
// animation timer into one event loop.
type Coordinator struct {
	ctx        context.Context
	compositor port.Compositor
	now        func() time.Time

	panel      *window.Window
	drawer     *window.Window
	panelView  *component.PanelView
	drawerView *component.DrawerView
	modules    []port.Module

	gestures       *input.GestureRecognizer
	animation      *animation.Driver
	animationTimer mainloop.TimerID
	frames         *mainloop.Coalescer
	timers         *mainloop.Timers

	offset     float64
	terminated bool
	fatal      error

	firstFrame func()

	postMu sync.Mutex
	posts  []func()
}

// New builds a coordinator. Nothing is shown until Start.
func New(ctx context.Context, opts Options) *Coordinator {
	ctx = logging.WithComponent(ctx, "coordinator")
	log := logging.FromContext(ctx)
	log.Debug().Int("modules", len(opts.Modules)).Msg("creating coordinator")

	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	palette, err := theme.FromConfig(cfg.Colors)
	if err != nil {
		log.Warn().Err(err).Msg("invalid colors, using defaults")
		palette = theme.Default()
	}

	c := &Coordinator{
		ctx:        ctx,
		compositor: opts.Compositor,
		now:        now,
		panel:      window.New(entity.WindowPanel, PanelSpec(cfg), opts.Compositor, opts.Platform),
		drawer:     window.New(entity.WindowDrawer, DrawerSpec(), opts.Compositor, opts.Platform),
		panelView:  component.NewPanelView(palette, opts.Modules),
		drawerView: component.NewDrawerView(palette, opts.Modules, cfg.Drawer.CloseHandleRatio),
		modules:    opts.Modules,
		gestures:   input.NewGestureRecognizer(ctx),
		animation:  animation.NewDriver(AnimationParams(cfg)),
		frames:     mainloop.NewCoalescer(FrameInterval(cfg), now()),
		timers:     mainloop.NewTimers(),
		firstFrame: opts.OnFirstFrame,
	}
	c.gestures.SetCloseHandleRatio(cfg.Drawer.CloseHandleRatio)
	return c
}

// PanelSpec is the layer surface of the panel: a strip along the top edge
// that reserves its height.
func PanelSpec(cfg *config.Config) port.SurfaceSpec {
	return port.SurfaceSpec{
		Namespace:     PanelNamespace,
		Layer:         port.LayerTop,
		Anchor:        port.AnchorTop | port.AnchorLeft | port.AnchorRight,
		Size:          entity.NewSize(0, cfg.Panel.Height),
		ExclusiveZone: cfg.Panel.Height,
	}
}

// DrawerSpec is the layer surface of the drawer: the whole output, drawn
// over the panel.
func DrawerSpec() port.SurfaceSpec {
	return port.SurfaceSpec{
		Namespace:     DrawerNamespace,
		Layer:         port.LayerOverlay,
		Anchor:        port.AnchorAll,
		ExclusiveZone: -1,
	}
}

// AnimationParams converts the animation config section.
func AnimationParams(cfg *config.Config) animation.Params {
	return animation.Params{
		Step:      cfg.Animation.Step,
		Threshold: cfg.Animation.Threshold,
		Interval:  animation.IntervalForRate(cfg.Animation.RateHz),
	}
}

// FrameInterval converts the forced redraw ceiling.
func FrameInterval(cfg *config.Config) time.Duration {
	if cfg.Frame.MaxIntervalMs <= 0 {
		return time.Minute
	}
	return time.Duration(cfg.Frame.MaxIntervalMs) * time.Millisecond
}

// Start installs the event handler and shows the panel.
func (c *Coordinator) Start() error {
	c.compositor.SetHandler(c)

	if err := c.panel.Show(c.ctx); err != nil {
		return fmt.Errorf("show panel: %w", err)
	}
	return nil
}

// Run steps the loop until the panel is closed or a fatal error occurs.
func (c *Coordinator) Run() error {
	for !c.terminated {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step runs posted functions, blocks until the next protocol event or
// deadline, then runs exactly one of: protocol dispatch, the forced frame
// refresh, or the earliest due timer.
func (c *Coordinator) Step() error {
	c.runPosts()
	if c.fatal != nil {
		return c.fatal
	}
	if c.terminated {
		return nil
	}

	now := c.now()
	deadline := c.frames.Deadline()
	if next, ok := c.timers.Next(); ok && next.Before(deadline) {
		deadline = next
	}

	n, err := c.compositor.Dispatch(max(deadline.Sub(now), 0))
	if err != nil {
		return fmt.Errorf("%w: dispatch: %w", port.ErrProtocol, err)
	}
	if c.fatal != nil {
		return c.fatal
	}
	if n > 0 || c.terminated {
		return nil
	}

	now = c.now()
	if c.frames.Due(now) {
		c.requestFrames()
		return nil
	}
	c.timers.RunDue(now)
	return c.fatal
}

// Terminated reports whether the panel was closed.
func (c *Coordinator) Terminated() bool {
	return c.terminated
}

// Stop asks the loop to return after the current step. Safe to call from
// any goroutine.
func (c *Coordinator) Stop() {
	c.Post(func() {
		logging.FromContext(c.ctx).Info().Msg("stop requested")
		c.terminated = true
	})
}

// Close hides both windows.
func (c *Coordinator) Close() {
	c.hideDrawer()
	c.panel.Hide(c.ctx)
}

// Post queues fn to run on the loop at the start of the next step. Safe to
// call from any goroutine.
func (c *Coordinator) Post(fn func()) {
	c.postMu.Lock()
	c.posts = append(c.posts, fn)
	c.postMu.Unlock()

	c.compositor.Wakeup()
}

// PostUpdate posts fn and redraws both windows after it ran. Module watchers
// use it to publish value changes.
func (c *Coordinator) PostUpdate(fn func()) {
	c.Post(func() {
		fn()
		c.requestFrames()
	})
}

func (c *Coordinator) runPosts() {
	c.postMu.Lock()
	posts := c.posts
	c.posts = nil
	c.postMu.Unlock()

	for _, fn := range posts {
		fn()
	}
}

// ApplyConfig applies the live-reloadable parts of cfg. Panel height changes
// need a restart.
func (c *Coordinator) ApplyConfig(cfg *config.Config) {
	log := logging.FromContext(c.ctx)

	c.gestures.SetCloseHandleRatio(cfg.Drawer.CloseHandleRatio)
	c.drawerView.SetHandleRatio(cfg.Drawer.CloseHandleRatio)
	c.animation.SetParams(AnimationParams(cfg))
	c.frames.SetInterval(FrameInterval(cfg), c.now())

	if palette, err := theme.FromConfig(cfg.Colors); err != nil {
		log.Warn().Err(err).Msg("invalid colors, keeping current palette")
	} else {
		c.panelView.SetPalette(palette)
		c.drawerView.SetPalette(palette)
	}

	log.Info().Msg("configuration applied")
	c.requestFrames()
}

// Offset returns the current drawer offset.
func (c *Coordinator) Offset() float64 { return c.offset }

// TouchState returns the gesture recognizer state.
func (c *Coordinator) TouchState() input.TouchState { return c.gestures.State() }

// Animating reports whether a drawer animation is pending.
func (c *Coordinator) Animating() bool { return c.animation.Active() }

func (c *Coordinator) Panel() *window.Window  { return c.panel }
func (c *Coordinator) Drawer() *window.Window { return c.drawer }

func (c *Coordinator) fail(err error) {
	if c.fatal == nil {
		logging.FromContext(c.ctx).Error().Err(err).Msg("fatal error")
		c.fatal = err
	}
}

func (c *Coordinator) windowFor(id port.SurfaceID) *window.Window {
	switch {
	case c.panel.Owns(id):
		return c.panel
	case c.drawer.Owns(id):
		return c.drawer
	default:
		return nil
	}
}

func (c *Coordinator) maxOffset() float64 {
	return float64(c.drawer.Size().Height)
}

func (c *Coordinator) requestFrames() {
	c.frames.Request(c.panel)
	c.frames.Request(c.drawer)
}

func (c *Coordinator) render(w *window.Window) {
	if w.Kind() == entity.WindowPanel {
		if w.Render(c.ctx, func(cv port.Canvas) { c.panelView.Draw(cv, w.Scale()) }) && c.firstFrame != nil {
			c.firstFrame()
			c.firstFrame = nil
		}
		return
	}

	offset := c.offset
	w.Render(c.ctx, func(cv port.Canvas) { c.drawerView.Draw(cv, offset, w.Scale()) })
}

func (c *Coordinator) hideDrawer() {
	c.cancelAnimation()
	c.frames.Forget(entity.WindowDrawer)
	c.drawer.Hide(c.ctx)
	c.offset = 0
}

func (c *Coordinator) isFatal(err error) bool {
	return errors.Is(err, port.ErrContext)
}
