package coordinator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/application/port/porttest"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/infrastructure/config"
	"github.com/bnema/shade/internal/ui/animation"
	"github.com/bnema/shade/internal/ui/input"
)

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time          { return c.now }
func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeSlider struct {
	value  float64
	writes []float64
	err    error
}

func (s *fakeSlider) Value() float64  { return s.value }
func (s *fakeSlider) Icon() port.Icon { return port.IconBrightness }

func (s *fakeSlider) SetValue(_ context.Context, v float64) error {
	s.value = v
	s.writes = append(s.writes, v)
	return s.err
}

type fakeModule struct {
	slider *fakeSlider
}

func (m *fakeModule) Name() string                { return "brightness" }
func (m *fakeModule) Slider() (port.Slider, bool) { return m.slider, true }

type harness struct {
	t          *testing.T
	clock      *manualClock
	compositor *porttest.Compositor
	platform   *porttest.Platform
	slider     *fakeSlider
	firstFrame int
	c          *Coordinator
}

const (
	outputWidth  = 1080
	drawerHeight = 800
)

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		t:          t,
		clock:      &manualClock{now: time.Unix(1_700_000_000, 0)},
		compositor: porttest.NewCompositor(),
		platform:   porttest.NewPlatform(),
		slider:     &fakeSlider{value: 0.2},
	}
	h.compositor.Idle = h.clock.Advance

	h.c = New(context.Background(), Options{
		Compositor:   h.compositor,
		Platform:     h.platform,
		Modules:      []port.Module{&fakeModule{slider: h.slider}},
		Config:       config.DefaultConfig(),
		Now:          h.clock.Now,
		OnFirstFrame: func() { h.firstFrame++ },
	})
	require.NoError(t, h.c.Start())

	h.event(func(eh port.EventHandler) {
		eh.Configure(h.panelID(), entity.NewSize(outputWidth, 0), 1)
	})
	return h
}

func (h *harness) panelID() port.SurfaceID {
	return h.compositor.Last(PanelNamespace).ID()
}

func (h *harness) drawerSurface() *porttest.Surface {
	return h.compositor.Last(DrawerNamespace)
}

// event pushes one protocol event and runs the step that dispatches it.
func (h *harness) event(fn func(port.EventHandler)) {
	h.t.Helper()
	h.compositor.Push(fn)
	require.NoError(h.t, h.c.Step())
}

func (h *harness) touchPanel(id int32, y float64) {
	h.event(func(eh port.EventHandler) {
		eh.TouchDown(h.panelID(), id, entity.Point{X: 100, Y: y})
	})
}

func (h *harness) touchDrawer(id int32, pos entity.Point) {
	h.event(func(eh port.EventHandler) {
		eh.TouchDown(h.drawerSurface().ID(), id, pos)
	})
}

func (h *harness) motion(id int32, y float64) {
	h.event(func(eh port.EventHandler) { eh.TouchMotion(id, entity.Point{X: 100, Y: y}) })
}

func (h *harness) up(id int32) {
	h.event(func(eh port.EventHandler) { eh.TouchUp(id) })
}

func (h *harness) configureDrawer() {
	h.event(func(eh port.EventHandler) {
		eh.Configure(h.drawerSurface().ID(), entity.NewSize(outputWidth, drawerHeight), 7)
	})
}

// settle steps until the animation finished and returns the number of steps.
func (h *harness) settle() int {
	h.t.Helper()
	steps := 0
	for h.c.Animating() {
		require.NoError(h.t, h.c.Step())
		steps++
		require.Less(h.t, steps, 1000, "animation never settled")
	}
	return steps
}

func (h *harness) openDrawer() {
	h.t.Helper()
	h.touchPanel(1, 0)
	h.configureDrawer()
	h.motion(1, 400)
	h.up(1)
	h.settle()
	require.Equal(h.t, float64(drawerHeight), h.c.Offset())
}

func TestStartShowsPanel(t *testing.T) {
	h := newHarness(t)

	panel := h.compositor.Last(PanelNamespace)
	require.NotNil(t, panel)
	assert.Equal(t, port.LayerTop, panel.Spec.Layer)
	assert.Equal(t, 32, panel.Spec.ExclusiveZone)
	assert.Equal(t, []uint32{1}, panel.Acked)
	assert.Equal(t, entity.NewSize(outputWidth, 32), h.c.Panel().Size())

	target := h.platform.Live(panel)
	require.NotNil(t, target)
	assert.Equal(t, 1, target.Presents, "configure forces a redraw")
	assert.Equal(t, 1, h.firstFrame)
	assert.Nil(t, h.drawerSurface(), "drawer starts hidden")
}

func TestPanelTouchShowsDrawer(t *testing.T) {
	h := newHarness(t)

	h.touchPanel(1, 0)

	assert.Equal(t, input.TouchTrackingOpen, h.c.TouchState())
	assert.True(t, h.c.Drawer().Mapped())
	assert.Zero(t, h.c.Offset())

	drawer := h.drawerSurface()
	require.NotNil(t, drawer)
	assert.Equal(t, port.LayerOverlay, drawer.Spec.Layer)
	assert.Equal(t, 1, h.platform.LiveCount(drawer))
}

func TestDragAndReleaseOpensDrawer(t *testing.T) {
	h := newHarness(t)
	h.touchPanel(1, 0)
	h.configureDrawer()

	h.motion(1, 400)
	assert.Equal(t, 400.0, h.c.Offset())
	assert.Positive(t, h.drawerSurface().FrameRequests)

	h.up(1)
	assert.Equal(t, input.TouchIdle, h.c.TouchState())
	assert.True(t, h.c.Animating())
	assert.Equal(t, 400.0, h.c.Offset(), "first tick waits one interval")

	h.settle()
	assert.Equal(t, float64(drawerHeight), h.c.Offset())
	assert.True(t, h.c.Drawer().Mapped())
	assert.Equal(t, (drawerHeight-400)/20, h.c.animation.Ticks())
}

func TestAnimationTicksAreBounded(t *testing.T) {
	for _, y := range []float64{1, 150, 199, 200, 201, 640, 799} {
		h := newHarness(t)
		h.touchPanel(1, 0)
		h.configureDrawer()
		h.motion(1, y)
		h.up(1)
		h.settle()

		assert.LessOrEqual(t, h.c.animation.Ticks(), animation.MaxTicks(drawerHeight, animation.DefaultParams()), "y=%v", y)
		if y >= 200 {
			assert.Equal(t, float64(drawerHeight), h.c.Offset(), "y=%v", y)
			assert.True(t, h.c.Drawer().Mapped(), "y=%v", y)
		} else {
			assert.Zero(t, h.c.Offset(), "y=%v", y)
			assert.False(t, h.c.Drawer().Mapped(), "y=%v", y)
		}
	}
}

func TestHandleDragClosesDrawer(t *testing.T) {
	h := newHarness(t)
	h.openDrawer()
	drawer := h.drawerSurface()
	target := h.platform.Live(drawer)
	require.NotNil(t, target)

	h.touchDrawer(2, entity.Point{X: 540, Y: 780})
	assert.Equal(t, input.TouchTrackingClose, h.c.TouchState())

	h.motion(2, 80)
	h.up(2)
	h.settle()

	assert.Zero(t, h.c.Offset())
	assert.False(t, h.c.Drawer().Mapped())
	assert.True(t, drawer.Destroyed)
	assert.True(t, target.Destroyed)
	assert.Empty(t, h.compositor.Live(DrawerNamespace))
}

func TestDrawerTouchAboveHandleMovesSlider(t *testing.T) {
	h := newHarness(t)
	h.openDrawer()

	// First row track spans x 96..1056 at the top of the open drawer.
	h.touchDrawer(2, entity.Point{X: 576, Y: 52})

	assert.Equal(t, input.TouchIdle, h.c.TouchState())
	require.Len(t, h.slider.writes, 1)
	assert.InDelta(t, 0.5, h.slider.writes[0], 1e-9)
	assert.Equal(t, float64(drawerHeight), h.c.Offset())
}

func TestSecondTouchOnSliderDuringDragIsIgnored(t *testing.T) {
	h := newHarness(t)
	h.openDrawer()

	h.touchDrawer(1, entity.Point{X: 540, Y: 790})
	require.Equal(t, input.TouchTrackingClose, h.c.TouchState())

	h.touchDrawer(2, entity.Point{X: 576, Y: 52})

	assert.Empty(t, h.slider.writes)
	assert.InDelta(t, 0.2, h.slider.value, 1e-9)
	assert.Equal(t, input.TouchTrackingClose, h.c.TouchState())
}

func TestSliderWriteFailureIsNotFatal(t *testing.T) {
	h := newHarness(t)
	h.openDrawer()
	h.slider.err = errors.New("permission denied")

	h.touchDrawer(2, entity.Point{X: 576, Y: 52})

	assert.InDelta(t, 0.5, h.slider.value, 1e-9)
	require.NoError(t, h.c.Step())
}

func TestScaleChangeRecreatesContext(t *testing.T) {
	h := newHarness(t)
	h.openDrawer()
	drawer := h.drawerSurface()
	old := h.platform.Live(drawer)
	require.NotNil(t, old)

	h.event(func(eh port.EventHandler) { eh.ScaleChanged(drawer.ID(), 2) })

	assert.True(t, old.Destroyed)
	assert.Equal(t, 1, h.platform.LiveCount(drawer))
	current := h.platform.Live(drawer)
	require.NotNil(t, current)
	assert.Equal(t, entity.NewSize(2*outputWidth, 2*drawerHeight), current.Size())
	assert.Equal(t, 2, drawer.BufferScale)
	assert.Equal(t, float64(drawerHeight), h.c.Offset())
}

func TestSecondTouchIsIgnored(t *testing.T) {
	h := newHarness(t)
	h.touchPanel(1, 0)
	h.configureDrawer()
	h.motion(1, 300)

	h.touchPanel(2, 10)
	h.motion(2, 700)
	h.up(2)

	assert.Equal(t, input.TouchTrackingOpen, h.c.TouchState())
	assert.Equal(t, 300.0, h.c.Offset())
	assert.False(t, h.c.Animating())
	assert.Len(t, h.compositor.Surfaces, 2, "no second drawer surface")
}

func TestCancelReleasesSession(t *testing.T) {
	h := newHarness(t)
	h.touchPanel(1, 0)
	h.configureDrawer()
	h.motion(1, 600)

	h.event(func(eh port.EventHandler) { eh.TouchCancel() })
	assert.Equal(t, input.TouchIdle, h.c.TouchState())
	assert.True(t, h.c.Animating())

	h.settle()
	assert.Equal(t, float64(drawerHeight), h.c.Offset())
}

func TestTouchLostReleasesSession(t *testing.T) {
	h := newHarness(t)
	h.touchPanel(1, 0)
	h.configureDrawer()
	h.motion(1, 50)

	h.event(func(eh port.EventHandler) { eh.TouchLost() })
	h.settle()

	assert.Equal(t, input.TouchIdle, h.c.TouchState())
	assert.False(t, h.c.Drawer().Mapped())
}

func TestReleaseBeforeDrawerConfigureSettles(t *testing.T) {
	h := newHarness(t)
	h.touchPanel(1, 0)
	h.up(1)
	require.True(t, h.c.Animating())

	assert.Equal(t, 1, h.settle())
	assert.Zero(t, h.c.timers.Len())
	assert.Zero(t, h.c.Offset())
	assert.True(t, h.c.Drawer().Mapped())
}

func TestNewTouchCancelsPendingAnimation(t *testing.T) {
	h := newHarness(t)
	h.touchPanel(1, 0)
	h.configureDrawer()
	h.motion(1, 400)
	h.up(1)
	require.True(t, h.c.Animating())

	h.touchPanel(2, 0)

	assert.False(t, h.c.Animating())
	assert.Zero(t, h.c.timers.Len())
	assert.Equal(t, input.TouchTrackingOpen, h.c.TouchState())
	assert.Zero(t, h.c.Offset())
}

func TestDrawerClosedByCompositor(t *testing.T) {
	h := newHarness(t)
	h.touchPanel(1, 0)
	h.configureDrawer()
	h.motion(1, 400)
	h.up(1)
	drawer := h.drawerSurface()

	h.event(func(eh port.EventHandler) { eh.Closed(drawer.ID()) })

	assert.False(t, h.c.Drawer().Mapped())
	assert.False(t, h.c.Animating())
	assert.Zero(t, h.c.Offset())
	assert.True(t, drawer.Destroyed)
	assert.False(t, h.c.Terminated())
}

func TestPanelClosedTerminates(t *testing.T) {
	h := newHarness(t)

	h.compositor.Push(func(eh port.EventHandler) { eh.Closed(h.panelID()) })
	require.NoError(t, h.c.Run())

	assert.True(t, h.c.Terminated())
}

func TestStopEndsRun(t *testing.T) {
	h := newHarness(t)

	h.c.Stop()
	require.NoError(t, h.c.Run())

	assert.True(t, h.c.Terminated())
}

func TestForcedRefreshAfterInterval(t *testing.T) {
	h := newHarness(t)
	panel := h.compositor.Last(PanelNamespace)
	before := panel.FrameRequests

	require.NoError(t, h.c.Step())

	assert.Equal(t, time.Minute, h.compositor.Timeouts[len(h.compositor.Timeouts)-1])
	assert.Equal(t, before+1, panel.FrameRequests)

	// A pending callback suppresses further requests until delivered.
	require.NoError(t, h.c.Step())
	assert.Equal(t, before+1, panel.FrameRequests)

	h.event(func(eh port.EventHandler) { eh.Frame(panel.ID(), 0) })
	assert.Equal(t, 2, h.platform.Live(panel).Presents)
}

func TestDispatchErrorIsReturned(t *testing.T) {
	h := newHarness(t)
	h.compositor.DispatchErr = errors.New("broken pipe")

	err := h.c.Run()

	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrProtocol)
}

func TestContextFailureOnShowIsFatal(t *testing.T) {
	h := newHarness(t)
	h.platform.FailCreate = true

	h.compositor.Push(func(eh port.EventHandler) {
		eh.TouchDown(h.panelID(), 1, entity.Point{X: 10, Y: 0})
	})
	err := h.c.Step()

	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrContext)
	assert.Empty(t, h.compositor.Live(DrawerNamespace))
}

func TestRejectedDrawerIsNotFatal(t *testing.T) {
	h := newHarness(t)
	h.compositor.Reject = true

	h.touchPanel(1, 0)

	assert.False(t, h.c.Drawer().Mapped())
	assert.Equal(t, input.TouchIdle, h.c.TouchState())
	require.NoError(t, h.c.Step())
}

func TestRenderFailureDropsFrame(t *testing.T) {
	h := newHarness(t)
	panel := h.compositor.Last(PanelNamespace)
	h.platform.Live(panel).PresentErr = errors.New("lost surface")

	h.event(func(eh port.EventHandler) { eh.Frame(panel.ID(), 0) })

	assert.False(t, h.c.Terminated())
	assert.Equal(t, 1, h.platform.Live(panel).Presents)
}

func TestPostRunsOnNextStep(t *testing.T) {
	h := newHarness(t)
	ran := make(chan struct{})

	done := make(chan struct{})
	go func() {
		h.c.Post(func() { close(ran) })
		close(done)
	}()
	<-done

	assert.Equal(t, 1, h.compositor.Wakeups())
	require.NoError(t, h.c.Step())

	select {
	case <-ran:
	default:
		t.Fatal("posted function did not run")
	}
}

func TestPostUpdateRedraws(t *testing.T) {
	h := newHarness(t)
	panel := h.compositor.Last(PanelNamespace)
	before := panel.FrameRequests

	h.c.PostUpdate(func() { h.slider.value = 0.9 })
	h.compositor.Push(func(port.EventHandler) {})
	require.NoError(t, h.c.Step())

	assert.Equal(t, before+1, panel.FrameRequests)
}

func TestApplyConfig(t *testing.T) {
	h := newHarness(t)
	cfg := config.DefaultConfig()
	cfg.Animation.Step = 100
	cfg.Animation.RateHz = 60
	cfg.Frame.MaxIntervalMs = 5000

	h.c.ApplyConfig(cfg)

	assert.Equal(t, 100.0, h.c.animation.Params().Step)
	assert.Equal(t, animation.IntervalForRate(60), h.c.animation.Interval())
	assert.Equal(t, h.clock.Now().Add(5*time.Second), h.c.frames.Deadline())

	h.touchPanel(1, 0)
	h.configureDrawer()
	h.motion(1, 400)
	h.up(1)
	h.settle()
	assert.Equal(t, 4, h.c.animation.Ticks())
}
