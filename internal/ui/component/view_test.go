package component

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/application/port/porttest"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/ui/theme"
)

type fakeSlider struct {
	value float64
	icon  port.Icon
}

func (s *fakeSlider) Value() float64  { return s.value }
func (s *fakeSlider) Icon() port.Icon { return s.icon }

func (s *fakeSlider) SetValue(_ context.Context, v float64) error {
	s.value = v
	return nil
}

type fakeModule struct {
	name   string
	slider port.Slider
}

func (m *fakeModule) Name() string { return m.name }

func (m *fakeModule) Slider() (port.Slider, bool) {
	return m.slider, m.slider != nil
}

func testModules() []port.Module {
	return []port.Module{
		&fakeModule{name: "brightness", slider: &fakeSlider{value: 0.5, icon: port.IconBrightness}},
		&fakeModule{name: "clock"},
		&fakeModule{name: "volume", slider: &fakeSlider{value: 1, icon: port.IconVolume}},
	}
}

func TestDrawerView_HiddenAtZeroOffset(t *testing.T) {
	v := NewDrawerView(theme.Default(), testModules(), 0.95)
	canvas := porttest.NewCanvas(entity.NewSize(400, 800))

	v.Draw(canvas, 0, 1)

	require.Len(t, canvas.Clears, 1)
	assert.Zero(t, canvas.Clears[0].A)
	assert.Empty(t, canvas.Fills)
}

func TestDrawerView_FullyOpen(t *testing.T) {
	palette := theme.Default()
	v := NewDrawerView(palette, testModules(), 0.95)
	canvas := porttest.NewCanvas(entity.NewSize(400, 800))

	v.Draw(canvas, 800, 1)

	fills := canvas.Fills
	require.Len(t, fills, 10)
	assert.Equal(t, porttest.Fill{Rect: image.Rect(0, 0, 400, 800), Color: palette.DrawerBackground}, fills[0])
	assert.Equal(t, porttest.Fill{Rect: image.Rect(24, 24, 80, 80), Color: palette.IconTile}, fills[1])
	assert.Equal(t, porttest.Fill{Rect: image.Rect(96, 46, 376, 58), Color: palette.Track}, fills[3])
	assert.Equal(t, porttest.Fill{Rect: image.Rect(96, 46, 236, 58), Color: palette.Accent}, fills[4])
	assert.Equal(t, porttest.Fill{Rect: image.Rect(160, 778, 240, 782), Color: palette.Handle}, fills[9])
}

func TestDrawerView_SlidesWithOffset(t *testing.T) {
	palette := theme.Default()
	v := NewDrawerView(palette, testModules(), 0.95)
	canvas := porttest.NewCanvas(entity.NewSize(400, 800))

	v.Draw(canvas, 400, 1)

	fills := canvas.Fills
	require.Len(t, fills, 2)
	assert.Equal(t, image.Rect(0, 0, 400, 400), fills[0].Rect)
	assert.Equal(t, porttest.Fill{Rect: image.Rect(160, 378, 240, 382), Color: palette.Handle}, fills[1])
}

func TestDrawerView_ScaledRows(t *testing.T) {
	v := NewDrawerView(theme.Default(), testModules(), 0.95)
	canvas := porttest.NewCanvas(entity.NewSize(800, 1600))

	v.Draw(canvas, 800, 2)

	require.GreaterOrEqual(t, len(canvas.Fills), 2)
	assert.Equal(t, image.Rect(0, 0, 800, 1600), canvas.Fills[0].Rect)
	assert.Equal(t, image.Rect(48, 48, 160, 160), canvas.Fills[1].Rect)
}

func TestDrawerView_SliderAt(t *testing.T) {
	modules := testModules()
	v := NewDrawerView(theme.Default(), modules, 0.95)
	size := entity.NewSize(400, 800)

	s, value, ok := v.SliderAt(entity.Point{X: 236, Y: 50}, 800, size)
	require.True(t, ok)
	brightness, _ := modules[0].Slider()
	assert.Same(t, brightness, s)
	assert.InDelta(t, 0.5, value, 1e-9)

	s, value, ok = v.SliderAt(entity.Point{X: 306, Y: 120}, 800, size)
	require.True(t, ok)
	volume, _ := modules[2].Slider()
	assert.Same(t, volume, s)
	assert.InDelta(t, 0.75, value, 1e-9)

	_, _, ok = v.SliderAt(entity.Point{X: 10, Y: 50}, 800, size)
	assert.False(t, ok)

	_, _, ok = v.SliderAt(entity.Point{X: 236, Y: 50}, 400, size)
	assert.False(t, ok)
}

func TestPanelView_Indicators(t *testing.T) {
	palette := theme.Default()
	v := NewPanelView(palette, testModules()[:1])
	canvas := porttest.NewCanvas(entity.NewSize(200, 32))

	v.Draw(canvas, 1)

	require.Equal(t, palette.PanelBackground, canvas.Clears[0])
	require.Len(t, canvas.Fills, 2)
	assert.Equal(t, porttest.Fill{Rect: image.Rect(188, 6, 194, 26), Color: palette.Track}, canvas.Fills[0])
	assert.Equal(t, porttest.Fill{Rect: image.Rect(188, 16, 194, 26), Color: palette.Indicator}, canvas.Fills[1])
}

func TestPanelView_TooShortForIndicators(t *testing.T) {
	v := NewPanelView(theme.Default(), testModules())
	canvas := porttest.NewCanvas(entity.NewSize(200, 10))

	v.Draw(canvas, 1)
	assert.Empty(t, canvas.Fills)
}
