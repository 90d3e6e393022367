package component

import (
	"image"
	"math"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/ui/theme"
)

// PanelView renders the panel background with a level bar per slider module,
// right aligned.
type PanelView struct {
	palette theme.Palette
	sliders []port.Slider
}

func NewPanelView(palette theme.Palette, modules []port.Module) *PanelView {
	v := &PanelView{palette: palette}
	for _, m := range modules {
		if s, ok := m.Slider(); ok {
			v.sliders = append(v.sliders, s)
		}
	}
	return v
}

func (v *PanelView) SetPalette(p theme.Palette) {
	v.palette = p
}

func (v *PanelView) Draw(c port.Canvas, scale int) {
	size := c.Size()
	c.Clear(v.palette.PanelBackground)

	pad := indicatorPadding * scale
	w := indicatorWidth * scale
	gap := indicatorGap * scale
	height := size.Height - 2*pad
	if height <= 0 {
		return
	}

	for i, s := range v.sliders {
		right := size.Width - pad - i*(w+gap)
		bar := image.Rect(right-w, pad, right, pad+height)
		c.FillRect(bar, v.palette.Track)

		value := min(max(s.Value(), 0), 1)
		level := int(math.Round(float64(height) * value))
		c.FillRect(image.Rect(bar.Min.X, bar.Max.Y-level, bar.Max.X, bar.Max.Y), v.palette.Indicator)
	}
}
