package component

import (
	"image"
	"image/color"
	"math"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/ui/theme"
)

// DrawerView renders the drawer: module slider rows on a background that
// slides down with the drawer offset, plus the close handle at its bottom.
type DrawerView struct {
	palette     theme.Palette
	sliders     []port.Slider
	handleRatio float64
}

func NewDrawerView(palette theme.Palette, modules []port.Module, handleRatio float64) *DrawerView {
	v := &DrawerView{palette: palette, handleRatio: handleRatio}
	for _, m := range modules {
		if s, ok := m.Slider(); ok {
			v.sliders = append(v.sliders, s)
		}
	}
	return v
}

func (v *DrawerView) SetPalette(p theme.Palette) {
	v.palette = p
}

func (v *DrawerView) SetHandleRatio(ratio float64) {
	v.handleRatio = ratio
}

// Draw renders the drawer with its content bottom at offset (logical).
func (v *DrawerView) Draw(c port.Canvas, offset float64, scale int) {
	size := c.Size()
	c.Clear(color.NRGBA{})

	visible := min(int(math.Round(offset*float64(scale))), size.Height)
	if visible <= 0 {
		return
	}
	top := visible - size.Height

	c.FillRect(image.Rect(0, 0, size.Width, visible), v.palette.DrawerBackground)

	for i, row := range sliderRows(size.Width, len(v.sliders), scale) {
		v.drawSlider(c, row, v.sliders[i], top)
	}

	v.drawHandle(c, size, visible, scale)
}

func (v *DrawerView) drawSlider(c port.Canvas, row sliderRow, s port.Slider, top int) {
	shift := image.Pt(0, top)
	tile := row.Icon.Add(shift)
	track := row.Track.Add(shift)

	c.FillRect(tile, v.palette.IconTile)
	c.FillRect(glyph(tile, s.Icon()), v.palette.Icon)

	c.FillRect(track, v.palette.Track)
	filled := track
	filled.Max.X = track.Min.X + fillWidth(track, s.Value())
	c.FillRect(filled, v.palette.Accent)
}

func (v *DrawerView) drawHandle(c port.Canvas, size entity.Size, visible, scale int) {
	region := max(int(float64(size.Height)*(1-v.handleRatio)), 1)
	w := size.Width / handleWidthDiv
	h := min(handleHeight*scale, region)

	x := (size.Width - w) / 2
	y := visible - region + (region-h)/2
	c.FillRect(image.Rect(x, y, x+w, y+h), v.palette.Handle)
}

// glyph is the inner mark of an icon tile. Each icon kind gets a distinct
// shape so the rows stay distinguishable without an icon renderer.
func glyph(tile image.Rectangle, icon port.Icon) image.Rectangle {
	inset := tile.Dx() / 4
	inner := tile.Inset(inset)

	switch icon {
	case port.IconBrightness:
		return inner
	case port.IconVolume:
		w := inner.Dx() / 3
		return image.Rect(inner.Min.X, inner.Min.Y+w, inner.Min.X+2*w, inner.Max.Y-w)
	default:
		return image.Rectangle{}
	}
}

// SliderAt returns the slider under a touch at pos on the drawer and the
// value the touch x position maps to. Coordinates are logical.
func (v *DrawerView) SliderAt(pos entity.Point, offset float64, size entity.Size) (port.Slider, float64, bool) {
	top := offset - float64(size.Height)
	p := image.Pt(int(pos.X), int(pos.Y-top))

	for i, row := range sliderRows(size.Width, len(v.sliders), 1) {
		hit := image.Rect(row.Track.Min.X, row.Icon.Min.Y, row.Track.Max.X, row.Icon.Max.Y)
		if !p.In(hit) || row.Track.Dx() == 0 {
			continue
		}
		value := float64(p.X-row.Track.Min.X) / float64(row.Track.Dx())
		return v.sliders[i], min(max(value, 0), 1), true
	}
	return nil, 0, false
}
