// Package theme resolves configured hex colors into render colors.
package theme

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/bnema/shade/internal/infrastructure/config"
)

// Palette holds the resolved colors used by the panel and drawer views.
type Palette struct {
	PanelBackground  color.NRGBA
	DrawerBackground color.NRGBA
	Handle           color.NRGBA
	Track            color.NRGBA
	Accent           color.NRGBA
	Icon             color.NRGBA

	// IconTile is the tile behind a module icon, derived from Track and Accent.
	IconTile color.NRGBA
	// Indicator is the panel level bar color, derived from Accent.
	Indicator color.NRGBA
}

// Default returns the palette of the built-in config.
func Default() Palette {
	p, err := FromConfig(config.DefaultPalette())
	if err != nil {
		panic(fmt.Sprintf("theme: invalid built-in palette: %v", err))
	}
	return p
}

// FromConfig parses every color of cfg.
func FromConfig(cfg config.ColorPalette) (Palette, error) {
	var p Palette
	fields := []struct {
		name  string
		value string
		dst   *color.NRGBA
	}{
		{"panel_background", cfg.PanelBackground, &p.PanelBackground},
		{"drawer_background", cfg.DrawerBackground, &p.DrawerBackground},
		{"handle", cfg.Handle, &p.Handle},
		{"track", cfg.Track, &p.Track},
		{"accent", cfg.Accent, &p.Accent},
		{"icon", cfg.Icon, &p.Icon},
	}

	for _, f := range fields {
		c, err := ParseHex(f.value)
		if err != nil {
			return Palette{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = c
	}

	p.IconTile = Blend(p.Track, p.Accent, 0.35)
	p.Indicator = Blend(p.Accent, p.PanelBackground, 0.15)
	return p, nil
}

// ParseHex parses #RGB, #RRGGBB and #RRGGBBAA.
func ParseHex(s string) (color.NRGBA, error) {
	alpha := uint8(0xff)
	switch len(s) {
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	case 4:
		s = "#" + string([]byte{s[1], s[1], s[2], s[2], s[3], s[3]})
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}

	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// Blend mixes a toward b by t in Lab space. Alpha is interpolated linearly.
func Blend(a, b color.NRGBA, t float64) color.NRGBA {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}

	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}

	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(alpha + 0.5)}
}
