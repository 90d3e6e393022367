package theme

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shade/internal/infrastructure/config"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#ffffff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"#4ade80", color.NRGBA{R: 0x4a, G: 0xde, B: 0x80, A: 255}},
		{"#f80", color.NRGBA{R: 0xff, G: 0x88, B: 0x00, A: 255}},
		{"#1a1a1bf0", color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1b, A: 0xf0}},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseHex("green")
	assert.Error(t, err)
	_, err = ParseHex("#112233zz")
	assert.Error(t, err)
}

func TestBlendEndpoints(t *testing.T) {
	a := color.NRGBA{R: 10, G: 20, B: 30, A: 0}
	b := color.NRGBA{R: 200, G: 100, B: 50, A: 255}

	assert.Equal(t, a, Blend(a, b, 0))
	assert.Equal(t, b, Blend(a, b, 1))
	assert.Equal(t, uint8(128), Blend(a, b, 0.5).A)
}

func TestFromConfig(t *testing.T) {
	p, err := FromConfig(config.DefaultPalette())
	require.NoError(t, err)
	assert.Equal(t, uint8(0xf0), p.DrawerBackground.A)
	assert.Equal(t, Default(), p)

	bad := config.DefaultPalette()
	bad.Accent = "nope"
	_, err = FromConfig(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accent")
}
