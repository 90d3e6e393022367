package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig_Ranges(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{name: "panel height zero", mutate: func(c *Config) { c.Panel.Height = 0 }, wantKey: "panel.height"},
		{name: "panel height huge", mutate: func(c *Config) { c.Panel.Height = 4096 }, wantKey: "panel.height"},
		{name: "handle ratio zero", mutate: func(c *Config) { c.Drawer.CloseHandleRatio = 0 }, wantKey: "drawer.close_handle_ratio"},
		{name: "negative step", mutate: func(c *Config) { c.Animation.Step = -1 }, wantKey: "animation.step"},
		{name: "rate zero", mutate: func(c *Config) { c.Animation.RateHz = 0 }, wantKey: "animation.rate_hz"},
		{name: "threshold past half", mutate: func(c *Config) { c.Animation.Threshold = 0.6 }, wantKey: "animation.threshold"},
		{name: "frame interval", mutate: func(c *Config) { c.Frame.MaxIntervalMs = 10 }, wantKey: "frame.max_interval_ms"},
		{name: "bad color", mutate: func(c *Config) { c.Colors.Accent = "green" }, wantKey: "colors.accent"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantKey: "logging.level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantKey: "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestValidateHexColor(t *testing.T) {
	for _, ok := range []string{"", "#fff", "#0a0a0b", "#1a1a1bf0"} {
		assert.NoError(t, ValidateHexColor(ok), ok)
	}
	for _, bad := range []string{"fff", "#ffff", "#gggggg", "#0a0a0b0"} {
		assert.Error(t, ValidateHexColor(bad), bad)
	}
}
