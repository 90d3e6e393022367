package config

// Config represents the complete configuration for shade.
type Config struct {
	Panel     PanelConfig     `mapstructure:"panel" toml:"panel"`
	Drawer    DrawerConfig    `mapstructure:"drawer" toml:"drawer"`
	Animation AnimationConfig `mapstructure:"animation" toml:"animation"`
	Frame     FrameConfig     `mapstructure:"frame" toml:"frame"`
	Modules   ModulesConfig   `mapstructure:"modules" toml:"modules"`
	Colors    ColorPalette    `mapstructure:"colors" toml:"colors"`
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging"`
}

// PanelConfig controls the always visible panel surface.
type PanelConfig struct {
	// Height is the logical panel height. The panel reserves this much space
	// at the top of the output.
	Height int `mapstructure:"height" toml:"height"`
}

// DrawerConfig controls the pull-down drawer.
type DrawerConfig struct {
	// CloseHandleRatio is the fraction of the drawer height above which a
	// touch grabs the drawer to close it.
	CloseHandleRatio float64 `mapstructure:"close_handle_ratio" toml:"close_handle_ratio"`
}

// AnimationConfig controls the snap animation after a drag.
type AnimationConfig struct {
	Step      float64 `mapstructure:"step" toml:"step"`
	RateHz    int     `mapstructure:"rate_hz" toml:"rate_hz"`
	Threshold float64 `mapstructure:"threshold" toml:"threshold"`
}

// FrameConfig controls the forced redraw ceiling.
type FrameConfig struct {
	MaxIntervalMs int `mapstructure:"max_interval_ms" toml:"max_interval_ms"`
}

// ModulesConfig enables the shell modules shown in the drawer.
type ModulesConfig struct {
	Brightness BrightnessConfig `mapstructure:"brightness" toml:"brightness"`
	Volume     VolumeConfig     `mapstructure:"volume" toml:"volume"`
}

// BrightnessConfig configures the backlight module.
type BrightnessConfig struct {
	Enabled   bool   `mapstructure:"enabled" toml:"enabled"`
	SysfsPath string `mapstructure:"sysfs_path" toml:"sysfs_path"`
	// Logind writes through org.freedesktop.login1 when sysfs is read-only.
	Logind bool `mapstructure:"logind" toml:"logind"`
}

// VolumeConfig configures the PulseAudio volume module.
type VolumeConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled"`
	// Server overrides the PulseAudio server address. Empty uses the default.
	Server string `mapstructure:"server" toml:"server"`
}

// ColorPalette holds hex colors (#RGB, #RRGGBB or #RRGGBBAA).
type ColorPalette struct {
	PanelBackground  string `mapstructure:"panel_background" toml:"panel_background"`
	DrawerBackground string `mapstructure:"drawer_background" toml:"drawer_background"`
	Handle           string `mapstructure:"handle" toml:"handle"`
	Track            string `mapstructure:"track" toml:"track"`
	Accent           string `mapstructure:"accent" toml:"accent"`
	Icon             string `mapstructure:"icon" toml:"icon"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
}
