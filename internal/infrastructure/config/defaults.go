package config

// Default configuration constants
const (
	defaultPanelHeight      = 32   // logical px
	defaultCloseHandleRatio = 0.95 // of drawer height

	defaultAnimationStep      = 20.0 // logical px per tick
	defaultAnimationRateHz    = 120
	defaultAnimationThreshold = 0.25

	defaultFrameMaxIntervalMs = 60_000

	defaultBacklightPath = "/sys/class/backlight"

	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// DefaultPalette returns the built-in dark palette.
func DefaultPalette() ColorPalette {
	return ColorPalette{
		PanelBackground:  "#0a0a0b",
		DrawerBackground: "#1a1a1bf0",
		Handle:           "#909090",
		Track:            "#2d2d2d",
		Accent:           "#4ade80",
		Icon:             "#ffffff",
	}
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Panel: PanelConfig{
			Height: defaultPanelHeight,
		},
		Drawer: DrawerConfig{
			CloseHandleRatio: defaultCloseHandleRatio,
		},
		Animation: AnimationConfig{
			Step:      defaultAnimationStep,
			RateHz:    defaultAnimationRateHz,
			Threshold: defaultAnimationThreshold,
		},
		Frame: FrameConfig{
			MaxIntervalMs: defaultFrameMaxIntervalMs,
		},
		Modules: ModulesConfig{
			Brightness: BrightnessConfig{
				Enabled:   true,
				SysfsPath: defaultBacklightPath,
				Logind:    true,
			},
			Volume: VolumeConfig{
				Enabled: true,
			},
		},
		Colors: DefaultPalette(),
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
