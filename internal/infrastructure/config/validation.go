package config

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	maxPanelHeight     = 512
	maxAnimationStep   = 1000.0
	maxAnimationRateHz = 1000
	maxAnimationThresh = 0.5
	minFrameIntervalMs = 100
)

// hexColorRegex matches valid hex colors (#RGB, #RRGGBB, #RRGGBBAA).
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validatePanel(config)...)
	validationErrors = append(validationErrors, validateDrawer(config)...)
	validationErrors = append(validationErrors, validateAnimation(config)...)
	validationErrors = append(validationErrors, validateFrame(config)...)
	validationErrors = append(validationErrors, validateColors(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validatePanel(config *Config) []string {
	if config.Panel.Height < 1 || config.Panel.Height > maxPanelHeight {
		return []string{fmt.Sprintf("panel.height must be between 1 and %d", maxPanelHeight)}
	}
	return nil
}

func validateDrawer(config *Config) []string {
	if r := config.Drawer.CloseHandleRatio; r <= 0 || r > 1 {
		return []string{"drawer.close_handle_ratio must be in (0, 1]"}
	}
	return nil
}

func validateAnimation(config *Config) []string {
	var validationErrors []string
	if s := config.Animation.Step; s <= 0 || s > maxAnimationStep {
		validationErrors = append(validationErrors, fmt.Sprintf("animation.step must be in (0, %g]", maxAnimationStep))
	}
	if hz := config.Animation.RateHz; hz < 1 || hz > maxAnimationRateHz {
		validationErrors = append(validationErrors, fmt.Sprintf("animation.rate_hz must be between 1 and %d", maxAnimationRateHz))
	}
	if t := config.Animation.Threshold; t < 0 || t > maxAnimationThresh {
		validationErrors = append(validationErrors, fmt.Sprintf("animation.threshold must be between 0 and %g", maxAnimationThresh))
	}
	return validationErrors
}

func validateFrame(config *Config) []string {
	if config.Frame.MaxIntervalMs < minFrameIntervalMs {
		return []string{fmt.Sprintf("frame.max_interval_ms must be at least %d", minFrameIntervalMs)}
	}
	return nil
}

func validateColors(config *Config) []string {
	colors := []struct {
		key   string
		value string
	}{
		{"colors.panel_background", config.Colors.PanelBackground},
		{"colors.drawer_background", config.Colors.DrawerBackground},
		{"colors.handle", config.Colors.Handle},
		{"colors.track", config.Colors.Track},
		{"colors.accent", config.Colors.Accent},
		{"colors.icon", config.Colors.Icon},
	}

	var validationErrors []string
	for _, c := range colors {
		if err := ValidateHexColor(c.value); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("%s: %v", c.key, err))
		}
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		validationErrors = append(validationErrors, "logging.level must be one of: trace, debug, info, warn, error, disabled")
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be one of: console, json")
	}
	return validationErrors
}

// ValidateHexColor checks if a string is a valid hex color.
func ValidateHexColor(color string) error {
	if color == "" {
		return nil // Empty is valid (will use default)
	}
	if !hexColorRegex.MatchString(color) {
		return fmt.Errorf("invalid hex color: %s", color)
	}
	return nil
}
