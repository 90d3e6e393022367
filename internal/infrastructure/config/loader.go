package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	fs        afero.Fs
	dir       string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// ManagerOption customizes a Manager.
type ManagerOption func(*Manager)

// WithFs reads the config file from fs instead of the OS filesystem.
func WithFs(fs afero.Fs) ManagerOption {
	return func(m *Manager) {
		m.fs = fs
	}
}

// WithDir looks for config.toml in dir instead of the XDG config directory.
func WithDir(dir string) ManagerOption {
	return func(m *Manager) {
		m.dir = dir
	}
}

// NewManager creates a new configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	m := &Manager{
		viper:     viper.New(),
		fs:        afero.NewOsFs(),
		callbacks: make([]func(*Config), 0),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.dir == "" {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		m.dir = configDir
	}

	v := m.viper
	v.SetFs(m.fs)
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(m.dir)

	// Environment variables use the SHADE_ prefix (e.g. SHADE_PANEL_HEIGHT).
	v.SetEnvPrefix("SHADE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "SHADE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SHADE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SHADE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SHADE_LOG_FORMAT: %w", err)
	}

	return m, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is not an error: built-in defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.decode()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if errors.As(err, &configFileNotFoundError) {
		return nil
	}

	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		configFile = filepath.Join(m.dir, configFileName)
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
}

// decode unmarshals, normalizes and validates. Caller holds the write lock.
func (m *Manager) decode() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}

	defaults := DefaultPalette()
	config.Colors = ColorPalette{
		PanelBackground:  coalesce(config.Colors.PanelBackground, defaults.PanelBackground),
		DrawerBackground: coalesce(config.Colors.DrawerBackground, defaults.DrawerBackground),
		Handle:           coalesce(config.Colors.Handle, defaults.Handle),
		Track:            coalesce(config.Colors.Track, defaults.Track),
		Accent:           coalesce(config.Colors.Accent, defaults.Accent),
		Icon:             coalesce(config.Colors.Icon, defaults.Icon),
	}

	config.Modules.Brightness.SysfsPath = strings.TrimSpace(config.Modules.Brightness.SysfsPath)
	if config.Modules.Brightness.SysfsPath == "" {
		config.Modules.Brightness.SysfsPath = defaultBacklightPath
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path of the config file in use, or the path
// where it would be read from when none exists.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.dir, configFileName)
}

// HasConfigFile reports whether Load found a config file.
func (m *Manager) HasConfigFile() bool {
	return m.viper.ConfigFileUsed() != ""
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("panel.height", defaults.Panel.Height)
	m.viper.SetDefault("drawer.close_handle_ratio", defaults.Drawer.CloseHandleRatio)

	m.viper.SetDefault("animation.step", defaults.Animation.Step)
	m.viper.SetDefault("animation.rate_hz", defaults.Animation.RateHz)
	m.viper.SetDefault("animation.threshold", defaults.Animation.Threshold)

	m.viper.SetDefault("frame.max_interval_ms", defaults.Frame.MaxIntervalMs)

	m.viper.SetDefault("modules.brightness.enabled", defaults.Modules.Brightness.Enabled)
	m.viper.SetDefault("modules.brightness.sysfs_path", defaults.Modules.Brightness.SysfsPath)
	m.viper.SetDefault("modules.brightness.logind", defaults.Modules.Brightness.Logind)
	m.viper.SetDefault("modules.volume.enabled", defaults.Modules.Volume.Enabled)
	m.viper.SetDefault("modules.volume.server", defaults.Modules.Volume.Server)

	m.viper.SetDefault("colors.panel_background", defaults.Colors.PanelBackground)
	m.viper.SetDefault("colors.drawer_background", defaults.Colors.DrawerBackground)
	m.viper.SetDefault("colors.handle", defaults.Colors.Handle)
	m.viper.SetDefault("colors.track", defaults.Colors.Track)
	m.viper.SetDefault("colors.accent", defaults.Colors.Accent)
	m.viper.SetDefault("colors.icon", defaults.Colors.Icon)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}
