// Package cli holds the dependencies shared by the shade commands.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/bnema/shade/internal/cli/styles"
	"github.com/bnema/shade/internal/domain/build"
	"github.com/bnema/shade/internal/infrastructure/config"
	"github.com/bnema/shade/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Fs        afero.Fs

	// ConfigErr is set when the config file exists but failed to load.
	// Commands that only need defaults keep working; the shell refuses to
	// start.
	ConfigErr error

	ctx context.Context
}

// Option customizes NewApp.
type Option func(*appOptions)

type appOptions struct {
	fs  afero.Fs
	dir string
}

// WithFs reads and writes the config on fs.
func WithFs(fs afero.Fs) Option {
	return func(o *appOptions) { o.fs = fs }
}

// WithConfigDir replaces the XDG config directory.
func WithConfigDir(dir string) Option {
	return func(o *appOptions) { o.dir = dir }
}

// NewApp loads the config and builds the logger.
func NewApp(opts ...Option) (*App, error) {
	o := appOptions{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(&o)
	}

	managerOpts := []config.ManagerOption{config.WithFs(o.fs)}
	if o.dir != "" {
		managerOpts = append(managerOpts, config.WithDir(o.dir))
	}
	mgr, err := config.NewManager(managerOpts...)
	if err != nil {
		return nil, fmt.Errorf("config manager: %w", err)
	}

	configErr := mgr.Load()
	cfg := mgr.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)
	if configErr != nil {
		logger.Warn().Err(configErr).Msg("config not loaded, using defaults")
	} else {
		logger.Debug().
			Str("file", mgr.GetConfigFile()).
			Bool("exists", mgr.HasConfigFile()).
			Msg("config loaded")
	}

	return &App{
		Config:    cfg,
		Manager:   mgr,
		Theme:     styles.NewTheme(cfg),
		Fs:        o.fs,
		ConfigErr: configErr,
		ctx:       ctx,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
