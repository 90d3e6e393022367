// Package cmd provides Cobra CLI commands for shade.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/shade/internal/bootstrap"
	"github.com/bnema/shade/internal/cli"
	"github.com/bnema/shade/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "shade",
		Short: "A touch panel with a pull-down drawer for Wayland",
		Long: `Shade - a touch panel with a pull-down drawer for Wayland compositors.

Shade shows a thin panel along the top edge of the screen. Drag down from
the panel to pull out the drawer; drag its handle up to put it away. The
drawer holds sliders for screen brightness and audio volume.

Requirements:
  - A Wayland compositor with wlr-layer-shell (Sway, Hyprland, River, niri...)
  - EGL with OpenGL ES 2

Run 'shade' without arguments to start the shell.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		RunE: runShell,
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func runShell(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if app.ConfigErr != nil {
		return app.ConfigErr
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return bootstrap.Run(ctx, app.Manager, bootstrap.DefaultProbers())
}

// probeModules opens the enabled modules for a one-shot command.
func probeModules(ctx context.Context) *bootstrap.ModuleSet {
	return bootstrap.ProbeModules(ctx, GetApp().Config.Modules, bootstrap.DefaultProbers(), nil)
}
