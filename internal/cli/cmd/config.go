package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/shade/internal/cli/styles"
	"github.com/bnema/shade/internal/infrastructure/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Show where the config file lives and write the defaults to it.

The config file is optional: without one, built-in defaults apply.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long: `Write every setting with its default value to the config file.

An existing file is left alone unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderPath(app.Manager.GetConfigFile(), app.Manager.HasConfigFile()))
	if app.ConfigErr != nil {
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderError(app.ConfigErr))
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path := app.Manager.GetConfigFile()

	err := config.WriteDefaultConfig(app.Fs, path, configForce)
	switch {
	case errors.Is(err, config.ErrConfigExists):
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderExists(path))
		return nil
	case err != nil:
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderWritten(path))
	return nil
}
