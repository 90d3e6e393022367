package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/shade/internal/application/usecase"
	"github.com/bnema/shade/internal/cli/styles"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List modules and their current values",
	Long: `Probe the enabled modules and print their current values.

Modules that can't be opened (no backlight device, no PulseAudio server)
are left out, the same way the running shell leaves them out.`,
	Args: cobra.NoArgs,
	RunE: runModules,
}

var setCmd = &cobra.Command{
	Use:   "set <module> <value>",
	Short: "Set a module value",
	Long: `Write a module value. The value is a fraction or a percentage and is
clamped to the valid range.

Writes are best effort: when a device refuses the write the value is still
reported, with a warning.

Examples:
  shade set brightness 0.4
  shade set volume 75%`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(setCmd)
}

func runModules(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	set := probeModules(app.Ctx())
	defer set.Close()

	uc := usecase.NewModuleValuesUseCase(set.Modules)
	var rows []styles.ModuleRow
	for _, v := range uc.List(app.Ctx()) {
		rows = append(rows, styles.ModuleRow(v))
	}

	fmt.Fprint(cmd.OutOrStdout(), styles.NewModulesRenderer(app.Theme).Render(rows))
	return nil
}

func runSet(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if _, err := usecase.ParseValue(args[1]); err != nil {
		return err
	}

	set := probeModules(app.Ctx())
	defer set.Close()

	uc := usecase.NewModuleValuesUseCase(set.Modules)
	result, err := uc.Set(app.Ctx(), usecase.SetInput{Module: args[0], Value: args[1]})
	if errors.Is(err, usecase.ErrUnknownModule) || errors.Is(err, usecase.ErrNotSettable) {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), styles.NewModulesRenderer(app.Theme).RenderSet(styles.ModuleRow(result), err))
	return nil
}
