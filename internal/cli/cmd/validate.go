package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/wndstack/internal/cli/styles"
	"github.com/bnema/wndstack/internal/infrastructure/config"
	"github.com/bnema/wndstack/internal/infrastructure/scenario"
)

var errValidationFailed = errors.New("validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate [scenario.yaml...]",
	Short: "Check the config file and scenario files",
	Long: `Load the config file and report every problem found, then parse each
scenario file given as argument.

Examples:
  wndstack validate
  wndstack validate scenarios/*.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	renderer := styles.NewConfigRenderer(styles.NewTheme())
	out := cmd.OutOrStdout()
	failed := false

	mgr, err := config.NewManager(configFile)
	if err != nil {
		return err
	}
	if err := mgr.Load(); err != nil {
		fmt.Fprintln(out, renderer.RenderProblems("config", err))
		failed = true
	} else if _, err := config.ToDescriptors(mgr.Get()); err != nil {
		fmt.Fprintln(out, renderer.RenderProblems("config", err))
		failed = true
	} else {
		fmt.Fprintln(out, renderer.RenderConfigInfo(mgr.GetConfigFile(), len(mgr.Get().Windows)))
		fmt.Fprintln(out, renderer.RenderValid("config"))
	}

	for _, path := range args {
		if _, err := scenario.Load(path); err != nil {
			fmt.Fprintln(out, renderer.RenderProblems(path, err))
			failed = true
			continue
		}
		fmt.Fprintln(out, renderer.RenderValid(path))
	}

	if failed {
		return errValidationFailed
	}
	return nil
}
