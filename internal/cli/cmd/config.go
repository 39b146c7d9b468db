package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/bnema/wndstack/internal/cli/styles"
	"github.com/bnema/wndstack/internal/infrastructure/config"
)

var configPathOnly bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or edit the configuration file",
	Long:  `Open the configuration file in your editor, or print its path with --path.`,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVar(&configPathOnly, "path", false, "print the full path of the config file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path := app.ConfigFile()
	if path == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			return fmt.Errorf("failed to get config file path: %w", err)
		}
	}

	if configPathOnly {
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}

	// Prefer $VISUAL, fallback to $EDITOR
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		fmt.Fprintln(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderConfigInfo(app.ConfigFile(), app.Catalog.Len()))
		return fmt.Errorf("no editor defined: set $VISUAL or $EDITOR environment variable")
	}

	editorCmd := exec.Command(editor, path)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}
