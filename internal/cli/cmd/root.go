// Package cmd provides Cobra CLI commands for wndstack.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/wndstack/internal/cli"
	"github.com/bnema/wndstack/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "wndstack",
		Short: "Window lifecycle, visibility stack and cache manager",
		Long: `wndstack - a headless window manager for game-style UIs.

Windows are declared in a config file with a category and an open policy.
Opening a window may hide others; closing it restores exactly what it hid,
in last-in first-out order. Closed windows are cached and reused.

Drive a session interactively with 'wndstack tui', replay scenario files
with 'wndstack run', or expose a session to MCP clients with 'wndstack mcp'.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "schema", "validate", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(configFile)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/wndstack/windows.yaml or ./windows.yaml)")
}

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
