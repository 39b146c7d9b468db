package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/wndstack/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve a window session over MCP (stdio)",
	Long: `Run a Model Context Protocol server on stdin/stdout exposing one window
session through the tools open_window, close_window, back_to_root, reset
and status.

Logs go to stderr so they never mix with the protocol stream.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if err := app.WatchConfig(); err != nil {
		app.Logger().Warn().Err(err).Msg("config hot reload disabled")
	}
	app.ServeMetrics()

	session := app.NewSession(app.Ctx())
	server := mcp.NewServer(session.Windows, *app.Logger(), buildInfo.Version)

	app.Logger().Info().Str("session_id", session.ID).Msg("mcp server listening on stdio")
	return server.Run(session.Ctx())
}
