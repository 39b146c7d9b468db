package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/wndstack/internal/cli/model"
	"github.com/bnema/wndstack/internal/logging"
)

var tuiLogFile string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Drive a window session interactively",
	Long: `Open an interactive session showing the shown windows, the navigation
stack, the cache and the host layers.

Commands typed at the prompt:
  open <window> [key=value ...]   open or resume a window
  close <window>                  close a normal or popup window
  back                            close every normal window and show the root
  reset [follow]                  destroy every window, optionally the follow layer too
  spawn <name>                    add a host object to the follow layer

The config file is watched; windows added to it become available at once.
Logs would draw over the screen, so they are discarded unless --log-file is set.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().StringVar(&tuiLogFile, "log-file", "", "write logs to this file, rotated at 10MB (logs are discarded otherwise)")
}

func runTUI(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	logger := zerolog.Nop()
	if tuiLogFile != "" {
		rotator, err := logging.NewLogRotator(logging.DefaultRotation(tuiLogFile))
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer rotator.Close()
		cfg := logging.DefaultConfig()
		cfg.Level = logging.ParseLevel(app.Config.Logging.Level)
		cfg.Format = "json"
		cfg.Output = rotator
		logger = logging.New(cfg)
	}
	app.SetLogger(logger)

	if err := app.WatchConfig(); err != nil {
		logger.Warn().Err(err).Msg("config hot reload disabled")
	}
	app.ServeMetrics()

	session := app.NewSession(app.Ctx())
	m := model.NewWindowsModel(session.Ctx(), app.Theme, model.WindowsModelConfig{
		Windows:   session.Windows,
		Scene:     session.Scene,
		SessionID: session.ID,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
