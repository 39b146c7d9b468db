package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/wndstack/internal/cli/styles"
	"github.com/bnema/wndstack/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), renderVersion(styles.NewTheme(), buildInfo))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func renderVersion(theme *styles.Theme, info build.Info) string {
	line := func(icon, label, value string) string {
		return fmt.Sprintf("  %s %-10s %s", theme.Highlight.Render(icon), label, theme.Normal.Render(value))
	}
	return fmt.Sprintf("%s\n\n%s\n%s\n%s\n%s\n%s",
		theme.Title.Render("wndstack"),
		line(styles.IconVersion, "Version", info.Version),
		line(styles.IconCode, "Commit", info.Commit),
		line(styles.IconInfo, "Built", info.BuildDate),
		line(styles.IconGo, "Go", info.GoVersion),
		line(styles.IconArrow, "Repository", build.RepoURL()),
	)
}
