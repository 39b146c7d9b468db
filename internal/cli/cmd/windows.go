package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/wndstack/internal/cli/styles"
	"github.com/bnema/wndstack/internal/domain/entity"
)

var windowsJSON bool

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List the declared windows",
	Long:  `List every window declared in the config file with its category, open policy and backdrop. The root window is marked with '*'.`,
	RunE:  runWindows,
}

func init() {
	rootCmd.AddCommand(windowsCmd)
	windowsCmd.Flags().BoolVar(&windowsJSON, "json", false, "output as JSON")
}

// windowJSON is the JSON shape of one declared window.
type windowJSON struct {
	ID         entity.WindowID `json:"id"`
	Name       string          `json:"name"`
	Path       string          `json:"path"`
	Script     string          `json:"script,omitempty"`
	Category   string          `json:"category"`
	OpenPolicy string          `json:"open_policy"`
	Backdrop   string          `json:"backdrop"`
	Root       bool            `json:"root,omitempty"`
}

func runWindows(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	descriptors, err := app.Catalog.List(app.Ctx())
	if err != nil {
		return err
	}
	root := entity.WindowID(app.Config.RootWindow)

	if windowsJSON {
		out := make([]windowJSON, 0, len(descriptors))
		for _, d := range descriptors {
			out = append(out, windowJSON{
				ID:         d.ID,
				Name:       d.Name,
				Path:       d.Path,
				Script:     d.Script,
				Category:   d.Category.String(),
				OpenPolicy: d.OpenPolicy.String(),
				Backdrop:   d.Backdrop.String(),
				Root:       d.ID == root,
			})
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	renderer := styles.NewWindowsCLIRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderList(descriptors, root))
	return nil
}
