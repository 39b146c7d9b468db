package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file in use and how many windows it declares.
func (r *ConfigRenderer) RenderConfigInfo(path string, windows int) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	if path == "" {
		path = "(defaults, no config file found)"
	}
	return fmt.Sprintf(
		"\n  %s Config %s\n  %s %d windows declared\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		iconStyle.Render(IconInfo),
		windows,
	)
}

// RenderValid renders a successful validation.
func (r *ConfigRenderer) RenderValid(what string) string {
	return fmt.Sprintf("%s %s is valid", r.theme.SuccessStyle.Render(IconCheck), what)
}

// RenderProblems renders a validation failure, one problem per line.
func (r *ConfigRenderer) RenderProblems(what string, err error) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s is invalid\n", r.theme.ErrorStyle.Render(IconX), what))
	for _, line := range strings.Split(err.Error(), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		sb.WriteString("    ")
		sb.WriteString(r.theme.WarningStyle.Render(line))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RenderSchemaWritten renders the path a JSON schema was written to.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	return fmt.Sprintf("%s Schema written to %s", r.theme.SuccessStyle.Render(IconCheck), r.theme.Highlight.Render(path))
}
