package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/wndstack/internal/domain/entity"
)

// WindowsCLIRenderer renders non-interactive output for `wndstack windows`.
type WindowsCLIRenderer struct {
	theme *Theme
}

func NewWindowsCLIRenderer(theme *Theme) *WindowsCLIRenderer {
	return &WindowsCLIRenderer{theme: theme}
}

func (r *WindowsCLIRenderer) RenderEmptyList() string {
	return r.theme.Subtle.Render("No windows declared. Add entries under `windows:` in the config file.")
}

func (r *WindowsCLIRenderer) RenderList(ds []*entity.Descriptor, root entity.WindowID) string {
	if len(ds) == 0 {
		return r.RenderEmptyList()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconWindow), r.theme.Title.Render("Windows")))
	b.WriteString(r.theme.Subtle.Render(fmt.Sprintf(" (%d)", len(ds))))
	b.WriteString("\n\n")

	for _, d := range ds {
		b.WriteString(r.renderOne(d, d.ID == root))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *WindowsCLIRenderer) renderOne(d *entity.Descriptor, root bool) string {
	marker := " "
	if root {
		marker = r.theme.Highlight.Render("*")
	}
	line := fmt.Sprintf("%s %-18s %s %s %s",
		marker,
		r.theme.Highlight.Render(string(d.ID)),
		r.theme.CategoryBadge(d.Category),
		r.theme.PolicyBadge(d.OpenPolicy),
		r.theme.Subtle.Render(d.Path),
	)
	if d.Backdrop != entity.BackdropNone {
		line += " " + r.theme.MutedBadge(d.Backdrop.String())
	}
	if d.Script != "" {
		line += " " + r.theme.Subtle.Render(IconCode+" "+d.Script)
	}
	return line
}

func (r *WindowsCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}
