package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/wndstack/internal/domain/entity"
)

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// StatusBadge renders a status badge with custom colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}

// CategoryBadge renders a window category. Categories that take part in
// back-navigation are highlighted.
func (t *Theme) CategoryBadge(c entity.Category) string {
	if c == entity.CategoryNormal {
		return t.AccentBadge(c.String())
	}
	return t.MutedBadge(c.String())
}

// PolicyBadge renders an open policy. Policies that hide other windows use
// the warning color.
func (t *Theme) PolicyBadge(p entity.OpenPolicy) string {
	if p.Hides() {
		return t.StatusBadge(p.String(), t.Background, t.Warning)
	}
	return t.MutedBadge(p.String())
}

// StateIcon returns the icon for a window state name.
func StateIcon(state string) string {
	switch state {
	case entity.StateActive.String():
		return IconPlay
	case entity.StatePaused.String():
		return IconPause
	case entity.StateClosed.String():
		return IconStop
	default:
		return IconWindow
	}
}
