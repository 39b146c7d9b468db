package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/wndstack/internal/application/usecase"
	"github.com/bnema/wndstack/internal/infrastructure/host"
)

const shortInstanceLen = 8

// SceneRenderer renders a session's window state and host layers.
type SceneRenderer struct {
	theme *Theme
}

// NewSceneRenderer creates a scene renderer with the given theme.
func NewSceneRenderer(theme *Theme) *SceneRenderer {
	return &SceneRenderer{theme: theme}
}

// RenderSnapshot renders the shown windows, the stack (top first) and the cache
// side by side.
func (r *SceneRenderer) RenderSnapshot(snap usecase.WindowsSnapshot) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		r.box(IconWindow+" Shown", r.windowLines(snap.Shown)),
		r.box(IconStack+" Stack", r.stackLines(snap.Stack)),
		r.box(IconCache+" Cached", r.windowLines(snap.Cached)),
	)
}

// RenderLayers renders every host layer back to front, then the parking layer.
func (r *SceneRenderer) RenderLayers(scene *host.Scene) string {
	var lines []string
	for _, l := range append(scene.Layers(), scene.Cache()) {
		lines = append(lines, r.layerLine(l))
	}
	return r.box(IconLayer+" Layers", lines)
}

func (r *SceneRenderer) box(title string, lines []string) string {
	if len(lines) == 0 {
		lines = []string{r.theme.Subtle.Render("(empty)")}
	}
	body := r.theme.BoxHeader.Render(title) + "\n" + strings.Join(lines, "\n")
	return r.theme.Box.Render(body)
}

func (r *SceneRenderer) windowLines(ws []usecase.WindowStatus) []string {
	lines := make([]string, 0, len(ws))
	for _, w := range ws {
		style := r.theme.StateStyle(w.State)
		line := fmt.Sprintf("%s %s %s",
			style.Render(StateIcon(w.State)),
			style.Render(string(w.ID)),
			r.theme.Subtle.Render(w.Category+" "+shortInstance(w.InstanceID)),
		)
		if w.PreviousID != "" {
			line += r.theme.Subtle.Render(" " + IconArrow + " " + string(w.PreviousID))
		}
		lines = append(lines, line)
	}
	return lines
}

func (r *SceneRenderer) stackLines(frames []usecase.FrameStatus) []string {
	lines := make([]string, 0, len(frames))
	for i := len(frames) - 1; i >= 0; i-- {
		f := frames[i]
		line := r.theme.Highlight.Render(string(f.WindowID)) + " " + r.theme.Subtle.Render(f.Policy)
		if len(f.Affected) > 0 {
			hidden := make([]string, len(f.Affected))
			for j, id := range f.Affected {
				hidden[j] = string(id)
			}
			line += r.theme.WarningStyle.Render(" hides " + strings.Join(hidden, ", "))
		}
		lines = append(lines, line)
	}
	return lines
}

func (r *SceneRenderer) layerLine(l *host.Layer) string {
	nodes := l.Nodes()
	names := make([]string, len(nodes))
	for i, n := range nodes {
		name := n.Name()
		if n.Visible() {
			names[i] = r.theme.Normal.Render(name)
		} else {
			names[i] = r.theme.Closed.Render(name)
		}
	}
	label := r.theme.Subtitle.Render(fmt.Sprintf("%-9s", l.Name()))
	if len(names) == 0 {
		return label
	}
	return label + " " + strings.Join(names, " ")
}

func shortInstance(id string) string {
	if len(id) > shortInstanceLen {
		return id[:shortInstanceLen]
	}
	return id
}
