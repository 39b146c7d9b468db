package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/wndstack/internal/infrastructure/scenario"
)

// ScenarioRenderer renders scenario run results.
type ScenarioRenderer struct {
	theme *Theme
}

func NewScenarioRenderer(theme *Theme) *ScenarioRenderer {
	return &ScenarioRenderer{theme: theme}
}

// RenderResult renders one scenario outcome with its failed steps.
func (r *ScenarioRenderer) RenderResult(res scenario.Result) string {
	var b strings.Builder
	switch {
	case res.Err != nil:
		b.WriteString(fmt.Sprintf("%s %s %s",
			r.theme.ErrorStyle.Render(IconX),
			r.theme.Title.Render(res.Name),
			r.theme.ErrorStyle.Render(res.Err.Error()),
		))
	case res.Passed():
		b.WriteString(fmt.Sprintf("%s %s %s",
			r.theme.SuccessStyle.Render(IconCheck),
			r.theme.Title.Render(res.Name),
			r.theme.Subtle.Render(fmt.Sprintf("%d steps", res.Steps)),
		))
	default:
		b.WriteString(fmt.Sprintf("%s %s %s",
			r.theme.ErrorStyle.Render(IconX),
			r.theme.Title.Render(res.Name),
			r.theme.Subtle.Render(fmt.Sprintf("%d/%d steps failed", len(res.Failures), res.Steps)),
		))
		for _, f := range res.Failures {
			b.WriteString("\n    ")
			b.WriteString(r.theme.WarningStyle.Render(f.String()))
		}
	}
	return b.String()
}

// RenderSummary renders every result followed by a pass/fail count.
func (r *ScenarioRenderer) RenderSummary(results []scenario.Result) string {
	var b strings.Builder
	passed := 0
	for _, res := range results {
		if res.Passed() {
			passed++
		}
		b.WriteString(r.RenderResult(res))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	summary := fmt.Sprintf("%d passed, %d failed", passed, len(results)-passed)
	if passed == len(results) {
		b.WriteString(r.theme.SuccessStyle.Render(summary))
	} else {
		b.WriteString(r.theme.ErrorStyle.Render(summary))
	}
	return b.String()
}
