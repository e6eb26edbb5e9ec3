package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBar renders a bracketed horizontal proportion bar of exactly width
// display cells: a [ ] track whose inner width−2 cells fill left to right
// with the ratio. The fill takes the three-tier palette color for the
// ratio; empty cells stay unstyled.
func RenderBar(width int, ratio float64) string {
	if width < 2 {
		return ""
	}
	ratio = clamp01(ratio)
	inner := width - 2
	filled := int(float64(inner) * ratio)
	if filled > inner {
		filled = inner
	}

	var sb strings.Builder
	sb.WriteString("[")
	if filled > 0 {
		style := lipgloss.NewStyle().Foreground(ColorForRatio(ratio))
		sb.WriteString(style.Render(strings.Repeat("█", filled)))
	}
	sb.WriteString(strings.Repeat(" ", inner-filled))
	sb.WriteString("]")
	return sb.String()
}
