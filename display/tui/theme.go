package tui

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/zram-pulse/display/widgets"
	"gitlab.com/tinyland/lab/zram-pulse/risk"
)

// Styles used throughout the dashboard frame.
var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(widgets.ColorAccent)
	styleSection = lipgloss.NewStyle().Bold(true)
	styleDetail  = lipgloss.NewStyle().Foreground(widgets.ColorDetail)
	styleHint    = lipgloss.NewStyle().Foreground(widgets.ColorAccent)
	styleSafe    = lipgloss.NewStyle().Foreground(widgets.ColorSafe)
	styleCaution = lipgloss.NewStyle().Foreground(widgets.ColorCaution)
)

// riskStyle maps a risk label onto the palette: HIGH is critical, SAFE is
// safe, and everything in between (including UNKNOWN) is the caution hue.
func riskStyle(label risk.Label) lipgloss.Style {
	switch label {
	case risk.High:
		return lipgloss.NewStyle().Bold(true).Foreground(widgets.ColorCritical)
	case risk.Safe:
		return lipgloss.NewStyle().Bold(true).Foreground(widgets.ColorSafe)
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(widgets.ColorCaution)
	}
}
