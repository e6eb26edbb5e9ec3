// Package widgets renders the dashboard's proportion bars and sparklines
// as lipgloss-styled strings of exact display width.
package widgets

import "github.com/charmbracelet/lipgloss"

// Three-tier palette applied to utilization ratios. The thresholds are
// display policy shared by bars and sparklines.
const (
	cautionThreshold  = 0.60
	criticalThreshold = 0.85
)

// Palette colors plus the accent hues used by panels.
var (
	ColorSafe     = lipgloss.Color("#22C55E")
	ColorCaution  = lipgloss.Color("#EAB308")
	ColorCritical = lipgloss.Color("#EF4444")
	ColorAccent   = lipgloss.Color("#06B6D4")
	ColorDetail   = lipgloss.Color("#C084FC")
	ColorMuted    = lipgloss.Color("#6B7280")
)

// ColorForRatio maps a [0,1] utilization ratio onto the three-tier palette.
func ColorForRatio(r float64) lipgloss.Color {
	switch {
	case r < cautionThreshold:
		return ColorSafe
	case r < criticalThreshold:
		return ColorCaution
	default:
		return ColorCritical
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
