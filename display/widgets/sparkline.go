package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparkBlocks contains the 8 block glyphs of the sparkline ramp, lowest
// intensity first.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline renders samples (already in [0,1], oldest first) as a
// glyph-ramp string of exactly width cells. The newest samples are kept
// and the result is right-aligned: when fewer samples exist than width,
// the left side is padded with blanks. The whole run is styled with color.
func RenderSparkline(samples []float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	if len(samples) > width {
		samples = samples[len(samples)-width:]
	}

	var sb strings.Builder
	if pad := width - len(samples); pad > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
	}
	for _, v := range samples {
		idx := int(math.Round(clamp01(v) * float64(len(sparkBlocks)-1)))
		sb.WriteRune(sparkBlocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Render(sb.String())
}
