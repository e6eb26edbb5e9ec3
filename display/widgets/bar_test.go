package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderBar_ExactWidth(t *testing.T) {
	for _, width := range []int{2, 10, 40, 80} {
		got := ansi.Strip(RenderBar(width, 0.5))
		if w := ansi.StringWidth(got); w != width {
			t.Errorf("width %d: rendered %d cells: %q", width, w, got)
		}
	}
}

func TestRenderBar_FillProportion(t *testing.T) {
	tests := []struct {
		ratio      float64
		wantFilled int
	}{
		{0.0, 0},
		{0.5, 9},  // inner 18, int(18*0.5)
		{0.99, 17},
		{1.0, 18},
		{-1.0, 0},  // clamped
		{2.0, 18},  // clamped
	}

	for _, tt := range tests {
		got := ansi.Strip(RenderBar(20, tt.ratio))
		filled := strings.Count(got, "█")
		if filled != tt.wantFilled {
			t.Errorf("ratio %v: %d filled cells, want %d (%q)", tt.ratio, filled, tt.wantFilled, got)
		}
		if !strings.HasPrefix(got, "[") || !strings.HasSuffix(got, "]") {
			t.Errorf("ratio %v: track not bracketed: %q", tt.ratio, got)
		}
	}
}

func TestRenderBar_TooNarrow(t *testing.T) {
	if got := RenderBar(1, 0.5); got != "" {
		t.Errorf("expected empty string below minimum width, got %q", got)
	}
}

func TestColorForRatio_Tiers(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{0.0, string(ColorSafe)},
		{0.59, string(ColorSafe)},
		{0.60, string(ColorCaution)},
		{0.84, string(ColorCaution)},
		{0.85, string(ColorCritical)},
		{1.0, string(ColorCritical)},
	}

	for _, tt := range tests {
		if got := string(ColorForRatio(tt.ratio)); got != tt.want {
			t.Errorf("ColorForRatio(%v) = %s, want %s", tt.ratio, got, tt.want)
		}
	}
}
