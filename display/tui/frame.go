package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/zram-pulse/collectors"
	"gitlab.com/tinyland/lab/zram-pulse/display/widgets"
	"gitlab.com/tinyland/lab/zram-pulse/internal/format"
	"gitlab.com/tinyland/lab/zram-pulse/risk"
)

// Tracked history series.
const (
	seriesRAM      = "ram_used"
	seriesZram     = "zram_phys"
	seriesSwap     = "other_swap"
	seriesFreeCons = "free_conservative"
	seriesFreeOpt  = "free_optimistic"
)

// frameData is everything the renderer needs for one frame. Rendering is a
// pure function of this value: the same data yields a byte-identical frame.
type frameData struct {
	snap       collectors.Snapshot
	assessment risk.Assessment
	windows    map[string][]float64
	historyLen int
	refresh    time.Duration
	width      int
	height     int
}

// renderFrame produces the full dashboard frame, every line clipped to the
// terminal width and the line count clipped to the terminal height. The
// footer is always the last visible line.
func renderFrame(d frameData) string {
	if !d.snap.ZramActive {
		return renderNoDeviceFrame(d.width, d.height)
	}

	graphW := graphWidth(d.width)
	barW := barWidth(d.width)

	var lines []string
	push := func(line string) {
		lines = append(lines, ansi.Truncate(line, d.width, ""))
	}

	push(titleLine(d.width, d.refresh))
	push("")

	// RAM bar.
	used := d.snap.RAMTotalBytes - min(d.snap.RAMAvailableBytes, d.snap.RAMTotalBytes)
	push("  " + styleSection.Render("RAM used"))
	push(barLine(barW, d.snap.RAMUsedRatio(), fmt.Sprintf("%s/%s MB  avail %s MB",
		format.MB(used), format.MB(d.snap.RAMTotalBytes), format.MB(d.snap.RAMAvailableBytes)), d.width))
	push("")

	// Zram physical bar.
	algos := "?"
	if len(d.snap.ZramAlgorithms) > 0 {
		algos = strings.Join(d.snap.ZramAlgorithms, ", ")
	}
	push("  " + styleSection.Render(fmt.Sprintf("ZRAM phys (%s)", algos)))
	push(barLine(barW, d.snap.ZramUtil(), fmt.Sprintf("COMPR %s/%s MB  DATA %s MB",
		format.MB(d.snap.ZramComprBytes), format.MB(d.snap.ZramLimitBytes), format.MB(d.snap.ZramDataBytes)), d.width))
	push("")

	// Other (non-zram) swap bar.
	push("  " + styleSection.Render("Other swap (non-zram)"))
	if d.snap.OtherSwapTotalBytes > 0 {
		push(barLine(barW, d.snap.OtherSwapUsedRatio(), fmt.Sprintf("used %s/%s MB  free %s MB",
			format.MB(d.snap.OtherSwapUsedBytes), format.MB(d.snap.OtherSwapTotalBytes), format.MB(d.snap.OtherSwapFreeBytes())), d.width))
	} else {
		push(barLine(barW, 0, "none", d.width))
	}
	push("")

	// Compression panel.
	gain := uint64(0)
	if d.snap.ZramDataBytes > d.snap.ZramComprBytes {
		gain = d.snap.ZramDataBytes - d.snap.ZramComprBytes
	}
	efficiency := 0.0
	if d.snap.ZramLimitBytes > 0 {
		efficiency = float64(d.snap.ZramDataBytes) / float64(d.snap.ZramLimitBytes)
	}
	push("  " + styleSection.Render("Compression"))
	push("    " + styleDetail.Render(fmt.Sprintf("real ratio: %.2f    conservative: %.2f",
		d.assessment.RealRatio, d.assessment.ConservativeRatio)))
	push("    " + styleDetail.Render(fmt.Sprintf("gain: %s MB    efficiency(DATA/DISKSIZE): %.2fx",
		format.MB(gain), efficiency)))
	push("")

	// Risk panel.
	push("  " + styleSection.Render("OOM risk"))
	push(fmt.Sprintf("    %s  %s",
		riskStyle(d.assessment.Label).Render(d.assessment.Label.String()),
		riskStyle(d.assessment.Label).Render("("+d.assessment.Rationale+")")))
	push("")

	// Capacity panel.
	push("  " + styleSection.Render("Effective capacity (free)"))
	push("    " + styleSafe.Render(fmt.Sprintf("Conservative free: %s MB  (of %s MB)",
		format.MBf(d.assessment.FreeConservativeBytes), format.MBf(d.assessment.TotalConservativeBytes))))
	push("    " + styleCaution.Render(fmt.Sprintf("Optimistic  free:  %s MB  (of %s MB)",
		format.MBf(d.assessment.FreeOptimisticBytes), format.MBf(d.assessment.TotalOptimisticBytes))))
	push("")

	// Sparklines. The palette input for the two free series is inverted:
	// low free capacity is the dangerous direction.
	push("  " + styleSection.Render(fmt.Sprintf("History (auto length: %d samples)", d.historyLen)))
	push(sparkLine("RAM%     ", d.windows[seriesRAM], graphW, d.snap.RAMUsedRatio(), d.width))
	push(sparkLine("ZRAM%phys", d.windows[seriesZram], graphW, d.snap.ZramUtil(), d.width))
	push(sparkLine("SWAP%oth ", d.windows[seriesSwap], graphW, d.snap.OtherSwapUsedRatio(), d.width))
	push(sparkLine("FREE%cons", d.windows[seriesFreeCons], graphW, 1-d.assessment.FreeConservativeRatio(), d.width))
	push(sparkLine("FREE%opt ", d.windows[seriesFreeOpt], graphW, 1-d.assessment.FreeOptimisticRatio(), d.width))

	return frameOf(lines, footerLine(d.refresh, d.width), d.height)
}

// renderNoDeviceFrame is the minimal empty-state frame: title, notice, and
// quit hint only. The model and history stages never ran for this tick.
func renderNoDeviceFrame(width, height int) string {
	lines := []string{
		ansi.Truncate("  "+styleTitle.Render("ZRAM Pulse"), width, ""),
		"",
		ansi.Truncate("  "+styleCaution.Render("No active ZRAM device."), width, ""),
	}
	return frameOf(lines, ansi.Truncate("  "+styleHint.Render("q quit"), width, ""), height)
}

// frameOf assembles body lines plus a footer into at most height lines,
// with the footer pinned to the last visible row.
func frameOf(body []string, footer string, height int) string {
	if height <= 0 {
		height = len(body) + 1
	}
	if height == 1 {
		return footer
	}
	if len(body) > height-1 {
		body = body[:height-1]
	}
	for len(body) < height-1 {
		body = append(body, "")
	}
	return strings.Join(append(body, footer), "\n")
}

// titleLine renders the header with the refresh hint right-aligned when
// the terminal is wide enough.
func titleLine(width int, refresh time.Duration) string {
	left := "  " + styleTitle.Render("ZRAM Pulse")
	hint := fmt.Sprintf("refresh: %.1fs  (+/-)  q", refresh.Seconds())
	gap := width - ansi.StringWidth(left) - len(hint) - 2
	if gap < 2 {
		return left
	}
	return left + strings.Repeat(" ", gap) + styleHint.Render(hint)
}

// barLine renders an indented proportion bar with a trailing label clipped
// to the remaining columns.
func barLine(barW int, ratio float64, label string, width int) string {
	line := "  " + widgets.RenderBar(barW, ratio)
	budget := width - 2 - barW - 1
	if budget > 0 {
		line += " " + format.Clip(label, budget)
	}
	return ansi.Truncate(line, width, "")
}

// sparkLine renders one labeled history row. The sparkline color follows
// the three-tier palette applied to the current instantaneous ratio.
func sparkLine(label string, window []float64, graphW int, currentRatio float64, width int) string {
	spark := widgets.RenderSparkline(window, graphW, widgets.ColorForRatio(currentRatio))
	return ansi.Truncate("  "+label+" "+spark, width, "")
}

// footerLine renders the one-line key legend with the current refresh
// interval.
func footerLine(refresh time.Duration, width int) string {
	legend := fmt.Sprintf("q=quit  +=faster  -=slower  refresh: %.1fs", refresh.Seconds())
	return ansi.Truncate("  "+styleHint.Render(legend), width, "")
}
