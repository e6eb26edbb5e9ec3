// Package report renders the one-shot capacity analysis: a single
// assembled snapshot pushed through the same risk model the dashboard
// uses, printed as styled plain text.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/zram-pulse/collectors"
	"gitlab.com/tinyland/lab/zram-pulse/internal/format"
	"gitlab.com/tinyland/lab/zram-pulse/risk"
)

var (
	styleHeading = lipgloss.NewStyle().Bold(true)
	styleLabel   = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	styleNote    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// Run assembles one snapshot and writes the capacity analysis to w. The
// rule separator is sized to width. When no zram device is active it
// prints a notice and returns nil: an empty pool is a state, not an error.
func Run(ctx context.Context, w io.Writer, assembler *collectors.Assembler, width int) error {
	snap := assembler.Assemble(ctx)
	if !snap.ZramActive {
		fmt.Fprintln(w, "No active ZRAM device.")
		return nil
	}

	a := risk.Assess(snap)
	rule := strings.Repeat("=", max(20, min(width, 40)))

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, styleHeading.Render("  ZRAM MEMORY ANALYSIS"))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s %s MB\n", styleLabel.Render("Physical RAM:"), format.MB(snap.RAMTotalBytes))
	fmt.Fprintf(w, "%s %s MB\n", styleLabel.Render("Available:"), format.MB(snap.RAMAvailableBytes))
	fmt.Fprintln(w)

	fmt.Fprintln(w, styleHeading.Render("ZRAM state:"))
	fmt.Fprintf(w, "  Algorithm(s): %s\n", strings.Join(snap.ZramAlgorithms, ", "))
	fmt.Fprintf(w, "  Limit (physical): %s MB\n", format.MB(snap.ZramLimitBytes))
	fmt.Fprintf(w, "  DATA (logical): %s MB\n", format.MB(snap.ZramDataBytes))
	fmt.Fprintf(w, "  COMPR (physical): %s MB\n", format.MB(snap.ZramComprBytes))
	fmt.Fprintf(w, "  Real ratio: %.2f\n", a.RealRatio)
	fmt.Fprintf(w, "  Conservative ratio: %.2f\n", a.ConservativeRatio)
	fmt.Fprintln(w)

	fmt.Fprintln(w, styleHeading.Render("Conservative model"))
	fmt.Fprintf(w, "  Total effective memory: %s MB\n", format.MBf(a.TotalConservativeBytes))
	fmt.Fprintf(w, "  Free capacity: %s MB\n", format.MBf(a.FreeConservativeBytes))
	fmt.Fprintln(w)

	fmt.Fprintln(w, styleHeading.Render("Optimistic model (current ratio)"))
	fmt.Fprintf(w, "  Total effective memory: %s MB\n", format.MBf(a.TotalOptimisticBytes))
	fmt.Fprintf(w, "  Free capacity: %s MB\n", format.MBf(a.FreeOptimisticBytes))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s %s  (%s)\n", styleHeading.Render("OOM risk:"), a.Label, a.Rationale)
	fmt.Fprintln(w)

	fmt.Fprintln(w, styleNote.Render("Notes:"))
	fmt.Fprintln(w, styleNote.Render("- The conservative model is an algorithm-based, stable estimate."))
	fmt.Fprintln(w, styleNote.Render("- The optimistic model uses the current measured ratio."))
	fmt.Fprintln(w, styleNote.Render("- The real ratio typically degrades as the pool fills."))
	fmt.Fprintln(w, styleNote.Render("- Actual OOM behavior may differ."))
	return nil
}
