// zram-pulse is a live terminal dashboard for zram-backed virtual memory.
//
// It samples system memory, the swap table, and the zram device table each
// tick, derives a conservative and an optimistic capacity model, classifies
// OOM risk, and renders bars, numeric panels, and history sparklines.
//
// Usage:
//
//	zram-pulse [flags]
//
// Flags:
//
//	-config string    Path to configuration file (default: ~/.config/zram-pulse/config.yaml)
//	-report           Print a one-shot capacity analysis instead of the dashboard
//	-refresh duration Starting refresh interval override (clamped to 200ms..5s)
//	-demo             Run against synthetic data sources
//	-verbose          Enable verbose logging to stderr
//	-version          Print version and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"gitlab.com/tinyland/lab/zram-pulse/collectors"
	"gitlab.com/tinyland/lab/zram-pulse/collectors/swaptable"
	"gitlab.com/tinyland/lab/zram-pulse/collectors/sysmem"
	"gitlab.com/tinyland/lab/zram-pulse/collectors/zramdev"
	"gitlab.com/tinyland/lab/zram-pulse/config"
	"gitlab.com/tinyland/lab/zram-pulse/display/tui"
	"gitlab.com/tinyland/lab/zram-pulse/report"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file (default: ~/.config/zram-pulse/config.yaml)")
		runReport   = flag.Bool("report", false, "Print a one-shot capacity analysis instead of the dashboard")
		refreshFlag = flag.Duration("refresh", 0, "Starting refresh interval override (clamped to 200ms..5s)")
		demoMode    = flag.Bool("demo", false, "Run against synthetic data sources")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging to stderr")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("zram-pulse %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := buildLogger(cfg, *verbose)
	mem, swaps, zram := buildProviders(cfg, *demoMode)
	assembler := collectors.NewAssembler(mem, swaps, zram, cfg.SourceTimeout(), logger)

	if *runReport {
		width := 80
		if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
			width = w
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := report.Run(ctx, os.Stdout, assembler, width); err != nil {
			fmt.Fprintf(os.Stderr, "report: %v\n", err)
			os.Exit(1)
		}
		return
	}

	refresh := cfg.RefreshInterval()
	if *refreshFlag > 0 {
		refresh = *refreshFlag
	}

	program := tea.NewProgram(tui.New(assembler, refresh), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		// Failing to acquire the terminal is the one unrecoverable error.
		fmt.Fprintf(os.Stderr, "zram-pulse: %v\n", err)
		os.Exit(1)
	}
}

// buildProviders wires the real host providers, or the synthetic demo trio.
func buildProviders(cfg config.Config, demo bool) (collectors.MemoryProvider, collectors.SwapProvider, collectors.ZramProvider) {
	if demo {
		return collectors.DemoProviders()
	}
	return sysmem.New(), swaptable.New(), zramdev.New(cfg.Sources.ZramctlPath)
}

// buildLogger routes logs to the configured file, stderr when verbose, or
// nowhere. Note the dashboard owns the terminal, so stderr logging is only
// useful together with -report.
func buildLogger(cfg config.Config, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = io.Discard
	if cfg.LogFile != "" {
		if f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			w = f
		}
	} else if verbose {
		w = os.Stderr
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
