// Package tui implements the fullscreen dashboard using Bubbletea's Elm
// architecture. The runtime supplies the two-speed scheduling the loop
// needs: key events arrive asynchronously between ticks while tea.Tick
// drives the sampling cadence, so quit and speed changes feel instant even
// at the slowest refresh interval.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/zram-pulse/collectors"
	"gitlab.com/tinyland/lab/zram-pulse/history"
	"gitlab.com/tinyland/lab/zram-pulse/risk"
)

// Refresh interval bounds. Interval changes take effect on the next tick
// boundary, not retroactively.
const (
	DefaultRefresh = 1 * time.Second
	MinRefresh     = 200 * time.Millisecond
	MaxRefresh     = 5 * time.Second
	refreshStep    = 100 * time.Millisecond
)

// ClampRefresh bounds an interval to [MinRefresh, MaxRefresh]; a
// non-positive interval falls back to the default.
func ClampRefresh(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultRefresh
	}
	return min(max(d, MinRefresh), MaxRefresh)
}

// tickMsg fires when the refresh interval elapses.
type tickMsg time.Time

// snapshotMsg carries the result of one asynchronous sampling round.
type snapshotMsg struct {
	snap collectors.Snapshot
}

// Model is the root Bubbletea model. It owns all mutable dashboard state:
// the latest snapshot and assessment, the history store, and the refresh
// interval. Sampling, modeling, history mutation, and rendering are
// strictly sequential within one tick.
type Model struct {
	assembler *collectors.Assembler
	store     *history.Store

	refresh time.Duration
	width   int
	height  int
	ready   bool
	sampled bool

	snap       collectors.Snapshot
	assessment risk.Assessment
	historyLen int
}

// New creates the dashboard model. The starting interval is clamped to
// the supported bounds.
func New(assembler *collectors.Assembler, refresh time.Duration) Model {
	return Model{
		assembler:  assembler,
		store:      history.NewStore(),
		refresh:    ClampRefresh(refresh),
		historyLen: historyLength(graphWidth(0)),
	}
}

// Init implements tea.Model: sample immediately, then start ticking.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.sampleCmd(), tickCmd(m.refresh))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Faster):
			m.refresh = max(MinRefresh, m.refresh-refreshStep)
		case key.Matches(msg, keys.Slower):
			m.refresh = min(MaxRefresh, m.refresh+refreshStep)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tickMsg:
		// The next tick is scheduled at the current interval, so speed
		// changes apply from here.
		return m, tea.Batch(m.sampleCmd(), tickCmd(m.refresh))

	case snapshotMsg:
		m.snap = msg.snap
		m.sampled = true
		if m.snap.ZramActive {
			m.assessment = risk.Assess(m.snap)
			m.recordHistory()
		}
	}

	return m, nil
}

// View implements tea.Model. The frame is a pure function of model state.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if !m.sampled {
		return "Sampling..."
	}
	return renderFrame(frameData{
		snap:       m.snap,
		assessment: m.assessment,
		windows:    m.currentWindows(),
		historyLen: m.historyLen,
		refresh:    m.refresh,
		width:      m.width,
		height:     m.height,
	})
}

// sampleCmd assembles a snapshot off the update loop so a slow data source
// never blocks input handling.
func (m Model) sampleCmd() tea.Cmd {
	assembler := m.assembler
	return func() tea.Msg {
		return snapshotMsg{snap: assembler.Assemble(context.Background())}
	}
}

// recordHistory appends one sample per tracked series, then trims every
// series to the window bound derived from the current terminal width.
func (m *Model) recordHistory() {
	m.historyLen = historyLength(graphWidth(m.width))

	m.store.Append(seriesRAM, m.snap.RAMUsedRatio())
	m.store.Append(seriesZram, m.snap.ZramUtil())
	m.store.Append(seriesSwap, m.snap.OtherSwapUsedRatio())
	m.store.Append(seriesFreeCons, m.assessment.FreeConservativeRatio())
	m.store.Append(seriesFreeOpt, m.assessment.FreeOptimisticRatio())

	m.store.ResizeAll(m.historyLen)
}

// currentWindows snapshots every series window for the renderer.
func (m Model) currentWindows() map[string][]float64 {
	return map[string][]float64{
		seriesRAM:      m.store.Window(seriesRAM),
		seriesZram:     m.store.Window(seriesZram),
		seriesSwap:     m.store.Window(seriesSwap),
		seriesFreeCons: m.store.Window(seriesFreeCons),
		seriesFreeOpt:  m.store.Window(seriesFreeOpt),
	}
}

// tickCmd schedules the next tick after d.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
