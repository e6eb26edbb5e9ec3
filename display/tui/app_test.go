package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/zram-pulse/collectors"
)

func testAssembler() *collectors.Assembler {
	return collectors.NewAssembler(
		collectors.StaticMemory{Stats: collectors.MemoryStats{TotalBytes: 8 << 30, AvailableBytes: 4 << 30}},
		collectors.StaticSwaps{},
		collectors.StaticZram{Stats: collectors.ZramStats{
			Algorithms:    []string{"zstd"},
			DisksizeBytes: 4 << 30,
			DataBytes:     1 << 30,
			ComprBytes:    512 << 20,
		}},
		time.Second, nil,
	)
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func activeSnapshot() collectors.Snapshot {
	return collectors.Snapshot{
		RAMTotalBytes:     8 << 30,
		RAMAvailableBytes: 4 << 30,
		ZramActive:        true,
		ZramLimitBytes:    4 << 30,
		ZramDataBytes:     1 << 30,
		ZramComprBytes:    512 << 20,
		ZramAlgorithms:    []string{"zstd"},
	}
}

func TestNew_ClampsRefresh(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want time.Duration
	}{
		{0, DefaultRefresh},
		{-time.Second, DefaultRefresh},
		{50 * time.Millisecond, MinRefresh},
		{time.Second, time.Second},
		{time.Minute, MaxRefresh},
	}

	for _, tt := range tests {
		m := New(testAssembler(), tt.in)
		if m.refresh != tt.want {
			t.Errorf("New(refresh=%v) = %v, want %v", tt.in, m.refresh, tt.want)
		}
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyPress('q'), {Type: tea.KeyCtrlC}} {
		m := New(testAssembler(), time.Second)
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("key %q: expected quit command", msg.String())
		}
	}
}

func TestUpdate_SpeedKeysRespectBounds(t *testing.T) {
	m := New(testAssembler(), time.Second)

	// Hammer faster well past the floor.
	var model tea.Model = m
	for i := 0; i < 20; i++ {
		model, _ = model.(Model).Update(keyPress('+'))
	}
	if got := model.(Model).refresh; got != MinRefresh {
		t.Errorf("refresh after 20x faster = %v, want floor %v", got, MinRefresh)
	}

	// Hammer slower well past the ceiling; '=' and '_' aliases count too.
	for i := 0; i < 60; i++ {
		model, _ = model.(Model).Update(keyPress('-'))
	}
	if got := model.(Model).refresh; got != MaxRefresh {
		t.Errorf("refresh after 60x slower = %v, want ceiling %v", got, MaxRefresh)
	}

	model, _ = model.(Model).Update(keyPress('='))
	if got := model.(Model).refresh; got != MaxRefresh-100*time.Millisecond {
		t.Errorf("'=' alias did not speed up: %v", got)
	}
}

func TestUpdate_SnapshotDrivesModelAndHistory(t *testing.T) {
	m := New(testAssembler(), time.Second)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model, _ = model.(Model).Update(snapshotMsg{snap: activeSnapshot()})

	got := model.(Model)
	if !got.sampled {
		t.Fatal("snapshot message must mark the model sampled")
	}
	for _, series := range []string{seriesRAM, seriesZram, seriesSwap, seriesFreeCons, seriesFreeOpt} {
		if got.store.Len(series) != 1 {
			t.Errorf("series %s length = %d, want 1", series, got.store.Len(series))
		}
	}
	if got.historyLen != 372 {
		t.Errorf("historyLen = %d, want 372 at width 80", got.historyLen)
	}
}

func TestUpdate_NoDeviceSkipsModelAndHistory(t *testing.T) {
	m := New(testAssembler(), time.Second)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model, _ = model.(Model).Update(snapshotMsg{snap: collectors.Snapshot{RAMTotalBytes: 8 << 30}})

	got := model.(Model)
	for _, series := range []string{seriesRAM, seriesZram, seriesSwap, seriesFreeCons, seriesFreeOpt} {
		if got.store.Len(series) != 0 {
			t.Errorf("series %s recorded %d samples in the no-device state", series, got.store.Len(series))
		}
	}
}

func TestUpdate_TickSchedulesSampleAndNextTick(t *testing.T) {
	m := New(testAssembler(), time.Second)
	_, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick must schedule the sample round and the next tick")
	}
}

func TestUpdate_HistoryTrimsOnNarrowResize(t *testing.T) {
	m := New(testAssembler(), time.Second)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 200, Height: 50})
	for i := 0; i < 500; i++ {
		model, _ = model.(Model).Update(snapshotMsg{snap: activeSnapshot()})
	}
	if got := model.(Model).store.Len(seriesRAM); got != 500 {
		t.Fatalf("expected 500 samples under the wide bound, got %d", got)
	}

	// Shrinking the terminal shrinks the window on the next recorded tick.
	model, _ = model.(Model).Update(tea.WindowSizeMsg{Width: 28, Height: 24})
	model, _ = model.(Model).Update(snapshotMsg{snap: activeSnapshot()})

	got := model.(Model)
	if got.historyLen != 60 {
		t.Errorf("historyLen = %d, want the 60-sample floor", got.historyLen)
	}
	if length := got.store.Len(seriesRAM); length != 60 {
		t.Errorf("series length after shrink = %d, want 60", length)
	}
}

func TestView_StatesBeforeFirstFrame(t *testing.T) {
	m := New(testAssembler(), time.Second)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("pre-resize view = %q", got)
	}

	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if got := model.(Model).View(); got != "Sampling..." {
		t.Errorf("pre-sample view = %q", got)
	}
}

func TestView_RendersFrameAfterSample(t *testing.T) {
	m := New(testAssembler(), time.Second)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model, _ = model.(Model).Update(snapshotMsg{snap: activeSnapshot()})

	view := model.(Model).View()
	if !strings.Contains(view, "ZRAM Pulse") {
		t.Errorf("view missing title: %q", view)
	}
	if got := len(strings.Split(view, "\n")); got != 24 {
		t.Errorf("view has %d lines, want 24", got)
	}
}
