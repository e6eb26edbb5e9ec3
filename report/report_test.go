package report

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"gitlab.com/tinyland/lab/zram-pulse/collectors"
)

func TestRun_NoDeviceNotice(t *testing.T) {
	assembler := collectors.NewAssembler(
		collectors.StaticMemory{Stats: collectors.MemoryStats{TotalBytes: 8 << 30, AvailableBytes: 2 << 30}},
		collectors.StaticSwaps{},
		collectors.StaticZram{Err: collectors.ErrNoDevices},
		time.Second, nil,
	)

	var buf bytes.Buffer
	if err := Run(context.Background(), &buf, assembler, 80); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "No active ZRAM device.") {
		t.Errorf("missing empty-state notice: %q", out)
	}
	if strings.Contains(out, "ANALYSIS") {
		t.Error("no-device report must not print the analysis body")
	}
}

func TestRun_FullAnalysis(t *testing.T) {
	assembler := collectors.NewAssembler(
		collectors.StaticMemory{Stats: collectors.MemoryStats{TotalBytes: 8 << 30, AvailableBytes: 2 << 30}},
		collectors.StaticSwaps{Stats: collectors.SwapStats{OtherTotalBytes: 1 << 30, OtherUsedBytes: 512 << 20}},
		collectors.StaticZram{Stats: collectors.ZramStats{
			Algorithms:    []string{"zstd"},
			DisksizeBytes: 4 << 30,
			DataBytes:     3 << 30,
			ComprBytes:    1 << 30,
		}},
		time.Second, nil,
	)

	var buf bytes.Buffer
	if err := Run(context.Background(), &buf, assembler, 80); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"ZRAM MEMORY ANALYSIS",
		"Physical RAM:",
		"Algorithm(s): zstd",
		"Real ratio: 3.00",
		"Conservative ratio: 3.00",
		"Conservative model",
		"Optimistic model",
		"OOM risk:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}
