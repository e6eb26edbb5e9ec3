package collectors

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"
)

// defaultTimeout bounds a full provider round when the caller configures none.
const defaultTimeout = 2 * time.Second

// Snapshot is the immutable per-tick combination of all provider results.
// It is constructed by the Assembler, consumed by the risk model and the
// renderer within the same tick, and not retained.
type Snapshot struct {
	RAMTotalBytes     uint64
	RAMAvailableBytes uint64

	// ZramActive is false when the zram provider reported the no-devices
	// state. The zram fields below are only meaningful when it is true.
	ZramActive         bool
	ZramLimitBytes     uint64
	ZramDataBytes      uint64
	ZramComprBytes     uint64
	ZramAlgorithms     []string

	OtherSwapTotalBytes uint64
	OtherSwapUsedBytes  uint64
}

// RAMUsedRatio returns used/total RAM, 0 when no RAM data is available.
func (s Snapshot) RAMUsedRatio() float64 {
	if s.RAMTotalBytes == 0 {
		return 0
	}
	used := s.RAMTotalBytes - min(s.RAMAvailableBytes, s.RAMTotalBytes)
	return float64(used) / float64(s.RAMTotalBytes)
}

// ZramUtil returns the physical zram utilization compr/limit, 0 when the
// limit is unset.
func (s Snapshot) ZramUtil() float64 {
	if s.ZramLimitBytes == 0 {
		return 0
	}
	return float64(s.ZramComprBytes) / float64(s.ZramLimitBytes)
}

// OtherSwapUsedRatio returns used/total for non-zram swap, 0 when none is
// configured.
func (s Snapshot) OtherSwapUsedRatio() float64 {
	if s.OtherSwapTotalBytes == 0 {
		return 0
	}
	return float64(s.OtherSwapUsedBytes) / float64(s.OtherSwapTotalBytes)
}

// OtherSwapFreeBytes returns the remaining non-zram swap, clamped at zero.
func (s Snapshot) OtherSwapFreeBytes() uint64 {
	if s.OtherSwapUsedBytes > s.OtherSwapTotalBytes {
		return 0
	}
	return s.OtherSwapTotalBytes - s.OtherSwapUsedBytes
}

// Assembler pulls one record from each provider and combines them into a
// Snapshot. Provider failures are absorbed: the failing source contributes
// zeros for that tick and the failure is logged, never returned. The next
// tick is the retry.
type Assembler struct {
	memory  MemoryProvider
	swaps   SwapProvider
	zram    ZramProvider
	timeout time.Duration
	logger  *slog.Logger
}

// NewAssembler creates an Assembler over the three providers. A zero
// timeout falls back to a short default; a nil logger discards output.
func NewAssembler(memory MemoryProvider, swaps SwapProvider, zram ZramProvider, timeout time.Duration, logger *slog.Logger) *Assembler {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Assembler{
		memory:  memory,
		swaps:   swaps,
		zram:    zram,
		timeout: timeout,
		logger:  logger,
	}
}

// Assemble gathers one snapshot. All provider calls share a single timeout
// so one stalled source cannot hold the tick indefinitely.
func (a *Assembler) Assemble(ctx context.Context) Snapshot {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	var snap Snapshot

	mem, err := a.memory.Memory(ctx)
	if err != nil {
		a.logger.Warn("memory provider unavailable", "error", err)
	} else {
		snap.RAMTotalBytes = mem.TotalBytes
		snap.RAMAvailableBytes = mem.AvailableBytes
	}

	sw, err := a.swaps.Swaps(ctx)
	if err != nil {
		a.logger.Warn("swap provider unavailable", "error", err)
	} else {
		snap.OtherSwapTotalBytes = sw.OtherTotalBytes
		snap.OtherSwapUsedBytes = sw.OtherUsedBytes
	}

	zr, err := a.zram.Devices(ctx)
	switch {
	case errors.Is(err, ErrNoDevices):
		// Distinct empty state: ZramActive stays false.
	case err != nil:
		a.logger.Warn("zram provider unavailable", "error", err)
	default:
		snap.ZramActive = true
		snap.ZramLimitBytes = zr.DisksizeBytes
		snap.ZramDataBytes = zr.DataBytes
		snap.ZramComprBytes = zr.ComprBytes
		snap.ZramAlgorithms = zr.Algorithms
	}

	a.logger.Debug("snapshot assembled",
		"ram_total", snap.RAMTotalBytes,
		"ram_available", snap.RAMAvailableBytes,
		"zram_active", snap.ZramActive,
		"zram_compr", snap.ZramComprBytes,
		"other_swap_total", snap.OtherSwapTotalBytes,
	)
	return snap
}
