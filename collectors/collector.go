// Package collectors defines the typed data-source providers that feed the
// zram-pulse dashboard and the assembler that combines their results into
// one snapshot per tick. The core never sees raw tool output; each provider
// returns a fixed-schema struct or an error, and a failed provider degrades
// to a zero contribution rather than failing the tick.
package collectors

import (
	"context"
	"errors"
)

// ErrNoDevices is returned by a ZramProvider when no zram device is active.
// It is a recognized state, not a failure: the dashboard renders a distinct
// empty-state frame for it instead of treating the pool as zero-capacity.
var ErrNoDevices = errors.New("no zram devices found")

// MemoryStats holds system RAM totals as reported by the memory provider.
type MemoryStats struct {
	// TotalBytes is the physical RAM size.
	TotalBytes uint64
	// AvailableBytes is the kernel's estimate of allocatable RAM.
	AvailableBytes uint64
}

// SwapStats holds the swap table partitioned by backing device, summed
// across entries. Zram-backed entries are split out so the capacity model
// does not double-count them against the zram device table.
type SwapStats struct {
	ZramTotalBytes  uint64
	ZramUsedBytes   uint64
	OtherTotalBytes uint64
	OtherUsedBytes  uint64
}

// ZramStats holds the zram device table summed across all active devices.
type ZramStats struct {
	// Algorithms is the sorted, lowercase set of compression algorithms in use.
	Algorithms []string
	// DisksizeBytes is the configured physical ceiling.
	DisksizeBytes uint64
	// DataBytes is the logical (uncompressed) amount stored.
	DataBytes uint64
	// ComprBytes is the physical RAM actually consumed.
	ComprBytes uint64
}

// MemoryProvider reports RAM totals.
type MemoryProvider interface {
	Memory(ctx context.Context) (MemoryStats, error)
}

// SwapProvider reports the partitioned swap table.
type SwapProvider interface {
	Swaps(ctx context.Context) (SwapStats, error)
}

// ZramProvider reports the summed zram device table, or ErrNoDevices when
// no device is active.
type ZramProvider interface {
	Devices(ctx context.Context) (ZramStats, error)
}
