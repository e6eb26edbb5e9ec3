package collectors

import (
	"context"
	"math"
)

// StaticMemory is a MemoryProvider returning fixed stats, or a fixed error.
type StaticMemory struct {
	Stats MemoryStats
	Err   error
}

// Memory implements MemoryProvider.
func (p StaticMemory) Memory(context.Context) (MemoryStats, error) {
	return p.Stats, p.Err
}

// StaticSwaps is a SwapProvider returning fixed stats, or a fixed error.
type StaticSwaps struct {
	Stats SwapStats
	Err   error
}

// Swaps implements SwapProvider.
func (p StaticSwaps) Swaps(context.Context) (SwapStats, error) {
	return p.Stats, p.Err
}

// StaticZram is a ZramProvider returning fixed stats, or a fixed error.
// Use Err: ErrNoDevices to exercise the empty-device state.
type StaticZram struct {
	Stats ZramStats
	Err   error
}

// Devices implements ZramProvider.
func (p StaticZram) Devices(context.Context) (ZramStats, error) {
	return p.Stats, p.Err
}

// DemoProviders returns a synthetic provider trio for the -demo flag: an
// 8 GiB machine with a 4 GiB zstd zram pool whose pressure slowly cycles,
// so the dashboard animates without touching the host.
func DemoProviders() (MemoryProvider, SwapProvider, ZramProvider) {
	d := &demoSource{}
	return d, d, d
}

type demoSource struct {
	tick int
}

const (
	demoRAMTotal  = 8 << 30
	demoZramLimit = 4 << 30
	demoSwapTotal = 2 << 30
)

// phase returns a [0,1] pressure wave advancing one step per memory read.
func (d *demoSource) phase() float64 {
	return 0.5 + 0.45*math.Sin(float64(d.tick)/30)
}

func (d *demoSource) Memory(context.Context) (MemoryStats, error) {
	d.tick++
	avail := uint64(float64(demoRAMTotal) * (1 - d.phase()) * 0.9)
	return MemoryStats{TotalBytes: demoRAMTotal, AvailableBytes: avail}, nil
}

func (d *demoSource) Swaps(context.Context) (SwapStats, error) {
	used := uint64(float64(demoSwapTotal) * d.phase() * 0.5)
	return SwapStats{
		ZramTotalBytes:  demoZramLimit,
		ZramUsedBytes:   uint64(float64(demoZramLimit) * d.phase()),
		OtherTotalBytes: demoSwapTotal,
		OtherUsedBytes:  used,
	}, nil
}

func (d *demoSource) Devices(context.Context) (ZramStats, error) {
	compr := uint64(float64(demoZramLimit) * d.phase() * 0.8)
	return ZramStats{
		Algorithms:    []string{"zstd"},
		DisksizeBytes: demoZramLimit,
		DataBytes:     compr * 5 / 2,
		ComprBytes:    compr,
	}, nil
}
