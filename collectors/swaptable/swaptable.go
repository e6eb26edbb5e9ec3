// Package swaptable provides the swap-table provider. It reads the host's
// swap devices via gopsutil and partitions them by backing device: entries
// on /dev/zram* count toward the zram pool, everything else is "other"
// swap. The capacity model needs the split so zram swap is not counted
// twice against the device table.
package swaptable

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/mem"

	"gitlab.com/tinyland/lab/zram-pulse/collectors"
)

// zramDevicePrefix identifies swap entries backed by a zram device.
const zramDevicePrefix = "/dev/zram"

// Provider reads and partitions the swap device table.
type Provider struct {
	// swapDevices is overridable for tests.
	swapDevices func(ctx context.Context) ([]*mem.SwapDevice, error)
}

// New creates a swap-table provider reading from the host.
func New() *Provider {
	return &Provider{swapDevices: mem.SwapDevicesWithContext}
}

// Swaps implements collectors.SwapProvider.
func (p *Provider) Swaps(ctx context.Context) (collectors.SwapStats, error) {
	devices, err := p.swapDevices(ctx)
	if err != nil {
		return collectors.SwapStats{}, fmt.Errorf("read swap devices: %w", err)
	}

	var stats collectors.SwapStats
	for _, dev := range devices {
		if dev == nil {
			continue
		}
		total := dev.UsedBytes + dev.FreeBytes
		if strings.HasPrefix(dev.Name, zramDevicePrefix) {
			stats.ZramTotalBytes += total
			stats.ZramUsedBytes += dev.UsedBytes
		} else {
			stats.OtherTotalBytes += total
			stats.OtherUsedBytes += dev.UsedBytes
		}
	}
	return stats, nil
}
