// Package sysmem provides the RAM totals provider backed by gopsutil.
package sysmem

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/mem"

	"gitlab.com/tinyland/lab/zram-pulse/collectors"
)

// Provider reads RAM totals via gopsutil's virtual memory API.
type Provider struct {
	// virtualMemory is overridable for tests.
	virtualMemory func(ctx context.Context) (*mem.VirtualMemoryStat, error)
}

// New creates a memory provider reading from the host.
func New() *Provider {
	return &Provider{virtualMemory: mem.VirtualMemoryWithContext}
}

// Memory implements collectors.MemoryProvider.
func (p *Provider) Memory(ctx context.Context) (collectors.MemoryStats, error) {
	vm, err := p.virtualMemory(ctx)
	if err != nil {
		return collectors.MemoryStats{}, fmt.Errorf("read virtual memory: %w", err)
	}
	return collectors.MemoryStats{
		TotalBytes:     vm.Total,
		AvailableBytes: vm.Available,
	}, nil
}
