// Package zramdev provides the zram device-table provider. There is no
// kernel API surface for the per-device compression stats that zramctl
// aggregates from sysfs, so the provider shells out to zramctl itself and
// parses its column output by header position.
package zramdev

import (
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"github.com/spf13/cast"

	"gitlab.com/tinyland/lab/zram-pulse/collectors"
)

// DefaultCommand is the zramctl binary invoked when no override is configured.
const DefaultCommand = "zramctl"

// Column headers the provider depends on, as printed by util-linux zramctl.
const (
	colAlgorithm = "ALGORITHM"
	colDisksize  = "DISKSIZE"
	colData      = "DATA"
	colCompr     = "COMPR"
)

// Provider reads the zram device table via zramctl --bytes.
type Provider struct {
	command string

	// runCommand is overridable for tests.
	runCommand func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// New creates a zram provider invoking the given zramctl binary.
// An empty command falls back to DefaultCommand.
func New(command string) *Provider {
	if command == "" {
		command = DefaultCommand
	}
	return &Provider{
		command: command,
		runCommand: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
	}
}

// Devices implements collectors.ZramProvider. It returns
// collectors.ErrNoDevices when zramctl reports no active device.
func (p *Provider) Devices(ctx context.Context) (collectors.ZramStats, error) {
	out, err := p.runCommand(ctx, p.command, "--bytes")
	if err != nil {
		return collectors.ZramStats{}, fmt.Errorf("run %s: %w", p.command, err)
	}
	return parseTable(string(out))
}

// parseTable sums the device table across rows. Column positions are taken
// from the header line so locale or version column reordering is tolerated.
func parseTable(out string) (collectors.ZramStats, error) {
	if strings.Contains(strings.ToLower(out), "no devices found") {
		return collectors.ZramStats{}, collectors.ErrNoDevices
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		return collectors.ZramStats{}, collectors.ErrNoDevices
	}

	header := strings.Fields(lines[0])
	idx := map[string]int{}
	for i, name := range header {
		idx[name] = i
	}
	idxAlgo, okAlgo := idx[colAlgorithm]
	idxDisksize, okDisksize := idx[colDisksize]
	idxData, okData := idx[colData]
	idxCompr, okCompr := idx[colCompr]
	if !okAlgo || !okDisksize || !okData || !okCompr {
		return collectors.ZramStats{}, fmt.Errorf("unexpected zramctl header %q", lines[0])
	}

	var stats collectors.ZramStats
	algos := map[string]bool{}
	maxIdx := max(idxAlgo, idxDisksize, idxData, idxCompr)

	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) <= maxIdx {
			continue
		}
		algos[strings.ToLower(fields[idxAlgo])] = true
		stats.DisksizeBytes += cast.ToUint64(fields[idxDisksize])
		stats.DataBytes += cast.ToUint64(fields[idxData])
		stats.ComprBytes += cast.ToUint64(fields[idxCompr])
	}

	for a := range algos {
		stats.Algorithms = append(stats.Algorithms, a)
	}
	sort.Strings(stats.Algorithms)
	return stats, nil
}
