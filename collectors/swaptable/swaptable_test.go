package swaptable

import (
	"context"
	"errors"
	"testing"

	"github.com/shirou/gopsutil/v4/mem"

	"gitlab.com/tinyland/lab/zram-pulse/collectors"
)

func fixedDevices(devices []*mem.SwapDevice, err error) func(context.Context) ([]*mem.SwapDevice, error) {
	return func(context.Context) ([]*mem.SwapDevice, error) {
		return devices, err
	}
}

func TestSwaps_PartitionsByBackingDevice(t *testing.T) {
	p := New()
	p.swapDevices = fixedDevices([]*mem.SwapDevice{
		{Name: "/dev/zram0", UsedBytes: 100, FreeBytes: 900},
		{Name: "/dev/zram1", UsedBytes: 50, FreeBytes: 450},
		{Name: "/dev/sda2", UsedBytes: 200, FreeBytes: 800},
		{Name: "/swapfile", UsedBytes: 10, FreeBytes: 90},
	}, nil)

	stats, err := p.Swaps(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.ZramTotalBytes != 1500 || stats.ZramUsedBytes != 150 {
		t.Errorf("zram partition = %d/%d, want 1500/150", stats.ZramTotalBytes, stats.ZramUsedBytes)
	}
	if stats.OtherTotalBytes != 1100 || stats.OtherUsedBytes != 210 {
		t.Errorf("other partition = %d/%d, want 1100/210", stats.OtherTotalBytes, stats.OtherUsedBytes)
	}
}

func TestSwaps_EmptyTable(t *testing.T) {
	p := New()
	p.swapDevices = fixedDevices(nil, nil)

	stats, err := p.Swaps(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats != (collectors.SwapStats{}) {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestSwaps_ReadFailure(t *testing.T) {
	p := New()
	p.swapDevices = fixedDevices(nil, errors.New("proc unreadable"))

	if _, err := p.Swaps(context.Background()); err == nil {
		t.Fatal("expected an error when the swap table cannot be read")
	}
}

func TestSwaps_NilEntriesSkipped(t *testing.T) {
	p := New()
	p.swapDevices = fixedDevices([]*mem.SwapDevice{
		nil,
		{Name: "/dev/sda2", UsedBytes: 5, FreeBytes: 5},
	}, nil)

	stats, err := p.Swaps(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.OtherTotalBytes != 10 {
		t.Errorf("other total = %d, want 10", stats.OtherTotalBytes)
	}
}
