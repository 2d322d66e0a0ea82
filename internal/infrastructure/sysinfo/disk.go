// Package sysinfo reads host signals: disk usage, CPU temperature, platform
// details and the default route address.
package sysinfo

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/doeshing/hostwatch/internal/domain"
	"github.com/doeshing/hostwatch/internal/ports"
)

// DiskProbe reads mount point usage through gopsutil.
type DiskProbe struct {
	usage func(ctx context.Context, path string) (*disk.UsageStat, error)
}

// NewDiskProbe builds a probe backed by the real filesystem.
func NewDiskProbe() *DiskProbe {
	return &DiskProbe{usage: disk.UsageWithContext}
}

// Usage implements ports.DiskProbe.
func (p *DiskProbe) Usage(ctx context.Context, path string) (domain.DiskUsage, error) {
	stat, err := p.usage(ctx, path)
	if err != nil {
		return domain.DiskUsage{}, fmt.Errorf("disk usage of %s: %w", path, err)
	}
	if stat.Total == 0 {
		return domain.DiskUsage{}, fmt.Errorf("disk usage of %s: filesystem reports zero size", path)
	}
	return domain.DiskUsage{
		Path:        path,
		TotalBytes:  stat.Total,
		UsedBytes:   stat.Used,
		FreeBytes:   stat.Free,
		UsedPercent: float64(stat.Used) / float64(stat.Total) * 100,
	}, nil
}

var _ ports.DiskProbe = (*DiskProbe)(nil)
