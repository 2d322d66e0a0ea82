// Package storage alerts when the root filesystem is fuller than the configured threshold.
package storage

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/hostwatch/internal/domain"
	"github.com/doeshing/hostwatch/internal/ports"
)

const gib = 1 << 30

// Report is the result of one storage check.
type Report struct {
	Usage     domain.DiskUsage
	Threshold float64
	domain.ThresholdResult
}

// Service reads disk usage and notifies when it is above threshold.
type Service struct {
	Probe    ports.DiskProbe
	Notifier ports.Notifier
	Logger   ports.Logger
	// Path defaults to domain.DefaultDiskPath.
	Path string
}

// Run performs a single read-compare-notify pass. An error means the usage
// could not be read; a failed dispatch is recorded in the report instead.
func (s *Service) Run(ctx context.Context, cfg domain.Config) (Report, error) {
	path := s.Path
	if path == "" {
		path = domain.DefaultDiskPath
	}
	report := Report{Threshold: cfg.DiskThreshold}

	usage, err := s.Probe.Usage(ctx, path)
	if err != nil {
		return report, err
	}
	report.Usage = usage
	s.Logger.Info("disk usage read", map[string]interface{}{
		"path":    path,
		"percent": usage.UsedPercent,
		"used":    humanize.IBytes(usage.UsedBytes),
		"total":   humanize.IBytes(usage.TotalBytes),
	})

	if usage.UsedPercent <= cfg.DiskThreshold {
		return report, nil
	}
	report.Exceeded = true

	if err := s.Notifier.Send(ctx, AlertMessage(cfg.DeviceName, usage, cfg.DiskThreshold)); err != nil {
		report.NotifyError = err
		s.Logger.Error("storage alert dispatch failed", err, nil)
		return report, nil
	}
	report.Notified = true
	return report, nil
}

// AlertMessage formats the low disk space alert. Free space is total minus
// used, which includes blocks reserved for root.
func AlertMessage(device string, usage domain.DiskUsage, threshold float64) string {
	freeGB := float64(usage.TotalBytes-usage.UsedBytes) / gib
	return fmt.Sprintf("💾 *Low Disk Space Alert!* 💾\n"+
		"🖥 Device: %s\n"+
		"📊 Usage: *%.1f%%*\n"+
		"📦 Free: %.1f GB\n"+
		"⚠️ Threshold: %s%%",
		device, usage.UsedPercent, freeGB, strconv.FormatFloat(threshold, 'f', -1, 64))
}
