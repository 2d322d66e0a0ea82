// Package temperature alerts when the CPU runs hotter than the configured limit.
package temperature

import (
	"context"
	"fmt"
	"strconv"

	"github.com/doeshing/hostwatch/internal/domain"
	"github.com/doeshing/hostwatch/internal/ports"
)

// Report is the result of one temperature check.
type Report struct {
	Reading   domain.Temperature
	Threshold float64
	domain.ThresholdResult
}

// Service reads the CPU temperature and notifies above threshold.
type Service struct {
	Sensor   ports.TemperatureSensor
	Notifier ports.Notifier
	Logger   ports.Logger
}

// Run performs a single read-compare-notify pass.
func (s *Service) Run(ctx context.Context, cfg domain.Config) (Report, error) {
	report := Report{Threshold: cfg.TempThreshold}

	reading, err := s.Sensor.Read(ctx)
	if err != nil {
		return report, err
	}
	report.Reading = reading
	s.Logger.Info("temperature read", map[string]interface{}{
		"celsius":   reading.Celsius,
		"source":    reading.Source,
		"threshold": cfg.TempThreshold,
	})

	if reading.Celsius <= cfg.TempThreshold {
		return report, nil
	}
	report.Exceeded = true

	if err := s.Notifier.Send(ctx, AlertMessage(cfg.DeviceName, reading.Celsius, cfg.TempThreshold)); err != nil {
		report.NotifyError = err
		s.Logger.Error("temperature alert dispatch failed", err, nil)
		return report, nil
	}
	report.Notified = true
	return report, nil
}

// AlertMessage formats the high temperature alert.
func AlertMessage(device string, celsius, threshold float64) string {
	return fmt.Sprintf("🔥 *High Temperature Alert!* 🔥\n"+
		"🖥 Device: %s\n"+
		"🌡 Current Temp: *%.1f°C*\n"+
		"⚠️ Limit: %s°C",
		device, celsius, strconv.FormatFloat(threshold, 'f', -1, 64))
}
