package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/doeshing/hostwatch/internal/domain"
	"github.com/doeshing/hostwatch/internal/ports"
)

// ThermalSensor reads a sysfs thermal zone and falls back to the hottest
// sensor gopsutil can find when the zone file does not exist.
type ThermalSensor struct {
	zonePath string
	readFile func(string) ([]byte, error)
	sensors  func(context.Context) ([]host.TemperatureStat, error)
}

// NewThermalSensor builds a sensor for zonePath, defaulting to thermal_zone0.
func NewThermalSensor(zonePath string) *ThermalSensor {
	if zonePath == "" {
		zonePath = domain.DefaultThermalZone
	}
	return &ThermalSensor{
		zonePath: zonePath,
		readFile: os.ReadFile,
		sensors:  host.SensorsTemperaturesWithContext,
	}
}

// Read implements ports.TemperatureSensor.
func (s *ThermalSensor) Read(ctx context.Context) (domain.Temperature, error) {
	data, err := s.readFile(s.zonePath)
	if err == nil {
		return parseMillidegrees(s.zonePath, data)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return domain.Temperature{}, fmt.Errorf("read %s: %w", s.zonePath, err)
	}
	return s.hottestSensor(ctx)
}

func parseMillidegrees(source string, data []byte) (domain.Temperature, error) {
	milli, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return domain.Temperature{}, fmt.Errorf("parse %s: %w", source, err)
	}
	return domain.Temperature{Celsius: milli / 1000.0, Source: source}, nil
}

func (s *ThermalSensor) hottestSensor(ctx context.Context) (domain.Temperature, error) {
	// gopsutil returns partial results alongside warnings, so readings win over err.
	temps, err := s.sensors(ctx)
	var best *host.TemperatureStat
	for i := range temps {
		if temps[i].Temperature <= 0 {
			continue
		}
		if best == nil || temps[i].Temperature > best.Temperature {
			best = &temps[i]
		}
	}
	if best == nil {
		if err != nil {
			return domain.Temperature{}, fmt.Errorf("%w: %s missing and sensors failed: %v", domain.ErrSensorUnavailable, s.zonePath, err)
		}
		return domain.Temperature{}, fmt.Errorf("%w: %s missing and no sensors reported", domain.ErrSensorUnavailable, s.zonePath)
	}
	return domain.Temperature{Celsius: best.Temperature, Source: best.SensorKey}, nil
}

var _ ports.TemperatureSensor = (*ThermalSensor)(nil)
