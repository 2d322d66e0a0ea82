package sysinfo

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/hostwatch/internal/domain"
)

func TestDiskProbeComputesPercentFromUsedAndTotal(t *testing.T) {
	probe := NewDiskProbe()
	probe.usage = func(_ context.Context, path string) (*disk.UsageStat, error) {
		assert.Equal(t, "/", path)
		return &disk.UsageStat{Total: 200, Used: 150, Free: 40, UsedPercent: 78.9}, nil
	}

	usage, err := probe.Usage(context.Background(), "/")
	require.NoError(t, err)
	assert.Equal(t, uint64(200), usage.TotalBytes)
	assert.Equal(t, uint64(150), usage.UsedBytes)
	assert.InDelta(t, 75.0, usage.UsedPercent, 0.0001)
}

func TestDiskProbeErrors(t *testing.T) {
	probe := NewDiskProbe()
	probe.usage = func(context.Context, string) (*disk.UsageStat, error) {
		return nil, errors.New("statfs: no such file")
	}
	_, err := probe.Usage(context.Background(), "/missing")
	assert.Error(t, err)

	probe.usage = func(context.Context, string) (*disk.UsageStat, error) {
		return &disk.UsageStat{}, nil
	}
	_, err = probe.Usage(context.Background(), "/")
	assert.Error(t, err)
}

func TestDiskProbeReadsRealFilesystem(t *testing.T) {
	usage, err := NewDiskProbe().Usage(context.Background(), os.TempDir())
	require.NoError(t, err)
	assert.Greater(t, usage.TotalBytes, uint64(0))
}

func TestThermalSensorReadsZoneFile(t *testing.T) {
	zone := filepath.Join(t.TempDir(), "temp")
	require.NoError(t, os.WriteFile(zone, []byte("48312\n"), 0o644))

	temp, err := NewThermalSensor(zone).Read(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 48.312, temp.Celsius, 0.0001)
	assert.Equal(t, zone, temp.Source)
}

func TestThermalSensorRejectsGarbage(t *testing.T) {
	zone := filepath.Join(t.TempDir(), "temp")
	require.NoError(t, os.WriteFile(zone, []byte("hot"), 0o644))

	_, err := NewThermalSensor(zone).Read(context.Background())
	assert.Error(t, err)
}

func TestThermalSensorFallsBackToHottestSensor(t *testing.T) {
	sensor := NewThermalSensor(filepath.Join(t.TempDir(), "missing"))
	sensor.sensors = func(context.Context) ([]host.TemperatureStat, error) {
		return []host.TemperatureStat{
			{SensorKey: "acpitz", Temperature: 41},
			{SensorKey: "coretemp_package_id_0", Temperature: 63.5},
			{SensorKey: "nvme_composite", Temperature: 0},
		}, errors.New("partial: 1 sensor unreadable")
	}

	temp, err := sensor.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 63.5, temp.Celsius)
	assert.Equal(t, "coretemp_package_id_0", temp.Source)
}

func TestThermalSensorUnavailable(t *testing.T) {
	sensor := NewThermalSensor(filepath.Join(t.TempDir(), "missing"))
	sensor.sensors = func(context.Context) ([]host.TemperatureStat, error) {
		return nil, nil
	}
	_, err := sensor.Read(context.Background())
	assert.ErrorIs(t, err, domain.ErrSensorUnavailable)
}

func TestThermalSensorPermissionErrorDoesNotFallBack(t *testing.T) {
	sensor := NewThermalSensor("/zone")
	sensor.readFile = func(string) ([]byte, error) { return nil, fs.ErrPermission }
	sensor.sensors = func(context.Context) ([]host.TemperatureStat, error) {
		t.Fatal("sensors must not be consulted")
		return nil, nil
	}
	_, err := sensor.Read(context.Background())
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestPlatformDescribe(t *testing.T) {
	p := NewPlatform()
	p.info = func(context.Context) (*host.InfoStat, error) {
		return &host.InfoStat{OS: "linux", Platform: "ubuntu", PlatformVersion: "24.04", KernelArch: "aarch64"}, nil
	}
	assert.Equal(t, "ubuntu 24.04 (aarch64)", p.Describe(context.Background()))

	p.info = func(context.Context) (*host.InfoStat, error) {
		return &host.InfoStat{OS: "linux"}, nil
	}
	assert.Equal(t, "linux", p.Describe(context.Background()))

	p.info = func(context.Context) (*host.InfoStat, error) { return nil, errors.New("no /etc/os-release") }
	assert.Equal(t, "unknown", p.Describe(context.Background()))
}

func TestRouteResolverUsesLocalAddress(t *testing.T) {
	r := NewRouteResolver("")
	assert.Equal(t, domain.RouteProbeAddress, r.target)

	r = NewRouteResolver("127.0.0.1:9")
	addr := r.DefaultRouteIP(context.Background())
	require.True(t, addr.Resolved)
	assert.Equal(t, "127.0.0.1", addr.IP)
}

func TestRouteResolverUnresolved(t *testing.T) {
	r := NewRouteResolver("")
	r.dial = func(context.Context, string, string) (net.Conn, error) {
		return nil, errors.New("network is unreachable")
	}
	addr := r.DefaultRouteIP(context.Background())
	assert.False(t, addr.Resolved)
	assert.Equal(t, domain.UnresolvedAddress, addr.IP)
}
