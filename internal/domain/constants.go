package domain

import "time"

// Defaults applied when the configuration file omits a key.
const (
	DefaultDeviceName     = "RPi"
	DefaultDiskThreshold  = 90.0
	DefaultTempThreshold  = 80.0
	DefaultTelegramAPIURL = "https://api.telegram.org"
)

// Timing constants
const (
	// SettleInterval is the pause between a restart and the recheck. It is fixed.
	SettleInterval = 2 * time.Second
	// DispatchTimeout bounds a single chat API call.
	DispatchTimeout = 10 * time.Second
)

// Host paths and probes
const (
	// DefaultDiskPath is the mount point the storage check inspects.
	DefaultDiskPath = "/"
	// DefaultThermalZone is the millidegree file read by the temperature check.
	DefaultThermalZone = "/sys/class/thermal/thermal_zone0/temp"
	// RouteProbeAddress is dialled over UDP to learn the default route address. No packets are sent.
	RouteProbeAddress = "8.8.8.8:80"
	// UnresolvedAddress is reported when the route address cannot be determined.
	UnresolvedAddress = "Unable to determine IP"
)

