package domain

// DiskUsage is a point-in-time usage sample of one mount point.
type DiskUsage struct {
	Path        string
	TotalBytes  uint64
	UsedBytes   uint64
	FreeBytes   uint64
	UsedPercent float64
}

// Temperature is a CPU temperature reading.
type Temperature struct {
	Celsius float64
	// Source names the thermal zone file or sensor key the value came from.
	Source string
}

// HostAddress is the address the host uses on its default route.
type HostAddress struct {
	IP       string
	Resolved bool
}

// ThresholdResult is the outcome of a read-compare-notify check.
type ThresholdResult struct {
	Exceeded    bool
	Notified    bool
	NotifyError error
}
