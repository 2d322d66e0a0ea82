// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application core (watchdog, threshold checks, doctor) depends only on the
// interfaces declared here. Concrete adapters live under internal/infrastructure:
// systemctl for the service manager, the Telegram Bot API for notifications,
// gopsutil and sysfs for host readings.
package ports

import (
	"context"

	"github.com/doeshing/hostwatch/internal/domain"
)

// ConfigProvider loads the configuration from persistent storage.
// Implementations typically read config.json next to the binary or under /etc/hostwatch.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// ServiceManager is the narrow view of the host service manager the watchdog needs.
//
// Query returns the raw status word for a unit. A non-nil error means the query
// itself could not be performed, not that the unit is down.
// Restart asks the manager to restart the unit and returns an error when the
// manager reports failure.
type ServiceManager interface {
	Query(ctx context.Context, name string) (string, error)
	Restart(ctx context.Context, name string) error
}

// Notifier delivers a formatted message to the single configured chat.
// A nil error means the chat API accepted the message.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// PrivilegeChecker reports whether the process may restart services.
type PrivilegeChecker interface {
	Privileged() bool
}

// DiskProbe reads usage of a mount point.
type DiskProbe interface {
	Usage(ctx context.Context, path string) (domain.DiskUsage, error)
}

// TemperatureSensor reads the current CPU temperature.
type TemperatureSensor interface {
	Read(ctx context.Context) (domain.Temperature, error)
}

// AddressResolver finds the address used by the default route. It never fails;
// an unresolved address is reported through domain.HostAddress.Resolved.
type AddressResolver interface {
	DefaultRouteIP(ctx context.Context) domain.HostAddress
}

// PlatformDescriber returns a short human label for the operating system.
type PlatformDescriber interface {
	Describe(ctx context.Context) string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stderr, rotating files).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
