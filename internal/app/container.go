package app

import (
	"context"
	"io"

	"github.com/google/uuid"

	configapp "github.com/doeshing/hostwatch/internal/application/config"
	"github.com/doeshing/hostwatch/internal/application/doctor"
	"github.com/doeshing/hostwatch/internal/application/ipnotify"
	"github.com/doeshing/hostwatch/internal/application/storage"
	"github.com/doeshing/hostwatch/internal/application/temperature"
	"github.com/doeshing/hostwatch/internal/application/watchdog"
	"github.com/doeshing/hostwatch/internal/domain"
	"github.com/doeshing/hostwatch/internal/infrastructure/config"
	"github.com/doeshing/hostwatch/internal/infrastructure/privilege"
	"github.com/doeshing/hostwatch/internal/infrastructure/sysinfo"
	"github.com/doeshing/hostwatch/internal/infrastructure/systemd"
	"github.com/doeshing/hostwatch/internal/infrastructure/telegram"
	"github.com/doeshing/hostwatch/internal/pkg/logger"
	"github.com/doeshing/hostwatch/internal/ports"
)

// Options controls how the container is built.
type Options struct {
	ConfigPath string
	Verbose    bool
	// LogOutput receives console log lines; defaults to stderr.
	LogOutput io.Writer
}

// ServiceManager is what the container needs from the service manager adapter.
type ServiceManager interface {
	ports.ServiceManager
	doctor.BinaryLocator
}

// Container wires up application services with infrastructure adapters.
//
// Configuration is not read while building; commands call LoadConfig so that
// the privilege check can run first.
type Container struct {
	RunID          string
	Logger         ports.Logger
	ConfigProvider ports.ConfigProvider
	ServiceManager ServiceManager
	Privilege      ports.PrivilegeChecker
	Disk           ports.DiskProbe
	Sensor         ports.TemperatureSensor
	Resolver       ports.AddressResolver
	Platform       ports.PlatformDescriber
	NewNotifier    func(domain.TelegramConfig) ports.Notifier

	logOptions logger.Options
	closer     io.Closer
}

// BuildContainer constructs the dependency graph.
func BuildContainer(opts Options) *Container {
	runID := uuid.NewString()
	logOpts := logger.Options{Verbose: opts.Verbose, Output: opts.LogOutput}
	log := logger.New(logOpts).With(map[string]interface{}{"run_id": runID})

	return &Container{
		RunID:          runID,
		Logger:         log,
		ConfigProvider: config.NewFileLoader(opts.ConfigPath),
		ServiceManager: systemd.NewSystemctl(""),
		Privilege:      privilege.NewRoot(),
		Disk:           sysinfo.NewDiskProbe(),
		Sensor:         sysinfo.NewThermalSensor(""),
		Resolver:       sysinfo.NewRouteResolver(""),
		Platform:       sysinfo.NewPlatform(),
		NewNotifier: func(cfg domain.TelegramConfig) ports.Notifier {
			return telegram.NewClient(cfg)
		},
		logOptions: logOpts,
		closer:     log,
	}
}

// LoadConfig reads and validates the configuration. When the file names a
// log_file the logger is rebuilt with a rotating file sink.
func (c *Container) LoadConfig(ctx context.Context) (domain.Config, error) {
	cfg, err := c.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.Config{}, err
	}
	if err := configapp.Validate(cfg); err != nil {
		return domain.Config{}, err
	}
	if cfg.LogFile != "" && c.closer != nil {
		opts := c.logOptions
		opts.File = cfg.LogFile
		log := logger.New(opts).With(map[string]interface{}{"run_id": c.RunID})
		_ = c.closer.Close()
		c.Logger = log
		c.closer = log
	}
	c.Logger.Debug("configuration loaded", map[string]interface{}{
		"path":     cfg.Path,
		"device":   cfg.DeviceName,
		"services": len(cfg.ServicesToMonitor),
	})
	return cfg, nil
}

// Close flushes the logger.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// Watchdog builds the watchdog use case for cfg.
func (c *Container) Watchdog(cfg domain.Config) *watchdog.Service {
	return watchdog.New(c.ServiceManager, c.NewNotifier(cfg.Telegram), c.Logger)
}

// Storage builds the disk usage check for cfg.
func (c *Container) Storage(cfg domain.Config) *storage.Service {
	return &storage.Service{Probe: c.Disk, Notifier: c.NewNotifier(cfg.Telegram), Logger: c.Logger}
}

// Temperature builds the CPU temperature check for cfg.
func (c *Container) Temperature(cfg domain.Config) *temperature.Service {
	return &temperature.Service{Sensor: c.Sensor, Notifier: c.NewNotifier(cfg.Telegram), Logger: c.Logger}
}

// IPNotify builds the address announcement for cfg.
func (c *Container) IPNotify(cfg domain.Config) *ipnotify.Service {
	return &ipnotify.Service{
		Resolver: c.Resolver,
		Platform: c.Platform,
		Notifier: c.NewNotifier(cfg.Telegram),
		Logger:   c.Logger,
	}
}

// Doctor builds the diagnostics service.
func (c *Container) Doctor() *doctor.Service {
	return &doctor.Service{
		ConfigProvider: c.ConfigProvider,
		ServiceManager: c.ServiceManager,
		Privilege:      c.Privilege,
		Sensor:         c.Sensor,
		Disk:           c.Disk,
	}
}
