package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"

	configapp "github.com/doeshing/hostwatch/internal/application/config"
	"github.com/doeshing/hostwatch/internal/domain"
	"github.com/doeshing/hostwatch/internal/ports"
)

// BinaryLocator reports where the service manager binary lives.
type BinaryLocator interface {
	Available() (string, error)
}

// Service runs environment diagnostics. Every check is read-only.
type Service struct {
	ConfigProvider ports.ConfigProvider
	ServiceManager BinaryLocator
	Privilege      ports.PrivilegeChecker
	Sensor         ports.TemperatureSensor
	Disk           ports.DiskProbe
}

// Run executes checks and returns a report. The error is non-nil when any
// check failed; the report is complete either way.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err == nil {
		err = configapp.Validate(cfg)
	}
	if err != nil {
		checks = append(checks, fail("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("loaded %s (%d services)", cfg.Path, len(cfg.ServicesToMonitor))))
		checks = append(checks, telegramCheck(cfg.Telegram))
	}

	if s.ServiceManager != nil {
		if path, err := s.ServiceManager.Available(); err != nil {
			checks = append(checks, fail("Service manager", err.Error()))
		} else {
			checks = append(checks, ok("Service manager", path))
		}
	}

	if s.Privilege != nil {
		if s.Privilege.Privileged() {
			checks = append(checks, ok("Privilege", "running as root"))
		} else {
			checks = append(checks, warn("Privilege", "not root: watchdog restarts will be refused"))
		}
	}

	if s.Sensor != nil {
		if reading, err := s.Sensor.Read(ctx); err != nil {
			checks = append(checks, warn("Temperature", err.Error()))
		} else {
			checks = append(checks, ok("Temperature", fmt.Sprintf("%.1f°C from %s", reading.Celsius, reading.Source)))
		}
	}

	if s.Disk != nil {
		if usage, err := s.Disk.Usage(ctx, domain.DefaultDiskPath); err != nil {
			checks = append(checks, fail("Disk usage", err.Error()))
		} else {
			checks = append(checks, ok("Disk usage", fmt.Sprintf("%.1f%% of %s used", usage.UsedPercent, humanize.IBytes(usage.TotalBytes))))
		}
	}

	report := domain.HealthReport{Checks: checks}
	if report.Failed() {
		return report, errors.New("one or more checks failed")
	}
	return report, nil
}

func telegramCheck(tg domain.TelegramConfig) domain.HealthCheck {
	switch {
	case tg.BotToken == "" && tg.ChatID == "":
		return warn("Telegram", "telegram_bot_token and telegram_chat_id missing: alerts will not be delivered")
	case tg.BotToken == "":
		return warn("Telegram", "telegram_bot_token missing: alerts will not be delivered")
	case tg.ChatID == "":
		return warn("Telegram", "telegram_chat_id missing: alerts will not be delivered")
	default:
		return ok("Telegram", "credentials present for "+tg.APIURL)
	}
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
