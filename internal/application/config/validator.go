package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/doeshing/hostwatch/internal/domain"
)

// absoluteZero is the lowest temperature threshold that can make sense.
const absoluteZero = -273.15

// Validate ensures config structure is consistent. Missing Telegram credentials
// are not an error here: the notifier fails closed on its own.
func Validate(cfg domain.Config) error {
	if strings.TrimSpace(cfg.DeviceName) == "" {
		return invalid("device_name must not be empty")
	}
	if err := validateServices(cfg.ServicesToMonitor); err != nil {
		return err
	}
	if err := validateThresholds(cfg.DiskThreshold, cfg.TempThreshold); err != nil {
		return err
	}
	if err := validateTelegram(cfg.Telegram); err != nil {
		return err
	}
	return nil
}

func validateServices(services []string) error {
	seen := make(map[string]struct{}, len(services))
	for i, name := range services {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return invalid("services_to_monitor[%d] is empty", i)
		}
		if trimmed != name {
			return invalid("services_to_monitor[%d] %q has surrounding whitespace", i, name)
		}
		if strings.HasPrefix(name, "-") {
			return invalid("services_to_monitor[%d] %q must not start with '-'", i, name)
		}
		if strings.ContainsAny(name, " \t\n/") {
			return invalid("services_to_monitor[%d] %q is not a valid unit name", i, name)
		}
		if _, dup := seen[name]; dup {
			return invalid("services_to_monitor lists %q more than once", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

func validateThresholds(disk, temp float64) error {
	if disk <= 0 || disk > 100 {
		return invalid("disk_threshold_percent must be in (0, 100], got %g", disk)
	}
	if temp <= absoluteZero {
		return invalid("temp_threshold_celsius must be above %g, got %g", absoluteZero, temp)
	}
	return nil
}

func validateTelegram(tg domain.TelegramConfig) error {
	if tg.APIURL == "" {
		return nil
	}
	u, err := url.Parse(tg.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return invalid("telegram_api_url %q is not an absolute URL", tg.APIURL)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", domain.ErrConfig, fmt.Sprintf(format, args...))
}
