package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doeshing/hostwatch/internal/domain"
)

func validConfig() domain.Config {
	return domain.Config{
		DeviceName:        "RPi",
		ServicesToMonitor: []string{"nginx", "sshd.service"},
		DiskThreshold:     90,
		TempThreshold:     80,
		Telegram:          domain.TelegramConfig{APIURL: domain.DefaultTelegramAPIURL},
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	assert.NoError(t, Validate(validConfig()))
}

func TestValidateAllowsMissingCredentialsAndEmptyList(t *testing.T) {
	cfg := validConfig()
	cfg.ServicesToMonitor = nil
	cfg.Telegram = domain.TelegramConfig{}
	assert.NoError(t, Validate(cfg))
}

func TestValidateRejections(t *testing.T) {
	cases := map[string]func(*domain.Config){
		"empty device":     func(c *domain.Config) { c.DeviceName = " " },
		"empty service":    func(c *domain.Config) { c.ServicesToMonitor = []string{""} },
		"padded service":   func(c *domain.Config) { c.ServicesToMonitor = []string{" nginx"} },
		"option injection": func(c *domain.Config) { c.ServicesToMonitor = []string{"--now"} },
		"path in name":     func(c *domain.Config) { c.ServicesToMonitor = []string{"../etc"} },
		"duplicate":        func(c *domain.Config) { c.ServicesToMonitor = []string{"cron", "cron"} },
		"disk zero":        func(c *domain.Config) { c.DiskThreshold = 0 },
		"disk over 100":    func(c *domain.Config) { c.DiskThreshold = 101 },
		"temp below zero":  func(c *domain.Config) { c.TempThreshold = -300 },
		"relative api url": func(c *domain.Config) { c.Telegram.APIURL = "api.telegram.org" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			mutate(&cfg)
			assert.ErrorIs(t, Validate(cfg), domain.ErrConfig)
		})
	}
}
