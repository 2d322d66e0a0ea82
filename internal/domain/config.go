package domain

import "strings"

// Config is the resolved hostwatch configuration. It is loaded once at process
// start and handed to every component by value.
type Config struct {
	Path              string         `yaml:"-"`
	DeviceName        string         `yaml:"device_name"`
	ServicesToMonitor []string       `yaml:"services_to_monitor"`
	Telegram          TelegramConfig `yaml:",inline"`
	DiskThreshold     float64        `yaml:"disk_threshold_percent"`
	TempThreshold     float64        `yaml:"temp_threshold_celsius"`
	LogFile           string         `yaml:"log_file,omitempty"`
}

// TelegramConfig holds the bot credentials and the single destination chat.
type TelegramConfig struct {
	BotToken string `yaml:"telegram_bot_token"`
	ChatID   string `yaml:"telegram_chat_id"`
	APIURL   string `yaml:"telegram_api_url"`
}

// HasCredentials reports whether both the token and the chat id are present.
func (t TelegramConfig) HasCredentials() bool {
	return strings.TrimSpace(t.BotToken) != "" && strings.TrimSpace(t.ChatID) != ""
}

// Redacted returns a copy that is safe to print.
func (c Config) Redacted() Config {
	out := c
	out.ServicesToMonitor = append([]string(nil), c.ServicesToMonitor...)
	if out.Telegram.BotToken != "" {
		out.Telegram.BotToken = "***"
	}
	return out
}
