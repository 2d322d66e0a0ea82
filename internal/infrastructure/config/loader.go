package config

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/hostwatch/internal/domain"
	"github.com/doeshing/hostwatch/internal/pkg/filesystem"
	"github.com/doeshing/hostwatch/internal/ports"
)

// EnvConfigPath overrides the configuration file location.
const EnvConfigPath = "HOSTWATCH_CONFIG"

// FileName is the file searched for when no explicit path is given.
const FileName = "config.json"

// FileLoader loads config.json from an explicit path, $HOSTWATCH_CONFIG, the
// working directory, the binary's directory or /etc/hostwatch, in that order.
type FileLoader struct {
	overridePath string
	lookupEnv    func(string) (string, bool)
	searchPaths  func() []string
}

// NewFileLoader builds a new loader. An empty path enables the search order.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{
		overridePath: path,
		lookupEnv:    os.LookupEnv,
		searchPaths:  defaultSearchPaths,
	}
}

// fileConfig mirrors the on-disk keys. Pointers distinguish absent keys from zero values.
type fileConfig struct {
	DeviceName        *string  `json:"device_name" yaml:"device_name"`
	ServicesToMonitor []string `json:"services_to_monitor" yaml:"services_to_monitor"`
	TelegramBotToken  string   `json:"telegram_bot_token" yaml:"telegram_bot_token"`
	TelegramChatID    chatID   `json:"telegram_chat_id" yaml:"telegram_chat_id"`
	TelegramAPIURL    string   `json:"telegram_api_url" yaml:"telegram_api_url"`
	DiskThreshold     *float64 `json:"disk_threshold_percent" yaml:"disk_threshold_percent"`
	TempThreshold     *float64 `json:"temp_threshold_celsius" yaml:"temp_threshold_celsius"`
	LogFile           string   `json:"log_file" yaml:"log_file"`
}

// chatID accepts both "12345" and 12345, since Telegram ids are often pasted as numbers.
type chatID string

func (c *chatID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = chatID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("telegram_chat_id must be a string or number: %w", err)
	}
	*c = chatID(n.String())
	return nil
}

func (c *chatID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("telegram_chat_id must be a scalar, line %d", node.Line)
	}
	if node.Tag == "!!null" {
		*c = ""
		return nil
	}
	*c = chatID(node.Value)
	return nil
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path, err := l.resolvePath()
	if err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Config{}, fmt.Errorf("%w: %s not found", domain.ErrConfig, path)
		}
		return domain.Config{}, fmt.Errorf("%w: read %s: %v", domain.ErrConfig, path, err)
	}

	raw, err := decode(path, data)
	if err != nil {
		return domain.Config{}, fmt.Errorf("%w: parse %s: %v", domain.ErrConfig, path, err)
	}

	cfg := hydrateDefaults(raw)
	cfg.Path = path
	return cfg, nil
}

// Path returns the file Load would read, or "" when none can be found.
func (l *FileLoader) Path() string {
	path, err := l.resolvePath()
	if err != nil {
		return ""
	}
	return path
}

func (l *FileLoader) resolvePath() (string, error) {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath), nil
	}
	if custom, ok := l.lookupEnv(EnvConfigPath); ok && strings.TrimSpace(custom) != "" {
		return filesystem.ExpandPath(custom), nil
	}

	candidates := l.searchPaths()
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s not found (searched %s)", domain.ErrConfig, FileName, strings.Join(candidates, ", "))
}

func defaultSearchPaths() []string {
	paths := []string{FileName}
	if dir := filesystem.ExecutableDir(); dir != "" {
		paths = append(paths, filepath.Join(dir, FileName))
	}
	return append(paths, filepath.Join("/etc", "hostwatch", FileName))
}

func decode(path string, data []byte) (fileConfig, error) {
	var raw fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fileConfig{}, err
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return fileConfig{}, err
		}
	}
	return raw, nil
}

func hydrateDefaults(raw fileConfig) domain.Config {
	cfg := domain.Config{
		DeviceName:        domain.DefaultDeviceName,
		ServicesToMonitor: raw.ServicesToMonitor,
		Telegram: domain.TelegramConfig{
			BotToken: strings.TrimSpace(raw.TelegramBotToken),
			ChatID:   strings.TrimSpace(string(raw.TelegramChatID)),
			APIURL:   strings.TrimRight(strings.TrimSpace(raw.TelegramAPIURL), "/"),
		},
		DiskThreshold: domain.DefaultDiskThreshold,
		TempThreshold: domain.DefaultTempThreshold,
		LogFile:       raw.LogFile,
	}
	if raw.DeviceName != nil && strings.TrimSpace(*raw.DeviceName) != "" {
		cfg.DeviceName = *raw.DeviceName
	}
	if raw.DiskThreshold != nil {
		cfg.DiskThreshold = *raw.DiskThreshold
	}
	if raw.TempThreshold != nil {
		cfg.TempThreshold = *raw.TempThreshold
	}
	if cfg.Telegram.APIURL == "" {
		cfg.Telegram.APIURL = domain.DefaultTelegramAPIURL
	}
	if cfg.LogFile != "" {
		cfg.LogFile = filesystem.ExpandPath(cfg.LogFile)
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
