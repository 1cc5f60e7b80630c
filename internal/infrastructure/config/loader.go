package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/brief-go/assets"
	configapp "github.com/doeshing/brief-go/internal/application/config"
	"github.com/doeshing/brief-go/internal/domain"
	"github.com/doeshing/brief-go/internal/pkg/filesystem"
	"github.com/doeshing/brief-go/internal/ports"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "BRIEF_CONFIG"

// FileLoader loads YAML configuration from ~/.brief/config.yaml (overridable via BRIEF_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is created from defaults.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := defaultConfig()
			if err := l.Save(cfg); err != nil {
				return domain.Config{}, fmt.Errorf("write default config: %w", err)
			}
			return cfg, nil
		}
		return domain.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg = hydrateDefaults(cfg)
	if err := configapp.Validate(cfg); err != nil {
		return domain.Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Path returns the resolved config file path.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

// Save writes the given config back to disk.
func (l *FileLoader) Save(cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	path := l.resolvePath()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

// Reset overwrites the config with defaults, keeping a backup of the old file.
func (l *FileLoader) Reset() (domain.Config, string, error) {
	backup, err := l.Backup()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return domain.Config{}, "", err
	}
	cfg := defaultConfig()
	if err := l.Save(cfg); err != nil {
		return domain.Config{}, "", err
	}
	return cfg, backup, nil
}

// Backup copies the current config file to a timestamped backup.
func (l *FileLoader) Backup() (string, error) {
	path := l.resolvePath()
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	backup := fmt.Sprintf("%s.%s.bak", path, time.Now().Format("20060102T150405"))
	if err := os.WriteFile(backup, data, domain.SecureFilePermissions); err != nil {
		return "", err
	}
	return backup, nil
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.AppDir(), "config.yaml")
}

func defaultConfig() domain.Config {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		// Embedded YAML is compiled in; hydrateDefaults still yields a usable config.
		cfg = domain.Config{}
	}
	return hydrateDefaults(cfg)
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = domain.DefaultAPIBaseURL
	}
	if cfg.API.Host == "" {
		cfg.API.Host = domain.DefaultAPIHost
	}
	if cfg.API.AuthEnvVar == "" {
		cfg.API.AuthEnvVar = domain.DefaultAuthEnvVar
	}
	if cfg.API.Length == 0 {
		cfg.API.Length = domain.DefaultSummaryLength
	}
	if cfg.API.TimeoutSeconds == 0 {
		cfg.API.TimeoutSeconds = domain.DefaultTimeoutSeconds
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = domain.StorageBackendFile
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "~/.brief/storage"
	}
	if cfg.Storage.Key == "" {
		cfg.Storage.Key = domain.DefaultHistoryKey
	}
	if cfg.Storage.Redis.Addr == "" {
		cfg.Storage.Redis.Addr = domain.DefaultRedisAddr
	}
	if cfg.Storage.Redis.Prefix == "" {
		cfg.Storage.Redis.Prefix = domain.DefaultRedisPrefix
	}
	if cfg.UI.HistoryHeight <= 0 {
		cfg.UI.HistoryHeight = domain.DefaultHistoryHeight
	}
	return cfg
}

// DefaultConfig exposes the bootstrap configuration template.
func DefaultConfig() domain.Config {
	return defaultConfig()
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
