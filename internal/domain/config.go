package domain

import "time"

// Config mirrors ~/.brief/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	API                 APISettings     `yaml:"api"`
	Storage             StorageSettings `yaml:"storage"`
	UI                  UISettings      `yaml:"ui"`
}

// APISettings describes the summarization endpoint. The key itself is never
// stored in the file; AuthEnvVar names the environment variable holding it.
type APISettings struct {
	BaseURL        string `yaml:"base_url"`
	Host           string `yaml:"host"`
	AuthEnvVar     string `yaml:"auth_env_var"`
	Length         int    `yaml:"length"`
	TimeoutSeconds int    `yaml:"timeout"`
}

// Timeout returns the request timeout as a duration.
func (a APISettings) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// Storage backends.
const (
	StorageBackendFile   = "file"
	StorageBackendSQLite = "sqlite"
	StorageBackendRedis  = "redis"
)

// StorageSettings selects where the history entry lives.
type StorageSettings struct {
	Backend string        `yaml:"backend"`
	Path    string        `yaml:"path"`
	Key     string        `yaml:"key"`
	Redis   RedisSettings `yaml:"redis"`
}

// RedisSettings configures the redis backend.
type RedisSettings struct {
	Addr           string `yaml:"addr"`
	PasswordEnvVar string `yaml:"password_env_var"`
	DB             int    `yaml:"db"`
	Prefix         string `yaml:"prefix"`
}

// UISettings tunes the terminal view.
type UISettings struct {
	HistoryHeight int `yaml:"history_height"`
}
