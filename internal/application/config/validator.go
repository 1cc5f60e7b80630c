package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/doeshing/brief-go/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateAPI(cfg.API); err != nil {
		return err
	}
	if err := validateStorage(cfg.Storage); err != nil {
		return err
	}
	if cfg.UI.HistoryHeight < 0 {
		return fmt.Errorf("ui.history_height must be >= 0")
	}
	return nil
}

func validateAPI(api domain.APISettings) error {
	parsed, err := url.Parse(api.BaseURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return fmt.Errorf("api.base_url must be an http(s) URL, got %q", api.BaseURL)
	}
	if api.AuthEnvVar == "" {
		return fmt.Errorf("api.auth_env_var must be set")
	}
	if api.Length <= 0 {
		return fmt.Errorf("api.length must be > 0")
	}
	if api.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeout must be > 0")
	}
	return nil
}

func validateStorage(storage domain.StorageSettings) error {
	switch strings.ToLower(storage.Backend) {
	case domain.StorageBackendFile, domain.StorageBackendSQLite, domain.StorageBackendRedis:
	default:
		return fmt.Errorf("storage.backend must be file|sqlite|redis, got %s", storage.Backend)
	}
	if storage.Key == "" {
		return fmt.Errorf("storage.key must be set")
	}
	if strings.ContainsAny(storage.Key, `/\`) {
		return fmt.Errorf("storage.key must not contain path separators")
	}
	if storage.Redis.DB < 0 {
		return fmt.Errorf("storage.redis.db must be >= 0")
	}
	return nil
}
