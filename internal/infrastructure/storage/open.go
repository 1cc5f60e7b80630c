package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/doeshing/brief-go/internal/domain"
	"github.com/doeshing/brief-go/internal/pkg/filesystem"
	"github.com/doeshing/brief-go/internal/ports"
)

const redisConnectTimeout = 3 * time.Second

// Open builds the configured backend. sqlite and redis fall back to file
// storage when they cannot be opened, so the history stays usable.
func Open(ctx context.Context, settings domain.StorageSettings, logger ports.Logger) ports.EntryStorage {
	dir := filesystem.ExpandPath(settings.Path)
	if dir == "" {
		dir = filepath.Join(filesystem.AppDir(), "storage")
	}

	switch strings.ToLower(settings.Backend) {
	case domain.StorageBackendSQLite:
		dbPath := filepath.Join(dir, "brief.db")
		store, err := OpenSQLite(dbPath)
		if err == nil {
			return store
		}
		logger.Warn("sqlite storage unavailable, using files", map[string]interface{}{"path": dbPath, "error": err})
	case domain.StorageBackendRedis:
		connectCtx, cancel := context.WithTimeout(ctx, redisConnectTimeout)
		defer cancel()
		store, err := OpenRedis(connectCtx, RedisOptions{
			Addr:     settings.Redis.Addr,
			Password: os.Getenv(settings.Redis.PasswordEnvVar),
			DB:       settings.Redis.DB,
			Prefix:   settings.Redis.Prefix,
		})
		if err == nil {
			return store
		}
		logger.Warn("redis storage unavailable, using files", map[string]interface{}{"addr": settings.Redis.Addr, "error": err})
	}
	return NewFileStorage(dir)
}
