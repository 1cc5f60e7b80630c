package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/doeshing/brief-go/internal/domain"
	"github.com/doeshing/brief-go/internal/ports"
)

// RedisStorage keeps entries as plain string keys under a prefix.
type RedisStorage struct {
	client *redis.Client
	prefix string
}

// RedisOptions configures a RedisStorage.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// OpenRedis connects and pings the server.
func OpenRedis(ctx context.Context, opts RedisOptions) (*RedisStorage, error) {
	if opts.Addr == "" {
		opts.Addr = domain.DefaultRedisAddr
	}
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("storage: ping redis %s: %w", opts.Addr, err)
	}
	return newRedisStorage(client, opts.Prefix), nil
}

func newRedisStorage(client *redis.Client, prefix string) *RedisStorage {
	return &RedisStorage{client: client, prefix: prefix}
}

func (r *RedisStorage) key(key string) string {
	return r.prefix + key
}

// Get implements ports.EntryStorage.
func (r *RedisStorage) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: get %s: %w", key, err)
	}
	return value, nil
}

// Set implements ports.EntryStorage. Entries never expire.
func (r *RedisStorage) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("storage: set %s: %w", key, err)
	}
	return nil
}

// Delete implements ports.EntryStorage.
func (r *RedisStorage) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

// Location describes the server and key prefix.
func (r *RedisStorage) Location() string {
	return fmt.Sprintf("redis://%s/%d (prefix %q)", r.client.Options().Addr, r.client.Options().DB, r.prefix)
}

// Close closes the client.
func (r *RedisStorage) Close() error {
	return r.client.Close()
}

var _ ports.EntryStorage = (*RedisStorage)(nil)
