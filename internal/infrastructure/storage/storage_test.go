package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/doeshing/brief-go/internal/domain"
	"github.com/doeshing/brief-go/internal/pkg/logger"
	"github.com/doeshing/brief-go/internal/ports"
)

func exerciseEntryStorage(t *testing.T, store ports.EntryStorage) {
	t.Helper()
	ctx := context.Background()

	if _, err := store.Get(ctx, "articles"); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("Get() on empty store error = %v, want ErrEntryNotFound", err)
	}

	if err := store.Set(ctx, "articles", []byte(`[1]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Set(ctx, "articles", []byte(`[1,2]`)); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}
	got, err := store.Get(ctx, "articles")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != `[1,2]` {
		t.Fatalf("Get() = %s, want [1,2]", got)
	}

	if err := store.Delete(ctx, "articles"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := store.Delete(ctx, "articles"); err != nil {
		t.Fatalf("Delete() of missing key error = %v", err)
	}
	if _, err := store.Get(ctx, "articles"); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("Get() after delete error = %v", err)
	}
}

func TestFileStorageRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "storage")
	exerciseEntryStorage(t, NewFileStorage(dir))
}

func TestFileStorageLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStorage(dir)
	if err := store.Set(context.Background(), "articles", []byte(`[]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "articles.json" {
		t.Fatalf("unexpected files: %v", entries)
	}
}

func TestSQLiteStorageRoundTrip(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "brief.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	defer store.Close()
	exerciseEntryStorage(t, store)
}

func TestOpenFallsBackToFilesWhenSQLiteFails(t *testing.T) {
	dir := t.TempDir()
	// A directory where the database file should be makes sqlite fail.
	if err := os.MkdirAll(filepath.Join(dir, "brief.db"), 0o755); err != nil {
		t.Fatal(err)
	}

	store := Open(context.Background(), domain.StorageSettings{Backend: "sqlite", Path: dir}, logger.NewStd(false))
	defer store.Close()
	if _, ok := store.(*FileStorage); !ok {
		t.Fatalf("expected file storage fallback, got %T", store)
	}
}

func TestOpenFallsBackToFilesWhenRedisUnreachable(t *testing.T) {
	settings := domain.StorageSettings{
		Backend: "redis",
		Path:    t.TempDir(),
		Redis:   domain.RedisSettings{Addr: "127.0.0.1:1"},
	}
	store := Open(context.Background(), settings, logger.NewStd(false))
	defer store.Close()
	if _, ok := store.(*FileStorage); !ok {
		t.Fatalf("expected file storage fallback, got %T", store)
	}
}

func TestRedisStoragePrefixesKeys(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:6390", DB: 2})
	defer client.Close()

	store := newRedisStorage(client, "brief:")
	if got := store.key("articles"); got != "brief:articles" {
		t.Fatalf("key() = %q", got)
	}
	if got := store.Location(); got != `redis://127.0.0.1:6390/2 (prefix "brief:")` {
		t.Fatalf("Location() = %q", got)
	}
}
