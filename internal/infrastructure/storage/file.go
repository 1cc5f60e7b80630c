// Package storage provides durable named-entry backends for the history.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/doeshing/brief-go/internal/domain"
	"github.com/doeshing/brief-go/internal/ports"
)

// FileStorage keeps each entry in its own <key>.json file under dir.
type FileStorage struct {
	dir string
	mu  sync.Mutex
}

// NewFileStorage roots entries under dir.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

func (f *FileStorage) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get implements ports.EntryStorage.
func (f *FileStorage) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("storage: read %s: %w", key, err)
	}
	return data, nil
}

// Set overwrites the entry atomically via a temp file and rename.
func (f *FileStorage) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(f.dir, domain.DirectoryPermissions); err != nil {
		return fmt.Errorf("storage: create dir: %w", err)
	}
	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: write %s: %w", key, err)
	}
	if err := tmp.Chmod(domain.SecureFilePermissions); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: chmod %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), f.path(key)); err != nil {
		return fmt.Errorf("storage: replace %s: %w", key, err)
	}
	return nil
}

// Delete removes the entry; deleting a missing entry is not an error.
func (f *FileStorage) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

// Location returns the backing directory.
func (f *FileStorage) Location() string {
	return f.dir
}

// Close is a no-op for files.
func (f *FileStorage) Close() error {
	return nil
}

var _ ports.EntryStorage = (*FileStorage)(nil)
