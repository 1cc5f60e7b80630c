package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/brief-go/internal/domain"
	"github.com/doeshing/brief-go/internal/ports"
)

const createEntriesSQL = `CREATE TABLE IF NOT EXISTS entries (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL,
	updated_at TEXT NOT NULL
);`

// SQLiteStorage keeps entries in a single-table SQLite database.
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (or creates) the database at path.
func OpenSQLite(path string) (*SQLiteStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return nil, fmt.Errorf("storage: create dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open database: %w", err)
	}
	// Single writer; avoids SQLITE_BUSY between pooled connections.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createEntriesSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: create tables: %w", err)
	}
	return &SQLiteStorage{db: db, path: path}, nil
}

// Get implements ports.EntryStorage.
func (s *SQLiteStorage) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM entries WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: get %s: %w", key, err)
	}
	return value, nil
}

// Set implements ports.EntryStorage.
func (s *SQLiteStorage) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO entries (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("storage: set %s: %w", key, err)
	}
	return nil
}

// Delete implements ports.EntryStorage.
func (s *SQLiteStorage) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE key = ?`, key); err != nil {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

// Location returns the database path.
func (s *SQLiteStorage) Location() string {
	return s.path
}

// Close closes the database.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

var _ ports.EntryStorage = (*SQLiteStorage)(nil)
