// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The summary view controller only depends on these
// interfaces, so the summarization API, durable storage, clipboard and browser
// can each be swapped or stubbed independently.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., Summarizer, HistoryRepository)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/doeshing/brief-go/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.brief/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Summarizer fetches a summary for an article URL. Every non-nil error is a
// *domain.SummaryError.
type Summarizer interface {
	Summarize(ctx context.Context, url string) (string, error)
}

// EntryStorage is durable key/value storage for whole serialized entries,
// the equivalent of a browser's localStorage. Get returns
// domain.ErrEntryNotFound for keys that were never written.
type EntryStorage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Location() string
	Close() error
}

// HistoryRepository persists the ordered article history.
// Load never fails: missing or malformed data yields an empty history.
type HistoryRepository interface {
	Load(ctx context.Context) []domain.Article
	Save(ctx context.Context, history []domain.Article) error
	Clear(ctx context.Context) error
}

// Clipboard provides cross-platform clipboard integration.
type Clipboard interface {
	Copy(text string) error
	Enabled() bool
}

// BrowserOpener opens a URL in the user's browser.
type BrowserOpener interface {
	Open(url string) error
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stderr, log files).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
