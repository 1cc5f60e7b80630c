// Package history persists the article history as one JSON array entry.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/doeshing/brief-go/internal/domain"
	"github.com/doeshing/brief-go/internal/ports"
)

// Store reads and writes the history under a single named entry.
type Store struct {
	storage ports.EntryStorage
	key     string
	logger  ports.Logger
}

// NewStore binds the history to key in storage.
func NewStore(storage ports.EntryStorage, key string, logger ports.Logger) *Store {
	if key == "" {
		key = domain.DefaultHistoryKey
	}
	return &Store{storage: storage, key: key, logger: logger}
}

// Load returns the stored history, newest first. Missing, unreadable or
// malformed data yields an empty history.
func (s *Store) Load(ctx context.Context) []domain.Article {
	data, err := s.storage.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, domain.ErrEntryNotFound) {
			s.logger.Warn("history read failed", map[string]interface{}{"key": s.key, "error": err})
		}
		return []domain.Article{}
	}

	var articles []domain.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		s.logger.Warn("history entry malformed, starting empty", map[string]interface{}{"key": s.key, "error": err})
		return []domain.Article{}
	}

	history := make([]domain.Article, 0, len(articles))
	for _, article := range articles {
		if article.URL == "" {
			continue
		}
		history = append(history, article)
	}
	return history
}

// Save overwrites the entry with the full history.
func (s *Store) Save(ctx context.Context, history []domain.Article) error {
	if history == nil {
		history = []domain.Article{}
	}
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("history: encode: %w", err)
	}
	if err := s.storage.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("history: save: %w", err)
	}
	return nil
}

// Clear deletes the entry.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.storage.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("history: clear: %w", err)
	}
	return nil
}

// Location describes where the entry lives.
func (s *Store) Location() string {
	return fmt.Sprintf("%s [%s]", s.storage.Location(), s.key)
}

// Size returns the stored entry size in bytes, or 0 when absent.
func (s *Store) Size(ctx context.Context) int {
	data, err := s.storage.Get(ctx, s.key)
	if err != nil {
		return 0
	}
	return len(data)
}

var _ ports.HistoryRepository = (*Store)(nil)
