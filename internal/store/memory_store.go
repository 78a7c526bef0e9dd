package store

import (
	"context"
	"sync"

	"storefront/internal/domain"
)

// MemoryStore implements Store with in-memory storage. Used in tests
// and when no database path is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]domain.Item
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string][]domain.Item),
	}
}

func (s *MemoryStore) Load(_ context.Context) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items, ok := s.entries[entryKey]
	if !ok {
		return nil, nil
	}
	out := make([]domain.Item, len(items))
	copy(out, items)
	return sanitizeItems(out), nil
}

func (s *MemoryStore) Save(_ context.Context, items []domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]domain.Item, len(items))
	copy(cp, items)
	s.entries[entryKey] = cp
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, entryKey)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// Has reports whether a persisted entry currently exists.
func (s *MemoryStore) Has() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.entries[entryKey]
	return ok
}
