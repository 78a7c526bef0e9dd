package catalog

import (
	"context"
	"sync"
	"time"
)

// MemoryCache is the cache used when no redis address is configured.
type MemoryCache struct {
	mu       sync.RWMutex
	ttl      time.Duration
	products map[int64]memoryEntry[*Product]
	list     memoryEntry[[]Product]
}

type memoryEntry[T any] struct {
	value     T
	expiresAt time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:      ttl,
		products: make(map[int64]memoryEntry[*Product]),
	}
}

func (m *MemoryCache) GetProduct(_ context.Context, id int64) (*Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.products[id]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, ErrCacheMiss
	}
	p := *entry.value
	return &p, nil
}

func (m *MemoryCache) SetProduct(_ context.Context, p *Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *p
	m.products[p.ID] = memoryEntry[*Product]{value: &cp, expiresAt: time.Now().Add(m.ttl)}
	return nil
}

func (m *MemoryCache) GetList(_ context.Context) ([]Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.list.value == nil || time.Now().After(m.list.expiresAt) {
		return nil, ErrCacheMiss
	}
	out := make([]Product, len(m.list.value))
	copy(out, m.list.value)
	return out, nil
}

func (m *MemoryCache) SetList(_ context.Context, products []Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]Product, len(products))
	copy(cp, products)
	m.list = memoryEntry[[]Product]{value: cp, expiresAt: time.Now().Add(m.ttl)}
	return nil
}
