package store

import (
	"context"

	"storefront/internal/domain"
)

// Store persists the serialized cart line-item list under a single
// fixed entry. Implementations report failures as errors; the cart
// engine is the only consumer and treats every failure as recoverable
// (a failed load reads as an empty cart, a failed save leaves the
// in-memory state authoritative).
type Store interface {
	// Load returns the persisted items. A missing entry is not an
	// error: it loads as an empty list.
	Load(ctx context.Context) ([]domain.Item, error)

	// Save replaces the persisted items.
	Save(ctx context.Context, items []domain.Item) error

	// Clear removes the persisted entry entirely.
	Clear(ctx context.Context) error

	// Close releases underlying resources.
	Close() error
}

// entryKey is the fixed key the cart is stored under.
const entryKey = "cart"

// sanitizeItems drops lines whose quantity is not positive. A
// hand-edited or stale entry can carry them, and no live cart line
// ever has a quantity below 1.
func sanitizeItems(items []domain.Item) []domain.Item {
	kept := items[:0]
	for _, it := range items {
		if it.Quantity >= 1 {
			kept = append(kept, it)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}
