package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cart.db")
	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestSQLiteStore_LoadMissingEntry(t *testing.T) {
	s := setupTestStore(t)

	items, err := s.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSQLiteStore_SaveLoadRoundTrip(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	want := []domain.Item{
		{ID: 1, Title: `Classic "Tee"`, Price: 10, Thumbnail: "x.png", Quantity: 2},
		{ID: 2, Title: "Hat & Scarf", Price: 15.5, Quantity: 1},
	}
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSQLiteStore_SaveOverwrites(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []domain.Item{{ID: 1, Quantity: 1}}))
	require.NoError(t, s.Save(ctx, []domain.Item{{ID: 2, Quantity: 3}}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestSQLiteStore_Clear(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []domain.Item{{ID: 1, Quantity: 1}}))
	require.NoError(t, s.Clear(ctx))

	items, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Clearing twice is fine.
	require.NoError(t, s.Clear(ctx))
}

func TestSQLiteStore_CorruptEntryLoadsEmpty(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cart_entries (key, value) VALUES ($1, $2)`,
		entryKey, "{definitely not json",
	)
	require.NoError(t, err)

	items, err := s.Load(ctx)
	require.NoError(t, err, "corruption must not surface as an error")
	assert.Empty(t, items)
}

func TestSQLiteStore_DropsNonPositiveQuantityLines(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	// A hand-edited entry with zero and negative quantities.
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cart_entries (key, value) VALUES ($1, $2)`,
		entryKey, `[{"id":1,"title":"Shirt","price":10,"quantity":2},{"id":2,"quantity":0},{"id":3,"quantity":-1}]`,
	)
	require.NoError(t, err)

	items, err := s.Load(ctx)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ID)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.db")
	ctx := context.Background()

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)

	want := []domain.Item{{ID: 1, Title: "Shirt", Price: 10, Quantity: 2}}
	require.NoError(t, s.Save(ctx, want))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
