package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_ProductRoundTrip(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	p := &Product{ID: 1, Title: "Shirt", Price: 10}
	require.NoError(t, cache.SetProduct(ctx, p))

	got, err := cache.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestMemoryCache_Miss(t *testing.T) {
	cache := NewMemoryCache(time.Minute)

	_, err := cache.GetProduct(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCacheMiss)

	_, err = cache.GetList(context.Background())
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := NewMemoryCache(10 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, cache.SetProduct(ctx, &Product{ID: 1}))
	require.NoError(t, cache.SetList(ctx, []Product{{ID: 1}}))

	time.Sleep(20 * time.Millisecond)

	_, err := cache.GetProduct(ctx, 1)
	assert.ErrorIs(t, err, ErrCacheMiss)

	_, err = cache.GetList(ctx)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCache_ListReturnsCopy(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.SetList(ctx, []Product{{ID: 1, Title: "Shirt"}}))

	got, err := cache.GetList(ctx)
	require.NoError(t, err)
	got[0].Title = "mutated"

	again, err := cache.GetList(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Shirt", again[0].Title)
}
