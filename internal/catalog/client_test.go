package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListProducts(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products": [
			{"id": 1, "title": "Shirt", "price": 10, "thumbnail": "x.png", "stock": 14},
			{"id": 2, "title": "Hat", "price": 15.5, "thumbnail": ""}
		], "total": 2}`))
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL)
	products, err := c.ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Shirt", products[0].Title)
	assert.Equal(t, 15.5, products[1].Price)
}

func TestClient_GetProduct(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 7, "title": "Mug", "description": "Holds coffee", "price": 4.5, "thumbnail": "m.png"}`))
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL)
	p, err := c.GetProduct(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, "Holds coffee", p.Description)
}

func TestClient_GetProduct_NotFound(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL)
	_, err := c.GetProduct(context.Background(), 999)

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestClient_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL)
	_, err := c.ListProducts(context.Background())

	assert.Error(t, err)
}

func TestClient_MalformedResponse(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL)
	_, err := c.ListProducts(context.Background())

	assert.Error(t, err)
}

func TestClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	c := NewClient(upstream.URL)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		_, err := c.ListProducts(ctx)
		require.Error(t, err)
	}

	_, err := c.ListProducts(ctx)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "status 500",
		"once open, the breaker fails fast without hitting the upstream")
}
