package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var ErrProductNotFound = errors.New("product not found")

// Client fetches products from the upstream catalog API. Calls go
// through a circuit breaker so a misbehaving upstream fails fast
// instead of tying up request handlers.
type Client struct {
	baseURL string
	httpc   *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func NewClient(baseURL string) *Client {
	settings := gobreaker.Settings{
		Name:        "catalog",
		MaxRequests: 3,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
		IsSuccessful: func(err error) bool {
			// A missing product is an answer, not an upstream outage.
			return err == nil || errors.Is(err, ErrProductNotFound)
		},
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpc: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   10 * time.Second,
		},
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings),
	}
}

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	body, err := c.getJSON(ctx, "/products")
	if err != nil {
		return nil, err
	}

	var list productList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("decode product list: %w", err)
	}

	return list.Products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*Product, error) {
	body, err := c.getJSON(ctx, fmt.Sprintf("/products/%d", id))
	if err != nil {
		return nil, err
	}

	var p Product
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("decode product: %w", err)
	}

	return &p, nil
}

func (c *Client) getJSON(ctx context.Context, path string) ([]byte, error) {
	return c.breaker.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpc.Do(req)
		if err != nil {
			return nil, fmt.Errorf("catalog request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return nil, ErrProductNotFound
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read catalog response: %w", err)
		}

		return body, nil
	})
}
