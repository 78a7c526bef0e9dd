package catalog

import (
	"context"
	"errors"
)

// Cache holds catalog reads so repeated fragment renders don't hammer
// the upstream API.
type Cache interface {
	GetProduct(ctx context.Context, id int64) (*Product, error)
	SetProduct(ctx context.Context, p *Product) error
	GetList(ctx context.Context) ([]Product, error)
	SetList(ctx context.Context, products []Product) error
}

var ErrCacheMiss = errors.New("cache miss")
