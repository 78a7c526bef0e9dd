package catalog

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Source is the upstream the service reads through the cache. *Client
// satisfies it; tests substitute a fake.
type Source interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
}

type Service struct {
	source Source
	cache  Cache
	sfg    singleflight.Group // Prevents cache stampede
}

func NewService(source Source, cache Cache) *Service {
	return &Service{
		source: source,
		cache:  cache,
	}
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*Product, error) {
	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := s.sfg.Do(fmt.Sprintf("product:%d", id), func() (interface{}, error) {
		p, err := s.cache.GetProduct(ctx, id)
		if err == nil {
			return p, nil
		}

		if !errors.Is(err, ErrCacheMiss) {
			log.WithError(err).Warn("catalog cache get failed") // log cache error but continue
		}

		p, err = s.source.GetProduct(ctx, id)
		if err != nil {
			return nil, err
		}

		go func() {
			if errSet := s.cache.SetProduct(context.Background(), p); errSet != nil {
				log.WithError(errSet).Warn("catalog cache set failed")
			}
		}()

		return p, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*Product), nil
}

func (s *Service) ListProducts(ctx context.Context) ([]Product, error) {
	v, err, _ := s.sfg.Do("products:list", func() (interface{}, error) {
		products, err := s.cache.GetList(ctx)
		if err == nil {
			return products, nil
		}

		if !errors.Is(err, ErrCacheMiss) {
			log.WithError(err).Warn("catalog cache get failed")
		}

		products, err = s.source.ListProducts(ctx)
		if err != nil {
			return nil, err
		}

		go func() {
			if errSet := s.cache.SetList(context.Background(), products); errSet != nil {
				log.WithError(errSet).Warn("catalog cache set failed")
			}
		}()

		return products, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]Product), nil
}
