package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort        string        `envconfig:"HTTP_PORT" default:"8080"`
	CatalogURL      string        `envconfig:"CATALOG_URL" default:"https://dummyjson.com"`
	CartDBPath      string        `envconfig:"CART_DB_PATH" default:"cart.db"`
	RedisAddr       string        `envconfig:"REDIS_ADDR"`
	RedisPassword   string        `envconfig:"REDIS_PASSWORD"`
	CacheTTL        time.Duration `envconfig:"CACHE_TTL" default:"5m"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	RefreshOnReAdd  bool          `envconfig:"CART_REFRESH_ON_READD" default:"false"`
	LogJSON         bool          `envconfig:"LOG_JSON" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
