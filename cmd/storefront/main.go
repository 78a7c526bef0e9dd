package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/config"
	h "storefront/internal/http"
	"storefront/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	if cfg.LogJSON {
		log.SetFormatter(&log.JSONFormatter{})
	}

	ctx := context.Background()

	// Durable cart storage: sqlite file, or in-memory when no path is
	// configured.
	var cartStore store.Store
	if cfg.CartDBPath != "" {
		sqliteStore, err := store.NewSQLiteStore(cfg.CartDBPath)
		if err != nil {
			log.WithError(err).Fatal("failed to open cart store")
		}
		cartStore = sqliteStore
		log.WithField("path", cfg.CartDBPath).Info("cart store opened")
	} else {
		cartStore = store.NewMemoryStore()
		log.Info("no cart db path configured, cart will not survive restarts")
	}
	defer cartStore.Close()

	// Catalog cache: redis when configured, in-process otherwise.
	var cache catalog.Cache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.WithError(err).Fatal("redis connection failed")
		}
		cache = catalog.NewRedisCache(redisClient)
		log.WithField("addr", cfg.RedisAddr).Info("redis cache connected")
	} else {
		cache = catalog.NewMemoryCache(cfg.CacheTTL)
	}

	catalogClient := catalog.NewClient(cfg.CatalogURL)
	catalogService := catalog.NewService(catalogClient, cache)
	log.WithField("upstream", cfg.CatalogURL).Info("catalog client ready")

	page := h.NewPageModel()
	engine := cart.NewEngine(cartStore, page, cart.Config{
		RefreshOnReAdd: cfg.RefreshOnReAdd,
	})
	engine.Start(ctx)
	defer engine.Close()

	productHandler := h.NewProductHandler(catalogService, engine, cfg.RequestTimeout)
	cartHandler := h.NewCartHandler(engine, page)
	router := h.NewRouter(productHandler, cartHandler, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.HTTPPort).Info("storefront starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server exited")
}
