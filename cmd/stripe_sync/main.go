// Command stripe_sync imports Stripe charges and customers into the store.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"payflow/internal/config"
	"payflow/internal/logger"
	"payflow/internal/repositories"
	"payflow/internal/repositories/cache"
	"payflow/internal/services/dashboard"
	"payflow/internal/services/stripesync"

	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.NewForEnvironment(cfg.App.Env, logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	defer func() { _ = log.Sync() }()

	if cfg.Stripe.SecretKey == "" {
		log.Fatal("STRIPE_SECRET_KEY must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := repositories.OpenStore(cfg, log)
	if err != nil {
		log.Fatal("failed to open store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	var viewCache cache.Cache = cache.NoopCache{}
	if cfg.Redis.Enabled {
		cacheService := cache.NewCacheService(cache.NewRedisClient(cfg.Redis), cfg.CacheTTL)
		defer cacheService.Close()
		viewCache = cacheService
	}
	views := dashboard.NewService(store.Payments, store.Customers, viewCache, log)

	client := stripesync.NewClient(cfg.Stripe.SecretKey)
	importer := stripesync.NewImporter(client, client, store.Payments, store.Customers, views, log)

	if _, err := importer.Run(ctx); err != nil {
		log.Error("stripe import failed", zap.Error(err))
	}
}
