// Command seed fills the configured store with deterministic demo data.
package main

import (
	"context"
	"flag"
	"time"

	"payflow/internal/config"
	"payflow/internal/logger"
	"payflow/internal/repositories"
	"payflow/internal/seed"

	"go.uber.org/zap"
)

func main() {
	opts := seed.DefaultOptions(time.Now())
	flag.IntVar(&opts.Customers, "customers", opts.Customers, "number of customers")
	flag.IntVar(&opts.Payments, "payments", opts.Payments, "number of payments")
	flag.IntVar(&opts.Days, "days", opts.Days, "days of payment history")
	flag.Uint64Var(&opts.Seed, "seed", opts.Seed, "random seed")
	flag.Parse()

	config.LoadEnv()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.NewForEnvironment(cfg.App.Env, logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	defer func() { _ = log.Sync() }()

	if cfg.StoreDriver == config.StoreDriverMemory {
		log.Fatal("seeding the memory store has no lasting effect; the server seeds it on startup")
	}

	store, err := repositories.OpenStore(cfg, log)
	if err != nil {
		log.Fatal("failed to open store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	n, err := seed.Load(context.Background(), store, seed.Generate(opts))
	if err != nil {
		log.Error("seeding failed", zap.Error(err))
		return
	}
	log.Info("demo data seeded", zap.Int("records", n))
}
