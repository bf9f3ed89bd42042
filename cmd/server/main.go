// Package main is the entry point of the dashboard API. It loads the
// configuration, opens the record store and the view cache, wires the
// services and starts the HTTP server.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payflow/internal/config"
	"payflow/internal/handlers"
	"payflow/internal/logger"
	"payflow/internal/repositories"
	"payflow/internal/repositories/cache"
	"payflow/internal/routes"
	"payflow/internal/seed"
	"payflow/internal/services/apikey"
	"payflow/internal/services/customer"
	"payflow/internal/services/dashboard"
	"payflow/internal/services/payment"
	cachekeys "payflow/internal/utils/cache"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
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

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	store, err := repositories.OpenStore(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	// The memory store starts empty; fill it so the dashboard has something to show.
	if cfg.StoreDriver == config.StoreDriverMemory {
		n, err := seed.Load(context.Background(), store, seed.Generate(seed.DefaultOptions(time.Now())))
		if err != nil {
			return err
		}
		log.Info("demo data loaded", zap.Int("records", n))
	}

	checks := map[string]handlers.Pinger{"database": store}
	var viewCache cache.Cache = cache.NoopCache{}
	if cfg.Redis.Enabled {
		client := cache.NewRedisClient(cfg.Redis)
		cacheService := cache.NewCacheService(client, cfg.CacheTTL)
		defer func() {
			if err := cacheService.Close(); err != nil {
				log.Warn("failed to close redis connection", zap.Error(err))
			}
		}()

		if err := cacheService.HealthCheck(context.Background()); err != nil {
			log.Warn("redis unavailable, dashboard views will not be cached", zap.Error(err))
		} else {
			// Views cached by a previous run may predate store changes.
			if err := cacheService.DeletePattern(context.Background(), cachekeys.DashboardPattern()); err != nil {
				log.Warn("failed to clear dashboard cache", zap.Error(err))
			}
			viewCache = cacheService
			checks["redis"] = cacheService
		}
	}

	dashboardService := dashboard.NewService(store.Payments, store.Customers, viewCache, log)

	app := fiber.New(fiber.Config{
		AppName:      "payflow",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE",
	}))

	// Creating payments and keys is rate limited per client.
	app.Use(limiter.New(limiter.Config{
		Max:        config.GetIntEnv("RATE_LIMIT_WRITES", 30),
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() != fiber.MethodPost
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	routes.SetupRoutes(app, routes.Services{
		Dashboard: dashboardService,
		Payments:  payment.NewService(store.Payments, store.Customers, dashboardService, log),
		Customers: customer.NewService(store.Customers, dashboardService, log),
		APIKeys:   apikey.NewService(store.APIKeys, log),
		Health:    handlers.NewHealthHandler("1.0.0", checks),
	}, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("port", cfg.App.Port), zap.String("store", cfg.StoreDriver))
		errCh <- app.Listen(":" + cfg.App.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
