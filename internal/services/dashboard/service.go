// Package dashboard assembles the dashboard view models from store snapshots.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"payflow/internal/analytics"
	"payflow/internal/models"
	"payflow/internal/repositories"
	"payflow/internal/repositories/cache"
	cachekeys "payflow/internal/utils/cache"

	"go.uber.org/zap"
)

type Service interface {
	Overview(ctx context.Context) (*models.DashboardOverview, error)
	Analytics(ctx context.Context, windowDays int, reference time.Time) (*models.DashboardAnalytics, error)
	TopCustomers(ctx context.Context, n int) ([]models.Customer, error)
	RecentPayments(ctx context.Context, n int) ([]models.Payment, error)
	Invalidate(ctx context.Context) error
}

type service struct {
	payments  repositories.PaymentRepository
	customers repositories.CustomerRepository
	cache     cache.Cache
	log       *zap.Logger
}

// NewService wires the dashboard to its stores. A nil cache disables memoisation.
func NewService(
	payments repositories.PaymentRepository,
	customers repositories.CustomerRepository,
	viewCache cache.Cache,
	log *zap.Logger,
) Service {
	if viewCache == nil {
		viewCache = cache.NoopCache{}
	}
	return &service{
		payments:  payments,
		customers: customers,
		cache:     viewCache,
		log:       log.Named("dashboard"),
	}
}

func (s *service) Overview(ctx context.Context) (*models.DashboardOverview, error) {
	key := cachekeys.GenerateKey(cachekeys.ViewOverview)
	return cached(ctx, s, key, func() (*models.DashboardOverview, error) {
		payments, err := s.fetchPayments(ctx)
		if err != nil {
			return nil, err
		}
		customers, err := s.fetchCustomers(ctx)
		if err != nil {
			return nil, err
		}
		overview := analytics.Overview(payments, customers)
		return &overview, nil
	})
}

func (s *service) Analytics(ctx context.Context, windowDays int, reference time.Time) (*models.DashboardAnalytics, error) {
	windowDays = analytics.NormalizeWindow(windowDays)
	key := cachekeys.GenerateKey(cachekeys.ViewAnalytics, windowDays, analytics.Day(reference).Format(time.DateOnly))

	return cached(ctx, s, key, func() (*models.DashboardAnalytics, error) {
		payments, err := s.fetchPayments(ctx)
		if err != nil {
			return nil, err
		}
		return &models.DashboardAnalytics{
			WindowDays:      windowDays,
			Revenue:         analytics.RevenueSeries(payments, windowDays, reference),
			StatusBreakdown: analytics.StatusBreakdown(analytics.InWindow(payments, windowDays, reference)),
		}, nil
	})
}

func (s *service) TopCustomers(ctx context.Context, n int) ([]models.Customer, error) {
	if n <= 0 {
		n = analytics.DefaultTopCustomers
	}
	key := cachekeys.GenerateKey(cachekeys.ViewTopCustomers, n)
	return cached(ctx, s, key, func() ([]models.Customer, error) {
		customers, err := s.fetchCustomers(ctx)
		if err != nil {
			return nil, err
		}
		return analytics.TopCustomers(customers, n), nil
	})
}

func (s *service) RecentPayments(ctx context.Context, n int) ([]models.Payment, error) {
	if n <= 0 {
		n = analytics.DefaultRecentPayments
	}
	key := cachekeys.GenerateKey(cachekeys.ViewRecentPayments, n)
	return cached(ctx, s, key, func() ([]models.Payment, error) {
		payments, err := s.fetchPayments(ctx)
		if err != nil {
			return nil, err
		}
		return analytics.RecentPayments(payments, n), nil
	})
}

// Invalidate drops every memoised view.
func (s *service) Invalidate(ctx context.Context) error {
	if err := s.cache.DeletePattern(ctx, cachekeys.DashboardPattern()); err != nil {
		return fmt.Errorf("failed to invalidate dashboard cache: %w", err)
	}
	return nil
}

func (s *service) fetchPayments(ctx context.Context) ([]models.Payment, error) {
	payments, err := s.payments.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	return payments, nil
}

func (s *service) fetchCustomers(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.customers.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	return customers, nil
}

// cached serves key from the view cache or computes and stores it. Cache
// failures are logged and never fail the request.
func cached[T any](ctx context.Context, s *service, key string, compute func() (T, error)) (T, error) {
	var hit T
	found, err := s.cache.Get(ctx, key, &hit)
	if err != nil {
		s.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	} else if found {
		if view, params, ok := cachekeys.ParseKey(key); ok {
			s.log.Debug("view served from cache", zap.String("view", string(view)), zap.Strings("params", params))
		}
		return hit, nil
	}

	value, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}

	if err := s.cache.Set(ctx, key, value); err != nil {
		s.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return value, nil
}
