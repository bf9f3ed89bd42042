package repositories

import (
	"context"
	"fmt"

	"payflow/internal/config"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store bundles the repositories of the configured driver.
type Store struct {
	Payments  PaymentRepository
	Customers CustomerRepository
	APIKeys   APIKeyRepository

	db *gorm.DB
}

// OpenStore connects the driver named by cfg.StoreDriver.
func OpenStore(cfg *config.Config, log *zap.Logger) (*Store, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		log.Info("using in-memory store")
		return NewStore(NewMemoryStore()), nil
	case config.StoreDriverPostgres:
		db, err := InitDB(cfg.Database, log)
		if err != nil {
			return nil, err
		}
		return NewGormStore(db), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// NewStore wraps a memory store.
func NewStore(m *MemoryStore) *Store {
	return &Store{
		Payments:  m.Payments(),
		Customers: m.Customers(),
		APIKeys:   m.APIKeys(),
	}
}

// NewGormStore builds the gorm repositories over db.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Payments:  NewPaymentRepository(db),
		Customers: NewCustomerRepository(db),
		APIKeys:   NewAPIKeyRepository(db),
		db:        db,
	}
}

// HealthCheck pings the database. The memory store is always healthy.
func (s *Store) HealthCheck(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	return nil
}

// Close releases the database pool, if any.
func (s *Store) Close() error {
	return CloseDB(s.db)
}
