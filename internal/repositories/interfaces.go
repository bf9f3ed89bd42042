package repositories

import (
	"context"

	"payflow/internal/models"
)

// PaymentRepository persists payments. GetAll returns newest first.
type PaymentRepository interface {
	GetAll(ctx context.Context) ([]models.Payment, error)
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	Create(ctx context.Context, payment *models.Payment) error
	Update(ctx context.Context, payment *models.Payment) error
	Delete(ctx context.Context, id string) error
}

// CustomerRepository persists customers. GetAll returns newest first.
type CustomerRepository interface {
	GetAll(ctx context.Context) ([]models.Customer, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id string) error
}

// APIKeyRepository persists developer API keys. GetAll returns newest first.
type APIKeyRepository interface {
	GetAll(ctx context.Context) ([]models.APIKey, error)
	GetByID(ctx context.Context, id string) (*models.APIKey, error)
	Create(ctx context.Context, key *models.APIKey) error
	Update(ctx context.Context, key *models.APIKey) error
	Delete(ctx context.Context, id string) error
}
