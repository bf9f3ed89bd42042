package customer

import (
	"context"

	"payflow/internal/analytics"
	"payflow/internal/models"
)

type Service interface {
	List(ctx context.Context, params analytics.QueryParams) (analytics.Page[models.Customer], error)
	Get(ctx context.Context, id string) (*models.Customer, error)
	Create(ctx context.Context, input CreateCustomerInput) (*models.Customer, error)
	Update(ctx context.Context, id string, input UpdateCustomerInput) (*models.Customer, error)
	Delete(ctx context.Context, id string) error
}

// CacheInvalidator drops derived views after a mutation.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}
