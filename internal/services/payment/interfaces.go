package payment

import (
	"context"

	"payflow/internal/analytics"
	"payflow/internal/models"
)

type Service interface {
	List(ctx context.Context, params analytics.QueryParams) (analytics.Page[models.Payment], error)
	Get(ctx context.Context, id string) (*models.Payment, error)
	Create(ctx context.Context, input CreatePaymentInput) (*models.Payment, error)
	Refund(ctx context.Context, id string) (*models.Payment, error)
	Delete(ctx context.Context, id string) error
}

// CacheInvalidator drops derived views after a mutation.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}
