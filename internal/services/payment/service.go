package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"payflow/internal/analytics"
	"payflow/internal/models"
	"payflow/internal/repositories"
	"payflow/internal/validation"

	"go.uber.org/zap"
)

type service struct {
	payments  repositories.PaymentRepository
	customers repositories.CustomerRepository
	views     CacheInvalidator
	log       *zap.Logger
}

func NewService(
	payments repositories.PaymentRepository,
	customers repositories.CustomerRepository,
	views CacheInvalidator,
	log *zap.Logger,
) Service {
	return &service{
		payments:  payments,
		customers: customers,
		views:     views,
		log:       log.Named("payment"),
	}
}

func (s *service) List(ctx context.Context, params analytics.QueryParams) (analytics.Page[models.Payment], error) {
	payments, err := s.payments.GetAll(ctx)
	if err != nil {
		return analytics.Page[models.Payment]{}, fmt.Errorf("failed to list payments: %w", err)
	}
	return analytics.Query(payments, analytics.PaymentQuery, params), nil
}

func (s *service) Get(ctx context.Context, id string) (*models.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment %s: %w", id, err)
	}
	return p, nil
}

// Create records a succeeded payment for an existing customer. The
// customer's totals are left to the store.
func (s *service) Create(ctx context.Context, input CreatePaymentInput) (*models.Payment, error) {
	input.Description = strings.TrimSpace(input.Description)
	input.Currency = strings.ToLower(strings.TrimSpace(input.Currency))
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	customer, err := s.customers.GetByID(ctx, input.CustomerID)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, validation.Errors{"customerId": ErrUnknownCustomer.Error()}
		}
		return nil, fmt.Errorf("failed to load customer %s: %w", input.CustomerID, err)
	}

	p := &models.Payment{
		ID:          repositories.NewID(models.IDPrefixPayment),
		Amount:      input.Amount,
		Currency:    input.Currency,
		Status:      models.PaymentStatusSucceeded,
		Description: input.Description,
		Customer:    customer.Ref(),
		Metadata:    input.Metadata,
	}
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}
	methodType := input.PaymentMethodType
	if methodType == "" {
		methodType = models.PaymentMethodCard
	}
	p.PaymentMethod = &models.PaymentMethod{Type: methodType}

	if err := s.payments.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	s.log.Info("payment created",
		zap.String("payment_id", p.ID),
		zap.String("customer_id", customer.ID),
		zap.Int64("amount", p.Amount),
	)
	s.invalidate(ctx)
	return p, nil
}

func (s *service) Refund(ctx context.Context, id string) (*models.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment %s: %w", id, err)
	}
	if !p.IsSucceeded() {
		return nil, ErrNotRefundable
	}

	p.Status = models.PaymentStatusRefunded
	if err := s.payments.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to refund payment %s: %w", id, err)
	}

	s.log.Info("payment refunded", zap.String("payment_id", p.ID), zap.Int64("amount", p.Amount))
	s.invalidate(ctx)
	return p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.payments.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", id, err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.views == nil {
		return
	}
	if err := s.views.Invalidate(ctx); err != nil {
		s.log.Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}
