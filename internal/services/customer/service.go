package customer

import (
	"context"
	"fmt"
	"strings"

	"payflow/internal/analytics"
	"payflow/internal/models"
	"payflow/internal/repositories"
	"payflow/internal/validation"

	"go.uber.org/zap"
)

type service struct {
	customers repositories.CustomerRepository
	views     CacheInvalidator
	log       *zap.Logger
}

func NewService(customers repositories.CustomerRepository, views CacheInvalidator, log *zap.Logger) Service {
	return &service{
		customers: customers,
		views:     views,
		log:       log.Named("customer"),
	}
}

func (s *service) List(ctx context.Context, params analytics.QueryParams) (analytics.Page[models.Customer], error) {
	customers, err := s.customers.GetAll(ctx)
	if err != nil {
		return analytics.Page[models.Customer]{}, fmt.Errorf("failed to list customers: %w", err)
	}
	return analytics.Query(customers, analytics.CustomerQuery, params), nil
}

func (s *service) Get(ctx context.Context, id string) (*models.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %s: %w", id, err)
	}
	return c, nil
}

// Create adds a customer with zero spend. Emails are unique, compared
// case-insensitively.
func (s *service) Create(ctx context.Context, input CreateCustomerInput) (*models.Customer, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	if err := s.ensureEmailFree(ctx, "", input.Email); err != nil {
		return nil, err
	}

	c := &models.Customer{
		ID:           repositories.NewID(models.IDPrefixCustomer),
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		TotalSpent:   0,
		PaymentCount: 0,
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.log.Info("customer created", zap.String("customer_id", c.ID))
	s.invalidate(ctx)
	return c, nil
}

func (s *service) Update(ctx context.Context, id string, input UpdateCustomerInput) (*models.Customer, error) {
	trim(input.Name)
	trim(input.Email)
	trim(input.Phone)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if cleared := clearedRequired(input); len(cleared) > 0 {
		return nil, cleared
	}

	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %s: %w", id, err)
	}

	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Email != nil && !strings.EqualFold(*input.Email, c.Email) {
		if err := s.ensureEmailFree(ctx, c.ID, *input.Email); err != nil {
			return nil, err
		}
		c.Email = *input.Email
	}
	if input.Phone != nil {
		c.Phone = *input.Phone
	}

	if err := s.customers.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update customer %s: %w", id, err)
	}
	s.invalidate(ctx)
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.customers.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete customer %s: %w", id, err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *service) ensureEmailFree(ctx context.Context, selfID, email string) error {
	existing, err := s.customers.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to check customer email: %w", err)
	}
	for _, c := range existing {
		if c.ID != selfID && strings.EqualFold(c.Email, email) {
			return validation.Errors{"email": ErrEmailTaken.Error()}
		}
	}
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

// clearedRequired reports required fields an update tries to blank out.
func clearedRequired(input UpdateCustomerInput) validation.Errors {
	out := validation.Errors{}
	if input.Name != nil && *input.Name == "" {
		out["name"] = "is required"
	}
	if input.Email != nil && *input.Email == "" {
		out["email"] = "is required"
	}
	return out
}

func trim(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
