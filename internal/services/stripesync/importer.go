// Package stripesync imports Stripe charges and customers into the record store.
package stripesync

import (
	"context"
	"errors"
	"fmt"

	"payflow/internal/models"
	"payflow/internal/repositories"

	"go.uber.org/zap"
)

// CacheInvalidator drops derived views after an import.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Result counts the records written by one import.
type Result struct {
	CustomersCreated int `json:"customersCreated"`
	CustomersUpdated int `json:"customersUpdated"`
	PaymentsCreated  int `json:"paymentsCreated"`
	PaymentsUpdated  int `json:"paymentsUpdated"`
}

type Importer struct {
	charges    ChargeSource
	customers  CustomerSource
	paymentDB  repositories.PaymentRepository
	customerDB repositories.CustomerRepository
	views      CacheInvalidator
	log        *zap.Logger
}

func NewImporter(
	charges ChargeSource,
	customers CustomerSource,
	paymentDB repositories.PaymentRepository,
	customerDB repositories.CustomerRepository,
	views CacheInvalidator,
	log *zap.Logger,
) *Importer {
	return &Importer{
		charges:    charges,
		customers:  customers,
		paymentDB:  paymentDB,
		customerDB: customerDB,
		views:      views,
		log:        log.Named("stripesync"),
	}
}

// Run imports every customer, then every charge. Existing records with the
// same id are overwritten. Customer totals are recomputed from the imported
// charges: succeeded amounts sum into TotalSpent and every charge counts
// towards PaymentCount.
func (i *Importer) Run(ctx context.Context) (Result, error) {
	var res Result

	stripeCustomers, err := i.customers.Customers(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to list stripe customers: %w", err)
	}
	charges, err := i.charges.Charges(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to list stripe charges: %w", err)
	}

	payments := make([]models.Payment, 0, len(charges))
	spent := make(map[string]int64)
	counts := make(map[string]int)
	for _, ch := range charges {
		p := PaymentFromCharge(ch)
		payments = append(payments, p)
		if p.Customer == nil || p.Customer.ID == "" {
			continue
		}
		counts[p.Customer.ID]++
		if p.IsSucceeded() {
			spent[p.Customer.ID] += p.Amount
		}
	}

	for _, sc := range stripeCustomers {
		if sc.Deleted {
			continue
		}
		c := CustomerFromStripe(sc)
		c.TotalSpent = spent[c.ID]
		c.PaymentCount = counts[c.ID]

		created, err := i.upsertCustomer(ctx, &c)
		if err != nil {
			return res, err
		}
		if created {
			res.CustomersCreated++
		} else {
			res.CustomersUpdated++
		}
	}

	for idx := range payments {
		p := &payments[idx]
		created, err := i.upsertPayment(ctx, p)
		if err != nil {
			return res, err
		}
		i.log.Debug("charge imported",
			zap.String("payment_id", p.ID),
			zap.String("customer", p.CustomerName()),
			zap.Bool("created", created),
		)
		if created {
			res.PaymentsCreated++
		} else {
			res.PaymentsUpdated++
		}
	}

	if i.views != nil {
		if err := i.views.Invalidate(ctx); err != nil {
			i.log.Warn("dashboard cache invalidation failed", zap.Error(err))
		}
	}

	i.log.Info("stripe import finished",
		zap.Int("customers_created", res.CustomersCreated),
		zap.Int("customers_updated", res.CustomersUpdated),
		zap.Int("payments_created", res.PaymentsCreated),
		zap.Int("payments_updated", res.PaymentsUpdated),
	)
	return res, nil
}

func (i *Importer) upsertCustomer(ctx context.Context, c *models.Customer) (bool, error) {
	err := i.customerDB.Update(ctx, c)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repositories.ErrCustomerNotFound) {
		return false, fmt.Errorf("failed to update customer %s: %w", c.ID, err)
	}
	if err := i.customerDB.Create(ctx, c); err != nil {
		return false, fmt.Errorf("failed to create customer %s: %w", c.ID, err)
	}
	return true, nil
}

func (i *Importer) upsertPayment(ctx context.Context, p *models.Payment) (bool, error) {
	err := i.paymentDB.Update(ctx, p)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repositories.ErrPaymentNotFound) {
		return false, fmt.Errorf("failed to update payment %s: %w", p.ID, err)
	}
	if err := i.paymentDB.Create(ctx, p); err != nil {
		return false, fmt.Errorf("failed to create payment %s: %w", p.ID, err)
	}
	return true, nil
}
