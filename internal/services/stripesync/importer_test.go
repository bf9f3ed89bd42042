package stripesync

import (
	"context"
	"errors"
	"testing"
	"time"

	"payflow/internal/models"
	"payflow/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v72"
	"go.uber.org/zap"
)

type staticSource struct {
	charges   []*stripe.Charge
	customers []*stripe.Customer
	err       error
}

func (s staticSource) Charges(context.Context) ([]*stripe.Charge, error) {
	return s.charges, s.err
}

func (s staticSource) Customers(context.Context) ([]*stripe.Customer, error) {
	return s.customers, s.err
}

type countingInvalidator struct {
	calls int
}

func (c *countingInvalidator) Invalidate(context.Context) error {
	c.calls++
	return nil
}

var created = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC).Unix()

func TestPaymentFromCharge(t *testing.T) {
	tests := []struct {
		name   string
		charge *stripe.Charge
		check  func(t *testing.T, p models.Payment)
	}{
		{
			name: "succeeded card charge with expanded customer",
			charge: &stripe.Charge{
				ID:          "ch_1",
				Amount:      2599,
				Currency:    "USD",
				Status:      "succeeded",
				Description: "Pro plan",
				Created:     created,
				Customer:    &stripe.Customer{ID: "cus_1", Name: "Alice Smith", Email: "alice@example.com"},
				Metadata:    map[string]string{"order": "42"},
				PaymentMethodDetails: &stripe.ChargePaymentMethodDetails{
					Type: "card",
					Card: &stripe.ChargePaymentMethodDetailsCard{Brand: "visa", Last4: "4242", ExpMonth: 12, ExpYear: 2027},
				},
			},
			check: func(t *testing.T, p models.Payment) {
				assert.Equal(t, "ch_1", p.ID)
				assert.Equal(t, int64(2599), p.Amount)
				assert.Equal(t, "usd", p.Currency)
				assert.Equal(t, models.PaymentStatusSucceeded, p.Status)
				assert.Equal(t, time.Unix(created, 0).UTC(), p.Created)
				require.NotNil(t, p.Customer)
				assert.Equal(t, models.CustomerRef{ID: "cus_1", Name: "Alice Smith", Email: "alice@example.com"}, *p.Customer)
				require.NotNil(t, p.PaymentMethod)
				assert.Equal(t, models.PaymentMethod{Type: "card", Brand: "visa", Last4: "4242", ExpiryMonth: 12, ExpiryYear: 2027}, *p.PaymentMethod)
				assert.Equal(t, "42", p.Metadata["order"])
			},
		},
		{
			name:   "refunded charge",
			charge: &stripe.Charge{ID: "ch_2", Amount: 500, Status: "succeeded", Refunded: true, Created: created},
			check: func(t *testing.T, p models.Payment) {
				assert.Equal(t, models.PaymentStatusRefunded, p.Status)
				assert.Nil(t, p.Customer)
				assert.Equal(t, "anonymous", p.CustomerName())
			},
		},
		{
			name: "billing details fill in a guest customer",
			charge: &stripe.Charge{
				ID:             "ch_3",
				Amount:         100,
				Status:         "failed",
				Created:        created,
				BillingDetails: &stripe.BillingDetails{Name: "Guest", Email: "guest@example.com"},
			},
			check: func(t *testing.T, p models.Payment) {
				assert.Equal(t, models.PaymentStatusFailed, p.Status)
				require.NotNil(t, p.Customer)
				assert.Empty(t, p.Customer.ID)
				assert.Equal(t, "Guest", p.Customer.Name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, PaymentFromCharge(tt.charge))
		})
	}
}

func TestImporter_Run(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	require.NoError(t, store.Customers().Create(ctx, &models.Customer{ID: "cus_1", Name: "Old Name", Email: "alice@example.com"}))

	src := staticSource{
		customers: []*stripe.Customer{
			{ID: "cus_1", Name: "Alice Smith", Email: "alice@example.com", Created: created},
			{ID: "cus_2", Name: "Bob Jones", Email: "bob@example.com", Created: created},
			{ID: "cus_gone", Deleted: true},
		},
		charges: []*stripe.Charge{
			{ID: "ch_1", Amount: 1000, Status: "succeeded", Created: created, Customer: &stripe.Customer{ID: "cus_1"}},
			{ID: "ch_2", Amount: 2000, Status: "succeeded", Created: created, Customer: &stripe.Customer{ID: "cus_1"}},
			{ID: "ch_3", Amount: 300, Status: "failed", Created: created, Customer: &stripe.Customer{ID: "cus_2"}},
			{ID: "ch_4", Amount: 400, Status: "succeeded", Refunded: true, Created: created, Customer: &stripe.Customer{ID: "cus_2"}},
		},
	}
	views := &countingInvalidator{}
	importer := NewImporter(src, src, store.Payments(), store.Customers(), views, zap.NewNop())

	res, err := importer.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{CustomersCreated: 1, CustomersUpdated: 1, PaymentsCreated: 4}, res)
	assert.Equal(t, 1, views.calls)

	alice, err := store.Customers().GetByID(ctx, "cus_1")
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", alice.Name)
	assert.Equal(t, int64(3000), alice.TotalSpent)
	assert.Equal(t, 2, alice.PaymentCount)

	bob, err := store.Customers().GetByID(ctx, "cus_2")
	require.NoError(t, err)
	assert.Zero(t, bob.TotalSpent)
	assert.Equal(t, 2, bob.PaymentCount)

	_, err = store.Customers().GetByID(ctx, "cus_gone")
	assert.True(t, repositories.IsNotFound(err))

	again, err := importer.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{CustomersUpdated: 2, PaymentsUpdated: 4}, again)
}

func TestImporter_SourceFailure(t *testing.T) {
	store := repositories.NewMemoryStore()
	src := staticSource{err: errors.New("stripe unavailable")}
	importer := NewImporter(src, src, store.Payments(), store.Customers(), nil, zap.NewNop())

	_, err := importer.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stripe unavailable")

	payments, err := store.Payments().GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, payments)
}
