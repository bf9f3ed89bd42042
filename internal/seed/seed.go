// Package seed generates deterministic demo data for the dashboard.
package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"payflow/internal/models"
	"payflow/internal/repositories"
)

// Options size the generated data set.
type Options struct {
	Customers int
	Payments  int
	// Days is the number of calendar days, ending on Reference, that
	// payments are spread over.
	Days      int
	Reference time.Time
	Seed      uint64
}

// DefaultOptions covers the longest chart window.
func DefaultOptions(reference time.Time) Options {
	return Options{
		Customers: 25,
		Payments:  240,
		Days:      90,
		Reference: reference,
		Seed:      42,
	}
}

// Data is a generated data set.
type Data struct {
	Customers []models.Customer
	Payments  []models.Payment
	APIKeys   []models.APIKey
}

var (
	firstNames   = []string{"Alice", "Bob", "Carol", "David", "Emma", "Farid", "Grace", "Hiro", "Ines", "Jonas", "Kemi", "Liam", "Maya", "Noah", "Olga"}
	lastNames    = []string{"Smith", "Jones", "Nguyen", "Garcia", "Okafor", "Tanaka", "Muller", "Silva", "Khan", "Brown"}
	descriptions = []string{"Pro plan subscription", "Starter plan subscription", "Annual license", "Consulting hours", "Hardware order", "Support package", "Add-on seats"}
	brands       = []string{"visa", "mastercard", "amex"}
	currencies   = []string{"usd", "usd", "usd", "eur", "gbp", "cad"}
)

// Generate builds a data set from opts. The same options always produce
// the same data. Customer totals are derived from their succeeded payments.
func Generate(opts Options) Data {
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	ref := opts.Reference.UTC()
	days := max(opts.Days, 1)

	customers := make([]models.Customer, opts.Customers)
	for i := range customers {
		first := firstNames[rng.IntN(len(firstNames))]
		last := lastNames[rng.IntN(len(lastNames))]
		customers[i] = models.Customer{
			ID:      fmt.Sprintf("%s_demo%03d", models.IDPrefixCustomer, i+1),
			Name:    first + " " + last,
			Email:   fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i+1),
			Phone:   fmt.Sprintf("+1 555 %04d", rng.IntN(10000)),
			Created: ref.AddDate(0, 0, -days-rng.IntN(180)),
		}
	}

	payments := make([]models.Payment, opts.Payments)
	for i := range payments {
		created := ref.Add(-time.Duration(rng.Int64N(int64(days-1)*int64(24*time.Hour) + 1)))
		p := models.Payment{
			ID:          fmt.Sprintf("%s_demo%04d", models.IDPrefixPayment, i+1),
			Amount:      int64(500 + rng.IntN(250000)),
			Currency:    currencies[rng.IntN(len(currencies))],
			Status:      randomStatus(rng),
			Description: descriptions[rng.IntN(len(descriptions))],
			Created:     created,
			PaymentMethod: &models.PaymentMethod{
				Type:        models.PaymentMethodCard,
				Brand:       brands[rng.IntN(len(brands))],
				Last4:       fmt.Sprintf("%04d", rng.IntN(10000)),
				ExpiryMonth: 1 + rng.IntN(12),
				ExpiryYear:  ref.Year() + 1 + rng.IntN(5),
			},
		}

		// One payment in twenty is a guest checkout.
		if len(customers) > 0 && rng.IntN(20) != 0 {
			c := &customers[rng.IntN(len(customers))]
			p.Customer = c.Ref()
			c.PaymentCount++
			if p.IsSucceeded() {
				c.TotalSpent += p.Amount
			}
		}
		payments[i] = p
	}

	return Data{
		Customers: customers,
		Payments:  payments,
		APIKeys: []models.APIKey{
			demoKey(rng, ref, 1, "Development", models.APIKeyModeTest),
			demoKey(rng, ref, 2, "CI pipeline", models.APIKeyModeTest),
			demoKey(rng, ref, 3, "Production backend", models.APIKeyModeLive),
		},
	}
}

// Load writes data into the store. Records that already exist are skipped,
// so seeding twice is harmless.
func Load(ctx context.Context, store *repositories.Store, data Data) (int, error) {
	written := 0
	for i := range data.Customers {
		ok, err := skipExisting(store.Customers.Create(ctx, &data.Customers[i]))
		if err != nil {
			return written, fmt.Errorf("failed to seed customer %s: %w", data.Customers[i].ID, err)
		}
		if ok {
			written++
		}
	}
	for i := range data.Payments {
		ok, err := skipExisting(store.Payments.Create(ctx, &data.Payments[i]))
		if err != nil {
			return written, fmt.Errorf("failed to seed payment %s: %w", data.Payments[i].ID, err)
		}
		if ok {
			written++
		}
	}
	for i := range data.APIKeys {
		ok, err := skipExisting(store.APIKeys.Create(ctx, &data.APIKeys[i]))
		if err != nil {
			return written, fmt.Errorf("failed to seed API key %s: %w", data.APIKeys[i].ID, err)
		}
		if ok {
			written++
		}
	}
	return written, nil
}

func skipExisting(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, repositories.ErrDuplicateID):
		return false, nil
	default:
		return false, err
	}
}

// randomStatus is roughly 80% succeeded, 8% pending, 8% failed, 4% refunded.
func randomStatus(rng *rand.Rand) models.PaymentStatus {
	switch n := rng.IntN(100); {
	case n < 80:
		return models.PaymentStatusSucceeded
	case n < 88:
		return models.PaymentStatusPending
	case n < 96:
		return models.PaymentStatusFailed
	default:
		return models.PaymentStatusRefunded
	}
}

func demoKey(rng *rand.Rand, ref time.Time, n int, name, mode string) models.APIKey {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	secret := make([]byte, 24)
	for i := range secret {
		secret[i] = alphabet[rng.IntN(len(alphabet))]
	}

	created := ref.AddDate(0, 0, -30*n)
	lastUsed := ref.Add(-time.Duration(n) * time.Hour)
	return models.APIKey{
		ID:       fmt.Sprintf("%s_demo%d", models.IDPrefixAPIKey, n),
		Name:     name,
		Mode:     mode,
		Key:      "sk_" + mode + "_" + string(secret),
		Created:  created,
		LastUsed: &lastUsed,
	}
}
