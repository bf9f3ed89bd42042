package analytics

import (
	"testing"

	"payflow/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculateMetrics(t *testing.T) {
	tests := []struct {
		name           string
		payments       []models.Payment
		wantRevenue    int64
		wantSuccessful int
		wantRate       float64
	}{
		{
			name:     "empty collection",
			payments: nil,
		},
		{
			name: "mixed statuses",
			payments: []models.Payment{
				payment("pi_1", 1000, models.PaymentStatusSucceeded, refDate),
				payment("pi_2", 2000, models.PaymentStatusSucceeded, refDate),
				payment("pi_3", 500, models.PaymentStatusSucceeded, refDate),
				payment("pi_4", 300, models.PaymentStatusFailed, refDate),
			},
			wantRevenue:    3500,
			wantSuccessful: 3,
			wantRate:       75,
		},
		{
			name: "no successful payments",
			payments: []models.Payment{
				payment("pi_1", 1000, models.PaymentStatusPending, refDate),
				payment("pi_2", 1000, models.PaymentStatusRefunded, refDate),
			},
		},
		{
			name: "negative and missing values count as zero",
			payments: []models.Payment{
				payment("pi_1", -700, models.PaymentStatusSucceeded, refDate),
				payment("pi_2", 400, "", refDate),
			},
			wantRevenue:    0,
			wantSuccessful: 1,
			wantRate:       50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := CalculateMetrics(tt.payments)

			assert.Equal(t, tt.wantRevenue, m.TotalRevenue)
			assert.Equal(t, tt.wantSuccessful, m.SuccessfulCount)
			assert.InDelta(t, tt.wantRate, m.ConversionRate, 1e-9)
			assert.Equal(t, len(tt.payments), m.TotalCount)
			assert.Zero(t, m.ActiveCustomers)
		})
	}
}

func TestOverview_ActiveCustomersComeFromCustomers(t *testing.T) {
	payments := []models.Payment{payment("pi_1", 1000, models.PaymentStatusSucceeded, refDate)}
	customers := []models.Customer{{ID: "cus_1"}, {ID: "cus_2"}, {ID: "cus_3"}}

	m := Overview(payments, customers)

	assert.Equal(t, 3, m.ActiveCustomers)
	assert.Equal(t, int64(1000), m.TotalRevenue)
}

func TestConversionRate(t *testing.T) {
	assert.Equal(t, float64(0), ConversionRate(0, 0))
	assert.Equal(t, float64(100), ConversionRate(4, 4))
	assert.InDelta(t, 33.333, ConversionRate(1, 3), 0.001)
}
