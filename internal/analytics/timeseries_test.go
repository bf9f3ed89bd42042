package analytics

import (
	"testing"
	"time"

	"payflow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueSeries_IsDense(t *testing.T) {
	for _, window := range []int{7, 30, 90} {
		series := RevenueSeries(nil, window, refDate)

		assert.Len(t, series.Categories, window)
		assert.Len(t, series.Data, window)
		for _, v := range series.Data {
			assert.Zero(t, v)
		}
	}
}

func TestRevenueSeries_UnsupportedWindowFallsBackTo30(t *testing.T) {
	for _, window := range []int{0, -7, 14, 365} {
		series := RevenueSeries(nil, window, refDate)
		assert.Len(t, series.Data, DefaultWindowDays)
	}
}

func TestRevenueSeries_Categories(t *testing.T) {
	series := RevenueSeries(nil, 7, refDate)

	assert.Equal(t, []string{"Mar 9", "Mar 10", "Mar 11", "Mar 12", "Mar 13", "Mar 14", "Mar 15"}, series.Categories)
}

func TestRevenueSeries_SameDayPayments(t *testing.T) {
	day := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
	payments := []models.Payment{
		payment("pi_1", 1000, models.PaymentStatusSucceeded, day),
		payment("pi_2", 2000, models.PaymentStatusSucceeded, day.Add(2*time.Hour)),
		payment("pi_3", 500, models.PaymentStatusSucceeded, day.Add(5*time.Hour)),
		payment("pi_4", 300, models.PaymentStatusFailed, day),
	}

	m := CalculateMetrics(payments)
	series := RevenueSeries(payments, 30, refDate)

	assert.Equal(t, int64(3500), m.TotalRevenue)
	assert.Equal(t, 3, m.SuccessfulCount)

	nonZero := 0
	for _, v := range series.Data {
		if v != 0 {
			nonZero++
		}
	}
	assert.Equal(t, 1, nonZero)
	assert.InDelta(t, 35.00, series.Data[len(series.Data)-1], 0.001)
	assert.Equal(t, "Mar 15", series.Categories[len(series.Categories)-1])
}

func TestRevenueSeries_WindowBoundaries(t *testing.T) {
	payments := []models.Payment{
		// first day of a 7 day window ending Mar 15
		payment("pi_first", 100, models.PaymentStatusSucceeded, time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)),
		// one day before the window
		payment("pi_before", 200, models.PaymentStatusSucceeded, time.Date(2024, time.March, 8, 23, 59, 59, 0, time.UTC)),
		// later on the reference day than the reference instant
		payment("pi_late", 400, models.PaymentStatusSucceeded, time.Date(2024, time.March, 15, 23, 59, 0, 0, time.UTC)),
		// the day after
		payment("pi_after", 800, models.PaymentStatusSucceeded, time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC)),
	}

	series := RevenueSeries(payments, 7, refDate)

	require.Len(t, series.Data, 7)
	assert.InDelta(t, 1.00, series.Data[0], 0.001)
	assert.InDelta(t, 4.00, series.Data[6], 0.001)
	assert.InDelta(t, 5.00, sum(series.Data), 0.001)
}

func TestRevenueSeries_UsesUTCCalendarDay(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 2024-03-15 08:00 in Tokyo is 2024-03-14 23:00 UTC
	created := time.Date(2024, time.March, 15, 8, 0, 0, 0, tokyo)
	payments := []models.Payment{payment("pi_1", 1234, models.PaymentStatusSucceeded, created)}

	series := RevenueSeries(payments, 7, refDate)

	assert.InDelta(t, 12.34, series.Data[5], 0.001)
	assert.Zero(t, series.Data[6])
}

func TestInWindow(t *testing.T) {
	payments := []models.Payment{
		payment("pi_in", 100, models.PaymentStatusFailed, refDate.AddDate(0, 0, -6)),
		payment("pi_out", 100, models.PaymentStatusSucceeded, refDate.AddDate(0, 0, -7)),
		payment("pi_zero", 100, models.PaymentStatusSucceeded, time.Time{}),
	}

	got := InWindow(payments, 7, refDate)

	assert.Equal(t, []string{"pi_in"}, ids(got))
}

func TestMajorUnits(t *testing.T) {
	assert.Equal(t, 35.0, MajorUnits(3500))
	assert.Equal(t, 0.01, MajorUnits(1))
	assert.Equal(t, 1234.56, MajorUnits(123456))
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
