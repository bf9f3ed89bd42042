package analytics

import "payflow/internal/models"

// CalculateMetrics derives the scalar dashboard metrics from a payment
// collection. ActiveCustomers is left at zero; see Overview.
func CalculateMetrics(payments []models.Payment) models.DashboardOverview {
	var m models.DashboardOverview
	for _, p := range payments {
		if !p.IsSucceeded() {
			continue
		}
		m.SuccessfulCount++
		m.TotalRevenue += minorUnits(p.Amount)
	}
	m.TotalCount = len(payments)
	m.ConversionRate = ConversionRate(m.SuccessfulCount, m.TotalCount)
	return m
}

// Overview is CalculateMetrics plus the active customer count, which comes
// from the customer collection and is never derived from payments.
func Overview(payments []models.Payment, customers []models.Customer) models.DashboardOverview {
	m := CalculateMetrics(payments)
	m.ActiveCustomers = len(customers)
	return m
}

// ConversionRate is successful/total as a percentage, and 0 when total is 0.
func ConversionRate(successful, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(successful) / float64(total) * 100
}

// minorUnits counts negative amounts as zero.
func minorUnits(amount int64) int64 {
	if amount < 0 {
		return 0
	}
	return amount
}
