package analytics

import (
	"cmp"
	"slices"

	"payflow/internal/models"
)

const (
	// DefaultTopCustomers is the size of the top customers list.
	DefaultTopCustomers = 5
	// DefaultRecentPayments is the size of the recent payments list.
	DefaultRecentPayments = 5
)

// TopCustomers returns up to n customers ordered by TotalSpent descending.
// Customers with equal spend keep their input order.
func TopCustomers(customers []models.Customer, n int) []models.Customer {
	if n <= 0 {
		n = DefaultTopCustomers
	}
	ranked := slices.Clone(customers)
	slices.SortStableFunc(ranked, func(a, b models.Customer) int {
		return cmp.Compare(b.TotalSpent, a.TotalSpent)
	})
	return truncate(ranked, n)
}

// RecentPayments returns up to n payments, newest first. Payments created at
// the same instant keep their input order.
func RecentPayments(payments []models.Payment, n int) []models.Payment {
	if n <= 0 {
		n = DefaultRecentPayments
	}
	sorted := slices.Clone(payments)
	slices.SortStableFunc(sorted, func(a, b models.Payment) int {
		return b.Created.Compare(a.Created)
	})
	return truncate(sorted, n)
}

func truncate[T any](s []T, n int) []T {
	if s == nil {
		return []T{}
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}
