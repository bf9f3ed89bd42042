package cache

import (
	"fmt"
	"strings"
)

type ViewType string

const (
	ViewOverview       ViewType = "overview"
	ViewAnalytics      ViewType = "analytics"
	ViewTopCustomers   ViewType = "top_customers"
	ViewRecentPayments ViewType = "recent_payments"
)

// DashboardPrefix namespaces every cached dashboard view.
const DashboardPrefix = "dashboard"

// GenerateKey creates a standardized cache key, e.g. "dashboard:analytics:30:2024-03-15"
func GenerateKey(view ViewType, params ...interface{}) string {
	parts := []string{DashboardPrefix, string(view)}
	for _, p := range params {
		parts = append(parts, fmt.Sprintf("%v", p))
	}
	return strings.Join(parts, ":")
}

// DashboardPattern matches every cached dashboard view.
func DashboardPattern() string {
	return DashboardPrefix + ":*"
}

// ParseKey extracts the view and parameters from a cache key
func ParseKey(key string) (ViewType, []string, bool) {
	parts := strings.Split(key, ":")
	if len(parts) < 2 || parts[0] != DashboardPrefix {
		return "", nil, false
	}
	return ViewType(parts[1]), parts[2:], true
}
