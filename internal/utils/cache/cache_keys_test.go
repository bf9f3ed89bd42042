package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKey(t *testing.T) {
	assert.Equal(t, "dashboard:overview", GenerateKey(ViewOverview))
	assert.Equal(t, "dashboard:analytics:30:2024-03-15", GenerateKey(ViewAnalytics, 30, "2024-03-15"))
}

func TestParseKey(t *testing.T) {
	view, params, ok := ParseKey("dashboard:top_customers:5")
	assert.True(t, ok)
	assert.Equal(t, ViewTopCustomers, view)
	assert.Equal(t, []string{"5"}, params)

	_, _, ok = ParseKey("wallet:user:1")
	assert.False(t, ok)
}
