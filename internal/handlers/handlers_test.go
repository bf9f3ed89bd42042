package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"payflow/internal/repositories"
	"payflow/internal/services/payment"
	"payflow/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"7d", 7},
		{"30d", 30},
		{"90D", 90},
		{"90", 90},
		{"", 30},
		{"1y", 30},
		{"14d", 30},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRange(tt.raw))
		})
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", validation.Errors{"amount": "is required"}, fiber.StatusBadRequest},
		{"not found", fmt.Errorf("lookup: %w", &repositories.StoreError{Op: "get", Entity: "payment", Err: repositories.ErrPaymentNotFound}), fiber.StatusNotFound},
		{"not refundable", payment.ErrNotRefundable, fiber.StatusConflict},
		{"store failure", &repositories.StoreError{Op: "get_all", Entity: "payment", Err: errors.New("timeout")}, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return handleError(c, tt.err, "failed")
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

type pinger struct{ err error }

func (p pinger) HealthCheck(context.Context) error { return p.err }

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		checks     map[string]Pinger
		wantStatus int
	}{
		{"no dependencies", nil, fiber.StatusOK},
		{"healthy redis", map[string]Pinger{"redis": pinger{}}, fiber.StatusOK},
		{"redis down", map[string]Pinger{"redis": pinger{err: errors.New("refused")}}, fiber.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", NewHealthHandler("test", tt.checks).HealthCheck)

			resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
