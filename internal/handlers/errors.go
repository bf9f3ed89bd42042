package handlers

import (
	"errors"

	"payflow/internal/middleware"
	"payflow/internal/repositories"
	"payflow/internal/services/payment"
	"payflow/internal/utils/response"
	"payflow/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// handleError maps service errors to responses. Anything unexpected is
// logged and reported as a 500 with the given message.
func handleError(c *fiber.Ctx, err error, message string) error {
	var fields validation.Errors
	switch {
	case errors.As(err, &fields):
		return response.ValidationError(c, fields)
	case repositories.IsNotFound(err):
		return response.NotFound(c, notFoundMessage(err))
	case errors.Is(err, payment.ErrNotRefundable):
		return response.Error(c, fiber.StatusConflict, err.Error())
	}

	middleware.Logger(c).Error(message, zap.Error(err))
	return response.ServerError(c, message)
}

func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, repositories.ErrPaymentNotFound):
		return "Payment not found"
	case errors.Is(err, repositories.ErrCustomerNotFound):
		return "Customer not found"
	case errors.Is(err, repositories.ErrAPIKeyNotFound):
		return "API key not found"
	default:
		return "Not found"
	}
}
