package handlers

import (
	"payflow/internal/services/payment"
	"payflow/internal/utils/pagination"
	"payflow/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	paymentService payment.Service
}

func NewPaymentHandler(paymentService payment.Service) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// ListPayments supports ?search=&status=&page=&limit=.
func (h *PaymentHandler) ListPayments(c *fiber.Ctx) error {
	page, err := h.paymentService.List(c.Context(), pagination.ParseFromRequest(c))
	if err != nil {
		return handleError(c, err, "Failed to fetch payments")
	}
	body := pagination.Response(page)
	body["message"] = "Payments retrieved successfully"
	return c.JSON(body)
}

func (h *PaymentHandler) GetPayment(c *fiber.Ctx) error {
	p, err := h.paymentService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err, "Failed to fetch payment")
	}
	return response.Success(c, "Payment retrieved successfully", p)
}

func (h *PaymentHandler) CreatePayment(c *fiber.Ctx) error {
	var input payment.CreatePaymentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	p, err := h.paymentService.Create(c.Context(), input)
	if err != nil {
		return handleError(c, err, "Failed to create payment")
	}
	return response.Created(c, "Payment created successfully", p)
}

func (h *PaymentHandler) RefundPayment(c *fiber.Ctx) error {
	p, err := h.paymentService.Refund(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err, "Failed to refund payment")
	}
	return response.Success(c, "Payment refunded successfully", p)
}

func (h *PaymentHandler) DeletePayment(c *fiber.Ctx) error {
	if err := h.paymentService.Delete(c.Context(), c.Params("id")); err != nil {
		return handleError(c, err, "Failed to delete payment")
	}
	return response.Success(c, "Payment deleted successfully", nil)
}
