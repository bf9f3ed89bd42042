package handlers

import (
	"payflow/internal/services/customer"
	"payflow/internal/utils/pagination"
	"payflow/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	customerService customer.Service
}

func NewCustomerHandler(customerService customer.Service) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func (h *CustomerHandler) ListCustomers(c *fiber.Ctx) error {
	page, err := h.customerService.List(c.Context(), pagination.ParseFromRequest(c))
	if err != nil {
		return handleError(c, err, "Failed to fetch customers")
	}
	body := pagination.Response(page)
	body["message"] = "Customers retrieved successfully"
	return c.JSON(body)
}

func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	cust, err := h.customerService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err, "Failed to fetch customer")
	}
	return response.Success(c, "Customer retrieved successfully", cust)
}

func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var input customer.CreateCustomerInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	cust, err := h.customerService.Create(c.Context(), input)
	if err != nil {
		return handleError(c, err, "Failed to create customer")
	}
	return response.Created(c, "Customer created successfully", cust)
}

func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	var input customer.UpdateCustomerInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	cust, err := h.customerService.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return handleError(c, err, "Failed to update customer")
	}
	return response.Success(c, "Customer updated successfully", cust)
}

func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	if err := h.customerService.Delete(c.Context(), c.Params("id")); err != nil {
		return handleError(c, err, "Failed to delete customer")
	}
	return response.Success(c, "Customer deleted successfully", nil)
}
