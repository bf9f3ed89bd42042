// Package routes defines the API routing configuration.
package routes

import (
	"payflow/internal/handlers"
	"payflow/internal/middleware"
	"payflow/internal/services/apikey"
	"payflow/internal/services/customer"
	"payflow/internal/services/dashboard"
	"payflow/internal/services/payment"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Services are the dependencies the routes are built from.
type Services struct {
	Dashboard dashboard.Service
	Payments  payment.Service
	Customers customer.Service
	APIKeys   apikey.Service
	Health    *handlers.HealthHandler
}

// SetupRoutes installs the request middleware and every route.
func SetupRoutes(app *fiber.App, svc Services, log *zap.Logger) {
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(log))

	app.Get("/health", svc.Health.HealthCheck)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to PayFlow API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	api := app.Group("/api")
	addDashboardRoutes(api, handlers.NewDashboardHandler(svc.Dashboard))
	addPaymentRoutes(api, handlers.NewPaymentHandler(svc.Payments))
	addCustomerRoutes(api, handlers.NewCustomerHandler(svc.Customers))
	addAPIKeyRoutes(api, handlers.NewAPIKeyHandler(svc.APIKeys))
}

func addDashboardRoutes(router fiber.Router, h *handlers.DashboardHandler) {
	dash := router.Group("/dashboard")
	dash.Get("/overview", h.GetOverview)
	dash.Get("/analytics", h.GetAnalytics)
	dash.Get("/top-customers", h.GetTopCustomers)
	dash.Get("/recent-payments", h.GetRecentPayments)
}

func addPaymentRoutes(router fiber.Router, h *handlers.PaymentHandler) {
	payments := router.Group("/payments")
	payments.Get("/", h.ListPayments)
	payments.Post("/", h.CreatePayment)
	payments.Get("/:id", h.GetPayment)
	payments.Post("/:id/refund", h.RefundPayment)
	payments.Delete("/:id", h.DeletePayment)
}

func addCustomerRoutes(router fiber.Router, h *handlers.CustomerHandler) {
	customers := router.Group("/customers")
	customers.Get("/", h.ListCustomers)
	customers.Post("/", h.CreateCustomer)
	customers.Get("/:id", h.GetCustomer)
	customers.Put("/:id", h.UpdateCustomer)
	customers.Delete("/:id", h.DeleteCustomer)
}

func addAPIKeyRoutes(router fiber.Router, h *handlers.APIKeyHandler) {
	keys := router.Group("/api-keys")
	keys.Get("/", h.ListAPIKeys)
	keys.Post("/", h.CreateAPIKey)
	keys.Delete("/:id", h.DeleteAPIKey)
}
