package handlers

import (
	"strconv"
	"strings"
	"time"

	"payflow/internal/analytics"
	"payflow/internal/services/dashboard"
	"payflow/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
	now              func() time.Time
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		now:              time.Now,
	}
}

// GetOverview returns the metric cards of the home screen.
func (h *DashboardHandler) GetOverview(c *fiber.Ctx) error {
	overview, err := h.dashboardService.Overview(c.Context())
	if err != nil {
		return handleError(c, err, "Failed to load dashboard overview")
	}
	return response.Success(c, "Dashboard overview retrieved successfully", overview)
}

// GetAnalytics returns the revenue chart and status breakdown for ?range=7d|30d|90d.
func (h *DashboardHandler) GetAnalytics(c *fiber.Ctx) error {
	window := parseRange(c.Query("range"))
	result, err := h.dashboardService.Analytics(c.Context(), window, h.now())
	if err != nil {
		return handleError(c, err, "Failed to load analytics")
	}
	return response.Success(c, "Analytics retrieved successfully", result)
}

func (h *DashboardHandler) GetTopCustomers(c *fiber.Ctx) error {
	customers, err := h.dashboardService.TopCustomers(c.Context(), c.QueryInt("limit", analytics.DefaultTopCustomers))
	if err != nil {
		return handleError(c, err, "Failed to load top customers")
	}
	return response.Success(c, "Top customers retrieved successfully", customers)
}

func (h *DashboardHandler) GetRecentPayments(c *fiber.Ctx) error {
	payments, err := h.dashboardService.RecentPayments(c.Context(), c.QueryInt("limit", analytics.DefaultRecentPayments))
	if err != nil {
		return handleError(c, err, "Failed to load recent payments")
	}
	return response.Success(c, "Recent payments retrieved successfully", payments)
}

// parseRange accepts "7d", "30d", "90d" or a bare number of days. Anything
// else falls back to the default window.
func parseRange(raw string) int {
	days, err := strconv.Atoi(strings.TrimSuffix(strings.ToLower(raw), "d"))
	if err != nil {
		return analytics.DefaultWindowDays
	}
	return analytics.NormalizeWindow(days)
}
