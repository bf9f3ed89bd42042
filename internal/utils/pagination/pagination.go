package pagination

import (
	"strconv"

	"payflow/internal/analytics"

	"github.com/gofiber/fiber/v2"
)

// ParseFromRequest reads search, status, page and limit from the query string.
// Unparseable values fall back to the engine defaults.
func ParseFromRequest(c *fiber.Ctx) analytics.QueryParams {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(analytics.DefaultPageSize)))
	if err != nil || limit < 1 {
		limit = analytics.DefaultPageSize
	}
	return analytics.QueryParams{
		SearchTerm:  c.Query("search"),
		FilterValue: c.Query("status", analytics.FilterAll),
		Page:        page,
		PageSize:    limit,
	}
}

// Response creates a standardized pagination response
func Response[T any](p analytics.Page[T]) fiber.Map {
	return fiber.Map{
		"data": p.Rows,
		"meta": fiber.Map{
			"current_page": p.Page,
			"per_page":     p.PageSize,
			"total_items":  p.TotalItems,
			"total_pages":  p.TotalPages,
		},
	}
}
