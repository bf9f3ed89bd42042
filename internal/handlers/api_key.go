package handlers

import (
	"payflow/internal/services/apikey"
	"payflow/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type APIKeyHandler struct {
	apiKeyService apikey.Service
}

func NewAPIKeyHandler(apiKeyService apikey.Service) *APIKeyHandler {
	return &APIKeyHandler{apiKeyService: apiKeyService}
}

// ListAPIKeys returns masked keys, optionally filtered with ?mode=test|live.
func (h *APIKeyHandler) ListAPIKeys(c *fiber.Ctx) error {
	keys, err := h.apiKeyService.List(c.Context(), c.Query("mode"))
	if err != nil {
		return handleError(c, err, "Failed to fetch API keys")
	}
	return response.Success(c, "API keys retrieved successfully", keys)
}

// CreateAPIKey returns the full secret. It is the only response that does.
func (h *APIKeyHandler) CreateAPIKey(c *fiber.Ctx) error {
	var input apikey.CreateAPIKeyInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	key, err := h.apiKeyService.Create(c.Context(), input)
	if err != nil {
		return handleError(c, err, "Failed to create API key")
	}
	return response.Created(c, "API key created successfully", key)
}

func (h *APIKeyHandler) DeleteAPIKey(c *fiber.Ctx) error {
	if err := h.apiKeyService.Delete(c.Context(), c.Params("id")); err != nil {
		return handleError(c, err, "Failed to delete API key")
	}
	return response.Success(c, "API key deleted successfully", nil)
}
